package fixpoly

// Fixed is a signed 16.16 fixed-point scalar: 16 integer bits, 16
// fractional bits, with a resolution of 1/65536. All arithmetic that
// can overflow 32 bits (Mul, Div) runs through 64-bit intermediates
// and truncates back, so no operation silently wraps.
type Fixed int32

// Fixed-point constants. Pi and friends keep the exact truncated
// values of the reference tables so that files and frames reproduce
// bit-for-bit across implementations.
const (
	FixedShift = 16
	FixedScale = 1 << FixedShift // 65536

	One    Fixed = FixedScale
	Pi     Fixed = 205887 // 3.14159265 in 16.16
	TwoPi  Fixed = 411775 // 6.28318530 in 16.16
	HalfPi Fixed = 102944 // 1.57079632 in 16.16
)

// FromInt converts an integer to Fixed.
func FromInt(i int) Fixed { return Fixed(i) << FixedShift }

// FromFloat converts a float64 to Fixed, truncating toward zero.
func FromFloat(f float64) Fixed { return Fixed(f * FixedScale) }

// Int truncates a Fixed to its integer part (arithmetic shift, so
// negative values round toward negative infinity, as the reference
// hardware does).
func (a Fixed) Int() int { return int(a >> FixedShift) }

// Float converts a Fixed to float64.
func (a Fixed) Float() float64 { return float64(a) / FixedScale }

// Abs returns the absolute value of a.
func (a Fixed) Abs() Fixed {
	if a < 0 {
		return -a
	}
	return a
}

// Mul multiplies two fixed-point values through a 64-bit intermediate.
func (a Fixed) Mul(b Fixed) Fixed {
	return Fixed((int64(a) * int64(b)) >> FixedShift)
}

// Div divides a by b, widening the dividend to 64 bits first so the
// quotient keeps its fractional precision. b must be non-zero; when
// dividing by a computed depth the caller must have checked the depth
// against a positive threshold already (see Transformer).
func (a Fixed) Div(b Fixed) Fixed {
	return Fixed((int64(a) << FixedShift) / int64(b))
}

// Sin computes sin(a) for a in fixed-point radians using the odd
// Taylor terms through x^7 (x - x³/6 + x⁵/120 - x⁷/5040) after
// reducing a into [-Pi, Pi]. The truncation error of the series is
// accepted as-is; callers needing exactness are in the wrong library.
func (a Fixed) Sin() Fixed {
	for a > Pi {
		a -= TwoPi
	}
	for a < -Pi {
		a += TwoPi
	}

	x := a
	x2 := x.Mul(x)
	x3 := x2.Mul(x)
	x5 := x3.Mul(x2)
	x7 := x5.Mul(x2)

	r := x
	r -= x3.Div(FromInt(6))
	r += x5.Div(FromInt(120))
	r -= x7.Div(FromInt(5040))
	return r
}

// Cos computes cos(a) via the identity cos(x) = sin(x + π/2).
func (a Fixed) Cos() Fixed {
	return (a + HalfPi).Sin()
}

// Point3 is a point or vector in model space, in fixed-point
// coordinates.
type Point3 struct {
	X, Y, Z Fixed
}

// Pt3 is a convenience constructor for Point3.
func Pt3(x, y, z Fixed) Point3 { return Point3{X: x, Y: y, Z: z} }

// Add returns the vector sum p + q.
func (p Point3) Add(q Point3) Point3 {
	return Point3{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns the vector difference p - q.
func (p Point3) Sub(q Point3) Point3 {
	return Point3{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Dot returns the dot product of two vectors.
func (p Point3) Dot(q Point3) Fixed {
	return p.X.Mul(q.X) + p.Y.Mul(q.Y) + p.Z.Mul(q.Z)
}

// Cross returns the cross product p × q.
func (p Point3) Cross(q Point3) Point3 {
	return Point3{
		X: p.Y.Mul(q.Z) - p.Z.Mul(q.Y),
		Y: p.Z.Mul(q.X) - p.X.Mul(q.Z),
		Z: p.X.Mul(q.Y) - p.Y.Mul(q.X),
	}
}
