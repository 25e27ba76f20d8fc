package fixpoly

// Observer holds the viewing parameters: horizontal and vertical
// rotation angles and the final screen-plane rotation angle, all in
// fixed-point degrees, plus the translation distance along the view
// axis. An Observer is mutated interactively between frames and must
// stay unchanged during a single transform pass.
type Observer struct {
	AngleH   Fixed
	AngleV   Fixed
	AngleW   Fixed
	Distance Fixed
}

// Position returns the observer's world-space position: the inverse
// of the view rotation applied to a point at Distance along the
// forward axis, d * (cos_h*cos_v, sin_h*cos_v, sin_v). BSP traversal
// classifies splitting planes against this point.
func (o Observer) Position() Point3 {
	radH := Radians(o.AngleH.Int())
	radV := Radians(o.AngleV.Int())
	cosH, sinH := radH.Cos(), radH.Sin()
	cosV, sinV := radV.Cos(), radV.Sin()
	return Point3{
		X: o.Distance.Mul(cosH.Mul(cosV)),
		Y: o.Distance.Mul(sinH.Mul(cosV)),
		Z: o.Distance.Mul(sinV),
	}
}

// Transformer maps model-space vertices to observer space and then to
// screen coordinates. It owns no per-model state; the results are
// written back into the Model's reusable observer/screen buffers.
type Transformer struct {
	centerX Fixed
	centerY Fixed
	scale   Fixed
}

// NewTransformer creates a transformer with the given projection
// options.
func NewTransformer(opts ...Option) *Transformer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Transformer{
		centerX: FromInt(o.centerX),
		centerY: FromInt(o.centerY),
		scale:   FromInt(o.scale),
	}
}

// Transform runs the combined rotate-translate-project pass over every
// vertex of the model.
//
// The sine/cosine values and their pairwise products are invariant
// across all vertices of a frame, so they are computed exactly once
// per call; the per-vertex loop is the dominant per-frame cost and
// must stay free of trigonometry.
//
// Observer-space coordinates follow the reference transform:
//
//	zo = -x*cosH*cosV - y*sinH*cosV - z*sinV + distance
//	xo = -x*sinH + y*cosH
//	yo = -x*cosH*sinV - y*sinH*sinV + z*cosV
//
// A vertex with zo <= 0 lies on or behind the observer plane: it is
// marked with the invisible screen sentinel and skipped by the
// projection math, which would otherwise divide by a non-positive
// depth. Visible vertices get a perspective divide (scale/zo) and a
// final rotation by AngleW around the screen centre.
func (t *Transformer) Transform(m *Model, obs Observer) {
	radH := Radians(obs.AngleH.Int())
	radV := Radians(obs.AngleV.Int())
	radW := Radians(obs.AngleW.Int())

	cosH, sinH := radH.Cos(), radH.Sin()
	cosV, sinV := radV.Cos(), radV.Sin()
	cosW, sinW := radW.Cos(), radW.Sin()

	cosHcosV := cosH.Mul(cosV)
	sinHcosV := sinH.Mul(cosV)
	cosHsinV := cosH.Mul(sinV)
	sinHsinV := sinH.Mul(sinV)

	cx, cy := t.centerX, t.centerY
	dist := obs.Distance

	for i := 0; i < m.vertexCount; i++ {
		x, y, z := m.x[i], m.y[i], m.z[i]

		zo := -x.Mul(cosHcosV) - y.Mul(sinHcosV) - z.Mul(sinV) + dist
		m.zo[i] = zo
		if zo <= 0 {
			m.xo[i], m.yo[i] = 0, 0
			m.x2d[i], m.y2d[i] = invisible, invisible
			continue
		}

		xo := -x.Mul(sinH) + y.Mul(cosH)
		yo := -x.Mul(cosHsinV) - y.Mul(sinHsinV) + z.Mul(cosV)
		m.xo[i], m.yo[i] = xo, yo

		invZo := t.scale.Div(zo)
		px := xo.Mul(invZo) + cx
		py := cy - yo.Mul(invZo)

		// Screen-plane rotation around the centre.
		dx := px - cx
		dy := cy - py
		m.x2d[i] = (cosW.Mul(dx) - sinW.Mul(dy) + cx).Int()
		m.y2d[i] = (cy - (sinW.Mul(dx) + cosW.Mul(dy))).Int()
	}

	Logger().Debug("transform pass",
		"vertices", m.vertexCount,
		"angleH", obs.AngleH.Float(),
		"angleV", obs.AngleV.Float(),
		"angleW", obs.AngleW.Float(),
		"distance", obs.Distance.Float())
}
