package fixpoly

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"sort"

	"golang.org/x/image/bmp"
)

// Framebuffer is a software Rasterizer: a rectangular RGBA pixel
// buffer with scanline polygon fill and line outlines. It stands in
// for the platform polygon-fill API of the reference target and doubles
// as an image.Image for snapshot export.
type Framebuffer struct {
	width  int
	height int
	data   []uint8 // RGBA, 4 bytes per pixel

	xs []int // scanline intersection scratch
}

// Framebuffer draws what the pipeline dispatches.
var _ Rasterizer = (*Framebuffer)(nil)

// NewFramebuffer creates a framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
		xs:     make([]int, 0, MaxFaceVertices),
	}
}

// Width returns the width of the framebuffer.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the height of the framebuffer.
func (fb *Framebuffer) Height() int { return fb.height }

// Data returns the raw pixel data (RGBA format).
func (fb *Framebuffer) Data() []uint8 { return fb.data }

// Clear fills the entire framebuffer with a color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := 0; i < len(fb.data); i += 4 {
		fb.data[i+0] = c.R
		fb.data[i+1] = c.G
		fb.data[i+2] = c.B
		fb.data[i+3] = c.A
	}
}

// SetPixel sets a single pixel, ignoring out-of-range coordinates.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	i := (y*fb.width + x) * 4
	fb.data[i+0] = c.R
	fb.data[i+1] = c.G
	fb.data[i+2] = c.B
	fb.data[i+3] = c.A
}

// FillPolygon fills the polygon with an even-odd scanline sweep
// clipped to the framebuffer.
func (fb *Framebuffer) FillPolygon(points []image.Point, bounds image.Rectangle, c color.RGBA) {
	if len(points) < 3 {
		return
	}
	clip := bounds.Intersect(image.Rect(0, 0, fb.width, fb.height))
	if clip.Empty() {
		return
	}

	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		fb.xs = fb.xs[:0]
		j := len(points) - 1
		for i := range points {
			p1, p2 := points[j], points[i]
			j = i
			if p1.Y == p2.Y {
				continue
			}
			// Half-open edge rule: each scanline crossing counts once.
			if (p1.Y <= y) == (p2.Y <= y) {
				continue
			}
			x := p1.X + (y-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y)
			fb.xs = append(fb.xs, x)
		}
		sort.Ints(fb.xs)
		for i := 0; i+1 < len(fb.xs); i += 2 {
			x0, x1 := fb.xs[i], fb.xs[i+1]
			if x0 < clip.Min.X {
				x0 = clip.Min.X
			}
			if x1 > clip.Max.X-1 {
				x1 = clip.Max.X - 1
			}
			row := (y*fb.width + x0) * 4
			for x := x0; x <= x1; x++ {
				fb.data[row+0] = c.R
				fb.data[row+1] = c.G
				fb.data[row+2] = c.B
				fb.data[row+3] = c.A
				row += 4
			}
		}
	}
}

// OutlinePolygon strokes the polygon edges one pixel wide.
func (fb *Framebuffer) OutlinePolygon(points []image.Point, _ image.Rectangle, c color.RGBA) {
	if len(points) < 2 {
		return
	}
	j := len(points) - 1
	for i := range points {
		fb.line(points[j].X, points[j].Y, points[i].X, points[i].Y, c)
		j = i
	}
}

// line draws a Bresenham line between two points.
func (fb *Framebuffer) line(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		fb.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ColorModel implements the image.Image interface.
func (fb *Framebuffer) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements the image.Image interface.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.width, fb.height)
}

// At implements the image.Image interface.
func (fb *Framebuffer) At(x, y int) color.Color {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return color.RGBA{}
	}
	i := (y*fb.width + x) * 4
	return color.RGBA{
		R: fb.data[i+0],
		G: fb.data[i+1],
		B: fb.data[i+2],
		A: fb.data[i+3],
	}
}

// ToImage copies the framebuffer into an image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	copy(img.Pix, fb.data)
	return img
}

// SavePNG writes the framebuffer to a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, fb.ToImage())
}

// SaveBMP writes the framebuffer to a BMP file.
func (fb *Framebuffer) SaveBMP(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return bmp.Encode(f, fb.ToImage())
}
