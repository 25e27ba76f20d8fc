package fixpoly

import (
	"image"
	"image/color"
)

// Rasterizer is the external drawing collaborator. The pipeline hands
// it one polygon at a time as integer screen points with a bounding
// rectangle; any implementation works: scanline fill, a native
// polygon API, or a software framebuffer writer such as Framebuffer.
//
// The points slice is reused between calls and must not be retained.
type Rasterizer interface {
	FillPolygon(points []image.Point, bounds image.Rectangle, c color.RGBA)
	OutlinePolygon(points []image.Point, bounds image.Rectangle, c color.RGBA)
}

// RenderStats counts dispatch outcomes for a reporting layer.
type RenderStats struct {
	FacesDrawn   int
	FacesSkipped int
}

// Renderer turns an ordered face sequence into draw calls. It performs
// no geometry of its own: for each displayable face with at least
// three visible vertices it gathers the projected screen points and
// their bounding box into reusable scratch buffers and invokes the
// rasterizer, fill then outline. Everything else is skipped without
// error.
type Renderer struct {
	// Fill and Outline are the polygon colors. FaceColor, when set,
	// overrides Fill per face id (the viewer uses it for palette
	// cycling).
	Fill      color.RGBA
	Outline   color.RGBA
	FaceColor func(faceID int) color.RGBA

	points []image.Point // scratch, reused across faces and frames
	stats  RenderStats
}

// NewRenderer creates a renderer with the default pen colors of the
// reference display: light-gray fill, red outline.
func NewRenderer() *Renderer {
	return &Renderer{
		Fill:    Palette[14],
		Outline: Palette[7],
		points:  make([]image.Point, 0, MaxFaceVertices),
	}
}

// Draw dispatches the ordered faces to dst. order comes from an
// Orderer over the same model and transform pass.
func (r *Renderer) Draw(m *Model, order []int, dst Rasterizer) {
	r.stats = RenderStats{}

	for _, id := range order {
		if !m.displayable[id] {
			r.stats.FacesSkipped++
			continue
		}
		verts := m.FaceVertices(id)
		if len(verts) < 3 {
			r.stats.FacesSkipped++
			continue
		}

		r.points = r.points[:0]
		minX, minY := int(^uint(0)>>1), int(^uint(0)>>1)
		maxX, maxY := -minX, -minY
		visible := 0
		for _, v := range verts {
			x, y, ok := m.Screen(int(v))
			if !ok {
				continue
			}
			visible++
			r.points = append(r.points, image.Pt(x, y))
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
		if visible < 3 {
			r.stats.FacesSkipped++
			continue
		}

		bounds := image.Rect(minX, minY, maxX+1, maxY+1)
		fill := r.Fill
		if r.FaceColor != nil {
			fill = r.FaceColor(id)
		}
		dst.FillPolygon(r.points, bounds, fill)
		dst.OutlinePolygon(r.points, bounds, r.Outline)
		r.stats.FacesDrawn++
	}

	Logger().Debug("render dispatch",
		"drawn", r.stats.FacesDrawn,
		"skipped", r.stats.FacesSkipped)
}

// Stats returns the counts of the last Draw call.
func (r *Renderer) Stats() RenderStats { return r.stats }
