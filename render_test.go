package fixpoly

import (
	"image"
	"image/color"
	"testing"
)

// recordingRasterizer captures dispatch calls for inspection.
type recordingRasterizer struct {
	fills    []recordedCall
	outlines []recordedCall
}

type recordedCall struct {
	points []image.Point
	bounds image.Rectangle
	color  color.RGBA
}

func (r *recordingRasterizer) FillPolygon(points []image.Point, bounds image.Rectangle, c color.RGBA) {
	r.fills = append(r.fills, recordedCall{append([]image.Point(nil), points...), bounds, c})
}

func (r *recordingRasterizer) OutlinePolygon(points []image.Point, bounds image.Rectangle, c color.RGBA) {
	r.outlines = append(r.outlines, recordedCall{append([]image.Point(nil), points...), bounds, c})
}

func TestRenderer_DrawVisibleFace(t *testing.T) {
	m := slabModel(t, []int{10})
	obs := Observer{Distance: FromInt(100)}
	NewTransformer().Transform(m, obs)
	order, err := NewDepthSorter().Order(m, obs)
	if err != nil {
		t.Fatalf("Order: %v", err)
	}

	r := NewRenderer()
	dst := &recordingRasterizer{}
	r.Draw(m, order, dst)

	if len(dst.fills) != 1 || len(dst.outlines) != 1 {
		t.Fatalf("fills = %d, outlines = %d, want 1, 1", len(dst.fills), len(dst.outlines))
	}
	if got := r.Stats(); got.FacesDrawn != 1 || got.FacesSkipped != 0 {
		t.Errorf("Stats() = %+v", got)
	}
	if dst.fills[0].color != Palette[14] {
		t.Errorf("fill color = %v, want pen 14", dst.fills[0].color)
	}
	if dst.outlines[0].color != Palette[7] {
		t.Errorf("outline color = %v, want pen 7", dst.outlines[0].color)
	}

	// Bounds must cover every emitted point.
	for _, p := range dst.fills[0].points {
		if !p.In(dst.fills[0].bounds) {
			t.Errorf("point %v outside bounds %v", p, dst.fills[0].bounds)
		}
	}
}

func TestRenderer_SkipsCulledFace(t *testing.T) {
	// The second slab sits behind the observer; ordering flags it and
	// the dispatcher must not emit it.
	m := slabModel(t, []int{10, 300})
	obs := Observer{Distance: FromInt(100)}
	NewTransformer().Transform(m, obs)
	order, err := NewDepthSorter().Order(m, obs)
	if err != nil {
		t.Fatalf("Order: %v", err)
	}

	r := NewRenderer()
	dst := &recordingRasterizer{}
	r.Draw(m, order, dst)

	if len(dst.fills) != 1 {
		t.Fatalf("fills = %d, want 1", len(dst.fills))
	}
	if got := r.Stats(); got.FacesDrawn != 1 || got.FacesSkipped != 1 {
		t.Errorf("Stats() = %+v", got)
	}
}

func TestRenderer_SkipsDegenerateFace(t *testing.T) {
	m := buildModel(t, []Point3{
		Pt3(0, 0, 0), Pt3(0, One, 0),
	}, [][]uint16{{0, 1}})
	obs := Observer{Distance: FromInt(100)}
	NewTransformer().Transform(m, obs)
	order, err := NewDepthSorter().Order(m, obs)
	if err != nil {
		t.Fatalf("Order: %v", err)
	}

	r := NewRenderer()
	dst := &recordingRasterizer{}
	r.Draw(m, order, dst)

	if len(dst.fills) != 0 || len(dst.outlines) != 0 {
		t.Errorf("degenerate face dispatched: %d fills", len(dst.fills))
	}
	if got := r.Stats(); got.FacesSkipped != 1 {
		t.Errorf("Stats() = %+v", got)
	}
}

func TestRenderer_FaceColorOverride(t *testing.T) {
	m := slabModel(t, []int{10, 20})
	obs := Observer{Distance: FromInt(100)}
	NewTransformer().Transform(m, obs)
	order, err := NewDepthSorter().Order(m, obs)
	if err != nil {
		t.Fatalf("Order: %v", err)
	}

	r := NewRenderer()
	r.FaceColor = func(faceID int) color.RGBA { return Palette[1+faceID] }
	dst := &recordingRasterizer{}
	r.Draw(m, order, dst)

	if len(dst.fills) != 2 {
		t.Fatalf("fills = %d, want 2", len(dst.fills))
	}
	// Farthest first: face 0 (x=10) precedes face 1.
	if dst.fills[0].color != Palette[1] || dst.fills[1].color != Palette[2] {
		t.Errorf("fill colors = %v, %v", dst.fills[0].color, dst.fills[1].color)
	}
	// Outline pen is not overridden.
	if dst.outlines[0].color != Palette[7] {
		t.Errorf("outline color = %v, want pen 7", dst.outlines[0].color)
	}
}

func TestPipeline_PicksOrdererFromModel(t *testing.T) {
	flat := slabModel(t, []int{10})
	if _, ok := NewPipeline(flat).orderer.(*DepthSorter); !ok {
		t.Error("tree-less model did not get a depth sorter")
	}

	treed := treeModel(t)
	if _, ok := NewPipeline(treed).orderer.(*BSPOrderer); !ok {
		t.Error("tree model did not get a BSP orderer")
	}

	forced := NewPipeline(treed, WithOrderer(NewDepthSorter()))
	if _, ok := forced.orderer.(*DepthSorter); !ok {
		t.Error("WithOrderer did not override the model's strategy")
	}
}

func TestPipeline_Frame(t *testing.T) {
	m := slabModel(t, []int{10, 20, 30})
	pipe := NewPipeline(m)
	dst := &recordingRasterizer{}

	if err := pipe.Frame(Observer{Distance: FromInt(100)}, dst); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if len(dst.fills) != 3 {
		t.Errorf("fills = %d, want 3", len(dst.fills))
	}
	if got := pipe.Stats(); got.FacesDrawn != 3 {
		t.Errorf("Stats() = %+v", got)
	}
}
