// Command fixpolyview is an interactive viewer for fixpoly models.
//
// Usage:
//
//	fixpolyview [flags] model.obj|model.bin
//
// Keys:
//
//	arrows     turn / tilt the view
//	A / Z      move closer / farther
//	W / X      rotate the screen plane
//	C          cycle face colors
//	R          force a redraw
//	S          save a PNG snapshot
//	L          reload the model file
//	Esc        quit
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/fixpoly/fixpoly"
)

const (
	screenW = 320
	screenH = 200
)

type viewer struct {
	session *fixpoly.Session
	fb      *fixpoly.Framebuffer
	frame   *ebiten.Image
	path    string

	cycling  bool
	snapshot int
}

func (v *viewer) Update() error {
	for key, ev := range keyEvents {
		if inpututil.IsKeyJustPressed(key) {
			v.session.Handle(ev)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		v.toggleCycling()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		v.saveSnapshot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		v.reload()
	}
	if v.session.Done() {
		return ebiten.Termination
	}

	v.fb.Clear(fixpoly.Palette[0])
	return v.session.Render(v.fb)
}

// keyEvents maps keyboard input onto session events.
var keyEvents = map[ebiten.Key]fixpoly.InputEvent{
	ebiten.KeyArrowLeft:  fixpoly.EventTurnLeft,
	ebiten.KeyArrowRight: fixpoly.EventTurnRight,
	ebiten.KeyArrowUp:    fixpoly.EventTiltUp,
	ebiten.KeyArrowDown:  fixpoly.EventTiltDown,
	ebiten.KeyA:          fixpoly.EventZoomIn,
	ebiten.KeyZ:          fixpoly.EventZoomOut,
	ebiten.KeyW:          fixpoly.EventRollLeft,
	ebiten.KeyX:          fixpoly.EventRollRight,
	ebiten.KeyR:          fixpoly.EventRedraw,
	ebiten.KeyEscape:     fixpoly.EventQuit,
}

// toggleCycling switches between the flat default fill and a per-face
// walk through the palette.
func (v *viewer) toggleCycling() {
	r := v.session.Pipeline().Renderer()
	if v.cycling {
		r.FaceColor = nil
	} else {
		r.FaceColor = func(faceID int) color.RGBA {
			// Pens 1..13; 0 is the background, 14/15 the default pens.
			return fixpoly.Palette[1+faceID%13]
		}
	}
	v.cycling = !v.cycling
	v.session.Handle(fixpoly.EventRedraw)
}

// reload re-reads the model file and rebuilds the pipeline, keeping
// the current view.
func (v *viewer) reload() {
	model, err := loadModel(v.path)
	if err != nil {
		slog.Error("reload failed", "path", v.path, "error", err)
		return
	}
	obs := v.session.Observer()
	v.session = fixpoly.NewSession(fixpoly.NewPipeline(model), obs)
	v.cycling = false
	slog.Info("model reloaded", "path", v.path)
}

func (v *viewer) saveSnapshot() {
	name := fmt.Sprintf("fixpoly-%03d.png", v.snapshot)
	v.snapshot++
	if err := v.fb.SavePNG(name); err != nil {
		slog.Error("snapshot failed", "path", name, "error", err)
		return
	}
	slog.Info("snapshot saved", "path", name)
}

func (v *viewer) Draw(screen *ebiten.Image) {
	v.frame.WritePixels(v.fb.Data())
	screen.DrawImage(v.frame, nil)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return screenW, screenH
}

func loadModel(path string) (*fixpoly.Model, error) {
	if strings.EqualFold(filepath.Ext(path), ".bin") {
		return fixpoly.LoadBinaryFile(path)
	}
	return fixpoly.LoadOBJFile(path)
}

func run() error {
	verbose := flag.Bool("v", false, "enable debug logging")
	distance := flag.Int("distance", 400, "initial observer distance")
	flag.Parse()

	if flag.NArg() != 1 {
		return fmt.Errorf("usage: %s [flags] model.obj|model.bin", filepath.Base(os.Args[0]))
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	fixpoly.SetLogger(logger)

	path := flag.Arg(0)
	model, err := loadModel(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	stats := model.Stats()
	slog.Info("model loaded",
		"path", path,
		"vertices", stats.Vertices,
		"faces", stats.Faces,
		"triangles", stats.Triangles,
		"quads", stats.Quads,
		"treeNodes", stats.TreeNodes)

	pipe := fixpoly.NewPipeline(model)
	obs := fixpoly.Observer{Distance: fixpoly.FromInt(*distance)}
	v := &viewer{
		session: fixpoly.NewSession(pipe, obs),
		fb:      fixpoly.NewFramebuffer(screenW, screenH),
		frame:   ebiten.NewImage(screenW, screenH),
		path:    path,
	}

	ebiten.SetWindowSize(screenW*3, screenH*3)
	ebiten.SetWindowTitle("fixpolyview - " + filepath.Base(path))
	return ebiten.RunGame(v)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fixpolyview:", err)
		os.Exit(1)
	}
}
