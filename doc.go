// Package fixpoly is a software 3D rendering pipeline built on
// deterministic 16.16 fixed-point arithmetic.
//
// # Overview
//
// fixpoly transforms a polygonal model from object space to screen
// space and determines a correct back-to-front draw order for opaque,
// unsorted polygon soup without a depth buffer. It targets the kind of
// constrained hardware where floating point is slow and memory is
// fixed at startup: every buffer is allocated once when a Model is
// created and reused across frames.
//
// # Quick Start
//
//	model, err := fixpoly.LoadOBJFile("teapot.obj")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	pipe := fixpoly.NewPipeline(model)
//	fb := fixpoly.NewFramebuffer(320, 200)
//
//	obs := fixpoly.Observer{
//	    AngleH:   fixpoly.FromInt(30),
//	    AngleV:   fixpoly.FromInt(20),
//	    Distance: fixpoly.FromInt(30),
//	}
//	if err := pipe.Frame(obs, fb); err != nil {
//	    log.Fatal(err)
//	}
//	fb.SavePNG("frame.png")
//
// # Architecture
//
// The pipeline is organised into small, separately testable stages:
//   - Fixed math: Fixed scalar, Sin/Cos, degree lookup table
//   - Model: vertex store, packed face arena, optional BSP tree
//   - Transformer: observer rotation, translation, perspective divide
//   - Ordering: depth sort (painter's algorithm) or BSP traversal
//   - Renderer: dispatches ordered faces to a Rasterizer
//
// Models loaded from the text format have no BSP tree and are ordered
// by depth sort; models loaded from the binary format carry a
// precomputed tree and may use exact BSP traversal instead.
//
// # Coordinate System
//
// Screen coordinates follow the usual raster convention: origin at the
// top-left, X right, Y down. Model Y up maps to screen Y up before the
// final flip. Observer depth (zo) increases away from the viewer;
// vertices with zo <= 0 are behind the observer and marked invisible.
//
// # Concurrency
//
// The pipeline is single-threaded. A Pipeline and its Model must not
// be used from multiple goroutines concurrently. SetLogger is safe to
// call from any goroutine.
package fixpoly

// Version is the current version of the library.
const Version = "0.1.0"
