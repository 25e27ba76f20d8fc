package fixpoly

import "fmt"

// State names the stage an interactive session is in. A frame advances
// Loaded through Rendered in order and then waits for input; every
// input event that changes the view sends the session back through a
// full frame on the next Render call.
type State int

const (
	StateLoaded State = iota
	StateTransformed
	StateOrdered
	StateRendered
	StateAwaitingInput
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateTransformed:
		return "transformed"
	case StateOrdered:
		return "ordered"
	case StateRendered:
		return "rendered"
	case StateAwaitingInput:
		return "awaiting-input"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// InputEvent is a discrete viewing command from the surrounding input
// layer.
type InputEvent int

const (
	// EventNone leaves the view unchanged.
	EventNone InputEvent = iota
	// EventZoomIn and EventZoomOut step the observer distance by 10%.
	EventZoomIn
	EventZoomOut
	// EventTurnLeft and EventTurnRight step the horizontal angle by 10
	// degrees.
	EventTurnLeft
	EventTurnRight
	// EventTiltUp and EventTiltDown step the vertical angle by 10
	// degrees.
	EventTiltUp
	EventTiltDown
	// EventRollLeft and EventRollRight step the screen-plane rotation
	// by 10 degrees.
	EventRollLeft
	EventRollRight
	// EventRedraw forces a new frame without changing the view.
	EventRedraw
	// EventQuit ends the session.
	EventQuit
)

// angleStep is the per-keypress rotation increment in degrees.
var angleStep = FromInt(10)

// Session drives a pipeline interactively: it owns the observer, maps
// input events to view changes, and tracks which stage the current
// frame has reached.
type Session struct {
	pipe  *Pipeline
	obs   Observer
	state State
	dirty bool
	done  bool
}

// NewSession creates a session over a pipeline with an initial view.
func NewSession(pipe *Pipeline, initial Observer) *Session {
	return &Session{
		pipe:  pipe,
		obs:   initial,
		state: StateLoaded,
		dirty: true,
	}
}

// Observer returns the current viewing parameters.
func (s *Session) Observer() Observer { return s.obs }

// SetObserver replaces the viewing parameters and marks the frame
// stale.
func (s *Session) SetObserver(obs Observer) {
	s.obs = obs
	s.dirty = true
}

// State returns the stage the session is in.
func (s *Session) State() State { return s.state }

// Done reports whether an EventQuit has been handled.
func (s *Session) Done() bool { return s.done }

// Pipeline returns the underlying pipeline.
func (s *Session) Pipeline() *Pipeline { return s.pipe }

// Handle applies one input event to the view. View-changing events and
// EventRedraw mark the frame stale so the next Render runs a full
// pass; EventNone is ignored.
func (s *Session) Handle(ev InputEvent) {
	switch ev {
	case EventNone:
		return
	case EventZoomIn:
		s.obs.Distance -= s.obs.Distance / 10
	case EventZoomOut:
		s.obs.Distance += s.obs.Distance / 10
	case EventTurnLeft:
		s.obs.AngleH -= angleStep
	case EventTurnRight:
		s.obs.AngleH += angleStep
	case EventTiltUp:
		s.obs.AngleV += angleStep
	case EventTiltDown:
		s.obs.AngleV -= angleStep
	case EventRollLeft:
		s.obs.AngleW -= angleStep
	case EventRollRight:
		s.obs.AngleW += angleStep
	case EventRedraw:
		// Stale already; fall through to mark it again.
	case EventQuit:
		s.done = true
		return
	}
	s.dirty = true
}

// Render runs a frame if the view changed since the last one, walking
// the session through the transform, order and dispatch stages, and
// leaves it awaiting input. A clean session returns immediately.
func (s *Session) Render(dst Rasterizer) error {
	if s.done || !s.dirty {
		return nil
	}

	p := s.pipe
	p.transformer.Transform(p.model, s.obs)
	s.state = StateTransformed

	order, err := p.orderer.Order(p.model, s.obs)
	if err != nil {
		return err
	}
	s.state = StateOrdered

	p.renderer.Draw(p.model, order, dst)
	s.state = StateRendered

	s.dirty = false
	s.state = StateAwaitingInput
	Logger().Debug("frame complete",
		"drawn", p.renderer.Stats().FacesDrawn,
		"skipped", p.renderer.Stats().FacesSkipped)
	return nil
}
