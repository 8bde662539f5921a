package app

import (
	"image"

	"mad-life/internal/control"
)

// pointerControls is the controller surface the pointer routing drives.
type pointerControls interface {
	PointerDown(p image.Point) control.Decision
	PointerMove(p image.Point) control.Decision
	PointerUp() control.Decision
	Painting() bool
}

// pointerInput is one host frame's worth of left-button state.
type pointerInput struct {
	Pos          image.Point
	JustPressed  bool
	Pressed      bool
	JustReleased bool
}

// pointerEvent is a controller call made for an input frame.
type pointerEvent struct {
	Action   string
	Decision control.Decision
}

// pointerRouter turns raw button state into gesture calls. Moves are only
// sent when the cursor changed position. Release ends the gesture wherever
// the cursor is, including outside the grid and the window.
type pointerRouter struct {
	last image.Point
}

func (r *pointerRouter) route(ctrl pointerControls, in pointerInput) []pointerEvent {
	var events []pointerEvent
	switch {
	case in.JustPressed:
		events = append(events, pointerEvent{"pointer down", ctrl.PointerDown(in.Pos)})
	case ctrl.Painting() && in.Pressed && in.Pos != r.last:
		events = append(events, pointerEvent{"pointer move", ctrl.PointerMove(in.Pos)})
	}
	if ctrl.Painting() && in.JustReleased {
		events = append(events, pointerEvent{"pointer up", ctrl.PointerUp()})
	}
	r.last = in.Pos
	return events
}
