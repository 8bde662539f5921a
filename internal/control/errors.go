package control

import (
	"errors"
	"fmt"
)

// ErrEngineFault marks every error surfaced from the engine or the drawing
// surface. The loop stops re-arming until the user resumes.
var ErrEngineFault = errors.New("control: engine fault")

// Phase names the part of the controller an engine fault came from.
type Phase string

const (
	PhaseStep    Phase = "step"
	PhaseDraw    Phase = "draw"
	PhaseRedraw  Phase = "redraw"
	PhaseResize  Phase = "resize"
	PhasePaint   Phase = "paint"
	PhaseConnect Phase = "connect"
)

// FrameError wraps an engine or surface failure with the generation and phase
// it happened in.
type FrameError struct {
	Generation uint64
	Phase      Phase
	Err        error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("control: %s failed at generation %d: %v", e.Phase, e.Generation, e.Err)
}

func (e *FrameError) Unwrap() []error {
	return []error{ErrEngineFault, e.Err}
}
