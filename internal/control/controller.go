// Package control implements the interactive simulation controller: the frame
// driver and playback state machine, pointer painting, zoom and auto-fit, and
// the frame metrics.
//
// A Controller is single-threaded. Every method must be called from the
// goroutine that flushes its Scheduler; the host runs input handlers, timers
// and frames to completion one at a time.
package control

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strconv"
	"time"

	"mad-life/internal/core"
	"mad-life/internal/render"
)

// DefaultMaxCellSize bounds explicit zoom.
const DefaultMaxCellSize = 12

// Surface is the drawing surface frames are presented on.
type Surface interface {
	// Resize sets the surface size in pixels.
	Resize(w, h int)
	// Present uploads a full framebuffer view.
	Present(v render.View) error
	// Origin is the surface top-left corner in pointer coordinates.
	Origin() image.Point
}

// Config holds the controller tunables.
type Config struct {
	MaxCellSize      int
	ThroughputPeriod time.Duration
	DisplayPeriod    time.Duration

	// Clock defaults to time.Now.
	Clock     func() time.Time
	Logger    *slog.Logger
	Reporters []Reporter
}

// DefaultConfig returns the standard controller configuration.
func DefaultConfig() Config {
	return Config{
		MaxCellSize:      DefaultMaxCellSize,
		ThroughputPeriod: 10 * time.Second,
		DisplayPeriod:    500 * time.Millisecond,
	}
}

// PlaybackState is the externally visible playback state.
type PlaybackState int

const (
	Playing PlaybackState = iota
	PausedIdle
	PausedPainting
)

func (s PlaybackState) String() string {
	switch s {
	case Playing:
		return "playing"
	case PausedIdle:
		return "paused"
	case PausedPainting:
		return "painting"
	default:
		return "unknown"
	}
}

type gesture struct {
	active bool
	value  core.CellState
}

// Controller is the single context object every host event is dispatched to.
type Controller struct {
	engine  core.Engine
	surface Surface
	sched   Scheduler
	log     *slog.Logger
	now     func() time.Time
	metrics *Collector

	size        core.Size
	maxCellSize int

	cellSize      int
	autoFitLocked bool

	paused bool
	// armed is the loop's running flag: a live frame request sits with the
	// host. queued tracks whether the host still holds one of our frame
	// callbacks, live or cancelled by a pause. armed implies queued.
	armed         bool
	queued        bool
	redrawQueued  bool
	started       bool
	wasPausedDown bool
	gesture       gesture

	view  render.View
	fault error
}

// New wires a controller to an engine, a drawing surface and the host
// scheduler. The engine's current cell pixel size must lie within
// [1, cfg.MaxCellSize].
func New(engine core.Engine, surface Surface, sched Scheduler, cfg Config) (*Controller, error) {
	if engine == nil || surface == nil || sched == nil {
		return nil, errors.New("control: engine, surface and scheduler are required")
	}
	if cfg.MaxCellSize <= 0 {
		cfg.MaxCellSize = DefaultMaxCellSize
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	cellSize := engine.CellPixelSize()
	if cellSize < 1 || cellSize > cfg.MaxCellSize {
		return nil, fmt.Errorf("control: cell size %d outside [1, %d]", cellSize, cfg.MaxCellSize)
	}

	c := &Controller{
		engine:      engine,
		surface:     surface,
		sched:       sched,
		log:         cfg.Logger,
		now:         cfg.Clock,
		size:        engine.Size(),
		maxCellSize: cfg.MaxCellSize,
		cellSize:    cellSize,
	}
	c.metrics = NewCollector(c.now(), cfg.ThroughputPeriod, cfg.DisplayPeriod, cfg.Logger, cfg.Reporters...)
	surface.Resize(cellSize*c.size.W, cellSize*c.size.H)
	view, err := engine.Framebuffer()
	if err != nil {
		return nil, &FrameError{Phase: PhaseConnect, Err: err}
	}
	c.view = view
	return c, nil
}

// Start performs the initial untimed redraw and arms the first frame. Calls
// after the first are no-ops.
func (c *Controller) Start() error {
	if c.started {
		return nil
	}
	c.started = true
	if err := c.present(PhaseRedraw); err != nil {
		return err
	}
	c.arm()
	return nil
}

// Poll drives the metrics windows; the host calls it on every loop iteration.
func (c *Controller) Poll(now time.Time) { c.metrics.Poll(now) }

// Metrics exposes the frame metrics collector.
func (c *Controller) Metrics() *Collector { return c.metrics }

// DisplayRate returns the rate shown on the indicator.
func (c *Controller) DisplayRate() float64 { return c.metrics.DisplayRate() }

// State returns the current playback state.
func (c *Controller) State() PlaybackState {
	switch {
	case !c.paused:
		return Playing
	case c.gesture.active:
		return PausedPainting
	default:
		return PausedIdle
	}
}

// Paused reports whether playback is paused.
func (c *Controller) Paused() bool { return c.paused }

// Running reports whether the loop is armed.
func (c *Controller) Running() bool { return c.armed }

// StepEnabled reports whether the single-step control accepts input.
func (c *Controller) StepEnabled() bool {
	return c.State() == PausedIdle && c.fault == nil
}

// Painting reports whether a paint gesture is active.
func (c *Controller) Painting() bool { return c.gesture.active }

// PaintValue returns the value stamped by the active gesture.
func (c *Controller) PaintValue() core.CellState { return c.gesture.value }

// CellSize returns the current cell pixel size.
func (c *Controller) CellSize() int { return c.cellSize }

// MaxCellSize returns the explicit zoom bound.
func (c *Controller) MaxCellSize() int { return c.maxCellSize }

// AutoFitLocked reports whether an explicit zoom disabled auto-fit.
func (c *Controller) AutoFitLocked() bool { return c.autoFitLocked }

// View returns the framebuffer view frames are presented from.
func (c *Controller) View() render.View { return c.view }

// Fault returns the pending engine fault, if any.
func (c *Controller) Fault() error { return c.fault }

// Generation returns the engine generation counter.
func (c *Controller) Generation() uint64 { return c.engine.Generation() }

type populationProvider interface {
	Population() int
}

// Parameters snapshots the readouts shown on the HUD.
func (c *Controller) Parameters() core.ParameterSnapshot {
	fit := "auto"
	if c.autoFitLocked {
		fit = "locked"
	}
	grid := core.ParameterGroup{Name: "Grid", Params: []core.Parameter{
		{Key: "engine", Label: "Engine", Value: c.engine.Name()},
		{Key: "size", Label: "Size", Value: fmt.Sprintf("%dx%d", c.size.W, c.size.H)},
		{Key: "cell_size", Label: "Cell px", Value: strconv.Itoa(c.cellSize)},
		{Key: "fit", Label: "Fit", Value: fit},
	}}
	if p, ok := c.engine.(populationProvider); ok {
		grid.Params = append(grid.Params, core.Parameter{Key: "population", Label: "Alive", Value: strconv.Itoa(p.Population())})
	}
	playback := core.ParameterGroup{Name: "Playback", Params: []core.Parameter{
		{Key: "state", Label: "State", Value: c.State().String()},
		{Key: "generation", Label: "Generation", Value: strconv.FormatUint(c.engine.Generation(), 10)},
		{Key: "fps", Label: "FPS", Value: strconv.Itoa(int(c.metrics.DisplayRate() + 0.5))},
	}}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{grid, playback}}
}

// CellAt maps a pointer position to grid coordinates.
func (c *Controller) CellAt(p image.Point) (int, int, bool) {
	rel := p.Sub(c.surface.Origin())
	if rel.X < 0 || rel.Y < 0 {
		return 0, 0, false
	}
	x, y := rel.X/c.cellSize, rel.Y/c.cellSize
	if !c.size.Contains(x, y) {
		return 0, 0, false
	}
	return x, y, true
}

// arm sets the loop running, queueing a frame unless the host already holds
// one of ours.
func (c *Controller) arm() {
	c.armed = true
	if c.queued {
		return
	}
	c.queued = true
	c.sched.RequestFrame(c.onFrame)
}

func (c *Controller) requestRedraw() {
	if c.redrawQueued {
		return
	}
	c.redrawQueued = true
	c.sched.RequestFrame(c.onRedraw)
}

func (c *Controller) onRedraw() {
	c.redrawQueued = false
	c.Redraw()
}

// Redraw presents the current view without advancing the simulation.
func (c *Controller) Redraw() error {
	return c.present(PhaseRedraw)
}

func (c *Controller) present(phase Phase) error {
	if err := c.surface.Present(c.view); err != nil {
		return c.fail(phase, err)
	}
	return nil
}

// fail records an engine fault and stops the loop.
func (c *Controller) fail(phase Phase, err error) error {
	fe := &FrameError{Generation: c.engine.Generation(), Phase: phase, Err: err}
	c.fault = fe
	c.armed = false
	c.log.Error("engine fault", "phase", string(phase), "generation", fe.Generation, "error", err)
	return fe
}
