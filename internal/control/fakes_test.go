package control

import (
	"image"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"mad-life/internal/core"
	"mad-life/internal/render"
)

// fakeEngine records every call the controller makes. Stepping does not apply
// a rule; it only counts generations.
type fakeEngine struct {
	size       core.Size
	cellSize   int
	cells      map[[2]int]core.CellState
	writes     [][2]int
	generation uint64
	fb         *render.Framebuffer
	resizes    int
	fetches    int

	stepErr   error
	resizeErr error
	fetchErr  error
	writeErr  error
	clock     *fakeClock
}

func newFakeEngine(w, h, cellSize int) *fakeEngine {
	return &fakeEngine{
		size:     core.Size{W: w, H: h},
		cellSize: cellSize,
		cells:    map[[2]int]core.CellState{},
		fb:       render.NewFramebuffer(w*cellSize, h*cellSize),
	}
}

func (e *fakeEngine) Name() string { return "fake" }
func (e *fakeEngine) Size() core.Size { return e.size }
func (e *fakeEngine) Generation() uint64 { return e.generation }
func (e *fakeEngine) CellPixelSize() int { return e.cellSize }
func (e *fakeEngine) Population() int { return len(e.cells) }
func (e *fakeEngine) Framebuffer() (render.View, error) {
	e.fetches++
	if e.fetchErr != nil {
		return render.View{}, e.fetchErr
	}
	return e.fb.View(), nil
}

func (e *fakeEngine) Step() error {
	if e.stepErr != nil {
		return e.stepErr
	}
	if e.clock != nil {
		e.clock.advance(time.Millisecond)
	}
	e.generation++
	return nil
}

func (e *fakeEngine) Cell(x, y int) (core.CellState, error) {
	if !e.size.Contains(x, y) {
		return core.Dead, core.ErrOutOfBounds
	}
	return e.cells[[2]int{x, y}], nil
}

func (e *fakeEngine) SetCell(x, y int, s core.CellState) error {
	if !e.size.Contains(x, y) {
		return core.ErrOutOfBounds
	}
	if e.writeErr != nil {
		return e.writeErr
	}
	e.writes = append(e.writes, [2]int{x, y})
	if s == core.Alive {
		e.cells[[2]int{x, y}] = s
	} else {
		delete(e.cells, [2]int{x, y})
	}
	return nil
}

func (e *fakeEngine) SetCellPixelSize(n int) error {
	if e.resizeErr != nil {
		return e.resizeErr
	}
	e.cellSize = n
	e.fb.Resize(e.size.W*n, e.size.H*n)
	e.resizes++
	return nil
}

type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type recordingReporter struct {
	got []Throughput
}

func (r *recordingReporter) ReportThroughput(t Throughput) error {
	r.got = append(r.got, t)
	return nil
}

type harness struct {
	ctrl    *Controller
	engine  *fakeEngine
	surface *render.MemorySurface
	queue   *FrameQueue
	clock   *fakeClock
}

func newHarness(t *testing.T, w, h, cellSize int, reporters ...Reporter) *harness {
	t.Helper()
	clock := newFakeClock()
	engine := newFakeEngine(w, h, cellSize)
	engine.clock = clock
	surface := render.NewMemorySurface(image.Point{})
	queue := &FrameQueue{}

	cfg := DefaultConfig()
	cfg.Clock = clock.now
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg.Reporters = reporters
	ctrl, err := New(engine, surface, queue, cfg)
	require.NoError(t, err)
	return &harness{ctrl: ctrl, engine: engine, surface: surface, queue: queue, clock: clock}
}

func (h *harness) start(t *testing.T) {
	t.Helper()
	require.NoError(t, h.ctrl.Start())
}

// frames flushes the queue n times, one host frame each.
func (h *harness) frames(n int) {
	for i := 0; i < n; i++ {
		h.queue.Flush()
	}
}
