package life

import (
	"errors"
	"fmt"
	"image/color"

	"mad-life/internal/core"
	"mad-life/internal/render"
)

// ErrCellPixelSize is returned for non-positive cell pixel sizes.
var ErrCellPixelSize = errors.New("life: cell pixel size must be positive")

// Universe implements Conway's Game of Life with toroidal wrapping and renders
// itself into an RGBA framebuffer, one cellSize*cellSize block per cell.
type Universe struct {
	name     string
	w, h     int
	cellSize int

	cur, prev *core.CellGrid

	// counts[i] holds the live neighbour count of cell i for cur. The naive
	// variant leaves them unused and scans neighbours on every step. The
	// pruned variant skips rows with no live cell and no live neighbour.
	counts, prevCounts []uint8
	naive, pruned      bool

	generation uint64
	fb         *render.Framebuffer
	palette    []color.RGBA
}

// New returns a randomly seeded universe that tracks neighbour counts
// incrementally.
func New(w, h, cellSize int, seed int64) (*Universe, error) {
	return newUniverse("life", w, h, cellSize, seed, false)
}

// NewPruned returns a counting universe that leaves quiescent rows untouched
// on each step. Sparse boards step much faster.
func NewPruned(w, h, cellSize int, seed int64) (*Universe, error) {
	u, err := newUniverse("life-pruned", w, h, cellSize, seed, false)
	if err != nil {
		return nil, err
	}
	u.pruned = true
	return u, nil
}

// NewNaive returns a randomly seeded universe that recounts every neighbourhood
// on each step.
func NewNaive(w, h, cellSize int, seed int64) (*Universe, error) {
	return newUniverse("life-naive", w, h, cellSize, seed, true)
}

func newUniverse(name string, w, h, cellSize int, seed int64, naive bool) (*Universe, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("life: invalid grid %dx%d", w, h)
	}
	if cellSize <= 0 {
		return nil, ErrCellPixelSize
	}
	u := &Universe{
		name:     name,
		w:        w,
		h:        h,
		cellSize: cellSize,
		cur:      core.NewCellGrid(w, h),
		prev:     core.NewCellGrid(w, h),
		naive:    naive,
		fb:       render.NewFramebuffer(w*cellSize, h*cellSize),
		palette:  render.BuildGradient(w, h),
	}
	if !naive {
		u.counts = make([]uint8, w*h)
		u.prevCounts = make([]uint8, w*h)
	}
	u.Reset(seed)
	return u, nil
}

// Name returns the engine identifier.
func (u *Universe) Name() string { return u.name }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: u.w, H: u.h} }

// Generation returns the number of steps taken since the last Reset.
func (u *Universe) Generation() uint64 { return u.generation }

// CellPixelSize returns the edge length of a rendered cell.
func (u *Universe) CellPixelSize() int { return u.cellSize }

// Population counts live cells.
func (u *Universe) Population() int { return u.cur.Population() }

// Reset randomizes the board using the provided seed and repaints it.
func (u *Universe) Reset(seed int64) {
	core.NewRNG(seed).FillCells(u.cur.Cells())
	u.prev.Fill(core.Dead)
	u.generation = 0
	u.recount()
	u.repaintAll()
}

// Clear kills every cell.
func (u *Universe) Clear() {
	u.cur.Fill(core.Dead)
	u.recount()
	u.repaintAll()
}

// Cell returns the state at (x, y).
func (u *Universe) Cell(x, y int) (core.CellState, error) {
	if !u.Size().Contains(x, y) {
		return core.Dead, core.ErrOutOfBounds
	}
	return u.cur.At(x, y), nil
}

// SetCell writes s at (x, y) and repaints the cell.
func (u *Universe) SetCell(x, y int, s core.CellState) error {
	if !u.Size().Contains(x, y) {
		return core.ErrOutOfBounds
	}
	if u.cur.At(x, y) == s {
		return nil
	}
	u.cur.Set(x, y, s)
	if !u.naive {
		if s == core.Alive {
			u.increment(u.counts, x, y)
		} else {
			u.decrement(u.counts, x, y)
		}
	}
	u.paint(x, y)
	return nil
}

// SetCellPixelSize reallocates the framebuffer for the new cell size. Views
// taken before the call report render.ErrStaleView afterwards.
func (u *Universe) SetCellPixelSize(n int) error {
	if n <= 0 {
		return ErrCellPixelSize
	}
	if n == u.cellSize {
		return nil
	}
	u.cellSize = n
	u.fb.Resize(u.w*n, u.h*n)
	u.repaintAll()
	return nil
}

// Framebuffer borrows the current framebuffer.
func (u *Universe) Framebuffer() (render.View, error) {
	return u.fb.View(), nil
}

// Step advances the simulation by one generation and repaints changed cells.
func (u *Universe) Step() error {
	u.cur, u.prev = u.prev, u.cur
	if u.naive {
		u.stepNaive()
	} else {
		u.stepCounting()
	}
	u.generation++

	cur, prev := u.cur.Cells(), u.prev.Cells()
	for i := range cur {
		if cur[i] != prev[i] {
			u.paint(i%u.w, i/u.w)
		}
	}
	return nil
}

func (u *Universe) stepCounting() {
	u.counts, u.prevCounts = u.prevCounts, u.counts
	clear(u.counts)
	prev := u.prev.Cells()
	cur := u.cur.Cells()
	for y := 0; y < u.h; y++ {
		row := y * u.w
		if u.pruned && quiescent(prev[row:row+u.w], u.prevCounts[row:row+u.w]) {
			clear(cur[row : row+u.w])
			continue
		}
		for x := 0; x < u.w; x++ {
			idx := row + x
			next := rule(prev[idx], int(u.prevCounts[idx]))
			cur[idx] = next
			if next == core.Alive {
				u.increment(u.counts, x, y)
			}
		}
	}
}

func (u *Universe) stepNaive() {
	w, h := u.w, u.h
	prev := u.prev.Cells()
	cur := u.cur.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					if prev[ny*w+nx] == core.Alive {
						neighbors++
					}
				}
			}
			idx := y*w + x
			cur[idx] = rule(prev[idx], neighbors)
		}
	}
}

// quiescent reports whether a row is dead with no live neighbours, in which
// case it stays dead.
func quiescent(cells []core.CellState, counts []uint8) bool {
	for i, c := range cells {
		if c != core.Dead || counts[i] != 0 {
			return false
		}
	}
	return true
}

func rule(s core.CellState, neighbors int) core.CellState {
	if neighbors == 3 || (s == core.Alive && neighbors == 2) {
		return core.Alive
	}
	return core.Dead
}

func (u *Universe) increment(counts []uint8, x, y int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := u.cur.Wrap(x+dx, y+dy)
			counts[ny*u.w+nx]++
		}
	}
}

func (u *Universe) decrement(counts []uint8, x, y int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := u.cur.Wrap(x+dx, y+dy)
			counts[ny*u.w+nx]--
		}
	}
}

func (u *Universe) recount() {
	if u.naive {
		return
	}
	clear(u.counts)
	cells := u.cur.Cells()
	for i, c := range cells {
		if c == core.Alive {
			u.increment(u.counts, i%u.w, i/u.w)
		}
	}
}

func (u *Universe) paint(x, y int) {
	c := render.DeadColor
	if u.cur.At(x, y) == core.Alive {
		c = u.palette[y*u.w+x]
	}
	s := u.cellSize
	u.fb.FillRect(x*s, y*s, s, s, c)
}

func (u *Universe) repaintAll() {
	for y := 0; y < u.h; y++ {
		for x := 0; x < u.w; x++ {
			u.paint(x, y)
		}
	}
}

func init() {
	core.Register("life", func(opts core.EngineOptions) (core.Engine, error) {
		return New(opts.Width, opts.Height, opts.CellPixelSize, opts.Seed)
	})
	core.Register("life-pruned", func(opts core.EngineOptions) (core.Engine, error) {
		return NewPruned(opts.Width, opts.Height, opts.CellPixelSize, opts.Seed)
	})
	core.Register("life-naive", func(opts core.EngineOptions) (core.Engine, error) {
		return NewNaive(opts.Width, opts.Height, opts.CellPixelSize, opts.Seed)
	})
}
