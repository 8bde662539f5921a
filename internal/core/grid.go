package core

// CellGrid stores a 2D grid of cell states in row-major order.
type CellGrid struct {
	W, H  int
	cells []CellState
}

// NewCellGrid allocates a dead grid with the given dimensions.
func NewCellGrid(w, h int) *CellGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &CellGrid{W: w, H: h, cells: make([]CellState, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *CellGrid) Cells() []CellState { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *CellGrid) Index(x, y int) int { return y*g.W + x }

// At returns the state at (x, y). Coordinates must be inside the grid.
func (g *CellGrid) At(x, y int) CellState { return g.cells[y*g.W+x] }

// Set stores s at (x, y). Coordinates must be inside the grid.
func (g *CellGrid) Set(x, y int, s CellState) { g.cells[y*g.W+x] = s }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *CellGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Fill sets every cell to s.
func (g *CellGrid) Fill(s CellState) {
	for i := range g.cells {
		g.cells[i] = s
	}
}

// Population counts live cells.
func (g *CellGrid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}
