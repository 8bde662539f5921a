package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// FillCells populates cells with an even mix of live and dead states.
func (r *RNG) FillCells(cells []CellState) {
	for i := range cells {
		if r.Bool() {
			cells[i] = Alive
			continue
		}
		cells[i] = Dead
	}
}
