package core

import (
	"errors"
	"sort"

	"mad-life/internal/render"
)

// ErrOutOfBounds is returned when cell coordinates fall outside the grid.
var ErrOutOfBounds = errors.New("core: cell coordinates out of bounds")

// CellState is the value held by a single grid cell.
type CellState uint8

const (
	// Dead is an empty cell.
	Dead CellState = 0
	// Alive is a populated cell.
	Alive CellState = 1
)

// Toggle returns the logical negation of the state.
func (s CellState) Toggle() CellState {
	if s == Alive {
		return Dead
	}
	return Alive
}

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Contains reports whether (x, y) addresses a cell inside the grid.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}

// Engine is the contract the interactive controller drives. It owns the grid
// state and the framebuffer the grid is rendered into.
type Engine interface {
	Name() string
	Size() Size
	// Generation counts the steps taken since construction.
	Generation() uint64
	// Step advances the grid by one generation in place.
	Step() error
	Cell(x, y int) (CellState, error)
	SetCell(x, y int, s CellState) error
	CellPixelSize() int
	// SetCellPixelSize may reallocate the framebuffer; views obtained before
	// the call are invalid afterwards.
	SetCellPixelSize(n int) error
	Framebuffer() (render.View, error)
}

// EngineOptions carries the parameters needed to create an engine.
type EngineOptions struct {
	Width         int
	Height        int
	CellPixelSize int
	Seed          int64
}

// Factory constructs an Engine.
type Factory func(opts EngineOptions) (Engine, error)

var engines = map[string]Factory{}

// Register adds an engine factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	engines[name] = f
}

// Engines exposes the registry of available engine factories.
func Engines() map[string]Factory {
	return engines
}

// EngineNames returns the registered engine names in sorted order.
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
