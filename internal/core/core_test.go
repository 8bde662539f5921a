package core

import (
	"testing"
	"time"
)

func TestCellGridWrap(t *testing.T) {
	g := NewCellGrid(5, 4)
	cases := []struct{ x, y, wx, wy int }{
		{-1, -1, 4, 3},
		{5, 4, 0, 0},
		{7, -5, 2, 3},
		{2, 1, 2, 1},
	}
	for _, c := range cases {
		x, y := g.Wrap(c.x, c.y)
		if x != c.wx || y != c.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
}

func TestCellGridPopulation(t *testing.T) {
	g := NewCellGrid(3, 3)
	g.Set(1, 2, Alive)
	g.Set(0, 0, Alive)
	if got := g.Population(); got != 2 {
		t.Fatalf("population = %d, want 2", got)
	}
	if g.At(1, 2) != Alive || g.Cells()[g.Index(1, 2)] != Alive {
		t.Fatalf("cell (1,2) not alive")
	}
	g.Fill(Dead)
	if g.Population() != 0 {
		t.Fatalf("fill dead left live cells")
	}
}

func TestCellStateToggle(t *testing.T) {
	if Dead.Toggle() != Alive || Alive.Toggle() != Dead {
		t.Fatalf("toggle is not an involution")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := make([]CellState, 256)
	b := make([]CellState, 256)
	NewRNG(7).FillCells(a)
	NewRNG(7).FillCells(b)
	alive := 0
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d", i)
		}
		if a[i] == Alive {
			alive++
		}
	}
	if alive == 0 || alive == len(a) {
		t.Fatalf("fill is degenerate: %d/%d alive", alive, len(a))
	}
}

func TestIntervalDue(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	iv := NewInterval(time.Second)
	if iv.Due(t0) {
		t.Fatalf("first poll must only arm")
	}
	if iv.Due(t0.Add(999 * time.Millisecond)) {
		t.Fatalf("fired early")
	}
	if !iv.Due(t0.Add(time.Second)) {
		t.Fatalf("did not fire on the period boundary")
	}
	if iv.Due(t0.Add(1500 * time.Millisecond)) {
		t.Fatalf("fired twice in one period")
	}
	// Several periods late: one firing, then re-armed relative to the poll.
	late := t0.Add(10 * time.Second)
	if !iv.Due(late) {
		t.Fatalf("late poll did not fire")
	}
	if iv.Due(late.Add(999 * time.Millisecond)) {
		t.Fatalf("catch-up fired a backlog")
	}
	if !iv.Due(late.Add(time.Second)) {
		t.Fatalf("did not re-arm relative to the late poll")
	}
	if NewInterval(0).Period() != time.Second {
		t.Fatalf("non-positive period should fall back to one second")
	}
}

func TestParameterLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "b", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	if p, ok := snap.Lookup("y"); !ok || p.Value != "2" {
		t.Fatalf("lookup y = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("z"); ok {
		t.Fatalf("lookup of missing key succeeded")
	}
}
