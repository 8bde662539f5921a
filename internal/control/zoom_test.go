package control

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoomBounds(t *testing.T) {
	low := newHarness(t, 8, 8, 1)
	low.start(t)
	d := low.ctrl.Wheel(1)
	assert.Equal(t, ReasonAtMinimum, d.Reason)
	assert.False(t, low.ctrl.AutoFitLocked(), "rejected zoom must not lock auto-fit")
	assert.Equal(t, 1, low.ctrl.CellSize())

	high := newHarness(t, 8, 8, DefaultMaxCellSize)
	high.start(t)
	assert.Equal(t, DefaultMaxCellSize, high.ctrl.MaxCellSize())
	d = high.ctrl.Wheel(-1)
	assert.Equal(t, ReasonAtMaximum, d.Reason)
	assert.False(t, high.ctrl.AutoFitLocked())
	assert.Equal(t, DefaultMaxCellSize, high.ctrl.CellSize())

	assert.Equal(t, ReasonNoDelta, low.ctrl.Wheel(0).Reason)
	assert.Equal(t, ReasonOutOfRange, low.ctrl.SetZoom(0).Reason)
	assert.Equal(t, ReasonOutOfRange, low.ctrl.SetZoom(DefaultMaxCellSize+1).Reason)
	assert.Equal(t, ReasonUnchanged, low.ctrl.SetZoom(1).Reason)
	assert.Zero(t, low.engine.resizes)
}

func TestExplicitZoomLocksAutoFit(t *testing.T) {
	h := newHarness(t, 8, 8, 4)
	h.start(t)

	d := h.ctrl.Wheel(-3)
	require.True(t, d.Accepted, d.String())
	assert.Equal(t, 5, h.ctrl.CellSize())
	assert.True(t, h.ctrl.AutoFitLocked())
	assert.Equal(t, 5, h.engine.cellSize)
	assert.Equal(t, 40, h.surface.Image().Bounds().Dx())
	assert.Equal(t, 40, h.surface.Image().Bounds().Dy())

	d = h.ctrl.Fit(8 * 9)
	assert.Equal(t, ReasonLocked, d.Reason)
	assert.Equal(t, 5, h.ctrl.CellSize())

	require.True(t, h.ctrl.Wheel(2).Accepted)
	assert.Equal(t, 4, h.ctrl.CellSize())
	assert.True(t, h.ctrl.AutoFitLocked(), "lock never reverts")
	assert.Equal(t, ReasonLocked, h.ctrl.Fit(8*2).Reason)
}

func TestAutoFitRefetchesView(t *testing.T) {
	h := newHarness(t, 8, 8, 1)
	h.start(t)
	before := h.ctrl.View()
	fetches := h.engine.fetches

	d := h.ctrl.Fit(8*3 + 5)
	require.True(t, d.Accepted, d.String())
	assert.Equal(t, 3, h.ctrl.CellSize())
	assert.False(t, h.ctrl.AutoFitLocked(), "auto-fit must not lock")
	assert.Equal(t, fetches+1, h.engine.fetches)
	assert.False(t, before.Valid())
	assert.True(t, h.ctrl.View().Valid())
	assert.Equal(t, 24, h.ctrl.View().Width())

	h.frames(1)
	assert.NoError(t, h.ctrl.Fault(), "frames after a fit present the fresh view")

	assert.Equal(t, ReasonUnchanged, h.ctrl.Fit(8*3).Reason)
	assert.Equal(t, ReasonNoFit, h.ctrl.Fit(7).Reason)

	require.True(t, h.ctrl.Fit(8*100).Accepted)
	assert.Equal(t, DefaultMaxCellSize, h.ctrl.CellSize(), "fit is clamped to the zoom bound")
}

func TestResizeRedrawsOnlyWhenPaused(t *testing.T) {
	h := newHarness(t, 8, 8, 2)
	h.start(t)

	presents := h.surface.Presents()
	require.True(t, h.ctrl.ZoomIn().Accepted)
	assert.Equal(t, presents, h.surface.Presents(), "playing loop redraws on its next frame")

	require.True(t, h.ctrl.Pause().Accepted)
	require.True(t, h.ctrl.ZoomOut().Accepted)
	assert.Equal(t, presents+1, h.surface.Presents(), "paused zoom redraws immediately")
	assert.Equal(t, uint64(0), h.ctrl.Generation())
}

func TestResizeFault(t *testing.T) {
	h := newHarness(t, 8, 8, 2)
	h.start(t)
	h.engine.resizeErr = errors.New("out of memory")

	d := h.ctrl.ZoomIn()
	assert.Equal(t, ReasonEngine, d.Reason)
	assert.False(t, h.ctrl.AutoFitLocked())
	assert.ErrorIs(t, h.ctrl.Fault(), ErrEngineFault)
	assert.False(t, h.ctrl.Running())

	assert.Equal(t, 2, h.ctrl.CellSize(), "failed resize keeps the old size")
	assert.Equal(t, 16, h.surface.Image().Bounds().Dx())
	assert.True(t, h.ctrl.View().Valid())
	x, y, ok := h.ctrl.CellAt(image.Pt(5, 5))
	require.True(t, ok)
	assert.Equal(t, [2]int{2, 2}, [2]int{x, y})

	h.frames(1)
	assert.Equal(t, uint64(0), h.ctrl.Generation(), "faulted loop stays stopped")

	h.engine.resizeErr = nil
	require.True(t, h.ctrl.TogglePause().Accepted)
	h.frames(2)
	assert.NoError(t, h.ctrl.Fault())
	assert.Equal(t, uint64(2), h.ctrl.Generation())
	assert.True(t, h.ctrl.Running())
}

func TestResumeResyncsAfterFailedViewFetch(t *testing.T) {
	h := newHarness(t, 8, 8, 2)
	h.start(t)
	h.engine.fetchErr = errors.New("handle lost")

	assert.Equal(t, ReasonEngine, h.ctrl.ZoomIn().Reason)
	require.ErrorIs(t, h.ctrl.Fault(), ErrEngineFault)
	assert.Equal(t, 3, h.ctrl.CellSize(), "engine resized, so the controller follows it")

	assert.Equal(t, ReasonEngine, h.ctrl.TogglePause().Reason, "resume fails while the view is unavailable")
	require.Error(t, h.ctrl.Fault())

	h.engine.fetchErr = nil
	require.True(t, h.ctrl.TogglePause().Accepted)
	assert.True(t, h.ctrl.View().Valid())
	assert.Equal(t, 24, h.ctrl.View().Width())
	h.frames(3)
	assert.NoError(t, h.ctrl.Fault())
	assert.Equal(t, uint64(3), h.ctrl.Generation())
}
