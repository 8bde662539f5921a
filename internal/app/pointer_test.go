package app

import (
	"image"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-life/internal/control"
	"mad-life/internal/core"
	"mad-life/internal/render"
)

func newPointerController(t *testing.T) (*control.Controller, core.Engine) {
	t.Helper()
	engine := newEngine(t, 8, 8, 2)
	cfg := control.DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	ctrl, err := control.New(engine, render.NewMemorySurface(image.Point{}), &control.FrameQueue{}, cfg)
	require.NoError(t, err)
	require.NoError(t, ctrl.Start())
	return ctrl, engine
}

func actions(events []pointerEvent) []string {
	var out []string
	for _, ev := range events {
		out = append(out, ev.Action)
	}
	return out
}

func TestReleaseOutsideSurfaceEndsGesture(t *testing.T) {
	ctrl, _ := newPointerController(t)
	var r pointerRouter

	ev := r.route(ctrl, pointerInput{Pos: image.Pt(3, 3), JustPressed: true, Pressed: true})
	require.Equal(t, []string{"pointer down"}, actions(ev))
	require.True(t, ev[0].Decision.Accepted)
	require.Equal(t, control.PausedPainting, ctrl.State())

	ev = r.route(ctrl, pointerInput{Pos: image.Pt(300, -20), Pressed: true})
	require.Equal(t, []string{"pointer move"}, actions(ev))
	assert.Equal(t, control.ReasonOutsideGrid, ev[0].Decision.Reason)
	assert.True(t, ctrl.Painting(), "dragging off the grid keeps the gesture")

	ev = r.route(ctrl, pointerInput{Pos: image.Pt(300, -20), JustReleased: true})
	require.Equal(t, []string{"pointer up"}, actions(ev))
	assert.True(t, ev[0].Decision.Accepted)
	assert.False(t, ctrl.Painting())
	assert.Equal(t, control.Playing, ctrl.State())
	assert.True(t, ctrl.Running())
}

func TestRouterMovesOnlyWhenCursorMoves(t *testing.T) {
	ctrl, engine := newPointerController(t)
	var r pointerRouter

	before, err := engine.Cell(1, 1)
	require.NoError(t, err)
	r.route(ctrl, pointerInput{Pos: image.Pt(2, 2), JustPressed: true, Pressed: true})
	assert.Empty(t, r.route(ctrl, pointerInput{Pos: image.Pt(2, 2), Pressed: true}), "stationary cursor sends nothing")

	ev := r.route(ctrl, pointerInput{Pos: image.Pt(5, 2), Pressed: true})
	require.Equal(t, []string{"pointer move"}, actions(ev))
	painted, err := engine.Cell(2, 1)
	require.NoError(t, err)
	assert.Equal(t, before.Toggle(), painted, "drag stamps the pressed cell's toggled value")
}

func TestRouterPressAndReleaseSameFrame(t *testing.T) {
	ctrl, _ := newPointerController(t)
	var r pointerRouter

	ev := r.route(ctrl, pointerInput{Pos: image.Pt(1, 1), JustPressed: true, JustReleased: true})
	assert.Equal(t, []string{"pointer down", "pointer up"}, actions(ev))
	assert.False(t, ctrl.Painting())
}

func TestRouterIgnoresReleaseWithoutGesture(t *testing.T) {
	ctrl, _ := newPointerController(t)
	var r pointerRouter

	assert.Empty(t, r.route(ctrl, pointerInput{Pos: image.Pt(1, 1), JustReleased: true}))
	assert.Empty(t, r.route(ctrl, pointerInput{Pos: image.Pt(4, 4), Pressed: true}), "held button without a gesture is not a drag")

	ev := r.route(ctrl, pointerInput{Pos: image.Pt(100, 100), JustPressed: true, Pressed: true})
	require.Len(t, ev, 1)
	assert.Equal(t, control.ReasonOutsideGrid, ev[0].Decision.Reason)
	assert.Equal(t, control.Playing, ctrl.State())
}
