//go:build ebiten

package app

import (
	"image"
	"image/color"
	"log/slog"
	"time"

	"mad-life/internal/control"
	"mad-life/internal/core"
	"mad-life/internal/render"
	"mad-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a life engine and its controller to the ebiten.Game interface.
// The controller's frame requests are flushed once per Update.
type Game struct {
	ctrl    *control.Controller
	queue   *control.FrameQueue
	surface *render.Surface
	hud     *ui.HUD
	overlay *ui.Overlay
	log     *slog.Logger

	viewW, viewH int
	fitW         int
	cursor       image.Point
	pointer      pointerRouter
}

// New constructs a Game for the provided engine and starts its loop.
func New(engine core.Engine, cfg control.Config) (*Game, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	surface := render.NewSurface(0, 0, image.Point{})
	queue := &control.FrameQueue{}
	ctrl, err := control.New(engine, surface, queue, cfg)
	if err != nil {
		return nil, err
	}
	g := &Game{
		ctrl:    ctrl,
		queue:   queue,
		surface: surface,
		hud:     ui.NewHUD(ctrl, ui.PanelWidth),
		overlay: ui.NewOverlay(ctrl, surface.Origin()),
		log:     cfg.Logger,
	}
	if err := ctrl.Start(); err != nil {
		return nil, err
	}
	return g, nil
}

// Update dispatches input to the controller, then runs the frames it asked
// for.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.decided("toggle pause", g.ctrl.TogglePause())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.decided("step", g.ctrl.Step())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.decided("zoom in", g.ctrl.ZoomIn())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.decided("zoom out", g.ctrl.ZoomOut())
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		g.decided("wheel", g.ctrl.Wheel(-wy))
	}
	if w := g.viewW - g.hud.Width(); w > 0 && w != g.fitW {
		g.fitW = w
		g.decided("fit", g.ctrl.Fit(w))
	}

	g.updatePointer()
	g.hud.Update()

	g.queue.Flush()
	g.ctrl.Poll(time.Now())
	return nil
}

func (g *Game) updatePointer() {
	x, y := ebiten.CursorPosition()
	in := pointerInput{
		Pos:          image.Pt(x, y),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
	if in.JustPressed {
		if onPanel, d := g.hud.Click(x, y, g.viewW-g.hud.Width()); onPanel {
			g.decided("panel", d)
			in.JustPressed = false
		}
	}
	for _, ev := range g.pointer.route(g.ctrl, in) {
		g.decided(ev.Action, ev.Decision)
	}
	g.cursor = in.Pos
}

func (g *Game) decided(action string, d control.Decision) {
	switch {
	case d.Accepted, d.Reason == "":
		return
	case d.Reason == control.ReasonUnchanged, d.Reason == control.ReasonLocked, d.Reason == control.ReasonOutsideGrid:
		return
	}
	g.log.Debug("request rejected", "action", action, "reason", string(d.Reason))
}

// Draw renders the grid surface, the pointer overlay and the panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.surface.Draw(screen)
	g.overlay.Draw(screen, g.cursor)
	g.hud.Draw(screen, g.viewW-g.hud.Width(), g.viewH)
}

// Layout tracks the window size; the logical screen matches it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.viewW, g.viewH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
