//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"mad-life/internal/control"
	"mad-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Controls is the controller surface the panel reads and drives.
type Controls interface {
	Parameters() core.ParameterSnapshot
	Paused() bool
	StepEnabled() bool
	DisplayRate() float64
	CellSize() int
	MaxCellSize() int
	Fault() error
	TogglePause() control.Decision
	Step() control.Decision
}

// HUD renders the control panel to the right of the simulation view.
type HUD struct {
	ctrl       Controls
	width      int
	layout     PanelLayout
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided controller and panel width.
func NewHUD(ctrl Controls, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{ctrl: ctrl, width: width, layout: NewPanelLayout(width)}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Width returns the panel width.
func (h *HUD) Width() int { return h.width }

// Update refreshes the cached parameter snapshot.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.snapshot = h.ctrl.Parameters()
}

// Click dispatches a press at screen position (x, y). It reports whether the
// press landed on the panel, in which case the caller must not treat it as a
// paint gesture.
func (h *HUD) Click(x, y, panelOffsetX int) (bool, control.Decision) {
	if h == nil || h.width <= 0 || x < panelOffsetX || x >= panelOffsetX+h.width {
		return false, control.Decision{}
	}
	switch h.layout.Hit(x-panelOffsetX, y) {
	case ButtonPause:
		return true, h.ctrl.TogglePause()
	case ButtonStep:
		return true, h.ctrl.Step()
	}
	return true, control.Decision{}
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, "Game of Life", face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	fps := FPSLabel(h.ctrl.DisplayRate())
	bounds := text.BoundString(face, fps)
	text.Draw(h.panel, fps, face, h.width-panelPadding-bounds.Dx(), headerY, color.RGBA{R: 120, G: 200, B: 140, A: 255})

	h.drawButton(h.layout.Pause, PauseLabel(h.ctrl.Paused() || h.ctrl.Fault() != nil), true)
	h.drawButton(h.layout.Step, "Step", h.ctrl.StepEnabled())

	y := readoutTop
	text.Draw(h.panel, ZoomLabel(h.ctrl.CellSize(), h.ctrl.MaxCellSize()), face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	y += lineHeight + lineHeight/2
	for _, line := range ReadoutLines(h.snapshot) {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += lineHeight
	}

	if err := h.ctrl.Fault(); err != nil {
		y += lineHeight
		red := color.RGBA{R: 240, G: 110, B: 100, A: 255}
		text.Draw(h.panel, "Stopped:", face, panelPadding, y, red)
		cols := (h.width - 2*panelPadding) / face.Advance
		for _, line := range WrapText(err.Error(), cols) {
			y += lineHeight
			text.Draw(h.panel, line, face, panelPadding, y, red)
		}
		y += lineHeight
		text.Draw(h.panel, "Play to retry", face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	textWidth := bounds.Dx()
	textHeight := bounds.Dy()
	x := rect.Min.X + (rect.Dx()-textWidth)/2
	y := rect.Min.Y + (rect.Dy()-textHeight)/2 + textHeight
	text.Draw(h.panel, label, face, x, y, fg)
}
