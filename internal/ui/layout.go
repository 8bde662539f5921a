// Package ui draws the control panel and the pointer overlay. The layout and
// text in this file carry no ebiten dependency so headless builds and tests
// can use them.
package ui

import (
	"fmt"
	"image"

	"mad-life/internal/core"
)

// PanelWidth is the width of the control panel docked to the right edge.
const PanelWidth = 200

const (
	panelPadding   = 12
	lineHeight     = 18
	buttonHeight   = 24
	buttonGap      = 6
	headerBaseline = 18
	controlsTop    = panelPadding + headerBaseline + 14
	readoutTop     = controlsTop + buttonHeight + 2*panelPadding
)

// Button identifies a panel control.
type Button int

const (
	ButtonNone Button = iota
	ButtonPause
	ButtonStep
)

// PanelLayout holds the panel-relative rectangles of the controls.
type PanelLayout struct {
	Pause image.Rectangle
	Step  image.Rectangle
}

// NewPanelLayout splits the control row between the two buttons.
func NewPanelLayout(width int) PanelLayout {
	inner := width - 2*panelPadding
	bw := (inner - buttonGap) / 2
	pause := image.Rect(panelPadding, controlsTop, panelPadding+bw, controlsTop+buttonHeight)
	step := image.Rect(pause.Max.X+buttonGap, controlsTop, pause.Max.X+buttonGap+bw, controlsTop+buttonHeight)
	return PanelLayout{Pause: pause, Step: step}
}

// Hit returns the button under the panel-relative point.
func (l PanelLayout) Hit(x, y int) Button {
	switch {
	case pointInRect(x, y, l.Pause):
		return ButtonPause
	case pointInRect(x, y, l.Step):
		return ButtonStep
	default:
		return ButtonNone
	}
}

// PauseLabel names the action the pause button performs.
func PauseLabel(paused bool) string {
	if paused {
		return "Play"
	}
	return "Pause"
}

// FPSLabel formats the frame rate indicator.
func FPSLabel(rate float64) string {
	return fmt.Sprintf("%d fps", int(rate+0.5))
}

// ZoomLabel shows the cell size against the explicit zoom bound.
func ZoomLabel(cellSize, maxCellSize int) string {
	return fmt.Sprintf("Zoom %d/%d px", cellSize, maxCellSize)
}

// ReadoutLines flattens a parameter snapshot into panel text lines.
func ReadoutLines(snap core.ParameterSnapshot) []string {
	var lines []string
	for i, group := range snap.Groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, group.Name)
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %-11s %s", p.Label, p.Value))
		}
	}
	return lines
}

// WrapText breaks s into lines of at most n runes, splitting on spaces where
// possible.
func WrapText(s string, n int) []string {
	if n <= 0 {
		return nil
	}
	var lines []string
	runes := []rune(s)
	for len(runes) > n {
		cut := n
		for i := n; i > 0; i-- {
			if runes[i] == ' ' {
				cut = i
				break
			}
		}
		lines = append(lines, string(runes[:cut]))
		runes = runes[cut:]
		for len(runes) > 0 && runes[0] == ' ' {
			runes = runes[1:]
		}
	}
	if len(runes) > 0 {
		lines = append(lines, string(runes))
	}
	return lines
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
