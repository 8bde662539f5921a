//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"mad-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Pointer is the controller state the overlay reads.
type Pointer interface {
	CellAt(p image.Point) (int, int, bool)
	CellSize() int
	Painting() bool
	PaintValue() core.CellState
}

// Overlay outlines the cell under the cursor and flags an active paint
// gesture.
type Overlay struct {
	ctrl   Pointer
	origin image.Point
	pixel  *ebiten.Image
}

// NewOverlay constructs an overlay for a grid drawn at origin.
func NewOverlay(ctrl Pointer, origin image.Point) *Overlay {
	o := &Overlay{ctrl: ctrl, origin: origin}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Draw renders the overlay for the cursor at screen position cursor.
func (o *Overlay) Draw(screen *ebiten.Image, cursor image.Point) {
	if o == nil {
		return
	}
	x, y, ok := o.ctrl.CellAt(cursor)
	if ok {
		n := o.ctrl.CellSize()
		cell := image.Rect(x*n, y*n, (x+1)*n, (y+1)*n).Add(o.origin)
		outline := color.RGBA{R: 160, G: 160, B: 160, A: 160}
		if o.ctrl.Painting() {
			outline = color.RGBA{R: 220, G: 172, B: 52, A: 220}
		}
		o.strokeRect(screen, cell.Inset(-1), outline)
	}
	if o.ctrl.Painting() {
		badge := "painting: " + o.ctrl.PaintValue().String()
		o.fillRect(screen, image.Rect(o.origin.X+4, o.origin.Y+4, o.origin.X+12+7*len(badge), o.origin.Y+24), color.RGBA{A: 180})
		text.Draw(screen, badge, basicfont.Face7x13, o.origin.X+8, o.origin.Y+18, color.RGBA{R: 255, G: 200, B: 60, A: 255})
	}
}

func (o *Overlay) strokeRect(screen *ebiten.Image, r image.Rectangle, col color.RGBA) {
	o.fillRect(screen, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), col)
	o.fillRect(screen, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), col)
	o.fillRect(screen, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), col)
	o.fillRect(screen, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), col)
}

func (o *Overlay) fillRect(screen *ebiten.Image, r image.Rectangle, col color.RGBA) {
	if r.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
