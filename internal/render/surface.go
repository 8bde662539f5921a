//go:build ebiten

package render

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface uploads framebuffer views into a single ebiten image.
type Surface struct {
	w, h   int
	img    *ebiten.Image
	origin image.Point
}

// NewSurface allocates a surface of w*h pixels drawn at origin.
func NewSurface(w, h int, origin image.Point) *Surface {
	s := &Surface{origin: origin}
	s.Resize(w, h)
	return s
}

// Resize replaces the backing image when the dimensions change.
func (s *Surface) Resize(w, h int) {
	if s.img != nil && s.w == w && s.h == h {
		return
	}
	if s.img != nil {
		s.img.Dispose()
	}
	s.w, s.h = w, h
	s.img = ebiten.NewImage(max(w, 1), max(h, 1))
}

// Present uploads the view pixels.
func (s *Surface) Present(v View) error {
	pix, err := v.Pix()
	if err != nil {
		return err
	}
	if v.Width() != s.w || v.Height() != s.h {
		return fmt.Errorf("render: view %dx%d does not match surface %dx%d", v.Width(), v.Height(), s.w, s.h)
	}
	s.img.WritePixels(pix)
	return nil
}

// Origin returns the surface top-left corner in screen coordinates.
func (s *Surface) Origin() image.Point { return s.origin }

// Draw blits the last presented frame onto dst.
func (s *Surface) Draw(dst *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(s.origin.X), float64(s.origin.Y))
	dst.DrawImage(s.img, op)
}
