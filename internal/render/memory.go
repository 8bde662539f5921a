package render

import (
	"fmt"
	"image"
)

// MemorySurface is a drawing surface backed by an in-memory image. It serves
// headless runs and tests.
type MemorySurface struct {
	img      *image.RGBA
	origin   image.Point
	presents int
}

// NewMemorySurface returns a surface anchored at origin.
func NewMemorySurface(origin image.Point) *MemorySurface {
	return &MemorySurface{img: image.NewRGBA(image.Rect(0, 0, 0, 0)), origin: origin}
}

// Resize reallocates the backing image when the dimensions change.
func (s *MemorySurface) Resize(w, h int) {
	if b := s.img.Bounds(); b.Dx() == w && b.Dy() == h {
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Present copies the view into the backing image.
func (s *MemorySurface) Present(v View) error {
	pix, err := v.Pix()
	if err != nil {
		return err
	}
	b := s.img.Bounds()
	if v.Width() != b.Dx() || v.Height() != b.Dy() {
		return fmt.Errorf("render: view %dx%d does not match surface %dx%d", v.Width(), v.Height(), b.Dx(), b.Dy())
	}
	copy(s.img.Pix, pix)
	s.presents++
	return nil
}

// Origin returns the surface top-left corner in pointer coordinates.
func (s *MemorySurface) Origin() image.Point { return s.origin }

// Image exposes the last presented frame.
func (s *MemorySurface) Image() *image.RGBA { return s.img }

// Presents counts successful presents.
func (s *MemorySurface) Presents() int { return s.presents }
