package render

import (
	"errors"
	"image/color"
)

// ErrStaleView is returned when a View is read after its framebuffer was
// reallocated.
var ErrStaleView = errors.New("render: framebuffer view used after resize")

// Framebuffer is an RGBA pixel buffer, 4 bytes per pixel in row-major order.
// Every Resize bumps its generation and invalidates outstanding views.
type Framebuffer struct {
	w, h       int
	pix        []byte
	generation uint64
}

// NewFramebuffer allocates a framebuffer of w*h pixels.
func NewFramebuffer(w, h int) *Framebuffer {
	fb := &Framebuffer{}
	fb.alloc(w, h)
	return fb
}

func (fb *Framebuffer) alloc(w, h int) {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	fb.w, fb.h = w, h
	fb.pix = make([]byte, 4*w*h)
}

// Resize reallocates the buffer and invalidates every existing View.
func (fb *Framebuffer) Resize(w, h int) {
	fb.alloc(w, h)
	fb.generation++
}

// Size returns the buffer dimensions in pixels.
func (fb *Framebuffer) Size() (int, int) { return fb.w, fb.h }

// Generation identifies the current allocation.
func (fb *Framebuffer) Generation() uint64 { return fb.generation }

// FillRect paints a w*h block with its top-left corner at (x, y).
func (fb *Framebuffer) FillRect(x, y, w, h int, c color.RGBA) {
	fillRectRGBA(fb.pix, fb.w, fb.h, x, y, w, h, c)
}

// Fill paints every pixel with c.
func (fb *Framebuffer) Fill(c color.RGBA) {
	fillRectRGBA(fb.pix, fb.w, fb.h, 0, 0, fb.w, fb.h, c)
}

// View borrows the current allocation.
func (fb *Framebuffer) View() View {
	return View{fb: fb, generation: fb.generation, w: fb.w, h: fb.h}
}

// View is a borrowed, generation-stamped handle on a Framebuffer. It must be
// re-fetched after every resize; a stale view fails fast instead of exposing
// the reallocated buffer.
type View struct {
	fb         *Framebuffer
	generation uint64
	w, h       int
}

// Width returns the view width in pixels.
func (v View) Width() int { return v.w }

// Height returns the view height in pixels.
func (v View) Height() int { return v.h }

// Generation returns the framebuffer generation the view was taken from.
func (v View) Generation() uint64 { return v.generation }

// Valid reports whether the view still refers to the live allocation.
func (v View) Valid() bool {
	return v.fb != nil && v.fb.generation == v.generation
}

// Pix returns the raw pixel bytes. The slice must not be retained past the
// next resize.
func (v View) Pix() ([]byte, error) {
	if !v.Valid() {
		return nil, ErrStaleView
	}
	return v.fb.pix, nil
}
