package internal

import "github.com/veandco/go-sdl2/sdl"

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}

// Inset shrinks r by the padding, never below zero size.
func (p Padding) Inset(r sdl.Rect) sdl.Rect {
	r.X += p.Left
	r.Y += p.Top
	r.W = max(0, r.W-p.Left-p.Right)
	r.H = max(0, r.H-p.Top-p.Bottom)
	return r
}

// BottomCenter places a w×h box centred horizontally on the bottom edge of
// the inset area.
func (p Padding) BottomCenter(area sdl.Rect, w, h int32) sdl.Rect {
	inner := p.Inset(area)
	return sdl.Rect{
		X: inner.X + (inner.W-w)/2,
		Y: inner.Y + inner.H - h,
		W: w,
		H: h,
	}
}
