package wtree

import (
	"image"
)

// Space is an inset on each side of a rectangle, used for padding and borders.
type Space struct {
	Top, Right, Bottom, Left int
}

func (s Space) Dx() int {
	return s.Left + s.Right
}

func (s Space) Dy() int {
	return s.Top + s.Bottom
}

func (s Space) Size() image.Point {
	return image.Pt(s.Dx(), s.Dy())
}

func (s Space) Topleft() image.Point {
	return image.Pt(s.Left, s.Top)
}

// Add returns the sum of two spaces, side by side.
func (s Space) Add(o Space) Space {
	return Space{s.Top + o.Top, s.Right + o.Right, s.Bottom + o.Bottom, s.Left + o.Left}
}

// Shrink returns r with the space removed from its sides.
// If the space does not fit, the result is empty, but never has negative size.
func (s Space) Shrink(r image.Rectangle) image.Rectangle {
	dx := maximum(0, r.Dx()-s.Dx())
	dy := maximum(0, r.Dy()-s.Dy())
	x0 := r.Min.X + minimum(maximum(0, s.Left), r.Dx())
	y0 := r.Min.Y + minimum(maximum(0, s.Top), r.Dy())
	return image.Rect(x0, y0, x0+dx, y0+dy)
}

func SpaceXY(x, y int) Space {
	return Space{y, x, y, x}
}
