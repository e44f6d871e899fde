package wtree

import (
	"fmt"
	"image"

	"9fans.net/go/draw"
)

// Unbounded is used as maximum size for elements that can grow without limit.
// Sums of sizes saturate at Unbounded.
const Unbounded = 1 << 30

// Boundaries is the size range an element can be given during arrangement.
// All sizes include the element's padding and border.
type Boundaries struct {
	Min     image.Point
	Natural image.Point
	Max     image.Point
}

// Fixed returns boundaries that only allow size p.
func Fixed(p image.Point) Boundaries {
	return Boundaries{p, p, p}
}

// Flexible returns boundaries from min to natural, without maximum.
func Flexible(min, natural image.Point) Boundaries {
	return Boundaries{min, natural, pt(Unbounded)}
}

func addSat(a, b int) int {
	if a >= Unbounded || b >= Unbounded || a+b >= Unbounded {
		return Unbounded
	}
	return a + b
}

func addSatPt(a, b image.Point) image.Point {
	return image.Pt(addSat(a.X, b.X), addSat(a.Y, b.Y))
}

func maxPt(a, b image.Point) image.Point {
	return image.Pt(maximum(a.X, b.X), maximum(a.Y, b.Y))
}

func minPt(a, b image.Point) image.Point {
	return image.Pt(minimum(a.X, b.X), minimum(a.Y, b.Y))
}

// Maximize combines boundaries of elements placed on top of each other.
func (b Boundaries) Maximize(o Boundaries) Boundaries {
	return Boundaries{maxPt(b.Min, o.Min), maxPt(b.Natural, o.Natural), maxPt(b.Max, o.Max)}
}

// Add combines boundaries of elements placed next to each other, below each other if vertical.
func (b Boundaries) Add(o Boundaries, vertical bool) Boundaries {
	add := func(p, q image.Point) image.Point {
		main := addSat(dim(p, vertical), dim(q, vertical))
		return mkpt(main, maximum(cross(p, vertical), cross(q, vertical)), vertical)
	}
	return Boundaries{add(b.Min, o.Min), add(b.Natural, o.Natural), add(b.Max, o.Max)}
}

// Outset grows all sizes by p, e.g. for padding.
func (b Boundaries) Outset(p image.Point) Boundaries {
	return Boundaries{addSatPt(b.Min, p), addSatPt(b.Natural, p), addSatPt(b.Max, p)}
}

// Constrain applies an explicit minimum and maximum size.
// Zero coordinates in min or max mean "not set".
func (b Boundaries) Constrain(min, max image.Point) Boundaries {
	if min.X > 0 {
		b.Min.X = maximum(b.Min.X, min.X)
	}
	if min.Y > 0 {
		b.Min.Y = maximum(b.Min.Y, min.Y)
	}
	if max.X > 0 {
		b.Max.X = minimum(b.Max.X, max.X)
	}
	if max.Y > 0 {
		b.Max.Y = minimum(b.Max.Y, max.Y)
	}
	return b.Normalize()
}

// Normalize makes sure Min <= Natural <= Max holds, with Min winning over Max.
func (b Boundaries) Normalize() Boundaries {
	b.Min = maxPt(b.Min, image.ZP)
	b.Max = maxPt(b.Max, b.Min)
	b.Natural = maxPt(minPt(b.Natural, b.Max), b.Min)
	return b
}

// Dominates returns whether each size in b is at least as large as in o.
func (b Boundaries) Dominates(o Boundaries) bool {
	ge := func(p, q image.Point) bool {
		return p.X >= q.X && p.Y >= q.Y
	}
	return ge(b.Min, o.Min) && ge(b.Natural, o.Natural) && ge(b.Max, o.Max)
}

// Valid returns whether Min <= Natural <= Max and nothing is negative.
func (b Boundaries) Valid() bool {
	return b.Min.X >= 0 && b.Min.Y >= 0 && b.Min.X <= b.Natural.X && b.Min.Y <= b.Natural.Y && b.Natural.X <= b.Max.X && b.Natural.Y <= b.Max.Y
}

func (b Boundaries) String() string {
	f := func(v int) string {
		if v >= Unbounded {
			return "inf"
		}
		return fmt.Sprint(v)
	}
	return fmt.Sprintf("min %dx%d nat %dx%d max %sx%s", b.Min.X, b.Min.Y, b.Natural.X, b.Natural.Y, f(b.Max.X), f(b.Max.Y))
}

// clipRect returns the intersection of r and clip, and whether it is non-empty.
func clipRect(r, clip image.Rectangle) (image.Rectangle, bool) {
	ok := draw.RectClip(&r, clip)
	return r, ok
}

// overlaps returns whether r and s share any pixel.
func overlaps(r, s image.Rectangle) bool {
	return draw.RectXRect(r, s)
}
