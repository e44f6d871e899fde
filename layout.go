package wtree

import (
	"image"
)

// Measure returns the boundaries of e, including padding and border,
// constrained by its style. Results are cached until e or one of its kids is
// marked for layout. Gone elements have zero boundaries.
func (d *DUI) Measure(e *Element) Boundaries {
	if e.Visibility == Gone {
		return Boundaries{}
	}
	if e.measured {
		return e.bounds
	}
	d.debugLayout("measure", e)
	b := e.UI.Boundaries(d, e)
	b = b.Normalize().Outset(e.inset().Size())
	b = b.Constrain(e.Style.MinSize, e.Style.MaxSize)
	e.bounds = b
	e.measured = true
	return b
}

// Arrange assigns box r to e and arranges its kids within r, minus padding and border.
// Clean elements that keep their box are skipped.
func (d *DUI) Arrange(e *Element, r image.Rectangle) {
	if e.Visibility == Gone {
		e.R = image.ZR
		e.Layout = Clean
		return
	}
	if !e.measured {
		d.Measure(e)
	}
	if e.Layout == Clean && e.R == r {
		return
	}
	d.debugLayout("arrange", e)
	moved := e.R != r
	dirty := moved || e.Layout == Dirty
	e.R = r
	e.UI.Arrange(d, e, e.inset().Shrink(r))
	e.Layout = Clean
	if dirty {
		e.MarkDraw()
	}
	// the old area must be painted over by the parent
	if moved && e.Parent != nil {
		e.Parent.MarkDraw()
	}
}

// HeightForWidth returns the height e needs when given width, including padding and border.
// Elements without width-dependent height return their natural height.
func (d *DUI) HeightForWidth(e *Element, width int) int {
	b := d.Measure(e)
	if e.Visibility == Gone {
		return 0
	}
	hw, ok := e.UI.(HeightForWidther)
	if !ok {
		return b.Natural.Y
	}
	in := e.inset()
	h := hw.HeightForWidth(d, e, maximum(0, width-in.Dx())) + in.Dy()
	return clamp(h, b.Min.Y, b.Max.Y)
}

// DrawElement draws e and its kids if e is visible, dirty (or force is set) and
// inside the painter's clip rectangle. Kids skipped for being outside the clip
// keep their state, and e stays DirtyKid until they are drawn.
func (d *DUI) DrawElement(e *Element, p Painter, force bool) {
	if e.Visibility != Visible {
		return
	}
	if !force && e.Draw == Clean {
		return
	}
	if _, ok := clipRect(e.R, p.Clip()); !ok {
		return
	}
	force = force || e.Draw == Dirty
	d.debugDraw(e)

	p.Save()
	p.ClipIn(e.R)
	if force {
		paintBox(p, e)
	}
	e.UI.Draw(d, e, p, force)
	p.Restore()
	e.Draw = Clean
	if drawPending(e) {
		e.Draw = DirtyKid
	}
}

// drawPending returns whether a visible kid of e still needs a draw, because
// it was outside the clip. Kids with an empty box can never be seen.
func drawPending(e *Element) bool {
	for _, k := range e.Kids {
		if k.Visibility == Visible && k.Draw != Clean && !k.R.Empty() {
			return true
		}
	}
	return false
}

// paintBox paints background and border of e from its style.
func paintBox(p Painter, e *Element) {
	s := e.Style
	if s.Colors.Background != nil {
		p.FillRect(e.R, s.Colors.Background)
	}
	if s.Border > 0 && s.Colors.Border != nil {
		drawBorder(p, e.R, s.Border, s.Colors.Border, s.Rounded)
	}
}
