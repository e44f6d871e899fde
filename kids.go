package wtree

import (
	"9fans.net/go/draw"
)

// VisibleKids returns the kids of self that take part in layout, i.e. are not Gone.
func VisibleKids(self *Element) []*Element {
	kids := make([]*Element, 0, len(self.Kids))
	for _, k := range self.Kids {
		if k.Visibility != Gone {
			kids = append(kids, k)
		}
	}
	return kids
}

// KidsMaximize measures kids and combines them for kids placed on top of each other.
func KidsMaximize(dui *DUI, kids []*Element) (b Boundaries) {
	for _, k := range kids {
		if k.Visibility == Gone {
			continue
		}
		b = b.Maximize(dui.Measure(k))
	}
	return
}

// KidsAdd measures kids and combines them for kids placed next to each other,
// with spacing between them.
func KidsAdd(dui *DUI, kids []*Element, vertical bool, spacing int) (b Boundaries) {
	n := 0
	for _, k := range kids {
		if k.Visibility == Gone {
			continue
		}
		if n > 0 {
			b = b.Add(Fixed(mkpt(spacing, 0, vertical)), vertical)
		}
		b = b.Add(dui.Measure(k), vertical)
		n++
	}
	return
}

// KidsDraw draws the kids, back to front.
func KidsDraw(dui *DUI, self *Element, kids []*Element, p Painter, force bool) {
	for _, k := range kids {
		dui.DrawElement(k, p, force)
	}
}

// KidsMouse delivers the mouse event to the front-most visible kid under the mouse.
func KidsMouse(dui *DUI, self *Element, kids []*Element, m draw.Mouse, origM draw.Mouse) Result {
	for i := len(kids) - 1; i >= 0; i-- {
		k := kids[i]
		if k.Visibility != Visible || !m.Point.In(k.R) {
			continue
		}
		return dui.mouseElement(k, m, origM)
	}
	return Result{Hit: self}
}

// KidsPrint prints each kid.
func KidsPrint(kids []*Element, indent int) {
	for _, k := range kids {
		k.UI.Print(k, indent)
	}
}
