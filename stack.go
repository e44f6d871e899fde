package wtree

import (
	"image"

	"9fans.net/go/draw"
)

// Stack places its kids on top of each other, the last kid in front. Kids with
// the Stretch flag fill the stack, others get their natural size, aligned by
// the style of the stack. With middle alignment, a Stack centers its kids.
type Stack struct{}

var StackKind = &Kind{
	Name:    "Stack",
	New:     func() UI { return &Stack{} },
	MaxKids: -1,
}

var _ UI = &Stack{}
var _ HeightForWidther = &Stack{}

// NewStack returns a widget for a stack with kids.
func NewStack(kids ...*Widget) *Widget {
	return W(StackKind, nil, kids...)
}

func (ui *Stack) Boundaries(dui *DUI, self *Element) Boundaries {
	return KidsMaximize(dui, self.Kids)
}

// kidSize returns the size of k in an area of size avail.
func (ui *Stack) kidSize(dui *DUI, k *Element, avail image.Point) image.Point {
	b := dui.Measure(k)
	if k.Flags&Stretch != 0 {
		return maxPt(b.Min, minPt(avail, b.Max))
	}
	w := maximum(b.Min.X, minimum(b.Natural.X, avail.X))
	h := maximum(b.Min.Y, minimum(dui.HeightForWidth(k, w), avail.Y))
	return image.Pt(w, h)
}

func (ui *Stack) Arrange(dui *DUI, self *Element, inner image.Rectangle) {
	for _, k := range VisibleKids(self) {
		size := ui.kidSize(dui, k, inner.Size())
		off := image.Pt(
			alignOffset(byte(self.Style.Halign), inner.Dx(), size.X),
			alignOffset(byte(self.Style.Valign), inner.Dy(), size.Y),
		)
		min := inner.Min.Add(off)
		dui.Arrange(k, image.Rectangle{min, min.Add(size)})
	}
}

func (ui *Stack) HeightForWidth(dui *DUI, self *Element, width int) int {
	h := 0
	for _, k := range VisibleKids(self) {
		b := dui.Measure(k)
		w := width
		if k.Flags&Stretch == 0 {
			w = maximum(b.Min.X, minimum(b.Natural.X, width))
		}
		h = maximum(h, dui.HeightForWidth(k, w))
	}
	return h
}

func (ui *Stack) Draw(dui *DUI, self *Element, p Painter, force bool) {
	KidsDraw(dui, self, self.Kids, p, force)
}

func (ui *Stack) Mouse(dui *DUI, self *Element, m, origM draw.Mouse) (r Result) {
	return KidsMouse(dui, self, self.Kids, m, origM)
}

func (ui *Stack) Key(dui *DUI, self *Element, k rune) (r Result) {
	return
}

func (ui *Stack) Print(self *Element, indent int) {
	PrintUI("Stack", self, indent)
	KidsPrint(self.Kids, indent+1)
}
