package wtree

import (
	"image"

	"9fans.net/go/draw"
)

// FlowProps configures a Flow.
type FlowProps struct {
	Reverse bool // Lay out lines from bottom to top. First kid will be at the bottom.
}

// Flow keeps kids on a line as long as they fit, then moves on to the next
// line. Kids on a line are aligned vertically by the style of the flow,
// spacing from the style is kept between kids and lines.
type Flow struct {
	FlowProps
}

var FlowKind = &Kind{
	Name:    "Flow",
	New:     func() UI { return &Flow{} },
	Apply:   applyFlow,
	MaxKids: -1,
}

var _ UI = &Flow{}
var _ HeightForWidther = &Flow{}

// NewFlow returns a widget for a flow with kids.
func NewFlow(kids ...*Widget) *Widget {
	return W(FlowKind, FlowProps{}, kids...)
}

func applyFlow(dui *DUI, self *Element, props interface{}) Change {
	ui := self.UI.(*Flow)
	p := propsOf[FlowProps](self.Kind(), props)
	if p == ui.FlowProps {
		return ChangeNone
	}
	ui.FlowProps = p
	return ChangeLayout
}

// Boundaries of a flow: at least as wide as the widest kid, naturally all kids on one line.
func (ui *Flow) Boundaries(dui *DUI, self *Element) Boundaries {
	line := KidsAdd(dui, self.Kids, false, self.Style.Spacing)
	widest := KidsMaximize(dui, self.Kids)
	return Flexible(image.Pt(widest.Min.X, line.Natural.Y), line.Natural)
}

// place computes the boxes for kids in width, relative to the origin, and returns the height used.
func (ui *Flow) place(dui *DUI, self *Element, width int) ([]image.Rectangle, int) {
	kids := VisibleKids(self)
	margin := self.Style.Spacing
	rects := make([]image.Rectangle, len(kids))
	nx := 0 // number on current line
	cur := image.ZP
	lineY := 0 // max y of current line

	fixValign := func(first, end int) {
		for i := first; i < end; i++ {
			r := rects[i]
			rects[i] = r.Add(image.Pt(0, alignOffset(byte(self.Style.Valign), lineY, r.Dy())))
		}
	}

	for i, k := range kids {
		b := dui.Measure(k)
		w := maximum(b.Min.X, minimum(b.Natural.X, width))
		size := image.Pt(w, dui.HeightForWidth(k, w))
		if nx > 0 && cur.X+size.X > width {
			fixValign(i-nx, i)
			cur.X = 0
			cur.Y += lineY + margin
			nx = 0
			lineY = 0
		}
		rects[i] = image.Rectangle{cur, cur.Add(size)}
		cur.X += size.X + margin
		lineY = maximum(lineY, size.Y)
		nx++
	}
	fixValign(len(kids)-nx, len(kids))
	height := cur.Y + lineY

	if ui.Reverse {
		for i, r := range rects {
			y1 := height - r.Min.Y
			rects[i] = image.Rect(r.Min.X, y1-r.Dy(), r.Max.X, y1)
		}
	}
	return rects, height
}

func (ui *Flow) HeightForWidth(dui *DUI, self *Element, width int) int {
	_, height := ui.place(dui, self, width)
	return height
}

func (ui *Flow) Arrange(dui *DUI, self *Element, inner image.Rectangle) {
	rects, _ := ui.place(dui, self, inner.Dx())
	for i, k := range VisibleKids(self) {
		dui.Arrange(k, rects[i].Add(inner.Min))
	}
}

func (ui *Flow) Draw(dui *DUI, self *Element, p Painter, force bool) {
	KidsDraw(dui, self, self.Kids, p, force)
}

func (ui *Flow) Mouse(dui *DUI, self *Element, m, origM draw.Mouse) (r Result) {
	return KidsMouse(dui, self, self.Kids, m, origM)
}

func (ui *Flow) Key(dui *DUI, self *Element, k rune) (r Result) {
	return
}

func (ui *Flow) Print(self *Element, indent int) {
	PrintUI("Flow", self, indent)
	KidsPrint(self.Kids, indent+1)
}
