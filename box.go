package wtree

import (
	"fmt"
	"image"

	"9fans.net/go/draw"
)

// BoxProps configures a Box.
type BoxProps struct {
	Vertical bool
}

// Box places its kids next to each other, or below each other when vertical,
// with the spacing of its style between them.
//
// Kids get their natural size along the main axis. Extra space goes to kids
// with the Expand flag, up to their maximum; if space is short, kids shrink
// from natural toward their minimum, in proportion to how much they can
// shrink. Across, kids with the Stretch flag fill the box, others get their
// natural size and are aligned by the style of the box.
type Box struct {
	BoxProps
}

var BoxKind = &Kind{
	Name:    "Box",
	New:     func() UI { return &Box{} },
	Apply:   applyBox,
	MaxKids: -1,
}

var _ UI = &Box{}
var _ HeightForWidther = &Box{}

// NewHBox returns a widget for a horizontal box.
func NewHBox(kids ...*Widget) *Widget {
	return W(BoxKind, BoxProps{}, kids...)
}

// NewVBox returns a widget for a vertical box.
func NewVBox(kids ...*Widget) *Widget {
	return W(BoxKind, BoxProps{Vertical: true}, kids...)
}

func applyBox(dui *DUI, self *Element, props interface{}) Change {
	ui := self.UI.(*Box)
	p := propsOf[BoxProps](self.Kind(), props)
	if p == ui.BoxProps {
		return ChangeNone
	}
	ui.BoxProps = p
	return ChangeLayout
}

func (ui *Box) Boundaries(dui *DUI, self *Element) Boundaries {
	return KidsAdd(dui, self.Kids, ui.Vertical, self.Style.Spacing)
}

// crossSize returns the size of k across the main axis, given avail space.
// For horizontal boxes, main is the width of k, which determines its natural height.
func crossSize(dui *DUI, k *Element, vertical bool, avail, main int) int {
	b := dui.Measure(k)
	min, nat, max := cross(b.Min, vertical), cross(b.Natural, vertical), cross(b.Max, vertical)
	if !vertical {
		nat = dui.HeightForWidth(k, main)
	}
	if k.Flags&Stretch != 0 {
		return maximum(min, minimum(avail, max))
	}
	return maximum(min, minimum(nat, avail))
}

// mainSizes returns the size along the main axis for each kid.
func (ui *Box) mainSizes(dui *DUI, kids []*Element, avail, crossAvail int) []int {
	n := len(kids)
	sizes := make([]int, n)
	mins := make([]int, n)
	maxs := make([]int, n)
	expand := make([]bool, n)
	total := 0
	for i, k := range kids {
		b := dui.Measure(k)
		mins[i] = dim(b.Min, ui.Vertical)
		sizes[i] = dim(b.Natural, ui.Vertical)
		maxs[i] = dim(b.Max, ui.Vertical)
		expand[i] = k.Flags&Expand != 0
		if ui.Vertical {
			sizes[i] = dui.HeightForWidth(k, crossSize(dui, k, true, crossAvail, 0))
		}
		total = addSat(total, sizes[i])
	}
	if extra := avail - total; extra > 0 {
		grow(sizes, maxs, expand, extra)
	} else if extra < 0 {
		shrink(sizes, mins, -extra)
	}
	return sizes
}

// grow hands out extra space evenly to the expanding kids, up to their maximum.
func grow(sizes, maxs []int, expand []bool, extra int) {
	for extra > 0 {
		var open []int
		for i := range sizes {
			if expand[i] && sizes[i] < maxs[i] {
				open = append(open, i)
			}
		}
		if len(open) == 0 {
			return
		}
		share := extra / len(open)
		rem := extra % len(open)
		given := 0
		for j, i := range open {
			d := share
			if j < rem {
				d++
			}
			d = minimum(d, maxs[i]-sizes[i])
			sizes[i] += d
			given += d
		}
		if given == 0 {
			return
		}
		extra -= given
	}
}

// shrink takes deficit from the sizes in proportion to their distance to the minimum.
// If the minimums together do not fit, all sizes end up at their minimum.
func shrink(sizes, mins []int, deficit int) {
	room := 0
	for i := range sizes {
		room += sizes[i] - mins[i]
	}
	if room <= 0 {
		return
	}
	if deficit >= room {
		copy(sizes, mins)
		return
	}
	taken := 0
	for i := range sizes {
		d := int(int64(deficit) * int64(sizes[i]-mins[i]) / int64(room))
		sizes[i] -= d
		taken += d
	}
	// rounding leftovers, one pixel at a time
	for i := 0; taken < deficit; i = (i + 1) % len(sizes) {
		if sizes[i] > mins[i] {
			sizes[i]--
			taken++
		}
	}
}

func (ui *Box) Arrange(dui *DUI, self *Element, inner image.Rectangle) {
	kids := VisibleKids(self)
	if len(kids) == 0 {
		return
	}
	v := ui.Vertical
	spacing := self.Style.Spacing * (len(kids) - 1)
	size := inner.Size()
	avail := maximum(0, dim(size, v)-spacing)
	crossAvail := cross(size, v)
	sizes := ui.mainSizes(dui, kids, avail, crossAvail)

	used := spacing
	for _, s := range sizes {
		used += s
	}
	mainAlign, crossAlign := byte(self.Style.Halign), byte(self.Style.Valign)
	if v {
		mainAlign, crossAlign = crossAlign, mainAlign
	}

	cur := alignOffset(mainAlign, dim(size, v), used)
	for i, k := range kids {
		c := crossSize(dui, k, v, crossAvail, sizes[i])
		off := 0
		if k.Flags&Stretch == 0 {
			off = alignOffset(crossAlign, crossAvail, c)
		}
		min := inner.Min.Add(mkpt(cur, off, v))
		dui.Arrange(k, image.Rectangle{min, min.Add(mkpt(sizes[i], c, v))})
		cur += sizes[i] + self.Style.Spacing
	}
}

func (ui *Box) HeightForWidth(dui *DUI, self *Element, width int) int {
	kids := VisibleKids(self)
	if len(kids) == 0 {
		return 0
	}
	spacing := self.Style.Spacing * (len(kids) - 1)
	if ui.Vertical {
		h := spacing
		for _, k := range kids {
			h = addSat(h, dui.HeightForWidth(k, crossSize(dui, k, true, width, 0)))
		}
		return h
	}
	sizes := ui.mainSizes(dui, kids, maximum(0, width-spacing), 0)
	h := 0
	for i, k := range kids {
		h = maximum(h, dui.HeightForWidth(k, sizes[i]))
	}
	return h
}

func (ui *Box) Draw(dui *DUI, self *Element, p Painter, force bool) {
	KidsDraw(dui, self, self.Kids, p, force)
}

func (ui *Box) Mouse(dui *DUI, self *Element, m, origM draw.Mouse) (r Result) {
	return KidsMouse(dui, self, self.Kids, m, origM)
}

func (ui *Box) Key(dui *DUI, self *Element, k rune) (r Result) {
	return
}

func (ui *Box) Print(self *Element, indent int) {
	how := "horizontal"
	if ui.Vertical {
		how = "vertical"
	}
	PrintUI(fmt.Sprintf("Box %s", how), self, indent)
	KidsPrint(self.Kids, indent+1)
}
