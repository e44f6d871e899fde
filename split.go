package wtree

import (
	"fmt"
	"image"

	"9fans.net/go/draw"
)

// SplitProps configures a Split.
type SplitProps struct {
	Vertical bool

	// Space between the kids, in lowDPI pixels.
	// If >0, users can drag the gutter. Manual changes are stored and restored through the DUI's Settings, if the element has a key.
	Gutter int

	// Optional, must return the division of available space. Sum of dims must be dim.
	Split func(dim int) (dims []int)
}

// Split divides its box among its kids, horizontally or vertically, with gutters between them.
type Split struct {
	SplitProps

	dims   []int
	manual struct {
		uiDim int // total of dims + gutters, to see if we need to recalculate dims during arrange
		dims  []int
	}
	m             draw.Mouse
	dragging      bool
	draggingIndex int
}

var SplitKind = &Kind{
	Name:    "Split",
	New:     func() UI { return &Split{} },
	Apply:   applySplit,
	MinKids: 1,
	MaxKids: -1,
}

var _ UI = &Split{}

func applySplit(dui *DUI, self *Element, props interface{}) Change {
	ui := self.UI.(*Split)
	p := propsOf[SplitProps](self.Kind(), props)
	change := ChangeNone
	if p.Vertical != ui.Vertical || p.Gutter != ui.Gutter {
		change = ChangeLayout
		ui.manual.dims = nil
	}
	ui.SplitProps = p
	return change
}

func (ui *Split) ensureManual(dui *DUI) {
	if len(ui.manual.dims) != len(ui.dims) {
		ui.manual.dims = make([]int, len(ui.dims))
	}
	copy(ui.manual.dims, ui.dims)
	gut := dui.Scale(ui.Gutter)
	ui.manual.uiDim = (len(ui.dims) - 1) * gut
	for _, d := range ui.dims {
		ui.manual.uiDim += d
	}
}

// Dimensions returns the current dims. If dims is not nil, they are set as manual dims first,
// and must have one dim for each kid.
func (ui *Split) Dimensions(dui *DUI, self *Element, dims []int) []int {
	if dims != nil {
		if len(dims) != len(VisibleKids(self)) {
			panic("bad dimensions")
		}
		ui.dims = append([]int(nil), dims...)
		ui.ensureManual(dui)
		self.MarkArrange()
	}
	return append([]int(nil), ui.dims...)
}

func (ui *Split) Boundaries(dui *DUI, self *Element) Boundaries {
	return KidsAdd(dui, self.Kids, ui.Vertical, dui.Scale(ui.Gutter))
}

func (ui *Split) Arrange(dui *DUI, self *Element, inner image.Rectangle) {
	kids := VisibleKids(self)
	n := len(kids)
	if n == 0 {
		ui.dims = nil
		return
	}
	gut := dui.Scale(ui.Gutter)
	size := dim(inner.Size(), ui.Vertical)
	have := maximum(0, size-(n-1)*gut)

	// from manual.dims to dims
	reassign := func() {
		ui.dims = make([]int, n)
		if size == ui.manual.uiDim {
			copy(ui.dims, ui.manual.dims)
			return
		}

		had := 0
		for _, d := range ui.manual.dims {
			had += d
		}
		left := have
		for i, d := range ui.manual.dims {
			if i == n-1 {
				ui.dims[i] = left
			} else if had > 0 {
				ui.dims[i] = d * have / had
				left -= ui.dims[i]
			}
		}
		ui.manual.uiDim = size
		copy(ui.manual.dims, ui.dims)
	}

	split := func() {
		if ui.Split == nil {
			ui.dims = make([]int, n)
			for i := range ui.dims {
				ui.dims[i] = have / n
			}
			ui.dims[n-1] = have - (n-1)*(have/n)
		} else {
			ui.dims = ui.Split(have)
			if len(ui.dims) != n {
				panic(fmt.Sprintf("bad number of dims from split, got %d, need %d", len(ui.dims), n))
			}
		}
		ui.manual.dims = nil
		ui.manual.uiDim = 0
	}

	var r []int
	if len(ui.manual.dims) == n {
		reassign()
	} else if dui.ReadSettings(self, &r) && len(r) == n {
		ui.manual.uiDim = (n - 1) * gut
		for _, d := range r {
			ui.manual.uiDim += d
		}
		ui.manual.dims = r
		reassign()
	} else {
		split()
	}

	cur := inner.Min
	for i, k := range kids {
		kr := image.Rectangle{cur, cur.Add(mkpt(ui.dims[i], cross(inner.Size(), ui.Vertical), ui.Vertical))}
		dui.Arrange(k, kr)
		cur = cur.Add(mkpt(ui.dims[i]+gut, 0, ui.Vertical))
	}
}

// gutters returns the rectangles between the kids.
func (ui *Split) gutters(dui *DUI, self *Element) []image.Rectangle {
	gut := dui.Scale(ui.Gutter)
	if gut <= 0 {
		return nil
	}
	inner := self.inset().Shrink(self.R)
	var l []image.Rectangle
	o := 0
	for _, d := range ui.dims[:maximum(0, len(ui.dims)-1)] {
		o += d
		min := inner.Min.Add(mkpt(o, 0, ui.Vertical))
		l = append(l, image.Rectangle{min, min.Add(mkpt(gut, cross(inner.Size(), ui.Vertical), ui.Vertical))})
		o += gut
	}
	return l
}

func (ui *Split) Draw(dui *DUI, self *Element, p Painter, force bool) {
	if force {
		for _, r := range ui.gutters(dui, self) {
			p.FillRect(r, dui.Context.Palette.Gutter.Background)
		}
	}
	KidsDraw(dui, self, self.Kids, p, force)
}

func (ui *Split) Mouse(dui *DUI, self *Element, m, origM draw.Mouse) (r Result) {
	findGutter := func(p image.Point) int {
		slack := dui.Scale(1)
		for i, gr := range ui.gutters(dui, self) {
			gr.Min = gr.Min.Sub(mkpt(slack, 0, ui.Vertical))
			gr.Max = gr.Max.Add(mkpt(slack, 0, ui.Vertical))
			if p.In(gr) {
				return i
			}
		}
		return -1
	}

	if ui.Gutter > 0 && m.Buttons == Button1 && ui.m.Buttons == 0 {
		index := findGutter(m.Point)
		if index >= 0 {
			ui.dragging = true
			ui.draggingIndex = index
			ui.m = m
			r.Hit = self
			r.Consumed = true
			return
		}
	} else if ui.dragging {
		if m.Buttons == Button1 {
			delta := dim(m.Point, ui.Vertical) - dim(ui.m.Point, ui.Vertical)
			if delta != 0 {
				ui.ensureManual(dui)
				i := ui.draggingIndex
				if ui.manual.dims[i]+delta >= 0 && ui.manual.dims[i+1]-delta >= 0 {
					ui.manual.dims[i] += delta
					ui.manual.dims[i+1] -= delta
					dui.WriteSettings(self, ui.manual.dims)
					self.MarkArrange()
				}
			}
			r.Consumed = true
			r.Hit = self
			ui.m = m
			return
		}
		ui.dragging = false
	}
	r = KidsMouse(dui, self, self.Kids, m, origM)
	ui.m = m
	return r
}

func (ui *Split) Key(dui *DUI, self *Element, k rune) (r Result) {
	return
}

func (ui *Split) Print(self *Element, indent int) {
	how := "horizontal"
	if ui.Vertical {
		how = "vertical"
	}
	PrintUI("Split "+how, self, indent)
	KidsPrint(self.Kids, indent+1)
}
