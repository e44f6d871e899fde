package wtree

import (
	"fmt"
	"image"

	"9fans.net/go/draw"
)

// ScrollPolicy tells when a scrollbar is shown for an axis.
type ScrollPolicy byte

const (
	ScrollAuto   = ScrollPolicy(iota) // Scrollbar when the content does not fit.
	ScrollAlways                      // Always a scrollbar, even if content fits.
	ScrollNever                       // No scrolling along this axis, content is clipped.
)

func (p ScrollPolicy) String() string {
	switch p {
	case ScrollAuto:
		return "auto"
	case ScrollAlways:
		return "always"
	case ScrollNever:
		return "never"
	}
	return "?"
}

// ScrollProps configures a Scroll.
type ScrollProps struct {
	PolicyX, PolicyY ScrollPolicy
}

// Scroll shows a part of its single kid, typically a box, and lets the user scroll the content.
//
// Keys, when focus is in the scroll or its content:
//
//	arrow up/down/left/right, scroll by a step
//	page up/down, scroll by a page
//	home/end, scroll to the start/end
//
// Mouse: the wheel scrolls, button1 on a scrollbar track pages toward the mouse
// while held, button1 on the thumb drags it, button2 jumps to the mouse position.
type Scroll struct {
	ScrollProps

	viewport   image.Rectangle // Part of the box showing content.
	barX, barY image.Rectangle // Empty if not shown.
	content    image.Point     // Size of the content.
	offset     image.Point     // Top-left of the content shown in the viewport.

	drag struct {
		vertical bool
		active   bool
		offset   image.Point // At start of drag.
	}
	repeat *Timer
}

var ScrollKind = &Kind{
	Name:    "Scroll",
	New:     func() UI { return &Scroll{} },
	Apply:   applyScroll,
	MinKids: 1,
	MaxKids: 1,
	Flags:   Focusable,
}

var _ UI = &Scroll{}
var _ Destroyer = &Scroll{}

// NewScroll returns a widget for a scroll with automatic scrollbars around content.
func NewScroll(content *Widget) *Widget {
	return W(ScrollKind, ScrollProps{}, content)
}

func applyScroll(dui *DUI, self *Element, props interface{}) Change {
	ui := self.UI.(*Scroll)
	p := propsOf[ScrollProps](self.Kind(), props)
	if p == ui.ScrollProps {
		return ChangeNone
	}
	ui.ScrollProps = p
	return ChangeLayout
}

func (ui *Scroll) kid(self *Element) *Element {
	if len(self.Kids) == 0 || self.Kids[0].Visibility == Gone {
		return nil
	}
	return self.Kids[0]
}

func (ui *Scroll) Boundaries(dui *DUI, self *Element) Boundaries {
	var b Boundaries
	if k := ui.kid(self); k != nil {
		b = dui.Measure(k)
	}
	sb := dui.Scale(dui.Config.ScrollbarSize)
	min, nat := b.Min, b.Natural
	if ui.PolicyX != ScrollNever {
		min.X = 0
	}
	if ui.PolicyY != ScrollNever {
		min.Y = 0
	}
	if ui.PolicyY == ScrollAlways {
		min.X += sb
		nat.X += sb
	}
	if ui.PolicyX == ScrollAlways {
		min.Y += sb
		nat.Y += sb
	}
	return Flexible(min, nat)
}

// contentWidth returns the width of the content in a viewport of width w.
// Content that fits, or cannot scroll, gets the viewport width within its bounds.
func (ui *Scroll) contentWidth(b Boundaries, w int) int {
	if ui.PolicyX == ScrollNever || b.Natural.X <= w {
		return maximum(b.Min.X, minimum(w, b.Max.X))
	}
	return b.Natural.X
}

// contentHeight returns the height the content needs in a viewport of width w.
func (ui *Scroll) contentHeight(dui *DUI, k *Element, b Boundaries, w int) int {
	if k == nil {
		return 0
	}
	return dui.HeightForWidth(k, ui.contentWidth(b, w))
}

// scrollbars decides which scrollbars are shown for a viewport of size,
// following the policies. When the content exceeds the viewport along one
// axis only, the other axis is checked once more with the space for the
// first scrollbar taken off. The decision is made once, without iterating, so
// it cannot toggle.
func (ui *Scroll) scrollbars(dui *DUI, k *Element, b Boundaries, size image.Point, sb int) (showX, showY bool) {
	showX = ui.PolicyX == ScrollAlways
	showY = ui.PolicyY == ScrollAlways
	w, h := size.X, size.Y
	if showY {
		w -= sb
	}
	if showX {
		h -= sb
	}
	autoX := ui.PolicyX == ScrollAuto
	autoY := ui.PolicyY == ScrollAuto
	exceedsX := autoX && ui.contentWidth(b, w) > w
	exceedsY := autoY && ui.contentHeight(dui, k, b, w) > h

	switch {
	case exceedsX && exceedsY:
		showX, showY = true, true
	case exceedsX:
		showX = true
		h -= sb
		if autoY && ui.contentHeight(dui, k, b, w) > h {
			showY = true
		}
	case exceedsY:
		showY = true
		w -= sb
		if autoX && ui.contentWidth(b, w) > w {
			showX = true
		}
	}
	return
}

func (ui *Scroll) Arrange(dui *DUI, self *Element, inner image.Rectangle) {
	k := ui.kid(self)
	var b Boundaries
	if k != nil {
		b = dui.Measure(k)
	}
	sb := dui.Scale(dui.Config.ScrollbarSize)
	showX, showY := ui.scrollbars(dui, k, b, inner.Size(), sb)

	size := inner.Size()
	if showY {
		size.X = maximum(0, size.X-sb)
	}
	if showX {
		size.Y = maximum(0, size.Y-sb)
	}
	ui.viewport = image.Rectangle{inner.Min, inner.Min.Add(size)}
	ui.barX = image.ZR
	ui.barY = image.ZR
	if showX {
		ui.barX = image.Rect(inner.Min.X, ui.viewport.Max.Y, ui.viewport.Max.X, inner.Max.Y)
	}
	if showY {
		ui.barY = image.Rect(ui.viewport.Max.X, inner.Min.Y, inner.Max.X, ui.viewport.Max.Y)
	}

	ui.content = image.ZP
	if k != nil {
		cw := ui.contentWidth(b, size.X)
		ch := maximum(dui.HeightForWidth(k, cw), minimum(size.Y, b.Max.Y))
		ui.content = image.Pt(cw, ch)
	}
	ui.correctScrollPos()
	if k != nil {
		min := ui.viewport.Min.Sub(ui.offset)
		dui.Arrange(k, image.Rectangle{min, min.Add(ui.content)})
	}
}

// maxOffset returns the largest scroll offset along each axis.
func (ui *Scroll) maxOffset() image.Point {
	p := image.Pt(
		maximum(0, ui.content.X-ui.viewport.Dx()),
		maximum(0, ui.content.Y-ui.viewport.Dy()),
	)
	if ui.PolicyX == ScrollNever {
		p.X = 0
	}
	if ui.PolicyY == ScrollNever {
		p.Y = 0
	}
	return p
}

// correctScrollPos clamps the offset to the content, after a change of content or viewport size.
func (ui *Scroll) correctScrollPos() {
	max := ui.maxOffset()
	ui.offset.X = clamp(ui.offset.X, 0, max.X)
	ui.offset.Y = clamp(ui.offset.Y, 0, max.Y)
}

// Offset returns the top-left of the content shown.
func (ui *Scroll) Offset() image.Point {
	return ui.offset
}

// Content returns the size of the content, as of the last arrange.
func (ui *Scroll) Content() image.Point {
	return ui.content
}

// Viewport returns the part of the box showing content.
func (ui *Scroll) Viewport() image.Rectangle {
	return ui.viewport
}

// Scrollbars returns which scrollbars are shown.
func (ui *Scroll) Scrollbars() (x, y bool) {
	return !ui.barX.Empty(), !ui.barY.Empty()
}

// ScrollTo sets the offset, clamped to the content. Returns whether the offset changed.
func (ui *Scroll) ScrollTo(self *Element, offset image.Point) bool {
	o := ui.offset
	ui.offset = offset
	ui.correctScrollPos()
	if ui.offset == o {
		return false
	}
	self.MarkArrange()
	return true
}

func (ui *Scroll) scroll(self *Element, delta image.Point) bool {
	return ui.ScrollTo(self, ui.offset.Add(delta))
}

func (ui *Scroll) scrollKey(dui *DUI, self *Element, k rune) bool {
	step := dui.Scale(dui.Config.ScrollStep)
	page := dui.Scale(dui.Config.PageStep)
	switch k {
	case draw.KeyUp:
		return ui.scroll(self, image.Pt(0, -step))
	case draw.KeyDown:
		return ui.scroll(self, image.Pt(0, step))
	case draw.KeyLeft:
		return ui.scroll(self, image.Pt(-step, 0))
	case draw.KeyRight:
		return ui.scroll(self, image.Pt(step, 0))
	case draw.KeyPageUp:
		return ui.scroll(self, image.Pt(0, -page))
	case draw.KeyPageDown:
		return ui.scroll(self, image.Pt(0, page))
	case draw.KeyHome:
		return ui.ScrollTo(self, image.ZP)
	case draw.KeyEnd:
		return ui.ScrollTo(self, ui.maxOffset())
	}
	return false
}

// wheel scrolls vertically if possible, otherwise horizontally.
func (ui *Scroll) wheel(dui *DUI, self *Element, m draw.Mouse) bool {
	step := dui.Scale(dui.Config.ScrollStep)
	var delta int
	switch {
	case m.Buttons&Button4 != 0:
		delta = -step
	case m.Buttons&Button5 != 0:
		delta = step
	default:
		return false
	}
	if ui.maxOffset().Y == 0 {
		return ui.scroll(self, image.Pt(delta, 0))
	}
	return ui.scroll(self, image.Pt(0, delta))
}

// thumb returns the part of the track of a scrollbar representing the visible content.
func (ui *Scroll) thumb(vertical bool) image.Rectangle {
	track := ui.barX
	if vertical {
		track = ui.barY
	}
	length := dim(track.Size(), vertical)
	content := dim(ui.content, vertical)
	view := dim(ui.viewport.Size(), vertical)
	if content <= view || content <= 0 {
		return track
	}
	size := int(int64(length) * int64(view) / int64(content))
	size = minimum(length, maximum(size, minimum(length, 4)))
	pos := int(int64(length) * int64(dim(ui.offset, vertical)) / int64(content))
	pos = clamp(pos, 0, length-size)
	min := track.Min.Add(mkpt(pos, 0, vertical))
	return image.Rectangle{min, min.Add(mkpt(size, cross(track.Size(), vertical), vertical))}
}

// page scrolls one page toward point p on the track. Returns whether the offset changed.
func (ui *Scroll) page(dui *DUI, self *Element, vertical bool, p image.Point) bool {
	th := ui.thumb(vertical)
	amount := dim(ui.viewport.Size(), vertical)
	switch {
	case dim(p, vertical) < dim(th.Min, vertical):
		amount = -amount
	case dim(p, vertical) >= dim(th.Max, vertical):
	default:
		return false
	}
	return ui.scroll(self, mkpt(amount, 0, vertical))
}

// jump scrolls such that the thumb is centered at p.
func (ui *Scroll) jump(self *Element, vertical bool, p image.Point) bool {
	track := ui.barX
	if vertical {
		track = ui.barY
	}
	length := dim(track.Size(), vertical)
	if length <= 0 {
		return false
	}
	rel := dim(p.Sub(track.Min), vertical)
	content := dim(ui.content, vertical)
	o := int(int64(rel)*int64(content)/int64(length)) - dim(ui.viewport.Size(), vertical)/2
	off := ui.offset
	if vertical {
		off.Y = o
	} else {
		off.X = o
	}
	return ui.ScrollTo(self, off)
}

func (ui *Scroll) stopRepeat() {
	if ui.repeat != nil {
		ui.repeat.Cancel()
		ui.repeat = nil
	}
}

func (ui *Scroll) Mouse(dui *DUI, self *Element, m, origM draw.Mouse) (r Result) {
	if ui.drag.active {
		if m.Buttons&Button1 == 0 {
			ui.drag.active = false
			return Result{Hit: self, Consumed: true}
		}
		v := ui.drag.vertical
		length := dim(ui.barX.Size(), false)
		if v {
			length = dim(ui.barY.Size(), true)
		}
		if length > 0 {
			delta := dim(m.Point.Sub(origM.Point), v)
			moved := int(int64(delta) * int64(dim(ui.content, v)) / int64(length))
			ui.ScrollTo(self, ui.drag.offset.Add(mkpt(moved, 0, v)))
		}
		return Result{Hit: self, Consumed: true}
	}
	if m.Buttons&Button1 == 0 {
		ui.stopRepeat()
	}

	onX := m.Point.In(ui.barX)
	onY := m.Point.In(ui.barY)
	if onX || onY {
		v := onY
		press := m == origM // First event with buttons down.
		switch {
		case ui.wheel(dui, self, m):
		case press && m.Buttons&Button1 != 0 && m.Point.In(ui.thumb(v)):
			ui.drag.active = true
			ui.drag.vertical = v
			ui.drag.offset = ui.offset
		case press && m.Buttons&Button1 != 0:
			ui.stopRepeat()
			ui.page(dui, self, v, m.Point)
			ui.repeat = dui.Schedule(self, dui.Config.repeat(), func() bool {
				cur := dui.MouseState()
				if cur.Buttons&Button1 == 0 {
					ui.repeat = nil
					return false
				}
				if !ui.page(dui, self, v, cur.Point) {
					ui.repeat = nil
					return false
				}
				return true
			})
		case press && m.Buttons&Button2 != 0:
			ui.jump(self, v, m.Point)
		}
		return Result{Hit: self, Consumed: true}
	}

	if m.Point.In(ui.viewport) {
		r = KidsMouse(dui, self, self.Kids, m, origM)
	}
	if !r.Consumed && ui.wheel(dui, self, m) {
		r.Consumed = true
	}
	return r
}

func (ui *Scroll) Key(dui *DUI, self *Element, k rune) (r Result) {
	r.Consumed = ui.scrollKey(dui, self, k)
	return
}

func (ui *Scroll) Draw(dui *DUI, self *Element, p Painter, force bool) {
	p.Save()
	p.ClipIn(ui.viewport)
	KidsDraw(dui, self, self.Kids, p, force)
	p.Restore()

	if !force {
		return
	}
	pal := dui.Context.Palette
	hover := dui.Hovered(self)
	bg, vis := pal.ScrollBG, pal.ScrollVisibleNormal
	if hover {
		bg, vis = pal.ScrollBGHover, pal.ScrollVisibleHover
	}
	for _, v := range []bool{false, true} {
		track := ui.barX
		if v {
			track = ui.barY
		}
		if track.Empty() {
			continue
		}
		p.FillRect(track, bg.Background)
		p.FillRect(ui.thumb(v), vis.Background)
	}
}

func (ui *Scroll) Destroy(dui *DUI, self *Element) {
	ui.stopRepeat()
}

func (ui *Scroll) Print(self *Element, indent int) {
	PrintUI(fmt.Sprintf("Scroll %s/%s offset %v content %v", ui.PolicyX, ui.PolicyY, ui.offset, ui.content), self, indent)
	KidsPrint(self.Kids, indent+1)
}
