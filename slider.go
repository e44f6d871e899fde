package wtree

import (
	"fmt"
	"image"
	"math"

	"9fans.net/go/draw"
)

// SliderProps configures a Slider.
type SliderProps struct {
	Min, Max float64
	Step     float64 // Values are Min plus a multiple of Step. 0 means continuous.
	Value    float64 // Applied when it differs from the previously applied value, or the range changed.
	Vertical bool
	Disabled bool
	Changed  func(dui *DUI, self *Element, value float64) (e Event)
}

// RangeSliderProps configures a RangeSlider.
type RangeSliderProps struct {
	Min, Max      float64
	Step          float64
	First, Second float64 // Applied like Value of SliderProps.
	Vertical      bool
	Disabled      bool
	Changed       func(dui *DUI, self *Element, first, second float64) (e Event)
}

// checkRange panics for ranges that cannot be mapped to pixels.
func checkRange(min, max, step float64) {
	for _, v := range []float64{min, max, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(fmt.Sprintf("slider range with non-finite number, min %v, max %v, step %v", min, max, step))
		}
	}
	if min > max {
		panic(fmt.Sprintf("slider range with min %v > max %v", min, max))
	}
	if step < 0 {
		panic(fmt.Sprintf("slider range with negative step %v", step))
	}
}

func checkValue(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("slider value not finite: %v", v))
	}
}

// handles is the state shared by sliders with one or two handles.
type handles struct {
	min, max, step float64
	values         []float64
	vertical       bool

	active   int // Handle moved by keys, and the last dragged.
	dragging bool
}

// quantize returns v on the step grid, rounding to the nearest step. Exact
// ties go to the lower step.
func (h *handles) quantize(v float64) float64 {
	if h.step == 0 {
		return v
	}
	n := math.Ceil((v-h.min)/h.step - 0.5)
	return h.min + n*h.step
}

// bounds returns the range for handle i: the other handle of a range slider
// bounds it.
func (h *handles) bounds(i int) (lo, hi float64) {
	lo, hi = h.min, h.max
	if len(h.values) == 2 {
		if i == 0 {
			hi = h.values[1]
		} else {
			lo = h.values[0]
		}
	}
	return
}

// set quantizes v, clamps it to the bounds of handle i and stores it.
// Returns whether the value changed.
func (h *handles) set(i int, v float64) bool {
	checkValue(v)
	lo, hi := h.bounds(i)
	nv := clamp(h.quantize(v), lo, hi)
	if nv == h.values[i] {
		return false
	}
	h.values[i] = nv
	return true
}

// setRange sets the range and the values, the last handle first, so earlier
// handles are clamped against later ones.
func (h *handles) setRange(min, max, step float64, values ...float64) {
	checkRange(min, max, step)
	h.min, h.max, h.step = min, max, step
	if len(h.values) != len(values) {
		h.values = make([]float64, len(values))
	}
	for i := len(values) - 1; i >= 0; i-- {
		checkValue(values[i])
		if len(values) == 2 && i == 0 {
			h.values[0] = clamp(h.quantize(values[0]), h.min, h.values[1])
		} else {
			h.values[i] = clamp(h.quantize(values[i]), h.min, h.max)
		}
	}
}

func (h *handles) fraction(v float64) float64 {
	if h.max == h.min {
		return 0
	}
	return (v - h.min) / (h.max - h.min)
}

// layout returns the handle size and the track length for a slider of length.
// The track is the length minus the space taken by all handles, so handles
// never overlap.
func (h *handles) layout(dui *DUI, length int) (size, track int) {
	size = dui.Scale(dui.Config.HandleSize)
	track = maximum(0, length-len(h.values)*size)
	return
}

// handleRect returns the box of handle i within r.
func (h *handles) handleRect(dui *DUI, r image.Rectangle, i int) image.Rectangle {
	size, track := h.layout(dui, dim(r.Size(), h.vertical))
	off := i*size + int(math.Round(h.fraction(h.values[i])*float64(track)))
	if h.vertical {
		// first value at the bottom
		off = dim(r.Size(), true) - off - size
	}
	min := r.Min.Add(mkpt(off, 0, h.vertical))
	return image.Rectangle{min, min.Add(mkpt(size, cross(r.Size(), h.vertical), h.vertical))}
}

// valueAt returns the value for handle i when its center is at p.
func (h *handles) valueAt(dui *DUI, r image.Rectangle, i int, p image.Point) float64 {
	size, track := h.layout(dui, dim(r.Size(), h.vertical))
	pos := dim(p.Sub(r.Min), h.vertical)
	if h.vertical {
		pos = dim(r.Size(), true) - pos
	}
	pos -= i*size + size/2
	if track == 0 {
		return h.values[i]
	}
	f := clamp(float64(pos)/float64(track), 0, 1)
	return h.min + f*(h.max-h.min)
}

// closest returns the handle to move for a press at p: the one under p, or the nearest.
func (h *handles) closest(dui *DUI, r image.Rectangle, p image.Point) int {
	best, bestDist := 0, math.MaxInt
	for i := range h.values {
		hr := h.handleRect(dui, r, i)
		if p.In(hr) {
			return i
		}
		c := dim(hr.Min.Add(hr.Max).Div(2), h.vertical)
		d := dim(p, h.vertical) - c
		if d < 0 {
			d = -d
		}
		if d < bestDist || (d == bestDist && dim(p, h.vertical) > c) {
			best, bestDist = i, d
		}
	}
	return best
}

func (h *handles) boundaries(dui *DUI) Boundaries {
	size := dui.Scale(dui.Config.HandleSize)
	n := len(h.values) * size
	return Flexible(mkpt(n, size, h.vertical), mkpt(n+dui.Scale(100), size, h.vertical))
}

// mouse handles dragging, returning whether a value changed.
func (h *handles) mouse(dui *DUI, r image.Rectangle, m, origM draw.Mouse) (changed bool) {
	if m == origM && m.Buttons == Button1 {
		h.active = h.closest(dui, r, m.Point)
		h.dragging = true
	}
	if !h.dragging {
		return false
	}
	if m.Buttons&Button1 == 0 {
		h.dragging = false
		return false
	}
	return h.set(h.active, h.valueAt(dui, r, h.active, m.Point))
}

// key moves the active handle, returning whether the key was used, and whether the value changed.
func (h *handles) key(k rune) (consumed, changed bool) {
	step := h.step
	if step == 0 {
		step = (h.max - h.min) / 100
	}
	v := h.values[h.active]
	switch k {
	case draw.KeyLeft, draw.KeyDown:
		v -= step
	case draw.KeyRight, draw.KeyUp:
		v += step
	case draw.KeyHome:
		v = h.min
	case draw.KeyEnd:
		v = h.max
	case '\t':
		// tab moves to the next handle of a range slider, then on to the next element
		if len(h.values) == 2 && h.active == 0 {
			h.active = 1
			return true, false
		}
		h.active = 0
		return false, false
	default:
		return false, false
	}
	return true, h.set(h.active, v)
}

func (h *handles) draw(dui *DUI, self *Element, p Painter, disabled, focused bool) {
	pal := dui.Context.Palette
	colors := styleColors(self, pal.Regular.Normal)
	if disabled {
		colors = pal.Disabled
	} else if dui.Hovered(self) {
		colors = pal.Regular.Hover
	}
	r := self.inset().Shrink(self.R)

	// track line, with the selected part of a range in the inverse color
	c := cross(r.Size(), h.vertical) / 2
	thick := dui.Scale(2)
	p0 := r.Min.Add(mkpt(0, c-thick/2, h.vertical))
	p1 := p0.Add(mkpt(dim(r.Size(), h.vertical), 0, h.vertical))
	p.DrawLine(p0, p1, thick, colors.Border)
	if len(h.values) == 2 {
		center := func(i int) int {
			hr := h.handleRect(dui, r, i)
			return dim(hr.Min.Add(hr.Max).Div(2), h.vertical)
		}
		a, b := center(0), center(1)
		y0 := cross(r.Min, h.vertical) + c - thick/2
		sel := image.Rectangle{mkpt(minimum(a, b), y0, h.vertical), mkpt(maximum(a, b), y0+thick, h.vertical)}
		p.FillRect(sel, pal.Inverse.Background)
	}

	for i := range h.values {
		hr := h.handleRect(dui, r, i)
		p.FillRect(hr, colors.Background)
		border := colors.Border
		if focused && i == h.active {
			border = pal.Inverse.Background
		}
		drawBorder(p, hr, dui.Scale(1), border, true)
	}
}

// Slider selects a value from a range by dragging a handle, or with arrow keys when focused.
type Slider struct {
	SliderProps

	h       handles
	applied bool
}

var SliderKind = &Kind{
	Name:  "Slider",
	New:   func() UI { return &Slider{} },
	Apply: applySlider,
	Flags: Focusable | Hoverable,
}

var _ UI = &Slider{}

func applySlider(dui *DUI, self *Element, props interface{}) Change {
	ui := self.UI.(*Slider)
	p := propsOf[SliderProps](self.Kind(), props)
	checkRange(p.Min, p.Max, p.Step)
	checkValue(p.Value)
	change := ChangeNone
	old := ui.SliderProps
	rangeChanged := !ui.applied || p.Min != old.Min || p.Max != old.Max || p.Step != old.Step
	if rangeChanged || p.Value != old.Value {
		v := p.Value
		if ui.applied && p.Value == old.Value {
			// keep the value set by the user
			v = ui.h.values[0]
		}
		ui.h.setRange(p.Min, p.Max, p.Step, v)
		change = ChangeDraw
	}
	if p.Vertical != old.Vertical || !ui.applied {
		ui.h.vertical = p.Vertical
		change = ChangeLayout
	}
	if p.Disabled != old.Disabled {
		change = maxChange(change, ChangeDraw)
	}
	ui.SliderProps = p
	ui.applied = true
	return change
}

// Value returns the current value.
func (ui *Slider) Value() float64 {
	return ui.h.values[0]
}

// SetValue sets the value, quantized and clamped to the range. Changed is not called.
func (ui *Slider) SetValue(self *Element, v float64) {
	if ui.h.set(0, v) {
		self.MarkDraw()
	}
}

func (ui *Slider) Boundaries(dui *DUI, self *Element) Boundaries {
	return ui.h.boundaries(dui)
}

func (ui *Slider) Arrange(dui *DUI, self *Element, inner image.Rectangle) {
}

func (ui *Slider) Draw(dui *DUI, self *Element, p Painter, force bool) {
	ui.h.draw(dui, self, p, ui.Disabled, dui.Focused() == self)
}

func (ui *Slider) changed(dui *DUI, self *Element, r *Result) {
	self.MarkDraw()
	r.Consumed = true
	if ui.Changed != nil {
		propagateEvent(self, r, ui.Changed(dui, self, ui.Value()))
	}
}

func (ui *Slider) Mouse(dui *DUI, self *Element, m, origM draw.Mouse) (r Result) {
	if ui.Disabled {
		return
	}
	if ui.h.mouse(dui, self.inset().Shrink(self.R), m, origM) {
		ui.changed(dui, self, &r)
	}
	r.Consumed = r.Consumed || ui.h.dragging
	return
}

func (ui *Slider) Key(dui *DUI, self *Element, k rune) (r Result) {
	if ui.Disabled {
		return
	}
	consumed, changed := ui.h.key(k)
	r.Consumed = consumed
	if changed {
		ui.changed(dui, self, &r)
	}
	return
}

func (ui *Slider) Print(self *Element, indent int) {
	PrintUI(fmt.Sprintf("Slider %v in [%v,%v]", ui.Value(), ui.Min, ui.Max), self, indent)
}

// RangeSlider selects a range with two handles. The first value is never
// above the second: dragging a handle stops at the other.
type RangeSlider struct {
	RangeSliderProps

	h       handles
	applied bool
}

var RangeSliderKind = &Kind{
	Name:  "RangeSlider",
	New:   func() UI { return &RangeSlider{} },
	Apply: applyRangeSlider,
	Flags: Focusable | Hoverable,
}

var _ UI = &RangeSlider{}

func applyRangeSlider(dui *DUI, self *Element, props interface{}) Change {
	ui := self.UI.(*RangeSlider)
	p := propsOf[RangeSliderProps](self.Kind(), props)
	checkRange(p.Min, p.Max, p.Step)
	checkValue(p.First)
	checkValue(p.Second)
	change := ChangeNone
	old := ui.RangeSliderProps
	rangeChanged := !ui.applied || p.Min != old.Min || p.Max != old.Max || p.Step != old.Step
	if rangeChanged || p.First != old.First || p.Second != old.Second {
		first, second := p.First, p.Second
		if ui.applied && p.First == old.First {
			first = ui.h.values[0]
		}
		if ui.applied && p.Second == old.Second {
			second = ui.h.values[1]
		}
		ui.h.setRange(p.Min, p.Max, p.Step, first, second)
		change = ChangeDraw
	}
	if p.Vertical != old.Vertical || !ui.applied {
		ui.h.vertical = p.Vertical
		change = ChangeLayout
	}
	if p.Disabled != old.Disabled {
		change = maxChange(change, ChangeDraw)
	}
	ui.RangeSliderProps = p
	ui.applied = true
	return change
}

// Values returns the current first and second value.
func (ui *RangeSlider) Values() (first, second float64) {
	return ui.h.values[0], ui.h.values[1]
}

// SetFirst sets the first value, clamped to [min, second]. Changed is not called.
func (ui *RangeSlider) SetFirst(self *Element, v float64) {
	if ui.h.set(0, v) {
		self.MarkDraw()
	}
}

// SetSecond sets the second value, clamped to [first, max]. Changed is not called.
func (ui *RangeSlider) SetSecond(self *Element, v float64) {
	if ui.h.set(1, v) {
		self.MarkDraw()
	}
}

func (ui *RangeSlider) Boundaries(dui *DUI, self *Element) Boundaries {
	return ui.h.boundaries(dui)
}

func (ui *RangeSlider) Arrange(dui *DUI, self *Element, inner image.Rectangle) {
}

func (ui *RangeSlider) Draw(dui *DUI, self *Element, p Painter, force bool) {
	ui.h.draw(dui, self, p, ui.Disabled, dui.Focused() == self)
}

func (ui *RangeSlider) changed(dui *DUI, self *Element, r *Result) {
	self.MarkDraw()
	r.Consumed = true
	if ui.Changed != nil {
		first, second := ui.Values()
		propagateEvent(self, r, ui.Changed(dui, self, first, second))
	}
}

func (ui *RangeSlider) Mouse(dui *DUI, self *Element, m, origM draw.Mouse) (r Result) {
	if ui.Disabled {
		return
	}
	if ui.h.mouse(dui, self.inset().Shrink(self.R), m, origM) {
		ui.changed(dui, self, &r)
	}
	r.Consumed = r.Consumed || ui.h.dragging
	return
}

func (ui *RangeSlider) Key(dui *DUI, self *Element, k rune) (r Result) {
	if ui.Disabled {
		return
	}
	consumed, changed := ui.h.key(k)
	r.Consumed = consumed
	if consumed && !changed {
		self.MarkDraw()
	}
	if changed {
		ui.changed(dui, self, &r)
	}
	return
}

func (ui *RangeSlider) Print(self *Element, indent int) {
	first, second := ui.Values()
	PrintUI(fmt.Sprintf("RangeSlider [%v,%v] in [%v,%v]", first, second, ui.Min, ui.Max), self, indent)
}
