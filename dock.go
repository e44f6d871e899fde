package wtree

import (
	"fmt"
	"image"
	"math"

	"9fans.net/go/draw"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Band is a place in a Dock, set as LayoutData of the dock's kids.
// Kids without LayoutData go in the body.
type Band byte

const (
	BandBody = Band(iota)
	BandTop
	BandBottom
	BandLeft
	BandRight
	nbands
)

func (b Band) String() string {
	switch b {
	case BandBody:
		return "body"
	case BandTop:
		return "top"
	case BandBottom:
		return "bottom"
	case BandLeft:
		return "left"
	case BandRight:
		return "right"
	}
	return "?"
}

// vertical returns whether the thickness of the band is along the y axis.
func (b Band) vertical() bool {
	return b == BandTop || b == BandBottom
}

// DefaultDockOrder is the order in which bands take their space from the dock when no order is configured.
var DefaultDockOrder = []Band{BandTop, BandLeft, BandRight, BandBottom}

// DockProps configures a Dock.
type DockProps struct {
	// Order in which bands take their space, earlier bands span the full
	// remaining length. Bands left out are placed after, in the default order.
	Order []Band

	// Requested thickness of bands in lowDPI pixels. Bands without request
	// get the natural thickness of their content. Thickness is always clamped
	// to the fraction of the dock given in the config.
	Spaces map[Band]int
}

// DockSpace is emitted by a Dock when the thickness of a band changed by the user.
type DockSpace struct {
	Band  Band
	Space int
}

// Dock partitions its box into four edge bands and a body. Each band has a
// thickness that can be changed by dragging its resizer, between the
// configured minimum and maximum fraction of what is left of the dock when the
// band is placed. Bands without kids take no space and have no resizer.
// Multiple kids in a band, or in the body, divide it evenly.
type Dock struct {
	DockProps

	SpaceChanged Signal[DockSpace]

	order   []Band
	space   [nbands]int   // Current thickness per band.
	extent  [nbands]int   // Space the band was clamped against during the last arrange.
	sized   [nbands]bool  // Whether space was determined for the current content.
	content [nbands][]*Element
	bandR   [nbands]image.Rectangle
	resizer [nbands]image.Rectangle
	loaded  bool // Whether settings were read.

	drag struct {
		band   Band
		active bool
		space  int
	}
}

var DockKind = &Kind{
	Name:    "Dock",
	New:     func() UI { return &Dock{order: DefaultDockOrder} },
	Apply:   applyDock,
	MaxKids: -1,
}

var _ UI = &Dock{}

func dockOrder(order []Band) []Band {
	var l []Band
	for _, b := range order {
		if b <= BandBody || b >= nbands {
			panic(fmt.Sprintf("bad band %d in dock order", b))
		}
		if slices.Contains(l, b) {
			panic(fmt.Sprintf("duplicate band %s in dock order", b))
		}
		l = append(l, b)
	}
	for _, b := range DefaultDockOrder {
		if !slices.Contains(l, b) {
			l = append(l, b)
		}
	}
	return l
}

func applyDock(dui *DUI, self *Element, props interface{}) Change {
	ui := self.UI.(*Dock)
	p := propsOf[DockProps](self.Kind(), props)
	change := ChangeNone
	order := dockOrder(p.Order)
	if !slices.Equal(order, ui.order) {
		ui.order = order
		change = ChangeLayout
	}
	for b := BandTop; b < nbands; b++ {
		if p.Spaces[b] != ui.Spaces[b] {
			ui.sized[b] = false
			change = ChangeLayout
		}
	}
	ui.DockProps = p
	ui.DockProps.Spaces = maps.Clone(p.Spaces)
	return change
}

// band returns the band of dock kid k.
func band(k *Element) Band {
	switch v := k.LayoutData.(type) {
	case nil:
		return BandBody
	case Band:
		if v >= nbands {
			panic(fmt.Sprintf("bad band %d", v))
		}
		return v
	}
	panic(fmt.Sprintf("dock kid needs a Band as layout data, not %T", k.LayoutData))
}

func (ui *Dock) bandKids(self *Element, b Band) []*Element {
	var l []*Element
	for _, k := range self.Kids {
		if k.Visibility != Gone && band(k) == b {
			l = append(l, k)
		}
	}
	return l
}

func (ui *Dock) gutter(dui *DUI) int {
	return dui.Scale(dui.Config.GutterSize)
}

func (ui *Dock) Boundaries(dui *DUI, self *Element) Boundaries {
	b := KidsAdd(dui, ui.bandKids(self, BandBody), false, 0)
	gut := ui.gutter(dui)
	for i := len(ui.order) - 1; i >= 0; i-- {
		band := ui.order[i]
		kids := ui.bandKids(self, band)
		if len(kids) == 0 {
			continue
		}
		v := band.vertical()
		bb := KidsAdd(dui, kids, !v, 0).Add(Fixed(mkpt(gut, 0, v)), v)
		b = bb.Add(b, v)
	}
	return b
}

// limits returns the range for the thickness of a band, for an extent of the remaining space.
func (ui *Dock) limits(dui *DUI, extent int) (lo, hi int) {
	lo = int(math.Round(dui.Config.DockMin * float64(extent)))
	hi = int(math.Round(dui.Config.DockMax * float64(extent)))
	if hi < lo {
		hi = lo
	}
	return
}

// want returns the requested or natural thickness for a band.
func (ui *Dock) want(dui *DUI, b Band, kids []*Element, stored []int) int {
	if v, ok := ui.Spaces[b]; ok && v > 0 {
		return dui.Scale(v)
	}
	if len(stored) == int(nbands) && stored[b] > 0 {
		return stored[b]
	}
	t := 0
	for _, k := range kids {
		t = maximum(t, dim(dui.Measure(k).Natural, b.vertical()))
	}
	return t
}

func (ui *Dock) Arrange(dui *DUI, self *Element, inner image.Rectangle) {
	var stored []int
	if !ui.loaded {
		ui.loaded = true
		dui.ReadSettings(self, &stored)
	}

	gut := ui.gutter(dui)
	rest := inner
	for _, b := range ui.order {
		kids := ui.bandKids(self, b)
		ui.resizer[b] = image.ZR
		ui.bandR[b] = image.ZR
		if len(kids) == 0 {
			ui.space[b] = 0
			ui.content[b] = nil
			ui.sized[b] = false
			continue
		}
		v := b.vertical()
		extent := dim(rest.Size(), v)
		ui.extent[b] = extent
		lo, hi := ui.limits(dui, extent)
		if !ui.sized[b] || !slices.Equal(kids, ui.content[b]) {
			ui.space[b] = clamp(ui.want(dui, b, kids, stored), lo, hi)
			ui.sized[b] = true
			ui.content[b] = kids
		}

		t := minimum(ui.space[b], extent)
		g := minimum(gut, extent-t)
		var bandR, resizerR image.Rectangle
		switch b {
		case BandTop:
			bandR = image.Rect(rest.Min.X, rest.Min.Y, rest.Max.X, rest.Min.Y+t)
			resizerR = image.Rect(rest.Min.X, bandR.Max.Y, rest.Max.X, bandR.Max.Y+g)
			rest.Min.Y = resizerR.Max.Y
		case BandBottom:
			bandR = image.Rect(rest.Min.X, rest.Max.Y-t, rest.Max.X, rest.Max.Y)
			resizerR = image.Rect(rest.Min.X, bandR.Min.Y-g, rest.Max.X, bandR.Min.Y)
			rest.Max.Y = resizerR.Min.Y
		case BandLeft:
			bandR = image.Rect(rest.Min.X, rest.Min.Y, rest.Min.X+t, rest.Max.Y)
			resizerR = image.Rect(bandR.Max.X, rest.Min.Y, bandR.Max.X+g, rest.Max.Y)
			rest.Min.X = resizerR.Max.X
		case BandRight:
			bandR = image.Rect(rest.Max.X-t, rest.Min.Y, rest.Max.X, rest.Max.Y)
			resizerR = image.Rect(bandR.Min.X-g, rest.Min.Y, bandR.Min.X, rest.Max.Y)
			rest.Max.X = resizerR.Min.X
		}
		ui.bandR[b] = bandR
		ui.resizer[b] = resizerR
		arrangeEvenly(dui, kids, bandR, !v)
	}
	ui.bandR[BandBody] = rest
	arrangeEvenly(dui, ui.bandKids(self, BandBody), rest, false)
}

// arrangeEvenly divides r among kids along an axis.
func arrangeEvenly(dui *DUI, kids []*Element, r image.Rectangle, vertical bool) {
	n := len(kids)
	if n == 0 {
		return
	}
	length := dim(r.Size(), vertical)
	cur := r.Min
	for i, k := range kids {
		l := length / n
		if i == n-1 {
			l = length - (n-1)*(length/n)
		}
		dui.Arrange(k, image.Rectangle{cur, cur.Add(mkpt(l, cross(r.Size(), vertical), vertical))})
		cur = cur.Add(mkpt(l, 0, vertical))
	}
}

// Space returns the current thickness of band, 0 for empty bands.
func (ui *Dock) Space(b Band) int {
	return ui.space[b]
}

// BandRect returns the box of band as of the last arrange. Empty for bands without kids.
func (ui *Dock) BandRect(b Band) image.Rectangle {
	return ui.bandR[b]
}

// Resizer returns the area for dragging the thickness of band. Empty for bands without kids.
func (ui *Dock) Resizer(b Band) image.Rectangle {
	return ui.resizer[b]
}

// SetSpace changes the thickness of a non-empty band, clamped like a drag by the user.
// The new spaces are persisted and SpaceChanged is emitted.
func (ui *Dock) SetSpace(dui *DUI, self *Element, b Band, space int) {
	if b == BandBody || b >= nbands {
		panic(fmt.Sprintf("cannot set space of band %s", b))
	}
	if !ui.sized[b] {
		return
	}
	lo, hi := ui.limits(dui, ui.extent[b])
	space = clamp(space, lo, hi)
	if space == ui.space[b] {
		return
	}
	ui.space[b] = space
	self.MarkArrange()
	dui.WriteSettings(self, ui.space[:])
	ui.SpaceChanged.Emit(DockSpace{b, space})
}

func (ui *Dock) Mouse(dui *DUI, self *Element, m, origM draw.Mouse) (r Result) {
	if ui.drag.active {
		if m.Buttons&Button1 == 0 {
			ui.drag.active = false
			return Result{Hit: self, Consumed: true}
		}
		b := ui.drag.band
		delta := dim(m.Point.Sub(origM.Point), b.vertical())
		if b == BandBottom || b == BandRight {
			delta = -delta
		}
		ui.SetSpace(dui, self, b, ui.drag.space+delta)
		return Result{Hit: self, Consumed: true}
	}
	if m == origM && m.Buttons == Button1 {
		for _, b := range ui.order {
			if m.Point.In(ui.resizer[b]) {
				ui.drag.active = true
				ui.drag.band = b
				ui.drag.space = ui.space[b]
				return Result{Hit: self, Consumed: true}
			}
		}
	}
	return KidsMouse(dui, self, self.Kids, m, origM)
}

func (ui *Dock) Key(dui *DUI, self *Element, k rune) (r Result) {
	return
}

func (ui *Dock) Draw(dui *DUI, self *Element, p Painter, force bool) {
	if force {
		for _, r := range ui.resizer {
			if !r.Empty() {
				p.FillRect(r, dui.Context.Palette.Gutter.Background)
			}
		}
	}
	KidsDraw(dui, self, self.Kids, p, force)
}

func (ui *Dock) Print(self *Element, indent int) {
	PrintUI(fmt.Sprintf("Dock spaces %v", ui.space[1:]), self, indent)
	KidsPrint(self.Kids, indent+1)
}
