package wtree

import (
	"fmt"
	"image"
	"log"
	"time"

	"9fans.net/go/draw"
)

// DUI holds the element tree of a window, and runs the reconcile, layout and
// draw cycle, and the delivery of input. All calls must come from a single
// goroutine, typically the event loop of the window.
type DUI struct {
	Top      *Element
	Context  *Context
	Config   Config
	Settings *Settings // Optional, for persisting user changes to split and dock dimensions.

	size    image.Point
	stats   BuildStats
	timers  timers
	groups  map[string]*Group
	unwatch func()

	focus     *Element
	hover     *Element
	grab      *Element // Element receiving mouse events while buttons are down.
	mouse     draw.Mouse
	origMouse draw.Mouse
}

// NewDUI returns a DUI using the shared context, which is retained until Close.
// A nil context gets a fresh one with the default font and no style sheet.
// Zero fields in config get their default value. NewDUI panics on an invalid config.
func NewDUI(ctx *Context, config Config) *DUI {
	config = config.withDefaults()
	if err := config.Check(); err != nil {
		panic(fmt.Sprintf("wtree: bad config: %s", err))
	}
	if ctx == nil {
		ctx = NewContext(nil, nil)
	} else {
		ctx.Retain()
	}
	d := &DUI{
		Context: ctx,
		Config:  config,
		groups:  map[string]*Group{},
	}
	d.timers.now = time.Now
	if s, ok := ctx.Sheet.(*Sheet); ok {
		d.unwatch = s.Changed.Subscribe(d.StyleChanged)
	}
	return d
}

// Close destroys the element tree, cancels all timers and releases the context.
func (d *DUI) Close() {
	d.Build(nil)
	d.timers.cancelAll()
	if d.unwatch != nil {
		d.unwatch()
		d.unwatch = nil
	}
	d.Context.Release()
}

// Resize sets the size of the window, causing a full layout.
func (d *DUI) Resize(size image.Point) {
	if d.Config.DebugLayout > 0 {
		log.Printf("wtree: resize %v\n", size)
	}
	d.size = size
	if d.Top != nil {
		d.Top.MarkLayout()
	}
}

// Size returns the window size.
func (d *DUI) Size() image.Point {
	return d.size
}

// Render calls Layout followed by Draw.
func (d *DUI) Render(p Painter) {
	d.Layout()
	d.Draw(p)
}

// Layout measures the whole tree, then arranges it in the window.
func (d *DUI) Layout() {
	if d.Top == nil || d.Top.Layout == Clean {
		return
	}
	var t0 time.Time
	if d.Config.LogTiming {
		t0 = time.Now()
	}
	d.Measure(d.Top)
	d.Arrange(d.Top, rect(d.size))
	if d.Config.LogTiming {
		log.Printf("wtree: time layout: %d µs\n", time.Since(t0)/time.Microsecond)
	}
}

// Draw paints the dirty parts of the tree.
func (d *DUI) Draw(p Painter) {
	if d.Top == nil || d.Top.Draw == Clean {
		return
	}
	if d.Top.Layout != Clean {
		panic("draw before layout")
	}
	var t0 time.Time
	if d.Config.LogTiming {
		t0 = time.Now()
	}
	d.DrawElement(d.Top, p, false)
	if d.Config.LogTiming {
		log.Printf("wtree: time draw: %d µs\n", time.Since(t0)/time.Microsecond)
	}
}

// Scale converts lowDPI pixels to pixels for the configured DPI.
func (d *DUI) Scale(n int) int {
	dpi := d.Config.DPI
	if dpi <= 0 {
		dpi = 100
	}
	return (dpi / 100) * n
}

func (d *DUI) ScaleSpace(s Space) Space {
	return Space{
		d.Scale(s.Top),
		d.Scale(s.Right),
		d.Scale(s.Bottom),
		d.Scale(s.Left),
	}
}

// Font returns the font from e's style, or the context's font.
func (d *DUI) Font(e *Element) Font {
	if e != nil && e.Style.Font != nil {
		return e.Style.Font
	}
	return d.Context.Font
}

// Property returns the value of a custom style property for e.
func (d *DUI) Property(e *Element, name string, fallback interface{}) interface{} {
	if d.Context.Sheet == nil {
		return fallback
	}
	return d.Context.Sheet.PropertyValue(e, name, fallback)
}

// PropertyInt returns a custom integer style property, in lowDPI pixels scaled for the display.
func (d *DUI) PropertyInt(e *Element, name string, fallback int) int {
	if v, ok := d.Property(e, name, nil).(int); ok {
		return d.Scale(v)
	}
	return fallback
}

func (d *DUI) resolveStyle(e *Element) Style {
	var parent *Style
	if e.Parent != nil {
		parent = &e.Parent.Style
	}
	return resolveStyle(d.Context.Sheet, e, parent, d.Context.Font)
}

// restyle resolves the style of e and its descendants again, invalidating
// exactly what depends on the properties that changed.
func (d *DUI) restyle(e *Element) {
	e.Walk(func(x *Element) bool {
		ns := d.resolveStyle(x)
		kinds := changedKinds(x.Style, ns)
		x.Style = ns
		d.invalidateStyle(x, kinds)
		return true
	})
}

func (d *DUI) invalidateStyle(e *Element, kinds PropertyKinds) {
	switch {
	case kinds.Has(PropFont) || kinds.Has(PropSpacing) || kinds.Has(PropSize):
		e.MarkLayout()
	case kinds.Has(PropAlign):
		e.MarkArrange()
	case kinds.Has(PropColor):
		e.MarkDraw()
	}
	if w, ok := e.UI.(StyleWatcher); ok {
		for k := PropColor; k <= PropCustom; k++ {
			if kinds.Has(k) {
				w.StyleChanged(d, e, k)
			}
		}
	}
}

// StyleChanged is called when style rules changed. Styles are resolved again
// and elements invalidated according to what changed for them. Custom
// property changes are passed on to StyleWatchers.
func (d *DUI) StyleChanged(kinds PropertyKinds) {
	if d.Top == nil {
		return
	}
	if d.Config.DebugLayout > 0 {
		log.Printf("wtree: style changed, kinds %b\n", kinds)
	}
	d.restyle(d.Top)
	if !kinds.Has(PropCustom) {
		return
	}
	d.Top.Walk(func(e *Element) bool {
		if w, ok := e.UI.(StyleWatcher); ok {
			w.StyleChanged(d, e, PropCustom)
		}
		return true
	})
}

// Print logs the element tree.
func (d *DUI) Print() {
	if d.Top == nil {
		log.Printf("wtree: empty\n")
		return
	}
	d.Top.UI.Print(d.Top, 0)
}

func (d *DUI) debugLayout(what string, self *Element) {
	if d.Config.DebugLayout > 0 {
		log.Printf("wtree: %s %s %s layout=%d draw=%d\n", what, self.name(), self.R, self.Layout, self.Draw)
	}
}

func (d *DUI) debugDraw(self *Element) {
	if d.Config.DebugDraw > 0 {
		log.Printf("wtree: draw %s %s layout=%d draw=%d\n", self.name(), self.R, self.Layout, self.Draw)
	}
}

// ReadSettings reads persisted dimensions for self into dims. Returns false if
// there are none, or self has no key.
func (d *DUI) ReadSettings(self *Element, dims *[]int) bool {
	if d.Settings == nil || self.Key == "" {
		return false
	}
	v, ok := d.Settings.Dims(self.Key)
	if ok {
		*dims = v
	}
	return ok
}

// WriteSettings persists dims for self, if it has a key.
func (d *DUI) WriteSettings(self *Element, dims []int) {
	if d.Settings == nil || self.Key == "" {
		return
	}
	if err := d.Settings.SetDims(self.Key, dims); err != nil {
		log.Printf("wtree: writing settings for %q: %s\n", self.Key, err)
	}
}
