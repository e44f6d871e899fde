package wtree

import (
	"image"

	"9fans.net/go/draw"
)

// UI is the behaviour of an element kind. A UI holds the kind-specific state,
// the Element it is mounted in holds the state common to all kinds.
//
// All methods are called with self, the element the UI is mounted in.
// Kids are measured, arranged and drawn through the DUI, not by calling
// their UIs directly, so caching and visibility are handled consistently.
type UI interface {
	// Boundaries returns the size range of the content, excluding padding and border.
	Boundaries(dui *DUI, self *Element) Boundaries

	// Arrange assigns boxes to the kids, within inner, which is self.R without padding and border.
	Arrange(dui *DUI, self *Element, inner image.Rectangle)

	// Draw paints the content and then the kids. The painter is already clipped to self.R.
	// If force is set, everything must be drawn, otherwise only dirty kids need a draw.
	Draw(dui *DUI, self *Element, p Painter, force bool)

	// Mouse handles a mouse event that ended up at self, in absolute coordinates.
	// origM is the mouse state when the buttons were first pressed.
	Mouse(dui *DUI, self *Element, m draw.Mouse, origM draw.Mouse) (r Result)

	// Key handles a key typed while self or one of its kids has focus.
	Key(dui *DUI, self *Element, k rune) (r Result)

	// Print logs a line about self, prefixed with indent, followed by a Print on each kid.
	Print(self *Element, indent int)
}

// HeightForWidther is implemented by UIs whose height depends on the width they are given, like wrapped text.
type HeightForWidther interface {
	// HeightForWidth returns the content height for a content width, excluding padding and border.
	HeightForWidth(dui *DUI, self *Element, width int) int
}

// Destroyer is implemented by UIs that hold resources to release when their element is removed from the tree.
type Destroyer interface {
	Destroy(dui *DUI, self *Element)
}

// StyleWatcher is implemented by UIs with caches derived from style properties.
type StyleWatcher interface {
	StyleChanged(dui *DUI, self *Element, kind PropertyKind)
}

// Clicker UIs get a Click call on a button 1 release inside their element, or on enter/space with focus.
type Clicker interface {
	Click(dui *DUI, self *Element) (e Event)
}

// Checkable UIs have a boolean state, toggled by a click or space.
type Checkable interface {
	Checked() bool
	SetChecked(dui *DUI, self *Element, checked bool) (e Event)
}

// FocusWatcher UIs are told when they gain or lose keyboard focus.
type FocusWatcher interface {
	FocusChanged(dui *DUI, self *Element, focused bool)
}

// Event is returned by callbacks, telling what needs to happen next.
type Event struct {
	Consumed   bool // Whether event was consumed, and should not be further handled by upper UI's.
	NeedLayout bool // Whether UI now needs a layout.
	NeedDraw   bool // Whether UI now needs a draw.
}

// Result is the outcome of handling a mouse or key event.
type Result struct {
	Hit      *Element // Element where the event ended up.
	Consumed bool     // Whether event was consumed, and should not be further handled by upper UI's.
}

func propagateEvent(self *Element, r *Result, e Event) {
	if e.NeedLayout {
		self.MarkLayout()
	}
	if e.NeedDraw {
		self.MarkDraw()
	}
	r.Consumed = e.Consumed || r.Consumed
}

// State is the layout or draw state of an element.
type State byte

const (
	Dirty    = State(iota) // Element itself needs layout/draw; kids will also get a layout/draw call, with force set.
	DirtyKid               // Element itself does not need layout/draw, but one of its kids does, so pass the call on.
	Clean                  // Element does not need layout/draw.

	// order is important, Clean is highest and means least amount of work
)

// Visibility of an element.
type Visibility byte

const (
	Visible   = Visibility(iota)
	Invisible // Takes space, but is not drawn.
	Gone      // Takes no space, is not drawn, but stays in the tree.
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Invisible:
		return "invisible"
	case Gone:
		return "gone"
	}
	return "?"
}

// Flags are interaction and layout flags of an element.
type Flags uint16

const (
	Focusable Flags = 1 << iota // Can get keyboard focus, through tab or a click.
	Clickable                   // Clicks are delivered to the Clicker or Checkable UI.
	Hoverable                   // Redrawn when the mouse enters or leaves.
	Expand                      // Takes extra space along the main axis of a Box.
	Stretch                     // Fills the cross axis of a Box, or the area of a Stack.
)

const (
	Button1 = 1 << iota
	Button2
	Button3
	Button4 // Wheel up.
	Button5 // Wheel down.
)

type Halign byte

const (
	HalignLeft = Halign(iota)
	HalignMiddle
	HalignRight
)

type Valign byte

const (
	ValignTop = Valign(iota)
	ValignMiddle
	ValignBottom
)

// alignOffset returns the offset of an item of size in an area of size avail.
// 0 is start, 1 middle and 2 end.
func alignOffset(align byte, avail, size int) int {
	left := maximum(0, avail-size)
	switch align {
	case 1:
		return left / 2
	case 2:
		return left
	}
	return 0
}
