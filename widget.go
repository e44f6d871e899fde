package wtree

import (
	"fmt"
)

// Change tells what an update of properties invalidated.
type Change byte

const (
	ChangeNone   = Change(iota)
	ChangeDraw   // Only a draw is needed.
	ChangeLayout // A new measurement is needed.
)

// Kind describes a concrete element type: how to create its UI, and how to
// copy widget properties onto it. Kinds are compared by identity, so each
// kind must be a single package-level value.
type Kind struct {
	Name string

	// New returns a fresh UI. It must always return the same concrete type.
	New func() UI

	// Apply copies props onto ui and returns what needs to be redone.
	// props is the Props field of a Widget of this kind.
	Apply func(dui *DUI, self *Element, props interface{}) Change

	// Number of kids allowed. MaxKids < 0 means no maximum.
	MinKids, MaxKids int

	// Flags always set on elements of this kind, in addition to those of the widget.
	Flags Flags
}

func (k *Kind) checkKids(n int) {
	if n < k.MinKids || (k.MaxKids >= 0 && n > k.MaxKids) {
		if k.MinKids == k.MaxKids {
			panic(fmt.Sprintf("%s needs %d kids, got %d", k.Name, k.MinKids, n))
		}
		panic(fmt.Sprintf("%s needs %d to %d kids, got %d", k.Name, k.MinKids, k.MaxKids, n))
	}
}

// Widget describes the desired configuration of an element. Widgets are
// rebuilt for every change to the UI, and reconciled against the existing
// elements by DUI.Build.
type Widget struct {
	Kind       *Kind
	Key        string // Optional identity, matched among the kids of the same parent.
	Props      interface{}
	Class      string
	Visibility Visibility
	Flags      Flags
	LayoutData interface{} // Parent-specific, e.g. the Band in a Dock. Values that cannot be compared cause a new layout on each build.
	Kids       []*Widget   // nil entries are allowed and create no element.
}

// W returns a widget of kind with props and kids.
func W(kind *Kind, props interface{}, kids ...*Widget) *Widget {
	if kind == nil {
		panic("widget without kind")
	}
	return &Widget{Kind: kind, Props: props, Kids: kids}
}

// WithKey sets the key and returns w.
func (w *Widget) WithKey(key string) *Widget {
	w.Key = key
	return w
}

// WithClass sets the style class and returns w.
func (w *Widget) WithClass(class string) *Widget {
	w.Class = class
	return w
}

// WithFlags adds flags and returns w.
func (w *Widget) WithFlags(flags Flags) *Widget {
	w.Flags |= flags
	return w
}

// WithVisibility sets the visibility and returns w.
func (w *Widget) WithVisibility(v Visibility) *Widget {
	w.Visibility = v
	return w
}

// WithLayoutData sets the layout data and returns w.
func (w *Widget) WithLayoutData(v interface{}) *Widget {
	w.LayoutData = v
	return w
}

// countKids returns the number of non-nil kids.
func (w *Widget) countKids() (n int) {
	for _, k := range w.Kids {
		if k != nil {
			n++
		}
	}
	return
}

// propsOf returns props as a T. nil props are the zero T, props of another type
// are a programming error.
func propsOf[T any](kind *Kind, props interface{}) T {
	var zero T
	if props == nil {
		return zero
	}
	p, ok := props.(T)
	if !ok {
		panic(fmt.Sprintf("%s: props of type %T, need %T", kind.Name, props, zero))
	}
	return p
}
