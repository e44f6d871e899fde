package wtree

import (
	"fmt"
	"image"
	"log"
)

// Element is a persistent node in the tree of UIs. Elements are created and
// updated by reconciliation against Widgets, and own their kids.
type Element struct {
	UI         UI
	Kids       []*Element
	Parent     *Element // nil for the top element.
	Key        string   // Identity for reconciliation, and key for persisted settings.
	Class      string   // Style class, for the StyleResolver.
	LayoutData interface{}

	R          image.Rectangle // Box, absolute. Zero when Gone.
	Visibility Visibility
	Flags      Flags
	Style      Style

	Layout State
	Draw   State

	kind      *Kind
	slot      int // Position in the widget list that created this element.
	bounds    Boundaries
	measured  bool
	destroyed bool
}

// Kind returns the kind of UI mounted in the element.
func (e *Element) Kind() *Kind {
	return e.kind
}

// MarkLayout marks e as needing measurement and arrangement.
// The boundaries of all ancestors are invalidated too, since they derive from e's.
func (e *Element) MarkLayout() {
	e.Layout = Dirty
	e.Draw = Dirty
	e.measured = false
	for p := e.Parent; p != nil; p = p.Parent {
		p.measured = false
		if p.Layout == Clean {
			p.Layout = DirtyKid
		}
		if p.Draw == Clean {
			p.Draw = DirtyKid
		}
	}
}

// MarkArrange marks e as needing a new arrangement, while keeping its measured boundaries.
func (e *Element) MarkArrange() {
	e.Layout = Dirty
	e.Draw = Dirty
	for p := e.Parent; p != nil && p.Layout == Clean; p = p.Parent {
		p.Layout = DirtyKid
	}
	e.markDrawParents()
}

// MarkDraw marks e as needing a draw.
func (e *Element) MarkDraw() {
	e.Draw = Dirty
	e.markDrawParents()
}

func (e *Element) markDrawParents() {
	for p := e.Parent; p != nil && p.Draw == Clean; p = p.Parent {
		p.Draw = DirtyKid
	}
}

// Measured returns whether e has valid cached boundaries.
func (e *Element) Measured() bool {
	return e.measured
}

// Bounds returns the cached boundaries from the last measurement.
func (e *Element) Bounds() Boundaries {
	return e.bounds
}

// Destroyed returns whether e has been removed from the tree.
func (e *Element) Destroyed() bool {
	return e.destroyed
}

// Walk calls fn for e and its descendants, depth first, parent before kids.
// Walking stops descending into an element when fn returns false.
func (e *Element) Walk(fn func(e *Element) bool) {
	if !fn(e) {
		return
	}
	for _, k := range e.Kids {
		k.Walk(fn)
	}
}

// Find returns the first element with key in the tree below e, including e.
func (e *Element) Find(key string) (r *Element) {
	e.Walk(func(x *Element) bool {
		if r != nil {
			return false
		}
		if x.Key == key {
			r = x
		}
		return r == nil
	})
	return
}

// inset is the space taken by padding and border.
func (e *Element) inset() Space {
	return e.Style.Padding.Add(SpaceXY(e.Style.Border, e.Style.Border))
}

func (e *Element) name() string {
	if e.kind != nil {
		return e.kind.Name
	}
	return fmt.Sprintf("%T", e.UI)
}

// PrintUI logs a line about an element, used by UI Print methods.
func PrintUI(s string, self *Element, indent int) {
	indentStr := ""
	if indent > 0 {
		indentStr = fmt.Sprintf("%*s", indent*2, " ")
	}
	key := ""
	if self.Key != "" {
		key = fmt.Sprintf(" key %q", self.Key)
	}
	vis := ""
	if self.Visibility != Visible {
		vis = " " + self.Visibility.String()
	}
	log.Printf("wtree: %s%s%s r %v%s layout=%d draw=%d\n", indentStr, s, key, self.R, vis, self.Layout, self.Draw)
}
