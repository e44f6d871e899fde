package wtree

import (
	"fmt"
	"image"
	"log"
)

// BuildStats counts what a Build did to the element tree.
type BuildStats struct {
	Created   int
	Reused    int
	Destroyed int
}

// Build reconciles w against the current element tree, starting at d.Top.
// Matching elements are reused and updated, the rest is created or destroyed.
// A nil w removes the whole tree.
func (d *DUI) Build(w *Widget) BuildStats {
	d.stats = BuildStats{}
	top := d.Top
	var candidate *Element
	if top != nil && w != nil && top.Key == w.Key && top.kind == w.Kind {
		candidate = top
	}
	switch {
	case w == nil:
		if top != nil {
			d.destroy(top)
		}
		d.Top = nil
	case candidate != nil:
		d.update(candidate, w)
	default:
		if top != nil {
			d.destroy(top)
		}
		d.Top = d.create(nil, w)
	}
	if d.Config.DebugLayout > 0 {
		log.Printf("wtree: build created %d reused %d destroyed %d\n", d.stats.Created, d.stats.Reused, d.stats.Destroyed)
	}
	return d.stats
}

// Reuse updates e from w, which must be of the same kind.
// Reusing an element for a widget of another kind is a programming error.
func (d *DUI) Reuse(e *Element, w *Widget) {
	if e.kind != w.Kind {
		panic(fmt.Sprintf("cannot reuse %s element for %s widget", e.name(), w.Kind.Name))
	}
	d.update(e, w)
}

func (d *DUI) create(parent *Element, w *Widget) *Element {
	w.Kind.checkKids(w.countKids())
	ui := w.Kind.New()
	if ui == nil {
		panic(fmt.Sprintf("kind %s created nil UI", w.Kind.Name))
	}
	e := &Element{
		UI:         ui,
		Parent:     parent,
		Key:        w.Key,
		Class:      w.Class,
		LayoutData: w.LayoutData,
		Visibility: w.Visibility,
		Flags:      w.Flags | w.Kind.Flags,
		Layout:     Dirty,
		Draw:       Dirty,
		kind:       w.Kind,
	}
	d.stats.Created++
	e.Style = d.resolveStyle(e)
	if w.Kind.Apply != nil {
		w.Kind.Apply(d, e, w.Props)
	}
	d.reconcileKids(e, w.Kids)
	e.MarkLayout()
	return e
}

func (d *DUI) update(e *Element, w *Widget) {
	w.Kind.checkKids(w.countKids())
	d.stats.Reused++

	change := ChangeNone
	if w.Kind.Apply != nil {
		change = w.Kind.Apply(d, e, w.Props)
	}
	if e.Class != w.Class {
		e.Class = w.Class
		d.restyle(e)
	}
	if flags := w.Flags | w.Kind.Flags; e.Flags != flags {
		e.Flags = flags
		change = maxChange(change, ChangeLayout)
	}
	if !same(e.LayoutData, w.LayoutData) {
		e.LayoutData = w.LayoutData
		change = maxChange(change, ChangeLayout)
	}
	d.setVisibility(e, w.Visibility)

	switch change {
	case ChangeDraw:
		e.MarkDraw()
	case ChangeLayout:
		e.MarkLayout()
	}
	d.reconcileKids(e, w.Kids)
}

func maxChange(a, b Change) Change {
	if a > b {
		return a
	}
	return b
}

// setVisibility changes the visibility of e, invalidating what depends on it.
func (d *DUI) setVisibility(e *Element, v Visibility) {
	if e.Visibility == v {
		return
	}
	old := e.Visibility
	e.Visibility = v
	if old == Gone || v == Gone {
		e.MarkLayout()
		if v == Gone {
			e.R = image.ZR
		}
	} else {
		e.MarkDraw()
	}
	// the parent must repaint the area of an element that disappeared
	if e.Parent != nil {
		e.Parent.MarkDraw()
	}
}

// reconcileKids matches the widgets against the kids of parent.
// Keyed widgets match the kid with the same key, others the unkeyed kid that
// was created at the same position. Matches of another kind are replaced.
func (d *DUI) reconcileKids(parent *Element, ws []*Widget) {
	old := parent.Kids
	byKey := map[string]*Element{}
	bySlot := map[int]*Element{}
	for _, k := range old {
		if k.Key != "" {
			byKey[k.Key] = k
		} else {
			bySlot[k.slot] = k
		}
	}

	seen := map[string]bool{}
	used := map[*Element]bool{}
	kids := make([]*Element, 0, len(ws))
	changed := false
	for i, w := range ws {
		if w == nil {
			continue
		}
		var candidate *Element
		if w.Key != "" {
			if seen[w.Key] {
				panic(fmt.Sprintf("duplicate key %q in kids of %s", w.Key, parent.name()))
			}
			seen[w.Key] = true
			candidate = byKey[w.Key]
		} else {
			candidate = bySlot[i]
		}

		var e *Element
		if candidate != nil && candidate.kind == w.Kind {
			used[candidate] = true
			d.update(candidate, w)
			e = candidate
		} else {
			e = d.create(parent, w)
		}
		e.slot = i
		if len(kids) >= len(old) || old[len(kids)] != e {
			changed = true
		}
		kids = append(kids, e)
	}

	for _, k := range old {
		if !used[k] {
			d.destroy(k)
			changed = true
		}
	}
	if len(kids) != len(old) {
		changed = true
	}
	parent.Kids = kids
	if changed {
		parent.MarkLayout()
	}
}

// destroy removes e and its kids, depth first.
func (d *DUI) destroy(e *Element) {
	for _, k := range e.Kids {
		d.destroy(k)
	}
	if x, ok := e.UI.(Destroyer); ok {
		x.Destroy(d, e)
	}
	d.timers.cancelOwned(e)
	if d.focus == e {
		d.focus = nil
	}
	if d.hover == e {
		d.hover = nil
	}
	if d.grab == e {
		d.grab = nil
	}
	e.destroyed = true
	e.Parent = nil
	e.Kids = nil
	d.stats.Destroyed++
}
