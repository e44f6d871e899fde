package wtree

import (
	"golang.org/x/exp/slices"
)

// Group is a named set of elements of which at most one is selected, used by
// radiobuttons. Elements register themselves by joining, and leave when they
// are destroyed or move to another group.
type Group struct {
	Name    string
	Changed Signal[*Element] // Emitted with the newly selected element.

	members  []*Element
	selected *Element
}

// Group returns the group with name, creating it if needed.
// Groups are per DUI, and removed when their last member leaves.
func (d *DUI) Group(name string) *Group {
	g, ok := d.groups[name]
	if !ok {
		g = &Group{Name: name}
		d.groups[name] = g
	}
	return g
}

// Join adds e to the group.
func (g *Group) Join(e *Element) {
	if !slices.Contains(g.members, e) {
		g.members = append(g.members, e)
	}
}

// leaveGroup removes e from g. If e was selected, nothing is selected anymore.
// Empty groups are forgotten.
func (d *DUI) leaveGroup(g *Group, e *Element) {
	if i := slices.Index(g.members, e); i >= 0 {
		g.members = slices.Delete(g.members, i, i+1)
	}
	if g.selected == e {
		g.selected = nil
	}
	if len(g.members) == 0 && d.groups[g.Name] == g {
		delete(d.groups, g.Name)
	}
}

// Select makes e the selected member, marking the previous and new selection for drawing.
// Changed is emitted if the selection changed.
func (g *Group) Select(e *Element) {
	if e == g.selected {
		return
	}
	if e != nil && !slices.Contains(g.members, e) {
		panic("select of element not in group " + g.Name)
	}
	old := g.selected
	g.selected = e
	for _, x := range []*Element{old, e} {
		if x != nil && !x.destroyed {
			x.MarkDraw()
		}
	}
	g.Changed.Emit(e)
}

// Selected returns the selected member, or nil.
func (g *Group) Selected() *Element {
	return g.selected
}

// Members returns the elements in the group, in order of joining.
func (g *Group) Members() []*Element {
	return slices.Clone(g.members)
}
