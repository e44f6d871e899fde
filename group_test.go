package wtree

import (
	"image"
	"testing"
)

func radios(selectA, withB bool, changed func(dui *DUI, self *Element, value interface{}) Event) *Widget {
	var b *Widget
	if withB {
		b = W(RadiobuttonKind, RadiobuttonProps{Group: "g", Value: "b", Changed: changed}).WithKey("b")
	}
	return NewVBox(
		W(RadiobuttonKind, RadiobuttonProps{Group: "g", Value: "a", Selected: selectA, Changed: changed}).WithKey("a"),
		b,
	)
}

func TestRadioGroup(t *testing.T) {
	dui := newTestDUI(t)
	var values []interface{}
	changed := func(dui *DUI, self *Element, value interface{}) Event {
		values = append(values, value)
		return Event{}
	}

	render(t, dui, radios(true, true, changed), image.Pt(100, 100))
	a, b := dui.Top.Find("a"), dui.Top.Find("b")
	g := dui.Group("g")
	if g.Selected() != a || len(g.Members()) != 2 {
		t.Fatalf("initial selection %v, members %d", g.Selected(), len(g.Members()))
	}

	var emitted []*Element
	unsub := g.Changed.Subscribe(func(e *Element) {
		emitted = append(emitted, e)
	})
	defer unsub()

	dui.Focus(b)
	if !dui.Key(' ') {
		t.Fatalf("space on radiobutton not consumed")
	}
	if g.Selected() != b || a.UI.(*Radiobutton).Checked() || !b.UI.(*Radiobutton).Checked() {
		t.Fatalf("space did not select b")
	}
	if len(values) != 1 || values[0] != "b" {
		t.Fatalf("changed values %v", values)
	}
	if len(emitted) != 1 || emitted[0] != b {
		t.Fatalf("group changes %v", emitted)
	}

	// selecting the selected radiobutton again changes nothing
	dui.Key(' ')
	if len(values) != 1 {
		t.Fatalf("reselect called changed again")
	}

	// a rebuild with unchanged props keeps the choice of the user
	render(t, dui, radios(true, true, changed), image.Pt(100, 100))
	if g.Selected() != b {
		t.Fatalf("rebuild reset the selection")
	}

	// removing the selected radiobutton leaves nothing selected
	render(t, dui, radios(true, false, changed), image.Pt(100, 100))
	if g.Selected() != nil || len(g.Members()) != 1 {
		t.Fatalf("after removing b: selected %v, members %d", g.Selected(), len(g.Members()))
	}

	dui.Build(nil)
	if len(dui.groups) != 0 {
		t.Fatalf("groups left after destroying all radiobuttons: %d", len(dui.groups))
	}
}

func TestRadioSelectedProp(t *testing.T) {
	dui := newTestDUI(t)
	render(t, dui, radios(false, true, nil), image.Pt(100, 100))
	a := dui.Top.Find("a")
	g := dui.Group("g")
	if g.Selected() != nil {
		t.Fatalf("selection without selected prop")
	}
	render(t, dui, radios(true, true, nil), image.Pt(100, 100))
	if g.Selected() != a {
		t.Fatalf("selected prop did not select")
	}
	render(t, dui, radios(false, true, nil), image.Pt(100, 100))
	if g.Selected() != nil {
		t.Fatalf("clearing selected prop kept selection")
	}
}

func TestRadioClick(t *testing.T) {
	dui := newTestDUI(t)
	render(t, dui, radios(true, true, nil), image.Pt(100, 100))
	b := dui.Top.Find("b")
	click(dui, b.R.Min)
	if dui.Group("g").Selected() != b {
		t.Fatalf("click did not select")
	}
	if dui.Focused() != b {
		t.Fatalf("click did not focus")
	}
}

func TestRadioMoveGroup(t *testing.T) {
	dui := newTestDUI(t)
	dui.Build(W(RadiobuttonKind, RadiobuttonProps{Group: "x", Selected: true}))
	x := dui.Group("x")
	if x.Selected() != dui.Top {
		t.Fatalf("not selected in x")
	}
	dui.Build(W(RadiobuttonKind, RadiobuttonProps{Group: "y", Selected: true}))
	if _, ok := dui.groups["x"]; ok {
		t.Fatalf("empty group x kept")
	}
	if dui.Group("y").Selected() != dui.Top {
		t.Fatalf("not selected in y")
	}
}

func TestGroupSelectNonMember(t *testing.T) {
	dui := newTestDUI(t)
	dui.Build(NewLabel("a"))
	g := dui.Group("g")
	mustPanic(t, "select non-member", "not in group", func() {
		g.Select(dui.Top)
	})
}
