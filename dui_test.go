package wtree

import (
	"fmt"
	"image"
	"strings"
	"testing"
	"time"

	"9fans.net/go/draw"
	"github.com/google/go-cmp/cmp"
)

func newTestDUI(t *testing.T) *DUI {
	t.Helper()
	dui := NewDUI(nil, DefaultConfig())
	t.Cleanup(dui.Close)
	return dui
}

// render builds w, lays it out at size and draws it, returning the recorded operations.
func render(t *testing.T, dui *DUI, w *Widget, size image.Point) *Recorder {
	t.Helper()
	dui.Build(w)
	dui.Resize(size)
	rec := NewRecorder(rect(size))
	dui.Render(rec)
	if rec.Depth() != 0 {
		t.Fatalf("painter depth %d after render, need 0", rec.Depth())
	}
	return rec
}

func mustPanic(t *testing.T, what string, substr string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		e := recover()
		if e == nil {
			t.Fatalf("%s: no panic", what)
		}
		if substr != "" && !strings.Contains(fmt.Sprint(e), substr) {
			t.Fatalf("%s: panic %q, need %q in message", what, e, substr)
		}
	}()
	fn()
}

// fakeClock replaces the time source of the timers in dui.
type fakeClock struct {
	now time.Time
}

func newFakeClock(dui *DUI) *fakeClock {
	c := &fakeClock{now: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	dui.timers.now = func() time.Time { return c.now }
	return c
}

func (c *fakeClock) advance(dui *DUI, d time.Duration) {
	c.now = c.now.Add(d)
	dui.Tick(c.now)
}

func click(dui *DUI, p image.Point) {
	dui.Mouse(draw.Mouse{Point: p, Buttons: Button1})
	dui.Mouse(draw.Mouse{Point: p})
}

func TestRenderTwiceDrawsNothing(t *testing.T) {
	dui := newTestDUI(t)
	rec := render(t, dui, NewVBox(NewLabel("a"), NewButton("b", nil)), image.Pt(100, 100))
	if len(rec.Ops) == 0 {
		t.Fatalf("first render drew nothing")
	}
	if dui.Top.Layout != Clean || dui.Top.Draw != Clean {
		t.Fatalf("top not clean after render, layout %d draw %d", dui.Top.Layout, dui.Top.Draw)
	}
	rec = NewRecorder(rect(image.Pt(100, 100)))
	dui.Render(rec)
	if len(rec.Ops) != 0 {
		t.Fatalf("second render drew %v", rec.Ops)
	}
}

func TestDrawBeforeLayoutPanics(t *testing.T) {
	dui := newTestDUI(t)
	dui.Build(NewLabel("x"))
	mustPanic(t, "draw", "draw before layout", func() {
		dui.Draw(NewRecorder(rect(image.Pt(10, 10))))
	})
}

func TestDrawOutsideClip(t *testing.T) {
	dui := newTestDUI(t)
	dui.Build(NewVBox(NewLabel("top"), NewLabel("bottom")))
	dui.Resize(image.Pt(100, 100))
	bottom := dui.Top.Kids[1]

	// only the first line is inside the clip
	rec := NewRecorder(image.Rect(0, 0, 100, 5))
	dui.Render(rec)
	if diff := cmp.Diff([]string{"top"}, rec.Texts()); diff != "" {
		t.Fatalf("texts with partial clip (-exp +got):\n%s", diff)
	}
	if bottom.Draw != Dirty || dui.Top.Draw != DirtyKid {
		t.Fatalf("after partial draw: bottom %d, top %d", bottom.Draw, dui.Top.Draw)
	}

	rec = NewRecorder(rect(image.Pt(100, 100)))
	dui.Render(rec)
	if diff := cmp.Diff([]string{"bottom"}, rec.Texts()); diff != "" {
		t.Fatalf("texts with full clip (-exp +got):\n%s", diff)
	}
	if bottom.Draw != Clean || dui.Top.Draw != Clean {
		t.Fatalf("after full draw: bottom %d, top %d", bottom.Draw, dui.Top.Draw)
	}
}

func TestEmptyKidDoesNotKeepDirty(t *testing.T) {
	dui := newTestDUI(t)
	render(t, dui, NewVBox(NewLabel("a"), NewSpacer(image.ZP)), image.Pt(100, 100))
	if dui.Top.Draw != Clean {
		t.Fatalf("empty spacer keeps box dirty")
	}
}

type focusWatch struct {
	Spacer
	events []bool
}

func (ui *focusWatch) FocusChanged(dui *DUI, self *Element, focused bool) {
	ui.events = append(ui.events, focused)
}

func TestFocusWatcher(t *testing.T) {
	kind := &Kind{Name: "FocusWatch", New: func() UI { return &focusWatch{} }, Flags: Focusable}
	dui := newTestDUI(t)
	render(t, dui, W(kind, nil), image.Pt(10, 10))
	dui.Key('\t')
	dui.Focus(nil)
	if diff := cmp.Diff([]bool{true, false}, dui.Top.UI.(*focusWatch).events); diff != "" {
		t.Fatalf("focus changes (-exp +got):\n%s", diff)
	}
}

func TestFocusCycle(t *testing.T) {
	dui := newTestDUI(t)
	render(t, dui, NewVBox(
		NewButton("a", nil).WithKey("a"),
		NewLabel("not focusable"),
		NewButton("b", nil).WithKey("b"),
		NewButton("gone", nil).WithKey("gone").WithVisibility(Gone),
	), image.Pt(100, 100))

	a, b := dui.Top.Find("a"), dui.Top.Find("b")
	var got []*Element
	for i := 0; i < 3; i++ {
		if !dui.Key('\t') {
			t.Fatalf("tab not consumed")
		}
		got = append(got, dui.Focused())
	}
	if got[0] != a || got[1] != b || got[2] != a {
		t.Fatalf("focus order wrong: %v %v %v", got[0].Key, got[1].Key, got[2].Key)
	}
	dui.FocusNext(false)
	if dui.Focused() != b {
		t.Fatalf("backward focus did not wrap to b")
	}
}

func TestButtonClick(t *testing.T) {
	dui := newTestDUI(t)
	clicks := 0
	w := NewButton("go", func(dui *DUI, self *Element) Event {
		clicks++
		return Event{Consumed: true}
	})
	render(t, dui, w, image.Pt(100, 40))

	center := dui.Top.R.Min.Add(dui.Top.R.Size().Div(2))
	click(dui, center)
	if clicks != 1 {
		t.Fatalf("clicks %d after mouse click, need 1", clicks)
	}
	if dui.Focused() != dui.Top {
		t.Fatalf("button not focused after click")
	}

	// press inside, release outside is no click
	dui.Mouse(draw.Mouse{Point: center, Buttons: Button1})
	dui.Mouse(draw.Mouse{Point: image.Pt(-10, -10)})
	if clicks != 1 {
		t.Fatalf("clicks %d after release outside, need 1", clicks)
	}

	dui.Key('\n')
	dui.Key(' ')
	if clicks != 3 {
		t.Fatalf("clicks %d after enter and space, need 3", clicks)
	}
}

func TestDisabledButton(t *testing.T) {
	dui := newTestDUI(t)
	clicks := 0
	w := W(ButtonKind, ButtonProps{Text: "no", Disabled: true, Click: func(dui *DUI, self *Element) Event {
		clicks++
		return Event{}
	}})
	render(t, dui, w, image.Pt(100, 40))
	click(dui, image.Pt(2, 2))
	if clicks != 0 {
		t.Fatalf("disabled button clicked")
	}
}

func TestCheckboxToggle(t *testing.T) {
	dui := newTestDUI(t)
	var changes []bool
	props := CheckboxProps{Changed: func(dui *DUI, self *Element, checked bool) Event {
		changes = append(changes, checked)
		return Event{}
	}}
	render(t, dui, W(CheckboxKind, props), image.Pt(50, 50))
	cb := dui.Top.UI.(*Checkbox)

	click(dui, image.Pt(2, 2))
	if !cb.Checked() {
		t.Fatalf("not checked after click")
	}
	dui.Key(' ')
	if cb.Checked() {
		t.Fatalf("still checked after space")
	}
	if len(changes) != 2 || !changes[0] || changes[1] {
		t.Fatalf("changes %v, need [true false]", changes)
	}

	// rebuild with unchanged props keeps the user's state
	cb.SetChecked(dui, dui.Top, true)
	dui.Build(W(CheckboxKind, props))
	if !cb.Checked() {
		t.Fatalf("rebuild reset the user's state")
	}
}

func TestHoverRedraws(t *testing.T) {
	dui := newTestDUI(t)
	render(t, dui, NewHBox(NewButton("a", nil), NewLabel("b")), image.Pt(200, 40))
	btn := dui.Top.Kids[0]
	dui.Mouse(draw.Mouse{Point: btn.R.Min})
	if !dui.Hovered(btn) {
		t.Fatalf("button not hovered")
	}
	if btn.Draw != Dirty {
		t.Fatalf("hovered button not marked for draw")
	}
	rec := NewRecorder(rect(image.Pt(200, 40)))
	dui.Render(rec)
	lbl := dui.Top.Kids[1]
	dui.Mouse(draw.Mouse{Point: lbl.R.Min.Add(image.Pt(1, 1))})
	if dui.Hovered(btn) || btn.Draw != Dirty {
		t.Fatalf("leaving button did not redraw it")
	}
}
