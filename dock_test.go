package wtree

import (
	"image"
	"path/filepath"
	"testing"

	"9fans.net/go/draw"
	"github.com/google/go-cmp/cmp"
)

func dockWidget(props DockProps) *Widget {
	return W(DockKind, props,
		NewLabel("top").WithLayoutData(BandTop),
		NewLabel("body").WithKey("body"),
	).WithKey("dock")
}

func TestDockClamp(t *testing.T) {
	dui := newTestDUI(t)
	render(t, dui, dockWidget(DockProps{Spaces: map[Band]int{BandTop: 500}}), image.Pt(400, 300))
	ui := dui.Top.UI.(*Dock)

	if s := ui.Space(BandTop); s != 120 {
		t.Fatalf("top space %d, need 120, 40%% of 300", s)
	}
	if r := ui.BandRect(BandTop); r != image.Rect(0, 0, 400, 120) {
		t.Fatalf("top band at %v", r)
	}
	if r := ui.Resizer(BandTop); r != image.Rect(0, 120, 400, 124) {
		t.Fatalf("top resizer at %v", r)
	}
	if r := dui.Top.Find("body").R; r != image.Rect(0, 124, 400, 300) {
		t.Fatalf("body at %v", r)
	}

	// bands without kids take no space and have no resizer
	for _, b := range []Band{BandLeft, BandRight, BandBottom} {
		if ui.Space(b) != 0 || !ui.Resizer(b).Empty() || !ui.BandRect(b).Empty() {
			t.Fatalf("empty band %s has space %d, resizer %v", b, ui.Space(b), ui.Resizer(b))
		}
	}
}

func TestDockNaturalSpace(t *testing.T) {
	dui := newTestDUI(t)
	render(t, dui, dockWidget(DockProps{}), image.Pt(400, 300))
	ui := dui.Top.UI.(*Dock)
	// label is 13 high, raised to the 10% minimum
	if s := ui.Space(BandTop); s != 30 {
		t.Fatalf("top space %d, need 30", s)
	}

	// changing the request sizes the band again
	render(t, dui, dockWidget(DockProps{Spaces: map[Band]int{BandTop: 100}}), image.Pt(400, 300))
	if s := ui.Space(BandTop); s != 100 {
		t.Fatalf("top space after request %d, need 100", s)
	}
}

func TestDockSetSpace(t *testing.T) {
	dui := newTestDUI(t)
	render(t, dui, dockWidget(DockProps{}), image.Pt(400, 300))
	ui := dui.Top.UI.(*Dock)

	var got []DockSpace
	unsub := ui.SpaceChanged.Subscribe(func(s DockSpace) {
		got = append(got, s)
	})
	defer unsub()

	ui.SetSpace(dui, dui.Top, BandTop, 1000)
	ui.SetSpace(dui, dui.Top, BandTop, 1000)
	ui.SetSpace(dui, dui.Top, BandTop, 0)
	ui.SetSpace(dui, dui.Top, BandLeft, 50) // empty band, ignored
	exp := []DockSpace{{BandTop, 120}, {BandTop, 30}}
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Fatalf("space changes (-exp +got):\n%s", diff)
	}
	mustPanic(t, "set space of body", "cannot set space", func() {
		ui.SetSpace(dui, dui.Top, BandBody, 10)
	})
}

func TestDockDrag(t *testing.T) {
	dui := newTestDUI(t)
	render(t, dui, W(DockKind, DockProps{Spaces: map[Band]int{BandRight: 100}},
		NewLabel("right").WithLayoutData(BandRight),
		NewLabel("body"),
	), image.Pt(400, 300))
	ui := dui.Top.UI.(*Dock)
	if s := ui.Space(BandRight); s != 100 {
		t.Fatalf("right space %d", s)
	}
	res := ui.Resizer(BandRight)
	if res != image.Rect(296, 0, 300, 300) {
		t.Fatalf("right resizer at %v", res)
	}

	// dragging the resizer of a right band to the left makes it wider
	start := image.Pt(297, 150)
	dui.Mouse(draw.Mouse{Point: start, Buttons: Button1})
	dui.Mouse(draw.Mouse{Point: start.Add(image.Pt(-20, 0)), Buttons: Button1})
	if s := ui.Space(BandRight); s != 120 {
		t.Fatalf("right space after drag %d, need 120", s)
	}
	// beyond the maximum is clamped
	dui.Mouse(draw.Mouse{Point: start.Add(image.Pt(-200, 0)), Buttons: Button1})
	if s := ui.Space(BandRight); s != 160 {
		t.Fatalf("right space after long drag %d, need 160", s)
	}
	dui.Mouse(draw.Mouse{Point: start.Add(image.Pt(-200, 0))})
	dui.Render(NewRecorder(rect(image.Pt(400, 300))))
	if r := ui.BandRect(BandRight); r != image.Rect(240, 0, 400, 300) {
		t.Fatalf("right band after drag at %v", r)
	}
}

func TestDockSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")

	dui := newTestDUI(t)
	settings, err := OpenSettings(path)
	if err != nil {
		t.Fatalf("open settings: %v", err)
	}
	dui.Settings = settings
	render(t, dui, dockWidget(DockProps{}), image.Pt(400, 300))
	ui := dui.Top.UI.(*Dock)
	ui.SetSpace(dui, dui.Top, BandTop, 99)

	dui2 := newTestDUI(t)
	settings2, err := OpenSettings(path)
	if err != nil {
		t.Fatalf("open settings again: %v", err)
	}
	dui2.Settings = settings2
	render(t, dui2, dockWidget(DockProps{}), image.Pt(400, 300))
	if s := dui2.Top.UI.(*Dock).Space(BandTop); s != 99 {
		t.Fatalf("restored top space %d, need 99", s)
	}
}

func TestDockOrder(t *testing.T) {
	dui := newTestDUI(t)
	w := func(order []Band) *Widget {
		return W(DockKind, DockProps{Order: order, Spaces: map[Band]int{BandTop: 50, BandLeft: 100}},
			NewLabel("top").WithLayoutData(BandTop),
			NewLabel("left").WithLayoutData(BandLeft),
			NewLabel("body"),
		)
	}

	render(t, dui, w(nil), image.Pt(400, 300))
	ui := dui.Top.UI.(*Dock)
	// top first: spans the full width, left is below it
	if r := ui.BandRect(BandTop); r != image.Rect(0, 0, 400, 50) {
		t.Fatalf("top band %v", r)
	}
	if r := ui.BandRect(BandLeft); r != image.Rect(0, 54, 100, 300) {
		t.Fatalf("left band %v", r)
	}

	render(t, dui, w([]Band{BandLeft}), image.Pt(400, 300))
	if r := ui.BandRect(BandLeft); r != image.Rect(0, 0, 100, 300) {
		t.Fatalf("left band with left first %v", r)
	}
	if r := ui.BandRect(BandTop); r != image.Rect(104, 0, 400, 50) {
		t.Fatalf("top band with left first %v", r)
	}

	mustPanic(t, "duplicate band", "duplicate band", func() {
		dockOrder([]Band{BandTop, BandTop})
	})
	mustPanic(t, "body in order", "bad band", func() {
		dockOrder([]Band{BandBody})
	})
}

func TestDockBadLayoutData(t *testing.T) {
	dui := newTestDUI(t)
	dui.Build(W(DockKind, DockProps{}, NewLabel("x").WithLayoutData("top")))
	mustPanic(t, "string layout data", "needs a Band", func() {
		dui.Measure(dui.Top)
	})
}
