package wtree

import (
	"image"
	"path/filepath"
	"testing"

	"9fans.net/go/draw"
	"github.com/google/go-cmp/cmp"
)

func splitWidget(props SplitProps, n int) *Widget {
	var kids []*Widget
	for i := 0; i < n; i++ {
		kids = append(kids, NewSpacer(image.Pt(1, 1)))
	}
	return W(SplitKind, props, kids...).WithKey("split")
}

func kidRects(e *Element) []image.Rectangle {
	var l []image.Rectangle
	for _, k := range e.Kids {
		l = append(l, k.R)
	}
	return l
}

func TestSplitEven(t *testing.T) {
	dui := newTestDUI(t)
	render(t, dui, splitWidget(SplitProps{Gutter: 4}, 3), image.Pt(100, 20))
	exp := []image.Rectangle{
		image.Rect(0, 0, 30, 20),
		image.Rect(34, 0, 64, 20),
		image.Rect(68, 0, 100, 20),
	}
	if diff := cmp.Diff(exp, kidRects(dui.Top)); diff != "" {
		t.Fatalf("kids (-exp +got):\n%s", diff)
	}
}

func TestSplitFunc(t *testing.T) {
	dui := newTestDUI(t)
	quarter := func(dim int) []int {
		return []int{dim / 4, dim - dim/4}
	}
	render(t, dui, splitWidget(SplitProps{Vertical: true, Gutter: 4, Split: quarter}, 2), image.Pt(20, 104))
	exp := []image.Rectangle{
		image.Rect(0, 0, 20, 25),
		image.Rect(0, 29, 20, 104),
	}
	if diff := cmp.Diff(exp, kidRects(dui.Top)); diff != "" {
		t.Fatalf("kids (-exp +got):\n%s", diff)
	}

	dui = newTestDUI(t)
	bad := func(dim int) []int {
		return []int{dim}
	}
	mustPanic(t, "bad split", "bad number of dims", func() {
		render(t, dui, splitWidget(SplitProps{Split: bad}, 2), image.Pt(100, 20))
	})
}

func TestSplitDrag(t *testing.T) {
	dui := newTestDUI(t)
	render(t, dui, splitWidget(SplitProps{Gutter: 4}, 2), image.Pt(104, 20))
	ui := dui.Top.UI.(*Split)
	if diff := cmp.Diff([]int{50, 50}, ui.Dimensions(dui, dui.Top, nil)); diff != "" {
		t.Fatalf("dims (-exp +got):\n%s", diff)
	}

	dui.Mouse(draw.Mouse{Point: image.Pt(51, 5), Buttons: Button1})
	dui.Mouse(draw.Mouse{Point: image.Pt(61, 5), Buttons: Button1})
	dui.Mouse(draw.Mouse{Point: image.Pt(61, 5)})
	dui.Render(NewRecorder(rect(image.Pt(104, 20))))
	exp := []image.Rectangle{
		image.Rect(0, 0, 60, 20),
		image.Rect(64, 0, 104, 20),
	}
	if diff := cmp.Diff(exp, kidRects(dui.Top)); diff != "" {
		t.Fatalf("kids after drag (-exp +got):\n%s", diff)
	}

	// manual dims are scaled when the split changes size
	dui.Resize(image.Pt(204, 20))
	dui.Render(NewRecorder(rect(image.Pt(204, 20))))
	if diff := cmp.Diff([]int{120, 80}, ui.Dimensions(dui, dui.Top, nil)); diff != "" {
		t.Fatalf("dims after resize (-exp +got):\n%s", diff)
	}

	mustPanic(t, "wrong dims", "bad dimensions", func() {
		ui.Dimensions(dui, dui.Top, []int{1, 2, 3})
	})
}

func TestSplitSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	open := func() *DUI {
		dui := newTestDUI(t)
		s, err := OpenSettings(path)
		if err != nil {
			t.Fatalf("open settings: %v", err)
		}
		dui.Settings = s
		return dui
	}

	dui := open()
	render(t, dui, splitWidget(SplitProps{Gutter: 4}, 2), image.Pt(104, 20))
	dui.Mouse(draw.Mouse{Point: image.Pt(51, 5), Buttons: Button1})
	dui.Mouse(draw.Mouse{Point: image.Pt(41, 5), Buttons: Button1})
	dui.Mouse(draw.Mouse{Point: image.Pt(41, 5)})

	dui = open()
	render(t, dui, splitWidget(SplitProps{Gutter: 4}, 2), image.Pt(104, 20))
	if diff := cmp.Diff([]int{40, 60}, dui.Top.UI.(*Split).Dimensions(dui, dui.Top, nil)); diff != "" {
		t.Fatalf("restored dims (-exp +got):\n%s", diff)
	}
}
