package wtree

import (
	"image"
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func newSheetDUI(t *testing.T, rules ...Rule) (*DUI, *Sheet) {
	t.Helper()
	sheet := NewSheet(rules...)
	ctx := NewContext(sheet, nil)
	dui := NewDUI(ctx, DefaultConfig())
	ctx.Release()
	t.Cleanup(dui.Close)
	return dui, sheet
}

func TestStyleColorOnlyRedraws(t *testing.T) {
	dui, sheet := newSheetDUI(t)
	render(t, dui, NewVBox(NewLabel("a")), image.Pt(100, 100))
	lbl := dui.Top.Kids[0]

	sheet.AddRule(Rule{Kind: "Label", Props: map[string]interface{}{PropertyColor: "#ff0000"}})
	if !lbl.Measured() || !dui.Top.Measured() {
		t.Fatalf("color change invalidated measurement")
	}
	if lbl.Layout != Clean {
		t.Fatalf("color change invalidated arrangement")
	}
	if lbl.Draw != Dirty {
		t.Fatalf("color change did not mark draw")
	}
	red, _ := colorful.Hex("#ff0000")
	if lbl.Style.Colors.Text != color.Color(red) {
		t.Fatalf("label color %v", lbl.Style.Colors.Text)
	}

	rec := NewRecorder(rect(image.Pt(100, 100)))
	dui.Render(rec)
	if len(rec.Ops) != 1 || rec.Ops[0].Color != color.Color(red) {
		t.Fatalf("redraw after color change: %v", rec.Ops)
	}
}

func TestStyleFontRemeasures(t *testing.T) {
	dui, sheet := newSheetDUI(t)
	render(t, dui, NewVBox(NewLabel("abc")), image.Pt(100, 100))
	lbl := dui.Top.Kids[0]
	if w := lbl.Bounds().Natural.X; w != 21 {
		t.Fatalf("label width %d, need 21", w)
	}

	sheet.AddRule(Rule{Kind: "Label", Props: map[string]interface{}{PropertyFont: CellFont{}}})
	if lbl.Measured() || dui.Top.Measured() {
		t.Fatalf("font change did not invalidate measurement")
	}
	render(t, dui, NewVBox(NewLabel("abc")), image.Pt(100, 100))
	if b := lbl.Bounds(); b.Natural != image.Pt(3, 1) {
		t.Fatalf("label size with cell font %v, need 3x1", b.Natural)
	}
}

func TestStyleAlignRearranges(t *testing.T) {
	dui, sheet := newSheetDUI(t)
	render(t, dui, NewStack(NewSpacer(image.Pt(10, 10))), image.Pt(100, 100))
	sheet.AddRule(Rule{Kind: "Stack", Props: map[string]interface{}{PropertyTextAlign: HalignRight}})
	if !dui.Top.Measured() || dui.Top.Layout != Dirty {
		t.Fatalf("alignment change should arrange again, measured %v layout %d", dui.Top.Measured(), dui.Top.Layout)
	}
	dui.Render(NewRecorder(rect(image.Pt(100, 100))))
	if r := dui.Top.Kids[0].R; r.Min.X != 90 {
		t.Fatalf("kid at %v after right alignment", r)
	}
}

func TestStyleInheritance(t *testing.T) {
	dui, _ := newSheetDUI(t,
		Rule{Class: "panel", Props: map[string]interface{}{PropertyColor: "#00ff00", PropertyBackgroundColor: "#000000"}},
	)
	render(t, dui, NewVBox(NewLabel("a")).WithClass("panel"), image.Pt(100, 100))
	panel, lbl := dui.Top, dui.Top.Kids[0]
	if lbl.Style.Colors.Text != panel.Style.Colors.Text {
		t.Fatalf("text color not inherited")
	}
	if lbl.Style.Colors.Background != nil {
		t.Fatalf("background inherited")
	}
}

func TestStyleClassChange(t *testing.T) {
	dui, _ := newSheetDUI(t, Rule{Class: "big", Props: map[string]interface{}{PropertyMinSize: image.Pt(50, 50)}})
	render(t, dui, NewVBox(NewSpacer(image.Pt(1, 1))), image.Pt(100, 100))
	render(t, dui, NewVBox(NewSpacer(image.Pt(1, 1)).WithClass("big")), image.Pt(100, 100))
	if b := dui.Top.Kids[0].Bounds(); b.Min != image.Pt(50, 50) {
		t.Fatalf("min size after class change %v", b.Min)
	}
}

type watcher struct {
	Spacer
	kinds []PropertyKind
}

func (ui *watcher) StyleChanged(dui *DUI, self *Element, kind PropertyKind) {
	ui.kinds = append(ui.kinds, kind)
}

func TestStyleCustomProperty(t *testing.T) {
	kind := &Kind{Name: "Watcher", New: func() UI { return &watcher{} }}
	dui, sheet := newSheetDUI(t)
	render(t, dui, W(kind, nil), image.Pt(10, 10))
	sheet.AddRule(Rule{Kind: "Watcher", Props: map[string]interface{}{"blink-rate": 3}})
	ui := dui.Top.UI.(*watcher)
	if len(ui.kinds) != 1 || ui.kinds[0] != PropCustom {
		t.Fatalf("watcher got %v", ui.kinds)
	}
	if v := dui.Property(dui.Top, "blink-rate", 0); v != 3 {
		t.Fatalf("custom property %v", v)
	}
	if v := dui.PropertyInt(dui.Top, "blink-rate", 0); v != 3 {
		t.Fatalf("custom int property %v", v)
	}
}

func TestPropertyKinds(t *testing.T) {
	tests := map[string]PropertyKind{
		PropertyColor:         PropColor,
		PropertyBorderColor:   PropColor,
		PropertyTextAlign:     PropAlign,
		PropertyFont:          PropFont,
		PropertyPadding:       PropSpacing,
		PropertyMaxSize:       PropSize,
		"something-else":      PropCustom,
		PropertyVerticalAlign: PropAlign,
	}
	for name, exp := range tests {
		if got := PropertyKindOf(name); got != exp {
			t.Errorf("kind of %s is %d, need %d", name, got, exp)
		}
	}
}

func TestSheetSetRules(t *testing.T) {
	sheet := NewSheet(Rule{Props: map[string]interface{}{PropertyColor: "#000000"}})
	var got []PropertyKinds
	unsub := sheet.Changed.Subscribe(func(k PropertyKinds) {
		got = append(got, k)
	})
	sheet.SetRules(Rule{Props: map[string]interface{}{PropertyPadding: 1}})
	unsub()
	sheet.SetRules()
	if len(got) != 1 || !got[0].Has(PropColor) || !got[0].Has(PropSpacing) || got[0].Has(PropFont) {
		t.Fatalf("changes %v", got)
	}
	if len(sheet.Rules()) != 0 {
		t.Fatalf("rules left")
	}
}

func TestToColor(t *testing.T) {
	if c := toColor("nonsense"); c != nil {
		t.Fatalf("invalid color string gave %v", c)
	}
	if c := toColor(color.Black); c != color.Color(color.Black) {
		t.Fatalf("color passed through as %v", c)
	}
	if s := toSpace(2); s != SpaceXY(2, 2) {
		t.Fatalf("space from int %v", s)
	}
}

type sliceFont struct {
	widths []int
}

func (f sliceFont) StringSize(s string) image.Point { return image.Pt(len(s), 1) }
func (f sliceFont) Height() int                     { return 1 }

type sliceColor []uint32

func (c sliceColor) RGBA() (r, g, b, a uint32) { return c[0], c[1], c[2], c[3] }

func TestChangedKindsUncomparable(t *testing.T) {
	a := Style{Font: sliceFont{[]int{1}}, Colors: Colors{Text: sliceColor{0, 0, 0, 0xffff}}}
	b := Style{Font: sliceFont{[]int{1}}, Colors: Colors{Text: sliceColor{0, 0, 0, 0xffff}}}
	kinds := changedKinds(a, b)
	if !kinds.Has(PropFont) || !kinds.Has(PropColor) {
		t.Fatalf("uncomparable font and color not reported as changed: %v", kinds)
	}
	if kinds.Has(PropSpacing) || kinds.Has(PropSize) || kinds.Has(PropAlign) {
		t.Fatalf("unchanged properties reported: %v", kinds)
	}

	c := Style{Font: CellFont{}, Colors: Colors{Text: color.Black}}
	if kinds := changedKinds(c, c); kinds.Has(PropFont) || kinds.Has(PropColor) {
		t.Fatalf("equal styles reported %v", kinds)
	}
	if !same(nil, nil) || same(nil, CellFont{}) || same(color.Black, color.White) {
		t.Fatalf("same gives wrong result")
	}
}
