package wtree

import (
	"image"

	"9fans.net/go/draw"
)

// CheckboxProps configures a Checkbox.
// Checked is applied only when it differs from the previously applied value,
// so toggles by the user survive rebuilds with unchanged props.
type CheckboxProps struct {
	Checked  bool
	Disabled bool
	Changed  func(dui *DUI, self *Element, checked bool) (e Event)
}

// Checkbox is a toggleable box, toggled with button1 or space.
type Checkbox struct {
	CheckboxProps

	checked bool
}

var CheckboxKind = &Kind{
	Name:  "Checkbox",
	New:   func() UI { return &Checkbox{} },
	Apply: applyCheckbox,
	Flags: Focusable | Clickable | Hoverable,
}

var _ UI = &Checkbox{}
var _ Checkable = &Checkbox{}

func applyCheckbox(dui *DUI, self *Element, props interface{}) Change {
	ui := self.UI.(*Checkbox)
	p := propsOf[CheckboxProps](self.Kind(), props)
	change := ChangeNone
	if p.Checked != ui.CheckboxProps.Checked {
		ui.checked = p.Checked
		change = ChangeDraw
	}
	if p.Disabled != ui.Disabled {
		change = ChangeDraw
	}
	ui.CheckboxProps = p
	return change
}

// boxSize returns the size of the square box.
func boxSize(dui *DUI, self *Element) int {
	return 2*dui.Scale(1) + 4*dui.Font(self).Height()/5
}

func (ui *Checkbox) Boundaries(dui *DUI, self *Element) Boundaries {
	hit := image.Pt(0, 1)
	return Fixed(pt(boxSize(dui, self)).Add(hit))
}

func (ui *Checkbox) Arrange(dui *DUI, self *Element, inner image.Rectangle) {
}

// toggleColors returns the colors for checkboxes and radiobuttons, and the color of the mark.
func toggleColors(dui *DUI, self *Element, disabled bool) (colors Colors, mark Colors) {
	pal := dui.Context.Palette
	colors = styleColors(self, pal.Regular.Normal)
	mark = colors
	if disabled {
		colors = styleColors(self, pal.Disabled)
		mark.Text = colors.Border
	} else if dui.Hovered(self) {
		colors = pal.Regular.Hover
		mark.Text = colors.Border
	}
	return
}

func (ui *Checkbox) Draw(dui *DUI, self *Element, p Painter, force bool) {
	colors, mark := toggleColors(dui, self, ui.Disabled)
	inner := self.inset().Shrink(self.R)
	r := image.Rectangle{inner.Min, inner.Min.Add(pt(boxSize(dui, self)))}

	hit := image.ZP
	if !ui.Disabled && dui.Pressed(self) {
		hit = image.Pt(0, 1)
	}
	p.FillRect(r.Add(hit), colors.Background)
	r = r.Add(hit)
	drawBorder(p, r, dui.Scale(1), mark.Text, true)

	cr := r.Inset((4 * dui.Font(self).Height() / 5) / 5)
	if ui.checked {
		p0 := image.Pt(cr.Min.X, cr.Min.Y+2*cr.Dy()/3)
		p1 := image.Pt(cr.Min.X+1*cr.Dx()/3, cr.Max.Y)
		p2 := image.Pt(cr.Max.X, cr.Min.Y)
		p.DrawLine(p0, p1, dui.Scale(1), mark.Text)
		p.DrawLine(p1, p2, dui.Scale(1), mark.Text)
	}
}

func (ui *Checkbox) Mouse(dui *DUI, self *Element, m, origM draw.Mouse) (r Result) {
	if (m.Buttons|origM.Buttons)&Button1 != 0 {
		self.MarkDraw()
	}
	return
}

func (ui *Checkbox) Key(dui *DUI, self *Element, k rune) (r Result) {
	return
}

func (ui *Checkbox) Checked() bool {
	return ui.checked
}

func (ui *Checkbox) SetChecked(dui *DUI, self *Element, checked bool) (e Event) {
	if ui.Disabled {
		return
	}
	e.Consumed = true
	if checked == ui.checked {
		return
	}
	ui.checked = checked
	self.MarkDraw()
	if ui.Changed != nil {
		e = ui.Changed(dui, self, checked)
		e.Consumed = true
	}
	return
}

func (ui *Checkbox) Print(self *Element, indent int) {
	s := "Checkbox"
	if ui.checked {
		s += " checked"
	}
	PrintUI(s, self, indent)
}
