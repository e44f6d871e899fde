package wtree

import (
	"fmt"
	"image"

	"9fans.net/go/draw"
)

// RadiobuttonProps configures a Radiobutton.
type RadiobuttonProps struct {
	Group    string      // Name of the group in the DUI. At most one radiobutton of a group is selected.
	Value    interface{} // Passed to Changed.
	Selected bool        // Applied only when it differs from the previously applied value.
	Disabled bool

	// Called on the newly selected radiobutton only.
	Changed func(dui *DUI, self *Element, value interface{}) (e Event)
}

// Radiobutton is a member of a named group, of which one can be selected.
// Selecting one deselects the others.
type Radiobutton struct {
	RadiobuttonProps

	self  *Element
	group *Group
}

var RadiobuttonKind = &Kind{
	Name:  "Radiobutton",
	New:   func() UI { return &Radiobutton{} },
	Apply: applyRadiobutton,
	Flags: Focusable | Clickable | Hoverable,
}

var _ UI = &Radiobutton{}
var _ Checkable = &Radiobutton{}
var _ Destroyer = &Radiobutton{}

func applyRadiobutton(dui *DUI, self *Element, props interface{}) Change {
	ui := self.UI.(*Radiobutton)
	p := propsOf[RadiobuttonProps](self.Kind(), props)
	ui.self = self
	change := ChangeNone
	if ui.group == nil || p.Group != ui.group.Name {
		if ui.group != nil {
			dui.leaveGroup(ui.group, self)
		}
		if p.Group == "" {
			ui.group = &Group{}
		} else {
			ui.group = dui.Group(p.Group)
		}
		ui.group.Join(self)
		change = ChangeDraw
		if p.Selected {
			ui.group.Select(self)
		}
	} else if p.Selected != ui.Selected && p.Selected {
		ui.group.Select(self)
	} else if p.Selected != ui.Selected && ui.group.Selected() == self {
		ui.group.Select(nil)
	}
	if p.Disabled != ui.Disabled {
		change = ChangeDraw
	}
	ui.RadiobuttonProps = p
	return change
}

func (ui *Radiobutton) Boundaries(dui *DUI, self *Element) Boundaries {
	hit := image.Pt(0, 1)
	return Fixed(pt(boxSize(dui, self)).Add(hit))
}

func (ui *Radiobutton) Arrange(dui *DUI, self *Element, inner image.Rectangle) {
}

func (ui *Radiobutton) Draw(dui *DUI, self *Element, p Painter, force bool) {
	colors, mark := toggleColors(dui, self, ui.Disabled)
	inner := self.inset().Shrink(self.R)
	r := image.Rectangle{inner.Min, inner.Min.Add(pt(boxSize(dui, self)))}

	hit := image.ZP
	if !ui.Disabled && dui.Pressed(self) {
		hit = image.Pt(0, 1)
	}
	r = r.Add(hit)
	p.FillRect(r, colors.Background)
	drawBorder(p, r, dui.Scale(1), mark.Text, true)

	if ui.Checked() {
		cr := r.Inset(maximum(2, (4*dui.Font(self).Height()/5)/5))
		p.FillRect(cr, mark.Text)
	}
}

func (ui *Radiobutton) Mouse(dui *DUI, self *Element, m, origM draw.Mouse) (r Result) {
	if (m.Buttons|origM.Buttons)&Button1 != 0 {
		self.MarkDraw()
	}
	return
}

func (ui *Radiobutton) Key(dui *DUI, self *Element, k rune) (r Result) {
	return
}

// Checked returns whether this radiobutton is the selected member of its group.
func (ui *Radiobutton) Checked() bool {
	return ui.group != nil && ui.group.Selected() == ui.self
}

// SetChecked selects the radiobutton. Radiobuttons cannot be unchecked by the
// user, only by selecting another in the group.
func (ui *Radiobutton) SetChecked(dui *DUI, self *Element, checked bool) (e Event) {
	if ui.Disabled {
		return
	}
	e.Consumed = true
	if !checked || ui.Checked() {
		return
	}
	ui.group.Select(self)
	if ui.Changed != nil {
		e = ui.Changed(dui, self, ui.Value)
		e.Consumed = true
	}
	return
}

func (ui *Radiobutton) Destroy(dui *DUI, self *Element) {
	if ui.group != nil {
		dui.leaveGroup(ui.group, self)
		ui.group = nil
	}
}

func (ui *Radiobutton) Print(self *Element, indent int) {
	s := fmt.Sprintf("Radiobutton %v", ui.Value)
	if ui.Checked() {
		s += " selected"
	}
	PrintUI(s, self, indent)
}
