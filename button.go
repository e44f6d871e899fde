package wtree

import (
	"fmt"
	"image"

	"9fans.net/go/draw"
)

// ButtonProps configures a Button.
type ButtonProps struct {
	Text     string
	Disabled bool
	Primary  bool                                    // Draw with the primary colors.
	Click    func(dui *DUI, self *Element) (e Event) // Called on button1 release inside the button, or enter/space with focus.
}

// Button is a clickable text with a border.
type Button struct {
	ButtonProps
}

var ButtonKind = &Kind{
	Name:  "Button",
	New:   func() UI { return &Button{} },
	Apply: applyButton,
	Flags: Focusable | Clickable | Hoverable,
}

var _ UI = &Button{}
var _ Clicker = &Button{}

// NewButton returns a widget for a button with text that calls click.
func NewButton(text string, click func(dui *DUI, self *Element) Event) *Widget {
	return W(ButtonKind, ButtonProps{Text: text, Click: click})
}

func applyButton(dui *DUI, self *Element, props interface{}) Change {
	ui := self.UI.(*Button)
	p := propsOf[ButtonProps](self.Kind(), props)
	change := ChangeNone
	if p.Text != ui.Text {
		change = ChangeLayout
	} else if p.Disabled != ui.Disabled || p.Primary != ui.Primary {
		change = ChangeDraw
	}
	ui.ButtonProps = p
	return change
}

// space returns the padding around the text, including the border.
func (ui *Button) space(dui *DUI, self *Element) image.Point {
	fontHeight := dui.Font(self).Height()
	return image.Pt(fontHeight/2, fontHeight/4).Add(pt(dui.Scale(1)))
}

func (ui *Button) Boundaries(dui *DUI, self *Element) Boundaries {
	size := dui.Font(self).StringSize(ui.Text).Add(ui.space(dui, self).Mul(2))
	return Fixed(size)
}

func (ui *Button) Arrange(dui *DUI, self *Element, inner image.Rectangle) {
}

func (ui *Button) Draw(dui *DUI, self *Element, p Painter, force bool) {
	pal := dui.Context.Palette
	cs := pal.Regular
	if ui.Primary {
		cs = pal.Primary
	}
	colors := cs.Normal
	if ui.Disabled {
		colors = pal.Disabled
	} else if dui.Hovered(self) {
		colors = cs.Hover
	}
	colors = styleColors(self, colors)

	r := self.inset().Shrink(self.R)
	p.FillRect(r.Inset(1), colors.Background)
	drawBorder(p, r, dui.Scale(1), colors.Border, true)

	hit := image.ZP
	if !ui.Disabled && dui.Pressed(self) {
		hit = image.Pt(0, 1)
	}
	p.DrawText(r.Min.Add(ui.space(dui, self)).Add(hit), ui.Text, dui.Font(self), colors.Text)
}

func (ui *Button) Mouse(dui *DUI, self *Element, m, origM draw.Mouse) (r Result) {
	// pressed look while button1 is held, and released after
	if (m.Buttons|origM.Buttons)&Button1 != 0 {
		self.MarkDraw()
	}
	return
}

func (ui *Button) Key(dui *DUI, self *Element, k rune) (r Result) {
	return
}

func (ui *Button) Click(dui *DUI, self *Element) (e Event) {
	if ui.Disabled {
		return
	}
	e.Consumed = true
	if ui.ButtonProps.Click != nil {
		e = ui.ButtonProps.Click(dui, self)
		e.Consumed = true
	}
	return
}

func (ui *Button) Print(self *Element, indent int) {
	PrintUI(fmt.Sprintf("Button %q", ui.Text), self, indent)
}
