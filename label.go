package wtree

import (
	"fmt"
	"image"

	"9fans.net/go/draw"
)

// LabelProps configures a Label.
type LabelProps struct {
	Text  string                                  // Wrapped at line break opportunities, newlines always break.
	Click func(dui *DUI, self *Element) (e Event) // Called on button1 click, or enter/space with focus, if the element has the Clickable flag.
}

// Label draws multiline text in the font of its style, wrapped to the width it is given.
type Label struct {
	LabelProps

	lines []string
}

var LabelKind = &Kind{
	Name:  "Label",
	New:   func() UI { return &Label{} },
	Apply: applyLabel,
}

var _ UI = &Label{}
var _ HeightForWidther = &Label{}
var _ Clicker = &Label{}

// NewLabel returns a widget for a label with text.
func NewLabel(text string) *Widget {
	return W(LabelKind, LabelProps{Text: text})
}

func applyLabel(dui *DUI, self *Element, props interface{}) Change {
	ui := self.UI.(*Label)
	p := propsOf[LabelProps](self.Kind(), props)
	change := ChangeNone
	if p.Text != ui.Text {
		change = ChangeLayout
	}
	ui.LabelProps = p
	return change
}

func (ui *Label) Boundaries(dui *DUI, self *Element) Boundaries {
	font := dui.Font(self)
	minWidth, natural := textSegments(font, ui.Text)
	height := len(wrapText(font, ui.Text, natural)) * font.Height()
	return Flexible(image.Pt(minWidth, height), image.Pt(natural, height))
}

func (ui *Label) HeightForWidth(dui *DUI, self *Element, width int) int {
	font := dui.Font(self)
	return len(wrapText(font, ui.Text, width)) * font.Height()
}

func (ui *Label) Arrange(dui *DUI, self *Element, inner image.Rectangle) {
	ui.lines = wrapText(dui.Font(self), ui.Text, inner.Dx())
}

func (ui *Label) Draw(dui *DUI, self *Element, p Painter, force bool) {
	font := dui.Font(self)
	inner := self.inset().Shrink(self.R)
	color := styleColors(self, dui.Context.Palette.Regular.Normal).Text

	y := inner.Min.Y + alignOffset(byte(self.Style.Valign), inner.Dy(), len(ui.lines)*font.Height())
	for _, line := range ui.lines {
		x := inner.Min.X + alignOffset(byte(self.Style.Halign), inner.Dx(), font.StringSize(line).X)
		p.DrawText(image.Pt(x, y), line, font, color)
		y += font.Height()
	}
}

func (ui *Label) Mouse(dui *DUI, self *Element, m, origM draw.Mouse) (r Result) {
	return
}

func (ui *Label) Key(dui *DUI, self *Element, k rune) (r Result) {
	return
}

func (ui *Label) Click(dui *DUI, self *Element) (e Event) {
	if ui.LabelProps.Click != nil {
		e = ui.LabelProps.Click(dui, self)
	}
	return
}

func (ui *Label) Print(self *Element, indent int) {
	PrintUI(fmt.Sprintf("Label %q", ui.Text), self, indent)
}
