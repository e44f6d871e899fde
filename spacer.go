package wtree

import (
	"image"

	"9fans.net/go/draw"
)

// SpacerProps configures a Spacer. Sizes are in lowDPI pixels.
type SpacerProps struct {
	Size image.Point // Minimum and natural size.
	Max  image.Point // Zero coordinates mean no maximum.
}

// Spacer takes up space without drawing anything. With the Expand flag in a
// Box it takes up the space left.
type Spacer struct {
	SpacerProps
}

var SpacerKind = &Kind{
	Name:  "Spacer",
	New:   func() UI { return &Spacer{} },
	Apply: applySpacer,
}

var _ UI = &Spacer{}

// NewSpacer returns a widget for a spacer of size.
func NewSpacer(size image.Point) *Widget {
	return W(SpacerKind, SpacerProps{Size: size})
}

func applySpacer(dui *DUI, self *Element, props interface{}) Change {
	ui := self.UI.(*Spacer)
	p := propsOf[SpacerProps](self.Kind(), props)
	if p == ui.SpacerProps {
		return ChangeNone
	}
	ui.SpacerProps = p
	return ChangeLayout
}

func (ui *Spacer) Boundaries(dui *DUI, self *Element) Boundaries {
	size := image.Pt(dui.Scale(ui.Size.X), dui.Scale(ui.Size.Y))
	b := Flexible(size, size)
	return b.Constrain(image.ZP, image.Pt(dui.Scale(ui.Max.X), dui.Scale(ui.Max.Y)))
}

func (ui *Spacer) Arrange(dui *DUI, self *Element, inner image.Rectangle) {
}

func (ui *Spacer) Draw(dui *DUI, self *Element, p Painter, force bool) {
}

func (ui *Spacer) Mouse(dui *DUI, self *Element, m, origM draw.Mouse) (r Result) {
	return
}

func (ui *Spacer) Key(dui *DUI, self *Element, k rune) (r Result) {
	return
}

func (ui *Spacer) Print(self *Element, indent int) {
	PrintUI("Spacer", self, indent)
}
