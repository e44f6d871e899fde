package wtree

import (
	"fmt"
	"image"

	"9fans.net/go/draw"
)

// ImageProps configures an Image. Either Image is set, or Name is loaded from
// the image cache of the context.
type ImageProps struct {
	Name  string
	Image image.Image
}

// Image draws an image at its original size. Images that cannot be loaded are
// logged and take no space.
type Image struct {
	ImageProps

	img      image.Image
	acquired string // Name of image referenced in the cache.
	applied  bool
}

var ImageKind = &Kind{
	Name:  "Image",
	New:   func() UI { return &Image{} },
	Apply: applyImage,
}

var _ UI = &Image{}
var _ Destroyer = &Image{}

// NewImage returns a widget for the named image from the image cache.
func NewImage(name string) *Widget {
	return W(ImageKind, ImageProps{Name: name})
}

func applyImage(dui *DUI, self *Element, props interface{}) Change {
	ui := self.UI.(*Image)
	p := propsOf[ImageProps](self.Kind(), props)
	if ui.applied && p.Name == ui.Name && same(p.Image, ui.Image) {
		return ChangeNone
	}
	ui.release(dui)
	ui.ImageProps = p
	ui.applied = true
	switch {
	case p.Image != nil:
		ui.img = p.Image
	case p.Name != "":
		ui.img = dui.Context.Images.Acquire(p.Name)
		if ui.img != nil {
			ui.acquired = p.Name
		}
	}
	return ChangeLayout
}

func (ui *Image) release(dui *DUI) {
	if ui.acquired != "" {
		dui.Context.Images.Release(ui.acquired)
		ui.acquired = ""
	}
	ui.img = nil
}

func (ui *Image) size() image.Point {
	if ui.img == nil {
		return image.ZP
	}
	return ui.img.Bounds().Size()
}

func (ui *Image) Boundaries(dui *DUI, self *Element) Boundaries {
	return Fixed(ui.size())
}

func (ui *Image) Arrange(dui *DUI, self *Element, inner image.Rectangle) {
}

func (ui *Image) Draw(dui *DUI, self *Element, p Painter, force bool) {
	if ui.img == nil {
		return
	}
	inner := self.inset().Shrink(self.R)
	p.DrawImage(image.Rectangle{inner.Min, inner.Min.Add(ui.size())}, ui.img)
}

func (ui *Image) Mouse(dui *DUI, self *Element, m, origM draw.Mouse) (r Result) {
	return
}

func (ui *Image) Key(dui *DUI, self *Element, k rune) (r Result) {
	return
}

func (ui *Image) Destroy(dui *DUI, self *Element) {
	ui.release(dui)
}

func (ui *Image) Print(self *Element, indent int) {
	PrintUI(fmt.Sprintf("Image %q %v", ui.Name, ui.size()), self, indent)
}
