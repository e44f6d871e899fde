package wtree

import (
	"image"

	"9fans.net/go/draw"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Font measures text for layout.
type Font interface {
	StringSize(s string) image.Point
	Height() int
}

// FaceFont measures text with a font face.
type FaceFont struct {
	Face font.Face
}

var _ Font = FaceFont{}

// DefaultFont is a fixed 7x13 pixel font, used when no font is configured.
var DefaultFont Font = FaceFont{basicfont.Face7x13}

func (f FaceFont) StringSize(s string) image.Point {
	return image.Pt(font.MeasureString(f.Face, s).Ceil(), f.Height())
}

func (f FaceFont) Height() int {
	return f.Face.Metrics().Height.Ceil()
}

// DrawFont measures text with a font opened on a draw display.
type DrawFont struct {
	Font *draw.Font
}

var _ Font = DrawFont{}

func (f DrawFont) StringSize(s string) image.Point {
	return f.Font.StringSize(s)
}

func (f DrawFont) Height() int {
	return f.Font.Height
}

// CellFont measures text in terminal cells: each cell is one unit wide, a line is one unit high.
// Wide runes (e.g. CJK) take two cells.
type CellFont struct{}

var _ Font = CellFont{}

func (CellFont) StringSize(s string) image.Point {
	return image.Pt(runewidth.StringWidth(s), 1)
}

func (CellFont) Height() int {
	return 1
}
