package wtree

import (
	"fmt"
	"image"
	"image/color"
)

// Painter draws on a surface. It keeps a stack of states with a clip
// rectangle and a translation; Save pushes the current state, Restore pops it.
// All coordinates are absolute before translation.
type Painter interface {
	FillRect(r image.Rectangle, c color.Color)
	DrawLine(p0, p1 image.Point, thick int, c color.Color)
	DrawText(p image.Point, s string, f Font, c color.Color)
	DrawImage(r image.Rectangle, img image.Image)

	Clip() image.Rectangle    // Current clip rectangle, in absolute coordinates.
	ClipIn(r image.Rectangle) // Intersect the clip rectangle with r.
	Translate(delta image.Point)
	Save()
	Restore()
}

// Op is a paint operation recorded by a Recorder.
type Op struct {
	Kind  string // "fill", "line", "text" or "image".
	R     image.Rectangle
	Text  string
	Color color.Color
}

func (o Op) String() string {
	if o.Kind == "text" {
		return fmt.Sprintf("%s %v %q", o.Kind, o.R, o.Text)
	}
	return fmt.Sprintf("%s %v", o.Kind, o.R)
}

type painterState struct {
	clip   image.Rectangle
	offset image.Point
}

// Recorder is a Painter that records the operations it is asked to do, clipped
// and translated. Operations entirely outside the clip are dropped.
type Recorder struct {
	Ops []Op

	state painterState
	stack []painterState
}

var _ Painter = &Recorder{}

// NewRecorder returns a recorder clipped to r.
func NewRecorder(r image.Rectangle) *Recorder {
	return &Recorder{state: painterState{clip: r}}
}

func (p *Recorder) record(kind string, r image.Rectangle, text string, c color.Color) {
	r = r.Add(p.state.offset)
	var ok bool
	if r.Empty() {
		ok = r.Min.In(p.state.clip)
	} else {
		r, ok = clipRect(r, p.state.clip)
	}
	if ok {
		p.Ops = append(p.Ops, Op{kind, r, text, c})
	}
}

func (p *Recorder) FillRect(r image.Rectangle, c color.Color) {
	p.record("fill", r, "", c)
}

func (p *Recorder) DrawLine(p0, p1 image.Point, thick int, c color.Color) {
	r := image.Rectangle{p0, p1}.Canon()
	r.Max = r.Max.Add(pt(maximum(1, thick)))
	p.record("line", r, "", c)
}

func (p *Recorder) DrawText(pt image.Point, s string, f Font, c color.Color) {
	p.record("text", image.Rectangle{pt, pt.Add(f.StringSize(s))}, s, c)
}

func (p *Recorder) DrawImage(r image.Rectangle, img image.Image) {
	p.record("image", r, "", nil)
}

func (p *Recorder) Clip() image.Rectangle {
	return p.state.clip.Sub(p.state.offset)
}

func (p *Recorder) ClipIn(r image.Rectangle) {
	r = r.Add(p.state.offset)
	if c, ok := clipRect(p.state.clip, r); ok {
		p.state.clip = c
	} else {
		p.state.clip = image.Rectangle{p.state.clip.Min, p.state.clip.Min}
	}
}

func (p *Recorder) Translate(delta image.Point) {
	p.state.offset = p.state.offset.Add(delta)
}

func (p *Recorder) Save() {
	p.stack = append(p.stack, p.state)
}

func (p *Recorder) Restore() {
	if len(p.stack) == 0 {
		panic("restore without save")
	}
	p.state = p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
}

// Depth returns the number of saved states, 0 when all saves have been restored.
func (p *Recorder) Depth() int {
	return len(p.stack)
}

// Texts returns the text of all recorded text operations.
func (p *Recorder) Texts() []string {
	var l []string
	for _, o := range p.Ops {
		if o.Kind == "text" {
			l = append(l, o.Text)
		}
	}
	return l
}

// drawBorder draws a border of width on the inside of r.
// With rounded set, corners are cut off diagonally.
func drawBorder(p Painter, r image.Rectangle, width int, c color.Color, rounded bool) {
	if !rounded {
		p.FillRect(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width), c)
		p.FillRect(image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y), c)
		p.FillRect(image.Rect(r.Min.X, r.Min.Y+width, r.Min.X+width, r.Max.Y-width), c)
		p.FillRect(image.Rect(r.Max.X-width, r.Min.Y+width, r.Max.X, r.Max.Y-width), c)
		return
	}

	offset := 2 * width
	x0 := r.Min.X
	x1 := r.Max.X - width
	y0 := r.Min.Y
	y1 := r.Max.Y - width
	p.DrawLine(image.Pt(x0, y0+offset), image.Pt(x0, y1-offset), width, c)
	p.DrawLine(image.Pt(x0+offset, y1), image.Pt(x1-offset, y1), width, c)
	p.DrawLine(image.Pt(x1, y1-offset), image.Pt(x1, y0+offset), width, c)
	p.DrawLine(image.Pt(x1-offset, y0), image.Pt(x0+offset, y0), width, c)
	p.DrawLine(image.Pt(x0, y0+offset), image.Pt(x0+offset, y0), width, c)
	p.DrawLine(image.Pt(x1-offset, y0), image.Pt(x1, y0+offset), width, c)
	p.DrawLine(image.Pt(x1, y1-offset), image.Pt(x1-offset, y1), width, c)
	p.DrawLine(image.Pt(x0+offset, y1), image.Pt(x0, y1-offset), width, c)
}
