package wtree

import (
	"sync/atomic"
)

// Context holds state shared between DUIs, e.g. multiple windows of an
// application: the style resolver, the default font and the image cache.
// It is reference counted: NewContext returns it with one reference, each
// DUI holds another. When the last reference is released the image cache is
// closed.
type Context struct {
	Sheet   StyleResolver
	Font    Font
	Images  *Images
	Palette Palette // Colors for UIs without style colors.

	refs int32
}

// NewContext returns a context with one reference. A nil font uses DefaultFont.
func NewContext(sheet StyleResolver, font Font) *Context {
	if font == nil {
		font = DefaultFont
	}
	return &Context{
		Sheet:   sheet,
		Font:    font,
		Images:  NewImages(nil),
		Palette: DefaultPalette(),
		refs:    1,
	}
}

// Retain adds a reference.
func (c *Context) Retain() *Context {
	if atomic.AddInt32(&c.refs, 1) <= 1 {
		panic("retain of released context")
	}
	return c
}

// Release drops a reference, closing the image cache after the last one.
func (c *Context) Release() {
	n := atomic.AddInt32(&c.refs, -1)
	switch {
	case n == 0:
		c.Images.Close()
	case n < 0:
		panic("context released too often")
	}
}
