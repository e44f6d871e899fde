package wtree

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"io/fs"
	"sync/atomic"
	"testing"

	"golang.org/x/sync/errgroup"
)

// pngOpener serves a 4x3 png for name "a", and counts opens.
func pngOpener(t *testing.T, opens *int32) func(name string) (io.ReadCloser, error) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 1, color.White)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	data := buf.Bytes()
	return func(name string) (io.ReadCloser, error) {
		atomic.AddInt32(opens, 1)
		switch name {
		case "a":
			return io.NopCloser(bytes.NewReader(data)), nil
		case "garbage":
			return io.NopCloser(bytes.NewReader([]byte("not an image"))), nil
		}
		return nil, fs.ErrNotExist
	}
}

func TestImagesLoad(t *testing.T) {
	var opens int32
	c := NewImages(pngOpener(t, &opens))

	var g errgroup.Group
	for i := 0; i < 10; i++ {
		g.Go(func() error {
			img, err := c.Load("a")
			if err == nil && img.Bounds().Size() != image.Pt(4, 3) {
				err = errors.New("bad size")
			}
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if n := atomic.LoadInt32(&opens); n != 1 {
		t.Fatalf("image opened %d times, need 1", n)
	}

	if _, err := c.Load("missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("load of missing image: %v", err)
	}
	if _, err := c.Load("garbage"); err == nil {
		t.Fatalf("no error for garbage image")
	}

	c.Close()
	if _, err := c.Load("a"); err == nil {
		t.Fatalf("load after close succeeded")
	}
}

func TestImagesRefs(t *testing.T) {
	var opens int32
	c := NewImages(pngOpener(t, &opens))

	if c.Acquire("a") == nil || c.Acquire("a") == nil {
		t.Fatalf("acquire failed")
	}
	c.Release("a")
	if !c.Cached("a") {
		t.Fatalf("image dropped with a reference left")
	}
	c.Release("a")
	if c.Cached("a") {
		t.Fatalf("image kept without references")
	}
	if c.Acquire("missing") != nil {
		t.Fatalf("acquire of missing image returned an image")
	}
	c.Release("missing")
}

func TestImageElement(t *testing.T) {
	var opens int32
	ctx := NewContext(nil, nil)
	ctx.Images = NewImages(pngOpener(t, &opens))
	dui := NewDUI(ctx, DefaultConfig())
	ctx.Release()
	defer dui.Close()

	rec := render(t, dui, NewVBox(NewImage("a"), NewImage("missing")), image.Pt(100, 100))
	a, missing := dui.Top.Kids[0], dui.Top.Kids[1]
	if b := a.Bounds(); b.Min != image.Pt(4, 3) || b.Max != image.Pt(4, 3) {
		t.Fatalf("image boundaries %v", b)
	}
	if b := missing.Bounds(); b.Natural != image.ZP {
		t.Fatalf("missing image boundaries %v", b)
	}
	n := 0
	for _, op := range rec.Ops {
		if op.Kind == "image" {
			n++
			if op.R != image.Rect(0, 0, 4, 3) {
				t.Fatalf("image drawn at %v", op.R)
			}
		}
	}
	if n != 1 {
		t.Fatalf("%d images drawn, need 1", n)
	}

	dui.Build(nil)
	if ctx.Images.Cached("a") {
		t.Fatalf("image still cached after element destroyed")
	}
}

func TestContextRefs(t *testing.T) {
	ctx := NewContext(nil, nil)
	dui := NewDUI(ctx, DefaultConfig())
	ctx.Release()
	if ctx.Images.closed {
		t.Fatalf("images closed while a dui holds the context")
	}
	dui.Close()
	if !ctx.Images.closed {
		t.Fatalf("images not closed after last release")
	}
	mustPanic(t, "release too often", "released too often", ctx.Release)
	mustPanic(t, "retain after release", "retain of released context", func() {
		ctx.Retain()
	})
}
