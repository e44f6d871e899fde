package wtree

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/singleflight"
)

// Images is a cache of decoded images by name, shared between DUIs through a
// Context. Lookups are safe for concurrent use; concurrent loads of the same
// name are done once. Images stay cached while they have references.
type Images struct {
	open func(name string) (io.ReadCloser, error)

	mu     sync.RWMutex
	m      map[string]*cachedImage
	group  singleflight.Group
	closed bool
}

type cachedImage struct {
	img  image.Image
	refs int
}

// NewImages returns a cache that opens images with open, or from the file system if open is nil.
func NewImages(open func(name string) (io.ReadCloser, error)) *Images {
	if open == nil {
		open = func(name string) (io.ReadCloser, error) {
			return os.Open(name)
		}
	}
	return &Images{open: open, m: map[string]*cachedImage{}}
}

// Load returns the decoded image for name, loading it if it is not cached.
// Load does not add a reference; loaded images without references are dropped on the next Release of any image.
func (c *Images) Load(name string) (image.Image, error) {
	c.mu.RLock()
	ci, ok := c.m[name]
	closed := c.closed
	c.mu.RUnlock()
	if closed {
		return nil, fmt.Errorf("image cache closed")
	}
	if ok {
		return ci.img, nil
	}

	v, err, _ := c.group.Do(name, func() (interface{}, error) {
		c.mu.RLock()
		ci, ok := c.m[name]
		c.mu.RUnlock()
		if ok {
			return ci.img, nil
		}
		img, err := c.decode(name)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		if ci, ok := c.m[name]; ok {
			return ci.img, nil
		}
		c.m[name] = &cachedImage{img: img}
		return img, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(image.Image), nil
}

func (c *Images) decode(name string) (image.Image, error) {
	f, err := c.open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", name, err)
	}
	return img, nil
}

// Acquire returns the image for name with an added reference.
// A missing or broken image is logged and returns nil, which elements treat as an empty image.
func (c *Images) Acquire(name string) image.Image {
	img, err := c.Load(name)
	if err != nil {
		log.Printf("wtree: image %q: %s\n", name, err)
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if ci, ok := c.m[name]; ok {
		ci.refs++
	}
	return img
}

// Release drops a reference to name. Images without references are removed from the cache.
func (c *Images) Release(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if ci, ok := c.m[name]; ok && ci.refs > 0 {
		ci.refs--
	}
	for k, ci := range c.m {
		if ci.refs == 0 {
			delete(c.m, k)
		}
	}
}

// Cached returns whether name is in the cache.
func (c *Images) Cached(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.m[name]
	return ok
}

// Close drops all images. Later loads fail.
func (c *Images) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = map[string]*cachedImage{}
	c.closed = true
}
