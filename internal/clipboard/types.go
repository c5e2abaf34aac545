// Package clipboard provides image reading from the system clipboard.
package clipboard

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/zhubert/clip2png/internal/errors"
)

// Source is a clipboard that may hold an image.
//
// ContainsImage and GetImage are two separate reads of shared system state.
// Another process may change the clipboard in between, so GetImage can
// return a nil image even after ContainsImage reported true.
type Source interface {
	ContainsImage() bool
	GetImage() (*Image, error)
}

// Image is a decoded clipboard image owned by the caller until Close.
type Image struct {
	Format string // decoder name, e.g. "png", "tiff"
	Width  int
	Height int

	img    image.Image
	raw    []byte
	closed bool
}

// NewImage wraps an already decoded image.
func NewImage(img image.Image, format string) *Image {
	b := img.Bounds()
	return &Image{
		Format: format,
		Width:  b.Dx(),
		Height: b.Dy(),
		img:    img,
	}
}

// Decode decodes a clipboard payload in any registered format.
func Decode(data []byte) (*Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.ClipboardDecodeFailed(err)
	}
	ci := NewImage(img, format)
	ci.raw = data
	return ci, nil
}

// Decoded returns the pixel data, or nil once the image has been closed.
func (i *Image) Decoded() image.Image {
	if i == nil || i.closed {
		return nil
	}
	return i.img
}

// Size returns the length of the raw clipboard payload in bytes.
func (i *Image) Size() int {
	if i == nil {
		return 0
	}
	return len(i.raw)
}

// Closed reports whether Close has been called.
func (i *Image) Closed() bool {
	return i != nil && i.closed
}

// Close drops the payload and pixel buffers. It is safe to call more than once.
func (i *Image) Close() error {
	if i == nil || i.closed {
		return nil
	}
	i.img = nil
	i.raw = nil
	i.closed = true
	return nil
}
