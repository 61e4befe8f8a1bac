// Package atlas decodes the glyph atlas image referenced by a font descriptor.
package atlas

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/zhimiaox/sfl"
)

var errNoImage = errors.New("atlas: font has no image path")

// Decode decodes an atlas image from r. It returns the image together with the
// name of the format that was detected.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("atlas: %w", err)
	}
	return img, format, nil
}

// Open decodes the atlas of f from f.ImagePath and checks that every glyph
// rectangle lies inside it.
func Open(f *sfl.Font) (image.Image, error) {
	if f.ImagePath == "" {
		return nil, errNoImage
	}
	fd, err := os.Open(f.ImagePath)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	img, _, err := Decode(fd)
	if err != nil {
		return nil, err
	}
	if err := Check(f, img.Bounds()); err != nil {
		return nil, err
	}
	return img, nil
}

// OutOfBoundsError lists glyphs whose atlas rectangle is not contained in the
// image.
type OutOfBoundsError struct {
	Bounds image.Rectangle
	IDs    []uint32
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("atlas: %d glyph(s) outside image bounds %v, first is %d", len(e.IDs), e.Bounds, e.IDs[0])
}

// Check reports an *OutOfBoundsError if any glyph of f does not fit in bounds.
// Empty glyphs always fit.
func Check(f *sfl.Font, bounds image.Rectangle) error {
	var bad []uint32
	for _, id := range f.SortedIDs() {
		r := f.Glyphs[id].Rect()
		if r.Empty() {
			continue
		}
		if !r.In(bounds) {
			bad = append(bad, id)
		}
	}
	if len(bad) > 0 {
		return &OutOfBoundsError{Bounds: bounds, IDs: bad}
	}
	return nil
}
