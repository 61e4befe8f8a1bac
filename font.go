package sfl

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strings"
)

// Glyph is a single character of the atlas: where it sits in the image and how
// it is placed relative to the pen position.
type Glyph struct {
	ID       int32 // character code, never negative in a parsed Font
	X        int32 // left edge in the atlas
	Y        int32 // top edge in the atlas
	Width    int32
	Height   int32
	XOffset  int32
	YOffset  int32 // distance from the top of the line to the top of the glyph
	XAdvance int32
}

// Rect returns the atlas rectangle of g.
func (g Glyph) Rect() image.Rectangle {
	return image.Rect(int(g.X), int(g.Y), int(g.X+g.Width), int(g.Y+g.Height))
}

// Font is a parsed .sfl descriptor.
type Font struct {
	Name      string
	ImagePath string
	// Glyphs maps a character code to its glyph.
	Glyphs     map[uint32]Glyph
	LineHeight uint32
	Size       uint32
}

// Glyph returns the glyph for r, if the font has one.
func (f *Font) Glyph(r rune) (Glyph, bool) {
	id, ok := ConvNumber[uint32](r)
	if !ok {
		return Glyph{}, false
	}
	g, ok := f.Glyphs[id]
	return g, ok
}

// SortedIDs returns the glyph ids in ascending order.
func (f *Font) SortedIDs() []uint32 {
	return slices.Sorted(maps.Keys(f.Glyphs))
}

func (f *Font) String() string {
	return fmt.Sprintf("Font: { name: %s, image_path: %q, line_height: %d, size: %d, glyphs: %d }",
		f.Name, f.ImagePath, f.LineHeight, f.Size, len(f.Glyphs))
}

// Encode writes f to w in .sfl form. Glyphs are written in id order and the
// image path is reduced to its last element, which is how Load expects to
// find the atlas next to the descriptor.
func (f *Font) Encode(w io.Writer) error {
	if strings.ContainsAny(f.Name, "\r\n") {
		return errors.New("sfl: font name contains a line break")
	}
	img := ""
	if f.ImagePath != "" {
		img = filepath.Base(f.ImagePath)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, f.Name)
	fmt.Fprintf(bw, "%d %d\n", f.Size, f.LineHeight)
	fmt.Fprintln(bw, img)
	fmt.Fprintln(bw, len(f.Glyphs))
	for _, id := range f.SortedIDs() {
		g := f.Glyphs[id]
		fmt.Fprintf(bw, "%d %d %d %d %d %d %d %d\n",
			g.ID, g.X, g.Y, g.Width, g.Height, g.XOffset, g.YOffset, g.XAdvance)
	}
	return bw.Flush()
}
