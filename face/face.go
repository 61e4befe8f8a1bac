// Package face implements golang.org/x/image/font.Face for .sfl bitmap fonts.
package face

import (
	"errors"
	"image"
	"image/color"
	"log/slog"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/zhimiaox/sfl"
	"github.com/zhimiaox/sfl/atlas"
)

// Options tune how a Face is built. A nil *Options selects the defaults.
type Options struct {
	// Ascent is the distance from the top of a line to the baseline, in
	// pixels. Zero selects four fifths of the line height.
	Ascent int

	// Fallback is drawn in place of runes the font lacks. Zero selects '?',
	// a negative value disables the fallback.
	Fallback rune

	// Luminance takes glyph coverage from pixel brightness instead of
	// alpha, for atlases drawn light on an opaque background.
	Luminance bool
}

// Face draws glyphs straight out of the atlas image. It is safe for
// concurrent use once built.
type Face struct {
	name       string
	mask       *image.Alpha
	glyphs     map[rune]sfl.Glyph
	lineHeight int
	ascent     int
	fallback   rune
}

var _ font.Face = (*Face)(nil)

// New builds a Face from a descriptor and its decoded atlas. Glyphs whose
// rectangle falls outside the atlas are left out.
func New(f *sfl.Font, img image.Image, opts *Options) (*Face, error) {
	if f == nil || img == nil {
		return nil, errors.New("face: nil font or atlas")
	}
	if opts == nil {
		opts = &Options{}
	}

	b := img.Bounds()
	mask := image.NewAlpha(b)
	if opts.Luminance {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
				mask.SetAlpha(x, y, color.Alpha{A: g.Y})
			}
		}
	} else {
		draw.Draw(mask, b, img, b.Min, draw.Src)
	}

	skip := make(map[uint32]bool)
	var oob *atlas.OutOfBoundsError
	if err := atlas.Check(f, b); errors.As(err, &oob) {
		slog.Warn("glyphs outside atlas", "font", f.Name, "count", len(oob.IDs), "bounds", b)
		for _, id := range oob.IDs {
			skip[id] = true
		}
	}

	face := &Face{
		name:       f.Name,
		mask:       mask,
		glyphs:     make(map[rune]sfl.Glyph, len(f.Glyphs)),
		lineHeight: int(f.LineHeight),
		ascent:     opts.Ascent,
		fallback:   opts.Fallback,
	}
	for id, g := range f.Glyphs {
		if skip[id] {
			continue
		}
		r, ok := sfl.ConvNumber[rune](id)
		if !ok {
			continue
		}
		face.glyphs[r] = g
	}
	if face.ascent == 0 {
		face.ascent = face.lineHeight * 4 / 5
	}
	if face.fallback == 0 {
		face.fallback = '?'
	}
	return face, nil
}

func (f *Face) lookup(r rune) (sfl.Glyph, bool) {
	if g, ok := f.glyphs[r]; ok {
		return g, true
	}
	if f.fallback < 0 {
		return sfl.Glyph{}, false
	}
	g, ok := f.glyphs[f.fallback]
	return g, ok
}

func (f *Face) Close() error { return nil }

func (f *Face) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	g, ok := f.lookup(r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}
	x := dot.X.Floor() + int(g.XOffset)
	y := dot.Y.Floor() - f.ascent + int(g.YOffset)
	dr = image.Rect(x, y, x+int(g.Width), y+int(g.Height))
	return dr, f.mask, image.Pt(int(g.X), int(g.Y)), fixed.I(int(g.XAdvance)), true
}

func (f *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	g, ok := f.lookup(r)
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	top := int(g.YOffset) - f.ascent
	bounds = fixed.Rectangle26_6{
		Min: fixed.P(int(g.XOffset), top),
		Max: fixed.P(int(g.XOffset+g.Width), top+int(g.Height)),
	}
	return bounds, fixed.I(int(g.XAdvance)), true
}

func (f *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	g, ok := f.lookup(r)
	if !ok {
		return 0, false
	}
	return fixed.I(int(g.XAdvance)), true
}

// Kern always returns 0; the format carries no kerning pairs.
func (f *Face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func (f *Face) Metrics() font.Metrics {
	return font.Metrics{
		Height:     fixed.I(f.lineHeight),
		Ascent:     fixed.I(f.ascent),
		Descent:    fixed.I(f.lineHeight - f.ascent),
		XHeight:    f.extent('x'),
		CapHeight:  f.extent('H'),
		CaretSlope: image.Pt(0, 1),
	}
}

// extent is the height of r above the baseline, or 0 if the font lacks r.
func (f *Face) extent(r rune) fixed.Int26_6 {
	g, ok := f.glyphs[r]
	if !ok {
		return 0
	}
	return fixed.I(f.ascent - int(g.YOffset))
}
