// Package gen renders a TrueType or OpenType font into a glyph atlas and the
// matching .sfl descriptor.
package gen

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"
	"slices"

	"golang.org/x/image/draw"

	"github.com/zhimiaox/sfl"
)

var (
	errNoRunes    = errors.New("gen: no runes requested")
	errNoGlyphs   = errors.New("gen: none of the requested runes could be rendered")
	errRangeCheck = errors.New("gen: glyph metrics out of range")
)

// Options control rendering. A nil *Options selects the defaults.
type Options struct {
	// Name is written as the font name. Empty selects the family name
	// stored in the font.
	Name string
	// Size is the point size, 32 by default.
	Size float64
	// DPI defaults to 72, making one point one pixel.
	DPI float64
	// Hinting renders with freetype's hinting rasterizer instead of the
	// unhinted vector one. Only TrueType outlines are supported then.
	Hinting bool
	// Padding is the gap in pixels around every glyph in the atlas,
	// 1 by default.
	Padding int
	// ImageName is written as the atlas path, "atlas.png" by default.
	ImageName string
}

func (o *Options) withDefaults() *Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.Size <= 0 {
		out.Size = 32
	}
	if out.DPI <= 0 {
		out.DPI = 72
	}
	if out.Padding <= 0 {
		out.Padding = 1
	}
	if out.ImageName == "" {
		out.ImageName = "atlas.png"
	}
	return &out
}

// Generate renders runes from the font in src. Runes the font cannot render
// are logged and left out. The returned atlas holds white glyphs on a
// transparent background.
func Generate(src []byte, runes []rune, opts *Options) (*sfl.Font, *image.NRGBA, error) {
	if len(runes) == 0 {
		return nil, nil, errNoRunes
	}
	opts = opts.withDefaults()
	runes = slices.Clone(runes)
	slices.Sort(runes)
	runes = slices.Compact(runes)

	rz, err := newRasterizer(src, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("gen: %w", err)
	}

	bitmaps := make([]*bitmap, 0, len(runes))
	for _, r := range runes {
		bm, err := rz.glyph(r)
		if err != nil {
			slog.Error("glyph rasterization failed", "rune", string(r), "code", r, "err", err)
			continue
		}
		bitmaps = append(bitmaps, bm)
	}
	if len(bitmaps) == 0 {
		return nil, nil, errNoGlyphs
	}

	m, err := rz.metrics()
	if err != nil {
		return nil, nil, fmt.Errorf("gen: %w", err)
	}
	ascent := m.Ascent.Ceil()
	lineHeight := m.Height.Ceil()
	if lineHeight <= 0 {
		lineHeight = (m.Ascent + m.Descent).Ceil()
	}

	img, rects := pack(bitmaps, opts.Padding)

	f := &sfl.Font{
		Name:      opts.Name,
		ImagePath: opts.ImageName,
		Glyphs:    make(map[uint32]sfl.Glyph, len(bitmaps)),
	}
	if f.Name == "" {
		f.Name = rz.name()
	}
	var ok1, ok2 bool
	f.Size, ok1 = sfl.ConvNumber[uint32](math.Round(opts.Size))
	f.LineHeight, ok2 = sfl.ConvNumber[uint32](lineHeight)
	if !ok1 || !ok2 {
		return nil, nil, errRangeCheck
	}
	for i, bm := range bitmaps {
		g, err := record(bm, rects[i], ascent)
		if err != nil {
			return nil, nil, err
		}
		f.Glyphs[uint32(bm.r)] = g
	}
	slog.Debug("font generated", "name", f.Name, "glyphs", len(f.Glyphs), "atlas", img.Bounds().Size())
	return f, img, nil
}

func record(bm *bitmap, rect image.Rectangle, ascent int) (sfl.Glyph, error) {
	vals := [...]int{
		int(bm.r), rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy(),
		bm.minX, ascent + bm.minY, bm.advance,
	}
	var v [len(vals)]int32
	for i, n := range vals {
		c, ok := sfl.ConvNumber[int32](n)
		if !ok {
			return sfl.Glyph{}, errRangeCheck
		}
		v[i] = c
	}
	return sfl.Glyph{
		ID:       v[0],
		X:        v[1],
		Y:        v[2],
		Width:    v[3],
		Height:   v[4],
		XOffset:  v[5],
		YOffset:  v[6],
		XAdvance: v[7],
	}, nil
}

// pack places the bitmaps on shelves, tallest first, in an atlas whose width
// is a power of two. Empty bitmaps get an empty rectangle at the origin.
func pack(bitmaps []*bitmap, pad int) (*image.NRGBA, []image.Rectangle) {
	order := make([]int, len(bitmaps))
	area, widest := 0, 0
	for i, bm := range bitmaps {
		order[i] = i
		s := bm.mask.Bounds().Size()
		area += (s.X + pad) * (s.Y + pad)
		widest = max(widest, s.X)
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return bitmaps[b].mask.Bounds().Dy() - bitmaps[a].mask.Bounds().Dy()
	})

	width := 64
	for width*width < area || width < widest+2*pad {
		width *= 2
	}

	rects := make([]image.Rectangle, len(bitmaps))
	x, y, shelf := pad, pad, 0
	for _, i := range order {
		s := bitmaps[i].mask.Bounds().Size()
		if s.X == 0 || s.Y == 0 {
			continue
		}
		if x+s.X+pad > width {
			x, y, shelf = pad, y+shelf+pad, 0
		}
		rects[i] = image.Rect(x, y, x+s.X, y+s.Y)
		x += s.X + pad
		shelf = max(shelf, s.Y)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, y+shelf+pad))
	for i, bm := range bitmaps {
		if rects[i].Empty() {
			continue
		}
		draw.DrawMask(img, rects[i], image.White, image.Point{}, bm.mask, image.Point{}, draw.Over)
	}
	return img, rects
}
