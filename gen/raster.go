package gen

import (
	"errors"
	"image"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

var errMissingGlyph = errors.New("gen: font has no glyph for rune")

// bitmap is one rasterized glyph. minX and minY locate the top left corner of
// mask relative to the pen position on the baseline.
type bitmap struct {
	r          rune
	mask       *image.Alpha
	minX, minY int
	advance    int
}

type rasterizer interface {
	name() string
	metrics() (font.Metrics, error)
	glyph(r rune) (*bitmap, error)
}

func newRasterizer(src []byte, opts *Options) (rasterizer, error) {
	if opts.Hinting {
		tf, err := truetype.Parse(src)
		if err != nil {
			return nil, err
		}
		return &freetypeRasterizer{
			tf: tf,
			face: truetype.NewFace(tf, &truetype.Options{
				Size:    opts.Size,
				DPI:     opts.DPI,
				Hinting: font.HintingFull,
			}),
		}, nil
	}

	pf, err := sfnt.Parse(src)
	if err != nil {
		return nil, err
	}
	return &sfntRasterizer{
		pf:   pf,
		buf:  &sfnt.Buffer{},
		ppem: fixed.Int26_6(opts.Size * opts.DPI / 72 * 64),
	}, nil
}

// sfntRasterizer fills glyph outlines with the vector rasterizer. No hinting
// is applied.
type sfntRasterizer struct {
	pf   *sfnt.Font
	buf  *sfnt.Buffer
	ppem fixed.Int26_6
}

func (s *sfntRasterizer) name() string {
	n, err := s.pf.Name(s.buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return n
}

func (s *sfntRasterizer) metrics() (font.Metrics, error) {
	return s.pf.Metrics(s.buf, s.ppem, font.HintingNone)
}

func (s *sfntRasterizer) glyph(r rune) (*bitmap, error) {
	idx, err := s.pf.GlyphIndex(s.buf, r)
	if err != nil {
		return nil, err
	}
	if idx == 0 {
		return nil, errMissingGlyph
	}
	bounds, advance, err := s.pf.GlyphBounds(s.buf, idx, s.ppem, font.HintingNone)
	if err != nil {
		return nil, err
	}

	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	width, height := bounds.Max.X.Ceil()-minX, bounds.Max.Y.Ceil()-minY
	bm := &bitmap{
		r:       r,
		minX:    minX,
		minY:    minY,
		advance: advance.Round(),
	}
	if width <= 0 || height <= 0 {
		bm.mask = image.NewAlpha(image.Rectangle{})
		return bm, nil
	}
	bm.mask = image.NewAlpha(image.Rect(0, 0, width, height))

	segments, err := s.pf.LoadGlyph(s.buf, idx, s.ppem, nil)
	if err != nil {
		return nil, err
	}
	originX, originY := float32(-minX), float32(-minY)
	rz := vector.NewRasterizer(width, height)
	rz.DrawOp = draw.Src
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			rz.MoveTo(
				originX+float32(seg.Args[0].X)/64,
				originY+float32(seg.Args[0].Y)/64,
			)
		case sfnt.SegmentOpLineTo:
			rz.LineTo(
				originX+float32(seg.Args[0].X)/64,
				originY+float32(seg.Args[0].Y)/64,
			)
		case sfnt.SegmentOpQuadTo:
			rz.QuadTo(
				originX+float32(seg.Args[0].X)/64,
				originY+float32(seg.Args[0].Y)/64,
				originX+float32(seg.Args[1].X)/64,
				originY+float32(seg.Args[1].Y)/64,
			)
		case sfnt.SegmentOpCubeTo:
			rz.CubeTo(
				originX+float32(seg.Args[0].X)/64,
				originY+float32(seg.Args[0].Y)/64,
				originX+float32(seg.Args[1].X)/64,
				originY+float32(seg.Args[1].Y)/64,
				originX+float32(seg.Args[2].X)/64,
				originY+float32(seg.Args[2].Y)/64,
			)
		}
	}
	rz.Draw(bm.mask, bm.mask.Bounds(), image.Opaque, image.Point{})
	return bm, nil
}

// freetypeRasterizer renders through freetype's hinting TrueType face.
type freetypeRasterizer struct {
	tf   *truetype.Font
	face font.Face
}

func (f *freetypeRasterizer) name() string {
	return f.tf.Name(truetype.NameIDFontFamily)
}

func (f *freetypeRasterizer) metrics() (font.Metrics, error) {
	return f.face.Metrics(), nil
}

func (f *freetypeRasterizer) glyph(r rune) (*bitmap, error) {
	if f.tf.Index(r) == 0 {
		return nil, errMissingGlyph
	}
	dr, mask, maskp, advance, ok := f.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return nil, errMissingGlyph
	}
	// the face reuses its mask buffer, so copy the glyph out
	bm := &bitmap{
		r:       r,
		mask:    image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy())),
		minX:    dr.Min.X,
		minY:    dr.Min.Y,
		advance: advance.Round(),
	}
	if !dr.Empty() {
		draw.Draw(bm.mask, bm.mask.Bounds(), mask, maskp, draw.Src)
	}
	return bm, nil
}
