package lvgl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"

	"github.com/zhimiaox/sfl"
)

var errRangeCheck = errors.New("lvgl: glyph metrics do not fit the glyf table")

type GlyfTable struct {
	Size  uint32  // record size, including glyph data
	Label [4]byte // "glyf"
}

type GlyfData struct {
	GlyfDataInfo
	Bitmap *bytes.Buffer
}

type GlyfDataInfo struct {
	AdvanceWidth int16 // FP4
	BBoxX        int8
	BBoxY        int8 // bottom of the box, relative to the baseline, y up
	BBoxWidth    uint8
	BBoxHeight   uint8
}

func (d *GlyfData) Bytes() []byte {
	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, d.GlyfDataInfo)
	_, _ = d.Bitmap.WriteTo(buf)
	return buf.Bytes()
}

func NewGlyfTable() *GlyfTable {
	return &GlyfTable{
		Size:  8,
		Label: [4]byte{'g', 'l', 'y', 'f'},
	}
}

// GlyfDataFromAtlas cuts g out of the atlas as a 4 bit per pixel bitmap.
// Coverage is taken from the alpha channel. ascent places the box relative to
// the baseline. Glyphs whose box or advance do not fit the table fields are
// rejected.
func GlyfDataFromAtlas(img image.Image, g sfl.Glyph, ascent int) (*GlyfData, error) {
	rect := g.Rect()
	advance, ok1 := sfl.ConvNumber[int16](int(g.XAdvance) * 16)
	x, ok2 := sfl.ConvNumber[int8](g.XOffset)
	y, ok3 := sfl.ConvNumber[int8](ascent - int(g.YOffset) - int(g.Height))
	w, ok4 := sfl.ConvNumber[uint8](rect.Dx())
	h, ok5 := sfl.ConvNumber[uint8](rect.Dy())
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return nil, fmt.Errorf("%w: glyph %d", errRangeCheck, g.ID)
	}
	info := &GlyfData{
		GlyfDataInfo: GlyfDataInfo{
			AdvanceWidth: advance,
			BBoxX:        x,
			BBoxY:        y,
			BBoxWidth:    w,
			BBoxHeight:   h,
		},
		Bitmap: new(bytes.Buffer),
	}

	// two pixels per byte, high nibble first
	half, b := false, byte(0)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			v := byte(a >> 12)
			if !half {
				b = v << 4
			} else {
				info.Bitmap.WriteByte(b | v)
			}
			half = !half
		}
	}
	if half {
		info.Bitmap.WriteByte(b)
	}
	return info, nil
}
