package lvgl

import (
	"encoding/binary"

	"github.com/zhimiaox/sfl"
)

// HeadTable is the fixed header of an LVGL binary font.
type HeadTable struct {
	Size    uint32  // record size, for quick skip
	Label   [4]byte // "head"
	Version uint32
	Tables  uint16 // number of tables that follow

	// typographic metrics
	FontSize    uint16 // px
	Ascent      uint16 // highest glyph top above the baseline
	Descent     int16  // lowest glyph bottom, negative below the baseline
	TypoAscent  uint16
	TypoDescent int16
	TypoLineGap uint16
	MinY        int16
	MaxY        int16

	DefAdvanceWidth uint16 // used when a glyph stores no advance
	KerningScale    uint16 // FP12.4

	IndexToLocFormat byte // 0: Offset16, 1: Offset32
	GlyphIdFormat    byte // 0: 1 byte, 1: 2 bytes

	AdvanceWidthFormat byte // 0: integer, 1: FP4
	BitsPerPixel       byte // 1, 2, 3 or 4
	XyBits             byte
	WhBits             byte
	AdvanceWidthBits   byte
	CompressionId      byte // 0: raw bits
	SubpixelsMode      byte
	_                  byte

	UnderlinePosition  int16
	UnderlineThickness int16
}

// NewHeadTable fills the header from the descriptor metrics. ascent is the
// distance from the top of a line to the baseline; the glyph extents are
// filled in later from the glyph boxes.
func NewHeadTable(f *sfl.Font, ascent int) *HeadTable {
	size := uint16(f.Size)
	t := &HeadTable{
		Label:              [4]byte{'h', 'e', 'a', 'd'},
		Version:            1,
		Tables:             3,
		FontSize:           size,
		TypoAscent:         uint16(ascent),
		TypoDescent:        -int16(int(f.LineHeight) - ascent),
		DefAdvanceWidth:    size,
		KerningScale:       16,
		IndexToLocFormat:   1,
		GlyphIdFormat:      1,
		AdvanceWidthFormat: 1,
		BitsPerPixel:       4,
		XyBits:             8,
		WhBits:             8,
		AdvanceWidthBits:   16,
		UnderlinePosition:  -int16(max(1, int(f.Size)/10)),
		UnderlineThickness: int16(max(1, int(f.Size)/16)),
	}
	t.Size = uint32(binary.Size(t))
	return t
}
