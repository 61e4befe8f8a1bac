// Package lvgl converts .sfl fonts to the LVGL binary font format.
package lvgl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"log/slog"

	"github.com/zhimiaox/sfl"
	"github.com/zhimiaox/sfl/atlas"
)

type Font struct {
	*HeadTable
	*CmapTable
	*LocaTable
	*GlyfTable
}

// NewFont encodes f with glyph bitmaps taken from its atlas img. ascent is the
// distance from the top of a line to the baseline; 0 selects four fifths of
// the line height.
func NewFont(f *sfl.Font, img image.Image, ascent int) ([]byte, error) {
	if len(f.Glyphs) == 0 {
		return nil, errors.New("lvgl: font has no glyphs")
	}
	if err := atlas.Check(f, img.Bounds()); err != nil {
		return nil, err
	}
	if ascent == 0 {
		ascent = int(f.LineHeight) * 4 / 5
	}

	ids := f.SortedIDs()
	out := new(Font)
	out.HeadTable = NewHeadTable(f, ascent)
	cmapTable, cmapSubHeaders, cmapSubData := NewCmapTable(ids)
	out.CmapTable = cmapTable
	out.LocaTable = NewLocaTable(len(ids))
	out.GlyfTable = NewGlyfTable()

	// glyph 0 is reserved and carries no data
	bitmaps := make([][]byte, len(ids))
	offset := out.GlyfTable.Size
	locaOffset := []uint32{offset, offset}
	top, bottom := 0, 0
	for i, id := range ids {
		g := f.Glyphs[id]
		data, err := GlyfDataFromAtlas(img, g, ascent)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			top, bottom = int(data.BBoxY)+int(data.BBoxHeight), int(data.BBoxY)
		} else {
			top, bottom = max(top, int(data.BBoxY)+int(data.BBoxHeight)), min(bottom, int(data.BBoxY))
		}
		bitmaps[i] = data.Bytes()
		offset += uint32(len(bitmaps[i]))
		locaOffset = append(locaOffset, offset)
	}
	slog.Debug("lvgl font encoded", "font", f.Name, "glyphs", len(ids), "glyf_bytes", offset)

	out.HeadTable.Ascent, out.HeadTable.Descent = uint16(top), int16(bottom)
	out.HeadTable.MaxY, out.HeadTable.MinY = int16(top), int16(bottom)
	out.LocaTable.Size += uint32(len(locaOffset) * 4)
	out.GlyfTable.Size = offset

	buf := &bytes.Buffer{}
	for _, v := range []any{
		out.HeadTable,
		out.CmapTable, cmapSubHeaders, cmapSubData,
		out.LocaTable, locaOffset,
		out.GlyfTable,
	} {
		if err := binary.Write(buf, binary.LittleEndian, v); err != nil {
			return nil, err
		}
	}
	for i := range bitmaps {
		buf.Write(bitmaps[i])
	}
	return buf.Bytes(), nil
}
