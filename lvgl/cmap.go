package lvgl

import "encoding/binary"

type CmapTable struct {
	Size   uint32  // record size, including sub tables
	Label  [4]byte // "cmap"
	Tables uint32
}

type CmapSubTableHeader struct {
	DataOffset       uint32 // from the start of the cmap table
	RangeStart       uint32 // lowest code point
	RangeLength      uint16
	GlyphIdOffset    uint16
	DataEntriesCount uint16
	FormatType       byte // 3: sparse tiny
	_                byte
}

// NewCmapTable maps the sorted code points ids to glyph ids 1..len(ids) using
// sparse tiny sub tables. It returns the table header, the sub table headers
// and the code point deltas they point at.
func NewCmapTable(ids []uint32) (*CmapTable, []CmapSubTableHeader, []uint16) {
	ranges := CmapSplitSubTable(ids)
	t := &CmapTable{
		Label:  [4]byte{'c', 'm', 'a', 'p'},
		Tables: uint32(len(ranges)),
	}
	headers := make([]CmapSubTableHeader, len(ranges))
	nextGlyph := uint16(1)
	for i, r := range ranges {
		headers[i] = CmapSubTableHeader{
			RangeStart:       r[0],
			RangeLength:      uint16(r[len(r)-1] - r[0] + 1),
			GlyphIdOffset:    nextGlyph,
			DataEntriesCount: uint16(len(r)),
			FormatType:       3,
		}
		nextGlyph += uint16(len(r))
	}

	offset := binary.Size(t) + binary.Size(headers)
	var data []uint16
	for i, r := range ranges {
		headers[i].DataOffset = uint32(offset)
		for _, id := range r {
			data = append(data, uint16(id-r[0]))
		}
		n := len(r)
		if n%2 != 0 {
			// keep every sub table 4 byte aligned
			data = append(data, 0)
			n++
		}
		offset += n * 2
	}
	t.Size = uint32(offset)
	return t, headers, data
}

// CmapSplitSubTable cuts sorted code points into runs spanning less than
// 65535 code points each.
func CmapSplitSubTable(ids []uint32) [][]uint32 {
	var out [][]uint32
	var cur []uint32
	for _, id := range ids {
		if len(cur) > 0 && id-cur[0] >= 65535 {
			out = append(out, cur)
			cur = nil
		}
		cur = append(cur, id)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
