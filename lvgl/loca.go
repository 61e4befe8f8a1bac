package lvgl

// LocaTable precedes the glyph offsets, which are written as Offset32.
type LocaTable struct {
	Size       uint32  // record size, including the offsets
	Label      [4]byte // "loca"
	EntryCount uint32
}

func NewLocaTable(glyphs int) *LocaTable {
	return &LocaTable{
		Size:       12,
		Label:      [4]byte{'l', 'o', 'c', 'a'},
		EntryCount: uint32(glyphs + 1),
	}
}
