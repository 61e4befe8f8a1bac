package lvgl

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zhimiaox/sfl"
)

const descriptor = "Tiny\n8 10\ntiny.png\n2\n65 0 0 3 2 0 2 5\n66 4 0 2 2 1 6 4\n"

func tinyFont(t *testing.T) (*sfl.Font, *image.NRGBA) {
	t.Helper()
	f, err := sfl.LoadString(descriptor, "tiny.png")
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, 8, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})
	img.SetNRGBA(2, 1, color.NRGBA{255, 255, 255, 0x80})
	return f, img
}

func TestNewFont(t *testing.T) {
	f, img := tinyFont(t)
	bin, err := NewFont(f, img, 8)
	if err != nil {
		t.Fatal(err)
	}

	var sizes uint32
	off := 0
	for _, label := range []string{"head", "cmap", "loca", "glyf"} {
		size := binary.LittleEndian.Uint32(bin[off:])
		if got := string(bin[off+4 : off+8]); got != label {
			t.Fatalf("table at %d is %q, want %q", off, got, label)
		}
		sizes += size
		off += int(size)
	}
	if int(sizes) != len(bin) {
		t.Errorf("table sizes add up to %d, output is %d bytes", sizes, len(bin))
	}
	if got := binary.LittleEndian.Uint32(bin); got != 48 {
		t.Errorf("head size %d", got)
	}
}

func TestGlyfDataFromAtlas(t *testing.T) {
	f, img := tinyFont(t)
	d, err := GlyfDataFromAtlas(img, f.Glyphs[65], 8)
	if err != nil {
		t.Fatal(err)
	}
	want := GlyfDataInfo{AdvanceWidth: 80, BBoxX: 0, BBoxY: 4, BBoxWidth: 3, BBoxHeight: 2}
	if d := cmp.Diff(want, d.GlyfDataInfo); d != "" {
		t.Errorf("info (-want +got):\n%s", d)
	}
	// 3x2 pixels: f 0 0 / 0 0 8
	if got := d.Bitmap.Bytes(); !cmp.Equal(got, []byte{0xf0, 0x00, 0x08}) {
		t.Errorf("bitmap % x", got)
	}
}

func TestGlyfDataRange(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 300, 8))
	for _, g := range []sfl.Glyph{
		{ID: 65, Width: 256, Height: 4, XAdvance: 5},
		{ID: 66, Width: 4, Height: 4, XAdvance: 2048},
		{ID: 67, Width: 4, Height: 4, XOffset: 200, XAdvance: 5},
	} {
		if _, err := GlyfDataFromAtlas(img, g, 8); !errors.Is(err, errRangeCheck) {
			t.Errorf("glyph %d: got %v, want errRangeCheck", g.ID, err)
		}
	}

	f := &sfl.Font{
		Name:       "Wide",
		Size:       8,
		LineHeight: 10,
		Glyphs:     map[uint32]sfl.Glyph{65: {ID: 65, Width: 256, Height: 4, XAdvance: 5}},
	}
	if _, err := NewFont(f, img, 8); !errors.Is(err, errRangeCheck) {
		t.Errorf("NewFont: got %v, want errRangeCheck", err)
	}
}

func TestCmapSplitSubTable(t *testing.T) {
	got := CmapSplitSubTable([]uint32{32, 65, 70000, 70001})
	want := [][]uint32{{32, 65}, {70000, 70001}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	table, headers, data := NewCmapTable([]uint32{32, 65, 70000})
	if table.Tables != 2 || headers[1].GlyphIdOffset != 3 {
		t.Errorf("unexpected headers %+v", headers)
	}
	if d := cmp.Diff([]uint16{0, 33, 0, 0}, data); d != "" {
		t.Errorf("data (-want +got):\n%s", d)
	}
	if want := uint32(12 + 2*16 + 8); table.Size != want {
		t.Errorf("size %d, want %d", table.Size, want)
	}
}
