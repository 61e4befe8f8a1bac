package face

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/zhimiaox/sfl"
)

// 'A' is a solid 4x4 block, 'H' is empty, 'Z' lies outside the atlas.
const descriptor = "Tiny\n8 10\ntiny.png\n3\n" +
	"65 0 0 4 4 1 2 5\n" +
	"72 4 0 4 4 0 3 5\n" +
	"90 40 0 4 4 0 0 5\n"

func newFace(t *testing.T, opts *Options) *Face {
	t.Helper()
	f, err := sfl.LoadString(descriptor, "tiny.png")
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}
	face, err := New(f, img, opts)
	if err != nil {
		t.Fatal(err)
	}
	return face
}

func TestDraw(t *testing.T) {
	face := newFace(t, &Options{Ascent: 8})
	dst := image.NewRGBA(image.Rect(0, 0, 20, 10))
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(0, 8),
	}
	d.DrawString("AA")

	for _, tt := range []struct {
		x, y int
		want uint8
	}{
		{1, 2, 255}, {4, 5, 255}, {0, 2, 0}, {1, 6, 0}, {6, 2, 255}, {10, 2, 0},
	} {
		if got := dst.RGBAAt(tt.x, tt.y).A; got != tt.want {
			t.Errorf("alpha at (%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
	if d.Dot.X != fixed.I(10) {
		t.Errorf("dot advanced to %v", d.Dot.X)
	}
}

func TestFallback(t *testing.T) {
	face := newFace(t, nil)
	if _, ok := face.GlyphAdvance('Z'); ok {
		t.Error("out of atlas glyph should be dropped")
	}
	if _, ok := face.GlyphAdvance('q'); ok {
		t.Error("missing rune with missing '?' should fail")
	}

	face = newFace(t, &Options{Fallback: 'A'})
	if adv, ok := face.GlyphAdvance('q'); !ok || adv != fixed.I(5) {
		t.Errorf("fallback advance %v, %v", adv, ok)
	}
	if got := font.MeasureString(face, "qA"); got != fixed.I(10) {
		t.Errorf("MeasureString = %v", got)
	}

	face = newFace(t, &Options{Fallback: -1})
	if _, ok := face.GlyphAdvance('q'); ok {
		t.Error("disabled fallback resolved a glyph")
	}
}

func TestMetrics(t *testing.T) {
	face := newFace(t, nil)
	want := font.Metrics{
		Height:     fixed.I(10),
		Ascent:     fixed.I(8),
		Descent:    fixed.I(2),
		CapHeight:  fixed.I(5),
		CaretSlope: image.Pt(0, 1),
	}
	if d := cmp.Diff(want, face.Metrics()); d != "" {
		t.Errorf("metrics (-want +got):\n%s", d)
	}

	b, adv, ok := face.GlyphBounds('A')
	if !ok || adv != fixed.I(5) {
		t.Fatalf("GlyphBounds('A') = %v, %v", adv, ok)
	}
	wantB := fixed.Rectangle26_6{Min: fixed.P(1, -6), Max: fixed.P(5, -2)}
	if b != wantB {
		t.Errorf("bounds %v, want %v", b, wantB)
	}
	if face.Kern('A', 'H') != 0 {
		t.Error("unexpected kerning")
	}
}

func TestLuminance(t *testing.T) {
	f, err := sfl.LoadString(descriptor, "tiny.png")
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewGray(image.Rect(0, 0, 8, 4))
	img.SetGray(1, 1, color.Gray{Y: 200})
	face, err := New(f, img, &Options{Luminance: true})
	if err != nil {
		t.Fatal(err)
	}
	if a := face.mask.AlphaAt(1, 1).A; a != 200 {
		t.Errorf("coverage at (1,1) = %d", a)
	}
	if a := face.mask.AlphaAt(0, 0).A; a != 0 {
		t.Errorf("coverage at (0,0) = %d", a)
	}

	if _, err := New(nil, img, nil); err == nil {
		t.Error("expected error for nil font")
	}
}
