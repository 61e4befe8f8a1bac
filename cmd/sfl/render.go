package main

import (
	"errors"
	"flag"
	"image"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/zhimiaox/sfl"
	"github.com/zhimiaox/sfl/atlas"
	"github.com/zhimiaox/sfl/face"
)

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	fontPath := fs.String("font", "", "descriptor to render with")
	text := fs.String("text", "The quick brown fox", "text to draw, \\n separates lines")
	out := fs.String("o", "out.png", "output PNG")
	ascent := fs.Int("ascent", 0, "baseline distance from the line top, 0 for 4/5 of the line height")
	luminance := fs.Bool("luminance", false, "take coverage from brightness instead of alpha")
	fs.Parse(args)
	if *fontPath == "" {
		return errors.New("-font is required")
	}

	f, err := sfl.Load(*fontPath)
	if err != nil {
		return err
	}
	img, err := atlas.Open(f)
	if err != nil {
		return err
	}
	fc, err := face.New(f, img, &face.Options{Ascent: *ascent, Luminance: *luminance})
	if err != nil {
		return err
	}
	dst := render(fc, strings.Split(strings.ReplaceAll(*text, `\n`, "\n"), "\n"))

	w, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := png.Encode(w, dst); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// render draws lines black on white with a margin of half a line.
func render(fc font.Face, lines []string) *image.RGBA {
	m := fc.Metrics()
	lineHeight := m.Height.Ceil()
	margin := lineHeight / 2
	width := 0
	for _, l := range lines {
		width = max(width, font.MeasureString(fc, l).Ceil())
	}

	dst := image.NewRGBA(image.Rect(0, 0, width+2*margin, len(lines)*lineHeight+2*margin))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	d := &font.Drawer{Dst: dst, Src: image.Black, Face: fc}
	for i, l := range lines {
		d.Dot = fixed.P(margin, margin+i*lineHeight+m.Ascent.Ceil())
		d.DrawString(l)
	}
	return dst
}
