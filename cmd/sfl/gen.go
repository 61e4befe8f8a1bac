package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/zhimiaox/sfl/gen"
)

func runGen(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	ttf := fs.String("ttf", "", "TrueType or OpenType font file")
	size := fs.Float64("size", 32, "point size")
	dpi := fs.Float64("dpi", 72, "resolution")
	hinting := fs.Bool("hinting", false, "use the hinting TrueType rasterizer")
	name := fs.String("name", "", "font name, defaults to the family name")
	ranges := fs.String("runes", "32-126", "code point ranges, e.g. 32-126,160-255,0x4e00")
	out := fs.String("o", "font", "output path without extension")
	fs.Parse(args)
	if *ttf == "" {
		return errors.New("-ttf is required")
	}

	runes, err := parseRanges(*ranges)
	if err != nil {
		return err
	}
	src, err := os.ReadFile(*ttf)
	if err != nil {
		return err
	}
	f, img, err := gen.Generate(src, runes, &gen.Options{
		Name:      *name,
		Size:      *size,
		DPI:       *dpi,
		Hinting:   *hinting,
		ImageName: filepath.Base(*out) + ".png",
	})
	if err != nil {
		return err
	}

	if err := writeFile(*out+".png", func(w *os.File) error { return png.Encode(w, img) }); err != nil {
		return err
	}
	if err := writeFile(*out+".sfl", func(w *os.File) error { return f.Encode(w) }); err != nil {
		return err
	}
	slog.Info("font written", "descriptor", *out+".sfl", "glyphs", len(f.Glyphs), "atlas", img.Bounds().Size())
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// parseRanges reads a comma separated list of code points and inclusive
// ranges up to unicode.MaxRune. Numbers accept the 0x prefix.
func parseRanges(s string) ([]rune, error) {
	var runes []rune
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		first, err := strconv.ParseInt(lo, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("bad rune range %q: %w", part, err)
		}
		last := first
		if isRange {
			if last, err = strconv.ParseInt(hi, 0, 32); err != nil {
				return nil, fmt.Errorf("bad rune range %q: %w", part, err)
			}
		}
		if first < 0 || last < first || last > unicode.MaxRune {
			return nil, fmt.Errorf("bad rune range %q", part)
		}
		for r := first; r <= last; r++ {
			runes = append(runes, rune(r))
		}
	}
	return runes, nil
}
