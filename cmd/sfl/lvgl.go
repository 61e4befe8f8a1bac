package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/zhimiaox/sfl"
	"github.com/zhimiaox/sfl/atlas"
	"github.com/zhimiaox/sfl/lvgl"
)

func runLVGL(args []string) error {
	fs := flag.NewFlagSet("lvgl", flag.ExitOnError)
	fontPath := fs.String("font", "", "descriptor to convert")
	out := fs.String("o", "font.bin", "output file")
	ascent := fs.Int("ascent", 0, "baseline distance from the line top, 0 for 4/5 of the line height")
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
	bin, err := lvgl.NewFont(f, img, *ascent)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*out, bin, 0o644); err != nil {
		return err
	}
	slog.Info("lvgl font written", "path", *out, "bytes", len(bin))
	return nil
}
