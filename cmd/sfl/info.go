package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/unicode/runenames"

	"github.com/zhimiaox/sfl"
	"github.com/zhimiaox/sfl/atlas"
)

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	glyphs := fs.Bool("glyphs", false, "list every glyph")
	check := fs.Bool("check", false, "decode the atlas and check glyph rectangles")
	fs.Parse(args)
	if fs.NArg() == 0 {
		return errors.New("no descriptor given")
	}

	for _, path := range fs.Args() {
		f, err := sfl.Load(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Println(f)
		if *check {
			if _, err := atlas.Open(f); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fmt.Println("atlas ok")
		}
		if *glyphs {
			printGlyphs(os.Stdout, f)
		}
	}
	return nil
}

func printGlyphs(w io.Writer, f *sfl.Font) {
	for _, id := range f.SortedIDs() {
		g := f.Glyphs[id]
		name := runenames.Name(rune(id))
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(w, "U+%04X %-32s rect=(%d,%d %dx%d) offset=(%d,%d) advance=%d\n",
			id, name, g.X, g.Y, g.Width, g.Height, g.XOffset, g.YOffset, g.XAdvance)
	}
}
