// sfl is a command line tool for .sfl bitmap fonts.
//
//	sfl info [-glyphs] [-check] font.sfl...
//	sfl render -font font.sfl -text "Hello" -o hello.png
//	sfl gen -ttf font.ttf -size 32 -o out/font
//	sfl lvgl -font font.sfl -o font.bin
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

type command struct {
	name  string
	usage string
	run   func(args []string) error
}

var commands = []command{
	{"info", "print descriptor summaries", runInfo},
	{"render", "draw text with a font into a PNG", runRender},
	{"gen", "build a font from a TrueType/OpenType file", runGen},
	{"lvgl", "convert a font to the LVGL binary format", runLVGL},
}

var verbose = flag.Bool("v", false, "log debug messages")

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-v] <command> [flags]\n\ncommands:\n", os.Args[0])
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", c.name, c.usage)
	}
}

func main() {
	flag.Usage = usage
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}
	name, args := flag.Arg(0), flag.Args()[1:]
	for _, c := range commands {
		if c.name != name {
			continue
		}
		if err := c.run(args); err != nil {
			slog.Error(name+" failed", "err", err)
			os.Exit(1)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "unknown command %q\n", name)
	usage()
	os.Exit(2)
}
