package sfl_test

import (
	_ "embed"
	"fmt"

	"github.com/zhimiaox/sfl"
)

//go:embed testdata/iosevka.sfl
var iosevka string

func ExampleLoad() {
	f, err := sfl.Load("testdata/iosevka.sfl")
	if err != nil {
		panic(err)
	}
	fmt.Println(f)
	// Output: Font: { name: Iosevka, image_path: "testdata/iosevka.png", line_height: 56, size: 32, glyphs: 191 }
}

func ExampleLoadString() {
	f, err := sfl.LoadString(iosevka, "examples/fonts/iosevka.png")
	if err != nil {
		panic(err)
	}
	g, _ := f.Glyph('A')
	fmt.Println(f.ImagePath, g.X, g.Y, g.XAdvance)
	// Output: examples/fonts/iosevka.png 77 168 22
}
