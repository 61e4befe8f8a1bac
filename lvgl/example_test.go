package lvgl

import (
	"fmt"

	"github.com/zhimiaox/sfl"
	"github.com/zhimiaox/sfl/atlas"
)

func ExampleNewFont() {
	f, err := sfl.Load("../testdata/tiny.sfl")
	if err != nil {
		panic(err)
	}
	img, err := atlas.Open(f)
	if err != nil {
		panic(err)
	}
	bin, err := NewFont(f, img, 0)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(bin[4:8]))
	// Output: head
}
