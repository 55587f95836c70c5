package geometry_test

import (
	"fmt"

	"github.com/matzehuels/dynhelp/pkg/geometry"
)

func ExampleResolve() {
	target := geometry.Rect{Top: 100, Bottom: 120, Left: 50, Right: 150}
	vp := geometry.Viewport{Width: 800, Height: 600}

	s := geometry.Resolve(target, geometry.BottomRight, geometry.BottomRight, vp)
	s.Margin = geometry.DefaultMargin(geometry.BottomRight)
	fmt.Println(s)
	// Output:
	// {bottom:480 right:650 margin:0 0 0 4px}
}

func ExampleCorrect() {
	vp := geometry.Viewport{Width: 80, Height: 24}
	s := geometry.Style{Top: geometry.At(5), Left: geometry.At(-5)}

	box := geometry.Box(s, 20, 3, vp)
	fmt.Println(geometry.Correct(s, box, vp, vp.Width))
	// Output:
	// {top:5 left:0 right:60}
}

func ExampleDefaultAnchor() {
	for _, name := range []string{"top-left", "center-right"} {
		p := geometry.MustParsePosition(name)
		fmt.Printf("%s -> %s\n", p, geometry.DefaultAnchor(p))
	}
	// Output:
	// top-left -> bottom-right
	// centre-right -> top-left
}
