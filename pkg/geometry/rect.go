package geometry

import "fmt"

// Rect is a bounding box in cell coordinates. Right and Bottom are
// exclusive, so a one-cell box at the origin is {0, 1, 0, 1}.
type Rect struct {
	Top    int `json:"top" toml:"top" yaml:"top"`
	Bottom int `json:"bottom" toml:"bottom" yaml:"bottom"`
	Left   int `json:"left" toml:"left" yaml:"left"`
	Right  int `json:"right" toml:"right" yaml:"right"`
}

// Width returns the horizontal extent.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the vertical extent.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Measurable reports whether the box can anchor an overlay. A box whose top
// equals its bottom belongs to an element that is not laid out (hidden or
// collapsed), and items attached to it render nothing.
func (r Rect) Measurable() bool {
	return r.Top != r.Bottom
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

func (r Rect) String() string {
	return fmt.Sprintf("{top:%d bottom:%d left:%d right:%d}", r.Top, r.Bottom, r.Left, r.Right)
}

// RectAt builds a Rect from a top-left corner and a size.
func RectAt(x, y, w, h int) Rect {
	return Rect{Top: y, Bottom: y + h, Left: x, Right: x + w}
}

// Viewport is the size of the visible screen in cells.
type Viewport struct {
	Width  int
	Height int
}

func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d", v.Width, v.Height)
}

// Empty reports whether the viewport has not been sized yet.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}
