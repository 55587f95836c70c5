// Package geometry places a floating help overlay relative to a target
// element.
//
// Everything here is a pure function over cell coordinates. A target is
// described by its bounding [Rect]; a [Position] names the point of the
// target the overlay attaches to and an anchor (also a [Position]) names the
// corner of the overlay that is pinned there.
//
// # Resolution
//
// [Resolve] produces a [Style]: a pair of offsets measured from two viewport
// edges, one vertical (top or bottom) and one horizontal (left or right),
// the same way an absolutely positioned CSS box is described:
//
//	t := geometry.Rect{Top: 10, Bottom: 12, Left: 5, Right: 25}
//	vp := geometry.Viewport{Width: 80, Height: 24}
//	s := geometry.Resolve(t, geometry.BottomRight, geometry.DefaultAnchor(geometry.BottomRight), vp)
//	// s.Top = 12, s.Left = 25
//
// # Overflow correction
//
// Once the overlay has been rendered and its size is known, [Correct] pins it
// back inside the viewport when its left, right or top edge spills out.
// Bottom overflow is never corrected: an overlay hanging below the viewport
// belongs to a target that is itself off-screen.
//
// # Margins
//
// [DefaultMargin] reproduces the historical margin rule, which checks the
// position name for "left", then "right", then "bottom" and falls back to a
// bottom margin. Compound positions such as bottom-right therefore only get
// the margin of the first matching word.
package geometry
