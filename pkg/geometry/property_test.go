package geometry

import (
	"testing"

	"pgregory.net/rapid"
)

func drawRect(t *rapid.T, vp Viewport) Rect {
	top := rapid.IntRange(-10, vp.Height+10).Draw(t, "top")
	left := rapid.IntRange(-10, vp.Width+10).Draw(t, "left")
	return Rect{
		Top:    top,
		Bottom: top + rapid.IntRange(0, 20).Draw(t, "height"),
		Left:   left,
		Right:  left + rapid.IntRange(0, 40).Draw(t, "width"),
	}
}

func drawViewport(t *rapid.T) Viewport {
	return Viewport{
		Width:  rapid.IntRange(10, 300).Draw(t, "vw"),
		Height: rapid.IntRange(5, 120).Draw(t, "vh"),
	}
}

func TestResolveOffsetsAreSelfConsistent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vp := drawViewport(t)
		target := drawRect(t, vp)
		pos := rapid.SampledFrom(All).Draw(t, "pos")
		anchor := rapid.SampledFrom(All).Draw(t, "anchor")

		s := Resolve(target, pos, anchor, vp)
		x, y := Point(target, pos)
		av, ah := anchor.Components()

		if av == VBottom {
			if !s.Bottom.Valid || s.Top.Valid || s.Bottom.Value != vp.Height-y {
				t.Fatalf("bottom anchor: style %v, point y %d", s, y)
			}
		} else if !s.Top.Valid || s.Bottom.Valid || s.Top.Value != y {
			t.Fatalf("top anchor: style %v, point y %d", s, y)
		}

		if ah == HRight {
			if !s.Right.Valid || s.Left.Valid || s.Right.Value != vp.Width-x {
				t.Fatalf("right anchor: style %v, point x %d", s, x)
			}
		} else if !s.Left.Valid || s.Right.Valid || s.Left.Value != x {
			t.Fatalf("left anchor: style %v, point x %d", s, x)
		}
	})
}

func TestPlaceTouchesAnchorPoint(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vp := drawViewport(t)
		target := drawRect(t, vp)
		pos := rapid.SampledFrom(All).Draw(t, "pos")
		anchor := rapid.SampledFrom(All).Draw(t, "anchor")
		w := rapid.IntRange(1, 40).Draw(t, "w")
		h := rapid.IntRange(1, 10).Draw(t, "h")

		box := Box(Resolve(target, pos, anchor, vp), w, h, vp)
		px, py := Point(target, pos)
		fromBottom, fromRight := anchorEdges(anchor)

		cornerX, cornerY := box.Left, box.Top
		if fromRight {
			cornerX = box.Right
		}
		if fromBottom {
			cornerY = box.Bottom
		}
		if cornerX != px || cornerY != py {
			t.Fatalf("anchor corner (%d,%d) != target point (%d,%d)", cornerX, cornerY, px, py)
		}
	})
}

func TestCorrectIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vp := drawViewport(t)
		target := drawRect(t, vp)
		pos := rapid.SampledFrom(All).Draw(t, "pos")
		w := rapid.IntRange(1, vp.Width).Draw(t, "w")
		h := rapid.IntRange(1, vp.Height).Draw(t, "h")

		s := Resolve(target, pos, Unset, vp)
		box := Box(s, w, h, vp)

		once := Correct(s, box, vp, vp.Width)
		if twice := Correct(once, box, vp, vp.Width); twice != once {
			t.Fatalf("Correct not idempotent: %v then %v", once, twice)
		}

		fixed := Box(once, w, h, vp)
		if fixed.Left < 0 || fixed.Right > vp.Width || fixed.Top < 0 {
			t.Fatalf("corrected box %v still overflows %v", fixed, vp)
		}
		if again := Correct(once, fixed, vp, vp.Width); again != once {
			t.Fatalf("Correct changed a corrected style: %v then %v", once, again)
		}
	})
}

func TestCorrectWithMargin(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vp := Viewport{
			Width:  rapid.IntRange(20, 300).Draw(t, "vw"),
			Height: rapid.IntRange(5, 120).Draw(t, "vh"),
		}
		target := drawRect(t, vp)
		pos := rapid.SampledFrom(All).Draw(t, "pos")
		anchor := rapid.SampledFrom(All).Draw(t, "anchor")
		m := Margin{
			Top:    rapid.IntRange(0, 8).Draw(t, "mt"),
			Right:  rapid.IntRange(0, 8).Draw(t, "mr"),
			Bottom: rapid.IntRange(0, 8).Draw(t, "mb"),
			Left:   rapid.IntRange(0, 8).Draw(t, "ml"),
		}
		w := rapid.IntRange(1, vp.Width-16).Draw(t, "w")
		h := rapid.IntRange(1, vp.Height).Draw(t, "h")

		s := Resolve(target, pos, anchor, vp)
		s.Margin = m
		once := Correct(s, Box(s, w, h, vp), vp, vp.Width)
		fixed := Box(once, w, h, vp)

		if again := Correct(once, fixed, vp, vp.Width); again != once {
			t.Fatalf("Correct changed a corrected style: %v then %v", once, again)
		}
		if once.Margin != m {
			t.Fatalf("Correct touched the margin: %v", once.Margin)
		}
		if fixed.Left < 0 || fixed.Top < 0 {
			t.Fatalf("corrected box %v crosses the left or top edge", fixed)
		}
		// A box pinned to the right edge keeps its left margin and overhangs
		// by exactly that much.
		if once.Right == At(0) && once.Left == At(vp.Width-w) && fixed.Right != vp.Width+m.Left {
			t.Fatalf("pinned box %v, want right edge %d", fixed, vp.Width+m.Left)
		}
	})
}
