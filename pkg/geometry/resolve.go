package geometry

// Point returns the cell on target t that position p refers to.
// Centre positions use the integer midpoint of the target's span.
func Point(t Rect, p Position) (x, y int) {
	v, h := p.OrDefault(DefaultPosition).Components()
	switch v {
	case VTop:
		y = t.Top
	case VCentre:
		y = (t.Top + t.Bottom) / 2
	case VBottom:
		y = t.Bottom
	}
	switch h {
	case HLeft:
		x = t.Left
	case HCentre:
		x = (t.Left + t.Right) / 2
	case HRight:
		x = t.Right
	}
	return x, y
}

// Resolve computes the placement of an overlay whose anchor corner is pinned
// to position pos of target t.
//
// Exactly one vertical and one horizontal offset are set. Offsets measured
// from the top or left edge equal the target point; offsets from the bottom
// or right edge are the viewport size minus the point. An Unset anchor is
// replaced by [DefaultAnchor] of pos.
func Resolve(t Rect, pos, anchor Position, vp Viewport) Style {
	pos = pos.OrDefault(DefaultPosition)
	anchor = anchor.OrDefault(DefaultAnchor(pos))

	x, y := Point(t, pos)
	fromBottom, fromRight := anchorEdges(anchor)

	var s Style
	if fromBottom {
		s.Bottom = At(vp.Height - y)
	} else {
		s.Top = At(y)
	}
	if fromRight {
		s.Right = At(vp.Width - x)
	} else {
		s.Left = At(x)
	}
	return s
}

// Correct pins an already rendered overlay back inside the viewport.
//
// box is the overlay's measured bounding box, vp the current viewport and
// initialWidth the viewport width captured before the overlay was first
// mounted. Rules, applied in order:
//   - left edge < 0: left = 0, right = vp.Width - width
//   - right edge > initialWidth: right = 0, left = initialWidth - width
//   - top edge < 0: top = 0, bottom = vp.Height - height
//
// Bottom overflow is left alone. Other offsets and the margin are untouched.
// Correct is idempotent for a given box.
func Correct(s Style, box Rect, vp Viewport, initialWidth int) Style {
	w, h := box.Width(), box.Height()
	if box.Left < 0 {
		s.Left = At(0)
		s.Right = At(vp.Width - w)
	}
	if box.Right > initialWidth {
		s.Right = At(0)
		s.Left = At(initialWidth - w)
	}
	if box.Top < 0 {
		s.Top = At(0)
		s.Bottom = At(vp.Height - h)
	}
	return s
}

// Overflows reports which viewport edges box crosses. It is used by debug
// output; Correct applies its own rules.
func Overflows(box Rect, vp Viewport) (top, right, bottom, left bool) {
	return box.Top < 0, box.Right > vp.Width, box.Bottom > vp.Height, box.Left < 0
}

// Request is everything one overlay placement depends on. It is comparable,
// so callers can cache a Layout keyed on it.
type Request struct {
	Target   Rect
	Position Position
	Anchor   Position
	Margin   Margin
	Viewport Viewport
	Width    int
	Height   int
}

// Layout resolves, margins and corrects a w×h overlay against its target.
// initialWidth is the viewport width when the overlay first mounted; pass
// r.Viewport.Width for a one-off placement.
func Layout(r Request, initialWidth int) (Style, Rect) {
	s := Resolve(r.Target, r.Position, r.Anchor, r.Viewport)
	s.Margin = r.Margin
	box := Box(s, r.Width, r.Height, r.Viewport)

	s = Correct(s, box, r.Viewport, initialWidth)
	return s, Box(s, r.Width, r.Height, r.Viewport)
}
