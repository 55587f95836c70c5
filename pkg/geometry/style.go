package geometry

import (
	"fmt"
	"strings"
)

// Offset is a distance from one viewport edge. Only offsets with Valid set
// take part in placement.
type Offset struct {
	Value int
	Valid bool
}

// At returns a valid offset of v cells.
func At(v int) Offset {
	return Offset{Value: v, Valid: true}
}

// Style is the resolved placement of an overlay: offsets from up to two
// vertical and two horizontal viewport edges, plus a margin.
type Style struct {
	Top    Offset
	Bottom Offset
	Left   Offset
	Right  Offset
	Margin Margin
}

func (s Style) String() string {
	var parts []string
	for _, e := range []struct {
		name string
		off  Offset
	}{{"top", s.Top}, {"bottom", s.Bottom}, {"left", s.Left}, {"right", s.Right}} {
		if e.off.Valid {
			parts = append(parts, fmt.Sprintf("%s:%d", e.name, e.off.Value))
		}
	}
	if !s.Margin.IsZero() {
		parts = append(parts, "margin:"+s.Margin.String())
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Place converts s into the top-left cell of a w×h overlay.
//
// Left and Top win over Right and Bottom when both are set, as in CSS. A
// margin on the pinned side pushes the overlay away from that edge.
func Place(s Style, w, h int, vp Viewport) (x, y int) {
	switch {
	case s.Left.Valid:
		x = s.Left.Value + s.Margin.Left
	case s.Right.Valid:
		x = vp.Width - s.Right.Value - s.Margin.Right - w
	default:
		x = s.Margin.Left
	}
	switch {
	case s.Top.Valid:
		y = s.Top.Value + s.Margin.Top
	case s.Bottom.Valid:
		y = vp.Height - s.Bottom.Value - s.Margin.Bottom - h
	default:
		y = s.Margin.Top
	}
	return x, y
}

// Box returns the bounding box a w×h overlay occupies under style s.
func Box(s Style, w, h int, vp Viewport) Rect {
	x, y := Place(s, w, h, vp)
	return RectAt(x, y, w, h)
}
