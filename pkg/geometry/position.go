package geometry

import (
	"strings"

	"github.com/matzehuels/dynhelp/pkg/errors"
)

// Position is one of the eight corner/edge points of a rectangle.
//
// The zero value is Unset; callers substitute [DefaultPosition] for it.
type Position uint8

const (
	Unset Position = iota
	TopLeft
	TopRight
	BottomLeft
	BottomRight
	TopCentre
	BottomCentre
	CentreLeft
	CentreRight
)

// DefaultPosition is used when an item does not name a position.
const DefaultPosition = BottomRight

// Vertical is the vertical component of a position.
type Vertical uint8

const (
	VTop Vertical = iota
	VCentre
	VBottom
)

// Horizontal is the horizontal component of a position.
type Horizontal uint8

const (
	HLeft Horizontal = iota
	HCentre
	HRight
)

// All lists every valid position in declaration order.
var All = []Position{
	TopLeft, TopRight, BottomLeft, BottomRight,
	TopCentre, BottomCentre, CentreLeft, CentreRight,
}

// ParsePosition parses a wire-level position string.
//
// It accepts the canonical names plus the American "center" spelling, in any
// case and with surrounding whitespace. Twelve strings are recognised in
// total.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top-left":
		return TopLeft, nil
	case "top-right":
		return TopRight, nil
	case "bottom-left":
		return BottomLeft, nil
	case "bottom-right":
		return BottomRight, nil
	case "top-centre", "top-center":
		return TopCentre, nil
	case "bottom-centre", "bottom-center":
		return BottomCentre, nil
	case "centre-left", "center-left":
		return CentreLeft, nil
	case "centre-right", "center-right":
		return CentreRight, nil
	}
	return Unset, errors.New(errors.ErrCodeInvalidPosition, "unknown position %q", s)
}

// MustParsePosition is like ParsePosition but panics on error.
// It is meant for literals in tests and examples.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the canonical ("centre") spelling.
func (p Position) String() string {
	switch p {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	case TopCentre:
		return "top-centre"
	case BottomCentre:
		return "bottom-centre"
	case CentreLeft:
		return "centre-left"
	case CentreRight:
		return "centre-right"
	case Unset:
		return "unset"
	}
	return "invalid"
}

// IsValid reports whether p is one of the eight named positions.
func (p Position) IsValid() bool {
	return p >= TopLeft && p <= CentreRight
}

// OrDefault returns p, or def when p is Unset.
func (p Position) OrDefault(def Position) Position {
	if p == Unset {
		return def
	}
	return p
}

// Components splits p into its vertical and horizontal parts.
// Unset and invalid values behave like [DefaultPosition].
func (p Position) Components() (Vertical, Horizontal) {
	switch p {
	case TopLeft:
		return VTop, HLeft
	case TopRight:
		return VTop, HRight
	case BottomLeft:
		return VBottom, HLeft
	case BottomRight:
		return VBottom, HRight
	case TopCentre:
		return VTop, HCentre
	case BottomCentre:
		return VBottom, HCentre
	case CentreLeft:
		return VCentre, HLeft
	case CentreRight:
		return VCentre, HRight
	}
	return DefaultPosition.Components()
}

// DefaultAnchor returns the overlay corner pinned to position p when the
// caller supplies none: the corner opposite p, so the overlay grows away from
// the target. For centre positions the centred axis anchors on its top or
// left edge.
func DefaultAnchor(p Position) Position {
	switch p {
	case TopLeft:
		return BottomRight
	case TopRight:
		return BottomLeft
	case BottomLeft:
		return TopRight
	case BottomRight:
		return TopLeft
	case TopCentre:
		return BottomLeft
	case BottomCentre:
		return TopLeft
	case CentreLeft:
		return TopRight
	case CentreRight:
		return TopLeft
	}
	return DefaultAnchor(DefaultPosition)
}

// anchorEdges reduces an anchor to the CSS edges its offsets are measured
// from. A centred axis is measured from top or left.
func anchorEdges(anchor Position) (fromBottom, fromRight bool) {
	v, h := anchor.Components()
	return v == VBottom, h == HRight
}
