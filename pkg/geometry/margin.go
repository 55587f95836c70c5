package geometry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/dynhelp/pkg/errors"
)

// DefaultMarginSize is the gap, in cells, between a target and its overlay.
const DefaultMarginSize = 4

// Margin is a CSS-style box margin in cells.
type Margin struct {
	Top, Right, Bottom, Left int
}

// IsZero reports whether all four sides are zero.
func (m Margin) IsZero() bool {
	return m == Margin{}
}

// String returns the four-value CSS shorthand, e.g. "0 0 0 4px".
func (m Margin) String() string {
	return strings.Join([]string{cssLength(m.Top), cssLength(m.Right), cssLength(m.Bottom), cssLength(m.Left)}, " ")
}

func cssLength(v int) string {
	if v == 0 {
		return "0"
	}
	return strconv.Itoa(v) + "px"
}

// DefaultMargin returns the margin used when an item does not set one.
func DefaultMargin(p Position) Margin {
	return DefaultMarginOfSize(p, DefaultMarginSize)
}

// DefaultMarginOfSize is DefaultMargin with a custom gap.
//
// The side is picked by looking for "left", then "right", then "bottom" in
// the position name and defaulting to a bottom margin. The precedence is
// kept as is: existing flows are laid out against it.
func DefaultMarginOfSize(p Position, size int) Margin {
	v, h := p.OrDefault(DefaultPosition).Components()
	switch {
	case h == HLeft:
		return Margin{Right: size}
	case h == HRight:
		return Margin{Left: size}
	case v == VBottom:
		return Margin{Top: size}
	default:
		return Margin{Bottom: size}
	}
}

// ParseMargin parses CSS margin shorthand with one to four values.
// Values may carry a "px" suffix; bare integers are accepted too.
func ParseMargin(s string) (Margin, error) {
	fields := strings.Fields(s)
	vals := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSuffix(strings.ToLower(f), "px"))
		if err != nil {
			return Margin{}, errors.Wrap(errors.ErrCodeInvalidMargin, err, "invalid margin value %q", f)
		}
		vals = append(vals, n)
	}

	switch len(vals) {
	case 1:
		return Margin{vals[0], vals[0], vals[0], vals[0]}, nil
	case 2:
		return Margin{vals[0], vals[1], vals[0], vals[1]}, nil
	case 3:
		return Margin{vals[0], vals[1], vals[2], vals[1]}, nil
	case 4:
		return Margin{vals[0], vals[1], vals[2], vals[3]}, nil
	}
	return Margin{}, errors.New(errors.ErrCodeInvalidMargin, "margin %q must have 1 to 4 values", s)
}

// GoString makes test failures readable.
func (m Margin) GoString() string {
	return fmt.Sprintf("geometry.Margin{%q}", m.String())
}
