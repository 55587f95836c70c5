package geometry

import (
	"strconv"
	"strings"

	"github.com/matzehuels/dynhelp/pkg/errors"
)

// ParseRect parses a box written as "top,bottom,left,right".
func ParseRect(s string) (Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Rect{}, errors.New(errors.ErrCodeInvalidInput, "rect %q must be top,bottom,left,right", s)
	}
	var vals [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Rect{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid rect value %q", p)
		}
		vals[i] = n
	}
	r := Rect{Top: vals[0], Bottom: vals[1], Left: vals[2], Right: vals[3]}
	if r.Bottom < r.Top || r.Right < r.Left {
		return Rect{}, errors.New(errors.ErrCodeInvalidInput, "rect %q is inverted", s)
	}
	return r, nil
}

// ParseSize parses "WxH" into a width and height. Both must be positive.
func ParseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "size %q must be WxH", s)
	}
	if w, err = strconv.Atoi(ws); err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid width in %q", s)
	}
	if h, err = strconv.Atoi(hs); err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid height in %q", s)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "size %q must be positive", s)
	}
	return w, h, nil
}

// ParseViewport is ParseSize returning a Viewport.
func ParseViewport(s string) (Viewport, error) {
	w, h, err := ParseSize(s)
	if err != nil {
		return Viewport{}, err
	}
	return Viewport{Width: w, Height: h}, nil
}
