package help

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/dynhelp/pkg/geometry"
)

// Overlay draws items on top of base, clipped to the viewport. base is
// padded to the viewport so items can float past the end of short frames.
// Later items are drawn over earlier ones.
func Overlay(base string, items []RenderedItem, vp geometry.Viewport) string {
	if len(items) == 0 || vp.Empty() {
		return base
	}
	out := fitCanvas(base, vp.Width, vp.Height)
	for _, it := range items {
		out = overlayAt(out, it.View, it.Box.Left, it.Box.Top, vp.Width, vp.Height)
	}
	return out
}

// overlayAt composites overlay onto base with its top-left cell at (x, y).
// Both are treated as line grids measured in terminal cells.
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitLines(base)
	overlayLines := splitLines(overlay)
	overlayWidth := maxLineWidth(overlayLines)

	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		line = padRight(line, overlayWidth)
		col := x
		if col < 0 {
			line = ansi.TruncateLeft(line, -col, "")
			col = 0
		}
		if room := width - col; room <= 0 {
			continue
		} else if ansi.StringWidth(line) > room {
			line = ansi.Truncate(line, room, "")
		}

		canvas := padRight(baseLines[row], width)
		left := ansi.Truncate(canvas, col, "")
		if w := ansi.StringWidth(left); w < col {
			left += strings.Repeat(" ", col-w)
		}
		right := ansi.TruncateLeft(canvas, col+ansi.StringWidth(line), "")
		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}

func fitCanvas(s string, width, height int) string {
	lines := splitLines(s)
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// splitLines splits s on newlines, returning at least one element.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

func maxLineWidth(lines []string) int {
	m := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > m {
			m = w
		}
	}
	return m
}

func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
