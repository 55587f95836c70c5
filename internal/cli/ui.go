package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// out receives all user-facing output. Tests swap it for a buffer.
var out io.Writer = os.Stdout

// =============================================================================
// Palette
// =============================================================================

var (
	colorAccent = lipgloss.Color("36")  // teal, matches the overlay highlight
	colorOK     = lipgloss.Color("35")  // green
	colorWarn   = lipgloss.Color("220") // amber
	colorFail   = lipgloss.Color("167") // soft red
	colorLink   = lipgloss.Color("75")  // light blue
	colorText   = lipgloss.Color("255")
	colorLabel  = lipgloss.Color("245")
	colorMuted  = lipgloss.Color("240")
)

var (
	// StyleTitle renders headings such as flow names.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	// StyleHighlight marks the active item and other values worth a glance.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorAccent)

	StyleLink    = lipgloss.NewStyle().Foreground(colorLink).Underline(true)
	StyleDim     = lipgloss.NewStyle().Foreground(colorMuted)
	StyleValue   = lipgloss.NewStyle().Foreground(colorText)
	StyleSuccess = lipgloss.NewStyle().Foreground(colorOK)
	StyleWarning = lipgloss.NewStyle().Foreground(colorWarn)

	styleLabel   = lipgloss.NewStyle().Foreground(colorLabel).Width(12)
	styleCommand = lipgloss.NewStyle().Foreground(colorLink)
)

// statusKind selects the icon and colour of a status line.
type statusKind int

const (
	statusOK statusKind = iota
	statusFail
	statusWarn
	statusNote
)

func (k statusKind) icon() string {
	switch k {
	case statusOK:
		return StyleSuccess.Render("✓")
	case statusFail:
		return lipgloss.NewStyle().Foreground(colorFail).Render("✗")
	case statusWarn:
		return StyleWarning.Render("!")
	default:
		return lipgloss.NewStyle().Foreground(colorLabel).Render("›")
	}
}

func status(k statusKind, msg string) {
	if k == statusWarn {
		msg = StyleWarning.Render(msg)
	}
	fmt.Fprintln(out, k.icon()+" "+msg)
}

func printSuccess(format string, args ...any) { status(statusOK, fmt.Sprintf(format, args...)) }
func printError(format string, args ...any)   { status(statusFail, fmt.Sprintf(format, args...)) }
func printWarning(format string, args ...any) { status(statusWarn, fmt.Sprintf(format, args...)) }
func printInfo(format string, args ...any)    { status(statusNote, fmt.Sprintf(format, args...)) }

// printDetail prints an indented, dimmed line under a status line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(out, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func printFile(path string) {
	fmt.Fprintln(out, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

func printKeyValue(key, value string) {
	fmt.Fprintln(out, styleLabel.Render(key)+" "+StyleValue.Render(value))
}

// printStats prints a one-line tour summary, e.g. "2 flows · 5 items · 2 active".
func printStats(flows, items, active int) {
	parts := []string{
		plural(flows, "flow"),
		plural(items, "item"),
		fmt.Sprintf("%d active", active),
	}
	for i, p := range parts {
		parts[i] = StyleDim.Render(p)
	}
	fmt.Fprintln(out, "  "+strings.Join(parts, StyleDim.Render(" · ")))
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func printNextStep(description, cmd string) {
	fmt.Fprintln(out, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Fprintln(out)
}
