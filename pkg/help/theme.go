package help

import (
	"maps"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/dynhelp/pkg/classes"
)

// =============================================================================
// Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")
	colorYellow = lipgloss.Color("220")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

// Theme maps classification hooks to lipgloss styles. Hosts override a
// class with [Theme.With] and style individual items by their DOM id with
// [Theme.WithID].
type Theme struct {
	classes map[string]lipgloss.Style
	ids     map[string]lipgloss.Style
}

// DefaultTheme returns the built-in look: a rounded cyan card with a dim
// dismisser row.
func DefaultTheme() Theme {
	return Theme{classes: map[string]lipgloss.Style{
		classes.HelpItem: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorCyan).
			Padding(0, 1),
		classes.HelpItemContent: lipgloss.NewStyle().MaxWidth(48),
		classes.PopupDismissers: lipgloss.NewStyle().Foreground(colorDim).MarginTop(1),
		classes.DontShow:        lipgloss.NewStyle().Foreground(colorGray),
		classes.PopupSkip:       lipgloss.NewStyle().Foreground(colorYellow),
	}}
}

// With returns a copy of t with class styled as s.
func (t Theme) With(class string, s lipgloss.Style) Theme {
	t.classes = maps.Clone(t.classes)
	if t.classes == nil {
		t.classes = make(map[string]lipgloss.Style)
	}
	t.classes[class] = s
	return t
}

// WithID returns a copy of t where the item with DOM id id is styled as s on
// top of the item style.
func (t Theme) WithID(id string, s lipgloss.Style) Theme {
	t.ids = maps.Clone(t.ids)
	if t.ids == nil {
		t.ids = make(map[string]lipgloss.Style)
	}
	t.ids[id] = s
	return t
}

// Style returns the style for class, or an empty style.
func (t Theme) Style(class string) lipgloss.Style {
	if s, ok := t.classes[class]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

func (t Theme) itemStyle(domID string) lipgloss.Style {
	base := t.Style(classes.HelpItem)
	if domID == "" {
		return base
	}
	if s, ok := t.ids[domID]; ok {
		return s.Inherit(base)
	}
	return base.Inherit(t.Style(classes.HelpItemCustom))
}
