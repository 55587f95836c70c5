package help

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/matzehuels/dynhelp/pkg/classes"
	"github.com/matzehuels/dynhelp/pkg/flow"
	"github.com/matzehuels/dynhelp/pkg/geometry"
)

// RenderedItem is one help item placed on screen.
type RenderedItem struct {
	ItemID   string
	FlowID   string
	TargetID string
	DOMID    string

	// Classes are the classification hooks of the item's root, in order.
	Classes classes.Set

	Style geometry.Style // corrected placement
	Box   geometry.Rect  // cells the item occupies
	View  string         // styled content, Box.Width() x Box.Height() cells
}

// itemRenderer turns item content into styled text.
type itemRenderer struct {
	theme     Theme
	catalog   Catalog
	md        *glamour.TermRenderer
	wrapWidth int // plain text wraps, markdown word-wraps, at this width
}

// classesFor lists the root hooks of an item.
func classesFor(it flow.Item) classes.Set {
	set := classes.Set{classes.HelpItem}
	if it.Config.DOMID != "" {
		set = set.Add(classes.HelpItemCustom)
	}
	return set
}

func (r *itemRenderer) render(it flow.Item) string {
	var parts []string
	if it.Content.Title != "" {
		parts = append(parts, lipgloss.NewStyle().Bold(true).Render(r.catalog.Translate(it.Content.Title)))
	}
	parts = append(parts, r.theme.Style(classes.HelpItemContent).Render(r.body(it.Content)))

	dismissers := lipgloss.JoinHorizontal(lipgloss.Top,
		r.theme.Style(classes.PopupSkip).Render(r.catalog.Translate(LabelSkip)),
		"  ",
		r.theme.Style(classes.DontShow).Render(r.catalog.Translate(LabelDontShow)),
		"  ",
		r.catalog.Translate(LabelDismiss),
	)
	parts = append(parts, r.theme.Style(classes.PopupDismissers).Render(dismissers))

	return r.theme.itemStyle(it.Config.DOMID).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (r *itemRenderer) body(c flow.Content) string {
	text := r.catalog.Translate(c.Body)
	if !c.Markdown {
		return ansi.Wordwrap(text, r.wrapWidth, "")
	}
	if r.md == nil {
		md, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(r.wrapWidth),
		)
		if err != nil {
			return text
		}
		r.md = md
	}
	out, err := r.md.Render(text)
	if err != nil {
		return text
	}
	// glamour pads with blank lines on both ends
	return strings.Trim(out, "\n")
}
