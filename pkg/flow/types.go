package flow

import (
	"github.com/matzehuels/dynhelp/pkg/geometry"
)

// NoActive is the active index of a flow with no current item, either
// because it has no items or because it ran past its last one.
const NoActive = -1

// Flow is an ordered sequence of items shown one at a time.
type Flow struct {
	ID      string
	Items   []string
	Enabled bool
	Visible bool
	Active  int
}

// ActiveItem returns the id of the active item, or "" when there is none.
func (f Flow) ActiveItem() string {
	if f.Active < 0 || f.Active >= len(f.Items) {
		return ""
	}
	return f.Items[f.Active]
}

// Complete reports whether the flow has no active item left.
func (f Flow) Complete() bool {
	return f.ActiveItem() == ""
}

// ItemConfig is the positioning configuration of one item.
type ItemConfig struct {
	Target          string
	Position        geometry.Position // Unset means geometry.DefaultPosition
	Anchor          geometry.Position // Unset means geometry.DefaultAnchor(Position)
	Margin          *geometry.Margin  // nil means geometry.DefaultMargin(Position)
	DOMID           string
	HighlightTarget bool
	Debug           bool
}

// DefaultItemConfig returns the configuration of an item pointing at target
// with every other option at its default.
func DefaultItemConfig(target string) ItemConfig {
	return ItemConfig{Target: target, HighlightTarget: true}
}

// ResolvedPosition returns the effective position.
func (c ItemConfig) ResolvedPosition() geometry.Position {
	return c.Position.OrDefault(geometry.DefaultPosition)
}

// ResolvedAnchor returns the effective anchor.
func (c ItemConfig) ResolvedAnchor() geometry.Position {
	return c.Anchor.OrDefault(geometry.DefaultAnchor(c.ResolvedPosition()))
}

// ResolvedMargin returns the effective margin for a default gap of size.
func (c ItemConfig) ResolvedMargin(size int) geometry.Margin {
	if c.Margin != nil {
		return *c.Margin
	}
	return geometry.DefaultMarginOfSize(c.ResolvedPosition(), size)
}

// Content is what an item displays.
type Content struct {
	Title    string
	Body     string
	Markdown bool
}

// Item is one step of a flow.
type Item struct {
	ID      string
	Flow    string
	Enabled bool
	Visible bool
	Config  ItemConfig
	Content Content
}

// NewItem returns an enabled, visible item with default configuration.
func NewItem(id, target string, content Content) Item {
	return Item{
		ID:      id,
		Enabled: true,
		Visible: true,
		Config:  DefaultItemConfig(target),
		Content: content,
	}
}
