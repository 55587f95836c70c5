package flow

import "github.com/matzehuels/dynhelp/pkg/geometry"

// Targets reports measurable target bounds. *target.Registry implements it.
type Targets interface {
	Bounds(targetID string) (geometry.Rect, bool)
}

// Visibility breaks an item's visibility into its terms.
type Visibility struct {
	Known            bool
	SystemEnabled    bool
	FlowEnabled      bool
	FlowVisible      bool
	ItemEnabled      bool
	ItemVisible      bool
	Active           bool
	TargetMeasurable bool
	Bounds           geometry.Rect
}

// Visible folds every term.
func (v Visibility) Visible() bool {
	return v.Known && v.SystemEnabled &&
		v.FlowEnabled && v.FlowVisible &&
		v.ItemEnabled && v.ItemVisible &&
		v.Active && v.TargetMeasurable
}

// Reason names the first failing term, or "visible".
func (v Visibility) Reason() string {
	switch {
	case !v.Known:
		return "unknown item"
	case !v.SystemEnabled:
		return "help disabled"
	case !v.FlowEnabled:
		return "flow disabled"
	case !v.FlowVisible:
		return "flow hidden"
	case !v.ItemEnabled:
		return "item disabled"
	case !v.ItemVisible:
		return "item hidden"
	case !v.Active:
		return "not the active item"
	case !v.TargetMeasurable:
		return "target missing or not laid out"
	}
	return "visible"
}

// Explain evaluates every visibility term for itemID. A nil state or nil
// targets yields an invisible result rather than an error.
func Explain(s *State, itemID string, targets Targets) Visibility {
	f, it, ok := s.Lookup(itemID)
	if !ok {
		return Visibility{}
	}
	v := Visibility{
		Known:         true,
		SystemEnabled: s.SystemEnabled(),
		FlowEnabled:   f.Enabled,
		FlowVisible:   f.Visible,
		ItemEnabled:   it.Enabled,
		ItemVisible:   it.Visible,
		Active:        f.ActiveItem() == it.ID,
	}
	if targets != nil {
		v.Bounds, v.TargetMeasurable = targets.Bounds(it.Config.Target)
	}
	return v
}

// EffectiveVisible reports whether itemID should be on screen.
func EffectiveVisible(s *State, itemID string, targets Targets) bool {
	return Explain(s, itemID, targets).Visible()
}

// VisibleItems returns every effectively visible item in flow order, at most
// one per flow.
func VisibleItems(s *State, targets Targets) []Item {
	var out []Item
	for _, it := range s.ActiveItems() {
		if EffectiveVisible(s, it.ID, targets) {
			out = append(out, it)
		}
	}
	return out
}

// LaidOut reports every target as measurable. Tools that inspect tour state
// without a screen pass it to Explain, so the result reflects state alone.
var LaidOut Targets = laidOut{}

type laidOut struct{}

func (laidOut) Bounds(string) (geometry.Rect, bool) { return geometry.RectAt(0, 0, 1, 1), true }
