// Package classes holds the classification hooks dynhelp attaches to
// elements. The strings are a stable contract: hosts key their own styling
// overrides on them, so they must not change.
package classes

const (
	// Target is applied to every registered target element.
	Target = "rdh-target"
	// TargetHighlight is applied while at least one visible item highlights the target.
	TargetHighlight = "rdh-target-highlight"

	// HelpItem is the outer box of a rendered help item.
	HelpItem = "rdh-help-item"
	// HelpItemCustom is added when the item carries its own DOM-style id.
	HelpItemCustom = "rdh-help-item-custom"
	// HelpItemContent wraps the item's content.
	HelpItemContent = "rdh-help-item-content"

	// PopupDismissers wraps the row of dismiss controls.
	PopupDismissers = "rdh-popup-dismissers"
	// DontShow is the "don't show me these" control that disables help.
	DontShow = "rdh-dont-show"
	// PopupSkip is the "skip" control that disables the current flow.
	PopupSkip = "rdh-popup-skip"
)

// Set is a small ordered set of class names.
type Set []string

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	for _, c := range s {
		if c == name {
			return true
		}
	}
	return false
}

// Add returns the set with name appended if it was missing.
func (s Set) Add(name string) Set {
	if s.Has(name) {
		return s
	}
	return append(s, name)
}

// Remove returns the set without name.
func (s Set) Remove(name string) Set {
	out := s[:0]
	for _, c := range s {
		if c != name {
			out = append(out, c)
		}
	}
	return out
}
