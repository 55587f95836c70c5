package help

import "maps"

// Labels used by the item chrome.
const (
	LabelDismiss  = "help.dismiss"
	LabelSkip     = "help.skip"
	LabelDontShow = "help.dont_show"
)

// Catalog maps translation keys to display strings.
type Catalog map[string]string

// DefaultCatalog returns the English labels for the item chrome.
func DefaultCatalog() Catalog {
	return Catalog{
		LabelDismiss:  "esc close",
		LabelSkip:     "s skip tour",
		LabelDontShow: "x don't show again",
	}
}

// Merge returns a copy of c overlaid with other.
func (c Catalog) Merge(other map[string]string) Catalog {
	out := maps.Clone(c)
	if out == nil {
		out = make(Catalog, len(other))
	}
	maps.Copy(out, other)
	return out
}

// Translate returns the string for key, or key itself when it is unknown.
func (c Catalog) Translate(key string) string {
	if v, ok := c[key]; ok {
		return v
	}
	return key
}
