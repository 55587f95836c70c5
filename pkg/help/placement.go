package help

import "github.com/matzehuels/dynhelp/pkg/geometry"

// placement caches the corrected position of one mounted item.
type placement struct {
	initialWidth int // viewport width when the item first mounted
	req          geometry.Request
	valid        bool
	style        geometry.Style
	box          geometry.Rect
}

// update recomputes the placement when its request changed and reports
// whether it did.
func (p *placement) update(req geometry.Request) bool {
	if p.valid && p.req == req {
		return false
	}
	p.style, p.box = geometry.Layout(req, p.initialWidth)
	p.req = req
	p.valid = true
	return true
}
