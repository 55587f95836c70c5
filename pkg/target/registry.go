package target

import (
	"context"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dynhelp/pkg/classes"
	"github.com/matzehuels/dynhelp/pkg/geometry"
	"github.com/matzehuels/dynhelp/pkg/observability"
)

// RefFunc is the registration callback handed to host elements. Calling it
// with an element registers or updates the target; calling it with nil
// unregisters it.
type RefFunc func(el Element)

// Target is a snapshot of one registry entry.
type Target struct {
	ID           string
	Element      Element
	Highlighters []string // sorted item ids
}

type entry struct {
	el           Element
	highlighters map[string]struct{}
}

func (e *entry) empty() bool {
	return e.el == nil && len(e.highlighters) == 0
}

// Registry is the application-wide target table. Only ref callbacks mutate
// the element side and only the help controller mutates highlighters.
// All methods are safe for concurrent use.
type Registry struct {
	mu      sync.Mutex
	targets map[string]*entry
	refs    map[string]RefFunc
	version uint64
	logger  *log.Logger
}

// NewRegistry creates an empty registry. A nil logger discards output.
func NewRegistry(logger *log.Logger) *Registry {
	return &Registry{
		targets: make(map[string]*entry),
		refs:    make(map[string]RefFunc),
		logger:  observability.Logger(logger).WithPrefix("targets"),
	}
}

// RegisterTargetItem returns the ref callback for id. Repeated calls return
// the same callback, so hosts can call it from every render.
func (r *Registry) RegisterTargetItem(id string) RefFunc {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ref, ok := r.refs[id]; ok {
		return ref
	}
	ref := func(el Element) {
		if el == nil {
			r.unregister(id)
			return
		}
		r.register(id, el)
	}
	r.refs[id] = ref
	return ref
}

func (r *Registry) register(id string, el Element) {
	r.mu.Lock()
	e, ok := r.targets[id]
	if !ok {
		e = &entry{highlighters: make(map[string]struct{})}
		r.targets[id] = e
	}
	first := e.el == nil
	if old := e.el; old != nil {
		stripClasses(old)
	}
	e.el = el
	if c, ok := el.(Classifier); ok {
		c.AddClass(classes.Target)
		if len(e.highlighters) > 0 {
			c.AddClass(classes.TargetHighlight)
		}
	}
	r.version++
	r.mu.Unlock()

	if first {
		r.logger.Debug("registered", "id", id)
		observability.Target().OnTargetRegistered(context.Background(), id, true)
	}
}

func (r *Registry) unregister(id string) {
	r.mu.Lock()
	e, ok := r.targets[id]
	if !ok || e.el == nil {
		r.mu.Unlock()
		return
	}
	stripClasses(e.el)
	e.el = nil
	if e.empty() {
		delete(r.targets, id)
	}
	r.version++
	r.mu.Unlock()

	r.logger.Debug("unregistered", "id", id)
	observability.Target().OnTargetRegistered(context.Background(), id, false)
}

func stripClasses(el Element) {
	if c, ok := el.(Classifier); ok {
		c.RemoveClass(classes.Target)
		c.RemoveClass(classes.TargetHighlight)
	}
}

// Lookup returns the target registered under id. Targets that only carry
// highlight markers but no element are reported as missing.
func (r *Registry) Lookup(id string) (Target, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.targets[id]
	if !ok || e.el == nil {
		return Target{}, false
	}
	return Target{ID: id, Element: e.el, Highlighters: sortedKeys(e.highlighters)}, true
}

// Bounds returns the current box of target id, and false when the target is
// unknown or not measurable.
func (r *Registry) Bounds(id string) (geometry.Rect, bool) {
	t, ok := r.Lookup(id)
	if !ok {
		return geometry.Rect{}, false
	}
	b := t.Element.Bounds()
	return b, b.Measurable()
}

// Highlight records that item is highlighting target. The first marker
// applies the highlight class.
func (r *Registry) Highlight(targetID, itemID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.targets[targetID]
	if !ok {
		e = &entry{highlighters: make(map[string]struct{})}
		r.targets[targetID] = e
	}
	if _, dup := e.highlighters[itemID]; dup {
		return
	}
	e.highlighters[itemID] = struct{}{}
	if len(e.highlighters) == 1 {
		if c, ok := e.el.(Classifier); ok {
			c.AddClass(classes.TargetHighlight)
		}
	}
	r.version++
}

// Unhighlight removes item's marker from target. The highlight class is
// removed only once no marker is left. Unknown pairs are ignored.
func (r *Registry) Unhighlight(targetID, itemID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.targets[targetID]
	if !ok {
		return
	}
	if _, had := e.highlighters[itemID]; !had {
		return
	}
	delete(e.highlighters, itemID)
	if len(e.highlighters) == 0 {
		if c, ok := e.el.(Classifier); ok {
			c.RemoveClass(classes.TargetHighlight)
		}
	}
	if e.empty() {
		delete(r.targets, targetID)
	}
	r.version++
}

// Highlighted reports whether any item currently highlights id. Hosts
// whose elements are not Classifiers use it to style targets.
func (r *Registry) Highlighted(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.targets[id]
	return ok && len(e.highlighters) > 0
}

// IDs returns the ids of registered targets in sorted order.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.targets))
	for id, e := range r.targets {
		if e.el != nil {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// Version increments every time the registry changes.
func (r *Registry) Version() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.version
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
