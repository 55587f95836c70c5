package target

import (
	"sync"

	"github.com/matzehuels/dynhelp/pkg/classes"
	"github.com/matzehuels/dynhelp/pkg/geometry"
)

// Element is a rendered host element. Bounds reports its current on-screen
// box; a box with Top == Bottom means the element is not laid out.
type Element interface {
	Bounds() geometry.Rect
}

// Classifier is implemented by elements that accept classification hooks.
type Classifier interface {
	AddClass(name string)
	RemoveClass(name string)
}

// ElementFunc adapts a function to Element.
type ElementFunc func() geometry.Rect

// Bounds calls f.
func (f ElementFunc) Bounds() geometry.Rect { return f() }

// Box is a mutable element hosts update from their own layout code.
// It is safe for concurrent use.
type Box struct {
	mu      sync.Mutex
	rect    geometry.Rect
	classes classes.Set
}

// NewBox returns a box with the given bounds.
func NewBox(r geometry.Rect) *Box {
	return &Box{rect: r}
}

// SetBounds moves the box.
func (b *Box) SetBounds(r geometry.Rect) {
	b.mu.Lock()
	b.rect = r
	b.mu.Unlock()
}

// Hide collapses the box so items pointing at it render nothing.
func (b *Box) Hide() {
	b.mu.Lock()
	b.rect.Bottom = b.rect.Top
	b.mu.Unlock()
}

// Bounds implements Element.
func (b *Box) Bounds() geometry.Rect {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rect
}

// AddClass implements Classifier.
func (b *Box) AddClass(name string) {
	b.mu.Lock()
	b.classes = b.classes.Add(name)
	b.mu.Unlock()
}

// RemoveClass implements Classifier.
func (b *Box) RemoveClass(name string) {
	b.mu.Lock()
	b.classes = b.classes.Remove(name)
	b.mu.Unlock()
}

// HasClass reports whether the class is currently applied.
func (b *Box) HasClass(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.classes.Has(name)
}

// Classes returns a copy of the applied classes.
func (b *Box) Classes() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.classes...)
}
