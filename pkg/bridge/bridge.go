// Package bridge holds the one-way channels that keep the help renderer and
// the host renderer from re-rendering each other.
//
// Help wiring needs two flows of data: registration callbacks travel from the
// help subsystem to host elements, and the controller API travels from the
// help controller up to the host. Each direction gets its own [Channel], and
// neither side subscribes to the other. A reader picks up the latest value on
// its own next render, compares versions, and only acts on a change.
package bridge

import "sync"

// Channel is a single-value, versioned, write-many read-many cell.
// The zero value is ready to use and holds the zero T at version 0.
type Channel[T any] struct {
	mu      sync.RWMutex
	val     T
	version uint64
	set     bool
	same    func(a, b T) bool
}

// New returns a channel holding initial at version 0. same reports whether
// two values are interchangeable; when it returns true, Publish leaves the
// version alone. A nil same treats every publish as a change.
//
// The first Publish always advances the version, even when v is the same
// as initial: the initial value counts as never published, so a reader at
// version 0 is told about the first real value.
func New[T any](initial T, same func(a, b T) bool) *Channel[T] {
	return &Channel[T]{val: initial, same: same}
}

// Publish stores v and reports whether the version advanced.
func (c *Channel[T]) Publish(v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.set && c.same != nil && c.same(c.val, v) {
		return false
	}
	c.val = v
	c.set = true
	c.version++
	return true
}

// Load returns the current value and its version.
func (c *Channel[T]) Load() (T, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.val, c.version
}

// Since returns the current value and true when the version differs from
// seen. Readers keep the last version they acted on and pass it back.
func (c *Channel[T]) Since(seen uint64) (T, uint64, bool) {
	v, ver := c.Load()
	return v, ver, ver != seen
}
