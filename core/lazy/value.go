package lazy

import (
	"sync"
	"sync/atomic"
)

// Value is a single-assignment cell. The zero value is ready to use and must not be
// copied after first use.
type Value[T any] struct {
	done atomic.Bool
	mu   sync.Mutex
	v    T
}

// Get returns the cell's value, running build on the first call only. If build panics the
// cell stays empty and the panic propagates to the caller.
func (c *Value[T]) Get(build func() T) T {
	if c.done.Load() {
		return c.v
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.done.Load() {
		c.v = build()
		c.done.Store(true)
	}
	return c.v
}

// Ready reports whether the cell has been assigned.
func (c *Value[T]) Ready() bool {
	return c.done.Load()
}
