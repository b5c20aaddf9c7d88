package lazy

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// entry is the memoized outcome of one build.
type entry struct {
	value any
	err   error
}

// Registry holds independently initialized cells keyed by name.
type Registry struct {
	entries sync.Map // string -> *entry
	sf      singleflight.Group
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Get returns the value stored under key, building it with build on first access.
// Reads after the first successful store never take a lock.
func Get[T any](r *Registry, key string, build func() (T, error)) (T, error) {
	// Fast path: already built
	if e, ok := r.entries.Load(key); ok {
		return unwrap[T](key, e.(*entry))
	}

	// Slow path: one builder per key, waiters share its result
	res, _, _ := r.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring singleflight slot
		if e, ok := r.entries.Load(key); ok {
			return e, nil
		}

		v, err := build()
		e := &entry{value: v, err: err}
		r.entries.Store(key, e)
		return e, nil
	})

	return unwrap[T](key, res.(*entry))
}

// Loaded reports whether key has been built, successfully or not.
func (r *Registry) Loaded(key string) bool {
	_, ok := r.entries.Load(key)
	return ok
}

// Len returns the number of built keys.
func (r *Registry) Len() int {
	n := 0
	r.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func unwrap[T any](key string, e *entry) (T, error) {
	if e.err != nil {
		var zero T
		return zero, e.err
	}
	v, ok := e.value.(T)
	if !ok {
		panic(fmt.Sprintf("lazy: key %q holds %T, not the requested type", key, e.value))
	}
	return v, nil
}
