// Package lazy provides compute-once cells used by the table store.
//
// Two shapes are offered:
//
//   - Value: a single-assignment cell embedded in a struct. The first Get runs the
//     initializer, every later Get returns the stored result without locking.
//   - Registry: a keyed set of cells created on demand. Distinct keys initialize
//     independently; concurrent first access to the same key runs the initializer once
//     (singleflight) and every caller observes the same result.
//
// Errors are memoized like values: a failed initialization is never retried, because the
// underlying dataset is immutable for the lifetime of a run.
//
// # Usage
//
//	reg := lazy.NewRegistry()
//	tbl, err := lazy.Get(reg, "AvatarConfig", func() (*Table, error) {
//	    return load("AvatarConfig")
//	})
package lazy
