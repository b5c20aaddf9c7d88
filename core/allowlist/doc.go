// Package allowlist declares the finite set of foreign-key ids known to dangle in
// published dumps.
//
// Each entry names a field ("<Table>.<Field>"), the dangling id and the range of game
// versions that carry the gap. The view layer consults the list before treating an
// unresolved reference as fatal; anything not listed keeps failing fast.
package allowlist
