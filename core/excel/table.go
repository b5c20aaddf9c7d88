package excel

import (
	"fmt"
	"iter"

	"datamine/core/utils"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Table is an insertion-ordered map from primary key to row.
type Table[K comparable, R any] struct {
	rows *orderedmap.OrderedMap[K, *R]
}

func newTable[K comparable, R any]() *Table[K, R] {
	return &Table[K, R]{rows: orderedmap.New[K, *R]()}
}

// insert adds a row; keys must be unique.
func (t *Table[K, R]) insert(k K, r *R) error {
	if _, exists := t.rows.Get(k); exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, utils.FormatKey(k))
	}
	t.rows.Set(k, r)
	return nil
}

// Get returns the row stored under k.
func (t *Table[K, R]) Get(k K) (*R, bool) {
	return t.rows.Get(k)
}

// Has reports whether k is present.
func (t *Table[K, R]) Has(k K) bool {
	_, ok := t.rows.Get(k)
	return ok
}

// Len returns the number of rows.
func (t *Table[K, R]) Len() int {
	return t.rows.Len()
}

// All iterates rows in on-disk order.
func (t *Table[K, R]) All() iter.Seq2[K, *R] {
	return func(yield func(K, *R) bool) {
		for pair := t.rows.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Rows iterates rows in on-disk order without keys.
func (t *Table[K, R]) Rows() iter.Seq[*R] {
	return func(yield func(*R) bool) {
		for _, r := range t.All() {
			if !yield(r) {
				return
			}
		}
	}
}

// Keys returns the keys in on-disk order.
func (t *Table[K, R]) Keys() []K {
	keys := make([]K, 0, t.rows.Len())
	for k := range t.All() {
		keys = append(keys, k)
	}
	return keys
}

// Index is an ordered multimap from a grouping key to rows. Groups keep first-seen
// order and rows keep insertion order within a group.
type Index[G comparable, R any] struct {
	groups *orderedmap.OrderedMap[G, []*R]
	size   int
}

func newIndex[G comparable, R any]() *Index[G, R] {
	return &Index[G, R]{groups: orderedmap.New[G, []*R]()}
}

func (x *Index[G, R]) add(g G, r *R) {
	rows, _ := x.groups.Get(g)
	x.groups.Set(g, append(rows, r))
	x.size++
}

// Get returns the rows of group g, nil if the group is unknown.
func (x *Index[G, R]) Get(g G) []*R {
	rows, _ := x.groups.Get(g)
	return rows
}

// Has reports whether group g exists.
func (x *Index[G, R]) Has(g G) bool {
	_, ok := x.groups.Get(g)
	return ok
}

// Len returns the number of groups.
func (x *Index[G, R]) Len() int {
	return x.groups.Len()
}

// Size returns the number of rows across all groups.
func (x *Index[G, R]) Size() int {
	return x.size
}

// Groups iterates groups in first-seen order.
func (x *Index[G, R]) Groups() iter.Seq2[G, []*R] {
	return func(yield func(G, []*R) bool) {
		for pair := x.groups.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

type subKey[G, S comparable] struct {
	group G
	sub   S
}

// GroupTable is a main/sub table: an Index keyed by the main key with an exact
// (main, sub) lookup.
type GroupTable[G, S comparable, R any] struct {
	*Index[G, R]
	subs map[subKey[G, S]]*R
}

func newGroupTable[G, S comparable, R any]() *GroupTable[G, S, R] {
	return &GroupTable[G, S, R]{
		Index: newIndex[G, R](),
		subs:  make(map[subKey[G, S]]*R),
	}
}

func (t *GroupTable[G, S, R]) insert(g G, s S, r *R) error {
	k := subKey[G, S]{g, s}
	if _, exists := t.subs[k]; exists {
		return fmt.Errorf("%w: %s/%s", ErrDuplicateKey, utils.FormatKey(g), utils.FormatKey(s))
	}
	t.subs[k] = r
	t.add(g, r)
	return nil
}

// Sub returns the row stored under (g, s).
func (t *GroupTable[G, S, R]) Sub(g G, s S) (*R, bool) {
	r, ok := t.subs[subKey[G, S]{g, s}]
	return r, ok
}
