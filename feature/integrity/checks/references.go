package checks

import (
	"fmt"

	"datamine/core/excel"
)

// Walker visits every entity of one kind and forces its references.
type Walker interface {
	// Kind names the entities walked.
	Kind() string
	// Keys returns the ids of every entity. It may panic with *excel.TableError.
	Keys(s *excel.Store) []uint32
	// Visit resolves the entity and all of its references. It may panic with
	// *excel.ReferenceError or *excel.TableError.
	Visit(s *excel.Store, id uint32)
}

// Finding is one entity whose references could not be resolved.
type Finding struct {
	Kind  string `json:"kind"`
	ID    uint32 `json:"id"`
	Table string `json:"table"`
	Field string `json:"field,omitempty"`
	Key   string `json:"key,omitempty"`
	Error string `json:"error"`
}

type funcWalker struct {
	kind  string
	keys  func(s *excel.Store) []uint32
	visit func(s *excel.Store, id uint32)
}

// Walk builds a Walker from functions.
func Walk(kind string, keys func(s *excel.Store) []uint32, visit func(s *excel.Store, id uint32)) Walker {
	return &funcWalker{kind: kind, keys: keys, visit: visit}
}

func (w *funcWalker) Kind() string                    { return w.kind }
func (w *funcWalker) Keys(s *excel.Store) []uint32    { return w.keys(s) }
func (w *funcWalker) Visit(s *excel.Store, id uint32) { w.visit(s, id) }

// CheckReferences visits every entity of w. Broken entities become findings; the walk
// continues past them. A table that cannot be loaded at all aborts the walk with an error.
func CheckReferences(s *excel.Store, w Walker) (findings []Finding, checked int, err error) {
	keys, err := keysOf(s, w)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %s: %w", w.Kind(), err)
	}
	for _, id := range keys {
		if err := visit(s, w, id); err != nil {
			findings = append(findings, finding(w.Kind(), id, err))
		}
		checked++
	}
	return findings, checked, nil
}

func keysOf(s *excel.Store, w Walker) (keys []uint32, err error) {
	defer excel.Recover(&err)
	return w.Keys(s), nil
}

func visit(s *excel.Store, w Walker, id uint32) (err error) {
	defer excel.Recover(&err)
	w.Visit(s, id)
	return nil
}

func finding(kind string, id uint32, err error) Finding {
	f := Finding{Kind: kind, ID: id, Error: err.Error()}
	switch e := err.(type) {
	case *excel.ReferenceError:
		f.Table, f.Field, f.Key = e.Table, e.Field, e.Key
	case *excel.TableError:
		f.Table = e.Table
	}
	return f
}
