package view

import (
	"iter"

	"datamine/core/excel"
	"datamine/core/utils"

	"go.uber.org/zap"
)

// Get returns the view of the row stored under key, nil if there is none.
func Get[K comparable, R, V any](s *excel.Store, src excel.Source[K, R], key K, build func(*excel.Store, *R) *V) *V {
	r, ok := excel.MustLoad(s, src).Get(key)
	if !ok {
		return nil
	}
	return build(s, r)
}

// List iterates the views of every row of src in on-disk order.
func List[K comparable, R, V any](s *excel.Store, src excel.Source[K, R], build func(*excel.Store, *R) *V) iter.Seq[*V] {
	return func(yield func(*V) bool) {
		for r := range excel.MustLoad(s, src).Rows() {
			if !yield(build(s, r)) {
				return
			}
		}
	}
}

// ListGroups iterates the views of every row of a main/sub table, group by group.
func ListGroups[G, S comparable, R excel.GroupRow[G, S], V any](s *excel.Store, def *excel.GroupDef[G, S, R], build func(*excel.Store, *R) *V) iter.Seq[*V] {
	return func(yield func(*V) bool) {
		for _, rows := range def.Must(s).Groups() {
			for _, r := range rows {
				if !yield(build(s, r)) {
					return
				}
			}
		}
	}
}

// Group returns the views of group key of a main/sub table, empty if the group is
// unknown.
func Group[G, S comparable, R excel.GroupRow[G, S], V any](s *excel.Store, def *excel.GroupDef[G, S, R], key G, build func(*excel.Store, *R) *V) []*V {
	return Map(s, def.Must(s).Get(key), build)
}

// Map builds the views of rows. It never returns nil.
func Map[R, V any](s *excel.Store, rows []*R, build func(*excel.Store, *R) *V) []*V {
	out := make([]*V, 0, len(rows))
	for _, r := range rows {
		out = append(out, build(s, r))
	}
	return out
}

// Ref resolves the foreign key held by field, named "<Table>.<Field>".
func Ref[K comparable, R, V any](s *excel.Store, src excel.Source[K, R], field string, key K, build func(*excel.Store, *R) *V) *V {
	if utils.IsZero(key) {
		return nil
	}
	r, ok := excel.MustLoad(s, src).Get(key)
	if !ok {
		dangling(s, src.Name(), field, utils.FormatKey(key))
		return nil
	}
	return build(s, r)
}

// Refs resolves a list of foreign keys. Zero keys and allow-listed dangling keys are
// dropped.
func Refs[K comparable, R, V any](s *excel.Store, src excel.Source[K, R], field string, keys []K, build func(*excel.Store, *R) *V) []*V {
	out := make([]*V, 0, len(keys))
	for _, k := range keys {
		if v := Ref(s, src, field, k, build); v != nil {
			out = append(out, v)
		}
	}
	return out
}

// GroupRef resolves a foreign key into a main/sub table. The key must name an existing
// group.
func GroupRef[G, S comparable, R excel.GroupRow[G, S], V any](s *excel.Store, def *excel.GroupDef[G, S, R], field string, key G, build func(*excel.Store, *R) *V) []*V {
	if utils.IsZero(key) {
		return nil
	}
	t := def.Must(s)
	if !t.Has(key) {
		dangling(s, def.Name(), field, utils.FormatKey(key))
		return nil
	}
	return Map(s, t.Get(key), build)
}

// SubRef resolves a (group, sub) foreign key into a main/sub table.
func SubRef[G, S comparable, R excel.GroupRow[G, S], V any](s *excel.Store, def *excel.GroupDef[G, S, R], field string, key G, sub S, build func(*excel.Store, *R) *V) *V {
	if utils.IsZero(key) {
		return nil
	}
	r, ok := def.Must(s).Sub(key, sub)
	if !ok {
		dangling(s, def.Name(), field, utils.FormatKey(key)+"/"+utils.FormatKey(sub))
		return nil
	}
	return build(s, r)
}

func dangling(s *excel.Store, table, field, key string) {
	if s.AllowsDangling(field, key) {
		s.Logger().Debug("Ignoring allow-listed dangling reference",
			zap.String("field", field),
			zap.String("table", table),
			zap.String("key", key),
			zap.String("version", s.Version()),
		)
		return
	}
	panic(&excel.ReferenceError{Table: table, Field: field, Key: key})
}
