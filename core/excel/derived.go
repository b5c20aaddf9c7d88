package excel

import (
	"datamine/core/textmap"
	"datamine/core/utils"

	"go.uber.org/zap"
)

// UnionDef concatenates several tables holding the same kind of row, such as the
// per-mode copies of one concept. On a key collision the first source wins.
type UnionDef[K comparable, R any] struct {
	name    string
	sources []Source[K, R]
}

// union is the memoized result of a UnionDef.
type union[K comparable, R any] struct {
	table  *Table[K, R]
	origin map[*R]string
}

// NewUnion declares a union of sources.
func NewUnion[K comparable, R any](name string, sources ...Source[K, R]) *UnionDef[K, R] {
	return &UnionDef[K, R]{name: name, sources: sources}
}

// Name returns the union's name.
func (d *UnionDef[K, R]) Name() string {
	return d.name
}

// Sources returns the unioned sources in priority order.
func (d *UnionDef[K, R]) Sources() []Source[K, R] {
	return d.sources
}

func (d *UnionDef[K, R]) build(s *Store) (*union[K, R], error) {
	return cell(s, "union:"+d.name, func() (*union[K, R], error) {
		u := &union[K, R]{table: newTable[K, R](), origin: make(map[*R]string)}
		for _, src := range d.sources {
			t, err := src.Load(s)
			if err != nil {
				return nil, err
			}
			for k, r := range t.All() {
				if prev, ok := u.table.Get(k); ok {
					s.logger.Warn("Key present in several unioned tables, keeping first",
						zap.String("union", d.name),
						zap.String("key", utils.FormatKey(k)),
						zap.String("kept", u.origin[prev]),
						zap.String("dropped", src.Name()),
					)
					continue
				}
				_ = u.table.insert(k, r)
				u.origin[r] = src.Name()
			}
		}
		return u, nil
	})
}

// Load returns the unioned table.
func (d *UnionDef[K, R]) Load(s *Store) (*Table[K, R], error) {
	u, err := d.build(s)
	if err != nil {
		return nil, err
	}
	return u.table, nil
}

// Origin returns the name of the source table r was taken from, "" if r is not part of
// the union.
func (d *UnionDef[K, R]) Origin(s *Store, r *R) string {
	u, err := d.build(s)
	if err != nil {
		panic(asTableError(d.name, err))
	}
	return u.origin[r]
}

// GroupByDef partitions rows of one or more sources by a foreign-key field. Rows whose
// field is zero are left out.
type GroupByDef[G, K comparable, R any] struct {
	name    string
	field   func(*R) G
	sources []Source[K, R]
}

// NewGroupBy declares a group-by index.
func NewGroupBy[G, K comparable, R any](name string, field func(*R) G, sources ...Source[K, R]) *GroupByDef[G, K, R] {
	return &GroupByDef[G, K, R]{name: name, field: field, sources: sources}
}

// Name returns the index name.
func (d *GroupByDef[G, K, R]) Name() string {
	return d.name
}

// Load returns the index, building it on first access.
func (d *GroupByDef[G, K, R]) Load(s *Store) (*Index[G, R], error) {
	return cell(s, "groupby:"+d.name, func() (*Index[G, R], error) {
		idx := newIndex[G, R]()
		for _, src := range d.sources {
			t, err := src.Load(s)
			if err != nil {
				return nil, err
			}
			for r := range t.Rows() {
				g := d.field(r)
				if utils.IsZero(g) {
					continue
				}
				idx.add(g, r)
			}
		}
		s.logger.Debug("Built group index", zap.String("index", d.name), zap.Int("groups", idx.Len()), zap.Int("rows", idx.Size()))
		return idx, nil
	})
}

// Must is Load that panics with the source's *TableError.
func (d *GroupByDef[G, K, R]) Must(s *Store) *Index[G, R] {
	idx, err := d.Load(s)
	if err != nil {
		panic(asTableError(d.name, err))
	}
	return idx
}

// NameIndexDef maps the current display name of rows to the rows carrying it. Rows whose
// name resolves to "" are left out.
type NameIndexDef[K comparable, R any] struct {
	name    string
	text    func(*R) textmap.Hash
	sources []Source[K, R]
}

// NewNameIndex declares a name reverse index.
func NewNameIndex[K comparable, R any](name string, text func(*R) textmap.Hash, sources ...Source[K, R]) *NameIndexDef[K, R] {
	return &NameIndexDef[K, R]{name: name, text: text, sources: sources}
}

// Name returns the index name.
func (d *NameIndexDef[K, R]) Name() string {
	return d.name
}

// Load returns the index, building it on first access.
func (d *NameIndexDef[K, R]) Load(s *Store) (*Index[string, R], error) {
	return cell(s, "names:"+d.name, func() (*Index[string, R], error) {
		idx := newIndex[string, R]()
		for _, src := range d.sources {
			t, err := src.Load(s)
			if err != nil {
				return nil, err
			}
			for r := range t.Rows() {
				name := s.Text(d.text(r))
				if name == "" {
					continue
				}
				idx.add(name, r)
			}
		}
		return idx, nil
	})
}

// Must is Load that panics with the source's *TableError.
func (d *NameIndexDef[K, R]) Must(s *Store) *Index[string, R] {
	idx, err := d.Load(s)
	if err != nil {
		panic(asTableError(d.name, err))
	}
	return idx
}
