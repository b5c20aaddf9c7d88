package excel

// Source is anything that yields a point-keyed table: a declared table or a union.
type Source[K comparable, R any] interface {
	Name() string
	Load(s *Store) (*Table[K, R], error)
}

// TableDef declares a point-keyed table.
type TableDef[K comparable, R Row[K]] struct {
	name  string
	files []string
}

// NewTable declares a point-keyed table in DefaultCatalog. Fallbacks are older file names
// of the same table, tried in order when the primary file is absent.
func NewTable[K comparable, R Row[K]](name string, fallbacks ...string) *TableDef[K, R] {
	return DeclareTable[K, R](DefaultCatalog, name, fallbacks...)
}

// DeclareTable declares a point-keyed table in the given catalog.
func DeclareTable[K comparable, R Row[K]](c *Catalog, name string, fallbacks ...string) *TableDef[K, R] {
	d := &TableDef[K, R]{name: name, files: append([]string{name}, fallbacks...)}
	c.register(d)
	return d
}

// Name returns the logical table name.
func (d *TableDef[K, R]) Name() string {
	return d.name
}

// Files returns the candidate file names, primary first.
func (d *TableDef[K, R]) Files() []string {
	return d.files
}

// Load returns the table, reading it on first access.
func (d *TableDef[K, R]) Load(s *Store) (*Table[K, R], error) {
	return cell(s, "table:"+d.name, func() (*Table[K, R], error) {
		return load[*Table[K, R]](s, d.name, d.files, decodeTable[K, R], newTable[K, R], (*Table[K, R]).Len)
	})
}

// Must is Load that panics with the table's *TableError.
func (d *TableDef[K, R]) Must(s *Store) *Table[K, R] {
	return MustLoad[K, R](s, d)
}

func (d *TableDef[K, R]) preload(s *Store) error {
	_, err := d.Load(s)
	return err
}

// GroupDef declares a main/sub table.
type GroupDef[G, S comparable, R GroupRow[G, S]] struct {
	name  string
	files []string
}

// NewGroupTable declares a main/sub table in DefaultCatalog.
func NewGroupTable[G, S comparable, R GroupRow[G, S]](name string, fallbacks ...string) *GroupDef[G, S, R] {
	return DeclareGroupTable[G, S, R](DefaultCatalog, name, fallbacks...)
}

// DeclareGroupTable declares a main/sub table in the given catalog.
func DeclareGroupTable[G, S comparable, R GroupRow[G, S]](c *Catalog, name string, fallbacks ...string) *GroupDef[G, S, R] {
	d := &GroupDef[G, S, R]{name: name, files: append([]string{name}, fallbacks...)}
	c.register(d)
	return d
}

// Name returns the logical table name.
func (d *GroupDef[G, S, R]) Name() string {
	return d.name
}

// Files returns the candidate file names, primary first.
func (d *GroupDef[G, S, R]) Files() []string {
	return d.files
}

// Load returns the table, reading it on first access.
func (d *GroupDef[G, S, R]) Load(s *Store) (*GroupTable[G, S, R], error) {
	return cell(s, "group:"+d.name, func() (*GroupTable[G, S, R], error) {
		return load[*GroupTable[G, S, R]](s, d.name, d.files, decodeGroupTable[G, S, R], newGroupTable[G, S, R], func(t *GroupTable[G, S, R]) int {
			return t.Size()
		})
	})
}

// Must is Load that panics with the table's *TableError.
func (d *GroupDef[G, S, R]) Must(s *Store) *GroupTable[G, S, R] {
	t, err := d.Load(s)
	if err != nil {
		panic(asTableError(d.name, err))
	}
	return t
}

func (d *GroupDef[G, S, R]) preload(s *Store) error {
	_, err := d.Load(s)
	return err
}
