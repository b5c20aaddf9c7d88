package excel

import (
	"fmt"
	"sort"
	"sync"
)

// Declared is a base table known to a catalog.
type Declared interface {
	// Name is the logical table name.
	Name() string
	// Files lists candidate file names, primary first.
	Files() []string
	preload(s *Store) error
}

// Catalog is the registry of declared base tables.
type Catalog struct {
	mu     sync.RWMutex
	tables map[string]Declared
}

// DefaultCatalog receives every table declared with NewTable and NewGroupTable.
var DefaultCatalog = NewCatalog()

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{tables: make(map[string]Declared)}
}

func (c *Catalog) register(d Declared) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.tables[d.Name()]; exists {
		panic(fmt.Sprintf("excel: table %s declared twice", d.Name()))
	}
	c.tables[d.Name()] = d
}

// Tables returns the declared tables sorted by name.
func (c *Catalog) Tables() []Declared {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Declared, 0, len(c.tables))
	for _, d := range c.tables {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name() < out[j].Name()
	})
	return out
}

// Lookup returns the table declared under name.
func (c *Catalog) Lookup(name string) (Declared, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.tables[name]
	return d, ok
}
