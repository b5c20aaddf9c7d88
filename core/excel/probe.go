package excel

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// Probe evaluates a JSONPath expression over the raw content of a table file. Unknown
// table names are read as file names, so undeclared tables can be probed too.
func (s *Store) Probe(table, expr string) ([]any, error) {
	x, err := jp.ParseString(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", expr, err)
	}

	files := []string{table}
	if d, ok := s.catalog.Lookup(table); ok {
		files = d.Files()
	}

	data, used, err := s.read(files)
	if err != nil {
		return nil, &TableError{Table: table, File: used, Err: err}
	}

	doc, err := oj.Parse(data)
	if err != nil {
		return nil, &TableError{Table: table, File: used, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	return x.Get(doc), nil
}
