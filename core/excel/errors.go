package excel

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed marks a table file that matches none of the known layouts.
	ErrMalformed = errors.New("malformed table")
	// ErrDuplicateKey marks a key that appears twice where keys must be unique.
	ErrDuplicateKey = errors.New("duplicate key")
)

// TableError reports a fatal problem with one table.
type TableError struct {
	Table string
	File  string
	Err   error
}

func (e *TableError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("table %s: %v", e.Table, e.Err)
	}
	return fmt.Sprintf("table %s (%s): %v", e.Table, e.File, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

// ReferenceError reports a nonzero foreign key with no matching row. It is raised as a
// panic by the view layer.
type ReferenceError struct {
	// Table is the referenced table.
	Table string
	// Field is the referencing field, "<Table>.<Field>".
	Field string
	// Key is the dangling id.
	Key string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("dangling reference %s -> %s[%s]", e.Field, e.Table, e.Key)
}

// Recover converts a panic raised by the table or view layer into an error stored in
// errp. Other panics are re-raised. Use it deferred at a command boundary:
//
//	defer excel.Recover(&err)
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	switch v := r.(type) {
	case *ReferenceError:
		*errp = v
	case *TableError:
		*errp = v
	default:
		panic(r)
	}
}
