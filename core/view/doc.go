// Package view turns raw rows into resolved views.
//
// A view is built from one row and the store it came from. Foreign keys are resolved
// through the store on demand: a zero key means "no reference" and yields nil, a nonzero
// key that matches no row is fatal unless the allow-list excuses it for the dataset
// version. Fatal references panic with *excel.ReferenceError; recover them at the
// command boundary with excel.Recover.
package view
