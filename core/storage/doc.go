// Package storage provides access to the dataset export on disk.
//
// The export is a directory with two subfolders:
//
//	<base>/ExcelOutput/<Table>.json
//	<base>/TextMap/TextMap<LANG>.json
//
// Files are read through a go-billy filesystem so that production code uses the OS
// filesystem (osfs) while tests build fixtures in memory (memfs).
//
// # Usage
//
//	fs, err := storage.Open(storage.Config{BaseDir: "/data/export"})
//	data, used, err := storage.ReadFirst(fs, []string{storage.ExcelPath("ItemConfig")})
package storage
