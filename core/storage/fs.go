package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Directory names inside a dataset export.
const (
	ExcelDir = "ExcelOutput"
	TextDir  = "TextMap"
)

// Open returns a read-only view of the dataset rooted at cfg.BaseDir.
// It fails if the base directory does not exist.
func Open(cfg Config) (billy.Filesystem, error) {
	base := cfg.BaseDir
	if base == "" {
		base = "."
	}

	info, err := os.Stat(base)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("dataset path %s is not a directory", base)
	}

	return osfs.New(base), nil
}

// ReadFile reads the whole file at name. A missing file is reported with an error
// satisfying errors.Is(err, os.ErrNotExist).
func ReadFile(fs billy.Filesystem, name string) ([]byte, error) {
	f, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// ReadFirst reads the first existing file among candidates, in order. It returns the name
// that was read. If none exists the error satisfies errors.Is(err, os.ErrNotExist).
func ReadFirst(fs billy.Filesystem, candidates []string) ([]byte, string, error) {
	for _, name := range candidates {
		data, err := ReadFile(fs, name)
		if err == nil {
			return data, name, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, name, err
		}
	}
	return nil, "", fmt.Errorf("none of %v found: %w", candidates, os.ErrNotExist)
}

// ExcelPath returns the path of a table file inside the export.
func ExcelPath(table string) string {
	return path.Join(ExcelDir, table+".json")
}

// TextPath returns the path of a localization file inside the export.
func TextPath(suffix string) string {
	return path.Join(TextDir, "TextMap"+suffix+".json")
}

// Exists reports whether name exists in fs.
func Exists(fs billy.Filesystem, name string) bool {
	_, err := fs.Stat(name)
	return err == nil
}
