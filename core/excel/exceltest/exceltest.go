// Package exceltest builds in-memory datasets for tests.
package exceltest

import (
	"encoding/json"
	"testing"

	"datamine/core/allowlist"
	"datamine/core/excel"
	"datamine/core/storage"
	"datamine/core/textmap"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Dataset describes the content of a test export.
type Dataset struct {
	// Tables maps table file names (without extension) to their JSON content.
	Tables map[string]string
	// Text is written as TextMapCHS.json when non-nil.
	Text map[textmap.Hash]string
	// Version is the dataset game version.
	Version string
	// Allow defaults to an empty allow-list.
	Allow *allowlist.List
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

// FS writes the dataset into a fresh in-memory filesystem.
func FS(t testing.TB, d Dataset) billy.Filesystem {
	t.Helper()
	fs := memfs.New()
	for name, content := range d.Tables {
		require.NoError(t, util.WriteFile(fs, storage.ExcelPath(name), []byte(content), 0o644))
	}
	if d.Text != nil {
		data, err := json.Marshal(d.Text)
		require.NoError(t, err)
		require.NoError(t, util.WriteFile(fs, storage.TextPath("CHS"), data, 0o644))
	}
	return fs
}

// NewStore builds a store over the dataset using the default catalog.
func NewStore(t testing.TB, d Dataset) *excel.Store {
	t.Helper()
	allow := d.Allow
	if allow == nil {
		allow = allowlist.Empty()
	}
	return excel.NewStore(excel.Options{
		FS:     FS(t, d),
		Text:   textmap.New(d.Text),
		Allow:  allow,
		Logger: d.Logger,
		Config: excel.Config{Version: d.Version},
	})
}

// AssertDangling runs fn and asserts it panics with a *excel.ReferenceError equal to want.
func AssertDangling(t testing.TB, want excel.ReferenceError, fn func()) bool {
	t.Helper()
	var got any
	func() {
		defer func() { got = recover() }()
		fn()
	}()
	ref, ok := got.(*excel.ReferenceError)
	if !assert.Truef(t, ok, "expected a *excel.ReferenceError panic, got %#v", got) {
		return false
	}
	return assert.Equal(t, want, *ref)
}
