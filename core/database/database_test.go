package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: "sqlite", Path: ":memory:"})
		require.NoError(t, err)
		assert.Equal(t, "sqlite", db.Dialector.Name())
		assert.NoError(t, Close(db))
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.db")
		db, err := Connect(Config{Path: path})
		require.NoError(t, err)
		require.NoError(t, db.Exec("CREATE TABLE t (id INTEGER)").Error)
		require.NoError(t, Close(db))
		assert.FileExists(t, path)
	})

	t.Run("Unsupported driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "mysql", Path: "x"})
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Empty path", func(t *testing.T) {
		_, err := Connect(Config{Driver: "sqlite"})
		assert.Error(t, err)
	})
}
