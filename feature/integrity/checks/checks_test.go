package checks

import (
	"testing"

	"datamine/core/excel"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID uint32 `json:"ID"`
}

func (r row) Key() uint32 { return r.ID }

func TestCheckStructure(t *testing.T) {
	t.Run("All Missing", func(t *testing.T) {
		assert.Equal(t, []string{"ExcelOutput", "TextMap"}, CheckStructure(memfs.New()))
	})

	t.Run("Complete", func(t *testing.T) {
		fs := memfs.New()
		require.NoError(t, fs.MkdirAll("ExcelOutput", 0o755))
		require.NoError(t, fs.MkdirAll("TextMap", 0o755))
		assert.Empty(t, CheckStructure(fs))
	})

	t.Run("File Instead Of Folder", func(t *testing.T) {
		fs := memfs.New()
		require.NoError(t, fs.MkdirAll("ExcelOutput", 0o755))
		require.NoError(t, util.WriteFile(fs, "TextMap", []byte("{}"), 0o644))
		assert.Equal(t, []string{"TextMap"}, CheckStructure(fs))
	})
}

func TestCheckTables(t *testing.T) {
	cat := excel.NewCatalog()
	excel.DeclareTable[uint32, row](cat, "Current")
	excel.DeclareTable[uint32, row](cat, "Renamed", "OldName")
	excel.DeclareTable[uint32, row](cat, "Absent")

	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "ExcelOutput/Current.json", []byte("[]"), 0o644))
	require.NoError(t, util.WriteFile(fs, "ExcelOutput/OldName.json", []byte("[]"), 0o644))

	statuses := CheckTables(fs, cat)
	assert.Equal(t, []TableStatus{
		{Table: "Absent"},
		{Table: "Current", File: "Current", Present: true},
		{Table: "Renamed", File: "OldName", Present: true},
	}, statuses)
	assert.Equal(t, []string{"Absent"}, Missing(statuses))
}
