package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Storage.BaseDir)
	assert.Equal(t, "zh-Hans", cfg.Text.Language)
	assert.Equal(t, "", cfg.Excel.Version)
	assert.Equal(t, 8, cfg.Excel.PreloadWorkers)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "datamine.db", cfg.Database.Path)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("STORAGE_BASE_DIR", "/data/export")
	t.Setenv("EXCEL_VERSION", "2.3")
	t.Setenv("TEXT_LANGUAGE", "en")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/data/export", cfg.Storage.BaseDir)
	assert.Equal(t, "2.3", cfg.Excel.Version)
	assert.Equal(t, "en", cfg.Text.Language)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	content := "excel:\n  version: \"1.6\"\n  preload_workers: 2\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "datamine.yaml"), []byte(content), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "1.6", cfg.Excel.Version)
	assert.Equal(t, 2, cfg.Excel.PreloadWorkers)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_BrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "datamine.yaml"), []byte("log: [unclosed"), 0o644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
