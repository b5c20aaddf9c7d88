package excel

import (
	"testing"

	"datamine/core/allowlist"
	"datamine/core/storage"
	"datamine/core/textmap"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type buffRow struct {
	ID        uint32       `json:"ID"`
	Lv        uint32       `json:"Lv"`
	BuffName  textmap.Hash `json:"BuffName"`
	ParamList []Value      `json:"ParamList"`
}

func (r buffRow) Key() uint32 { return r.ID }

type levelRow struct {
	ID   uint32 `json:"ID"`
	Lv   uint32 `json:"Lv"`
	Cost int    `json:"Cost"`
}

func (r levelRow) GroupKey() uint32 { return r.ID }
func (r levelRow) SubKey() uint32   { return r.Lv }

type templateRow struct {
	ID      uint32       `json:"ID"`
	GroupID uint32       `json:"GroupID"`
	Name    textmap.Hash `json:"Name"`
}

func (r templateRow) Key() uint32 { return r.ID }

type pathRow struct {
	ID   string       `json:"ID"`
	Text textmap.Hash `json:"BaseTypeText"`
}

func (r pathRow) Key() string { return r.ID }

type fixture struct {
	files map[string]string
	text  map[textmap.Hash]string
	cat   *Catalog
}

func newStore(t *testing.T, fx fixture) (*Store, *observer.ObservedLogs) {
	t.Helper()
	fs := memfs.New()
	for name, content := range fx.files {
		require.NoError(t, util.WriteFile(fs, storage.ExcelPath(name), []byte(content), 0o644))
	}

	core, logs := observer.New(zapcore.DebugLevel)
	cat := fx.cat
	if cat == nil {
		cat = NewCatalog()
	}
	s := NewStore(Options{
		FS:      fs,
		Text:    textmap.New(fx.text),
		Allow:   allowlist.Empty(),
		Catalog: cat,
		Logger:  zap.New(core),
		Config:  Config{Version: "1.0", PreloadWorkers: 2},
	})
	return s, logs
}
