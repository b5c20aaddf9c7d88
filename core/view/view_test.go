package view

import (
	"slices"
	"testing"

	"datamine/core/allowlist"
	"datamine/core/excel"
	"datamine/core/excel/exceltest"
	"datamine/core/storage"
	"datamine/core/textmap"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type buffRow struct {
	ID   uint32       `json:"ID"`
	Lv   uint32       `json:"Lv"`
	Name textmap.Hash `json:"BuffName"`
}

func (r buffRow) GroupKey() uint32 { return r.ID }
func (r buffRow) SubKey() uint32   { return r.Lv }

type floorRow struct {
	ID       uint32   `json:"ID"`
	BuffID   uint32   `json:"MazeBuffID"`
	NextIDs  []uint32 `json:"NextIDList"`
	RewardID uint32   `json:"RewardID"`
}

func (r floorRow) Key() uint32 { return r.ID }

type Buff struct {
	ID    uint32
	Level uint32
	Name  string
}

func newBuff(s *excel.Store, r *buffRow) *Buff {
	return &Buff{ID: r.ID, Level: r.Lv, Name: s.Text(r.Name)}
}

type Floor struct {
	ID  uint32
	row *floorRow
}

func newFloor(_ *excel.Store, r *floorRow) *Floor {
	return &Floor{ID: r.ID, row: r}
}

type fixture struct {
	cat    *excel.Catalog
	buffs  *excel.GroupDef[uint32, uint32, buffRow]
	floors *excel.TableDef[uint32, floorRow]
	store  *excel.Store
}

func setup(t *testing.T, version string) fixture {
	t.Helper()
	cat := excel.NewCatalog()
	fx := fixture{
		cat:    cat,
		buffs:  excel.DeclareGroupTable[uint32, uint32, buffRow](cat, "MazeBuff"),
		floors: excel.DeclareTable[uint32, floorRow](cat, "ChallengeMazeConfig"),
	}

	fs := memfs.New()
	files := map[string]string{
		"MazeBuff": `[
			{"ID": 5, "Lv": 1, "BuffName": {"Hash": 12345}},
			{"ID": 5, "Lv": 2, "BuffName": {"Hash": 12345}},
			{"ID": 7, "Lv": 1}
		]`,
		"ChallengeMazeConfig": `{
			"1": {"ID": 1, "MazeBuffID": 5, "NextIDList": [2, 0, 3]},
			"2": {"ID": 2, "MazeBuffID": 0},
			"3": {"ID": 3, "MazeBuffID": 9, "NextIDList": [404]}
		}`,
	}
	for name, content := range files {
		require.NoError(t, util.WriteFile(fs, storage.ExcelPath(name), []byte(content), 0o644))
	}

	fx.store = excel.NewStore(excel.Options{
		FS:      fs,
		Text:    textmap.New(map[textmap.Hash]string{12345: "Test Buff"}),
		Catalog: cat,
		Allow: allowlist.MustNew([]allowlist.Entry{
			{Field: "ChallengeMazeConfig.MazeBuffID", ID: "9", Until: "1.0"},
		}),
		Config: excel.Config{Version: version},
	})
	return fx
}

func (fx fixture) buffOf(f *Floor) []*Buff {
	return GroupRef(fx.store, fx.buffs, "ChallengeMazeConfig.MazeBuffID", f.row.BuffID, newBuff)
}

func TestGetAndList(t *testing.T) {
	fx := setup(t, "1.0")

	f := Get(fx.store, fx.floors, uint32(2), newFloor)
	require.NotNil(t, f)
	assert.Equal(t, uint32(2), f.ID)
	assert.Nil(t, Get(fx.store, fx.floors, uint32(99), newFloor))

	var ids []uint32
	for f := range List(fx.store, fx.floors, newFloor) {
		ids = append(ids, f.ID)
	}
	assert.Equal(t, []uint32{1, 2, 3}, ids)

	// Sequences restart and stop early.
	first := slices.Collect(List(fx.store, fx.floors, newFloor))
	assert.Len(t, first, 3)
	for f := range List(fx.store, fx.floors, newFloor) {
		assert.Equal(t, uint32(1), f.ID)
		break
	}
}

func TestGroup(t *testing.T) {
	fx := setup(t, "1.0")

	levels := Group(fx.store, fx.buffs, 5, newBuff)
	require.Len(t, levels, 2)
	assert.Equal(t, uint32(1), levels[0].Level)
	assert.Equal(t, uint32(2), levels[1].Level)
	assert.Equal(t, "Test Buff", levels[0].Name)

	empty := Group(fx.store, fx.buffs, 6, newBuff)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestRef(t *testing.T) {
	fx := setup(t, "1.0")
	one := Get(fx.store, fx.floors, uint32(1), newFloor)

	t.Run("Zero is no reference", func(t *testing.T) {
		two := Get(fx.store, fx.floors, uint32(2), newFloor)
		assert.Nil(t, fx.buffOf(two))
		assert.Nil(t, Ref(fx.store, fx.floors, "ChallengeMazeConfig.RewardID", uint32(0), newFloor))
	})

	t.Run("Nonzero equals direct lookup", func(t *testing.T) {
		assert.Equal(t, Group(fx.store, fx.buffs, 5, newBuff), fx.buffOf(one))

		next := Refs(fx.store, fx.floors, "ChallengeMazeConfig.NextIDList", one.row.NextIDs, newFloor)
		require.Len(t, next, 2)
		assert.Equal(t, Get(fx.store, fx.floors, uint32(3), newFloor), next[1])
	})

	t.Run("Sub reference", func(t *testing.T) {
		b := SubRef(fx.store, fx.buffs, "X.Buff", uint32(5), uint32(2), newBuff)
		require.NotNil(t, b)
		assert.Equal(t, uint32(2), b.Level)
		exceltest.AssertDangling(t, excel.ReferenceError{Table: "MazeBuff", Field: "X.Buff", Key: "5/9"}, func() {
			SubRef(fx.store, fx.buffs, "X.Buff", uint32(5), uint32(9), newBuff)
		})
	})

	t.Run("Dangling is fatal", func(t *testing.T) {
		three := Get(fx.store, fx.floors, uint32(3), newFloor)
		exceltest.AssertDangling(t, excel.ReferenceError{
			Table: "ChallengeMazeConfig",
			Field: "ChallengeMazeConfig.NextIDList",
			Key:   "404",
		}, func() {
			Refs(fx.store, fx.floors, "ChallengeMazeConfig.NextIDList", three.row.NextIDs, newFloor)
		})
	})

	t.Run("Allow-listed dangling is dropped", func(t *testing.T) {
		three := Get(fx.store, fx.floors, uint32(3), newFloor)
		assert.Nil(t, fx.buffOf(three))
	})
}

func TestRef_AllowListIsVersioned(t *testing.T) {
	fx := setup(t, "1.1")
	three := Get(fx.store, fx.floors, uint32(3), newFloor)

	var err error
	func() {
		defer excel.Recover(&err)
		fx.buffOf(three)
	}()

	var ref *excel.ReferenceError
	require.ErrorAs(t, err, &ref)
	assert.Equal(t, "MazeBuff", ref.Table)
	assert.Equal(t, "9", ref.Key)
}

func TestListGroups(t *testing.T) {
	fx := setup(t, "1.0")

	var got [][2]uint32
	for b := range ListGroups(fx.store, fx.buffs, newBuff) {
		got = append(got, [2]uint32{b.ID, b.Level})
	}
	assert.Equal(t, [][2]uint32{{5, 1}, {5, 2}, {7, 1}}, got)
}
