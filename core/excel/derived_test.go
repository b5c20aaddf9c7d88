package excel

import (
	"testing"

	"datamine/core/textmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnion(t *testing.T) {
	cat := NewCatalog()
	a := DeclareTable[uint32, templateRow](cat, "ChallengeGroupConfig")
	b := DeclareTable[uint32, templateRow](cat, "ChallengeStoryGroupConfig")
	u := NewUnion[uint32, templateRow]("Groups", a, b)

	s, logs := newStore(t, fixture{cat: cat, files: map[string]string{
		"ChallengeGroupConfig":      `[{"ID": 1, "GroupID": 10}, {"ID": 2, "GroupID": 20}]`,
		"ChallengeStoryGroupConfig": `[{"ID": 2, "GroupID": 99}, {"ID": 3, "GroupID": 30}]`,
	}})

	tbl, err := u.Load(s)
	require.NoError(t, err)
	assert.Equal(t, []uint32{1, 2, 3}, tbl.Keys())

	r2, _ := tbl.Get(2)
	assert.Equal(t, uint32(20), r2.GroupID)
	assert.Equal(t, "ChallengeGroupConfig", u.Origin(s, r2))

	r3, _ := tbl.Get(3)
	assert.Equal(t, "ChallengeStoryGroupConfig", u.Origin(s, r3))
	assert.Equal(t, "", u.Origin(s, &templateRow{ID: 3}))

	// Rows are shared with the base tables.
	base, _ := b.Must(s).Get(3)
	assert.Same(t, base, r3)

	warns := logs.FilterMessage("Key present in several unioned tables, keeping first").All()
	require.Len(t, warns, 1)
	assert.Equal(t, "2", warns[0].ContextMap()["key"])

	again, _ := u.Load(s)
	assert.Same(t, tbl, again)
}

func TestUnion_PropagatesFailure(t *testing.T) {
	cat := NewCatalog()
	a := DeclareTable[uint32, templateRow](cat, "Good")
	b := DeclareTable[uint32, templateRow](cat, "Bad")
	u := NewUnion[uint32, templateRow]("Both", a, b)
	s, _ := newStore(t, fixture{cat: cat, files: map[string]string{"Good": `[]`, "Bad": `true`}})

	_, err := u.Load(s)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Panics(t, func() { MustLoad[uint32, templateRow](s, u) })
}

func TestGroupBy(t *testing.T) {
	cat := NewCatalog()
	def := DeclareTable[uint32, templateRow](cat, "MonsterConfig")
	families := NewGroupBy("TemplateFamilies", func(r *templateRow) uint32 { return r.GroupID }, Source[uint32, templateRow](def))

	s, _ := newStore(t, fixture{cat: cat, files: map[string]string{
		"MonsterConfig": `[
			{"ID": 1, "GroupID": 7},
			{"ID": 2, "GroupID": 8},
			{"ID": 3, "GroupID": 7},
			{"ID": 4, "GroupID": 0}
		]`,
	}})

	idx, err := families.Load(s)
	require.NoError(t, err)

	var ids []uint32
	for _, r := range idx.Get(7) {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []uint32{1, 3}, ids)
	assert.Nil(t, idx.Get(42))
	assert.False(t, idx.Has(0))

	// Every row with a nonzero field lands in exactly one group.
	seen := map[uint32]int{}
	for g, rows := range idx.Groups() {
		for _, r := range rows {
			assert.Equal(t, g, r.GroupID)
			seen[r.ID]++
		}
	}
	assert.Equal(t, map[uint32]int{1: 1, 2: 1, 3: 1}, seen)
	assert.Equal(t, 3, idx.Size())
	assert.Same(t, idx, families.Must(s))
}

func TestNameIndex(t *testing.T) {
	cat := NewCatalog()
	def := DeclareTable[uint32, templateRow](cat, "AvatarConfig")
	names := NewNameIndex("Avatars", func(r *templateRow) textmap.Hash { return r.Name }, Source[uint32, templateRow](def))

	s, _ := newStore(t, fixture{
		cat: cat,
		files: map[string]string{
			"AvatarConfig": `[
				{"ID": 1001, "Name": {"Hash": 11}},
				{"ID": 8001, "Name": {"Hash": 80}},
				{"ID": 8002, "Name": {"Hash": 80}},
				{"ID": 9000, "Name": {"Hash": 404}}
			]`,
		},
		text: map[textmap.Hash]string{11: "March", 80: "Trailblazer"},
	})

	idx := names.Must(s)
	assert.Len(t, idx.Get("March"), 1)
	assert.Len(t, idx.Get("Trailblazer"), 2)
	assert.False(t, idx.Has(""))
	assert.Equal(t, 2, idx.Len())
}
