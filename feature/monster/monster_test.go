package monster

import (
	"testing"

	"datamine/core/allowlist"
	"datamine/core/excel"
	"datamine/core/excel/exceltest"
	"datamine/core/format"
	"datamine/core/textmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataset(version string) exceltest.Dataset {
	return exceltest.Dataset{
		Tables: map[string]string{
			"MonsterConfig": `[
				{"MonsterID": 1001010, "MonsterTemplateID": 100101, "MonsterName": {"Hash": 1}, "AttackModifyRatio": {"Value": 1.5}, "DefenceModifyRatio": {"Value": 1}, "HPModifyRatio": {"Value": 2}, "SpeedModifyRatio": {"Value": 1}, "StanceWeakList": ["Fire", "Ice"], "SkillList": [100101, 100102]},
				{"MonsterID": 1001020, "MonsterTemplateID": 0, "SkillList": [0]},
				{"MonsterID": 1004010, "MonsterTemplateID": 100101, "SkillList": [1004021]}
			]`,
			"MonsterTemplateConfig": `[
				{"MonsterTemplateID": 100101, "TemplateGroupID": 1001, "MonsterName": {"Hash": 1}, "Rank": "Minion", "AttackBase": 12, "DefenceBase": 200, "HPBase": 30, "SpeedBase": 83},
				{"MonsterTemplateID": 100102, "TemplateGroupID": 1001, "Rank": "Elite"},
				{"MonsterTemplateID": 200101, "TemplateGroupID": 2001, "Rank": "Minion"},
				{"MonsterTemplateID": 300101, "TemplateGroupID": 0}
			]`,
			"MonsterSkillConfig": `[
				{"SkillID": 100101, "SkillName": {"Hash": 2}, "SkillDesc": {"Hash": 3}, "DamageType": "Physical", "ParamList": [0.5]},
				{"SkillID": 100102, "SkillName": {"Hash": 4}}
			]`,
		},
		Text: map[textmap.Hash]string{
			1: "Antimatter Engine",
			2: "Obliterate",
			3: "Deals Physical DMG equal to #1[i]% of ATK.",
			4: "Shatter",
		},
		Version: version,
		Allow:   allowlist.Known,
	}
}

func TestMonster(t *testing.T) {
	s := exceltest.NewStore(t, dataset("1.0"))

	m := Get(s, 1001010)
	require.NotNil(t, m)
	assert.Equal(t, "Antimatter Engine", m.Name)
	assert.Equal(t, []string{"Fire", "Ice"}, m.WeakTo)

	tpl := m.Template()
	require.NotNil(t, tpl)
	assert.Equal(t, GetTemplate(s, 100101), tpl)
	assert.Equal(t, "Minion", tpl.Rank)

	assert.Equal(t, Stats{Attack: 18, Defence: 200, HP: 60, Speed: 83}, m.Stats())

	skills := m.Skills()
	require.Len(t, skills, 2)
	assert.Equal(t, "Obliterate", skills[0].Name)
	assert.Equal(t, "Deals Physical DMG equal to 50% of ATK.", skills[0].Description(format.Plain{}))
	assert.Equal(t, "Shatter", skills[1].Name)
}

func TestMonster_ZeroReferences(t *testing.T) {
	s := exceltest.NewStore(t, dataset("1.0"))

	m := Get(s, 1001020)
	require.NotNil(t, m)
	assert.Nil(t, m.Template())
	assert.Empty(t, m.Skills())
	assert.Equal(t, Stats{}, m.Stats())
}

func TestMonster_KnownGap(t *testing.T) {
	t.Run("Inside the affected versions", func(t *testing.T) {
		s := exceltest.NewStore(t, dataset("1.2"))
		assert.Empty(t, Get(s, 1004010).Skills())
	})

	t.Run("Outside the affected versions", func(t *testing.T) {
		s := exceltest.NewStore(t, dataset("1.4"))
		exceltest.AssertDangling(t, excel.ReferenceError{
			Table: "MonsterSkillConfig",
			Field: "MonsterConfig.SkillList",
			Key:   "1004021",
		}, func() {
			Get(s, 1004010).Skills()
		})
	})
}

func TestFamily(t *testing.T) {
	s := exceltest.NewStore(t, dataset("1.0"))

	tpl := GetTemplate(s, 100102)
	require.NotNil(t, tpl)
	family := tpl.Family()
	require.Len(t, family, 2)
	assert.Equal(t, uint32(100101), family[0].ID)
	assert.Equal(t, uint32(100102), family[1].ID)

	assert.Empty(t, GetTemplate(s, 300101).Family())
	assert.Empty(t, Family(s, 9999))

	// Every grouped template lands in exactly its own family.
	total := 0
	for tpl := range ListTemplates(s) {
		if tpl.GroupID == 0 {
			continue
		}
		total++
		assert.Contains(t, Family(s, tpl.GroupID), tpl)
	}
	assert.Equal(t, 3, total)
	assert.Equal(t, 3, TemplateFamilies.Must(s).Size())
}

func TestList(t *testing.T) {
	s := exceltest.NewStore(t, dataset("1.0"))

	var ids []uint32
	for m := range List(s) {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []uint32{1001010, 1001020, 1004010}, ids)

	n := 0
	for range ListSkills(s) {
		n++
	}
	assert.Equal(t, 2, n)
	assert.Nil(t, GetSkill(s, 1))
	assert.Nil(t, Ref(s, "ChallengeMazeConfig.NpcMonsterIDList1", 0))
	assert.Len(t, Refs(s, "ChallengeMazeConfig.NpcMonsterIDList1", []uint32{1001010, 0}), 1)
}
