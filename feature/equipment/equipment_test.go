package equipment

import (
	"testing"

	"datamine/core/excel"
	"datamine/core/excel/exceltest"
	"datamine/core/format"
	"datamine/core/textmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *excel.Store {
	return exceltest.NewStore(t, exceltest.Dataset{
		Tables: map[string]string{
			"EquipmentConfig": `[
				{"EquipmentID": 23000, "EquipmentName": {"Hash": 1}, "Rarity": "CombatPowerLightconeRarity5", "AvatarBaseType": "Knight", "MaxRank": 5, "SkillID": 23000},
				{"EquipmentID": 20000, "Rarity": "CombatPowerLightconeRarity3", "AvatarBaseType": "Rogue", "SkillID": 20000},
				{"EquipmentID": 20001, "AvatarBaseType": "", "SkillID": 0}
			]`,
			"EquipmentSkillConfig": `[
				{"SkillID": 23000, "Level": 1, "SkillName": {"Hash": 2}, "SkillDesc": {"Hash": 3}, "ParamList": [0.18]},
				{"SkillID": 23000, "Level": 2, "SkillName": {"Hash": 2}, "SkillDesc": {"Hash": 3}, "ParamList": [0.21]}
			]`,
			"EquipmentPromotionConfig": `{"23000": {
				"0": {"EquipmentID": 23000, "Promotion": 0, "MaxLevel": 20, "BaseAttack": {"Value": 26.4}, "BaseAttackAdd": {"Value": 3.96}},
				"1": {"EquipmentID": 23000, "Promotion": 1, "MaxLevel": 30, "PromotionCostList": [{"ItemID": 2, "ItemNum": 5000}]}
			}}`,
			"AvatarBaseType": `[{"ID": "Knight", "BaseTypeText": {"Hash": 4}}]`,
			"ItemConfig":     `[{"ID": 2, "ItemName": {"Hash": 5}}]`,
		},
		Text: map[textmap.Hash]string{
			1: "Moment of Victory",
			2: "Verdict",
			3: "Increases DEF by #1[i]%.",
			4: "The Preservation",
			5: "Credit",
		},
	})
}

func TestEquipment(t *testing.T) {
	s := newStore(t)

	e := Get(s, 23000)
	require.NotNil(t, e)
	assert.Equal(t, "Moment of Victory", e.Name)
	assert.Equal(t, 5, e.Rarity)
	assert.Equal(t, "The Preservation", e.Path().Name)

	ranks := e.Skill()
	require.Len(t, ranks, 2)
	assert.Equal(t, "Increases DEF by 18%.", ranks[0].Description(format.Plain{}))
	assert.Equal(t, "Increases DEF by 21%.", ranks[1].Description(format.Plain{}))
	assert.Equal(t, SkillRanks(s, 23000), ranks)

	phases := e.Promotions()
	require.Len(t, phases, 2)
	assert.InDelta(t, 26.4+3.96*9, phases[0].StatsAt(10).Attack, 1e-9)
	require.Len(t, phases[1].Cost, 1)
	assert.Equal(t, "Credit", phases[1].Cost[0].Item.Name)
}

func TestEquipment_References(t *testing.T) {
	s := newStore(t)

	empty := Get(s, 20001)
	require.NotNil(t, empty)
	assert.Nil(t, empty.Path())
	assert.Nil(t, empty.Skill())
	assert.Empty(t, empty.Promotions())

	broken := Get(s, 20000)
	exceltest.AssertDangling(t, excel.ReferenceError{Table: "AvatarBaseType", Field: "EquipmentConfig.AvatarBaseType", Key: "Rogue"}, func() {
		broken.Path()
	})
	exceltest.AssertDangling(t, excel.ReferenceError{Table: "EquipmentSkillConfig", Field: "EquipmentConfig.SkillID", Key: "20000"}, func() {
		broken.Skill()
	})
}

func TestList(t *testing.T) {
	s := newStore(t)

	var ids []uint32
	for e := range List(s) {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []uint32{23000, 20000, 20001}, ids)
	assert.Empty(t, PromotionsOf(s, 20000))
}
