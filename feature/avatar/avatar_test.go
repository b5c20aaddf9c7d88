package avatar

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
			"AvatarConfig": `[
				{"AvatarID": 1001, "AvatarName": {"Hash": 1}, "Rarity": "CombatPowerAvatarRarityType4", "DamageType": "Ice", "AvatarBaseType": "Knight", "SPNeed": {"Value": 120}, "SkillList": [100101, 0], "RankIDList": [100101, 100102]},
				{"AvatarID": 8001, "AvatarName": {"Hash": 2}, "Rarity": "CombatPowerAvatarRarityType5", "AvatarBaseType": "Warrior", "RankIDList": [800101, 800106]},
				{"AvatarID": 8002, "AvatarName": {"Hash": 2}, "Rarity": "CombatPowerAvatarRarityType5", "AvatarBaseType": "Warrior"}
			]`,
			"AvatarBaseType": `{"Knight": {"ID": "Knight", "BaseTypeText": {"Hash": 3}}, "Warrior": {"ID": "Warrior", "BaseTypeText": {"Hash": 4}}}`,
			"AvatarSkillConfig": `{"100101": {
				"1": {"SkillID": 100101, "Level": 1, "MaxLevel": 2, "SkillName": {"Hash": 5}, "SkillDesc": {"Hash": 6}, "ParamList": [{"Value": 0.5}]},
				"2": {"SkillID": 100101, "Level": 2, "MaxLevel": 2, "SkillName": {"Hash": 5}, "SkillDesc": {"Hash": 6}, "ParamList": [{"Value": 0.6}]}
			}}`,
			"AvatarRankConfig": `[
				{"RankID": 100101, "Rank": 1, "Name": {"Hash": 7}, "UnlockCost": [{"ItemID": 11001, "ItemNum": 1}]},
				{"RankID": 100102, "Rank": 2},
				{"RankID": 800101, "Rank": 1}
			]`,
			"AvatarPromotionConfig": `[
				{"AvatarID": 1001, "Promotion": 0, "MaxLevel": 20, "AttackBase": {"Value": 69.6}, "AttackAdd": {"Value": 3.48}, "HPBase": {"Value": 144}, "HPAdd": {"Value": 7.2}, "DefenceBase": {"Value": 78}, "DefenceAdd": {"Value": 3.9}, "SpeedBase": {"Value": 101}},
				{"AvatarID": 1001, "Promotion": 1, "MaxLevel": 30, "PromotionCostList": [{"ItemID": 2, "ItemNum": 4000}]}
			]`,
			"ItemConfig":           `[{"ID": 2, "ItemName": {"Hash": 8}}]`,
			"ItemConfigAvatarRank": `[{"ID": 11001}]`,
		},
		Text: map[textmap.Hash]string{
			1: "March 7th",
			2: "Trailblazer",
			3: "The Preservation",
			4: "The Destruction",
			5: "Glacial Cascade",
			6: "Deals Ice DMG equal to #1[i]% of ATK.",
			7: "Memory of You",
			8: "Credit",
		},
		Version: version,
		Allow:   allowlist.Known,
	}
}

func TestAvatar(t *testing.T) {
	s := exceltest.NewStore(t, dataset("1.0"))

	a := Get(s, 1001)
	require.NotNil(t, a)
	assert.Equal(t, "March 7th", a.Name)
	assert.Equal(t, 4, a.Rarity)
	assert.Equal(t, "Ice", a.Element)
	assert.Equal(t, 120.0, a.Energy)

	path := a.Path()
	require.NotNil(t, path)
	assert.Equal(t, "The Preservation", path.Name)
	assert.Equal(t, GetBaseType(s, "Knight"), path)

	skills := a.Skills()
	require.Len(t, skills, 1)
	require.Len(t, skills[0], 2)
	assert.Equal(t, "Glacial Cascade", skills[0][0].Name)
	assert.Equal(t, "Deals Ice DMG equal to 60% of ATK.", skills[0][1].Description(format.Plain{}))
	assert.Equal(t, SkillLevels(s, 100101), skills[0])
	assert.Empty(t, SkillLevels(s, 1))

	eidolons := a.Eidolons()
	require.Len(t, eidolons, 2)
	assert.Equal(t, "Memory of You", eidolons[0].Name)
	require.Len(t, eidolons[0].Cost, 1)
	assert.Equal(t, uint32(11001), eidolons[0].Cost[0].Item.ID)
}

func TestPromotions(t *testing.T) {
	s := exceltest.NewStore(t, dataset("1.0"))

	phases := Get(s, 1001).Promotions()
	require.Len(t, phases, 2)
	assert.Equal(t, uint32(20), phases[0].MaxLevel)
	assert.Empty(t, phases[0].Cost)
	require.Len(t, phases[1].Cost, 1)
	assert.Equal(t, "Credit", phases[1].Cost[0].Item.Name)

	lv1 := phases[0].StatsAt(1)
	assert.InDelta(t, 69.6, lv1.Attack, 1e-9)
	assert.InDelta(t, 144, lv1.HP, 1e-9)
	lv20 := phases[0].StatsAt(20)
	assert.InDelta(t, 69.6+3.48*19, lv20.Attack, 1e-9)
	assert.InDelta(t, 101, lv20.Speed, 1e-9)

	assert.Empty(t, PromotionsOf(s, 8001))
}

func TestEidolons_KnownGap(t *testing.T) {
	t.Run("Listed for the launch dump", func(t *testing.T) {
		s := exceltest.NewStore(t, dataset("1.0"))
		ranks := Get(s, 8001).Eidolons()
		require.Len(t, ranks, 1)
		assert.Equal(t, uint32(800101), ranks[0].ID)
	})

	t.Run("Fatal afterwards", func(t *testing.T) {
		s := exceltest.NewStore(t, dataset("1.1"))
		var err error
		func() {
			defer excel.Recover(&err)
			Get(s, 8001).Eidolons()
		}()
		var ref *excel.ReferenceError
		require.ErrorAs(t, err, &ref)
		assert.Equal(t, "AvatarRankConfig", ref.Table)
		assert.Equal(t, "800106", ref.Key)
	})
}

func TestByName(t *testing.T) {
	s := exceltest.NewStore(t, dataset("1.0"))

	tb := ByName(s, "Trailblazer")
	require.Len(t, tb, 2)
	assert.Equal(t, uint32(8001), tb[0].ID)
	assert.Equal(t, uint32(8002), tb[1].ID)
	assert.Empty(t, ByName(s, "Kafka"))
}

func TestStars(t *testing.T) {
	assert.Equal(t, 5, Stars("CombatPowerAvatarRarityType5"))
	assert.Equal(t, 4, Stars("CombatPowerAvatarRarityType4"))
	assert.Equal(t, 0, Stars("Unknown"))
	assert.Equal(t, 0, Stars("TypeX"))
}

func TestList(t *testing.T) {
	s := exceltest.NewStore(t, dataset("1.0"))

	n := 0
	for range List(s) {
		n++
	}
	assert.Equal(t, 3, n)

	var paths []string
	for bt := range ListBaseTypes(s) {
		paths = append(paths, bt.ID)
	}
	assert.Equal(t, []string{"Knight", "Warrior"}, paths)

	n = 0
	for range ListRanks(s) {
		n++
	}
	assert.Equal(t, 3, n)
	assert.Nil(t, GetRank(s, 1))
}
