package avatar

import (
	"datamine/core/excel"
	"datamine/core/textmap"
	"datamine/feature/item"
)

// Row is an AvatarConfig record.
type Row struct {
	AvatarID       uint32       `json:"AvatarID"`
	AvatarName     textmap.Hash `json:"AvatarName"`
	AvatarDesc     textmap.Hash `json:"AvatarDesc"`
	Rarity         string       `json:"Rarity"`
	DamageType     string       `json:"DamageType"`
	AvatarBaseType string       `json:"AvatarBaseType"`
	SPNeed         excel.Value  `json:"SPNeed"`
	SkillList      []uint32     `json:"SkillList"`
	RankIDList     []uint32     `json:"RankIDList"`
}

func (r Row) Key() uint32 { return r.AvatarID }

// BaseTypeRow is an AvatarBaseType record, keyed by path name.
type BaseTypeRow struct {
	ID           string       `json:"ID"`
	BaseTypeText textmap.Hash `json:"BaseTypeText"`
	BaseTypeDesc textmap.Hash `json:"BaseTypeDesc"`
}

func (r BaseTypeRow) Key() string { return r.ID }

// SkillRow is an AvatarSkillConfig record, one per skill level.
type SkillRow struct {
	SkillID         uint32        `json:"SkillID"`
	Level           uint32        `json:"Level"`
	MaxLevel        uint32        `json:"MaxLevel"`
	SkillName       textmap.Hash  `json:"SkillName"`
	SkillTag        textmap.Hash  `json:"SkillTag"`
	SkillTypeDesc   textmap.Hash  `json:"SkillTypeDesc"`
	SkillDesc       textmap.Hash  `json:"SkillDesc"`
	SimpleSkillDesc textmap.Hash  `json:"SimpleSkillDesc"`
	AttackType      string        `json:"AttackType"`
	ParamList       []excel.Value `json:"ParamList"`
}

func (r SkillRow) GroupKey() uint32 { return r.SkillID }
func (r SkillRow) SubKey() uint32   { return r.Level }

// RankRow is an AvatarRankConfig record.
type RankRow struct {
	RankID     uint32         `json:"RankID"`
	Rank       uint32         `json:"Rank"`
	Name       textmap.Hash   `json:"Name"`
	Desc       textmap.Hash   `json:"Desc"`
	Param      []excel.Value  `json:"Param"`
	UnlockCost []item.CostRow `json:"UnlockCost"`
}

func (r RankRow) Key() uint32 { return r.RankID }

// PromotionRow is an AvatarPromotionConfig record, one per ascension phase.
type PromotionRow struct {
	AvatarID          uint32         `json:"AvatarID"`
	Promotion         uint32         `json:"Promotion"`
	MaxLevel          uint32         `json:"MaxLevel"`
	PromotionCostList []item.CostRow `json:"PromotionCostList"`
	AttackBase        excel.Value    `json:"AttackBase"`
	AttackAdd         excel.Value    `json:"AttackAdd"`
	DefenceBase       excel.Value    `json:"DefenceBase"`
	DefenceAdd        excel.Value    `json:"DefenceAdd"`
	HPBase            excel.Value    `json:"HPBase"`
	HPAdd             excel.Value    `json:"HPAdd"`
	SpeedBase         excel.Value    `json:"SpeedBase"`
}

func (r PromotionRow) GroupKey() uint32 { return r.AvatarID }
func (r PromotionRow) SubKey() uint32   { return r.Promotion }

var (
	Config     = excel.NewTable[uint32, Row]("AvatarConfig")
	BaseTypes  = excel.NewTable[string, BaseTypeRow]("AvatarBaseType")
	Skills     = excel.NewGroupTable[uint32, uint32, SkillRow]("AvatarSkillConfig")
	Ranks      = excel.NewTable[uint32, RankRow]("AvatarRankConfig")
	Promotions = excel.NewGroupTable[uint32, uint32, PromotionRow]("AvatarPromotionConfig")

	AvatarsByName = excel.NewNameIndex("AvatarsByName",
		func(r *Row) textmap.Hash { return r.AvatarName },
		excel.Source[uint32, Row](Config))
)
