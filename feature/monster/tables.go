package monster

import (
	"datamine/core/excel"
	"datamine/core/textmap"
)

// Row is a MonsterConfig record.
type Row struct {
	MonsterID           uint32       `json:"MonsterID"`
	MonsterTemplateID   uint32       `json:"MonsterTemplateID"`
	MonsterName         textmap.Hash `json:"MonsterName"`
	MonsterIntroduction textmap.Hash `json:"MonsterIntroduction"`
	HardLevelGroup      uint32       `json:"HardLevelGroup"`
	EliteGroup          uint32       `json:"EliteGroup"`
	AttackModifyRatio   excel.Value  `json:"AttackModifyRatio"`
	DefenceModifyRatio  excel.Value  `json:"DefenceModifyRatio"`
	HPModifyRatio       excel.Value  `json:"HPModifyRatio"`
	SpeedModifyRatio    excel.Value  `json:"SpeedModifyRatio"`
	StanceWeakList      []string     `json:"StanceWeakList"`
	SkillList           []uint32     `json:"SkillList"`
}

func (r Row) Key() uint32 { return r.MonsterID }

// TemplateRow is a MonsterTemplateConfig record.
type TemplateRow struct {
	MonsterTemplateID uint32       `json:"MonsterTemplateID"`
	TemplateGroupID   uint32       `json:"TemplateGroupID"`
	MonsterName       textmap.Hash `json:"MonsterName"`
	Rank              string       `json:"Rank"`
	AttackBase        excel.Value  `json:"AttackBase"`
	DefenceBase       excel.Value  `json:"DefenceBase"`
	HPBase            excel.Value  `json:"HPBase"`
	SpeedBase         excel.Value  `json:"SpeedBase"`
	StanceCount       uint32       `json:"StanceCount"`
}

func (r TemplateRow) Key() uint32 { return r.MonsterTemplateID }

// SkillRow is a MonsterSkillConfig record.
type SkillRow struct {
	SkillID       uint32        `json:"SkillID"`
	SkillName     textmap.Hash  `json:"SkillName"`
	SkillDesc     textmap.Hash  `json:"SkillDesc"`
	SkillTypeDesc textmap.Hash  `json:"SkillTypeDesc"`
	DamageType    string        `json:"DamageType"`
	ParamList     []excel.Value `json:"ParamList"`
}

func (r SkillRow) Key() uint32 { return r.SkillID }

var (
	Config    = excel.NewTable[uint32, Row]("MonsterConfig")
	Templates = excel.NewTable[uint32, TemplateRow]("MonsterTemplateConfig")
	Skills    = excel.NewTable[uint32, SkillRow]("MonsterSkillConfig")

	// TemplateFamilies groups templates by TemplateGroupID.
	TemplateFamilies = excel.NewGroupBy("TemplateFamilies",
		func(r *TemplateRow) uint32 { return r.TemplateGroupID },
		excel.Source[uint32, TemplateRow](Templates))
)
