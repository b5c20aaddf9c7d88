package equipment

import (
	"iter"

	"datamine/core/excel"
	"datamine/core/format"
	"datamine/core/lazy"
	"datamine/core/textmap"
	"datamine/core/view"
	"datamine/feature/avatar"
	"datamine/feature/item"
)

// Row is an EquipmentConfig record.
type Row struct {
	EquipmentID    uint32       `json:"EquipmentID"`
	EquipmentName  textmap.Hash `json:"EquipmentName"`
	Rarity         string       `json:"Rarity"`
	AvatarBaseType string       `json:"AvatarBaseType"`
	MaxPromotion   uint32       `json:"MaxPromotion"`
	MaxRank        uint32       `json:"MaxRank"`
	SkillID        uint32       `json:"SkillID"`
	ExpProvide     uint32       `json:"ExpProvide"`
	CoinCost       uint32       `json:"CoinCost"`
}

func (r Row) Key() uint32 { return r.EquipmentID }

// SkillRow is an EquipmentSkillConfig record, one per superimposition rank.
type SkillRow struct {
	SkillID   uint32        `json:"SkillID"`
	Level     uint32        `json:"Level"`
	SkillName textmap.Hash  `json:"SkillName"`
	SkillDesc textmap.Hash  `json:"SkillDesc"`
	ParamList []excel.Value `json:"ParamList"`
}

func (r SkillRow) GroupKey() uint32 { return r.SkillID }
func (r SkillRow) SubKey() uint32   { return r.Level }

// PromotionRow is an EquipmentPromotionConfig record.
type PromotionRow struct {
	EquipmentID       uint32         `json:"EquipmentID"`
	Promotion         uint32         `json:"Promotion"`
	MaxLevel          uint32         `json:"MaxLevel"`
	PromotionCostList []item.CostRow `json:"PromotionCostList"`
	BaseHP            excel.Value    `json:"BaseHP"`
	BaseHPAdd         excel.Value    `json:"BaseHPAdd"`
	BaseAttack        excel.Value    `json:"BaseAttack"`
	BaseAttackAdd     excel.Value    `json:"BaseAttackAdd"`
	BaseDefence       excel.Value    `json:"BaseDefence"`
	BaseDefenceAdd    excel.Value    `json:"BaseDefenceAdd"`
}

func (r PromotionRow) GroupKey() uint32 { return r.EquipmentID }
func (r PromotionRow) SubKey() uint32   { return r.Promotion }

var (
	Config     = excel.NewTable[uint32, Row]("EquipmentConfig")
	Skills     = excel.NewGroupTable[uint32, uint32, SkillRow]("EquipmentSkillConfig")
	Promotions = excel.NewGroupTable[uint32, uint32, PromotionRow]("EquipmentPromotionConfig")
)

// Equipment is a resolved light cone.
type Equipment struct {
	ID      uint32 `json:"id"`
	Name    string `json:"name"`
	Rarity  int    `json:"rarity"`
	MaxRank uint32 `json:"max_rank"`

	store      *excel.Store
	row        *Row
	promotions lazy.Value[[]*Promotion]
}

var rarityStars = map[string]int{
	"CombatPowerLightconeRarity3": 3,
	"CombatPowerLightconeRarity4": 4,
	"CombatPowerLightconeRarity5": 5,
}

func newEquipment(s *excel.Store, r *Row) *Equipment {
	return &Equipment{
		ID:      r.EquipmentID,
		Name:    s.Text(r.EquipmentName),
		Rarity:  rarityStars[r.Rarity],
		MaxRank: r.MaxRank,
		store:   s,
		row:     r,
	}
}

// Path returns the path the light cone is bound to.
func (e *Equipment) Path() *avatar.BaseType {
	return avatar.RefBaseType(e.store, "EquipmentConfig.AvatarBaseType", e.row.AvatarBaseType)
}

// Skill returns the superimposition ranks of the light cone's skill.
func (e *Equipment) Skill() []*Skill {
	return view.GroupRef(e.store, Skills, "EquipmentConfig.SkillID", e.row.SkillID, newSkill)
}

// Promotions returns the ascension phases in on-disk order.
func (e *Equipment) Promotions() []*Promotion {
	return e.promotions.Get(func() []*Promotion {
		return PromotionsOf(e.store, e.ID)
	})
}

// Skill is one superimposition rank.
type Skill struct {
	ID     uint32    `json:"id"`
	Rank   uint32    `json:"rank"`
	Name   string    `json:"name"`
	Params []float64 `json:"params,omitempty"`

	desc string
}

func newSkill(s *excel.Store, r *SkillRow) *Skill {
	return &Skill{
		ID:     r.SkillID,
		Rank:   r.Level,
		Name:   s.Text(r.SkillName),
		Params: excel.Floats(r.ParamList),
		desc:   s.Text(r.SkillDesc),
	}
}

// Description renders the skill's description with its parameters.
func (k *Skill) Description(f format.Formatter) string {
	return f.Format(k.desc, k.Params)
}

// Promotion is a resolved ascension phase.
type Promotion struct {
	Phase    uint32      `json:"phase"`
	MaxLevel uint32      `json:"max_level"`
	Cost     []item.Cost `json:"cost,omitempty"`

	row *PromotionRow
}

func newPromotion(s *excel.Store, r *PromotionRow) *Promotion {
	return &Promotion{
		Phase:    r.Promotion,
		MaxLevel: r.MaxLevel,
		Cost:     item.Costs(s, "EquipmentPromotionConfig.PromotionCostList", r.PromotionCostList),
		row:      r,
	}
}

// StatsAt returns the stats at level within this phase.
func (p *Promotion) StatsAt(level uint32) avatar.Stats {
	n := float64(level) - 1
	if n < 0 {
		n = 0
	}
	r := p.row
	return avatar.Stats{
		Attack:  float64(r.BaseAttack) + float64(r.BaseAttackAdd)*n,
		Defence: float64(r.BaseDefence) + float64(r.BaseDefenceAdd)*n,
		HP:      float64(r.BaseHP) + float64(r.BaseHPAdd)*n,
	}
}

// Get returns the light cone with the given id, nil if there is none.
func Get(s *excel.Store, id uint32) *Equipment {
	return view.Get(s, Config, id, newEquipment)
}

// List iterates every light cone.
func List(s *excel.Store) iter.Seq[*Equipment] {
	return view.List(s, Config, newEquipment)
}

// SkillRanks returns every rank of a light cone skill, empty for unknown skills.
func SkillRanks(s *excel.Store, skillID uint32) []*Skill {
	return view.Group(s, Skills, skillID, newSkill)
}

// PromotionsOf returns the ascension phases of a light cone, empty for unknown ids.
func PromotionsOf(s *excel.Store, equipmentID uint32) []*Promotion {
	return view.Group(s, Promotions, equipmentID, newPromotion)
}
