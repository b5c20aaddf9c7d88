package avatar

import (
	"iter"
	"strings"

	"datamine/core/excel"
	"datamine/core/format"
	"datamine/core/lazy"
	"datamine/core/view"
	"datamine/feature/item"

	"github.com/spf13/cast"
)

// Avatar is a resolved playable character.
type Avatar struct {
	ID          uint32  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Rarity      int     `json:"rarity"`
	Element     string  `json:"element"`
	Energy      float64 `json:"energy"`

	store      *excel.Store
	row        *Row
	skills     lazy.Value[[][]*Skill]
	promotions lazy.Value[[]*Promotion]
}

func newAvatar(s *excel.Store, r *Row) *Avatar {
	return &Avatar{
		ID:          r.AvatarID,
		Name:        s.Text(r.AvatarName),
		Description: s.Text(r.AvatarDesc),
		Rarity:      Stars(r.Rarity),
		Element:     r.DamageType,
		Energy:      float64(r.SPNeed),
		store:       s,
		row:         r,
	}
}

// Stars extracts the star count from a rarity such as "CombatPowerAvatarRarityType5".
// Unknown rarities yield 0.
func Stars(rarity string) int {
	i := strings.LastIndex(rarity, "Type")
	if i < 0 {
		return 0
	}
	n, err := cast.ToIntE(rarity[i+len("Type"):])
	if err != nil {
		return 0
	}
	return n
}

// Path returns the avatar's path, nil if unset.
func (a *Avatar) Path() *BaseType {
	return RefBaseType(a.store, "AvatarConfig.AvatarBaseType", a.row.AvatarBaseType)
}

// Skills returns the avatar's skills, each as its levels in on-disk order.
func (a *Avatar) Skills() [][]*Skill {
	return a.skills.Get(func() [][]*Skill {
		out := make([][]*Skill, 0, len(a.row.SkillList))
		for _, id := range a.row.SkillList {
			if levels := view.GroupRef(a.store, Skills, "AvatarConfig.SkillList", id, newSkill); len(levels) > 0 {
				out = append(out, levels)
			}
		}
		return out
	})
}

// Eidolons returns the avatar's ranks in list order.
func (a *Avatar) Eidolons() []*Rank {
	return view.Refs(a.store, Ranks, "AvatarConfig.RankIDList", a.row.RankIDList, newRank)
}

// Promotions returns the avatar's ascension phases in on-disk order.
func (a *Avatar) Promotions() []*Promotion {
	return a.promotions.Get(func() []*Promotion {
		return PromotionsOf(a.store, a.ID)
	})
}

// BaseType is a resolved path.
type BaseType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func newBaseType(s *excel.Store, r *BaseTypeRow) *BaseType {
	return &BaseType{ID: r.ID, Name: s.Text(r.BaseTypeText), Description: s.Text(r.BaseTypeDesc)}
}

// Skill is one level of a resolved avatar skill.
type Skill struct {
	ID         uint32    `json:"id"`
	Level      uint32    `json:"level"`
	MaxLevel   uint32    `json:"max_level"`
	Name       string    `json:"name"`
	Tag        string    `json:"tag,omitempty"`
	Type       string    `json:"type,omitempty"`
	AttackType string    `json:"attack_type,omitempty"`
	Params     []float64 `json:"params,omitempty"`

	desc       string
	simpleDesc string
}

func newSkill(s *excel.Store, r *SkillRow) *Skill {
	return &Skill{
		ID:         r.SkillID,
		Level:      r.Level,
		MaxLevel:   r.MaxLevel,
		Name:       s.Text(r.SkillName),
		Tag:        s.Text(r.SkillTag),
		Type:       s.Text(r.SkillTypeDesc),
		AttackType: r.AttackType,
		Params:     excel.Floats(r.ParamList),
		desc:       s.Text(r.SkillDesc),
		simpleDesc: s.Text(r.SimpleSkillDesc),
	}
}

// Description renders the skill's description with its parameters.
func (k *Skill) Description(f format.Formatter) string {
	return f.Format(k.desc, k.Params)
}

// Summary renders the short description.
func (k *Skill) Summary(f format.Formatter) string {
	return f.Format(k.simpleDesc, k.Params)
}

// Rank is a resolved eidolon.
type Rank struct {
	ID     uint32      `json:"id"`
	Rank   uint32      `json:"rank"`
	Name   string      `json:"name"`
	Params []float64   `json:"params,omitempty"`
	Cost   []item.Cost `json:"cost,omitempty"`

	desc string
}

func newRank(s *excel.Store, r *RankRow) *Rank {
	return &Rank{
		ID:     r.RankID,
		Rank:   r.Rank,
		Name:   s.Text(r.Name),
		Params: excel.Floats(r.Param),
		Cost:   item.Costs(s, "AvatarRankConfig.UnlockCost", r.UnlockCost),
		desc:   s.Text(r.Desc),
	}
}

// Description renders the eidolon's description with its parameters.
func (r *Rank) Description(f format.Formatter) string {
	return f.Format(r.desc, r.Params)
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
		Cost:     item.Costs(s, "AvatarPromotionConfig.PromotionCostList", r.PromotionCostList),
		row:      r,
	}
}

// Stats are character stats at one level.
type Stats struct {
	Attack  float64 `json:"attack"`
	Defence float64 `json:"defence"`
	HP      float64 `json:"hp"`
	Speed   float64 `json:"speed"`
}

// StatsAt returns the stats at level within this phase.
func (p *Promotion) StatsAt(level uint32) Stats {
	n := float64(level) - 1
	if n < 0 {
		n = 0
	}
	r := p.row
	return Stats{
		Attack:  float64(r.AttackBase) + float64(r.AttackAdd)*n,
		Defence: float64(r.DefenceBase) + float64(r.DefenceAdd)*n,
		HP:      float64(r.HPBase) + float64(r.HPAdd)*n,
		Speed:   float64(r.SpeedBase),
	}
}

// Get returns the avatar with the given id, nil if there is none.
func Get(s *excel.Store, id uint32) *Avatar {
	return view.Get(s, Config, id, newAvatar)
}

// List iterates every avatar.
func List(s *excel.Store) iter.Seq[*Avatar] {
	return view.List(s, Config, newAvatar)
}

// ByName returns the avatars currently displayed under name. Several trailblazer
// variants share one name.
func ByName(s *excel.Store, name string) []*Avatar {
	return view.Map(s, AvatarsByName.Must(s).Get(name), newAvatar)
}

// GetBaseType returns the path with the given id, nil if there is none.
func GetBaseType(s *excel.Store, id string) *BaseType {
	return view.Get(s, BaseTypes, id, newBaseType)
}

// ListBaseTypes iterates every path.
func ListBaseTypes(s *excel.Store) iter.Seq[*BaseType] {
	return view.List(s, BaseTypes, newBaseType)
}

// RefBaseType resolves a path foreign key held by field.
func RefBaseType(s *excel.Store, field, id string) *BaseType {
	return view.Ref(s, BaseTypes, field, id, newBaseType)
}

// SkillLevels returns every level of a skill, empty for unknown skills.
func SkillLevels(s *excel.Store, skillID uint32) []*Skill {
	return view.Group(s, Skills, skillID, newSkill)
}

// GetRank returns the eidolon with the given id, nil if there is none.
func GetRank(s *excel.Store, id uint32) *Rank {
	return view.Get(s, Ranks, id, newRank)
}

// ListRanks iterates every eidolon.
func ListRanks(s *excel.Store) iter.Seq[*Rank] {
	return view.List(s, Ranks, newRank)
}

// PromotionsOf returns the ascension phases of an avatar, empty for unknown avatars.
func PromotionsOf(s *excel.Store, avatarID uint32) []*Promotion {
	return view.Group(s, Promotions, avatarID, newPromotion)
}
