package monster

import (
	"iter"

	"datamine/core/excel"
	"datamine/core/format"
	"datamine/core/lazy"
	"datamine/core/view"
)

// Monster is a resolved enemy.
type Monster struct {
	ID           uint32   `json:"id"`
	Name         string   `json:"name"`
	Introduction string   `json:"introduction,omitempty"`
	WeakTo       []string `json:"weak_to,omitempty"`

	store *excel.Store
	row   *Row
}

func newMonster(s *excel.Store, r *Row) *Monster {
	return &Monster{
		ID:           r.MonsterID,
		Name:         s.Text(r.MonsterName),
		Introduction: s.Text(r.MonsterIntroduction),
		WeakTo:       r.StanceWeakList,
		store:        s,
		row:          r,
	}
}

// Template returns the monster's template, nil if it has none.
func (m *Monster) Template() *Template {
	return view.Ref(m.store, Templates, "MonsterConfig.MonsterTemplateID", m.row.MonsterTemplateID, newTemplate)
}

// Skills returns the monster's skills in list order.
func (m *Monster) Skills() []*Skill {
	return view.Refs(m.store, Skills, "MonsterConfig.SkillList", m.row.SkillList, newSkill)
}

// Stats are base values before level scaling.
type Stats struct {
	Attack  float64 `json:"attack"`
	Defence float64 `json:"defence"`
	HP      float64 `json:"hp"`
	Speed   float64 `json:"speed"`
}

// Stats returns the template's base stats scaled by the monster's ratios. Monsters
// without a template have zero stats.
func (m *Monster) Stats() Stats {
	t := m.Template()
	if t == nil {
		return Stats{}
	}
	return Stats{
		Attack:  t.Base.Attack * float64(m.row.AttackModifyRatio),
		Defence: t.Base.Defence * float64(m.row.DefenceModifyRatio),
		HP:      t.Base.HP * float64(m.row.HPModifyRatio),
		Speed:   t.Base.Speed * float64(m.row.SpeedModifyRatio),
	}
}

// Template is a resolved monster template.
type Template struct {
	ID        uint32 `json:"id"`
	GroupID   uint32 `json:"group_id"`
	Name      string `json:"name"`
	Rank      string `json:"rank"`
	Base      Stats  `json:"base"`
	Toughness uint32 `json:"toughness"`

	store  *excel.Store
	family lazy.Value[[]*Template]
}

func newTemplate(s *excel.Store, r *TemplateRow) *Template {
	return &Template{
		ID:      r.MonsterTemplateID,
		GroupID: r.TemplateGroupID,
		Name:    s.Text(r.MonsterName),
		Rank:    r.Rank,
		Base: Stats{
			Attack:  float64(r.AttackBase),
			Defence: float64(r.DefenceBase),
			HP:      float64(r.HPBase),
			Speed:   float64(r.SpeedBase),
		},
		Toughness: r.StanceCount,
		store:     s,
	}
}

// Family returns every template sharing this template's group, itself included, in
// on-disk order. Ungrouped templates have no family.
func (t *Template) Family() []*Template {
	return t.family.Get(func() []*Template {
		return Family(t.store, t.GroupID)
	})
}

// Skill is a resolved monster skill.
type Skill struct {
	ID         uint32    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type,omitempty"`
	DamageType string    `json:"damage_type,omitempty"`
	Params     []float64 `json:"params,omitempty"`

	desc string
}

func newSkill(s *excel.Store, r *SkillRow) *Skill {
	return &Skill{
		ID:         r.SkillID,
		Name:       s.Text(r.SkillName),
		Type:       s.Text(r.SkillTypeDesc),
		DamageType: r.DamageType,
		Params:     excel.Floats(r.ParamList),
		desc:       s.Text(r.SkillDesc),
	}
}

// Description renders the skill's description with its parameters.
func (k *Skill) Description(f format.Formatter) string {
	return f.Format(k.desc, k.Params)
}

// Get returns the monster with the given id, nil if there is none.
func Get(s *excel.Store, id uint32) *Monster {
	return view.Get(s, Config, id, newMonster)
}

// List iterates every monster.
func List(s *excel.Store) iter.Seq[*Monster] {
	return view.List(s, Config, newMonster)
}

// Ref resolves a monster foreign key held by field.
func Ref(s *excel.Store, field string, id uint32) *Monster {
	return view.Ref(s, Config, field, id, newMonster)
}

// Refs resolves a list of monster foreign keys held by field.
func Refs(s *excel.Store, field string, ids []uint32) []*Monster {
	return view.Refs(s, Config, field, ids, newMonster)
}

// GetTemplate returns the template with the given id, nil if there is none.
func GetTemplate(s *excel.Store, id uint32) *Template {
	return view.Get(s, Templates, id, newTemplate)
}

// ListTemplates iterates every template.
func ListTemplates(s *excel.Store) iter.Seq[*Template] {
	return view.List(s, Templates, newTemplate)
}

// Family returns the templates of a template group, empty for unknown groups.
func Family(s *excel.Store, groupID uint32) []*Template {
	return view.Map(s, TemplateFamilies.Must(s).Get(groupID), newTemplate)
}

// GetSkill returns the skill with the given id, nil if there is none.
func GetSkill(s *excel.Store, id uint32) *Skill {
	return view.Get(s, Skills, id, newSkill)
}

// ListSkills iterates every monster skill.
func ListSkills(s *excel.Store) iter.Seq[*Skill] {
	return view.List(s, Skills, newSkill)
}
