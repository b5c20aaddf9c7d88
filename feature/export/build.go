package export

import (
	"strconv"
	"strings"

	"datamine/core/excel"
	"datamine/feature/avatar"
	"datamine/feature/challenge"
	"datamine/feature/equipment"
	"datamine/feature/item"
	"datamine/feature/mission"
	"datamine/feature/monster"
)

func avatarRecord(a *avatar.Avatar) AvatarRecord {
	rec := AvatarRecord{
		ID:       a.ID,
		Name:     a.Name,
		Rarity:   a.Rarity,
		Element:  a.Element,
		Energy:   a.Energy,
		Skills:   len(a.Skills()),
		Eidolons: len(a.Eidolons()),
	}
	if p := a.Path(); p != nil {
		rec.Path = p.Name
	}
	if phases := a.Promotions(); len(phases) > 0 {
		rec.MaxLevel = phases[len(phases)-1].MaxLevel
	}
	return rec
}

func equipmentRecord(e *equipment.Equipment) EquipmentRecord {
	rec := EquipmentRecord{ID: e.ID, Name: e.Name, Rarity: e.Rarity, MaxRank: e.MaxRank}
	if p := e.Path(); p != nil {
		rec.Path = p.Name
	}
	if ranks := e.Skill(); len(ranks) > 0 {
		rec.Skill = ranks[0].Name
	}
	return rec
}

func itemRecord(i *item.Item) ItemRecord {
	return ItemRecord{
		ID:       i.ID,
		Name:     i.Name,
		MainType: i.MainType,
		SubType:  i.SubType,
		Stars:    i.Stars(),
		Source:   i.Source,
	}
}

func missionRecord(m *mission.Mission) MissionRecord {
	rec := MissionRecord{ID: m.ID, Name: m.Name, Type: m.Type}
	if ch := m.Chapter(); ch != nil {
		rec.Chapter = ch.Name
	}
	next := m.Next()
	ids := make([]uint32, len(next))
	for i, n := range next {
		ids[i] = n.ID
	}
	rec.Next = joinIDs(ids)
	if r := m.Reward(); r != nil {
		rec.Reward = r.ID
		rec.Hcoin = r.Hcoin
		// Force the reward's items so broken bundles fail the export.
		_ = r.Items()
	}
	return rec
}

func floorRecord(f *challenge.Floor) FloorRecord {
	rec := FloorRecord{
		ID:         f.ID,
		Name:       f.Name,
		Mode:       string(f.Mode),
		Floor:      f.Floor,
		Targets:    len(f.Targets()),
		Weaknesses: strings.Join(append(append([]string{}, f.Weaknesses[0]...), f.Weaknesses[1]...), ","),
		Monsters:   len(f.Monsters(1)) + len(f.Monsters(2)),
	}
	if g := f.Group(); g != nil {
		rec.GroupID = g.ID
		rec.GroupName = g.Name
	}
	if levels := f.Buff(); len(levels) > 0 {
		rec.Buff = levels[0].Name
	}
	return rec
}

func monsterRecord(m *monster.Monster) MonsterRecord {
	rec := MonsterRecord{ID: m.ID, Name: m.Name, Skills: len(m.Skills())}
	if t := m.Template(); t != nil {
		rec.TemplateID = t.ID
		rec.Rank = t.Rank
	}
	st := m.Stats()
	rec.HP, rec.Attack, rec.Defence, rec.Speed = st.HP, st.Attack, st.Defence, st.Speed
	return rec
}

func joinIDs(ids []uint32) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ",")
}

// BuildAvatars returns the records of every avatar.
func BuildAvatars(s *excel.Store) []AvatarRecord {
	var out []AvatarRecord
	for a := range avatar.List(s) {
		out = append(out, avatarRecord(a))
	}
	return out
}

// BuildEquipment returns the records of every light cone.
func BuildEquipment(s *excel.Store) []EquipmentRecord {
	var out []EquipmentRecord
	for e := range equipment.List(s) {
		out = append(out, equipmentRecord(e))
	}
	return out
}

// BuildItems returns the records of every item.
func BuildItems(s *excel.Store) []ItemRecord {
	var out []ItemRecord
	for i := range item.List(s) {
		out = append(out, itemRecord(i))
	}
	return out
}

// BuildMissions returns the records of every main mission.
func BuildMissions(s *excel.Store) []MissionRecord {
	var out []MissionRecord
	for m := range mission.List(s) {
		out = append(out, missionRecord(m))
	}
	return out
}

// BuildFloors returns the records of every challenge floor.
func BuildFloors(s *excel.Store) []FloorRecord {
	var out []FloorRecord
	for f := range challenge.ListFloors(s) {
		out = append(out, floorRecord(f))
	}
	return out
}

// BuildMonsters returns the records of every monster.
func BuildMonsters(s *excel.Store) []MonsterRecord {
	var out []MonsterRecord
	for m := range monster.List(s) {
		out = append(out, monsterRecord(m))
	}
	return out
}
