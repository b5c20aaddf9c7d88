package integrity

import (
	"datamine/core/excel"
	"datamine/feature/avatar"
	"datamine/feature/challenge"
	"datamine/feature/equipment"
	"datamine/feature/integrity/checks"
	"datamine/feature/mission"
	"datamine/feature/monster"
	"datamine/feature/reward"
)

func keys[R any](src excel.Source[uint32, R]) func(s *excel.Store) []uint32 {
	return func(s *excel.Store) []uint32 {
		return excel.MustLoad(s, src).Keys()
	}
}

// DefaultWalkers returns a walker for every entity kind with outgoing references.
func DefaultWalkers() []checks.Walker {
	return []checks.Walker{
		checks.Walk("avatar", keys[avatar.Row](avatar.Config), func(s *excel.Store, id uint32) {
			a := avatar.Get(s, id)
			a.Path()
			a.Skills()
			a.Eidolons()
			a.Promotions()
		}),
		checks.Walk("avatar_rank", keys[avatar.RankRow](avatar.Ranks), func(s *excel.Store, id uint32) {
			avatar.GetRank(s, id)
		}),
		checks.Walk("equipment", keys[equipment.Row](equipment.Config), func(s *excel.Store, id uint32) {
			e := equipment.Get(s, id)
			e.Path()
			e.Skill()
			e.Promotions()
		}),
		checks.Walk("mission", keys[mission.MainRow](mission.Main), func(s *excel.Store, id uint32) {
			m := mission.Get(s, id)
			m.Chapter()
			m.Next()
			if r := m.Reward(); r != nil {
				r.Items()
			}
			for _, r := range m.SubRewards() {
				r.Items()
			}
		}),
		checks.Walk("reward", keys[reward.Row](reward.Table), func(s *excel.Store, id uint32) {
			reward.Get(s, id).Items()
		}),
		checks.Walk("monster", keys[monster.Row](monster.Config), func(s *excel.Store, id uint32) {
			m := monster.Get(s, id)
			m.Template()
			m.Skills()
		}),
		checks.Walk("challenge_group", keys[challenge.GroupRow](challenge.Groups), func(s *excel.Store, id uint32) {
			g := challenge.GetGroup(s, id)
			g.Buff()
			g.Floors()
			for _, l := range g.RewardLines() {
				l.Reward()
			}
		}),
		checks.Walk("challenge_floor", keys[challenge.FloorRow](challenge.Floors), func(s *excel.Store, id uint32) {
			f := challenge.GetFloor(s, id)
			f.Group()
			f.Buff()
			for _, t := range f.Targets() {
				t.Reward()
			}
			f.Monsters(1)
			f.Monsters(2)
		}),
	}
}
