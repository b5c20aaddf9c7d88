package mission

import (
	"iter"

	"datamine/core/excel"
	"datamine/core/lazy"
	"datamine/core/view"
	"datamine/feature/reward"
)

// Mission is a resolved main mission.
type Mission struct {
	ID      uint32 `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	WorldID uint32 `json:"world_id,omitempty"`

	store *excel.Store
	row   *MainRow
}

func newMission(s *excel.Store, r *MainRow) *Mission {
	return &Mission{ID: r.MainMissionID, Name: s.Text(r.Name), Type: r.Type, WorldID: r.WorldID, store: s, row: r}
}

// Chapter returns the chapter the mission belongs to, nil if none.
func (m *Mission) Chapter() *Chapter {
	return view.Ref(m.store, Chapters, "MainMission.ChapterID", m.row.ChapterID, newChapter)
}

// Next returns the missions unlocked by this one.
func (m *Mission) Next() []*Mission {
	return view.Refs(m.store, Main, "MainMission.NextMainMissionList", m.row.NextMainMissionList, newMission)
}

// Reward returns the completion reward, nil if none.
func (m *Mission) Reward() *reward.Reward {
	return reward.Ref(m.store, "MainMission.RewardID", m.row.RewardID)
}

// SubRewards returns the rewards granted along the way.
func (m *Mission) SubRewards() []*reward.Reward {
	out := make([]*reward.Reward, 0, len(m.row.SubRewardList))
	for _, id := range m.row.SubRewardList {
		if r := reward.Ref(m.store, "MainMission.SubRewardList", id); r != nil {
			out = append(out, r)
		}
	}
	return out
}

// SubMission is a resolved mission step.
type SubMission struct {
	ID          uint32 `json:"id"`
	Target      string `json:"target"`
	Description string `json:"description,omitempty"`
}

func newSubMission(s *excel.Store, r *SubRow) *SubMission {
	return &SubMission{ID: r.SubMissionID, Target: s.Text(r.TargetText), Description: s.Text(r.DescrptionText)}
}

// Chapter is a resolved story chapter.
type Chapter struct {
	ID          uint32 `json:"id"`
	Name        string `json:"name"`
	Stage       string `json:"stage,omitempty"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`

	store    *excel.Store
	missions lazy.Value[[]*Mission]
}

func newChapter(s *excel.Store, r *ChapterRow) *Chapter {
	return &Chapter{
		ID:          r.ID,
		Name:        s.Text(r.ChapterName),
		Stage:       s.Text(r.StageName),
		Description: s.Text(r.ChapterDesc),
		Type:        r.ChapterType,
		store:       s,
	}
}

// Missions returns the chapter's main missions in on-disk order.
func (c *Chapter) Missions() []*Mission {
	return c.missions.Get(func() []*Mission {
		return InChapter(c.store, c.ID)
	})
}

// Get returns the main mission with the given id, nil if there is none.
func Get(s *excel.Store, id uint32) *Mission {
	return view.Get(s, Main, id, newMission)
}

// List iterates every main mission.
func List(s *excel.Store) iter.Seq[*Mission] {
	return view.List(s, Main, newMission)
}

// ByName returns the main missions currently displayed under name.
func ByName(s *excel.Store, name string) []*Mission {
	return view.Map(s, MissionsByName.Must(s).Get(name), newMission)
}

// InChapter returns the main missions of a chapter, empty for unknown chapters.
func InChapter(s *excel.Store, chapterID uint32) []*Mission {
	return view.Map(s, ChapterMissions.Must(s).Get(chapterID), newMission)
}

// GetSub returns the sub mission with the given id, nil if there is none.
func GetSub(s *excel.Store, id uint32) *SubMission {
	return view.Get(s, Sub, id, newSubMission)
}

// ListSub iterates every sub mission.
func ListSub(s *excel.Store) iter.Seq[*SubMission] {
	return view.List(s, Sub, newSubMission)
}

// GetChapter returns the chapter with the given id, nil if there is none.
func GetChapter(s *excel.Store, id uint32) *Chapter {
	return view.Get(s, Chapters, id, newChapter)
}

// ListChapters iterates every chapter.
func ListChapters(s *excel.Store) iter.Seq[*Chapter] {
	return view.List(s, Chapters, newChapter)
}
