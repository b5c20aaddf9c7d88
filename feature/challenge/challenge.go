package challenge

import (
	"iter"

	"datamine/core/excel"
	"datamine/core/lazy"
	"datamine/core/view"
	"datamine/feature/buff"
	"datamine/feature/monster"
	"datamine/feature/reward"
)

// Mode is a challenge mode.
type Mode string

const (
	ModeMemory Mode = "memory"
	ModeStory  Mode = "story"
	ModeBoss   Mode = "boss"
)

var groupModes = map[string]Mode{
	"ChallengeGroupConfig":      ModeMemory,
	"ChallengeStoryGroupConfig": ModeStory,
	"ChallengeBossGroupConfig":  ModeBoss,
}

var floorModes = map[string]Mode{
	"ChallengeMazeConfig":      ModeMemory,
	"ChallengeStoryMazeConfig": ModeStory,
	"ChallengeBossMazeConfig":  ModeBoss,
}

// Group is a resolved challenge period.
type Group struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
	Mode Mode   `json:"mode"`

	store  *excel.Store
	row    *GroupRow
	table  string
	floors lazy.Value[[]*Floor]
	lines  lazy.Value[[]*RewardLine]
}

func newGroup(s *excel.Store, r *GroupRow) *Group {
	table := Groups.Origin(s, r)
	return &Group{
		ID:    r.GroupID,
		Name:  s.Text(r.GroupName),
		Mode:  groupModes[table],
		store: s,
		row:   r,
		table: table,
	}
}

// Buff returns the levels of the period-wide buff, nil if none.
func (g *Group) Buff() []*buff.Buff {
	return buff.Ref(g.store, g.table+".MazeBuffID", g.row.MazeBuffID)
}

// Floors returns the period's floors in on-disk order.
func (g *Group) Floors() []*Floor {
	return g.floors.Get(func() []*Floor {
		return FloorsOf(g.store, g.ID)
	})
}

// RewardLines returns the star-count rewards of the period in on-disk order.
func (g *Group) RewardLines() []*RewardLine {
	return g.lines.Get(func() []*RewardLine {
		return view.GroupRef(g.store, RewardLines, g.table+".RewardLineGroupID", g.row.RewardLineGroupID, newRewardLine)
	})
}

// Floor is a resolved challenge stage.
type Floor struct {
	ID    uint32 `json:"id"`
	Name  string `json:"name"`
	Floor uint32 `json:"floor"`
	Mode  Mode   `json:"mode"`
	// Weaknesses lists the suggested elements per half.
	Weaknesses [2][]string `json:"weaknesses"`

	store *excel.Store
	row   *FloorRow
	table string
}

func newFloor(s *excel.Store, r *FloorRow) *Floor {
	table := Floors.Origin(s, r)
	return &Floor{
		ID:         r.ID,
		Name:       s.Text(r.Name),
		Floor:      r.Floor,
		Mode:       floorModes[table],
		Weaknesses: [2][]string{r.DamageType1, r.DamageType2},
		store:      s,
		row:        r,
		table:      table,
	}
}

// Group returns the period the floor belongs to.
func (f *Floor) Group() *Group {
	return view.Ref(f.store, Groups, f.table+".GroupID", f.row.GroupID, newGroup)
}

// Buff returns the levels of the floor's buff, nil if none.
func (f *Floor) Buff() []*buff.Buff {
	return buff.Ref(f.store, f.table+".MazeBuffID", f.row.MazeBuffID)
}

// Targets returns the star objectives in list order.
func (f *Floor) Targets() []*Target {
	return view.Refs(f.store, Targets, f.table+".ChallengeTargetID", f.row.ChallengeTargetID, newTarget)
}

// Monsters returns the enemies of one half (1 or 2) in list order.
func (f *Floor) Monsters(half int) []*monster.Monster {
	switch half {
	case 1:
		return monster.Refs(f.store, f.table+".NpcMonsterIDList1", f.row.NpcMonsterIDList1)
	case 2:
		return monster.Refs(f.store, f.table+".NpcMonsterIDList2", f.row.NpcMonsterIDList2)
	}
	return nil
}

// Target is a resolved star objective.
type Target struct {
	ID    uint32 `json:"id"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	Param uint32 `json:"param"`

	store *excel.Store
	row   *TargetRow
}

func newTarget(s *excel.Store, r *TargetRow) *Target {
	return &Target{
		ID:    r.ID,
		Type:  r.ChallengeTargetType,
		Name:  s.Text(r.ChallengeTargetName),
		Param: r.ChallengeTargetParam1,
		store: s,
		row:   r,
	}
}

// Reward returns the objective's reward, nil if none.
func (t *Target) Reward() *reward.Reward {
	return reward.Ref(t.store, "ChallengeTargetConfig.RewardID", t.row.RewardID)
}

// RewardLine is the reward for reaching a star count.
type RewardLine struct {
	GroupID uint32 `json:"group_id"`
	Stars   uint32 `json:"stars"`

	store *excel.Store
	row   *RewardLineRow
}

func newRewardLine(s *excel.Store, r *RewardLineRow) *RewardLine {
	return &RewardLine{GroupID: r.GroupID, Stars: r.StarCount, store: s, row: r}
}

// Reward returns the line's reward, nil if none.
func (l *RewardLine) Reward() *reward.Reward {
	return reward.Ref(l.store, "ChallengeMazeRewardLine.RewardID", l.row.RewardID)
}

// GetGroup returns the period with the given id in any mode, nil if there is none.
func GetGroup(s *excel.Store, id uint32) *Group {
	return view.Get(s, Groups, id, newGroup)
}

// ListGroups iterates every period of every mode.
func ListGroups(s *excel.Store) iter.Seq[*Group] {
	return view.List(s, Groups, newGroup)
}

// GetFloor returns the floor with the given id in any mode, nil if there is none.
func GetFloor(s *excel.Store, id uint32) *Floor {
	return view.Get(s, Floors, id, newFloor)
}

// ListFloors iterates every floor of every mode.
func ListFloors(s *excel.Store) iter.Seq[*Floor] {
	return view.List(s, Floors, newFloor)
}

// FloorsOf returns the floors of a period, empty for unknown periods.
func FloorsOf(s *excel.Store, groupID uint32) []*Floor {
	return view.Map(s, FloorsByGroup.Must(s).Get(groupID), newFloor)
}

// GetTarget returns the objective with the given id, nil if there is none.
func GetTarget(s *excel.Store, id uint32) *Target {
	return view.Get(s, Targets, id, newTarget)
}

// ListTargets iterates every objective.
func ListTargets(s *excel.Store) iter.Seq[*Target] {
	return view.List(s, Targets, newTarget)
}

// RewardLinesOf returns the reward lines of a reward line group, empty for unknown ids.
func RewardLinesOf(s *excel.Store, lineGroupID uint32) []*RewardLine {
	return view.Group(s, RewardLines, lineGroupID, newRewardLine)
}

// ListRewardLines iterates every reward line.
func ListRewardLines(s *excel.Store) iter.Seq[*RewardLine] {
	return view.ListGroups(s, RewardLines, newRewardLine)
}
