package challenge

import (
	"datamine/core/excel"
	"datamine/core/textmap"
)

// GroupRow is a record of any Challenge*GroupConfig table.
type GroupRow struct {
	GroupID           uint32       `json:"GroupID"`
	GroupName         textmap.Hash `json:"GroupName"`
	RewardLineGroupID uint32       `json:"RewardLineGroupID"`
	PreMissionID      uint32       `json:"PreMissionID"`
	MazeBuffID        uint32       `json:"MazeBuffID"`
	ScheduleDataID    uint32       `json:"ScheduleDataID"`
}

func (r GroupRow) Key() uint32 { return r.GroupID }

// FloorRow is a record of any Challenge*MazeConfig table.
type FloorRow struct {
	ID                uint32       `json:"ID"`
	Name              textmap.Hash `json:"Name"`
	GroupID           uint32       `json:"GroupID"`
	Floor             uint32       `json:"Floor"`
	MapEntranceID     uint32       `json:"MapEntranceID"`
	ChallengeTargetID []uint32     `json:"ChallengeTargetID"`
	MazeBuffID        uint32       `json:"MazeBuffID"`
	DamageType1       []string     `json:"DamageType1"`
	DamageType2       []string     `json:"DamageType2"`
	NpcMonsterIDList1 []uint32     `json:"NpcMonsterIDList1"`
	NpcMonsterIDList2 []uint32     `json:"NpcMonsterIDList2"`
}

func (r FloorRow) Key() uint32 { return r.ID }

// TargetRow is a ChallengeTargetConfig record.
type TargetRow struct {
	ID                    uint32       `json:"ID"`
	ChallengeTargetType   string       `json:"ChallengeTargetType"`
	ChallengeTargetName   textmap.Hash `json:"ChallengeTargetName"`
	ChallengeTargetParam1 uint32       `json:"ChallengeTargetParam1"`
	RewardID              uint32       `json:"RewardID"`
}

func (r TargetRow) Key() uint32 { return r.ID }

// RewardLineRow is a ChallengeMazeRewardLine record: the reward for reaching a star
// count within a reward line group.
type RewardLineRow struct {
	GroupID   uint32 `json:"GroupID"`
	StarCount uint32 `json:"StarCount"`
	RewardID  uint32 `json:"RewardID"`
}

func (r RewardLineRow) GroupKey() uint32 { return r.GroupID }
func (r RewardLineRow) SubKey() uint32   { return r.StarCount }

var (
	MemoryGroups = excel.NewTable[uint32, GroupRow]("ChallengeGroupConfig")
	StoryGroups  = excel.NewTable[uint32, GroupRow]("ChallengeStoryGroupConfig")
	BossGroups   = excel.NewTable[uint32, GroupRow]("ChallengeBossGroupConfig")

	MemoryFloors = excel.NewTable[uint32, FloorRow]("ChallengeMazeConfig")
	StoryFloors  = excel.NewTable[uint32, FloorRow]("ChallengeStoryMazeConfig")
	BossFloors   = excel.NewTable[uint32, FloorRow]("ChallengeBossMazeConfig")

	Targets     = excel.NewTable[uint32, TargetRow]("ChallengeTargetConfig")
	RewardLines = excel.NewGroupTable[uint32, uint32, RewardLineRow]("ChallengeMazeRewardLine")

	Groups = excel.NewUnion[uint32, GroupRow]("Groups", MemoryGroups, StoryGroups, BossGroups)
	Floors = excel.NewUnion[uint32, FloorRow]("Floors", MemoryFloors, StoryFloors, BossFloors)

	// FloorsByGroup groups every mode's floors by GroupID.
	FloorsByGroup = excel.NewGroupBy("FloorsByGroup",
		func(r *FloorRow) uint32 { return r.GroupID },
		excel.Source[uint32, FloorRow](Floors))
)
