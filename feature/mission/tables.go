package mission

import (
	"datamine/core/excel"
	"datamine/core/textmap"
)

// MainRow is a MainMission record.
type MainRow struct {
	MainMissionID       uint32       `json:"MainMissionID"`
	Type                string       `json:"Type"`
	Name                textmap.Hash `json:"Name"`
	ChapterID           uint32       `json:"ChapterID"`
	WorldID             uint32       `json:"WorldID"`
	NextMainMissionList []uint32     `json:"NextMainMissionList"`
	RewardID            uint32       `json:"RewardID"`
	SubRewardList       []uint32     `json:"SubRewardList"`
}

func (r MainRow) Key() uint32 { return r.MainMissionID }

// SubRow is a SubMission record.
type SubRow struct {
	SubMissionID   uint32       `json:"SubMissionID"`
	TargetText     textmap.Hash `json:"TargetText"`
	DescrptionText textmap.Hash `json:"DescrptionText"`
}

func (r SubRow) Key() uint32 { return r.SubMissionID }

// ChapterRow is a MissionChapterConfig record.
type ChapterRow struct {
	ID          uint32       `json:"ID"`
	ChapterName textmap.Hash `json:"ChapterName"`
	StageName   textmap.Hash `json:"StageName"`
	ChapterDesc textmap.Hash `json:"ChapterDesc"`
	ChapterType string       `json:"ChapterType"`
}

func (r ChapterRow) Key() uint32 { return r.ID }

var (
	Main     = excel.NewTable[uint32, MainRow]("MainMission")
	Sub      = excel.NewTable[uint32, SubRow]("SubMission")
	Chapters = excel.NewTable[uint32, ChapterRow]("MissionChapterConfig", "ChapterConfig")

	// ChapterMissions groups main missions by ChapterID.
	ChapterMissions = excel.NewGroupBy("ChapterMissions",
		func(r *MainRow) uint32 { return r.ChapterID },
		excel.Source[uint32, MainRow](Main))

	MissionsByName = excel.NewNameIndex("MissionsByName",
		func(r *MainRow) textmap.Hash { return r.Name },
		excel.Source[uint32, MainRow](Main))
)
