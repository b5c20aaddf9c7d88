package allowlist

// Known lists every reference gap observed in published dumps. Ids not listed here stay
// fatal when they fail to resolve.
var Known = MustNew([]Entry{
	{
		Field: "MainMission.NextMainMissionList",
		ID:    "1000303",
		Until: "1.1",
		Note:  "follow-up mission removed from the table before it was unlinked",
	},
	{
		Field: "MainMission.RewardID",
		ID:    "1010101",
		Until: "1.0",
		Note:  "reward referenced by the launch tutorial chain, never exported",
	},
	{
		Field: "MonsterConfig.SkillList",
		ID:    "1004021",
		Since: "1.2",
		Until: "1.3",
		Note:  "skill row dropped while the monster kept the reference",
	},
	{
		Field: "ChallengeStoryMazeConfig.MazeBuffID",
		ID:    "3031101",
		Since: "1.6",
		Until: "1.6",
		Note:  "story-mode buff shipped only in the client bundle",
	},
	{
		Field: "AvatarConfig.RankIDList",
		ID:    "800106",
		Until: "1.0",
		Note:  "placeholder eidolon for an unreleased trailblazer path",
	},
})
