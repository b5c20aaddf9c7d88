package export

import "time"

// AvatarRecord is one playable character.
type AvatarRecord struct {
	ID       uint32  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name     string  `gorm:"column:name" json:"name"`
	Rarity   int     `gorm:"column:rarity" json:"rarity"`
	Element  string  `gorm:"column:element" json:"element"`
	Path     string  `gorm:"column:path" json:"path"`
	Energy   float64 `gorm:"column:energy" json:"energy"`
	Skills   int     `gorm:"column:skills" json:"skills"`
	Eidolons int     `gorm:"column:eidolons" json:"eidolons"`
	MaxLevel uint32  `gorm:"column:max_level" json:"max_level"`
}

// TableName overrides the table name.
func (AvatarRecord) TableName() string { return "avatars" }

// EquipmentRecord is one light cone.
type EquipmentRecord struct {
	ID      uint32 `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name    string `gorm:"column:name" json:"name"`
	Rarity  int    `gorm:"column:rarity" json:"rarity"`
	Path    string `gorm:"column:path" json:"path"`
	Skill   string `gorm:"column:skill" json:"skill"`
	MaxRank uint32 `gorm:"column:max_rank" json:"max_rank"`
}

// TableName overrides the table name.
func (EquipmentRecord) TableName() string { return "equipment" }

// ItemRecord is one inventory item.
type ItemRecord struct {
	ID       uint32 `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name     string `gorm:"column:name" json:"name"`
	MainType string `gorm:"column:main_type" json:"main_type"`
	SubType  string `gorm:"column:sub_type" json:"sub_type"`
	Stars    int    `gorm:"column:stars" json:"stars"`
	Source   string `gorm:"column:source" json:"source"`
}

// TableName overrides the table name.
func (ItemRecord) TableName() string { return "items" }

// MissionRecord is one main mission.
type MissionRecord struct {
	ID      uint32 `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name    string `gorm:"column:name" json:"name"`
	Type    string `gorm:"column:type" json:"type"`
	Chapter string `gorm:"column:chapter" json:"chapter"`
	Next    string `gorm:"column:next" json:"next"`
	Reward  uint32 `gorm:"column:reward_id" json:"reward_id"`
	Hcoin   uint32 `gorm:"column:hcoin" json:"hcoin"`
}

// TableName overrides the table name.
func (MissionRecord) TableName() string { return "missions" }

// FloorRecord is one challenge floor of any mode.
type FloorRecord struct {
	ID         uint32 `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name       string `gorm:"column:name" json:"name"`
	Mode       string `gorm:"column:mode;index" json:"mode"`
	GroupID    uint32 `gorm:"column:group_id;index" json:"group_id"`
	GroupName  string `gorm:"column:group_name" json:"group_name"`
	Floor      uint32 `gorm:"column:floor" json:"floor"`
	Buff       string `gorm:"column:buff" json:"buff"`
	Targets    int    `gorm:"column:targets" json:"targets"`
	Weaknesses string `gorm:"column:weaknesses" json:"weaknesses"`
	Monsters   int    `gorm:"column:monsters" json:"monsters"`
}

// TableName overrides the table name.
func (FloorRecord) TableName() string { return "challenge_floors" }

// MonsterRecord is one enemy.
type MonsterRecord struct {
	ID         uint32  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name       string  `gorm:"column:name" json:"name"`
	Rank       string  `gorm:"column:rank" json:"rank"`
	TemplateID uint32  `gorm:"column:template_id" json:"template_id"`
	HP         float64 `gorm:"column:hp" json:"hp"`
	Attack     float64 `gorm:"column:attack" json:"attack"`
	Defence    float64 `gorm:"column:defence" json:"defence"`
	Speed      float64 `gorm:"column:speed" json:"speed"`
	Skills     int     `gorm:"column:skills" json:"skills"`
}

// TableName overrides the table name.
func (MonsterRecord) TableName() string { return "monsters" }

// RunRecord is appended once per export.
type RunRecord struct {
	RunID     string    `gorm:"column:run_id;primaryKey" json:"run_id"`
	Version   string    `gorm:"column:version" json:"version"`
	Records   int       `gorm:"column:records" json:"records"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the table name.
func (RunRecord) TableName() string { return "export_runs" }
