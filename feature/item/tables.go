package item

import (
	"datamine/core/excel"
	"datamine/core/textmap"
)

// Row is a record of any ItemConfig* table.
type Row struct {
	ID                  uint32       `json:"ID"`
	ItemMainType        string       `json:"ItemMainType"`
	ItemSubType         string       `json:"ItemSubType"`
	InventoryDisplayTag uint32       `json:"InventoryDisplayTag"`
	Rarity              string       `json:"Rarity"`
	PurposeType         uint32       `json:"PurposeType"`
	ItemName            textmap.Hash `json:"ItemName"`
	ItemDesc            textmap.Hash `json:"ItemDesc"`
	ItemBGDesc          textmap.Hash `json:"ItemBGDesc"`
	PileLimit           uint32       `json:"PileLimit"`
}

func (r Row) Key() uint32 { return r.ID }

// CostRow is one (item, amount) pair embedded in other tables.
type CostRow struct {
	ItemID  uint32 `json:"ItemID"`
	ItemNum uint32 `json:"ItemNum"`
}

var (
	Config          = excel.NewTable[uint32, Row]("ItemConfig")
	AvatarConfig    = excel.NewTable[uint32, Row]("ItemConfigAvatar")
	AvatarRank      = excel.NewTable[uint32, Row]("ItemConfigAvatarRank")
	EquipmentConfig = excel.NewTable[uint32, Row]("ItemConfigEquipment")
	RelicConfig     = excel.NewTable[uint32, Row]("ItemConfigRelic")
	BookConfig      = excel.NewTable[uint32, Row]("ItemConfigBook")

	// Items is every item table, ItemConfig first.
	Items = excel.NewUnion[uint32, Row]("Items",
		Config, AvatarConfig, AvatarRank, EquipmentConfig, RelicConfig, BookConfig)

	ItemsByName = excel.NewNameIndex("ItemsByName",
		func(r *Row) textmap.Hash { return r.ItemName },
		excel.Source[uint32, Row](Items))
)
