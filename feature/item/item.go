package item

import (
	"iter"

	"datamine/core/excel"
	"datamine/core/view"
)

// Item is a resolved item.
type Item struct {
	ID          uint32 `json:"id"`
	Name        string `json:"name"`
	MainType    string `json:"main_type"`
	SubType     string `json:"sub_type"`
	Rarity      string `json:"rarity"`
	PurposeType uint32 `json:"purpose_type"`
	PileLimit   uint32 `json:"pile_limit"`
	// Source is the table the item was read from.
	Source string `json:"source"`

	store *excel.Store
	row   *Row
}

func newItem(s *excel.Store, r *Row) *Item {
	return &Item{
		ID:          r.ID,
		Name:        s.Text(r.ItemName),
		MainType:    r.ItemMainType,
		SubType:     r.ItemSubType,
		Rarity:      r.Rarity,
		PurposeType: r.PurposeType,
		PileLimit:   r.PileLimit,
		Source:      Items.Origin(s, r),
		store:       s,
		row:         r,
	}
}

// Description returns the item's usage text.
func (i *Item) Description() string {
	return i.store.Text(i.row.ItemDesc)
}

// Background returns the item's lore text.
func (i *Item) Background() string {
	return i.store.Text(i.row.ItemBGDesc)
}

var rarityStars = map[string]int{
	"Normal":    1,
	"NotNormal": 2,
	"Rare":      3,
	"VeryRare":  4,
	"SuperRare": 5,
}

// Stars converts the rarity to a star count, 0 for unknown rarities.
func (i *Item) Stars() int {
	return rarityStars[i.Rarity]
}

// Cost is a resolved (item, amount) pair.
type Cost struct {
	Item  *Item  `json:"item"`
	Count uint32 `json:"count"`
}

// Get returns the item with the given id, nil if there is none.
func Get(s *excel.Store, id uint32) *Item {
	return view.Get(s, Items, id, newItem)
}

// List iterates every item.
func List(s *excel.Store) iter.Seq[*Item] {
	return view.List(s, Items, newItem)
}

// ByName returns the items currently displayed under name.
func ByName(s *excel.Store, name string) []*Item {
	return view.Map(s, ItemsByName.Must(s).Get(name), newItem)
}

// Ref resolves an item foreign key held by field.
func Ref(s *excel.Store, field string, id uint32) *Item {
	return view.Ref(s, Items, field, id, newItem)
}

// Costs resolves embedded cost rows. Rows without an item are skipped.
func Costs(s *excel.Store, field string, rows []CostRow) []Cost {
	out := make([]Cost, 0, len(rows))
	for _, c := range rows {
		if it := Ref(s, field, c.ItemID); it != nil {
			out = append(out, Cost{Item: it, Count: c.ItemNum})
		}
	}
	return out
}
