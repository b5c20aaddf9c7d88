package reward

import (
	"fmt"
	"iter"

	"datamine/core/excel"
	"datamine/core/lazy"
	"datamine/core/view"
	"datamine/feature/item"
)

// Row is a RewardData record. Items are stored as up to six numbered slots.
type Row struct {
	RewardID  uint32 `json:"RewardID"`
	Hcoin     uint32 `json:"Hcoin"`
	IsSpecial bool   `json:"IsSpecial"`
	ItemID1   uint32 `json:"ItemID_1"`
	Count1    uint32 `json:"Count_1"`
	ItemID2   uint32 `json:"ItemID_2"`
	Count2    uint32 `json:"Count_2"`
	ItemID3   uint32 `json:"ItemID_3"`
	Count3    uint32 `json:"Count_3"`
	ItemID4   uint32 `json:"ItemID_4"`
	Count4    uint32 `json:"Count_4"`
	ItemID5   uint32 `json:"ItemID_5"`
	Count5    uint32 `json:"Count_5"`
	ItemID6   uint32 `json:"ItemID_6"`
	Count6    uint32 `json:"Count_6"`
}

func (r Row) Key() uint32 { return r.RewardID }

var Table = excel.NewTable[uint32, Row]("RewardData")

// slots returns the non-empty (item, count) slots in order. An item may appear in one
// slot only.
func (r *Row) slots() ([]item.CostRow, error) {
	all := [...]item.CostRow{
		{ItemID: r.ItemID1, ItemNum: r.Count1},
		{ItemID: r.ItemID2, ItemNum: r.Count2},
		{ItemID: r.ItemID3, ItemNum: r.Count3},
		{ItemID: r.ItemID4, ItemNum: r.Count4},
		{ItemID: r.ItemID5, ItemNum: r.Count5},
		{ItemID: r.ItemID6, ItemNum: r.Count6},
	}

	seen := make(map[uint32]int, len(all))
	out := make([]item.CostRow, 0, len(all))
	for i, c := range all {
		if c.ItemID == 0 {
			continue
		}
		if prev, ok := seen[c.ItemID]; ok {
			return nil, fmt.Errorf("%w: reward %d lists item %d in slots %d and %d",
				excel.ErrDuplicateKey, r.RewardID, c.ItemID, prev+1, i+1)
		}
		seen[c.ItemID] = i
		out = append(out, c)
	}
	return out, nil
}

// Reward is a resolved reward bundle.
type Reward struct {
	ID        uint32 `json:"id"`
	Hcoin     uint32 `json:"hcoin,omitempty"`
	IsSpecial bool   `json:"is_special,omitempty"`

	store *excel.Store
	row   *Row
	items lazy.Value[[]item.Cost]
}

func newReward(s *excel.Store, r *Row) *Reward {
	return &Reward{ID: r.RewardID, Hcoin: r.Hcoin, IsSpecial: r.IsSpecial, store: s, row: r}
}

// Items returns the rewarded items in slot order. The premium currency column is not
// included, see Hcoin.
func (r *Reward) Items() []item.Cost {
	return r.items.Get(func() []item.Cost {
		slots, err := r.row.slots()
		if err != nil {
			panic(&excel.TableError{Table: Table.Name(), Err: err})
		}
		return item.Costs(r.store, "RewardData.ItemID", slots)
	})
}

// Get returns the reward with the given id, nil if there is none.
func Get(s *excel.Store, id uint32) *Reward {
	return view.Get(s, Table, id, newReward)
}

// List iterates every reward.
func List(s *excel.Store) iter.Seq[*Reward] {
	return view.List(s, Table, newReward)
}

// Ref resolves a reward foreign key held by field.
func Ref(s *excel.Store, field string, id uint32) *Reward {
	return view.Ref(s, Table, field, id, newReward)
}
