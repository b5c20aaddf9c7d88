package buff

import (
	"iter"

	"datamine/core/excel"
	"datamine/core/format"
	"datamine/core/textmap"
	"datamine/core/view"
)

// Row is a MazeBuff record.
type Row struct {
	ID             uint32        `json:"ID"`
	Lv             uint32        `json:"Lv"`
	LvMax          uint32        `json:"LvMax"`
	BuffType       string        `json:"BuffType"`
	BuffName       textmap.Hash  `json:"BuffName"`
	BuffDesc       textmap.Hash  `json:"BuffDesc"`
	BuffSimpleDesc textmap.Hash  `json:"BuffSimpleDesc"`
	ParamList      []excel.Value `json:"ParamList"`
}

func (r Row) GroupKey() uint32 { return r.ID }
func (r Row) SubKey() uint32   { return r.Lv }

var Table = excel.NewGroupTable[uint32, uint32, Row]("MazeBuff")

// Buff is one level of a buff.
type Buff struct {
	ID       uint32    `json:"id"`
	Level    uint32    `json:"level"`
	MaxLevel uint32    `json:"max_level"`
	Type     string    `json:"type"`
	Name     string    `json:"name"`
	Params   []float64 `json:"params,omitempty"`

	desc       string
	simpleDesc string
}

func newBuff(s *excel.Store, r *Row) *Buff {
	return &Buff{
		ID:         r.ID,
		Level:      r.Lv,
		MaxLevel:   r.LvMax,
		Type:       r.BuffType,
		Name:       s.Text(r.BuffName),
		Params:     excel.Floats(r.ParamList),
		desc:       s.Text(r.BuffDesc),
		simpleDesc: s.Text(r.BuffSimpleDesc),
	}
}

// Description renders the buff's description with its parameters.
func (b *Buff) Description(f format.Formatter) string {
	return f.Format(b.desc, b.Params)
}

// Summary renders the short description.
func (b *Buff) Summary(f format.Formatter) string {
	return f.Format(b.simpleDesc, b.Params)
}

// Get returns one level of a buff, nil if there is none.
func Get(s *excel.Store, id, level uint32) *Buff {
	r, ok := Table.Must(s).Sub(id, level)
	if !ok {
		return nil
	}
	return newBuff(s, r)
}

// Levels returns every level of a buff in on-disk order, empty for unknown ids.
func Levels(s *excel.Store, id uint32) []*Buff {
	return view.Group(s, Table, id, newBuff)
}

// List iterates every level of every buff.
func List(s *excel.Store) iter.Seq[*Buff] {
	return view.ListGroups(s, Table, newBuff)
}

// Ref resolves a buff foreign key held by field into its levels.
func Ref(s *excel.Store, field string, id uint32) []*Buff {
	return view.GroupRef(s, Table, field, id, newBuff)
}
