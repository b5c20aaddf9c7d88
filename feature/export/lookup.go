package export

import (
	"errors"
	"fmt"
	"sort"

	"datamine/core/excel"
	"datamine/core/utils"
	"datamine/feature/avatar"
	"datamine/feature/challenge"
	"datamine/feature/equipment"
	"datamine/feature/item"
	"datamine/feature/mission"
	"datamine/feature/monster"
)

var (
	// ErrUnknownKind is returned by Lookup for unsupported kinds.
	ErrUnknownKind = errors.New("unknown record kind")
	// ErrNotFound is returned by Lookup when no row has the id.
	ErrNotFound = errors.New("record not found")
)

var lookups = map[string]func(s *excel.Store, id uint32) (any, bool){
	"avatar": func(s *excel.Store, id uint32) (any, bool) {
		a := avatar.Get(s, id)
		if a == nil {
			return nil, false
		}
		return avatarRecord(a), true
	},
	"equipment": func(s *excel.Store, id uint32) (any, bool) {
		e := equipment.Get(s, id)
		if e == nil {
			return nil, false
		}
		return equipmentRecord(e), true
	},
	"item": func(s *excel.Store, id uint32) (any, bool) {
		i := item.Get(s, id)
		if i == nil {
			return nil, false
		}
		return itemRecord(i), true
	},
	"mission": func(s *excel.Store, id uint32) (any, bool) {
		m := mission.Get(s, id)
		if m == nil {
			return nil, false
		}
		return missionRecord(m), true
	},
	"floor": func(s *excel.Store, id uint32) (any, bool) {
		f := challenge.GetFloor(s, id)
		if f == nil {
			return nil, false
		}
		return floorRecord(f), true
	},
	"monster": func(s *excel.Store, id uint32) (any, bool) {
		m := monster.Get(s, id)
		if m == nil {
			return nil, false
		}
		return monsterRecord(m), true
	},
}

// Kinds returns the record kinds Lookup supports, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(lookups))
	for k := range lookups {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Lookup builds the record of one entity.
func Lookup(s *excel.Store, kind, id string) (rec any, err error) {
	defer excel.Recover(&err)

	fn, ok := lookups[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s (want one of %v)", ErrUnknownKind, kind, Kinds())
	}
	key, err := utils.ParseKey[uint32](id)
	if err != nil {
		return nil, err
	}
	rec, ok = fn(s, key)
	if !ok {
		return nil, fmt.Errorf("%w: %s %d", ErrNotFound, kind, key)
	}
	return rec, nil
}
