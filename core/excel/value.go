package excel

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Row is a record of a point-keyed table.
type Row[K comparable] interface {
	Key() K
}

// GroupRow is a record of a main/sub table.
type GroupRow[G, S comparable] interface {
	GroupKey() G
	SubKey() S
}

// Value is a numeric parameter. Older dumps wrap it as {"Value": x}.
type Value float64

// UnmarshalJSON accepts {"Value": x}, a bare x and null.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = 0
		return nil
	}
	if len(data) > 0 && data[0] == '{' {
		var wrapped struct {
			Value *float64 `json:"Value"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return fmt.Errorf("invalid value object: %w", err)
		}
		if wrapped.Value != nil {
			*v = Value(*wrapped.Value)
		} else {
			*v = 0
		}
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid value: %w", err)
	}
	*v = Value(f)
	return nil
}

// Floats converts a parameter list.
func Floats(vs []Value) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = float64(v)
	}
	return out
}
