package textmap

import (
	"bytes"
	"encoding/json"
	"fmt"

	"datamine/core/utils"
)

// Hash is an opaque text key resolved through a TextMap.
type Hash int64

// UnmarshalJSON accepts every encoding seen across dataset versions:
// {"Hash": 123}, {"Hash": "123"}, a bare 123 and null.
func (h *Hash) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*h = 0
		return nil
	}

	if data[0] == '{' {
		var wrapped struct {
			Hash json.RawMessage `json:"Hash"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return fmt.Errorf("invalid text hash object: %w", err)
		}
		if wrapped.Hash == nil {
			*h = 0
			return nil
		}
		data = wrapped.Hash
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("invalid text hash: %w", err)
	}
	var text string
	switch v := raw.(type) {
	case json.Number:
		text = v.String()
	case string:
		text = v
	default:
		return fmt.Errorf("invalid text hash %s", string(data))
	}
	v, err := utils.ParseKey[int64](text)
	if err != nil {
		return fmt.Errorf("invalid text hash %s: %w", string(data), err)
	}
	*h = Hash(v)
	return nil
}
