package excel

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"datamine/core/utils"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Encoding names the on-disk layout a table was decoded from.
type Encoding string

const (
	// EncodingFlat is the current layout: a JSON array of rows.
	EncodingFlat Encoding = "flat"
	// EncodingLegacy is the nested object layout keyed by id (and sub id).
	EncodingLegacy Encoding = "legacy"
	// EncodingMissing marks a table whose file is absent from the dump.
	EncodingMissing Encoding = "missing"
)

// fallbackFunc is told why the flat layout was rejected before the legacy layout is tried.
type fallbackFunc func(reason error)

// decodeTable decodes a point-keyed table, newest layout first.
func decodeTable[K comparable, R Row[K]](data []byte, onFallback fallbackFunc) (*Table[K, R], Encoding, error) {
	var rows []R
	flatErr := json.Unmarshal(data, &rows)
	if flatErr == nil {
		t := newTable[K, R]()
		for i := range rows {
			r := &rows[i]
			if err := t.insert((*r).Key(), r); err != nil {
				return nil, EncodingFlat, err
			}
		}
		return t, EncodingFlat, nil
	}

	onFallback(flatErr)
	t, err := decodeLegacyTable[K, R](data)
	if err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return nil, EncodingLegacy, err
		}
		return nil, EncodingLegacy, layoutError(flatErr, err)
	}
	return t, EncodingLegacy, nil
}

// decodeLegacyTable decodes {"<id>": {row}}, keeping object order.
func decodeLegacyTable[K comparable, R any](data []byte) (*Table[K, R], error) {
	outer, err := orderedObject(data)
	if err != nil {
		return nil, err
	}

	t := newTable[K, R]()
	for pair := outer.Oldest(); pair != nil; pair = pair.Next() {
		k, err := utils.ParseKey[K](pair.Key)
		if err != nil {
			return nil, err
		}
		r := new(R)
		if err := json.Unmarshal(pair.Value, r); err != nil {
			return nil, fmt.Errorf("row %s: %w", pair.Key, err)
		}
		if err := t.insert(k, r); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// decodeGroupTable decodes a main/sub table, newest layout first.
func decodeGroupTable[G, S comparable, R GroupRow[G, S]](data []byte, onFallback fallbackFunc) (*GroupTable[G, S, R], Encoding, error) {
	var rows []R
	flatErr := json.Unmarshal(data, &rows)
	if flatErr == nil {
		t := newGroupTable[G, S, R]()
		for i := range rows {
			r := &rows[i]
			if err := t.insert((*r).GroupKey(), (*r).SubKey(), r); err != nil {
				return nil, EncodingFlat, err
			}
		}
		return t, EncodingFlat, nil
	}

	onFallback(flatErr)
	t, err := decodeLegacyGroupTable[G, S, R](data)
	if err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return nil, EncodingLegacy, err
		}
		return nil, EncodingLegacy, layoutError(flatErr, err)
	}
	return t, EncodingLegacy, nil
}

// decodeLegacyGroupTable decodes {"<group>": {"<sub>": {row}}}, keeping object order.
func decodeLegacyGroupTable[G, S comparable, R any](data []byte) (*GroupTable[G, S, R], error) {
	outer, err := orderedObject(data)
	if err != nil {
		return nil, err
	}

	t := newGroupTable[G, S, R]()
	for gp := outer.Oldest(); gp != nil; gp = gp.Next() {
		g, err := utils.ParseKey[G](gp.Key)
		if err != nil {
			return nil, err
		}
		inner, err := orderedObject(gp.Value)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", gp.Key, err)
		}
		for sp := inner.Oldest(); sp != nil; sp = sp.Next() {
			s, err := utils.ParseKey[S](sp.Key)
			if err != nil {
				return nil, fmt.Errorf("group %s: %w", gp.Key, err)
			}
			r := new(R)
			if err := json.Unmarshal(sp.Value, r); err != nil {
				return nil, fmt.Errorf("row %s/%s: %w", gp.Key, sp.Key, err)
			}
			if err := t.insert(g, s, r); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

// orderedObject decodes a JSON object keeping member order. A member name that appears
// twice is an ErrDuplicateKey.
func orderedObject(data []byte) (*orderedmap.OrderedMap[string, json.RawMessage], error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected an object, got %v", tok)
	}

	om := orderedmap.New[string, json.RawMessage]()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected a member name, got %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("member %s: %w", key, err)
		}
		if _, exists := om.Get(key); exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateKey, key)
		}
		om.Set(key, raw)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after object")
	}
	return om, nil
}

func layoutError(flatErr, legacyErr error) error {
	return fmt.Errorf("%w: not a row array (%v) nor a nested object (%v)", ErrMalformed, flatErr, legacyErr)
}
