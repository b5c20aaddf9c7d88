package textmap

import (
	"encoding/json"
	"fmt"

	"datamine/core/storage"
	"datamine/core/utils"

	"github.com/go-git/go-billy/v5"
	"go.uber.org/zap"
)

// TextMap resolves text hashes to display strings. It is immutable after Load.
type TextMap struct {
	file    string
	entries map[Hash]string
}

// Load reads the TextMap for the configured language. Candidate files are tried in order;
// a missing localization file is fatal since every text field depends on it.
func Load(fs billy.Filesystem, cfg Config, logger *zap.Logger) (*TextMap, error) {
	suffixes, err := Suffixes(cfg.Language)
	if err != nil {
		return nil, err
	}

	candidates := make([]string, len(suffixes))
	for i, s := range suffixes {
		candidates[i] = storage.TextPath(s)
	}

	data, used, err := storage.ReadFirst(fs, candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to load text map: %w", err)
	}

	tm, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", used, err)
	}
	tm.file = used

	logger.Debug("Loaded text map", zap.String("file", used), zap.Int("entries", tm.Len()))
	return tm, nil
}

// Parse decodes a {"<hash>": "<text>"} document.
func Parse(data []byte) (*TextMap, error) {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	entries := make(map[Hash]string, len(raw))
	for k, v := range raw {
		h, err := utils.ParseKey[int64](k)
		if err != nil {
			return nil, fmt.Errorf("invalid hash key %q: %w", k, err)
		}
		entries[Hash(h)] = v
	}
	return &TextMap{entries: entries}, nil
}

// New builds a TextMap from memory.
func New(entries map[Hash]string) *TextMap {
	cp := make(map[Hash]string, len(entries))
	for k, v := range entries {
		cp[k] = v
	}
	return &TextMap{entries: cp}
}

// Empty returns a TextMap with no entries; every lookup yields "".
func Empty() *TextMap {
	return &TextMap{entries: map[Hash]string{}}
}

// Get returns the text for h, or "" when the hash is unknown. Translations lag behind
// schema, so absence is not an error.
func (t *TextMap) Get(h Hash) string {
	return t.entries[h]
}

// Lookup is Get with a presence flag.
func (t *TextMap) Lookup(h Hash) (string, bool) {
	s, ok := t.entries[h]
	return s, ok
}

// Len returns the number of entries.
func (t *TextMap) Len() int {
	return len(t.entries)
}

// File returns the file the map was read from, empty for in-memory maps.
func (t *TextMap) File() string {
	return t.file
}
