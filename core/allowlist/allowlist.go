package allowlist

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Entry exempts one foreign-key id of one field from dangling-reference checks.
type Entry struct {
	// Field is "<Table>.<Field>", e.g. "MainMission.NextMainMissionList".
	Field string
	// ID is the referenced key as printed by utils.FormatKey.
	ID string
	// Since is the first game version carrying the gap, empty for unbounded.
	Since string
	// Until is the last game version carrying the gap, empty for unbounded. A bound
	// without a patch component covers every patch: "1.1" includes "1.1.5".
	Until string
	// Note records where the gap was observed.
	Note string
}

// List indexes entries by field and id.
type List struct {
	entries map[string]map[string][]Entry
}

// New builds a List. Version bounds must be valid game versions ("1.0", "2.3.5").
func New(entries []Entry) (*List, error) {
	l := &List{entries: make(map[string]map[string][]Entry)}
	for _, e := range entries {
		for _, bound := range []string{e.Since, e.Until} {
			if bound != "" && !semver.IsValid(canonical(bound)) {
				return nil, fmt.Errorf("allowlist entry %s/%s: invalid version %q", e.Field, e.ID, bound)
			}
		}
		ids, ok := l.entries[e.Field]
		if !ok {
			ids = make(map[string][]Entry)
			l.entries[e.Field] = ids
		}
		ids[e.ID] = append(ids[e.ID], e)
	}
	return l, nil
}

// MustNew is New for package-level declarations.
func MustNew(entries []Entry) *List {
	l, err := New(entries)
	if err != nil {
		panic(err)
	}
	return l
}

// Empty returns a List exempting nothing.
func Empty() *List {
	return &List{entries: map[string]map[string][]Entry{}}
}

// Allows reports whether id may dangle in field for a dataset of the given version.
// An empty or unparseable dataset version matches every range.
func (l *List) Allows(field, id, version string) bool {
	for _, e := range l.entries[field][id] {
		if inRange(version, e.Since, e.Until) {
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (l *List) Len() int {
	n := 0
	for _, ids := range l.entries {
		for _, es := range ids {
			n += len(es)
		}
	}
	return n
}

func inRange(version, since, until string) bool {
	v := canonical(version)
	if version == "" || !semver.IsValid(v) {
		return true
	}
	if since != "" && semver.Compare(v, canonical(since)) < 0 {
		return false
	}
	if until != "" && semver.Compare(truncate(v, until), canonical(until)) > 0 {
		return false
	}
	return true
}

func canonical(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}

// truncate cuts v down to the precision of bound, so "v1.1.5" against "1.1" compares
// as "v1.1".
func truncate(v, bound string) string {
	switch strings.Count(bound, ".") {
	case 0:
		return semver.Major(v)
	case 1:
		return semver.MajorMinor(v)
	}
	return v
}
