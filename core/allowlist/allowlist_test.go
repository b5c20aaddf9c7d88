package allowlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllows(t *testing.T) {
	l, err := New([]Entry{
		{Field: "A.B", ID: "1", Since: "1.2", Until: "1.4"},
		{Field: "A.B", ID: "2"},
		{Field: "A.C", ID: "1", Until: "2.0"},
		{Field: "A.D", ID: "1", Until: "2.3.5"},
		{Field: "A.E", ID: "1", Until: "3"},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, l.Len())

	tests := []struct {
		name    string
		field   string
		id      string
		version string
		want    bool
	}{
		{"Inside range", "A.B", "1", "1.3", true},
		{"Lower bound inclusive", "A.B", "1", "1.2", true},
		{"Upper bound inclusive", "A.B", "1", "1.4", true},
		{"Patch inside range", "A.B", "1", "1.4.0", true},
		{"Later patch of minor upper bound", "A.B", "1", "1.4.7", true},
		{"Before range", "A.B", "1", "1.1", false},
		{"Patch upper bound inclusive", "A.D", "1", "2.3.5", true},
		{"Past patch upper bound", "A.D", "1", "2.3.6", false},
		{"Major upper bound covers minors", "A.E", "1", "3.9.1", true},
		{"Past major upper bound", "A.E", "1", "4.0", false},
		{"After range", "A.B", "1", "1.5", false},
		{"Unknown version matches", "A.B", "1", "", true},
		{"Unparseable version matches", "A.B", "1", "beta", true},
		{"Unbounded entry", "A.B", "2", "9.9", true},
		{"Open lower bound", "A.C", "1", "0.9", true},
		{"Other field", "A.C", "2", "1.0", false},
		{"Unknown field", "X.Y", "1", "1.3", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Allows(tt.field, tt.id, tt.version))
		})
	}
}

func TestNew_InvalidBound(t *testing.T) {
	_, err := New([]Entry{{Field: "A.B", ID: "1", Since: "one"}})
	assert.Error(t, err)
	assert.Panics(t, func() { MustNew([]Entry{{Field: "A.B", ID: "1", Until: "x.y"}}) })
}

func TestKnown(t *testing.T) {
	assert.Positive(t, Known.Len())
	assert.True(t, Known.Allows("MainMission.NextMainMissionList", "1000303", "1.0"))
	assert.False(t, Known.Allows("MainMission.NextMainMissionList", "1000303", "2.0"))
	assert.False(t, Empty().Allows("MainMission.NextMainMissionList", "1000303", ""))
}
