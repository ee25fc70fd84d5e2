package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringMapPreservesInsertionOrder(t *testing.T) {
	m := NewStringMap()
	keys := []string{"IDS_ZEBRA", "IDS_ALPHA", "IDS_MIDDLE"}
	for i, k := range keys {
		require.NoError(t, m.Set(k, "text", SourceLocation{File: "a.ts", Line: i + 1}))
	}

	assert.Equal(t, keys, m.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestStringMapMergesEqualText(t *testing.T) {
	m := NewStringMap()
	require.NoError(t, m.Set("IDS_A", "Hello", SourceLocation{File: "a.ts", Line: 1}))
	require.NoError(t, m.Set("IDS_A", "Hello", SourceLocation{File: "b.html", Line: 4}))

	assert.Equal(t, 1, m.Len())
	s, ok := m.Get("IDS_A")
	require.True(t, ok)
	assert.Len(t, s.Locations, 2)
}

func TestStringMapRejectsConflictingText(t *testing.T) {
	m := NewStringMap()
	require.NoError(t, m.Set("IDS_A", "Hello", SourceLocation{File: "a.ts", Line: 1}))

	err := m.Set("IDS_A", "Goodbye", SourceLocation{File: "b.ts", Line: 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IDS_A")

	// The original registration survives.
	s, ok := m.Get("IDS_A")
	require.True(t, ok)
	assert.Equal(t, "Hello", s.Text)
	assert.Len(t, s.Locations, 1)
}

func TestSourceLocationString(t *testing.T) {
	assert.Equal(t, "a.ts:12", SourceLocation{File: "a.ts", Line: 12}.String())
	assert.Equal(t, "data.json", SourceLocation{File: "data.json"}.String())
}

func TestSortedLocations(t *testing.T) {
	locs := []SourceLocation{
		{File: "b.ts", Line: 2},
		{File: "a.ts", Line: 9},
		{File: "a.ts", Line: 3},
	}
	sorted := SortedLocations(locs)
	assert.Equal(t, []SourceLocation{
		{File: "a.ts", Line: 3},
		{File: "a.ts", Line: 9},
		{File: "b.ts", Line: 2},
	}, sorted)
	// Input untouched.
	assert.Equal(t, SourceLocation{File: "b.ts", Line: 2}, locs[0])
}
