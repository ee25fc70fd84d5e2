package reconcile

import (
	"testing"

	"webui-strings/internal/catalog"
	"webui-strings/internal/resource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discoveredMap(t *testing.T, pairs [][2]string) *resource.StringMap {
	t.Helper()
	m := resource.NewStringMap()
	for i, p := range pairs {
		require.NoError(t, m.Set(p[0], p[1], resource.SourceLocation{File: "test.ts", Line: i + 1}))
	}
	return m
}

func TestDiffNoChanges(t *testing.T) {
	discovered := discoveredMap(t, [][2]string{{"IDS_A", "Hello"}})
	cat := catalog.FromEntries(map[string]string{"IDS_A": "Hello"})

	r := Diff(discovered, cat)
	assert.Empty(t, r.ToAdd)
	assert.Empty(t, r.ToModify)
	assert.Empty(t, r.ToRemove)
}

func TestDiffAddition(t *testing.T) {
	discovered := discoveredMap(t, [][2]string{{"IDS_B", "World"}})
	cat := catalog.Empty()

	r := Diff(discovered, cat)
	assert.Equal(t, []resource.CatalogEntry{{IDKey: "IDS_B", Text: "World"}}, r.ToAdd)
	assert.Empty(t, r.ToModify)
	assert.Empty(t, r.ToRemove)
}

func TestDiffModification(t *testing.T) {
	discovered := discoveredMap(t, [][2]string{{"IDS_C", "New text"}})
	cat := catalog.FromEntries(map[string]string{"IDS_C": "Old text"})

	r := Diff(discovered, cat)
	assert.Empty(t, r.ToAdd)
	assert.Equal(t, []Mismatch{{IDKey: "IDS_C", CatalogText: "Old text", SourceText: "New text"}}, r.ToModify)
	assert.Empty(t, r.ToRemove)
}

func TestDiffRemoval(t *testing.T) {
	discovered := discoveredMap(t, [][2]string{{"IDS_D", "Keep"}})
	cat := catalog.FromEntries(map[string]string{"IDS_D": "Keep", "IDS_E": "Dead"})

	r := Diff(discovered, cat)
	assert.Empty(t, r.ToAdd)
	assert.Empty(t, r.ToModify)
	assert.Equal(t, []string{"IDS_E"}, r.ToRemove)
}

// Set algebra: toAdd = discovered - catalog, toRemove = catalog - discovered,
// toModify = intersection with differing texts.
func TestDiffSetAlgebra(t *testing.T) {
	discovered := discoveredMap(t, [][2]string{
		{"IDS_ONLY_SOURCE", "s"},
		{"IDS_BOTH_SAME", "same"},
		{"IDS_BOTH_DIFFER", "source side"},
	})
	cat := catalog.FromEntries(map[string]string{
		"IDS_BOTH_SAME":    "same",
		"IDS_BOTH_DIFFER":  "catalog side",
		"IDS_ONLY_CATALOG": "c",
	})

	r := Diff(discovered, cat)
	assert.Equal(t, []resource.CatalogEntry{{IDKey: "IDS_ONLY_SOURCE", Text: "s"}}, r.ToAdd)
	require.Len(t, r.ToModify, 1)
	assert.Equal(t, "IDS_BOTH_DIFFER", r.ToModify[0].IDKey)
	assert.Equal(t, []string{"IDS_ONLY_CATALOG"}, r.ToRemove)
}

func TestDiffKeepsDuplicateTextsIndependent(t *testing.T) {
	discovered := discoveredMap(t, [][2]string{
		{"IDS_FIRST", "Same text"},
		{"IDS_SECOND", "Same text"},
	})
	cat := catalog.Empty()

	r := Diff(discovered, cat)
	assert.Len(t, r.ToAdd, 2)
}

func TestDiffAdditionsFollowDiscoveryOrder(t *testing.T) {
	discovered := discoveredMap(t, [][2]string{
		{"IDS_Z", "z"},
		{"IDS_A", "a"},
		{"IDS_M", "m"},
	})
	r := Diff(discovered, catalog.Empty())
	keys := make([]string, len(r.ToAdd))
	for i, e := range r.ToAdd {
		keys[i] = e.IDKey
	}
	assert.Equal(t, []string{"IDS_Z", "IDS_A", "IDS_M"}, keys)
}

func TestReportsEmptyWhenNoDiffs(t *testing.T) {
	r := Diff(discoveredMap(t, nil), catalog.Empty())
	assert.Equal(t, "", r.ReportAdditions())
	assert.Equal(t, "", r.ReportModifications())
	assert.Equal(t, "", r.ReportRemovals())
}

func TestReportsListAffectedEntries(t *testing.T) {
	discovered := discoveredMap(t, [][2]string{
		{"IDS_NEW", "Brand new"},
		{"IDS_CHANGED", "After"},
	})
	cat := catalog.FromEntries(map[string]string{
		"IDS_CHANGED": "Before",
		"IDS_STALE":   "Old",
	})
	r := Diff(discovered, cat)

	add := r.ReportAdditions()
	assert.Contains(t, add, "IDS_NEW")
	assert.Contains(t, add, "Brand new")
	assert.Contains(t, add, "test.ts:1")

	mod := r.ReportModifications()
	assert.Contains(t, mod, "IDS_CHANGED")
	assert.Contains(t, mod, "Before")
	assert.Contains(t, mod, "After")

	rem := r.ReportRemovals()
	assert.Contains(t, rem, "IDS_STALE")
}
