package resource

import (
	"fmt"
	"sort"
)

// SourceLocation points at the place a string was discovered.
// Used only for diagnostics, never for identity.
type SourceLocation struct {
	// File is the path of the source file, relative to the scan root.
	File string
	// Line is the 1-based line number, or 0 when unknown (e.g. JSON files).
	Line int
}

func (l SourceLocation) String() string {
	if l.Line <= 0 {
		return l.File
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// LocalizableString is a literal UI string discovered in frontend source.
// Two occurrences with identical Text are the same logical string.
type LocalizableString struct {
	Text      string
	Locations []SourceLocation
}

// CatalogEntry is a string registered in the translation catalog under a
// stable identifier. IDKey is unique within a valid catalog; Text need not be.
type CatalogEntry struct {
	IDKey string
	Text  string
}

// StringMap is an insertion-ordered mapping from ID key to discovered string.
// The iteration order determines the emission order of the generated table,
// so a plain Go map cannot back it.
type StringMap struct {
	keys  []string
	items map[string]*LocalizableString
}

func NewStringMap() *StringMap {
	return &StringMap{items: make(map[string]*LocalizableString)}
}

// Set records text under idKey. The first insert fixes the key's position.
// Re-inserting the same key with equal text merges the source location;
// the same key with different text is a conflict and fails.
func (m *StringMap) Set(idKey, text string, loc SourceLocation) error {
	if existing, ok := m.items[idKey]; ok {
		if existing.Text != text {
			return fmt.Errorf("conflicting texts for %s: %q (%s) vs %q", idKey, existing.Text, loc, text)
		}
		existing.Locations = append(existing.Locations, loc)
		return nil
	}
	m.keys = append(m.keys, idKey)
	m.items[idKey] = &LocalizableString{
		Text:      text,
		Locations: []SourceLocation{loc},
	}
	return nil
}

// Get returns the string registered under idKey.
func (m *StringMap) Get(idKey string) (*LocalizableString, bool) {
	s, ok := m.items[idKey]
	return s, ok
}

// Keys returns the ID keys in insertion order.
func (m *StringMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len reports the number of distinct ID keys.
func (m *StringMap) Len() int {
	return len(m.keys)
}

// SortedLocations returns a key's locations in deterministic order for
// reporting.
func SortedLocations(locs []SourceLocation) []SourceLocation {
	out := make([]SourceLocation, len(locs))
	copy(out, locs)
	sort.Slice(out, func(i, j int) bool {
		if out[i].File != out[j].File {
			return out[i].File < out[j].File
		}
		return out[i].Line < out[j].Line
	})
	return out
}
