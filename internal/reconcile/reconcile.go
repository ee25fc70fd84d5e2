// Package reconcile computes the three diff sets between strings discovered
// in frontend source and entries registered in the translation catalog.
package reconcile

import (
	"fmt"
	"sort"
	"strings"

	"webui-strings/internal/catalog"
	"webui-strings/internal/resource"
	"webui-strings/internal/textutil"
)

// Mismatch is an ID key registered in the catalog whose source text no
// longer matches. The key is being reused for a different string; downstream
// translations are keyed by identifier, so the key has to change, not the
// catalog text.
type Mismatch struct {
	IDKey       string
	CatalogText string
	SourceText  string
}

// Result holds the three disjoint diff sets of one reconciliation run.
// Computed fresh per run, never persisted.
type Result struct {
	// ToAdd are discovered strings with no catalog entry, in discovery order.
	ToAdd []resource.CatalogEntry
	// ToModify are ID keys present on both sides with differing texts.
	ToModify []Mismatch
	// ToRemove are catalog keys no longer discovered anywhere, key-sorted.
	ToRemove []string

	// locations remembers where each affected key was discovered, for the
	// reports below.
	locations map[string][]resource.SourceLocation
}

func (r *Result) noteLocations(idKey string, locs []resource.SourceLocation) {
	if r.locations == nil {
		r.locations = make(map[string][]resource.SourceLocation)
	}
	r.locations[idKey] = locs
}

// firstLocation renders the first discovery site of idKey, or "" when
// unknown.
func (r Result) firstLocation(idKey string) string {
	locs := resource.SortedLocations(r.locations[idKey])
	if len(locs) == 0 {
		return ""
	}
	if len(locs) == 1 {
		return locs[0].String()
	}
	return fmt.Sprintf("%s and %d more", locs[0], len(locs)-1)
}

// Diff compares the discovered string map against the catalog. Pure function
// of its two inputs; duplicate texts under distinct keys stay independent.
func Diff(discovered *resource.StringMap, cat *catalog.Catalog) Result {
	var r Result

	for _, idKey := range discovered.Keys() {
		s, _ := discovered.Get(idKey)
		entry, ok := cat.Get(idKey)
		if !ok {
			r.ToAdd = append(r.ToAdd, resource.CatalogEntry{IDKey: idKey, Text: s.Text})
			r.noteLocations(idKey, s.Locations)
			continue
		}
		if entry.Text != s.Text {
			r.ToModify = append(r.ToModify, Mismatch{
				IDKey:       idKey,
				CatalogText: entry.Text,
				SourceText:  s.Text,
			})
			r.noteLocations(idKey, s.Locations)
		}
	}

	for _, entry := range cat.Entries() {
		if _, ok := discovered.Get(entry.IDKey); !ok {
			r.ToRemove = append(r.ToRemove, entry.IDKey)
		}
	}
	sort.Strings(r.ToRemove)

	return r
}

// ReportAdditions returns a report of strings missing from the catalog, or
// "" when there are none.
func (r Result) ReportAdditions() string {
	if len(r.ToAdd) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d string(s) found in source but not in the catalog:\n", len(r.ToAdd))
	for _, e := range r.ToAdd {
		fmt.Fprintf(&b, "  %s = %q", e.IDKey, textutil.Truncate(e.Text, 60))
		if loc := r.firstLocation(e.IDKey); loc != "" {
			fmt.Fprintf(&b, " (%s)", loc)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ReportModifications returns a report of reused ID keys, or "" when there
// are none.
func (r Result) ReportModifications() string {
	if len(r.ToModify) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d ID key(s) reused for a different string (the key must change):\n", len(r.ToModify))
	for _, m := range r.ToModify {
		fmt.Fprintf(&b, "  %s: catalog %q, source %q",
			m.IDKey, textutil.Truncate(m.CatalogText, 60), textutil.Truncate(m.SourceText, 60))
		if loc := r.firstLocation(m.IDKey); loc != "" {
			fmt.Fprintf(&b, " (%s)", loc)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ReportRemovals returns a report of stale catalog entries, or "" when there
// are none.
func (r Result) ReportRemovals() string {
	if len(r.ToRemove) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d catalog entr(ies) no longer used by any source string:\n", len(r.ToRemove))
	for _, idKey := range r.ToRemove {
		fmt.Fprintf(&b, "  %s\n", idKey)
	}
	return b.String()
}
