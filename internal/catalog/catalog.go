// Package catalog loads and saves the canonical translation catalog: a flat
// TOML message file mapping each ID key to its registered source text.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"webui-strings/internal/resource"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// Catalog is the set of registered strings, indexed by ID key. TOML rejects
// duplicate keys, so key uniqueness is enforced by the file format itself.
type Catalog struct {
	entries []resource.CatalogEntry
	byKey   map[string]resource.CatalogEntry
}

// Empty returns a catalog with no entries, used when the catalog file does
// not exist yet.
func Empty() *Catalog {
	return &Catalog{byKey: make(map[string]resource.CatalogEntry)}
}

// FromEntries builds an in-memory catalog from a key to text mapping.
func FromEntries(entries map[string]string) *Catalog {
	cat := Empty()
	for k, v := range entries {
		cat.byKey[k] = resource.CatalogEntry{IDKey: k, Text: v}
		cat.entries = append(cat.entries, cat.byKey[k])
	}
	sort.Slice(cat.entries, func(i, j int) bool {
		return cat.entries[i].IDKey < cat.entries[j].IDKey
	})
	return cat
}

// Load parses the catalog message file at path. The file name must carry a
// locale tag before the extension (e.g. strings.en.toml) so the message
// bundle can attribute it.
func Load(path string) (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	mf, err := bundle.LoadMessageFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}

	cat := Empty()
	for _, msg := range mf.Messages {
		cat.byKey[msg.ID] = resource.CatalogEntry{IDKey: msg.ID, Text: msg.Other}
	}
	for _, e := range cat.byKey {
		cat.entries = append(cat.entries, e)
	}
	sort.Slice(cat.entries, func(i, j int) bool {
		return cat.entries[i].IDKey < cat.entries[j].IDKey
	})

	log.Info().Int("entries", len(cat.entries)).Str("path", path).Msg("Loaded catalog")
	return cat, nil
}

// Get returns the entry registered under idKey.
func (c *Catalog) Get(idKey string) (resource.CatalogEntry, bool) {
	e, ok := c.byKey[idKey]
	return e, ok
}

// Entries returns all entries sorted by ID key.
func (c *Catalog) Entries() []resource.CatalogEntry {
	out := make([]resource.CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len reports the number of registered entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Save writes the given key to text mapping as a TOML catalog file, replacing
// the whole file. The TOML encoder sorts map keys, so output is deterministic.
func Save(path string, entries map[string]string) error {
	data, err := toml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write catalog %s: %w", path, err)
	}

	log.Info().Int("entries", len(entries)).Str("path", path).Msg("Saved catalog")
	return nil
}
