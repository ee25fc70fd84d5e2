package scanner

import (
	"encoding/json"
	"fmt"
	"strings"

	"webui-strings/internal/textutil"
)

// StringsJSONParser reads flat .strings.json resource files: a single JSON
// object mapping ID keys to their source texts.
type StringsJSONParser struct{}

func NewStringsJSONParser() *StringsJSONParser { return &StringsJSONParser{} }

func (p *StringsJSONParser) CanParse(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".strings.json")
}

func (p *StringsJSONParser) Parse(relPath string, content []byte) (*ParseResult, error) {
	var raw map[string]string
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("parse strings file %s: %w", relPath, err)
	}

	result := &ParseResult{
		FilePath: relPath,
		FileType: "strings-json",
	}

	for key, text := range raw {
		if !textutil.IsIDKey(key) {
			return nil, fmt.Errorf("strings file %s: malformed ID key %q", relPath, key)
		}
		result.Entries = append(result.Entries, Entry{IDKey: key, Text: text})
	}

	// JSON object order is not observable, so order entries by key to keep
	// the scan deterministic.
	sortEntriesByKey(result.Entries)
	return result, nil
}
