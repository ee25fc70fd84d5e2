package scanner

import "sort"

// Entry is a single ID key / source text pair extracted from a frontend file.
type Entry struct {
	// IDKey is the translation identifier referenced by the source.
	IDKey string
	// Text is the literal string registered under that identifier.
	Text string
	// Line is the 1-based line number, or 0 when the format has no
	// meaningful line (JSON strings files).
	Line int
}

// ParseResult holds the extraction output for a single file.
type ParseResult struct {
	// FilePath is the path of the parsed file, relative to the scan root.
	FilePath string
	// FileType is the detected type (script, strings-json, html).
	FileType string
	// Entries are the extracted key/text pairs in file order.
	Entries []Entry
}

// Parser extracts localizable strings from one frontend file format.
type Parser interface {
	// CanParse reports whether this parser handles the given file name.
	CanParse(name string) bool
	// Parse extracts ID key / text pairs from the file contents.
	Parse(relPath string, content []byte) (*ParseResult, error)
}

func sortEntriesByKey(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].IDKey < entries[j].IDKey
	})
}
