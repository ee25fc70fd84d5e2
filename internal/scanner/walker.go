// Package scanner discovers localizable UI strings in a frontend source tree
// and matches them to their translation identifiers.
package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"webui-strings/internal/resource"
	"webui-strings/internal/worker"

	"github.com/rs/zerolog/log"
)

// Walker traverses a frontend tree and dispatches files to the right parser.
type Walker struct {
	parsers []Parser
	workers int
}

// NewWalker creates a Walker with the default parsers.
func NewWalker(workers int) *Walker {
	return &Walker{
		parsers: []Parser{
			NewScriptParser(),
			NewStringsJSONParser(),
			NewHTMLParser(),
		},
		workers: workers,
	}
}

// fileEntry is a discovered file ready for parsing.
type fileEntry struct {
	path    string
	relPath string
	parser  Parser
}

// Scan walks root, parses every supported file, and merges the extracted
// pairs into an insertion-ordered string map. The secondary result is the
// number of files scanned; callers that only need the map may discard it.
//
// filepath.Walk visits files in lexical order, so the map order is the
// lexical file order with in-file order inside each file, stable across runs.
func (w *Walker) Scan(ctx context.Context, root string) (*resource.StringMap, int, error) {
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, 0, fmt.Errorf("resolve scan root: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, 0, fmt.Errorf("stat scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, 0, fmt.Errorf("scan root is not a directory: %s", root)
	}

	var entries []fileEntry
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}
		if info.IsDir() {
			return nil
		}

		for _, p := range w.parsers {
			if p.CanParse(info.Name()) {
				rel, relErr := filepath.Rel(root, path)
				if relErr != nil {
					rel = path
				}
				entries = append(entries, fileEntry{path: path, relPath: rel, parser: p})
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("walk frontend tree: %w", err)
	}

	log.Info().Int("files", len(entries)).Str("root", root).Msg("Discovered frontend files")

	pool := worker.NewPool[fileEntry, *ParseResult](w.workers,
		func(ctx context.Context, entry fileEntry) (*ParseResult, error) {
			content, err := os.ReadFile(entry.path)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", entry.relPath, err)
			}
			return entry.parser.Parse(entry.relPath, content)
		},
	)
	outcomes := pool.Execute(ctx, entries)

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	// Merge in input order so the map order is deterministic. Any parse
	// failure or key conflict aborts the scan: a partially discovered map
	// would let generation silently under-cover live strings.
	discovered := resource.NewStringMap()
	for _, o := range outcomes {
		if o.Err != nil {
			return nil, 0, fmt.Errorf("parse %s: %w", o.Input.relPath, o.Err)
		}
		if o.Result == nil {
			continue
		}
		for _, e := range o.Result.Entries {
			loc := resource.SourceLocation{File: o.Result.FilePath, Line: e.Line}
			if err := discovered.Set(e.IDKey, e.Text, loc); err != nil {
				return nil, 0, fmt.Errorf("scan conflict: %w", err)
			}
		}
	}

	log.Info().Int("strings", discovered.Len()).Msg("Matched localizable strings")
	return discovered, len(entries), nil
}
