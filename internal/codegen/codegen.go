// Package codegen emits the generated C++ string table: a declaration header
// and a definition file consumed by native code at runtime.
package codegen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"webui-strings/internal/escape"
	"webui-strings/internal/resource"
	"webui-strings/internal/textutil"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const banner = "// This file is generated by webui-strings. Do not edit.\n"

// Generator renders and writes the two table artifacts. Output is a pure
// function of the final string map, so identical inputs yield byte-identical
// files.
type Generator struct {
	// RootGenDir is the root generation directory both outputs live under.
	RootGenDir string
	// HeaderPath is the declaration artifact path, relative to RootGenDir.
	// The definition includes it verbatim, and the include guard derives
	// from it.
	HeaderPath string
	// CCPath is the definition artifact path, relative to RootGenDir.
	CCPath string
	// IDHeaderName is the fixed sibling header defining the IDS_ constants.
	IDHeaderName string
}

// Generate renders both artifacts and writes them as whole-file replacements.
// Rendering happens before any I/O, so an unencodable string aborts with
// nothing written. The two writes touch distinct paths and run concurrently;
// the step fails unless both complete.
func (g *Generator) Generate(ctx context.Context, final *resource.StringMap) error {
	header := g.renderHeader(final.Len())
	definition, err := g.renderDefinition(final)
	if err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return writeArtifact(ctx, filepath.Join(g.RootGenDir, g.HeaderPath), header)
	})
	eg.Go(func() error {
		return writeArtifact(ctx, filepath.Join(g.RootGenDir, g.CCPath), definition)
	})
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("write artifacts: %w", err)
	}

	log.Info().
		Int("entries", final.Len()).
		Str("header", g.HeaderPath).
		Str("cc", g.CCPath).
		Str("header_sha256", textutil.Truncate(textutil.Hash(header), 12)).
		Str("cc_sha256", textutil.Truncate(textutil.Hash(definition), 12)).
		Msg("Generated string table")
	return nil
}

func (g *Generator) renderHeader(count int) string {
	guard := includeGuard(g.HeaderPath)

	var b strings.Builder
	b.WriteString(banner)
	b.WriteString("\n")
	fmt.Fprintf(&b, "#ifndef %s\n#define %s\n\n", guard, guard)
	b.WriteString("#include <cstddef>\n\n")
	b.WriteString("struct LocalizedStringEntry {\n  const char* text;\n  int id;\n};\n\n")
	fmt.Fprintf(&b, "inline constexpr size_t kLocalizedStringCount = %d;\n", count)
	if count > 0 {
		// A zero-length array is not valid C++, so the array only exists
		// when there is at least one entry.
		b.WriteString("\nextern const LocalizedStringEntry kLocalizedStrings[kLocalizedStringCount];\n")
	}
	fmt.Fprintf(&b, "\n#endif  // %s\n", guard)
	return b.String()
}

func (g *Generator) renderDefinition(final *resource.StringMap) (string, error) {
	var b strings.Builder
	b.WriteString(banner)
	b.WriteString("\n")
	fmt.Fprintf(&b, "#include \"%s\"\n\n", filepath.ToSlash(g.HeaderPath))
	fmt.Fprintf(&b, "#include \"%s\"\n", g.IDHeaderName)

	if final.Len() == 0 {
		return b.String(), nil
	}

	b.WriteString("\nconst LocalizedStringEntry kLocalizedStrings[kLocalizedStringCount] = {\n")
	for _, idKey := range final.Keys() {
		s, _ := final.Get(idKey)
		escaped, err := escape.CLiteral(s.Text)
		if err != nil {
			return "", fmt.Errorf("entry %s: %w", idKey, err)
		}
		fmt.Fprintf(&b, "    {\"%s\", %s},\n", escaped, idKey)
	}
	b.WriteString("};\n")
	return b.String(), nil
}

// includeGuard derives the guard macro from the header's relative path,
// e.g. ui/localized_strings.h becomes UI_LOCALIZED_STRINGS_H_.
func includeGuard(headerPath string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(filepath.ToSlash(headerPath)) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	b.WriteByte('_')
	return b.String()
}

func writeArtifact(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create artifact directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
