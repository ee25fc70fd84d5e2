package scanner

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// loadCallPattern matches loadLocalizedString('IDS_KEY', '...') with either
// quote style on the text argument.
var loadCallPattern = regexp.MustCompile(
	`loadLocalizedString\(\s*['"](IDS_[A-Z0-9_]+)['"]\s*,\s*('(?:[^'\\]|\\.)*'|"(?:[^"\\]|\\.)*")\s*\)`)

// ScriptParser extracts registration calls of the form
// loadLocalizedString('IDS_KEY', 'Source text') from TS/JS sources.
type ScriptParser struct{}

func NewScriptParser() *ScriptParser { return &ScriptParser{} }

var scriptExtensions = map[string]bool{
	".ts":  true,
	".tsx": true,
	".js":  true,
	".jsx": true,
}

func (p *ScriptParser) CanParse(name string) bool {
	return scriptExtensions[strings.ToLower(filepath.Ext(name))]
}

func (p *ScriptParser) Parse(relPath string, content []byte) (*ParseResult, error) {
	result := &ParseResult{
		FilePath: relPath,
		FileType: "script",
	}

	sc := bufio.NewScanner(bytes.NewReader(content))
	sc.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if !strings.Contains(line, "loadLocalizedString") {
			continue
		}
		for _, m := range loadCallPattern.FindAllStringSubmatch(line, -1) {
			result.Entries = append(result.Entries, Entry{
				IDKey: m[1],
				Text:  unquoteScript(m[2]),
				Line:  lineNum,
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan script %s: %w", relPath, err)
	}

	return result, nil
}

// unquoteScript strips the surrounding quotes from a JS string literal and
// resolves its escapes. Unknown escapes collapse to the escaped character,
// matching JS semantics.
func unquoteScript(lit string) string {
	body := lit[1 : len(lit)-1]
	if !strings.ContainsRune(body, '\\') {
		return body
	}

	var b strings.Builder
	b.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			b.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '0':
			b.WriteByte(0)
		default:
			b.WriteByte(body[i])
		}
	}
	return b.String()
}
