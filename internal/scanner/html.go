package scanner

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// i18nContentPattern matches elements carrying an i18n-content attribute,
// capturing the ID key and the element's text content.
var i18nContentPattern = regexp.MustCompile(
	`i18n-content="(IDS_[A-Z0-9_]+)"[^>]*>([^<]*)<`)

// HTMLParser extracts i18n-content annotated elements from WebUI HTML:
// <span i18n-content="IDS_KEY">Source text</span>.
type HTMLParser struct{}

func NewHTMLParser() *HTMLParser { return &HTMLParser{} }

func (p *HTMLParser) CanParse(name string) bool {
	return strings.ToLower(filepath.Ext(name)) == ".html"
}

func (p *HTMLParser) Parse(relPath string, content []byte) (*ParseResult, error) {
	result := &ParseResult{
		FilePath: relPath,
		FileType: "html",
	}

	sc := bufio.NewScanner(bytes.NewReader(content))
	sc.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if !strings.Contains(line, "i18n-content") {
			continue
		}
		for _, m := range i18nContentPattern.FindAllStringSubmatch(line, -1) {
			text := strings.TrimSpace(m[2])
			if text == "" {
				// Reference without inline text; contributes nothing.
				continue
			}
			result.Entries = append(result.Entries, Entry{
				IDKey: m[1],
				Text:  text,
				Line:  lineNum,
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan html %s: %w", relPath, err)
	}

	return result, nil
}
