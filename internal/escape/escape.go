// Package escape renders arbitrary UI strings as C++ string-literal bodies
// for the generated string table.
package escape

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// EncodingError reports a string that cannot be represented in a generated
// C++ literal. The string must be fixed at its source; truncating or mangling
// it here would silently break the table.
type EncodingError struct {
	Reason string
}

func (e *EncodingError) Error() string {
	return "cannot encode string: " + e.Reason
}

// CLiteral escapes s so that embedding the result between double quotes in
// generated C++ reproduces s exactly when the literal is parsed back.
//
// Quotes and backslashes get their named escapes, as do \n, \t and \r.
// Other control bytes are emitted as exactly three octal digits: the
// three-digit form cannot absorb a digit that follows it in the text, which
// keeps the escaping unambiguous. Non-ASCII UTF-8 passes through unchanged.
func CLiteral(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", &EncodingError{Reason: "not valid UTF-8"}
	}

	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch r {
		case 0:
			return "", &EncodingError{Reason: "contains NUL, which would truncate the table entry"}
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7F {
				fmt.Fprintf(&b, `\%03o`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}

	return b.String(), nil
}
