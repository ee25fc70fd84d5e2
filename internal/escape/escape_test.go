package escape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLiteralPlainTextUnchanged(t *testing.T) {
	got, err := CLiteral("Hello, world")
	require.NoError(t, err)
	assert.Equal(t, "Hello, world", got)
}

func TestCLiteralQuotesAndBackslashes(t *testing.T) {
	// He said "hi"\  must survive a round trip through C literal rules.
	got, err := CLiteral(`He said "hi"\`)
	require.NoError(t, err)
	assert.Equal(t, `He said \"hi\"\\`, got)
}

func TestCLiteralNamedEscapes(t *testing.T) {
	got, err := CLiteral("line one\nline two\ttabbed\r")
	require.NoError(t, err)
	assert.Equal(t, `line one\nline two\ttabbed\r`, got)
}

func TestCLiteralControlBytesUseThreeOctalDigits(t *testing.T) {
	got, err := CLiteral("\x01x")
	require.NoError(t, err)
	assert.Equal(t, `\001x`, got)

	// A digit after the escape must not be absorbed into it: C octal
	// escapes stop at three digits.
	got, err = CLiteral("\x017")
	require.NoError(t, err)
	assert.Equal(t, `\0017`, got)

	got, err = CLiteral("\x7f")
	require.NoError(t, err)
	assert.Equal(t, `\177`, got)
}

func TestCLiteralNonASCIIPassesThrough(t *testing.T) {
	got, err := CLiteral("héllo 世界")
	require.NoError(t, err)
	assert.Equal(t, "héllo 世界", got)
}

func TestCLiteralRejectsNUL(t *testing.T) {
	_, err := CLiteral("a\x00b")
	require.Error(t, err)
	var encErr *EncodingError
	assert.ErrorAs(t, err, &encErr)
}

func TestCLiteralRejectsInvalidUTF8(t *testing.T) {
	_, err := CLiteral(string([]byte{0xff, 0xfe}))
	require.Error(t, err)
	var encErr *EncodingError
	assert.ErrorAs(t, err, &encErr)
}

// Round trip: unescape the output under C literal rules and compare with the
// input. The unescaper below implements exactly the escapes CLiteral emits.
func TestCLiteralRoundTrip(t *testing.T) {
	cases := []string{
		"plain",
		`He said "hi"\`,
		"tab\there\nnewline",
		"\x01\x02\x037 digits follow: 123",
		"mixed \"quotes\" and \\slashes\\ and \x1b[0m",
		"unicode: 日本語 Việt ñ",
	}
	for _, in := range cases {
		escaped, err := CLiteral(in)
		require.NoError(t, err)
		assert.Equal(t, in, cUnescape(t, escaped), "input %q", in)
	}
}

func cUnescape(t *testing.T, s string) string {
	t.Helper()
	var out []byte
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			out = append(out, s[i])
			continue
		}
		i++
		require.Less(t, i, len(s), "dangling backslash in %q", s)
		switch c := s[i]; c {
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case 'r':
			out = append(out, '\r')
		case '"', '\\':
			out = append(out, c)
		default:
			// Octal escape: up to three digits, CLiteral always emits three.
			require.True(t, c >= '0' && c <= '7', "unexpected escape %q", c)
			v := 0
			n := 0
			for ; n < 3 && i < len(s) && s[i] >= '0' && s[i] <= '7'; n++ {
				v = v*8 + int(s[i]-'0')
				i++
			}
			i--
			out = append(out, byte(v))
		}
	}
	return string(out)
}
