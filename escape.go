package argfmt

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// escapes maps control characters with mnemonic spellings. Other control
// code points fall back to \xhh.
var escapes = map[rune]string{
	'\t': `\t`,
	'\n': `\n`,
	'\v': `\v`,
	'\a': `\a`,
	'\r': `\r`,
	'\f': `\f`,
	'\b': `\b`,
	0:    `\0`,
	'\\': `\\`,
}

// formatRune renders a character: mnemonic escapes single-quoted,
// printable characters single-quoted as-is, everything else as a 4-digit
// hex code point.
func formatRune(r rune) string {
	if esc, ok := escapes[r]; ok {
		return "'" + esc + "'"
	}
	if unicode.IsPrint(r) {
		return "'" + string(r) + "'"
	}
	return fmt.Sprintf("0x%04x", r)
}

// formatString renders a string double-quoted and escaped, truncated to
// maxString runes with the ellipsis inside the quotes.
func formatString(s string) string {
	if utf8.RuneCountInString(s) > maxString {
		end := 0
		for range maxString {
			_, size := utf8.DecodeRuneInString(s[end:])
			end += size
		}
		return `"` + escapeString(s[:end]) + Ellipsis + `"`
	}
	return `"` + escapeString(s) + `"`
}

func escapeString(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			// Invalid UTF-8 byte; escape the raw byte.
			fmt.Fprintf(&b, `\x%02x`, s[i])
		} else {
			b.WriteString(escapeRune(r))
		}
		i += size
	}
	return b.String()
}

// escapeRune maps a single rune to its escaped spelling. A valid
// surrogate pair is a single supplementary rune in Go and passes through;
// lone surrogates and the two noncharacters at the end of the basic plane
// become 4-digit escapes.
func escapeRune(r rune) string {
	if esc, ok := escapes[r]; ok {
		return esc
	}
	if r < 0x20 {
		return fmt.Sprintf(`\x%02x`, r)
	}
	if utf16.IsSurrogate(r) || r == 0xfffe || r == 0xffff {
		return fmt.Sprintf(`\x%04x`, r)
	}
	return string(r)
}
