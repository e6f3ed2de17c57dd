package argfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// PointerIndent returns the indent that places a marker directly under
// the rune at index within s, accounting for double-width characters.
// Failure-message builders use it to point at the failing position of a
// formatted string:
//
//	fmt.Printf("%s\n%s↑\n", formatted, argfmt.PointerIndent(formatted, i))
//
// An index at or past the end of s aligns the marker after the last rune.
func PointerIndent(s string, index int) string {
	width := 0
	n := 0
	for _, r := range s {
		if n == index {
			break
		}
		width += runewidth.RuneWidth(r)
		n++
	}
	return strings.Repeat(" ", width)
}
