package tester

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// displayWidth returns the number of terminal columns name occupies.
// The name is NFC-normalised first so combining sequences count once, and
// East Asian wide and fullwidth runes count as two columns.
func displayWidth(name string) int {
	n := 0
	for _, r := range norm.NFC.String(name) {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// statusPrefix renders the indented name padded out to column.
// Padding never goes negative: a name wider than the column is followed
// directly by the marker.
func statusPrefix(name string, depth uint, column int) string {
	indent := strings.Repeat("  ", int(depth))
	pad := max(column-len(indent)-displayWidth(name), 0)
	return indent + name + strings.Repeat(" ", pad)
}
