// Package diag renders a single lexical or syntactic diagnostic (spec
// §7) as a human-readable, line-anchored message with a caret under the
// offending column, following the worked example in the teacher's
// token/file_test.go (ExampleFile_GetLineBytes): a "file:line:col:
// message" header, the source line, and a caret line aligned by display
// width via golang.org/x/text/width.
//
// Unlike the teacher's example, this package never re-seeks the
// original io.Reader to fetch a line of source text — per spec §4.1 the
// character source is a single forward pass and file read errors are
// fatal, so re-reading isn't available. Callers pass the line text they
// already have in hand (for example a test fixture's own copy of the
// input); neither source nor scanner exposes the text of a line.
package diag

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/apoorva106/compiler-project/token"
)

// Render formats one diagnostic against lineText, the full text of the
// source line the problem occurred on. pos.Column is the 1-based byte
// column within lineText (as returned by token.File.Position). The source is
// constrained to 7-bit ASCII (spec's Non-goal on Unicode classification
// beyond ASCII), so every rune here has display width 1 in practice;
// width.LookupRune is still consulted exactly as the teacher's example
// does, so a future encoding change degrades gracefully rather than
// silently misaligning the caret.
func Render(pos token.Position, msg, lineText string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", pos, msg)
	fmt.Fprintf(&b, "|%s\n", lineText)
	col := col1(lineText, pos.Column)
	fmt.Fprintf(&b, "|%s^\n", strings.Repeat(" ", col))
	return b.String()
}

// col1 computes the caret's display-cell offset for the 1-based byte
// column col within lineText, summing display widths of every rune
// strictly before it.
func col1(lineText string, col int) int {
	bytePos := col - 1
	if bytePos > len(lineText) {
		bytePos = len(lineText)
	}
	return runeWidth(lineText[:bytePos])
}

// runeWidth sums the display-cell width of every graphic rune in s.
func runeWidth(s string) int {
	w := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if !unicode.IsGraphic(r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			w += 2
		default:
			w++
		}
	}
	return w
}
