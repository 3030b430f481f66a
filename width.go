package restyle

import (
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
)

// TextWidth returns the on-screen column width of s: markup tags and SGR
// escape sequences contribute nothing, wide East-Asian code points count
// as two columns and zero-width code points as none.
func TextWidth(s string) int {
	return ansi.PrintableRuneWidth(RemoveMarkup(s))
}

// TextLen returns the column width of s, which must already be free of
// markup and escape sequences.
func TextLen(s string) int {
	return runewidth.StringWidth(s)
}
