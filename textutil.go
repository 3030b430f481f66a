package restyle

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/muesli/reflow/ansi"
)

// ReplaceText replaces the half-open rune range [start, stop) of s. A
// multi-rune replacement is inserted as-is; a single-rune replacement is
// repeated to fill the range's original length. Out-of-range indexes are
// clamped.
func ReplaceText(s string, start, stop int, replacement string) string {
	runes := []rune(s)
	if start < 0 {
		start = 0
	}
	if stop > len(runes) {
		stop = len(runes)
	}
	if start >= stop {
		return s
	}
	fill := replacement
	if n := len([]rune(replacement)); n == 1 {
		fill = strings.Repeat(replacement, stop-start)
	}
	return string(runes[:start]) + fill + string(runes[stop:])
}

// ReplaceANSI replaces each SGR escape sequence in s with the filler glyph
// repeated to the sequence's byte length, so byte offsets line up when
// inspecting where invisible sequences sit. Diagnostics only.
func ReplaceANSI(s string, filler rune) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == 0x1b {
			if end, seq, ok := scanSGR(s, i); ok {
				for range seq {
					b.WriteRune(filler)
				}
				i = end
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// Chars returns the grapheme clusters of s in order.
func Chars(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	g := graphemes.FromString(s)
	for g.Next() {
		out = append(out, g.Value())
	}
	return out
}

// SplitLines splits s on newlines. JoinLines(SplitLines(s)) == s for any s.
func SplitLines(s string) []string {
	return strings.Split(s, "\n")
}

// JoinLines joins lines with newlines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// Truncate shortens s to at most limit visible columns, ending with an
// ellipsis when anything was cut. Escape sequences in s are not counted
// but may be cut mid-style; intended for plain or stripped text.
func Truncate(s string, limit int) string {
	if ansi.PrintableRuneWidth(s) <= limit {
		return s
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return "…"
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

// unspaceCommas removes whitespace around commas so a tuple like
// "(.2, .5, .6)" survives whitespace splitting as one word.
func unspaceCommas(s string) string {
	if !strings.ContainsRune(s, ',') {
		return s
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, ",")
}

// removeBrackets strips round brackets.
func removeBrackets(s string) string {
	s = strings.ReplaceAll(s, "(", "")
	return strings.ReplaceAll(s, ")", "")
}
