package restyle

import "strings"

// scanTag reads a tag starting at the '{' at s[i]. It returns the byte
// position just past the closing '}', the trimmed tag body, and whether a
// well-formed tag was present. A body that is empty, spans a newline, or
// contains another '{' is not a tag.
func scanTag(s string, i int) (end int, body string, ok bool) {
	for j := i + 1; j < len(s); j++ {
		switch s[j] {
		case '}':
			body = strings.TrimSpace(s[i+1 : j])
			if body == "" {
				return 0, "", false
			}
			return j + 1, body, true
		case '{', '\n':
			return 0, "", false
		}
	}
	return 0, "", false
}

// splitTagBody splits a tag body into style words. A leading '/' marks a
// close tag. Comma tuples like (.2, .5, .6) are normalized into a single
// word before splitting.
func splitTagBody(body string) (words []string, isClose bool) {
	if strings.HasPrefix(body, "/") {
		isClose = true
		body = strings.TrimSpace(body[1:])
	}
	words = strings.Fields(unspaceCommas(body))
	return words, isClose
}

// HasMarkup reports whether s contains at least one well-formed open/close
// tag pair. Doubled braces are escapes and never count as markup.
func HasMarkup(s string) bool {
	var open map[string]bool
	i := 0
	for i < len(s) {
		switch s[i] {
		case '{':
			if i+1 < len(s) && s[i+1] == '{' {
				i += 2
				continue
			}
			if end, body, ok := scanTag(s, i); ok {
				words, isClose := splitTagBody(body)
				if isClose {
					for _, w := range words {
						if open[w] {
							return true
						}
					}
				} else {
					if open == nil {
						open = make(map[string]bool, 4)
					}
					for _, w := range words {
						open[w] = true
					}
				}
				i = end
				continue
			}
			i++
		case '}':
			if i+1 < len(s) && s[i+1] == '}' {
				i += 2
				continue
			}
			i++
		default:
			i++
		}
	}
	return false
}

// RemoveMarkup strips every well-formed tag from s. Literal text, doubled
// braces, and braces that do not form a tag are left exactly as written.
func RemoveMarkup(s string) string {
	if !strings.ContainsAny(s, "{}") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '{' {
			if i+1 < len(s) && s[i+1] == '{' {
				b.WriteString("{{")
				i += 2
				continue
			}
			if end, _, ok := scanTag(s, i); ok {
				i = end
				continue
			}
			b.WriteByte('{')
			i++
			continue
		}
		if c == '}' && i+1 < len(s) && s[i+1] == '}' {
			b.WriteString("}}")
			i += 2
			continue
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}
