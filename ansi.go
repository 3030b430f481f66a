package restyle

import (
	"strconv"
	"strings"
)

const (
	csi       = "\x1b["
	ansiReset = "\x1b[0m"
	closeFg   = "\x1b[39m"
	closeBg   = "\x1b[49m"
)

// scanSGR reads an SGR escape sequence (ESC '[' params 'm') starting at the
// ESC at s[i]. Parameters are digits and semicolons only; a semicolon
// delimited list such as 38;2;51;128;153 stays one sequence. Escapes with a
// different final byte are not SGR and report ok == false.
func scanSGR(s string, i int) (end int, seq string, ok bool) {
	if i+1 >= len(s) || s[i] != 0x1b || s[i+1] != '[' {
		return 0, "", false
	}
	for j := i + 2; j < len(s); j++ {
		c := s[j]
		if (c >= '0' && c <= '9') || c == ';' {
			continue
		}
		if c == 'm' {
			return j + 1, s[i : j+1], true
		}
		return 0, "", false
	}
	return 0, "", false
}

// HasANSI reports whether s contains at least one SGR escape sequence.
func HasANSI(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != 0x1b {
			continue
		}
		if _, _, ok := scanSGR(s, i); ok {
			return true
		}
	}
	return false
}

// RemoveANSI strips every SGR escape sequence from s, leaving all other
// bytes untouched.
func RemoveANSI(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == 0x1b {
			if end, _, ok := scanSGR(s, i); ok {
				i = end
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// ANSICodes returns every SGR escape sequence in s, in source order, as raw
// strings.
func ANSICodes(s string) []string {
	var codes []string
	i := 0
	for i < len(s) {
		if s[i] == 0x1b {
			if end, seq, ok := scanSGR(s, i); ok {
				codes = append(codes, seq)
				i = end
				continue
			}
		}
		i++
	}
	return codes
}

// LastANSICode returns the final SGR escape sequence in s, or "" if none.
func LastANSICode(s string) string {
	last := ""
	i := 0
	for i < len(s) {
		if s[i] == 0x1b {
			if end, seq, ok := scanSGR(s, i); ok {
				last = seq
				i = end
				continue
			}
		}
		i++
	}
	return last
}

type sgrKind uint8

const (
	sgrOpen sgrKind = iota
	sgrClose
	sgrReset
	sgrOther
)

// classifySGR classifies a raw SGR sequence by its leading parameter and,
// for opens, returns the paired close sequence: colors close with default
// foreground/background, attributes with their individual off codes.
func classifySGR(seq string) (kind sgrKind, closeSeq string) {
	params := seq[len(csi) : len(seq)-1]
	if params == "" || params == "0" {
		return sgrReset, ""
	}
	head := params
	if k := strings.IndexByte(params, ';'); k >= 0 {
		head = params[:k]
	}
	n, err := strconv.Atoi(head)
	if err != nil {
		return sgrOther, ""
	}
	switch {
	case n == 1 || n == 2:
		return sgrOpen, csi + "22m"
	case n == 3:
		return sgrOpen, csi + "23m"
	case n == 4:
		return sgrOpen, csi + "24m"
	case n == 5 || n == 6:
		return sgrOpen, csi + "25m"
	case n == 7:
		return sgrOpen, csi + "27m"
	case n == 8:
		return sgrOpen, csi + "28m"
	case n == 9:
		return sgrOpen, csi + "29m"
	case n == 22 || n == 23 || n == 24 || n == 25 || n == 27 || n == 28 || n == 29:
		return sgrClose, ""
	case n == 39:
		return sgrClose, ""
	case n == 49:
		return sgrClose, ""
	case n >= 30 && n <= 38, n >= 90 && n <= 97:
		return sgrOpen, closeFg
	case n >= 40 && n <= 48, n >= 100 && n <= 107:
		return sgrOpen, closeBg
	case n == 53:
		return sgrOpen, csi + "55m"
	case n == 55:
		return sgrClose, ""
	}
	return sgrOther, ""
}
