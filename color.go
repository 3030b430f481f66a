package restyle

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// colorValue is the resolved form of a color word: a fixed 16-color index,
// a 256-palette index, or an RGB triplet.
type colorValue struct {
	kind    colorKind
	index   int
	r, g, b uint8
}

type colorKind uint8

const (
	colorNamed colorKind = iota
	colorIndexed
	colorRGB
)

var namedColors = map[string]int{
	"black":          0,
	"red":            1,
	"green":          2,
	"yellow":         3,
	"blue":           4,
	"magenta":        5,
	"cyan":           6,
	"white":          7,
	"gray":           8,
	"grey":           8,
	"bright_black":   8,
	"bright_red":     9,
	"bright_green":   10,
	"bright_yellow":  11,
	"bright_blue":    12,
	"bright_magenta": 13,
	"bright_cyan":    14,
	"bright_white":   15,
}

// parseColor resolves a color word: a palette name, a 256-color index, a
// #rrggbb hex value, or an (r,g,b) tuple of 0-255 integers or 0-1 floats.
// The word must already be stripped of any on_ prefix.
func parseColor(spec string) (colorValue, bool) {
	spec = strings.ToLower(strings.TrimSpace(spec))
	if spec == "" {
		return colorValue{}, false
	}
	if idx, ok := namedColors[spec]; ok {
		return colorValue{kind: colorNamed, index: idx}, true
	}
	if isDigits(spec) {
		n, err := strconv.Atoi(spec)
		if err != nil || n > 255 {
			return colorValue{}, false
		}
		return colorValue{kind: colorIndexed, index: n}, true
	}
	if strings.HasPrefix(spec, "#") {
		c, err := colorful.Hex(spec)
		if err != nil {
			return colorValue{}, false
		}
		r, g, b := c.RGB255()
		return colorValue{kind: colorRGB, r: r, g: g, b: b}, true
	}
	if strings.HasPrefix(spec, "(") && strings.HasSuffix(spec, ")") {
		return parseTuple(removeBrackets(spec))
	}
	return colorValue{}, false
}

// parseTuple parses "r,g,b" with either integer 0-255 or float 0-1
// components. Mixed forms resolve as floats when any component holds a dot.
func parseTuple(body string) (colorValue, bool) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return colorValue{}, false
	}
	floats := strings.Contains(body, ".")
	var ch [3]uint8
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return colorValue{}, false
		}
		if floats {
			f, err := strconv.ParseFloat(p, 64)
			if err != nil || f < 0 || f > 1 {
				return colorValue{}, false
			}
			ch[i] = uint8(f*255 + 0.5)
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 255 {
			return colorValue{}, false
		}
		ch[i] = uint8(n)
	}
	if floats {
		// Round-trip through colorful so float tuples and hex values share
		// one conversion path.
		c := colorful.Color{R: float64(ch[0]) / 255, G: float64(ch[1]) / 255, B: float64(ch[2]) / 255}
		r, g, b := c.RGB255()
		return colorValue{kind: colorRGB, r: r, g: g, b: b}, true
	}
	return colorValue{kind: colorRGB, r: ch[0], g: ch[1], b: ch[2]}, true
}

// sgr returns the open/close escape pair for the color, as foreground or
// background.
func (c colorValue) sgr(bg bool) (open, closeSeq string) {
	var col termenv.Color
	switch c.kind {
	case colorNamed:
		col = termenv.ANSIColor(c.index)
	case colorIndexed:
		col = termenv.ANSI256Color(c.index)
	case colorRGB:
		col = termenv.RGBColor(fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b))
	}
	open = csi + col.Sequence(bg) + "m"
	if bg {
		return open, closeBg
	}
	return open, closeFg
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
