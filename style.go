package restyle

import (
	"fmt"
	"strings"
)

type attrPair struct {
	open  string
	close string
}

// attributes maps attribute tag words to fixed SGR open/close pairs.
// Several words are aliases for the same pair.
var attributes = map[string]attrPair{
	"bold":          {csi + "1m", csi + "22m"},
	"dim":           {csi + "2m", csi + "22m"},
	"faint":         {csi + "2m", csi + "22m"},
	"italic":        {csi + "3m", csi + "23m"},
	"underline":     {csi + "4m", csi + "24m"},
	"blink":         {csi + "5m", csi + "25m"},
	"inverse":       {csi + "7m", csi + "27m"},
	"reverse":       {csi + "7m", csi + "27m"},
	"hidden":        {csi + "8m", csi + "28m"},
	"conceal":       {csi + "8m", csi + "28m"},
	"strike":        {csi + "9m", csi + "29m"},
	"strikethrough": {csi + "9m", csi + "29m"},
	"overline":      {csi + "53m", csi + "55m"},
}

// styleEntry is one currently-active style dimension.
type styleEntry struct {
	name  string
	open  string
	close string
	ansi  bool
}

// resolver maps tag words to style entries. Color-like words go through
// parseColor; theme role names substitute the theme's color spec first.
type resolver struct {
	theme Theme
}

func (r resolver) resolve(word string) (styleEntry, error) {
	if p, ok := attributes[word]; ok {
		return styleEntry{name: word, open: p.open, close: p.close}, nil
	}
	spec := word
	bg := false
	if strings.HasPrefix(spec, "on_") {
		bg = true
		spec = spec[len("on_"):]
	}
	if r.theme != nil {
		if role, ok := roleSpec(r.theme.Roles(), spec); ok {
			spec = role
		}
	}
	if c, ok := parseColor(spec); ok {
		open, closeSeq := c.sgr(bg)
		return styleEntry{name: word, open: open, close: closeSeq}, nil
	}
	return styleEntry{}, fmt.Errorf("%w: %q", ErrUnknownTag, word)
}

// styleStack is the ordered collection of open style entries. It is a
// slice, not a strict LIFO: closes remove matching entries wherever they
// sit, and closes with no match are silent no-ops.
type styleStack struct {
	entries []styleEntry
}

func (st *styleStack) push(e styleEntry) {
	st.entries = append(st.entries, e)
}

// closeNames removes every entry whose name is in names and returns the
// removed entries' close codes in stack order.
func (st *styleStack) closeNames(names []string) []string {
	if len(st.entries) == 0 || len(names) == 0 {
		return nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var closes []string
	kept := st.entries[:0]
	for _, e := range st.entries {
		if want[e.name] {
			closes = append(closes, e.close)
			continue
		}
		kept = append(kept, e)
	}
	st.entries = kept
	return closes
}

// closeByCode removes every entry whose paired close sequence equals
// closeSeq. Raw ANSI closes arrive this way: ESC[39m closes any open
// foreground color regardless of how it was opened.
func (st *styleStack) closeByCode(closeSeq string) {
	if len(st.entries) == 0 {
		return
	}
	kept := st.entries[:0]
	for _, e := range st.entries {
		if e.close == closeSeq {
			continue
		}
		kept = append(kept, e)
	}
	st.entries = kept
}

// snapshot returns the open codes of every active entry in stack order,
// used to re-materialize style at the start of a continuation line.
func (st *styleStack) snapshot() []string {
	if len(st.entries) == 0 {
		return nil
	}
	opens := make([]string, len(st.entries))
	for i, e := range st.entries {
		opens[i] = e.open
	}
	return opens
}

// closeAll returns the close codes of every active entry in stack order
// without removing them; callers clear separately when the closes are
// final rather than a visual reset.
func (st *styleStack) closeAll() []string {
	if len(st.entries) == 0 {
		return nil
	}
	closes := make([]string, len(st.entries))
	for i, e := range st.entries {
		closes[i] = e.close
	}
	return closes
}

func (st *styleStack) clear() {
	st.entries = st.entries[:0]
}

func (st *styleStack) active() bool {
	return len(st.entries) > 0
}
