package restyle

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// Tokenize performs the combined markup and ANSI scan over s, returning
// literal runs and style tokens in source order. Doubled braces unescape
// into literal braces; semicolon parameter lists stay single ANSI tokens.
// An unterminated tag aborts the scan.
func Tokenize(s string) ([]Token, error) {
	var toks []Token
	var lit strings.Builder
	flushLit := func() {
		if lit.Len() > 0 {
			toks = append(toks, Token{Kind: tokenLiteral, Text: lit.String()})
			lit.Reset()
		}
	}
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == 0x1b:
			if end, seq, ok := scanSGR(s, i); ok {
				flushLit()
				kind, closeSeq := classifySGR(seq)
				switch kind {
				case sgrReset:
					toks = append(toks, Token{Kind: tokenANSIReset, Text: seq})
				case sgrOpen:
					toks = append(toks, Token{Kind: tokenANSIOpen, Text: seq, Close: closeSeq})
				default:
					// Close codes and uninterpreted SGR params both pass
					// through; the latter simply match no open entry.
					toks = append(toks, Token{Kind: tokenANSIClose, Text: seq})
				}
				i = end
				continue
			}
			lit.WriteByte(c)
			i++
		case c == '{':
			if i+1 < len(s) && s[i+1] == '{' {
				lit.WriteByte('{')
				i += 2
				continue
			}
			end, body, ok := scanTag(s, i)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnterminatedTag, errSnippet(s[i:]))
			}
			words, isClose := splitTagBody(body)
			flushLit()
			kind := tokenMarkupOpen
			if isClose {
				kind = tokenMarkupClose
			}
			toks = append(toks, Token{Kind: kind, Text: body, Words: words})
			i = end
		case c == '}':
			if i+1 < len(s) && s[i+1] == '}' {
				lit.WriteByte('}')
				i += 2
				continue
			}
			lit.WriteByte('}')
			i++
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flushLit()
	return toks, nil
}

func errSnippet(s string) string {
	if k := strings.IndexByte(s, '\n'); k >= 0 {
		s = s[:k]
	}
	if len(s) > 24 {
		s = s[:24] + "…"
	}
	return s
}

// Reshape compiles markup in s to ANSI and wraps the result so that no
// line exceeds width visible columns. Every introduced break closes the
// active styles and resets before the newline, and the continuation line
// reopens the styles active at the break. Words wider than width land on
// their own line unsplit; whitespace-free runs past the dense-run
// threshold wrap glyph by glyph.
func Reshape(s string, width int, opts ...Option) (string, error) {
	return reflow(s, width, true, newConfig(opts...))
}

// Expand compiles markup and doubled-brace escapes in s to ANSI without
// introducing line breaks. Styles still open in s at its end are closed.
func Expand(s string, opts ...Option) (string, error) {
	return reflow(s, 0, false, newConfig(opts...))
}

func reflow(s string, width int, wrap bool, cfg config) (string, error) {
	if err := ValidateInput([]byte(s)); err != nil {
		return "", err
	}
	toks, err := Tokenize(s)
	if err != nil {
		return "", err
	}
	r := &reshaper{
		width: width,
		wrap:  wrap,
		cfg:   cfg,
		res:   resolver{theme: cfg.theme},
	}
	for _, tok := range toks {
		if tok.Kind == tokenLiteral {
			r.literal(tok.Text)
			continue
		}
		op, err := r.makeOp(tok)
		if err != nil {
			return "", err
		}
		r.styleOp(op)
	}
	r.finish()
	return r.out.String(), nil
}

// styleOp is a deferred style mutation: resolved markup entries, close
// words, or a raw ANSI token.
type styleOp struct {
	kind  tokenKind
	opens []styleEntry
	names []string
	raw   string
}

// wordPiece is either visible word text or a style op embedded in the word.
type wordPiece struct {
	text  string
	width int
	op    *styleOp
}

type reshaper struct {
	width int
	wrap  bool
	cfg   config
	res   resolver
	stack styleStack

	out       strings.Builder
	line      strings.Builder
	lineWidth int

	spaces      strings.Builder
	spacesWidth int

	pieces []wordPiece
	buf    strings.Builder
	bufW   int
}

func (r *reshaper) makeOp(tok Token) (*styleOp, error) {
	op := &styleOp{kind: tok.Kind, raw: tok.Text}
	switch tok.Kind {
	case tokenMarkupOpen:
		op.opens = make([]styleEntry, 0, len(tok.Words))
		for _, w := range tok.Words {
			e, err := r.res.resolve(w)
			if err != nil {
				return nil, err
			}
			op.opens = append(op.opens, e)
		}
	case tokenMarkupClose:
		op.names = tok.Words
	case tokenANSIOpen:
		op.opens = []styleEntry{{name: tok.Text, open: tok.Text, close: tok.Close, ansi: true}}
	}
	return op, nil
}

// literal walks a text run, splitting it into words at whitespace and
// feeding break events for newlines. Carriage returns are dropped.
func (r *reshaper) literal(text string) {
	i := 0
	for i < len(text) {
		c := text[i]
		switch c {
		case '\n':
			r.hardBreak()
			i++
		case '\r':
			i++
		case ' ', '\t':
			r.flushWord()
			r.spaces.WriteByte(c)
			r.spacesWidth++
			i++
		default:
			rn, size := utf8.DecodeRuneInString(text[i:])
			r.buf.WriteString(text[i : i+size])
			r.bufW += runewidth.RuneWidth(rn)
			i += size
		}
	}
}

// styleOp applies a style token. With a word or pending whitespace in
// flight the op travels with the word so that a break decided before the
// word still snapshots the stack as it stood at the break point; otherwise
// it applies immediately at the current line position.
func (r *reshaper) styleOp(op *styleOp) {
	if r.wordPending() || r.spaces.Len() > 0 {
		r.flushText()
		r.pieces = append(r.pieces, wordPiece{op: op})
		return
	}
	r.applyOp(op)
}

func (r *reshaper) applyOp(op *styleOp) {
	switch op.kind {
	case tokenMarkupOpen:
		for _, e := range op.opens {
			r.stack.push(e)
			r.line.WriteString(e.open)
		}
	case tokenMarkupClose:
		for _, c := range r.stack.closeNames(op.names) {
			r.line.WriteString(c)
		}
	case tokenANSIOpen:
		r.stack.push(op.opens[0])
		r.line.WriteString(op.raw)
	case tokenANSIClose:
		r.stack.closeByCode(op.raw)
		r.line.WriteString(op.raw)
	case tokenANSIReset:
		r.stack.clear()
		r.line.WriteString(op.raw)
	}
}

func (r *reshaper) wordPending() bool {
	return len(r.pieces) > 0 || r.buf.Len() > 0
}

func (r *reshaper) flushText() {
	if r.buf.Len() > 0 {
		r.pieces = append(r.pieces, wordPiece{text: r.buf.String(), width: r.bufW})
		r.buf.Reset()
		r.bufW = 0
	}
}

func (r *reshaper) flushWord() {
	r.flushText()
	if len(r.pieces) == 0 {
		return
	}
	if r.wrap && r.wordGraphemes() >= r.cfg.denseThreshold {
		r.placeDense()
	} else {
		r.placeWord()
	}
	r.pieces = r.pieces[:0]
}

func (r *reshaper) wordWidth() int {
	w := 0
	for _, p := range r.pieces {
		w += p.width
	}
	return w
}

func (r *reshaper) wordGraphemes() int {
	n := 0
	for _, p := range r.pieces {
		if p.op != nil {
			continue
		}
		g := graphemes.FromString(p.text)
		for g.Next() {
			n++
		}
	}
	return n
}

// placeWord is the greedy wrap step: break before the word when it will
// not fit on a non-empty line, consuming the pending whitespace; an
// oversized word on an empty line is emitted whole.
func (r *reshaper) placeWord() {
	w := r.wordWidth()
	if r.wrap && r.lineWidth > 0 && w > 0 && r.lineWidth+r.spacesWidth+w > r.width {
		r.breakLine()
	} else {
		r.emitSpaces()
	}
	for _, p := range r.pieces {
		if p.op != nil {
			r.applyOp(p.op)
			continue
		}
		r.line.WriteString(p.text)
		r.lineWidth += p.width
	}
}

// placeDense wraps a whitespace-free run glyph by glyph, so a break may
// fall between any two grapheme clusters.
func (r *reshaper) placeDense() {
	first := true
	for _, p := range r.pieces {
		if p.op != nil {
			r.applyOp(p.op)
			continue
		}
		g := graphemes.FromString(p.text)
		for g.Next() {
			gw := runewidth.StringWidth(g.Value())
			if first {
				if r.lineWidth > 0 && r.lineWidth+r.spacesWidth+gw > r.width {
					r.breakLine()
				} else {
					r.emitSpaces()
				}
				first = false
			} else if r.lineWidth > 0 && r.lineWidth+gw > r.width {
				r.breakLine()
			}
			r.line.WriteString(g.Value())
			r.lineWidth += gw
		}
	}
}

func (r *reshaper) emitSpaces() {
	if r.spaces.Len() == 0 {
		return
	}
	r.line.WriteString(r.spaces.String())
	r.lineWidth += r.spacesWidth
	r.spaces.Reset()
	r.spacesWidth = 0
}

// breakLine ends the current line with a visual reset and reopens the
// active styles on the next one. The pending whitespace is the separator
// the wrap consumed.
func (r *reshaper) breakLine() {
	for _, c := range r.stack.closeAll() {
		r.line.WriteString(c)
	}
	r.line.WriteString(ansiReset)
	r.out.WriteString(r.line.String())
	r.out.WriteByte('\n')
	r.line.Reset()
	r.lineWidth = 0
	r.spaces.Reset()
	r.spacesWidth = 0
	for _, o := range r.stack.snapshot() {
		r.line.WriteString(o)
	}
}

// hardBreak handles a newline present in the input. Trailing whitespace
// stays on the line; styles reset and reopen only when any are active.
func (r *reshaper) hardBreak() {
	r.flushWord()
	r.emitSpaces()
	if r.stack.active() {
		for _, c := range r.stack.closeAll() {
			r.line.WriteString(c)
		}
		r.line.WriteString(ansiReset)
	}
	r.out.WriteString(r.line.String())
	r.out.WriteByte('\n')
	r.line.Reset()
	r.lineWidth = 0
	for _, o := range r.stack.snapshot() {
		r.line.WriteString(o)
	}
}

// finish flushes the last line and force-closes anything still open.
func (r *reshaper) finish() {
	r.flushWord()
	r.emitSpaces()
	for _, c := range r.stack.closeAll() {
		r.line.WriteString(c)
	}
	r.stack.clear()
	r.out.WriteString(r.line.String())
}
