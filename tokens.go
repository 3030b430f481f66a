package restyle

// Token is one unit of a combined markup and ANSI scan.
type Token struct {
	// Text holds the literal run for TokenLiteral, the tag body for markup
	// tokens, or the raw escape sequence for ANSI tokens.
	Text string
	// Words holds the whitespace-split style words of a markup tag body,
	// with comma tuples normalized into single atoms.
	Words []string
	// Close holds the paired close sequence for TokenANSIOpen.
	Close string
	Kind  tokenKind
}

type tokenKind uint8

// TokenKind is the exported alias of tokenKind for tooling and diagnostics.
type TokenKind = tokenKind

const (
	tokenLiteral tokenKind = iota
	tokenMarkupOpen
	tokenMarkupClose
	tokenANSIOpen
	tokenANSIClose
	tokenANSIReset
)

const (
	// TokenLiteral represents visible text.
	TokenLiteral tokenKind = tokenLiteral
	// TokenMarkupOpen represents an opening {tag}.
	TokenMarkupOpen tokenKind = tokenMarkupOpen
	// TokenMarkupClose represents a closing {/tag}.
	TokenMarkupClose tokenKind = tokenMarkupClose
	// TokenANSIOpen represents a raw SGR sequence that opens a style.
	TokenANSIOpen tokenKind = tokenANSIOpen
	// TokenANSIClose represents a raw SGR sequence that closes a style.
	TokenANSIClose tokenKind = tokenANSIClose
	// TokenANSIReset represents a raw full reset sequence.
	TokenANSIReset tokenKind = tokenANSIReset
)
