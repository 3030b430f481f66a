package restyle

import "errors"

var (
	// ErrUnknownTag reports a tag word that is neither an attribute, a
	// theme role, nor a parseable color.
	ErrUnknownTag = errors.New("unknown style tag")
	// ErrUnterminatedTag reports a { opened tag with no closing }.
	ErrUnterminatedTag = errors.New("unterminated markup tag")
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)
