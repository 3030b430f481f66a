package restyle

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateInput(t *testing.T) {
	assert.NoError(t, ValidateInput([]byte("plain text")))
	assert.NoError(t, ValidateInput([]byte("")))
	assert.NoError(t, ValidateInput([]byte("tabs\tnewlines\nreturns\r")))
	assert.NoError(t, ValidateInput([]byte("\x1b[31mstyled\x1b[0m")))
	assert.NoError(t, ValidateInput([]byte("漢字")))
}

func TestValidateInputInvalidUTF8(t *testing.T) {
	err := ValidateInput([]byte{0xff, 0xfe, 0xfd})
	assert.True(t, errors.Is(err, ErrInvalidUTF8))
}

func TestValidateInputBinary(t *testing.T) {
	// A NUL byte is binary regardless of length.
	err := ValidateInput([]byte("a\x00b"))
	assert.True(t, errors.Is(err, ErrBinaryInput))

	// A long input dense with control bytes is binary.
	src := append([]byte(strings.Repeat("x", 90)), bytes.Repeat([]byte{0x01}, 10)...)
	err = ValidateInput(src)
	assert.True(t, errors.Is(err, ErrBinaryInput))

	// The same control bytes in a short sample pass; too little signal.
	assert.NoError(t, ValidateInput([]byte("ab\x01")))
}
