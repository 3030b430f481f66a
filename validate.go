package restyle

import "unicode/utf8"

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput returns an error if the input is not valid UTF-8 or appears
// to be binary. ESC bytes are legal here: raw SGR sequences are part of the
// engine's input language.
func ValidateInput(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	var control int
	for _, b := range src {
		if b == 0x00 {
			return ErrBinaryInput
		}
		if isControlByte(b) {
			control++
		}
	}
	if len(src) >= minBinarySample && control*100 >= len(src)*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

func isControlByte(b byte) bool {
	switch b {
	case 0x09, 0x0A, 0x0D, 0x1B:
		return false
	}
	if b < 0x20 || b == 0x7F {
		return true
	}
	return false
}
