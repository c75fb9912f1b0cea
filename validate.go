package markin

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports input that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

const (
	minBinarySample = 64
	maxControlPct   = 2
)

// ValidateInput returns an error if src is not valid UTF-8 or appears binary.
func ValidateInput(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	var total, control int
	for _, b := range src {
		total++
		if b == 0x00 {
			return ErrBinaryInput
		}
		if isControlByte(b) {
			control++
		}
	}
	if total >= minBinarySample && control*100 >= total*maxControlPct {
		return ErrBinaryInput
	}
	return nil
}

func isControlByte(b byte) bool {
	switch {
	case b < 0x09:
		return true
	case b > 0x0D && b < 0x20:
		return true
	case b == 0x7F:
		return true
	}
	return false
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NormalizeLineEndings converts CRLF and lone CR line endings to LF.
func NormalizeLineEndings(src string) string {
	return lineEndings.Replace(src)
}
