package helpers

import (
	"strings"
	"unicode/utf8"
)

const replacementChar = "�"

// DecodeReplacingInvalid returns data as a string with one U+FFFD for every
// maximal ill-formed subsequence. A truncated sequence such as E2 82 becomes a
// single U+FFFD, while a byte that can never start a sequence becomes one each.
func DecodeReplacingInvalid(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	var sb strings.Builder
	sb.Grow(len(data))
	for i := 0; i < len(data); {
		if data[i] < utf8.RuneSelf {
			sb.WriteByte(data[i])
			i++
			continue
		}
		r, size := utf8.DecodeRune(data[i:])
		if r != utf8.RuneError || size > 1 {
			sb.Write(data[i : i+size])
			i += size
			continue
		}
		sb.WriteString(replacementChar)
		i += invalidPrefixLen(data[i:])
	}
	return sb.String()
}

// invalidPrefixLen reports how many bytes of the ill-formed sequence at the
// start of data belong to one replacement. It is always at least 1.
func invalidPrefixLen(data []byte) int {
	lead := data[0]
	var need int
	lo, hi := byte(0x80), byte(0xBF)
	switch {
	case lead >= 0xC2 && lead <= 0xDF:
		need = 1
	case lead == 0xE0:
		need, lo = 2, 0xA0
	case lead == 0xED:
		need, hi = 2, 0x9F
	case lead >= 0xE1 && lead <= 0xEF:
		need = 2
	case lead == 0xF0:
		need, lo = 3, 0x90
	case lead == 0xF4:
		need, hi = 3, 0x8F
	case lead >= 0xF1 && lead <= 0xF3:
		need = 3
	default:
		return 1
	}
	n := 1
	for ; n <= need && n < len(data); n++ {
		c := data[n]
		if n > 1 {
			lo, hi = 0x80, 0xBF
		}
		if c < lo || c > hi {
			break
		}
	}
	return n
}
