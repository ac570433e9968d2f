package descriptor

import "strings"

// isSlotToken reports whether s starts with an optional B or S followed
// by at least one ASCII digit. Anything after the digits is ignored.
func isSlotToken(s string) bool {
	i := 0
	if i < len(s) && (s[i] == 'B' || s[i] == 'S') {
		i++
	}
	return i < len(s) && isDigit(s[i])
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// atoi decodes the leading integer of s the way C atoi does: leading
// blanks are skipped, an optional sign is honoured, decoding stops at the
// first non-digit and an input without digits yields 0. Negative values
// wrap.
func atoi(s string) uint32 {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r' || s[i] == '\v' || s[i] == '\f') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	var n uint32
	for ; i < len(s) && isDigit(s[i]); i++ {
		n = n*10 + uint32(s[i]-'0')
	}
	if neg {
		return -n
	}
	return n
}

// toZeroBased converts a user-facing 1-based slot to an internal index.
// Zero wraps to the maximum uint32.
func toZeroBased(raw uint32) uint32 {
	return raw - 1
}

// split breaks s on sep and drops empty fields, so leading, trailing and
// doubled separators are ignored.
func split(s string, sep rune) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == sep })
}
