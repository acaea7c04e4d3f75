package sanitizer

import "strings"

// MaskMiddle keeps the first head and last tail runes and replaces the rest
// with '*'. Strings too short to leave anything hidden are masked entirely.
func MaskMiddle(s string, head, tail int) string {
	if head < 0 {
		head = 0
	}
	if tail < 0 {
		tail = 0
	}

	runes := []rune(s)
	length := len(runes)

	if head+tail >= length {
		return strings.Repeat("*", length)
	}

	return string(runes[:head]) + strings.Repeat("*", length-head-tail) + string(runes[length-tail:])
}
