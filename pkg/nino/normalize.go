package nino

import "github.com/dmitrymomot/nino/pkg/sanitizer"

// normalize strips spaces and uppercases ASCII letters.
var normalize = sanitizer.Compose(
	sanitizer.RemoveSpaces,
	sanitizer.ToUpperASCII,
)

// Normalize removes every space and uppercases ASCII letters.
// Non-ASCII characters are kept as is, so they can never fold into a valid letter.
// It does not validate.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	return normalize(raw)
}

// NormalizeStrict normalizes raw and pads results shorter than nine characters
// with a single trailing space, the strict representation of "no suffix".
func NormalizeStrict(raw string) string {
	s := Normalize(raw)
	if s == "" {
		return s
	}
	if len(s) < fullLen {
		return s + " "
	}
	return s
}
