package nino

import (
	"strings"
	"time"

	"github.com/dmitrymomot/nino/pkg/sanitizer"
)

// IsValid reports whether raw is a NINO under the lenient rules: case and
// embedded spaces are ignored, the suffix is optional.
func IsValid(raw string) bool {
	return validateLenient(raw)
}

// IsValidStrict reports whether raw is a NINO in the exact nine-character
// layout, with an explicit suffix or a trailing space.
func IsValidStrict(raw string) bool {
	return validateStrict(raw)
}

// CanonicalForm returns the uppercase, space-free form of raw.
// Empty input is passed through unchanged.
func CanonicalForm(raw string) (string, error) {
	if raw != "" && !validateLenient(raw) {
		return "", ErrInvalidFormat
	}
	return Normalize(raw), nil
}

// StrictCanonicalForm is like CanonicalForm but always yields nine characters,
// padding a missing suffix with a space. Empty input is passed through unchanged.
func StrictCanonicalForm(raw string) (string, error) {
	if raw != "" && !validateLenient(raw) {
		return "", ErrInvalidFormat
	}
	return NormalizeStrict(raw), nil
}

// WeekdayFor returns the benefit day of week for raw.
// Only Monday through Friday are ever returned.
func WeekdayFor(raw string) (time.Weekday, error) {
	s := Normalize(raw)
	if !validateLenient(s) {
		return 0, ErrInvalidFormat
	}
	return weekdayOf(s), nil
}

// weekdayOf maps the last two digits in 20-wide bands: 0-19 Monday, 20-39 Tuesday, etc.
func weekdayOf(s string) time.Weekday {
	n := int(s[weekdayAt]-'0')*10 + int(s[weekdayAt+1]-'0')
	return time.Weekday(n/20 + 1)
}

// Display formats a valid NINO the way it is printed on letters and cards:
// "AA 37 07 73 A". Empty input is passed through unchanged.
func Display(raw string) (string, error) {
	s, err := CanonicalForm(raw)
	if err != nil || s == "" {
		return s, err
	}

	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < bodyLen; i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i : i+2])
	}
	if len(s) == fullLen {
		b.WriteByte(' ')
		b.WriteByte(s[bodyLen])
	}
	return b.String(), nil
}

// Mask hides the middle digits of raw for logs and audit trails, e.g.
// "AA370773A" becomes "AA****73A". Anything that is not NINO-shaped is masked entirely.
func Mask(raw string) string {
	s := Normalize(raw)
	if len(s) != bodyLen && len(s) != fullLen {
		return sanitizer.MaskMiddle(s, 0, 0)
	}
	return sanitizer.MaskMiddle(s, digitsAt, len(s)-weekdayAt)
}
