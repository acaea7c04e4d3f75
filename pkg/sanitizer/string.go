package sanitizer

import "strings"

// RemoveSpaces removes every U+0020 space. Tabs and other whitespace are kept,
// so callers that only tolerate typed spacing do not accept hidden characters.
func RemoveSpaces(s string) string {
	if strings.IndexByte(s, ' ') < 0 {
		return s
	}
	return strings.ReplaceAll(s, " ", "")
}

// ToUpperASCII uppercases a-z only. Unlike strings.ToUpper it never maps
// non-ASCII runes onto ASCII letters (e.g. 'ı' or 'ſ'), and never changes the length.
func ToUpperASCII(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; c >= 'a' && c <= 'z' {
			break
		}
	}
	if i == len(s) {
		return s
	}

	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// TrimLineEnding strips a trailing "\n" or "\r\n" and nothing else.
// Meaningful trailing spaces survive, unlike strings.TrimSpace.
func TrimLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
