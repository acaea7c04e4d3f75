package nino

const (
	bodyLen   = 8
	fullLen   = 9
	digitsAt  = 2
	weekdayAt = 6
)

// Letters that may never appear in the prefix positions.
const (
	bannedFirst  = "DFIQUV"
	bannedSecond = "DFIOQUV"
	suffixes     = "ABCD "
)

var bannedPrefixes = map[string]struct{}{
	"BG": {}, "GB": {},
	"NK": {}, "KN": {},
	"TN": {}, "NT": {},
	"ZZ": {},
}

// matchGrammar reports whether an already normalized string is a NINO:
// two permitted letters, six digits and an optional suffix.
func matchGrammar(s string) bool {
	if len(s) != bodyLen && len(s) != fullLen {
		return false
	}

	if !isUpper(s[0]) || containsByte(bannedFirst, s[0]) {
		return false
	}
	if !isUpper(s[1]) || containsByte(bannedSecond, s[1]) {
		return false
	}
	if _, banned := bannedPrefixes[s[:digitsAt]]; banned {
		return false
	}

	for i := digitsAt; i < bodyLen; i++ {
		if !isDigit(s[i]) {
			return false
		}
	}

	if len(s) == fullLen && !containsByte(suffixes, s[bodyLen]) {
		return false
	}

	return true
}

// validateLenient applies the raw length pre-filter before the grammar.
func validateLenient(raw string) bool {
	if len(raw) < bodyLen {
		return false
	}
	return matchGrammar(Normalize(raw))
}

// validateStrict only admits input of exactly nine raw characters.
func validateStrict(raw string) bool {
	if len(raw) != fullLen {
		return false
	}
	return matchGrammar(Normalize(raw))
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func containsByte(set string, c byte) bool {
	for i := 0; i < len(set); i++ {
		if set[i] == c {
			return true
		}
	}
	return false
}
