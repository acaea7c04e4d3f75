// Package nino validates and canonicalizes UK National Insurance Numbers.
//
// A NINO is two prefix letters, six digits and an optional suffix letter
// (A, B, C or D), e.g. "AA 37 07 73 A". The package checks input against two
// rulesets:
//
//   - Lenient: tolerant of case and embedded spaces; at least 8 raw characters.
//   - Strict: exactly 9 raw characters, the suffix (or a trailing space) must
//     be supplied explicitly.
//
// Both rulesets share one grammar, applied to the normalized form (spaces
// removed, ASCII letters uppercased):
//
//   - first letter is not D, F, I, Q, U or V
//   - second letter is not D, F, I, O, Q, U or V
//   - the prefix is not BG, GB, NK, KN, TN, NT or ZZ
//   - followed by exactly six digits and at most one of A, B, C, D or space
//
// # Usage
//
//	if !nino.IsValid(input) {
//		return nino.ErrInvalidFormat
//	}
//
//	canonical, err := nino.CanonicalForm("aa 37 07 73 a") // "AA370773A"
//	day, err := nino.WeekdayFor("AA370773")               // time.Thursday
//
//	n, err := nino.New("aa370773a")
//	if err != nil {
//		// errors.Is(err, nino.ErrInvalidFormat)
//	}
//	n.Body()   // "AA370773"
//	n.Suffix() // "A"
//
// FromParts builds a Field from an already split body and suffix without any
// checks; use Field.IsValid to verify such values later.
//
// # Benefit day
//
// The last two digits of the numeric part select the benefit payment day:
// 00-19 Monday, 20-39 Tuesday, 40-59 Wednesday, 60-79 Thursday and 80-99
// Friday. Saturday and Sunday are never returned.
//
// # Error Handling
//
// Every failing operation returns ErrInvalidFormat. Boolean predicates never
// fail, they only report.
//
// Package functions are pure and safe for concurrent use. A Field is a plain
// value; mutate a shared instance only under the caller's own lock.
package nino
