// Package sanitizer provides small, composable string transforms used to
// normalize identifiers before validation and to mask them before they are
// logged or rendered.
//
// Transforms are plain func(string) string values. The higher-order Apply and
// Compose helpers build pipelines out of them:
//
//	normalize := sanitizer.Compose(
//	    sanitizer.RemoveSpaces,
//	    sanitizer.ToUpperASCII,
//	)
//
//	normalize("aa 37 07 73 a") // "AA370773A"
//
// All transforms are ASCII-only on purpose: identifiers such as National
// Insurance Numbers are defined over ASCII letters and digits, and Unicode case
// mapping would fold look-alike characters into valid ones.
//
// # Masking
//
//	sanitizer.MaskMiddle("AA370773A", 2, 3) // "AA****73A"
//
// # Error handling
//
// None of the helpers returns an error.
//
// The package has no global state; all helpers are safe for concurrent use.
package sanitizer
