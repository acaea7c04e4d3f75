package validator

import "github.com/dmitrymomot/nino/pkg/nino"

// ValidNINO validates a UK National Insurance Number under the lenient rules:
// case and spacing are ignored and the suffix letter is optional.
func ValidNINO(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return nino.IsValid(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid National Insurance number",
			TranslationKey: "validation.nino",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidNINOStrict validates a National Insurance number in the exact
// nine-character layout, with an explicit suffix letter or trailing space.
func ValidNINOStrict(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return nino.IsValidStrict(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a National Insurance number in the form AA123456A",
			TranslationKey: "validation.nino_strict",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidNINOField validates a value that was built without checks, e.g. with nino.FromParts.
func ValidNINOField(field string, value nino.Field) Rule {
	return Rule{
		Check: func() bool {
			return value.IsValid()
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid National Insurance number",
			TranslationKey: "validation.nino",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
