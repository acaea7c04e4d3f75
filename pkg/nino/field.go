package nino

import "time"

// Field holds a NINO split into its body and suffix.
//
// A Field built by New or Set is always valid. FromParts performs no checks,
// so such values should be verified with IsValid before use.
type Field struct {
	body   string
	suffix string
}

// New normalizes and validates raw and returns the resulting Field.
// It returns ErrInvalidFormat if raw is not a valid NINO.
func New(raw string) (Field, error) {
	var f Field
	if err := f.Set(raw); err != nil {
		return Field{}, err
	}
	return f, nil
}

// MustNew is like New but panics on invalid input.
// Intended for constants and test fixtures.
func MustNew(raw string) Field {
	f, err := New(raw)
	if err != nil {
		panic(err)
	}
	return f
}

// FromParts builds a Field from a trusted, pre-split body and suffix.
// No validation is performed.
func FromParts(body, suffix string) Field {
	return Field{body: body, suffix: suffix}
}

// Set replaces the body and suffix with the normalized raw value.
// On error the Field is left unchanged.
func (f *Field) Set(raw string) error {
	s := Normalize(raw)
	if !validateLenient(s) {
		return ErrInvalidFormat
	}
	f.body = s[:bodyLen]
	f.suffix = s[bodyLen:]
	return nil
}

// Body returns the two letters and six digits, without the suffix.
// The body alone identifies a person.
func (f Field) Body() string { return f.body }

// Suffix returns the suffix letter, or "" when there is none.
func (f Field) Suffix() string { return f.suffix }

// String returns body and suffix concatenated.
func (f Field) String() string { return f.body + f.suffix }

// IsZero reports whether the Field holds no value.
func (f Field) IsZero() bool { return f.body == "" && f.suffix == "" }

// IsValid re-checks the stored value against the lenient rules.
func (f Field) IsValid() bool {
	return validateLenient(f.body + f.suffix)
}

// IsValidStrict re-checks the stored value against the strict rules.
// A Field without a suffix only passes when built with a space suffix.
func (f Field) IsValidStrict() bool {
	return validateStrict(f.body + f.suffix)
}

// Weekday returns the benefit day of week derived from the body.
func (f Field) Weekday() (time.Weekday, error) {
	return WeekdayFor(f.body)
}

// MarshalText implements encoding.TextMarshaler.
func (f Field) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty input resets the
// Field; anything else must be a valid NINO.
func (f *Field) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*f = Field{}
		return nil
	}
	return f.Set(string(text))
}
