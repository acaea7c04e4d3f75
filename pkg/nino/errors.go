package nino

import "errors"

// ErrInvalidFormat is returned when input is not a syntactically valid NINO.
//
//nolint:staticcheck // message is part of the public contract
var ErrInvalidFormat = errors.New("Nino Validation Failed")
