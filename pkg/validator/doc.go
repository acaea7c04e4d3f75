// Package validator provides declarative validation rules with
// translation-friendly error metadata, including rules for UK National
// Insurance Numbers.
//
// A Rule pairs a boolean Check with a ValidationError. Rules are evaluated with
// Apply, which collects every failure, or First, which stops at the first one.
// Failures are returned as ValidationErrors, a slice that implements error.
//
// # Usage
//
//	err := validator.First(
//	    validator.RequiredString("nino", req.NINO),
//	    validator.ValidNINO("nino", req.NINO),
//	)
//	if err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // verrs.Messages() -> map[field][]message
//	    }
//	}
//
// # Error Handling
//
// errors.Is(err, ErrValidationFailed) matches any ValidationErrors, wrapped or
// not. Individual field errors can be inspected with Has, Get, Fields and
// Messages. Translation keys:
//
//   - validation.required
//   - validation.nino
//   - validation.nino_strict
//
// The package is stateless and goroutine-safe.
package validator
