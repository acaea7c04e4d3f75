// Package handler adapts typed handler functions to net/http.
//
// A HandlerFunc receives a Context and a request struct filled by binders,
// and returns a Response that renders itself:
//
//	type CheckRequest struct {
//		NINO string `json:"nino"`
//	}
//
//	func check(ctx handler.Context, req CheckRequest) handler.Response {
//		if err := validator.Apply(validator.ValidNINO("nino", req.NINO)); err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(map[string]bool{"valid": true})
//	}
//
//	r.Post("/check", handler.Wrap(check,
//		handler.WithBinders[handler.Context, CheckRequest](binder.JSON()),
//	))
//
// JSON responses share one envelope:
//
//	{"data": ..., "meta": {...}, "error": {"code": "...", "message": "...", "details": {...}}}
//
// JSONError maps validator.ValidationErrors to 422 with per-field details,
// HTTPError to its status, and binder failures to 400, 413 or 415.
// Anything else becomes a 500 whose message is not exposed.
//
// Binding and rendering failures go to the ErrorHandler; NewErrorHandler
// logs them and answers with JSONError.
package handler
