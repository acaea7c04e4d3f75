// Package binder decodes HTTP request data into request structs for
// handler.Wrap.
//
// Each binder reads one source and the binders of a handler run in order:
//
//	type WeekdayRequest struct {
//		NINO   string `path:"nino"`
//		Strict *bool  `query:"strict"`
//	}
//
//	r.Get("/weekday/{nino}", handler.Wrap(h.weekday,
//		handler.WithBinders[handler.Context, WeekdayRequest](
//			binder.Path(chi.URLParam),
//			binder.Query(),
//		),
//	))
//
// JSON decodes an application/json body of at most MaxJSONSize bytes and
// rejects unknown fields and trailing data. Path and Query fill fields by
// struct tag; a field without a tag uses its lowercased name and `-` skips it.
// Supported field kinds are string, bool, signed integers and pointers to
// them. String values are stored verbatim, whitespace included.
//
// Failures wrap ErrMissingContentType, ErrUnsupportedMediaType,
// ErrBodyTooLarge, ErrFailedToParseJSON, ErrFailedToParseQuery or
// ErrFailedToParsePath.
package binder
