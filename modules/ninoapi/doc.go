// Package ninoapi exposes National Insurance number validation over HTTP.
//
// Router returns a chi router meant to be mounted under a prefix:
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware, clientip.Middleware())
//	r.Mount("/v1/nino", ninoapi.Router(ninoapi.RouterOptions{Logger: log}))
//
// Endpoints:
//
//	POST /check                   {"nino": "...", "strict": false}  -> validity report
//	POST /parse                   {"nino": "...", "strict": false}  -> canonical forms, body, suffix, weekday
//	GET  /weekday/{nino}?strict=                                    -> benefit day
//
// Responses use the handler.JSONResponse envelope. A missing or invalid
// number yields 422 with per-field messages in error.details; malformed
// input yields 400, a non-JSON body 415 and an exhausted rate limit 429.
//
// Numbers are logged masked only.
package ninoapi
