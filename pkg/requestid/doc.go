// Package requestid attaches correlation identifiers to HTTP requests.
//
// Middleware reuses a client-supplied X-Request-ID header when it is 1-128
// characters of letters, digits, '-' or '_', and otherwise generates a UUIDv4.
// The ID is stored in the request context and echoed in the response header.
// LoggerExtractor injects it into slog records as "request_id":
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
// FromContext returns "" when no ID is present.
package requestid
