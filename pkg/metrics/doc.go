// Package metrics exposes Prometheus metrics for the HTTP API.
//
//	reg := prometheus.NewRegistry()
//	m := metrics.New(reg)
//
//	r.Use(m.Middleware)
//	r.Handle("/metrics", metrics.Handler(reg))
//
// Request metrics are labelled with the chi route pattern
// ("/v1/nino/weekday/{nino}") rather than the request path, so National
// Insurance numbers never become label values.
package metrics
