// Package clientip resolves the address of the client behind a request.
//
// Forwarding headers are only honoured when they are listed as trusted, since
// any client can set them. Deploy behind a proxy and trust the header that
// proxy sets:
//
//	r.Use(clientip.Middleware("X-Forwarded-For"))
//
//	ip := clientip.FromContext(r.Context())
//
// Without trusted headers the host part of RemoteAddr is used.
package clientip
