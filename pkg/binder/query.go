package binder

import "net/http"

// Query returns a binder for URL query parameters. The first value of a
// repeated parameter wins.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		values := r.URL.Query()
		return bindToStruct(v, "query", ErrFailedToParseQuery, func(name string) (string, bool) {
			vs, ok := values[name]
			if !ok || len(vs) == 0 {
				return "", false
			}
			return vs[0], true
		})
	}
}
