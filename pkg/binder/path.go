package binder

import (
	"net/http"
)

// Path returns a binder for path parameters, e.g. Path(chi.URLParam).
// extractor is called once per tagged field with the parameter name.
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return wrapf(ErrFailedToParsePath, "extractor function is nil")
		}
		return bindToStruct(v, "path", ErrFailedToParsePath, func(name string) (string, bool) {
			value := extractor(r, name)
			return value, value != ""
		})
	}
}
