package binder

import (
	"net/http"
)

// Query creates a query parameter binder function.
//
// It supports struct tags for custom parameter names:
//   - `query:"name"` - binds to query parameter "name"
//   - `query:"-"` - skips the field
//   - `query:"name,omitempty"` - same as query:"name" for parsing
//
// Example:
//
//	type CheckRequest struct {
//		Codes []location.CountryCode `query:"code"` // ?code=gb&code=fr or ?code=gb,fr
//		Lang  string                 `query:"lang"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrFailedToParseQuery)
	}
}
