package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// Form creates a binder for application/x-www-form-urlencoded and
// multipart/form-data requests.
//
// Supported struct tags:
//   - `form:"name"` - binds to form field "name"
//   - `form:"-"`    - skips the field
//
// Supported types:
//   - Basic types: string, int, int64, uint, uint64, float32, float64, bool
//   - Types implementing encoding.TextUnmarshaler, including every value type
//     in this module
//   - Slices of the above for multi-value fields
//   - Pointers for optional fields
//
// Example:
//
//	type AddressForm struct {
//		CountryCode location.CountryCode `form:"country_code"`
//		Postcode    location.UKPostcode  `form:"postcode"`
//	}
//
//	r.Post("/api/postcode", handler.Wrap(h,
//		handler.WithBinder[handler.Context, AddressForm](binder.Form()),
//	))
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mediaType, err := parseMediaType(r)
		if err != nil {
			return err
		}

		var values map[string][]string

		switch mediaType {
		case mediaURLEncoded:
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.PostForm

		case mediaMultipart:
			_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || params["boundary"] == "" {
				return fmt.Errorf("%w: missing boundary in content type", ErrFailedToParseForm)
			}

			// Note: Request size limits should be handled at server/middleware level
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}

			values = make(map[string][]string)
			if r.MultipartForm != nil {
				values = r.MultipartForm.Value
			}

		default:
			return fmt.Errorf("%w: got %s, expected %s or %s", ErrUnsupportedMediaType, mediaType, mediaURLEncoded, mediaMultipart)
		}

		return bindToStruct(v, "form", values, ErrFailedToParseForm)
	}
}
