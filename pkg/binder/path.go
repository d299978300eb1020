package binder

import (
	"fmt"
	"net/http"
	"reflect"
)

// Path creates a path parameter binder function using the provided extractor.
// The extractor function is called for each struct field to get its path parameter value.
//
// It supports struct tags for custom parameter names:
//   - `path:"name"` - binds to path parameter "name"
//   - `path:"-"` - skips the field
//
// Example with chi router:
//
//	type LookupRequest struct {
//		EAN barcode.EAN `path:"value"`
//	}
//
//	r.Get("/api/ean/{value}", handler.Wrap(h,
//		handler.WithBinder[handler.Context, LookupRequest](binder.Path(chi.URLParam)),
//	))
func Path(extractor func(r *http.Request, fieldName string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrFailedToParsePath)
		}

		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Ptr || rv.IsNil() {
			return fmt.Errorf("%w: target must be a non-nil pointer", ErrFailedToParsePath)
		}

		rv = rv.Elem()
		if rv.Kind() != reflect.Struct {
			return fmt.Errorf("%w: target must be a pointer to struct", ErrFailedToParsePath)
		}

		rt := rv.Type()

		for i := range rv.NumField() {
			field := rv.Field(i)
			fieldType := rt.Field(i)

			// Skip unexported fields and embedded records
			if !field.CanSet() || fieldType.Anonymous {
				continue
			}

			paramName, skip := parseFieldTag(fieldType, "path")
			if skip {
				continue
			}

			value := extractor(r, paramName)
			if value == "" {
				// No value provided, leave as zero value
				continue
			}

			if err := setFieldValue(field, fieldType.Type, []string{value}); err != nil {
				return fmt.Errorf("%w: field %s: %w", ErrFailedToParsePath, fieldType.Name, err)
			}
		}

		return nil
	}
}
