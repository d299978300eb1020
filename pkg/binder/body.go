package binder

import (
	"fmt"
	"mime"
	"net/http"
	"slices"
	"strings"
)

const (
	mediaJSON       = "application/json"
	mediaXML        = "application/xml"
	mediaTextXML    = "text/xml"
	mediaURLEncoded = "application/x-www-form-urlencoded"
	mediaMultipart  = "multipart/form-data"
)

// Body creates a binder that selects the decoder from the Content-Type header:
// JSON, XML or form data. Requests without a body are skipped with
// ErrBinderNotApplicable so Body can be combined with Path and Query binders.
//
// Example:
//
//	r.Put("/api/ean/{id}", handler.Wrap(h,
//		handler.WithBinders[handler.Context, UpdateProductRequest](
//			binder.Path(chi.URLParam),
//			binder.Body(),
//		),
//	))
func Body() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Body == nil || r.Body == http.NoBody {
			return ErrBinderNotApplicable
		}

		mediaType, err := parseMediaType(r)
		if err != nil {
			return err
		}

		switch {
		case mediaType == mediaJSON || strings.HasSuffix(mediaType, "+json"):
			return decodeJSON(r, v)
		case mediaType == mediaXML || mediaType == mediaTextXML || strings.HasSuffix(mediaType, "+xml"):
			return decodeXML(r, v)
		case mediaType == mediaURLEncoded || mediaType == mediaMultipart:
			return Form()(r, v)
		default:
			return fmt.Errorf("%w: got %s, expected JSON, XML or form data", ErrUnsupportedMediaType, mediaType)
		}
	}
}

// requireMediaType checks the Content-Type header against the allowed media types.
func requireMediaType(r *http.Request, allowed ...string) error {
	mediaType, err := parseMediaType(r)
	if err != nil {
		return err
	}
	if !slices.Contains(allowed, mediaType) {
		return fmt.Errorf("%w: got %s, expected %s", ErrUnsupportedMediaType, mediaType, strings.Join(allowed, " or "))
	}
	return nil
}

// parseMediaType extracts the media type without parameters.
func parseMediaType(r *http.Request) (string, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return "", fmt.Errorf("%w: missing content-type header", ErrMissingContentType)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: malformed content type %q", ErrUnsupportedMediaType, contentType)
	}
	return mediaType, nil
}
