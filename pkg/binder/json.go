package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxBodySize is the default maximum size for JSON and XML request bodies (1MB).
const DefaultMaxBodySize = 1 << 20 // 1 MB

// JSON creates a JSON binder function.
//
// Value types from this module implement json.Unmarshaler, so an invalid
// barcode, country code or postcode in the body fails the bind with an error
// that still matches domainmodel.ErrInvalidValue. On failure the target is
// reset to its zero value.
//
// Example:
//
//	type Product struct {
//		EAN  barcode.EAN  `json:"ean"`
//		ISBN barcode.ISBN `json:"isbn"`
//	}
//
//	r.Post("/api/ean", handler.Wrap(h,
//		handler.WithBinder[handler.Context, Product](binder.JSON()),
//	))
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if err := contextDone(r, ErrFailedToParseJSON); err != nil {
			return err
		}

		if err := requireMediaType(r, mediaJSON); err != nil {
			return err
		}

		return decodeJSON(r, v)
	}
}

func decodeJSON(r *http.Request, v any) error {
	body, err := readBody(r, ErrFailedToParseJSON)
	if err != nil {
		return err
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields() // Always use strict mode

	if err := decoder.Decode(v); err != nil {
		resetTarget(v)
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}
		return fmt.Errorf("%w: %w", ErrFailedToParseJSON, err)
	}

	// Ensure entire body was consumed
	var extra json.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		resetTarget(v)
		return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
	}

	return nil
}

// readBody reads the request body up to DefaultMaxBodySize.
func readBody(r *http.Request, parseErr error) ([]byte, error) {
	if r.Body == nil {
		return nil, fmt.Errorf("%w: empty body", parseErr)
	}

	limitedReader := io.LimitReader(r.Body, DefaultMaxBodySize+1)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %v", parseErr, err)
	}

	if len(body) > DefaultMaxBodySize {
		return nil, fmt.Errorf("%w: %w (max %d bytes)", parseErr, ErrRequestTooLarge, DefaultMaxBodySize)
	}

	return body, nil
}

func contextDone(r *http.Request, parseErr error) error {
	ctx := r.Context()
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", parseErr, ctx.Err())
	default:
		return nil
	}
}
