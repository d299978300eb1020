package handler

import "errors"

// Package-level errors for common failure scenarios
var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrUnknownFormat indicates a response was asked to render an unsupported media type
	ErrUnknownFormat = errors.New("unknown response format")
)
