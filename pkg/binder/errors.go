package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseXML     = errors.New("failed to parse XML request body")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrFailedToParseQuery   = errors.New("failed to parse query parameters")
	ErrFailedToParsePath    = errors.New("failed to parse path parameters")
	ErrMissingContentType   = errors.New("missing content type")
	ErrRequestTooLarge      = errors.New("request body too large")

	// ErrBinderNotApplicable is returned by binders that do not handle the
	// request, e.g. a body binder on a request without a body.
	ErrBinderNotApplicable = errors.New("binder not applicable")
)
