package cli

import "errors"

var (
	ErrUnknownKind   = errors.New("unknown value type")
	ErrUnknownFormat = errors.New("unknown output format")
	ErrInvalidValues = errors.New("one or more values are invalid")
)
