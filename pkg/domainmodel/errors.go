package domainmodel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue is matched by every *DomainValueError.
	ErrInvalidValue = errors.New("invalid domain value")

	// ErrNilValue is returned when a nil value is supplied where a scalar is required.
	ErrNilValue = errors.New("value is nil")

	// ErrEmptyValue is returned when an empty string is supplied.
	ErrEmptyValue = errors.New("value is empty")

	// ErrUnsupportedType is returned when untyped input cannot be coerced to the representation type.
	ErrUnsupportedType = errors.New("unsupported value type")

	// ErrNotUnsigned is returned when input is not a non-negative decimal integer.
	ErrNotUnsigned = errors.New("value is not an unsigned integer")
)

// DomainValueError reports a value rejected by a domain type, either because it
// could not be coerced to the representation type or because it failed the
// type's validation predicate. Both cases carry the same message and
// translation key.
type DomainValueError struct {
	Field             string
	Value             any
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
	Err               error
}

// NewDomainValueError builds the error for field with the rejected raw input and its cause.
func NewDomainValueError(field string, raw any, cause error) *DomainValueError {
	return &DomainValueError{
		Field:          field,
		Value:          raw,
		Message:        fmt.Sprintf("value is not a valid %s", field),
		TranslationKey: "domain." + field + ".invalid",
		TranslationValues: map[string]any{
			"field": field,
			"value": fmt.Sprint(raw),
		},
		Err: cause,
	}
}

func (e *DomainValueError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Field, e.Message, e.Err)
}

func (e *DomainValueError) Unwrap() error {
	return e.Err
}

func (e *DomainValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

// AsDomainValueError extracts the first *DomainValueError from err's chain.
func AsDomainValueError(err error) (*DomainValueError, bool) {
	if err == nil {
		return nil, false
	}

	var dve *DomainValueError
	if errors.As(err, &dve) {
		return dve, true
	}
	return nil, false
}

func IsDomainValueError(err error) bool {
	_, ok := AsDomainValueError(err)
	return ok
}
