package domainmodel

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Scalar is the set of primitive representation types a validated value may wrap.
type Scalar interface {
	uint64 | string
}

// Model is the read-only contract of a validated value.
type Model[T Scalar] interface {
	// Value returns the canonical representation.
	Value() T
	// String returns the canonical textual rendering.
	String() string
	// IsZero reports whether the value is the inert uninitialized instance.
	IsZero() bool
}

// Kind binds a concrete value type M to its field name and validating
// constructor. New reports a plain cause error; Kind wraps it into a
// *DomainValueError.
type Kind[M Model[T], T Scalar] struct {
	Field string
	New   func(T) (M, error)
}

// Construct validates raw and returns a populated instance.
func (k Kind[M, T]) Construct(raw T) (M, error) {
	m, err := k.New(raw)
	if err != nil {
		var zero M
		return zero, k.invalid(raw, err)
	}
	return m, nil
}

// FromUntyped coerces raw into T and then delegates to Construct.
// Coercion failures are reported the same way as validation failures.
func (k Kind[M, T]) FromUntyped(raw any) (M, error) {
	v, err := Coerce[T](raw)
	if err != nil {
		var zero M
		return zero, k.invalid(raw, err)
	}
	return k.Construct(v)
}

// TryParse is the non-failing variant of Construct.
func (k Kind[M, T]) TryParse(raw T) (M, bool) {
	m, err := k.Construct(raw)
	if err != nil {
		var zero M
		return zero, false
	}
	return m, true
}

// TryFromUntyped is the non-failing variant of FromUntyped.
func (k Kind[M, T]) TryFromUntyped(raw any) (M, bool) {
	m, err := k.FromUntyped(raw)
	if err != nil {
		var zero M
		return zero, false
	}
	return m, true
}

// Must is like Construct but panics on invalid input.
func (k Kind[M, T]) Must(raw T) M {
	m, err := k.Construct(raw)
	if err != nil {
		panic(err)
	}
	return m
}

func (k Kind[M, T]) IsValid(raw T) bool {
	_, ok := k.TryParse(raw)
	return ok
}

// Equal reports whether a and b hold the same canonical value.
func (k Kind[M, T]) Equal(a, b M) bool {
	return a.Value() == b.Value()
}

// Hash returns a deterministic hash of the canonical textual form.
func (k Kind[M, T]) Hash(m M) uint64 {
	return xxhash.Sum64String(m.String())
}

func (k Kind[M, T]) invalid(raw any, err error) error {
	if IsDomainValueError(err) {
		return err
	}
	return NewDomainValueError(k.Field, raw, err)
}

// Render returns the canonical textual form of a scalar.
func Render[T Scalar](v T) string {
	switch x := any(v).(type) {
	case uint64:
		return strconv.FormatUint(x, 10)
	case string:
		return x
	}
	return ""
}
