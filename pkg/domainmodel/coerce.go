package domainmodel

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Coerce converts untyped wire data into the representation type T.
//
// For uint64 it accepts decimal strings (surrounding whitespace ignored),
// byte slices, json.Number, non-negative integers and integral floats. For
// string it accepts strings, byte slices, numbers and fmt.Stringer values.
// nil is rejected for both.
func Coerce[T Scalar](raw any) (T, error) {
	var zero T
	switch any(zero).(type) {
	case uint64:
		v, err := coerceUint(raw)
		if err != nil {
			return zero, err
		}
		return any(v).(T), nil
	case string:
		v, err := coerceString(raw)
		if err != nil {
			return zero, err
		}
		return any(v).(T), nil
	}
	return zero, ErrUnsupportedType
}

func coerceUint(raw any) (uint64, error) {
	switch v := raw.(type) {
	case nil:
		return 0, ErrNilValue
	case uint64:
		return v, nil
	case uint:
		return uint64(v), nil
	case uint8:
		return uint64(v), nil
	case uint16:
		return uint64(v), nil
	case uint32:
		return uint64(v), nil
	case int:
		return signedToUint(int64(v))
	case int8:
		return signedToUint(int64(v))
	case int16:
		return signedToUint(int64(v))
	case int32:
		return signedToUint(int64(v))
	case int64:
		return signedToUint(v)
	case float32:
		return floatToUint(float64(v))
	case float64:
		return floatToUint(v)
	case string:
		return parseUint(v)
	case []byte:
		return parseUint(string(v))
	case json.Number:
		return parseUint(v.String())
	case fmt.Stringer:
		return parseUint(v.String())
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedType, raw)
	}
}

func signedToUint(v int64) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNotUnsigned, v)
	}
	return uint64(v), nil
}

func floatToUint(f float64) (uint64, error) {
	if f < 0 || f != math.Trunc(f) || f >= float64(math.MaxUint64) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %v", ErrNotUnsigned, f)
	}
	return uint64(f), nil
}

func parseUint(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmptyValue
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotUnsigned, s)
	}
	return v, nil
}

func coerceString(raw any) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", ErrNilValue
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case json.Number:
		return v.String(), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedType, raw)
	}
}
