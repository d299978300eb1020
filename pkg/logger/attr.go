package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Field records the name of the record field a value belongs to under the key "field".
// If name is empty, it returns an empty Attr.
func Field(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("field", name)
}

// Kind records the domain value kind (ean, isbn, countrycode, postcode) under the key "kind".
func Kind(name string) slog.Attr {
	return slog.String("kind", name)
}

// RawValue records the raw input a value was built from under the key "raw_value".
// If v is nil, it returns an empty Attr.
func RawValue(v any) slog.Attr {
	if v == nil {
		return slog.Attr{}
	}
	return slog.Any("raw_value", v)
}

// MediaType records a wire format under the key "media_type".
func MediaType(mt string) slog.Attr {
	return slog.String("media_type", mt)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Handler records the handler name under the key "handler".
func Handler(name string) slog.Attr {
	return slog.String("handler", name)
}
