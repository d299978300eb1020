package handler

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"net/http"

	"github.com/whatishedoing/domainmodels/pkg/domainmodel"
	"github.com/whatishedoing/domainmodels/pkg/validator"
)

// Envelope is the standard response structure shared by JSON and XML bodies.
// Meta has no XML rendering.
type Envelope struct {
	XMLName xml.Name       `json:"-" xml:"response"`
	Data    any            `json:"data,omitempty" xml:"data,omitempty"`
	Meta    map[string]any `json:"meta,omitempty" xml:"-"`
	Error   *ErrorDetail   `json:"error,omitempty" xml:"error,omitempty"`
}

// JSONResponse is kept as the name most callers decode JSON bodies into.
type JSONResponse = Envelope

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string        `json:"code,omitempty" xml:"code,omitempty"`
	Message string        `json:"message,omitempty" xml:"message,omitempty"`
	Field   string        `json:"field,omitempty" xml:"field,omitempty"`
	Details []FieldDetail `json:"details,omitempty" xml:"details>detail,omitempty"`
}

// FieldDetail describes a single rejected field.
type FieldDetail struct {
	Field   string `json:"field" xml:"field,attr"`
	Code    string `json:"code,omitempty" xml:"code,attr,omitempty"`
	Message string `json:"message" xml:",chardata"`
}

// envelopeResponse implements Response for JSON and XML rendering.
// An empty format negotiates against the request's Accept header.
type envelopeResponse struct {
	status int
	format string
	body   Envelope
}

func (e *envelopeResponse) Render(w http.ResponseWriter, r *http.Request) error {
	format := e.format
	if format == "" {
		format = Negotiate(r)
	}

	switch format {
	case MediaTypeJSON:
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(e.status)
		return json.NewEncoder(w).Encode(e.body)
	case MediaTypeXML:
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.WriteHeader(e.status)
		if _, err := w.Write([]byte(xml.Header)); err != nil {
			return err
		}
		return xml.NewEncoder(w).Encode(e.body)
	default:
		return ErrUnknownFormat
	}
}

// ResponseOption configures an envelope response
type ResponseOption func(*envelopeResponse)

// JSONOption is the option type accepted by JSON and JSONError.
type JSONOption = ResponseOption

// WithStatus sets custom HTTP status code
func WithStatus(status int) ResponseOption {
	return func(r *envelopeResponse) {
		r.status = status
	}
}

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return WithStatus(status)
}

// WithMeta adds metadata to response
func WithMeta(meta map[string]any) ResponseOption {
	return func(r *envelopeResponse) {
		r.body.Meta = meta
	}
}

// WithJSONMeta adds metadata to response
func WithJSONMeta(meta map[string]any) JSONOption {
	return WithMeta(meta)
}

func newEnvelope(format string, v any, opts []ResponseOption) Response {
	r := &envelopeResponse{
		status: http.StatusOK,
		format: format,
	}

	// Handle different input types for flexible response creation
	switch val := v.(type) {
	case Envelope:
		r.body = val
	case *ErrorDetail:
		r.body.Error = val
		r.status = http.StatusInternalServerError
	case error:
		r.body.Error = errorToDetail(val, &r.status)
	default:
		r.body.Data = v
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func newErrorEnvelope(format string, err any, opts []ResponseOption) Response {
	r := &envelopeResponse{
		status: http.StatusInternalServerError,
		format: format,
	}

	switch e := err.(type) {
	case *ErrorDetail:
		r.body.Error = e
	case error:
		r.body.Error = errorToDetail(e, &r.status)
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// JSON creates a JSON response with options
func JSON(v any, opts ...JSONOption) Response {
	return newEnvelope(MediaTypeJSON, v, opts)
}

// JSONError creates a JSON error response from an error with options
func JSONError(err any, opts ...JSONOption) Response {
	return newErrorEnvelope(MediaTypeJSON, err, opts)
}

// XML creates an XML response with options
func XML(v any, opts ...ResponseOption) Response {
	return newEnvelope(MediaTypeXML, v, opts)
}

// XMLError creates an XML error response from an error with options
func XMLError(err any, opts ...ResponseOption) Response {
	return newErrorEnvelope(MediaTypeXML, err, opts)
}

// Respond creates a response rendered as JSON or XML depending on the
// request's Accept header.
//
// Example:
//
//	func getEAN(ctx handler.Context, req lookupRequest) handler.Response {
//		return handler.Respond(req.Value)
//	}
func Respond(v any, opts ...ResponseOption) Response {
	return newEnvelope("", v, opts)
}

// RespondError creates a negotiated error response.
func RespondError(err any, opts ...ResponseOption) Response {
	return newErrorEnvelope("", err, opts)
}

// errorToDetail converts error to ErrorDetail and sets appropriate status
func errorToDetail(err error, status *int) *ErrorDetail {
	// Set default error status if still at OK (200)
	if *status == http.StatusOK {
		*status = http.StatusInternalServerError
	}

	info := classifyError(err)
	*status = info.StatusCode
	return info.detail()
}

// validationDetails flattens validator errors into field details.
func validationDetails(errs validator.ValidationErrors) []FieldDetail {
	details := make([]FieldDetail, 0, len(errs))
	for _, e := range errs {
		details = append(details, FieldDetail{
			Field:   e.Field,
			Code:    e.TranslationKey,
			Message: e.Message,
		})
	}
	return details
}

// domainValueDetail describes a rejected domain value.
func domainValueDetail(dve *domainmodel.DomainValueError) FieldDetail {
	return FieldDetail{
		Field:   dve.Field,
		Code:    dve.TranslationKey,
		Message: dve.Message,
	}
}

// isHTTPError reports whether err wraps an HTTPError.
func isHTTPError(err error) (HTTPError, bool) {
	var httpErr HTTPError
	ok := errors.As(err, &httpErr)
	return httpErr, ok
}
