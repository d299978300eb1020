package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/whatishedoing/domainmodels/pkg/binder"
	"github.com/whatishedoing/domainmodels/pkg/domainmodel"
	"github.com/whatishedoing/domainmodels/pkg/logger"
	"github.com/whatishedoing/domainmodels/pkg/requestid"
	"github.com/whatishedoing/domainmodels/pkg/validator"
)

// Translator resolves a translation key for the language of the request.
// It returns an empty string when no translation exists.
type Translator func(r *http.Request, key string, values map[string]any) string

// ErrorHandlerConfig configures the default error handler
type ErrorHandlerConfig struct {
	// Translator localizes error messages. Messages stay in English when nil.
	Translator Translator
}

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Code       string
	Message    string
	Field      string
	Details    []FieldDetail
	LogLevel   slog.Level

	translationKey    string
	translationValues map[string]any
}

func (i ErrorInfo) detail() *ErrorDetail {
	return &ErrorDetail{
		Code:    i.Code,
		Message: i.Message,
		Field:   i.Field,
		Details: i.Details,
	}
}

// Helper functions for HTTP status code classification
func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// classifyError analyzes the error and returns structured error information
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode:     http.StatusInternalServerError,
		Code:           ErrInternalServerError.Key,
		Message:        "An error occurred processing your request",
		translationKey: "errors." + ErrInternalServerError.Key,
	}

	if httpErr, ok := isHTTPError(err); ok {
		info.StatusCode = httpErr.Code
		info.Code = httpErr.Key
		info.Message = http.StatusText(httpErr.Code)
		info.translationKey = "errors." + httpErr.Key
	}

	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		info = clientError(info, ErrUnsupportedMediaType)
	case errors.Is(err, binder.ErrRequestTooLarge):
		info = clientError(info, ErrRequestEntityTooLarge)
	case isBindError(err):
		info = clientError(info, ErrBadRequest)
	}

	// Domain value errors override the generic bind classification
	if dve, ok := domainmodel.AsDomainValueError(err); ok {
		info = clientError(info, ErrBadRequest)
		info.Code = dve.TranslationKey
		info.Message = dve.Message
		info.Field = dve.Field
		info.Details = []FieldDetail{domainValueDetail(dve)}
		info.translationKey = dve.TranslationKey
		info.translationValues = dve.TranslationValues
	}

	if verrs := validator.ExtractValidationErrors(err); len(verrs) > 0 {
		info = clientError(info, ErrBadRequest)
		info.Code = "validation_error"
		info.Message = "Validation failed"
		info.Details = validationDetails(verrs)
		info.translationKey = "validation.failed"
	}

	info.LogLevel = determineLogLevel(info.StatusCode)
	return info
}

func clientError(info ErrorInfo, httpErr HTTPError) ErrorInfo {
	info.StatusCode = httpErr.Code
	info.Code = httpErr.Key
	info.Message = http.StatusText(httpErr.Code)
	info.translationKey = "errors." + httpErr.Key
	return info
}

func isBindError(err error) bool {
	return errors.Is(err, binder.ErrFailedToParseJSON) ||
		errors.Is(err, binder.ErrFailedToParseXML) ||
		errors.Is(err, binder.ErrFailedToParseForm) ||
		errors.Is(err, binder.ErrFailedToParseQuery) ||
		errors.Is(err, binder.ErrFailedToParsePath)
}

// translate localizes the message and the field details in place.
func (i *ErrorInfo) translate(r *http.Request, tr Translator) {
	if tr == nil {
		return
	}
	if msg := tr(r, i.translationKey, i.translationValues); msg != "" {
		i.Message = msg
	}
	for n, d := range i.Details {
		if d.Code == "" {
			continue
		}
		values := map[string]any{"field": d.Field}
		if d.Code == i.translationKey {
			values = i.translationValues
		}
		if msg := tr(r, d.Code, values); msg != "" {
			i.Details[n].Message = msg
		}
	}
}

// logError logs the error with comprehensive context
func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()
	requestID := requestid.FromContext(r.Context())

	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.RequestID(requestID),
		logger.Error(err),
		logger.Field(info.Field),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("error_handler"),
	)
}

// NewErrorHandler creates the default error handler. It classifies the error,
// logs it and renders an error envelope in the format the client accepts.
// Configure this once in main.go and pass to all routes.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		info := classifyError(err)
		logError(log, ctx, err, info)
		info.translate(ctx.Request(), cfg.Translator)

		resp := RespondError(info.detail(), WithStatus(info.StatusCode))
		if renderErr := resp.Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			log.Error("failed to render error response",
				logger.RequestID(requestid.FromContext(ctx.Request().Context())),
				logger.Error(renderErr),
				logger.Event("render_error_response"),
			)
		}
	}
}
