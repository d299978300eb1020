// Package handler provides type-safe HTTP request handling for the domain
// value API.
//
// Handlers are generic functions that receive a bound request value and return
// a Response. Binding, error classification and rendering are wired through
// Wrap so handlers only deal with validated domain values:
//
//	type lookupRequest struct {
//		Value barcode.EAN `path:"value"`
//	}
//
//	func getEAN(ctx handler.Context, req lookupRequest) handler.Response {
//		return handler.Respond(req.Value)
//	}
//
//	r.Get("/api/ean/{value}", handler.Wrap(getEAN,
//		handler.WithBinder[handler.Context, lookupRequest](binder.Path(chi.URLParam)),
//		handler.WithErrorHandler[handler.Context, lookupRequest](errorHandler),
//	))
//
// # Responses
//
// Every body is an Envelope with data, meta and error members. JSON and XML
// force a format, Respond negotiates it from the Accept header and defaults
// to JSON:
//
//	handler.JSON(data)                       // 200 OK, application/json
//	handler.XML(data, handler.WithStatus(201)) // 201 Created, application/xml
//	handler.Respond(data)                    // negotiated
//	handler.RespondError(err)                // negotiated error envelope
//	handler.Empty()                          // 204 No Content
//
// # Errors
//
// NewErrorHandler classifies errors before rendering them:
//
//   - domainmodel.DomainValueError: 400 with the rejected field and its translation key
//   - validator.ValidationErrors: 400 with one detail per field
//   - binder media type errors: 415, oversized bodies: 413, other bind errors: 400
//   - HTTPError: its own status code and key
//   - anything else: 500 with a generic message
//
// Client errors are logged at WARN and server errors at ERROR. When a
// Translator is configured, messages are localized for the request language.
//
// # Context
//
// Context embeds the request's context.Context and exposes the request and
// response writer. ContextValue and ContextValueOK read typed values stored
// under ContextKey keys.
package handler
