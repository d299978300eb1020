package handler

import (
	"errors"
	"net/http"

	"github.com/whatishedoing/domainmodels/pkg/binder"
)

// HandlerFunc handles a request already bound into R. By the time it runs,
// every domain value in R has been constructed, so it only sees valid input:
//
//	lookup := handler.HandlerFunc[handler.Context, lookupRequest](
//		func(_ handler.Context, req lookupRequest) handler.Response {
//			return handler.Respond(req.Value.Value()) // GET /api/postcode/{value}
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter. A Render error goes to
// the ErrorHandler.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses HTTP requests into typed values.
type Bind func(r *http.Request, v any) error

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc. It only runs after binding succeeded, so it
// sees accepted values; the API counts them this way per kind.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures the Wrap function.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

// wrapConfig holds configuration for Wrap.
type wrapConfig[C Context, R any] struct {
	binders        []Bind
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C, R]
}

// WithBinder replaces the binders with b alone.
func WithBinder[C Context, R any](b Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if b != nil {
			c.binders = []Bind{b}
		}
	}
}

// WithBinders appends binders, run in order. A binder returning
// binder.ErrBinderNotApplicable is skipped; any other error stops the chain.
// POST /api/{type} decodes the body and then checks required fields:
//
//	handler.WithBinders[handler.Context, Address](binder.Body(), requirePostcode)
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.binders = append(c.binders, binders...)
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets a custom context factory.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithDecorators adds decorators; the first one listed is the outermost.
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// defaultErrorHandler writes a plain-text status. Anything that is not an
// HTTPError, rejected domain values included, becomes a 500; routes install
// NewErrorHandler to map those.
func defaultErrorHandler[C Context](ctx C, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(ctx.ResponseWriter(), httpErr.Key, httpErr.Code)
		return
	}
	http.Error(ctx.ResponseWriter(), err.Error(), http.StatusInternalServerError)
}

// Wrap turns a typed HandlerFunc into an http.HandlerFunc. The request value
// goes through the binders, then the decorated handler, then Render:
//
//	r.Get("/api/postcode/{value}", handler.Wrap(lookup,
//		handler.WithBinder[handler.Context, lookupRequest](binder.Path(chi.URLParam)),
//		handler.WithErrorHandler[handler.Context, lookupRequest](handler.NewErrorHandler(log, cfg)),
//	))
//
// A nil Response is reported as ErrNilResponse.
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler:   defaultErrorHandler[C],
		contextFactory: defaultContext[C],
	}
	for _, opt := range opts {
		opt(cfg)
	}

	next := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		next = cfg.decorators[i](next)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		req, err := bindRequest[R](r, cfg.binders)
		if err != nil {
			cfg.errorHandler(ctx, err)
			return
		}

		response := next(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}

// defaultContext panics when C is a custom context; those need WithContextFactory.
func defaultContext[C Context](w http.ResponseWriter, r *http.Request) C {
	if c, ok := any(NewContext(w, r)).(C); ok {
		return c
	}
	panic("cannot use default context factory with custom context type - provide WithContextFactory")
}

func bindRequest[R any](r *http.Request, binders []Bind) (R, error) {
	var req R
	for _, bind := range binders {
		if err := bind(r, &req); err != nil && !errors.Is(err, binder.ErrBinderNotApplicable) {
			return req, err
		}
	}
	return req, nil
}
