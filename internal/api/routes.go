package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/whatishedoing/domainmodels/handler"
	"github.com/whatishedoing/domainmodels/pkg/barcode"
	"github.com/whatishedoing/domainmodels/pkg/binder"
	"github.com/whatishedoing/domainmodels/pkg/domainmodel"
	"github.com/whatishedoing/domainmodels/pkg/location"
)

// endpoint describes the routes mounted for one domain value kind. C is the
// composite the kind travels in on POST and PUT.
type endpoint[C any, M domainmodel.Model[T], T domainmodel.Scalar] struct {
	name    string
	sample  M
	pick    func(C) M
	require func(C) error
}

type lookupRequest[M any] struct {
	Value M `path:"value"`
}

type updateRequest[C any] struct {
	ID   int `path:"id"`
	Body C   `path:"-"`
}

// bindUpdate decodes the body into req.Body and the path into the rest.
func bindUpdate[C any](r *http.Request, v any) error {
	req, ok := v.(*updateRequest[C])
	if !ok {
		return binder.ErrBinderNotApplicable
	}
	if err := binder.Body()(r, &req.Body); err != nil && !errors.Is(err, binder.ErrBinderNotApplicable) {
		return err
	}
	return binder.Path(chi.URLParam)(r, req)
}

// requireBinder runs check against the bound composite. It is chained after
// the body binder so a missing field is reported like any other bind failure.
func requireBinder[C any](check func(C) error) handler.Bind {
	return func(_ *http.Request, v any) error {
		req, ok := v.(*C)
		if !ok {
			return binder.ErrBinderNotApplicable
		}
		return check(*req)
	}
}

type noRequest struct{}

// countAccepted bumps the accepted counter for kind whenever the wrapped
// handler runs, which only happens once binding succeeded.
func countAccepted[R any](m *Metrics, kind string) handler.Decorator[handler.Context, R] {
	return func(next handler.HandlerFunc[handler.Context, R]) handler.HandlerFunc[handler.Context, R] {
		return func(ctx handler.Context, req R) handler.Response {
			m.IncrementAccepted(kind)
			return next(ctx, req)
		}
	}
}

func (e endpoint[C, M, T]) mount(r chi.Router, onError handler.ErrorHandler[handler.Context], m *Metrics) {
	pathBinder := binder.Path(chi.URLParam)

	r.Route("/api/"+e.name, func(r chi.Router) {
		r.Get("/", handler.Wrap(handler.HandlerFunc[handler.Context, noRequest](
			func(_ handler.Context, _ noRequest) handler.Response {
				return handler.Respond(e.sample)
			}),
			handler.WithErrorHandler[handler.Context, noRequest](onError),
		))

		r.Get("/{value}", handler.Wrap(handler.HandlerFunc[handler.Context, lookupRequest[M]](
			func(_ handler.Context, req lookupRequest[M]) handler.Response {
				return handler.Respond(req.Value.Value())
			}),
			handler.WithBinder[handler.Context, lookupRequest[M]](pathBinder),
			handler.WithDecorators[handler.Context, lookupRequest[M]](countAccepted[lookupRequest[M]](m, e.name)),
			handler.WithErrorHandler[handler.Context, lookupRequest[M]](onError),
		))

		r.Post("/", handler.Wrap(handler.HandlerFunc[handler.Context, C](
			func(_ handler.Context, req C) handler.Response {
				return handler.Respond(e.pick(req).Value())
			}),
			handler.WithBinders[handler.Context, C](binder.Body(), requireBinder(e.require)),
			handler.WithDecorators[handler.Context, C](countAccepted[C](m, e.name)),
			handler.WithErrorHandler[handler.Context, C](onError),
		))

		r.Put("/{id}", handler.Wrap(handler.HandlerFunc[handler.Context, updateRequest[C]](
			func(_ handler.Context, req updateRequest[C]) handler.Response {
				return handler.Respond(req.Body)
			}),
			handler.WithBinder[handler.Context, updateRequest[C]](bindUpdate[C]),
			handler.WithErrorHandler[handler.Context, updateRequest[C]](onError),
		))

		r.Delete("/{value}", handler.Wrap(handler.HandlerFunc[handler.Context, lookupRequest[M]](
			func(_ handler.Context, _ lookupRequest[M]) handler.Response {
				return handler.Empty()
			}),
			handler.WithBinder[handler.Context, lookupRequest[M]](pathBinder),
			handler.WithDecorators[handler.Context, lookupRequest[M]](countAccepted[lookupRequest[M]](m, e.name)),
			handler.WithErrorHandler[handler.Context, lookupRequest[M]](onError),
		))
	})
}

func mountEndpoints(r chi.Router, s Samples, onError handler.ErrorHandler[handler.Context], m *Metrics) {
	endpoint[Product, barcode.EAN, uint64]{
		name:    "ean",
		sample:  s.EAN,
		pick:    func(p Product) barcode.EAN { return p.EAN },
		require: requireEAN,
	}.mount(r, onError, m)

	endpoint[Product, barcode.ISBN, uint64]{
		name:    "isbn",
		sample:  s.ISBN,
		pick:    func(p Product) barcode.ISBN { return p.ISBN },
		require: requireISBN,
	}.mount(r, onError, m)

	endpoint[Address, location.CountryCode, string]{
		name:    "countrycode",
		sample:  s.CountryCode,
		pick:    func(a Address) location.CountryCode { return a.CountryCode },
		require: requireCountryCode,
	}.mount(r, onError, m)

	endpoint[Address, location.UKPostcode, string]{
		name:    "postcode",
		sample:  s.Postcode,
		pick:    func(a Address) location.UKPostcode { return a.Postcode },
		require: requirePostcode,
	}.mount(r, onError, m)
}
