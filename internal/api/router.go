package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/whatishedoing/domainmodels/handler"
	"github.com/whatishedoing/domainmodels/pkg/domainmodel"
	"github.com/whatishedoing/domainmodels/pkg/environment"
	"github.com/whatishedoing/domainmodels/pkg/httpserver"
	"github.com/whatishedoing/domainmodels/pkg/i18n"
	"github.com/whatishedoing/domainmodels/pkg/requestid"
)

// Deps are the collaborators the router needs.
type Deps struct {
	Logger   *slog.Logger
	Env      environment.Environment
	Catalog  *i18n.Catalog
	Registry *prometheus.Registry
	Samples  Samples

	// Readiness checks served by /healthz/ready
	Checks []func(context.Context) error
}

// NewRouter builds the HTTP handler exposing the domain value API.
func NewRouter(d Deps) http.Handler {
	log := d.Logger
	if log == nil {
		log = slog.Default()
	}
	reg := d.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	metrics := NewMetrics(reg)

	var cfg handler.ErrorHandlerConfig
	if d.Catalog != nil {
		cfg.Translator = d.Catalog.TranslateRequest
	}
	base := handler.NewErrorHandler(log, cfg)
	onError := func(ctx handler.Context, err error) {
		if dve, ok := domainmodel.AsDomainValueError(err); ok {
			metrics.IncrementRejected(dve.Field)
		}
		base(ctx, err)
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(environment.Middleware(d.Env))
	if d.Catalog != nil {
		r.Use(d.Catalog.Middleware)
	}
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		onError(handler.NewContext(w, r), handler.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		onError(handler.NewContext(w, r), handler.ErrMethodNotAllowed)
	})

	r.Get("/", handler.Wrap(handler.HandlerFunc[handler.Context, noRequest](
		func(handler.Context, noRequest) handler.Response {
			return handler.RedirectWithCode("/api/ean", http.StatusFound)
		}),
	))
	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Get("/healthz/ready", httpserver.HealthCheckHandler(log, d.Checks...))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		r.Use(metrics.Middleware)
		r.Get("/api/check", checkHandler(onError))
		mountEndpoints(r, d.Samples, onError, metrics)
	})

	return r
}
