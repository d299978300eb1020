package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the domain value API.
type Metrics struct {
	// Requests by route pattern, method and status code
	Requests *prometheus.CounterVec

	// Request latency by route pattern and method
	Duration *prometheus.HistogramVec

	// Values accepted and rejected by kind
	Accepted *prometheus.CounterVec
	Rejected *prometheus.CounterVec
}

// NewMetrics creates the API metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "domainmodels_http_requests_total",
			Help: "Total HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),

		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "domainmodels_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route and method",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}, []string{"route", "method"}),

		Accepted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "domainmodels_values_accepted_total",
			Help: "Domain values that passed validation by kind",
		}, []string{"kind"}),

		Rejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "domainmodels_values_rejected_total",
			Help: "Domain values that failed validation by field",
		}, []string{"field"}),
	}
}

// IncrementAccepted records a valid value of the given kind.
func (m *Metrics) IncrementAccepted(kind string) {
	if m != nil {
		m.Accepted.WithLabelValues(kind).Inc()
	}
}

// IncrementRejected records a rejected value for field.
func (m *Metrics) IncrementRejected(field string) {
	if m != nil {
		m.Rejected.WithLabelValues(field).Inc()
	}
}

// Middleware records request counts and latency under the chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.Requests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
		m.Duration.WithLabelValues(route, r.Method).Observe(time.Since(start).Seconds())
	})
}
