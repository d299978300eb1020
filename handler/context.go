package handler

import (
	"context"
	"net/http"
	"time"
)

// Context wraps http.Request and http.ResponseWriter with context.Context.
// It embeds the request's context and provides access to HTTP components.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
}

// NewContext creates a new Context from HTTP request and response writer.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{
		w: w,
		r: r,
	}
}

// httpContext is the default implementation of Context.
type httpContext struct {
	w http.ResponseWriter
	r *http.Request
}

func (c *httpContext) Request() *http.Request {
	return c.r
}

func (c *httpContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Delegate context.Context methods to the request's context
func (c *httpContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *httpContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *httpContext) Err() error {
	return c.r.Context().Err()
}

func (c *httpContext) Value(key any) any {
	return c.r.Context().Value(key)
}

// ContextKey provides type-safe context keys to prevent key collisions.
// Should be created as package-level variables for consistent access.
type ContextKey struct{ name string }

// String returns a string representation of the context key for debugging.
func (c *ContextKey) String() string {
	return c.name
}

// NewContextKey creates a context key; name only shows up when debugging.
//
//	var sampleKey = handler.NewContextKey("sample")
func NewContextKey(name string) *ContextKey {
	return &ContextKey{name}
}

// ContextValue returns the value stored under key, or the zero T when it is
// missing or of another type. A zero domain value reads as Uninitialized:
//
//	ctx = context.WithValue(ctx, sampleKey, barcode.MustEAN(73513537))
//	ean := handler.ContextValue[barcode.EAN](ctx, sampleKey)
func ContextValue[T any](ctx context.Context, key any) T {
	val, _ := ctx.Value(key).(T)
	return val
}

// ContextValueOK is ContextValue that also reports whether key held a T, so
// a missing key can be told apart from a stored zero value.
func ContextValueOK[T any](ctx context.Context, key any) (T, bool) {
	val, ok := ctx.Value(key).(T)
	return val, ok
}
