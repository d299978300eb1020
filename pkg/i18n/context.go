package i18n

import (
	"context"
	"net/http"
)

type localeContextKey struct{}

// SetLocale stores locale in ctx.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the locale stored in ctx, or DefaultLanguage.
func GetLocale(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	if locale == "" {
		return DefaultLanguage
	}
	return locale
}

// Middleware resolves the request language once and stores it in the request
// context. A "lang" query parameter wins over the Accept-Language header.
func (c *Catalog) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), c.requestLanguage(r))))
	})
}

func (c *Catalog) requestLanguage(r *http.Request) string {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return c.Match(lang)
	}
	return c.Match(r.Header.Get("Accept-Language"))
}

// TranslateRequest translates key for the language of r. It prefers the
// locale stored by Middleware and negotiates from the request otherwise.
// Its signature matches handler.Translator.
func (c *Catalog) TranslateRequest(r *http.Request, key string, values map[string]any) string {
	lang, ok := r.Context().Value(localeContextKey{}).(string)
	if !ok || lang == "" {
		lang = c.requestLanguage(r)
	}
	return c.T(lang, key, values)
}
