// Package i18n translates API messages.
//
// A Catalog is built from YAML documents keyed by language tag. Keys are
// addressed with dots ("domain.postcode.invalid") and templates substitute
// %{name} placeholders. Request languages are negotiated from the "lang" query
// parameter or the Accept-Language header with golang.org/x/text/language, so
// "en-GB" or "de-CH" resolve to the bundled "en" and "de" catalogs.
//
//	catalog, err := i18n.Default()
//	r.Use(catalog.Middleware)
//	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
//	    Translator: catalog.TranslateRequest,
//	})
package i18n
