package api

import (
	"net/http"

	"github.com/whatishedoing/domainmodels/handler"
	"github.com/whatishedoing/domainmodels/pkg/binder"
	"github.com/whatishedoing/domainmodels/pkg/domainmodel"
	"github.com/whatishedoing/domainmodels/pkg/validator"
)

// checkRequest carries raw values from the query string. Only the parameters
// present are checked.
type checkRequest struct {
	EAN         string `query:"ean"`
	ISBN        string `query:"isbn"`
	CountryCode string `query:"country_code"`
	Postcode    string `query:"postcode"`
}

// validate reports every bad parameter at once. Numerals that do not parse
// are rejected as domain values; the rest go through the raw value rules.
func (c checkRequest) validate() error {
	var rules []validator.Rule
	var rejected []error

	numeric := func(field, raw string, rule func(string, uint64) validator.Rule) {
		if raw == "" {
			return
		}
		v, err := domainmodel.Coerce[uint64](raw)
		if err != nil {
			rejected = append(rejected, domainmodel.NewDomainValueError(field, raw, err))
			return
		}
		rules = append(rules, rule(field, v))
	}
	numeric("ean", c.EAN, validator.ValidEAN)
	numeric("isbn", c.ISBN, validator.ValidISBN)

	if c.CountryCode != "" {
		rules = append(rules, validator.ValidCountryCode("country_code", c.CountryCode))
	}
	if c.Postcode != "" {
		rules = append(rules, validator.ValidUKPostcode("postcode", c.Postcode))
	}

	return validator.Merge(append(rejected, validator.Apply(rules...))...)
}

// checkHandler serves GET /api/check. It answers 204 when every given value
// is valid and 400 with one detail per bad parameter otherwise.
func checkHandler(onError handler.ErrorHandler[handler.Context]) http.HandlerFunc {
	return handler.Wrap(handler.HandlerFunc[handler.Context, checkRequest](
		func(handler.Context, checkRequest) handler.Response {
			return handler.Empty()
		}),
		handler.WithBinders[handler.Context, checkRequest](binder.Query(), requireBinder(checkRequest.validate)),
		handler.WithErrorHandler[handler.Context, checkRequest](onError),
	)
}
