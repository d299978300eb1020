// Package binder provides type-safe HTTP request data binding.
//
// The binder package binds HTTP request data to Go structs. It supports JSON
// and XML bodies, form data, query parameters and path parameters. Domain value
// types (barcode.EAN, location.UKPostcode and friends) bind from every source:
// bodies through their JSON and XML unmarshalers, and form, query and path
// values through encoding.TextUnmarshaler. A rejected value surfaces as a
// binding error that still matches domainmodel.ErrInvalidValue.
//
// # Basic Usage
//
//	type Address struct {
//	    XMLName     xml.Name             `json:"-" xml:"Address"`
//	    CountryCode location.CountryCode `json:"countryCode" xml:"CountryCode" form:"country_code"`
//	    Postcode    location.UKPostcode  `json:"postcode" xml:"Postcode" form:"postcode"`
//	}
//
//	r.Post("/api/postcode", handler.Wrap(h,
//	    handler.WithBinder[handler.Context, Address](binder.Body()),
//	))
//
// # Available Binders
//
//   - JSON(): Binds application/json request bodies
//   - XML(): Binds application/xml and text/xml request bodies
//   - Body(): Chooses JSON, XML or Form from the Content-Type header
//   - Form(): Binds urlencoded or multipart form fields
//   - Query(): Binds URL query parameters
//   - Path(extractor): Binds URL path parameters using a router-specific extractor
//
// # Error Handling
//
// The package defines several error variables for common binding failures:
//
//   - ErrUnsupportedMediaType: Content type doesn't match expected type
//   - ErrMissingContentType: Missing Content-Type header
//   - ErrFailedToParseJSON, ErrFailedToParseXML: Malformed or rejected body
//   - ErrFailedToParseForm, ErrFailedToParseQuery, ErrFailedToParsePath
//   - ErrRequestTooLarge: Body exceeds DefaultMaxBodySize
//   - ErrBinderNotApplicable: The binder does not handle this request
//
// Body decoders reset the target to its zero value on failure, so handlers
// never observe a partially decoded record.
package binder
