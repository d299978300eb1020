package binder

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// XML creates an XML binder function. Both application/xml and text/xml are
// accepted. The root element name must match the target's XMLName, if any.
//
// Example:
//
//	type Address struct {
//		XMLName     xml.Name             `xml:"Address"`
//		CountryCode location.CountryCode `xml:"CountryCode"`
//		Postcode    location.UKPostcode  `xml:"Postcode"`
//	}
//
//	r.Post("/api/postcode", handler.Wrap(h,
//		handler.WithBinder[handler.Context, Address](binder.XML()),
//	))
func XML() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if err := contextDone(r, ErrFailedToParseXML); err != nil {
			return err
		}

		if err := requireMediaType(r, mediaXML, mediaTextXML); err != nil {
			return err
		}

		return decodeXML(r, v)
	}
}

func decodeXML(r *http.Request, v any) error {
	body, err := readBody(r, ErrFailedToParseXML)
	if err != nil {
		return err
	}

	decoder := xml.NewDecoder(bytes.NewReader(body))
	if err := decoder.Decode(v); err != nil {
		resetTarget(v)
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty body", ErrFailedToParseXML)
		}
		return fmt.Errorf("%w: %w", ErrFailedToParseXML, err)
	}

	return nil
}
