package api

import (
	"encoding/xml"

	"github.com/whatishedoing/domainmodels/pkg/barcode"
	"github.com/whatishedoing/domainmodels/pkg/location"
	"github.com/whatishedoing/domainmodels/pkg/validator"
)

// Product is the composite accepted by the ean and isbn routes.
type Product struct {
	XMLName xml.Name     `json:"-" xml:"Product" yaml:"-"`
	EAN     barcode.EAN  `json:"ean" xml:"EAN" yaml:"ean" form:"ean"`
	ISBN    barcode.ISBN `json:"isbn" xml:"ISBN" yaml:"isbn" form:"isbn"`
}

// Address is the composite accepted by the countrycode and postcode routes.
type Address struct {
	XMLName     xml.Name             `json:"-" xml:"Address" yaml:"-"`
	CountryCode location.CountryCode `json:"countryCode" xml:"CountryCode" yaml:"countryCode" form:"country_code"`
	Postcode    location.UKPostcode  `json:"postcode" xml:"Postcode" yaml:"postcode" form:"postcode"`
}

func requireEAN(p Product) error {
	return validator.Apply(validator.RequiredValue("ean", p.EAN))
}

func requireISBN(p Product) error {
	return validator.Apply(validator.RequiredValue("isbn", p.ISBN))
}

func requireCountryCode(a Address) error {
	return validator.Apply(validator.RequiredValue("countryCode", a.CountryCode))
}

func requirePostcode(a Address) error {
	return validator.Apply(validator.RequiredValue("postcode", a.Postcode))
}
