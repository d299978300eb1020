package cli

import (
	"encoding/xml"
	"fmt"
	"slices"
	"strings"

	"github.com/whatishedoing/domainmodels/pkg/barcode"
	"github.com/whatishedoing/domainmodels/pkg/location"
)

// valueView is the rendered form of a parsed value. Fields that do not apply
// to the kind are omitted.
type valueView struct {
	XMLName    xml.Name `json:"-" yaml:"-" xml:"domainValue"`
	Kind       string   `json:"kind" yaml:"kind" xml:"kind,attr"`
	Value      any      `json:"value" yaml:"value" xml:"value"`
	Symbology  string   `json:"symbology,omitempty" yaml:"symbology,omitempty" xml:"symbology,omitempty"`
	Length     int      `json:"length,omitempty" yaml:"length,omitempty" xml:"length,omitempty"`
	CheckDigit *int     `json:"checkDigit,omitempty" yaml:"checkDigit,omitempty" xml:"checkDigit,omitempty"`
	Prefix     uint64   `json:"prefix,omitempty" yaml:"prefix,omitempty" xml:"prefix,omitempty"`
	Outward    string   `json:"outward,omitempty" yaml:"outward,omitempty" xml:"outward,omitempty"`
	Inward     string   `json:"inward,omitempty" yaml:"inward,omitempty" xml:"inward,omitempty"`
	Area       string   `json:"area,omitempty" yaml:"area,omitempty" xml:"area,omitempty"`
	District   string   `json:"district,omitempty" yaml:"district,omitempty" xml:"district,omitempty"`
	Sector     string   `json:"sector,omitempty" yaml:"sector,omitempty" xml:"sector,omitempty"`
	Unit       string   `json:"unit,omitempty" yaml:"unit,omitempty" xml:"unit,omitempty"`
}

// kind binds a command line type name to its parser.
type kind struct {
	name  string
	parse func(raw string) (valueView, error)
}

var kinds = map[string]kind{
	"ean":         {name: "ean", parse: parseEAN},
	"isbn":        {name: "isbn", parse: parseISBN},
	"countrycode": {name: "countrycode", parse: parseCountryCode},
	"postcode":    {name: "postcode", parse: parsePostcode},
}

func kindNames() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookupKind(name string) (kind, error) {
	k, ok := kinds[strings.ToLower(name)]
	if !ok {
		return kind{}, fmt.Errorf("%w %q: expected one of %s", ErrUnknownKind, name, strings.Join(kindNames(), ", "))
	}
	return k, nil
}

func barcodeView(name string, b barcode.Barcode) valueView {
	check := b.CheckDigit()
	return valueView{
		Kind:       name,
		Value:      b,
		Symbology:  b.Symbology(),
		Length:     b.Length(),
		CheckDigit: &check,
	}
}

func parseEAN(raw string) (valueView, error) {
	ean, err := barcode.ParseEAN(raw)
	if err != nil {
		return valueView{}, err
	}
	return barcodeView("ean", ean), nil
}

func parseISBN(raw string) (valueView, error) {
	isbn, err := barcode.ParseISBN(raw)
	if err != nil {
		return valueView{}, err
	}
	v := barcodeView("isbn", isbn)
	v.Prefix = isbn.Prefix()
	return v, nil
}

func parseCountryCode(raw string) (valueView, error) {
	code, err := location.ParseCountryCode(raw)
	if err != nil {
		return valueView{}, err
	}
	return valueView{Kind: "countrycode", Value: code, Length: len(code.Value())}, nil
}

func parsePostcode(raw string) (valueView, error) {
	p, err := location.ParseUKPostcode(raw)
	if err != nil {
		return valueView{}, err
	}
	return valueView{
		Kind:     "postcode",
		Value:    p,
		Outward:  p.OutwardCode(),
		Inward:   p.InwardCode(),
		Area:     p.Area(),
		District: p.District(),
		Sector:   p.Sector(),
		Unit:     p.Unit(),
	}, nil
}
