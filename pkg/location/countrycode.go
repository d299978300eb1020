package location

import (
	"encoding/xml"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/whatishedoing/domainmodels/pkg/domainmodel"
)

const countryCodeField = "country_code"

var countryCodeRegex = regexp.MustCompile(`^[A-Za-z]{2,3}$`)

// CountryCodeFormatValid reports whether s has the shape of an ISO 3166
// alpha-2 or alpha-3 code. The code is not checked against the registry.
func CountryCodeFormatValid(s string) bool {
	return countryCodeRegex.MatchString(s)
}

// CountryCode is an upper-case two or three letter country code.
type CountryCode struct {
	value string
}

var CountryCodeKind = domainmodel.Kind[CountryCode, string]{Field: countryCodeField, New: newCountryCode}

func newCountryCode(s string) (CountryCode, error) {
	if s == "" {
		return CountryCode{}, domainmodel.ErrEmptyValue
	}
	if !CountryCodeFormatValid(s) {
		return CountryCode{}, ErrInvalidCountryCode
	}
	return CountryCode{value: strings.ToUpper(s)}, nil
}

// NewCountryCode validates s and returns its canonical upper-case form.
func NewCountryCode(s string) (CountryCode, error) { return CountryCodeKind.Construct(s) }

func ParseCountryCode(raw any) (CountryCode, error) { return CountryCodeKind.FromUntyped(raw) }

func TryParseCountryCode(s string) (CountryCode, bool) { return CountryCodeKind.TryParse(s) }

func MustCountryCode(s string) CountryCode { return CountryCodeKind.Must(s) }

func IsValidCountryCode(s string) bool { return s != "" && CountryCodeFormatValid(s) }

func (c CountryCode) Value() string { return c.value }
func (c CountryCode) String() string { return c.value }
func (c CountryCode) IsZero() bool { return c.value == "" }
func (c CountryCode) Equal(o CountryCode) bool { return CountryCodeKind.Equal(c, o) }
func (c CountryCode) Hash() uint64 { return CountryCodeKind.Hash(c) }
func (c CountryCode) IsAlpha2() bool { return len(c.value) == 2 }
func (c CountryCode) IsAlpha3() bool { return len(c.value) == 3 }
func (c CountryCode) XMLSchema() []byte { return CountryCodeKind.XMLSchema() }
func (c CountryCode) MarshalJSON() ([]byte, error) { return CountryCodeKind.EncodeJSON(c) }
func (c *CountryCode) UnmarshalJSON(data []byte) error { return CountryCodeKind.DecodeJSON(data, c) }
func (c CountryCode) MarshalText() ([]byte, error) { return CountryCodeKind.EncodeText(c) }
func (c *CountryCode) UnmarshalText(text []byte) error { return CountryCodeKind.DecodeText(text, c) }
func (c CountryCode) MarshalYAML() (any, error) { return CountryCodeKind.EncodeYAML(c) }
func (c *CountryCode) UnmarshalYAML(node *yaml.Node) error { return CountryCodeKind.DecodeYAML(node, c) }

func (c CountryCode) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	return CountryCodeKind.EncodeXML(c, enc, start)
}

func (c *CountryCode) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	return CountryCodeKind.DecodeXML(dec, start, c)
}

func (c CountryCode) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	return CountryCodeKind.EncodeXMLAttr(c, name)
}

func (c *CountryCode) UnmarshalXMLAttr(attr xml.Attr) error {
	return CountryCodeKind.DecodeXMLAttr(attr, c)
}
