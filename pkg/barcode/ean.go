package barcode

import (
	"encoding/xml"

	"gopkg.in/yaml.v3"

	"github.com/whatishedoing/domainmodels/pkg/domainmodel"
)

const eanField = "ean"

// EAN is a GS1 article number (EAN-8, UPC-A, EAN-13, GTIN-14 or SSCC-18)
// with a verified check digit. The zero value is uninitialized.
type EAN struct {
	value uint64
}

// EANKind describes EAN to the generic construction and wire adapters.
var EANKind = domainmodel.Kind[EAN, uint64]{Field: eanField, New: newEAN}

func newEAN(v uint64) (EAN, error) {
	if err := checkEAN(v); err != nil {
		return EAN{}, err
	}
	return EAN{value: v}, nil
}

// NewEAN validates v and returns an EAN.
func NewEAN(v uint64) (EAN, error) { return EANKind.Construct(v) }

// ParseEAN builds an EAN from untyped input such as a string or JSON number.
func ParseEAN(raw any) (EAN, error) { return EANKind.FromUntyped(raw) }

func TryParseEAN(v uint64) (EAN, bool) { return EANKind.TryParse(v) }

// MustEAN panics if v is not a valid EAN.
func MustEAN(v uint64) EAN { return EANKind.Must(v) }

func IsValidEAN(v uint64) bool { return checkEAN(v) == nil }

func (e EAN) Value() uint64 { return e.value }
func (e EAN) String() string { return domainmodel.Render(e.value) }
func (e EAN) IsZero() bool { return e.value == 0 }
func (e EAN) Equal(o EAN) bool { return EANKind.Equal(e, o) }
func (e EAN) Hash() uint64 { return EANKind.Hash(e) }
func (e EAN) Symbology() string { return "EAN" }
func (e EAN) XMLSchema() []byte { return EANKind.XMLSchema() }
func (e EAN) Length() int { return DigitCount(e.value) }
func (e EAN) CheckDigit() int { return int(e.value % 10) }
func (e EAN) MarshalJSON() ([]byte, error) { return EANKind.EncodeJSON(e) }
func (e *EAN) UnmarshalJSON(data []byte) error { return EANKind.DecodeJSON(data, e) }
func (e EAN) MarshalText() ([]byte, error) { return EANKind.EncodeText(e) }
func (e *EAN) UnmarshalText(text []byte) error { return EANKind.DecodeText(text, e) }
func (e EAN) MarshalYAML() (any, error) { return EANKind.EncodeYAML(e) }
func (e *EAN) UnmarshalYAML(node *yaml.Node) error { return EANKind.DecodeYAML(node, e) }

func (e EAN) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	return EANKind.EncodeXML(e, enc, start)
}

func (e *EAN) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	return EANKind.DecodeXML(dec, start, e)
}

func (e EAN) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	return EANKind.EncodeXMLAttr(e, name)
}

func (e *EAN) UnmarshalXMLAttr(attr xml.Attr) error {
	return EANKind.DecodeXMLAttr(attr, e)
}
