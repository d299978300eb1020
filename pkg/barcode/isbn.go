package barcode

import (
	"encoding/xml"

	"gopkg.in/yaml.v3"

	"github.com/whatishedoing/domainmodels/pkg/domainmodel"
)

const isbnField = "isbn"

// ISBN is a 13-digit International Standard Book Number. Every ISBN is also a
// valid EAN-13 in the 978 or 979 "Bookland" range.
type ISBN struct {
	value uint64
}

// ISBNKind describes ISBN to the generic construction and wire adapters.
var ISBNKind = domainmodel.Kind[ISBN, uint64]{Field: isbnField, New: newISBN}

func newISBN(v uint64) (ISBN, error) {
	if err := checkISBN(v); err != nil {
		return ISBN{}, err
	}
	return ISBN{value: v}, nil
}

// NewISBN validates v and returns an ISBN.
func NewISBN(v uint64) (ISBN, error) { return ISBNKind.Construct(v) }

// ParseISBN builds an ISBN from untyped input such as a string or JSON number.
func ParseISBN(raw any) (ISBN, error) { return ISBNKind.FromUntyped(raw) }

func TryParseISBN(v uint64) (ISBN, bool) { return ISBNKind.TryParse(v) }

// MustISBN panics if v is not a valid ISBN.
func MustISBN(v uint64) ISBN { return ISBNKind.Must(v) }

func IsValidISBN(v uint64) bool { return checkISBN(v) == nil }

func (b ISBN) Value() uint64 { return b.value }
func (b ISBN) String() string { return domainmodel.Render(b.value) }
func (b ISBN) IsZero() bool { return b.value == 0 }
func (b ISBN) Equal(o ISBN) bool { return ISBNKind.Equal(b, o) }
func (b ISBN) Hash() uint64 { return ISBNKind.Hash(b) }
func (b ISBN) Symbology() string { return "ISBN" }
func (b ISBN) XMLSchema() []byte { return ISBNKind.XMLSchema() }
func (b ISBN) Length() int { return DigitCount(b.value) }
func (b ISBN) Prefix() uint64 { return b.value / 10_000_000_000 }
func (b ISBN) CheckDigit() int { return int(b.value % 10) }
func (b ISBN) MarshalJSON() ([]byte, error) { return ISBNKind.EncodeJSON(b) }
func (b *ISBN) UnmarshalJSON(data []byte) error { return ISBNKind.DecodeJSON(data, b) }
func (b ISBN) MarshalText() ([]byte, error) { return ISBNKind.EncodeText(b) }
func (b *ISBN) UnmarshalText(text []byte) error { return ISBNKind.DecodeText(text, b) }
func (b ISBN) MarshalYAML() (any, error) { return ISBNKind.EncodeYAML(b) }
func (b *ISBN) UnmarshalYAML(node *yaml.Node) error { return ISBNKind.DecodeYAML(node, b) }

// EAN returns the ISBN as the EAN-13 it is encoded with.
func (b ISBN) EAN() EAN {
	return EAN{value: b.value}
}

func (b ISBN) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	return ISBNKind.EncodeXML(b, enc, start)
}

func (b *ISBN) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	return ISBNKind.DecodeXML(dec, start, b)
}

func (b ISBN) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	return ISBNKind.EncodeXMLAttr(b, name)
}

func (b *ISBN) UnmarshalXMLAttr(attr xml.Attr) error {
	return ISBNKind.DecodeXMLAttr(attr, b)
}
