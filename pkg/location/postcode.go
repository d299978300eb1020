package location

import (
	"encoding/xml"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/whatishedoing/domainmodels/pkg/domainmodel"
)

const postcodeField = "postcode"

// Outward forms A9, A99, AA9, AA99, A9A and AA9A, an optional single space,
// then the inward 9AA. Letter classes follow the Royal Mail exclusions.
var postcodeRegex = regexp.MustCompile(`^(?:GIR ?0AA|` +
	`(?:[A-PR-UWYZ][0-9][0-9]?` +
	`|[A-PR-UWYZ][A-HK-Y][0-9][0-9]?` +
	`|[A-PR-UWYZ][0-9][A-HJKSTUW]` +
	`|[A-PR-UWYZ][A-HK-Y][0-9][ABEHMNPRVWXY])` +
	` ?[0-9][ABD-HJLNP-UW-Z]{2})$`)

const inwardLength = 3

// UKPostcodeGrammarValid reports whether cleaned, an upper-case postcode with
// surrounding whitespace removed, is structurally valid.
func UKPostcodeGrammarValid(cleaned string) bool {
	return postcodeRegex.MatchString(cleaned)
}

// CleanPostcode trims surrounding whitespace and upper-cases s.
func CleanPostcode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// UKPostcode is a structurally valid UK postcode, stored in the canonical
// "OUTWARD INWARD" form together with its decomposition.
type UKPostcode struct {
	value    string
	outward  string
	area     string
	district string
	inward   string
	sector   string
	unit     string
}

var UKPostcodeKind = domainmodel.Kind[UKPostcode, string]{Field: postcodeField, New: newUKPostcode}

func newUKPostcode(s string) (UKPostcode, error) {
	cleaned := CleanPostcode(s)
	if cleaned == "" {
		return UKPostcode{}, domainmodel.ErrEmptyValue
	}
	if !UKPostcodeGrammarValid(cleaned) {
		return UKPostcode{}, ErrInvalidPostcode
	}
	return decompose(strings.ReplaceAll(cleaned, " ", "")), nil
}

// decompose assumes a grammar-valid postcode without spaces.
func decompose(compact string) UKPostcode {
	split := len(compact) - inwardLength
	outward, inward := compact[:split], compact[split:]

	areaEnd := strings.IndexFunc(outward, func(r rune) bool { return r < 'A' || r > 'Z' })
	if areaEnd < 0 {
		areaEnd = len(outward)
	}

	return UKPostcode{
		value:    outward + " " + inward,
		outward:  outward,
		area:     outward[:areaEnd],
		district: outward[areaEnd:],
		inward:   inward,
		sector:   outward + " " + inward[:1],
		unit:     inward[1:],
	}
}

// NewUKPostcode validates s and returns the decomposed postcode. Case and
// surrounding whitespace are ignored. Between outward and inward code only
// nothing or one ASCII space is accepted, so "SW1A\t1AA" and "SW1A  1AA"
// are rejected.
func NewUKPostcode(s string) (UKPostcode, error) { return UKPostcodeKind.Construct(s) }

func ParseUKPostcode(raw any) (UKPostcode, error) { return UKPostcodeKind.FromUntyped(raw) }

func TryParseUKPostcode(s string) (UKPostcode, bool) { return UKPostcodeKind.TryParse(s) }

func MustUKPostcode(s string) UKPostcode { return UKPostcodeKind.Must(s) }

func IsValidUKPostcode(s string) bool { return UKPostcodeGrammarValid(CleanPostcode(s)) }

func (p UKPostcode) Value() string { return p.value }
func (p UKPostcode) String() string { return p.value }
func (p UKPostcode) IsZero() bool { return p.value == "" }
func (p UKPostcode) Equal(o UKPostcode) bool { return UKPostcodeKind.Equal(p, o) }
func (p UKPostcode) Hash() uint64 { return UKPostcodeKind.Hash(p) }

// OutwardCode is the part before the final three characters, e.g. "SW1A".
func (p UKPostcode) OutwardCode() string { return p.outward }

// InwardCode is the final three characters, e.g. "1AA".
func (p UKPostcode) InwardCode() string { return p.inward }

// Area is the leading letters of the outward code, e.g. "SW".
func (p UKPostcode) Area() string { return p.area }

// District is the remainder of the outward code, e.g. "1A".
func (p UKPostcode) District() string { return p.district }

// Sector is the outward code followed by the first inward digit, e.g. "SW1A 1".
func (p UKPostcode) Sector() string { return p.sector }

// Unit is the last two letters, e.g. "AA".
func (p UKPostcode) Unit() string { return p.unit }

func (p UKPostcode) XMLSchema() []byte { return UKPostcodeKind.XMLSchema() }
func (p UKPostcode) MarshalJSON() ([]byte, error) { return UKPostcodeKind.EncodeJSON(p) }
func (p *UKPostcode) UnmarshalJSON(data []byte) error { return UKPostcodeKind.DecodeJSON(data, p) }
func (p UKPostcode) MarshalText() ([]byte, error) { return UKPostcodeKind.EncodeText(p) }
func (p *UKPostcode) UnmarshalText(text []byte) error { return UKPostcodeKind.DecodeText(text, p) }
func (p UKPostcode) MarshalYAML() (any, error) { return UKPostcodeKind.EncodeYAML(p) }
func (p *UKPostcode) UnmarshalYAML(node *yaml.Node) error { return UKPostcodeKind.DecodeYAML(node, p) }

func (p UKPostcode) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	return UKPostcodeKind.EncodeXML(p, enc, start)
}

func (p *UKPostcode) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	return UKPostcodeKind.DecodeXML(dec, start, p)
}

func (p UKPostcode) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	return UKPostcodeKind.EncodeXMLAttr(p, name)
}

func (p *UKPostcode) UnmarshalXMLAttr(attr xml.Attr) error {
	return UKPostcodeKind.DecodeXMLAttr(attr, p)
}
