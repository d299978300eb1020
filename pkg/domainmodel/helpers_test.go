package domainmodel_test

import (
	"encoding/xml"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/whatishedoing/domainmodels/pkg/domainmodel"
)

var (
	errOdd       = errors.New("number is odd")
	errBadTicker = errors.New("ticker must be letters")
)

// even is a uint64 value type accepting positive even numbers.
type even struct{ value uint64 }

var evenKind = domainmodel.Kind[even, uint64]{
	Field: "even",
	New: func(v uint64) (even, error) {
		if v == 0 || v%2 != 0 {
			return even{}, errOdd
		}
		return even{value: v}, nil
	},
}

func (e even) Value() uint64 { return e.value }
func (e even) String() string { return domainmodel.Render(e.value) }
func (e even) IsZero() bool { return e.value == 0 }
func (e even) MarshalJSON() ([]byte, error) { return evenKind.EncodeJSON(e) }
func (e *even) UnmarshalJSON(data []byte) error { return evenKind.DecodeJSON(data, e) }
func (e even) MarshalText() ([]byte, error) { return evenKind.EncodeText(e) }
func (e *even) UnmarshalText(text []byte) error { return evenKind.DecodeText(text, e) }
func (e even) MarshalYAML() (any, error) { return evenKind.EncodeYAML(e) }
func (e *even) UnmarshalYAML(node *yaml.Node) error { return evenKind.DecodeYAML(node, e) }

func (e even) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	return evenKind.EncodeXML(e, enc, start)
}

func (e *even) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	return evenKind.DecodeXML(dec, start, e)
}

func (e even) MarshalXMLAttr(name xml.Name) (xml.Attr, error) {
	return evenKind.EncodeXMLAttr(e, name)
}

func (e *even) UnmarshalXMLAttr(attr xml.Attr) error {
	return evenKind.DecodeXMLAttr(attr, e)
}

// ticker is a string value type holding letters, canonicalised to upper case.
type ticker struct{ value string }

var tickerKind = domainmodel.Kind[ticker, string]{
	Field: "ticker",
	New: func(s string) (ticker, error) {
		upper := strings.ToUpper(s)
		if upper == "" || strings.Trim(upper, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") != "" {
			return ticker{}, errBadTicker
		}
		return ticker{value: upper}, nil
	},
}

func (t ticker) Value() string { return t.value }
func (t ticker) String() string { return t.value }
func (t ticker) IsZero() bool { return t.value == "" }
func (t ticker) MarshalJSON() ([]byte, error) { return tickerKind.EncodeJSON(t) }
func (t *ticker) UnmarshalJSON(data []byte) error { return tickerKind.DecodeJSON(data, t) }
func (t ticker) MarshalYAML() (any, error) { return tickerKind.EncodeYAML(t) }
func (t *ticker) UnmarshalYAML(node *yaml.Node) error { return tickerKind.DecodeYAML(node, t) }

func (t ticker) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	return tickerKind.EncodeXML(t, enc, start)
}

func (t *ticker) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	return tickerKind.DecodeXML(dec, start, t)
}

// holding is a composite embedding both value types.
type holding struct {
	XMLName xml.Name `json:"-" xml:"holding" yaml:"-"`
	Ticker  ticker   `json:"ticker" xml:"ticker" yaml:"ticker"`
	Shares  even     `json:"shares" xml:"shares" yaml:"shares"`
	Lot     even     `json:"-" xml:"lot,attr,omitempty" yaml:"-"`
}
