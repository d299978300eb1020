package domainmodel

import (
	"encoding/xml"
)

// XMLSchemaProvider is the schema-description hook of the XML contract.
// Validated values implement it as a no-op.
type XMLSchemaProvider interface {
	XMLSchema() []byte
}

// XMLSchema returns nil; validated values carry no schema description.
func (k Kind[M, T]) XMLSchema() []byte {
	return nil
}

// EncodeXML writes the canonical value as element character data.
// The element is omitted for the zero value.
func (k Kind[M, T]) EncodeXML(m M, e *xml.Encoder, start xml.StartElement) error {
	if m.IsZero() {
		return nil
	}
	return e.EncodeElement(m.String(), start)
}

// DecodeXML reconstructs a value from the element's character data.
// An empty element is rejected.
func (k Kind[M, T]) DecodeXML(d *xml.Decoder, start xml.StartElement, target *M) error {
	var text string
	if err := d.DecodeElement(&text, &start); err != nil {
		return err
	}

	m, err := k.FromUntyped(text)
	if err != nil {
		return err
	}
	*target = m
	return nil
}

// EncodeXMLAttr renders the value as an attribute. The zero value yields the
// zero xml.Attr, which encoding/xml omits.
func (k Kind[M, T]) EncodeXMLAttr(m M, name xml.Name) (xml.Attr, error) {
	if m.IsZero() {
		return xml.Attr{}, nil
	}
	return xml.Attr{Name: name, Value: m.String()}, nil
}

func (k Kind[M, T]) DecodeXMLAttr(attr xml.Attr, target *M) error {
	m, err := k.FromUntyped(attr.Value)
	if err != nil {
		return err
	}
	*target = m
	return nil
}
