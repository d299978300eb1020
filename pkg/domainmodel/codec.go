package domainmodel

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"io"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeJSON decodes a composite record. On any error, including a rejected
// embedded value, the zero composite is returned.
func DecodeJSON[C any](data []byte) (C, error) {
	return decodeWith[C](json.NewDecoder(bytes.NewReader(data)).Decode)
}

// DecodeXML decodes a composite record, returning the zero composite on error.
func DecodeXML[C any](data []byte) (C, error) {
	return decodeWith[C](xml.NewDecoder(bytes.NewReader(data)).Decode)
}

// DecodeYAML decodes a composite record, returning the zero composite on error.
// A null bound to an embedded value fails the same way it does in JSON.
func DecodeYAML[C any](data []byte) (C, error) {
	var zero C

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return zero, err
	}
	if err := rejectYAMLNulls(&doc, reflect.TypeOf(zero)); err != nil {
		return zero, err
	}

	var c C
	if err := doc.Decode(&c); err != nil {
		return zero, err
	}
	return c, nil
}

// DecodeJSONReader is DecodeJSON over a stream.
func DecodeJSONReader[C any](r io.Reader) (C, error) {
	return decodeWith[C](json.NewDecoder(r).Decode)
}

// DecodeXMLReader is DecodeXML over a stream.
func DecodeXMLReader[C any](r io.Reader) (C, error) {
	return decodeWith[C](xml.NewDecoder(r).Decode)
}

func decodeWith[C any](decode func(any) error) (C, error) {
	var c C
	if err := decode(&c); err != nil {
		var zero C
		return zero, err
	}
	return c, nil
}

var yamlUnmarshaler = reflect.TypeOf((*yaml.Unmarshaler)(nil)).Elem()

// rejectYAMLNulls hands null mapping values to the field's own UnmarshalYAML.
// yaml.v3 zeroes such fields without calling the unmarshaler. Pointer fields
// keep their nil-on-null behaviour.
func rejectYAMLNulls(n *yaml.Node, t reflect.Type) error {
	if n.Kind == yaml.DocumentNode && len(n.Content) == 1 {
		n = n.Content[0]
	}
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if t == nil || t.Kind() != reflect.Struct || n.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(n.Content); i += 2 {
		f, ok := yamlField(t, n.Content[i].Value)
		if !ok || f.Type.Kind() == reflect.Pointer {
			continue
		}
		value := n.Content[i+1]
		if value.Kind == yaml.AliasNode && value.Alias != nil {
			value = value.Alias
		}
		if reflect.PointerTo(f.Type).Implements(yamlUnmarshaler) {
			if value.ShortTag() == "!!null" {
				return reflect.New(f.Type).Interface().(yaml.Unmarshaler).UnmarshalYAML(value)
			}
			continue
		}
		if err := rejectYAMLNulls(value, f.Type); err != nil {
			return err
		}
	}
	return nil
}

func yamlField(t reflect.Type, key string) (reflect.StructField, bool) {
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = strings.ToLower(f.Name)
		}
		if name == key {
			return f, true
		}
	}
	return reflect.StructField{}, false
}
