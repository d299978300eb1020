package domainmodel

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EncodeYAML returns the native scalar for yaml.Marshaler, nil for the zero value.
func (k Kind[M, T]) EncodeYAML(m M) (any, error) {
	if m.IsZero() {
		return nil, nil
	}
	return m.Value(), nil
}

// DecodeYAML reconstructs a value from a scalar node. Null nodes fail with
// ErrNilValue. Mappings and sequences are rejected.
func (k Kind[M, T]) DecodeYAML(node *yaml.Node, target *M) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.ScalarNode {
		return k.invalid(node.Value, fmt.Errorf("%w: yaml node kind %d", ErrUnsupportedType, node.Kind))
	}
	if node.ShortTag() == "!!null" {
		_, err := k.FromUntyped(nil)
		return err
	}

	m, err := k.FromUntyped(node.Value)
	if err != nil {
		return err
	}
	*target = m
	return nil
}
