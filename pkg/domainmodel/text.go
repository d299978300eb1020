package domainmodel

// EncodeText returns the canonical textual form, empty for the zero value.
func (k Kind[M, T]) EncodeText(m M) ([]byte, error) {
	if m.IsZero() {
		return []byte{}, nil
	}
	return []byte(m.String()), nil
}

// DecodeText reconstructs a value from text, as used by form, query, path and
// environment binding.
func (k Kind[M, T]) DecodeText(text []byte, target *M) error {
	m, err := k.FromUntyped(string(text))
	if err != nil {
		return err
	}
	*target = m
	return nil
}
