package domainmodel

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// EncodeJSON writes the canonical value as a native JSON scalar: numbers for
// uint64 types, strings for string types. The zero value encodes as null.
func (k Kind[M, T]) EncodeJSON(m M) ([]byte, error) {
	if m.IsZero() {
		return jsonNull, nil
	}
	return json.Marshal(m.Value())
}

// DecodeJSON reconstructs a value from a single JSON token and stores it in
// target. A JSON number or a string holding the value is accepted. null is
// rejected with ErrNilValue and target is left as it was.
func (k Kind[M, T]) DecodeJSON(data []byte, target *M) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return k.invalid(string(data), err)
	}
	m, err := k.FromUntyped(raw)
	if err != nil {
		return err
	}
	*target = m
	return nil
}
