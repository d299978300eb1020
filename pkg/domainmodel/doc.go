// Package domainmodel provides the generic validated-value abstraction shared by
// all domain value types in this module (barcodes, country codes, postcodes).
//
// A validated value is a small immutable Go value type wrapping a primitive
// scalar (uint64 or string). Its only construction path is a validating
// constructor, so any non-zero instance is guaranteed to satisfy the domain
// invariant of its type. The Go zero value is the inert "uninitialized"
// instance used by decoders before a value is populated.
//
// # Architecture
//
// The package is organised around two generic building blocks:
//   - Model[T]    – the read-only contract every value type satisfies
//   - Kind[M, T]  – a descriptor binding a concrete type M to its field name
//     and validating constructor
//
// Kind carries all shared behaviour: construction from typed or untyped input,
// non-failing TryParse, equality and hashing over the canonical value, and the
// wire adapters for JSON, XML, YAML and plain text. Concrete types delegate to
// their Kind in one-line methods, so adding a new value type never requires new
// converter code.
//
// # Usage
//
//	var EANKind = domainmodel.Kind[EAN, uint64]{Field: "ean", New: newEAN}
//
//	func NewEAN(v uint64) (EAN, error)           { return EANKind.Construct(v) }
//	func (e EAN) MarshalJSON() ([]byte, error)    { return EANKind.EncodeJSON(e) }
//	func (e *EAN) UnmarshalJSON(data []byte) error { return EANKind.DecodeJSON(data, e) }
//
// Composite records embed value types by value and are decoded with the
// generic helpers, which never return a partially populated composite:
//
//	product, err := domainmodel.DecodeJSON[Product](body)
//	if errors.Is(err, domainmodel.ErrInvalidValue) {
//	    // one of the embedded values was rejected
//	}
//
// # Error Handling
//
// Every construction failure, whether caused by coercion of untyped wire data
// or by the type's validation predicate, is reported as *DomainValueError.
// It matches ErrInvalidValue with errors.Is and unwraps to the underlying cause.
// TryParse is the only operation that absorbs the error.
//
// # Wire conventions
//
// JSON encodes uint64 values as numbers and string values as strings; quoted
// numerals are accepted on input. A JSON null is rejected with ErrNilValue
// while a zero value encodes as null, so an absent field is the only way to
// leave a value uninitialized. XML uses element character data (or attribute
// values) and omits zero values. YAML treats null the same way JSON does.
package domainmodel
