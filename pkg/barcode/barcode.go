package barcode

import (
	"github.com/whatishedoing/domainmodels/pkg/domainmodel"
)

// Barcode is implemented by EAN and ISBN.
type Barcode interface {
	domainmodel.Model[uint64]
	Symbology() string
	Length() int
	CheckDigit() int
}

var (
	_ Barcode = EAN{}
	_ Barcode = ISBN{}
)

// Detect classifies raw as the most specific barcode it satisfies: an ISBN
// when it is in the Bookland range, otherwise an EAN.
func Detect(raw any) (Barcode, error) {
	v, err := domainmodel.Coerce[uint64](raw)
	if err != nil {
		return nil, domainmodel.NewDomainValueError(eanField, raw, err)
	}
	if isbn, ok := TryParseISBN(v); ok {
		return isbn, nil
	}

	ean, err := NewEAN(v)
	if err != nil {
		return nil, err
	}
	return ean, nil
}
