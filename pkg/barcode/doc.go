// Package barcode implements GS1 article numbers as validated domain values.
//
// EAN accepts the 8, 12, 13, 14 and 18 digit GS1 formats and verifies the
// mod-10 check digit. ISBN is the subset of EAN-13 numbers whose prefix is
// 978 or 979. Both wrap a uint64 and serialize as JSON numbers.
//
//	ean, err := barcode.NewEAN(4006381333931)
//	if err != nil {
//	    // errors.Is(err, domainmodel.ErrInvalidValue)
//	    // errors.Is(err, barcode.ErrInvalidChecksum)
//	}
//
// The checksum, length and prefix predicates are exported for callers that
// only need to check raw numbers.
package barcode
