package barcode

import "errors"

var (
	// ErrInvalidLength is returned when the digit count is not an accepted barcode length.
	ErrInvalidLength = errors.New("invalid barcode length")

	// ErrInvalidChecksum is returned when the check digit does not match.
	ErrInvalidChecksum = errors.New("invalid barcode checksum")

	// ErrInvalidPrefix is returned when an ISBN does not start with 978 or 979.
	ErrInvalidPrefix = errors.New("invalid isbn prefix")
)

// GS1 lengths: EAN-8, UPC-A, EAN-13, GTIN-14 and SSCC-18.
var validEANLengths = map[int]bool{8: true, 12: true, 13: true, 14: true, 18: true}

const isbnLength = 13

// DigitCount returns the number of decimal digits of v. Zero has one digit.
func DigitCount(v uint64) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

// Digits returns the decimal digits of v from most to least significant.
func Digits(v uint64) []int {
	out := make([]int, DigitCount(v))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = int(v % 10)
		v /= 10
	}
	return out
}

// CheckDigit computes the GS1 mod-10 check digit for the payload digits
// (the barcode without its last digit).
func CheckDigit(payload []int) int {
	if len(payload)%2 == 1 {
		payload = append([]int{0}, payload...)
	}

	total := 0
	for i, d := range payload {
		if i%2 == 0 {
			total += d
		} else {
			total += d * 3
		}
	}

	return (10 - total%10) % 10
}

// EANChecksumValid reports whether the last digit of barcode is the check
// digit of the preceding ones.
func EANChecksumValid(barcode uint64) bool {
	digits := Digits(barcode)
	if len(digits) < 2 {
		return false
	}
	last := len(digits) - 1
	return CheckDigit(digits[:last]) == digits[last]
}

// EANLengthValid reports whether barcode has 8, 12, 13, 14 or 18 digits.
func EANLengthValid(barcode uint64) bool {
	return validEANLengths[DigitCount(barcode)]
}

// ISBNPrefixValid reports whether the leading three digits are 978 or 979.
func ISBNPrefixValid(barcode uint64) bool {
	n := DigitCount(barcode)
	if n < 3 {
		return false
	}

	prefix := barcode
	for range n - 3 {
		prefix /= 10
	}
	return prefix == 978 || prefix == 979
}

func checkEAN(v uint64) error {
	if !EANLengthValid(v) {
		return ErrInvalidLength
	}
	if !EANChecksumValid(v) {
		return ErrInvalidChecksum
	}
	return nil
}

func checkISBN(v uint64) error {
	if err := checkEAN(v); err != nil {
		return err
	}
	if DigitCount(v) != isbnLength {
		return ErrInvalidLength
	}
	if !ISBNPrefixValid(v) {
		return ErrInvalidPrefix
	}
	return nil
}
