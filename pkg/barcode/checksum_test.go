package barcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/whatishedoing/domainmodels/pkg/barcode"
)

func TestEANChecksumValid(t *testing.T) {
	t.Parallel()

	t.Run("valid barcodes", func(t *testing.T) {
		t.Parallel()

		for _, v := range []uint64{
			73513537,           // EAN-8
			614141000036,       // UPC-A
			4006381333931,      // EAN-13
			9783161484100,      // ISBN-13
			12345678901231,     // GTIN-14
			106141411234567897, // SSCC-18
		} {
			assert.True(t, barcode.EANChecksumValid(v), v)
		}
	})

	t.Run("altered last digit fails", func(t *testing.T) {
		t.Parallel()

		for _, v := range []uint64{73513538, 4006381333932, 4006381333937, 9783161484101} {
			assert.False(t, barcode.EANChecksumValid(v), v)
		}
	})

	t.Run("single digit has no payload", func(t *testing.T) {
		t.Parallel()

		assert.False(t, barcode.EANChecksumValid(0))
		assert.False(t, barcode.EANChecksumValid(7))
	})
}

func TestCheckDigit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, barcode.CheckDigit([]int{7, 3, 5, 1, 3, 5, 3}))
	assert.Equal(t, 1, barcode.CheckDigit(barcode.Digits(400638133393)))
	assert.Equal(t, 0, barcode.CheckDigit(barcode.Digits(978316148410)))
}

func TestEANLengthValid(t *testing.T) {
	t.Parallel()

	cases := map[int]bool{7: false, 8: true, 9: false, 11: false, 12: true, 13: true, 14: true, 15: false, 17: false, 18: true, 19: false}
	for digits, want := range cases {
		v := uint64(1)
		for range digits - 1 {
			v *= 10
		}
		assert.Equal(t, want, barcode.EANLengthValid(v), "%d digits", digits)
	}
}

func TestISBNPrefixValid(t *testing.T) {
	t.Parallel()

	assert.True(t, barcode.ISBNPrefixValid(9783161484100))
	assert.True(t, barcode.ISBNPrefixValid(9791234567896))
	assert.True(t, barcode.ISBNPrefixValid(978))
	assert.False(t, barcode.ISBNPrefixValid(1234567890128))
	assert.False(t, barcode.ISBNPrefixValid(97))
	assert.False(t, barcode.ISBNPrefixValid(0))
}

func TestDigits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{0}, barcode.Digits(0))
	assert.Equal(t, []int{7, 3, 5}, barcode.Digits(735))
	assert.Equal(t, 1, barcode.DigitCount(0))
	assert.Equal(t, 20, barcode.DigitCount(18446744073709551615))
}
