package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whatishedoing/domainmodels/pkg/barcode"
	"github.com/whatishedoing/domainmodels/pkg/location"
	"github.com/whatishedoing/domainmodels/pkg/validator"
)

func TestDomainRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rule validator.Rule
		want bool
	}{
		{name: "ean8", rule: validator.ValidEAN("ean", 73513537), want: true},
		{name: "ean13", rule: validator.ValidEAN("ean", 4006381333931), want: true},
		{name: "ean bad check digit", rule: validator.ValidEAN("ean", 73513538), want: false},
		{name: "ean zero", rule: validator.ValidEAN("ean", 0), want: false},
		{name: "isbn", rule: validator.ValidISBN("isbn", 9783161484100), want: true},
		{name: "isbn 979", rule: validator.ValidISBN("isbn", 9791234567896), want: true},
		{name: "isbn wrong prefix", rule: validator.ValidISBN("isbn", 4006381333931), want: false},
		{name: "alpha2", rule: validator.ValidCountryCode("country", "gb"), want: true},
		{name: "alpha3", rule: validator.ValidCountryCode("country", "GBR"), want: true},
		{name: "country digits", rule: validator.ValidCountryCode("country", "G1"), want: false},
		{name: "country empty", rule: validator.ValidCountryCode("country", ""), want: false},
		{name: "postcode", rule: validator.ValidUKPostcode("postcode", "sw1a1aa"), want: true},
		{name: "postcode giro", rule: validator.ValidUKPostcode("postcode", "GIR 0AA"), want: false},
		{name: "postcode short", rule: validator.ValidUKPostcode("postcode", "QQ1"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.rule.Check())
			assert.Equal(t, "validation.domain_value", tt.rule.Error.TranslationKey)
		})
	}
}

func TestRequiredValue(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.RequiredValue("ean", barcode.MustEAN(73513537)).Check())
	assert.False(t, validator.RequiredValue("ean", barcode.EAN{}).Check())
	assert.False(t, validator.RequiredValue("postcode", nil).Check())
	assert.True(t, validator.RequiredValue("postcode", location.MustUKPostcode("M1 1AE")).Check())
}

func TestApply_DomainRecord(t *testing.T) {
	t.Parallel()

	type address struct {
		Country  location.CountryCode
		Postcode location.UKPostcode
	}
	a := address{Country: location.MustCountryCode("GB")}

	err := validator.Apply(
		validator.RequiredValue("country", a.Country),
		validator.RequiredValue("postcode", a.Postcode),
	)

	require.Error(t, err)
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "postcode", verrs[0].Field)
}

func TestFromDomainError(t *testing.T) {
	t.Parallel()

	_, err := location.NewUKPostcode("QQ1")
	require.Error(t, err)

	verrs := validator.FromDomainError(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "postcode", verrs[0].Field)
	assert.Equal(t, "domain.postcode.invalid", verrs[0].TranslationKey)
	assert.Equal(t, "QQ1", verrs[0].TranslationValues["value"])

	assert.Nil(t, validator.FromDomainError(assert.AnError))
	assert.Nil(t, validator.FromDomainError(nil))
}
