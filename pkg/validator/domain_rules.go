package validator

import (
	"github.com/whatishedoing/domainmodels/pkg/barcode"
	"github.com/whatishedoing/domainmodels/pkg/domainmodel"
	"github.com/whatishedoing/domainmodels/pkg/location"
)

func domainRule(field, kind string, check func() bool) Rule {
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:          field,
			Message:        "value is not a valid " + kind,
			TranslationKey: "validation.domain_value",
			TranslationValues: map[string]any{
				"field": field,
				"kind":  kind,
			},
		},
	}
}

// ValidEAN checks length and check digit of a raw EAN.
func ValidEAN(field string, value uint64) Rule {
	return domainRule(field, "ean", func() bool { return barcode.IsValidEAN(value) })
}

// ValidISBN checks a raw ISBN-13, including its 978/979 prefix.
func ValidISBN(field string, value uint64) Rule {
	return domainRule(field, "isbn", func() bool { return barcode.IsValidISBN(value) })
}

// ValidCountryCode checks a raw two or three letter country code.
func ValidCountryCode(field, value string) Rule {
	return domainRule(field, "country_code", func() bool { return location.IsValidCountryCode(value) })
}

// ValidUKPostcode checks a raw UK postcode.
func ValidUKPostcode(field, value string) Rule {
	return domainRule(field, "postcode", func() bool { return location.IsValidUKPostcode(value) })
}

// RequiredValue fails for a zero domain value, the state of an omitted field
// after decoding.
func RequiredValue(field string, value interface{ IsZero() bool }) Rule {
	return Rule{
		Check: func() bool {
			return value != nil && !value.IsZero()
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// FromDomainError converts a rejected domain value into validation errors, so
// construction failures and rule failures can be reported together. It returns
// nil when err is not a domainmodel.DomainValueError.
func FromDomainError(err error) ValidationErrors {
	dve, ok := domainmodel.AsDomainValueError(err)
	if !ok {
		return nil
	}
	return ValidationErrors{{
		Field:             dve.Field,
		Message:           dve.Message,
		TranslationKey:    dve.TranslationKey,
		TranslationValues: dve.TranslationValues,
	}}
}
