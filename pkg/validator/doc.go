// Package validator builds declarative validation rules with
// translation-friendly error metadata.
//
// A Rule pairs a Check func with a ValidationError. Apply evaluates rules and
// aggregates failures into ValidationErrors, which implements error:
//
//	err := validator.Apply(
//	    validator.RequiredValue("postcode", addr.Postcode),
//	    validator.ValidCountryCode("country", rawCountry),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Fields() ...
//	}
//
// Domain rules check raw EAN, ISBN, country code and UK postcode input
// without constructing the value. RequiredValue rejects zero domain values,
// which is how omitted fields decode. FromDomainError turns a
// domainmodel.DomainValueError into ValidationErrors, and Merge folds both
// kinds of failure into one error so they report together.
package validator
