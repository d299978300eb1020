package location

import "errors"

var (
	ErrInvalidCountryCode = errors.New("country code must be 2 or 3 letters")
	ErrInvalidPostcode    = errors.New("postcode does not match the UK postcode format")
)
