// Package location provides validated address components: CountryCode and
// UKPostcode.
//
// Only structure is validated. A CountryCode is any two or three letter code,
// canonicalised to upper case. A UKPostcode follows the Royal Mail grammar,
// including the special GIR 0AA code, and is decomposed on construction:
//
//	pc, _ := location.NewUKPostcode("sw1a1aa")
//	pc.String()      // "SW1A 1AA"
//	pc.OutwardCode() // "SW1A"
//	pc.Area()        // "SW"
//	pc.District()    // "1A"
//	pc.Sector()      // "SW1A 1"
//	pc.InwardCode()  // "1AA"
//	pc.Unit()        // "AA"
//
// Input is trimmed and upper-cased before matching; at most one space may
// separate the outward and inward codes.
package location
