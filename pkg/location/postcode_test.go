package location_test

import (
	"encoding/json"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"

	"github.com/whatishedoing/domainmodels/pkg/domainmodel"
	"github.com/whatishedoing/domainmodels/pkg/location"
)

type address struct {
	XMLName     xml.Name             `json:"-" xml:"Address" yaml:"-"`
	CountryCode location.CountryCode `json:"countryCode" xml:"CountryCode" yaml:"country_code"`
	Postcode    location.UKPostcode  `json:"postcode" xml:"Postcode" yaml:"postcode"`
}

func TestNewUKPostcode_Decomposition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in                                                 string
		canonical, outward, area, district, sector, inward string
		unit                                               string
	}{
		{"S2 4SU", "S2 4SU", "S2", "S", "2", "S2 4", "4SU", "SU"},
		{"SW1A 1AA", "SW1A 1AA", "SW1A", "SW", "1A", "SW1A 1", "1AA", "AA"},
		{"sw1a1aa", "SW1A 1AA", "SW1A", "SW", "1A", "SW1A 1", "1AA", "AA"},
		{"BH136HB", "BH13 6HB", "BH13", "BH", "13", "BH13 6", "6HB", "HB"},
		{"W1A 0AX", "W1A 0AX", "W1A", "W", "1A", "W1A 0", "0AX", "AX"},
		{"M1 1AE", "M1 1AE", "M1", "M", "1", "M1 1", "1AE", "AE"},
		{"CR2 6XH", "CR2 6XH", "CR2", "CR", "2", "CR2 6", "6XH", "XH"},
		{"DN55 1PT", "DN55 1PT", "DN55", "DN", "55", "DN55 1", "1PT", "PT"},
		{"EC1A 1BB", "EC1A 1BB", "EC1A", "EC", "1A", "EC1A 1", "1BB", "BB"},
		{" gir0aa ", "GIR 0AA", "GIR", "GIR", "", "GIR 0", "0AA", "AA"},
	}

	for _, tc := range cases {
		pc, err := location.NewUKPostcode(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.canonical, pc.Value(), tc.in)
		assert.Equal(t, tc.outward, pc.OutwardCode(), tc.in)
		assert.Equal(t, tc.area, pc.Area(), tc.in)
		assert.Equal(t, tc.district, pc.District(), tc.in)
		assert.Equal(t, tc.sector, pc.Sector(), tc.in)
		assert.Equal(t, tc.inward, pc.InwardCode(), tc.in)
		assert.Equal(t, tc.unit, pc.Unit(), tc.in)
	}
}

func TestNewUKPostcode_Grammar(t *testing.T) {
	t.Parallel()

	t.Run("special case", func(t *testing.T) {
		t.Parallel()

		for _, in := range []string{"GIR0AA", "GIR 0AA", "gir 0aa"} {
			assert.True(t, location.IsValidUKPostcode(in), in)
		}
		assert.False(t, location.IsValidUKPostcode("GIR  0AA"))
	})

	t.Run("rejects malformed postcodes", func(t *testing.T) {
		t.Parallel()

		for _, in := range []string{
			"",
			"   ",
			"SW1A  1AA", // two spaces
			"SW1A\t1AA",
			"QA1 1AA",   // Q never leads
			"VA1 1AA",   // V never leads
			"XA1 1AA",   // X never leads
			"AI1 1AA",   // I never second
			"AZ1 1AA",   // Z never second
			"S2 4CU",    // C not allowed in the unit
			"S2 4SI",    // I not allowed in the unit
			"S2 4SU X",  // trailing junk
			"XS2 4SU",   // leading junk
			"S24SU1",
			"S2 SU",
			"123 4AB",
			"W1I 0AX",  // I not allowed third
			"EC1C 1BB", // C not allowed fourth
		} {
			_, err := location.NewUKPostcode(in)
			assert.ErrorIs(t, err, domainmodel.ErrInvalidValue, in)
		}
	})

	t.Run("separator is at most one space", func(t *testing.T) {
		t.Parallel()

		for _, in := range []string{"SW1A1AA", "SW1A 1AA", "  sw1a 1aa\t"} {
			pc, err := location.NewUKPostcode(in)
			require.NoError(t, err, in)
			assert.Equal(t, "SW1A 1AA", pc.String(), in)
		}
		for _, in := range []string{"SW1A\t1AA", "SW1A\n1AA", "SW1A\u00a01AA", "SW1A  1AA"} {
			_, err := location.NewUKPostcode(in)
			assert.ErrorIs(t, err, domainmodel.ErrInvalidValue, in)
		}
	})

	t.Run("nil and empty are rejected", func(t *testing.T) {
		t.Parallel()

		_, err := location.ParseUKPostcode(nil)
		assert.ErrorIs(t, err, domainmodel.ErrNilValue)

		_, err = location.NewUKPostcode("")
		assert.ErrorIs(t, err, domainmodel.ErrEmptyValue)
	})
}

func TestUKPostcode_Equality(t *testing.T) {
	t.Parallel()

	a := location.MustUKPostcode("BH136HB")
	b := location.MustUKPostcode("BH13 6HB")
	c := location.MustUKPostcode("bh13 6hb")

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(c))
	assert.Equal(t, a, c)
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(location.MustUKPostcode("BH13 6HA")))

	pc, ok := location.TryParseUKPostcode("not a postcode")
	assert.False(t, ok)
	assert.True(t, pc.IsZero())
}

func TestAddressSerialization(t *testing.T) {
	t.Parallel()

	addr := address{
		CountryCode: location.MustCountryCode("gb"),
		Postcode:    location.MustUKPostcode("sw1a1aa"),
	}

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(addr)
		require.NoError(t, err)
		assert.JSONEq(t, `{"countryCode":"GB","postcode":"SW1A 1AA"}`, string(data))

		got, err := domainmodel.DecodeJSON[address](data)
		require.NoError(t, err)
		assert.Equal(t, addr, got)
		assert.Equal(t, "SW1A 1", got.Postcode.Sector())
	})

	t.Run("xml", func(t *testing.T) {
		t.Parallel()

		data, err := xml.Marshal(addr)
		require.NoError(t, err)
		assert.Equal(t, `<Address><CountryCode>GB</CountryCode><Postcode>SW1A 1AA</Postcode></Address>`, string(data))

		got, err := domainmodel.DecodeXML[address](data)
		require.NoError(t, err)
		assert.True(t, addr.CountryCode.Equal(got.CountryCode))
		assert.True(t, addr.Postcode.Equal(got.Postcode))
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		data, err := yaml.Marshal(addr)
		require.NoError(t, err)
		assert.Equal(t, "country_code: GB\npostcode: SW1A 1AA\n", string(data))

		got, err := domainmodel.DecodeYAML[address](data)
		require.NoError(t, err)
		assert.Equal(t, addr, got)
	})

	t.Run("null fails the whole composite", func(t *testing.T) {
		t.Parallel()

		got, err := domainmodel.DecodeJSON[address]([]byte(`{"countryCode":null,"postcode":"SW1A 1AA"}`))
		assert.ErrorIs(t, err, domainmodel.ErrInvalidValue)
		assert.ErrorIs(t, err, domainmodel.ErrNilValue)
		assert.Equal(t, address{}, got)

		got, err = domainmodel.DecodeYAML[address]([]byte("country_code: GB\npostcode: null\n"))
		assert.ErrorIs(t, err, domainmodel.ErrNilValue)
		assert.Equal(t, address{}, got)

		var cc location.CountryCode
		err = cc.UnmarshalJSON([]byte("null"))
		dve, ok := domainmodel.AsDomainValueError(err)
		require.True(t, ok)
		assert.Equal(t, "domain.country_code.invalid", dve.TranslationKey)
		assert.True(t, cc.IsZero())
	})

	t.Run("invalid postcode fails the whole composite", func(t *testing.T) {
		t.Parallel()

		got, err := domainmodel.DecodeJSON[address]([]byte(`{"countryCode":"GB","postcode":"GIR  0AA"}`))
		assert.ErrorIs(t, err, domainmodel.ErrInvalidValue)
		assert.Equal(t, address{}, got)

		got, err = domainmodel.DecodeXML[address]([]byte(`<Address><CountryCode>GB1</CountryCode></Address>`))
		assert.ErrorIs(t, err, domainmodel.ErrInvalidValue)
		assert.Equal(t, address{}, got)
	})
}

func TestUKPostcode_CanonicalIsIdempotent(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		in := rapid.StringMatching(`[A-PR-UWYZ][A-HK-Y]?[0-9]{1,2} ?[0-9][ABD-HJLNP-UW-Z]{2}`).Draw(t, "postcode")

		pc, err := location.NewUKPostcode(in)
		if err != nil {
			t.Fatalf("postcode %q rejected: %v", in, err)
		}
		again, err := location.NewUKPostcode(pc.String())
		if err != nil || again != pc {
			t.Fatalf("canonical %q did not reconstruct: %v", pc.String(), err)
		}
		if pc.OutwardCode()+pc.InwardCode() != pc.Area()+pc.District()+pc.Sector()[len(pc.OutwardCode())+1:]+pc.Unit() {
			t.Fatalf("decomposition of %q is inconsistent", in)
		}
	})
}
