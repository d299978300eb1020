package api

import (
	"log/slog"

	"github.com/whatishedoing/domainmodels/pkg/barcode"
	"github.com/whatishedoing/domainmodels/pkg/httpserver"
	"github.com/whatishedoing/domainmodels/pkg/location"
)

// Config is the service configuration read from the environment.
type Config struct {
	Env       string     `env:"APP_ENV" envDefault:"development"`
	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string     `env:"LOG_FORMAT"`
	HTTP      httpserver.Config
	Samples   Samples `envPrefix:"SAMPLE_"`
}

// Samples are the values served by GET /api/{type}. Invalid values fail
// configuration loading.
type Samples struct {
	EAN         barcode.EAN          `env:"EAN" envDefault:"73513537"`
	ISBN        barcode.ISBN         `env:"ISBN" envDefault:"9783161484100"`
	CountryCode location.CountryCode `env:"COUNTRY_CODE" envDefault:"GB"`
	Postcode    location.UKPostcode  `env:"POSTCODE" envDefault:"SW1 1AA"`
}

// DefaultSamples returns the built-in sample values.
func DefaultSamples() Samples {
	return Samples{
		EAN:         barcode.MustEAN(73513537),
		ISBN:        barcode.MustISBN(9783161484100),
		CountryCode: location.MustCountryCode("GB"),
		Postcode:    location.MustUKPostcode("SW1 1AA"),
	}
}
