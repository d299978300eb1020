package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*options)

type options struct {
	files  []string
	prefix string
}

// WithEnvFiles sets the .env files read before parsing. Files that do not
// exist are skipped. Defaults to ".env".
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.files = files
	}
}

// WithPrefix only considers variables starting with prefix. The prefix is
// stripped before matching the env tags.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// Load reads the configured .env files and parses the environment into a new
// T using its env tags. Variables already present in the process environment
// win over values from files.
//
// Field types implementing encoding.TextUnmarshaler are decoded through it,
// so domain values can be configured directly:
//
//	type Config struct {
//		Addr       string               `env:"ADDR" envDefault:":8080"`
//		DefaultEAN barcode.EAN          `env:"SAMPLE_EAN" envDefault:"73513537"`
//		Country    location.CountryCode `env:"SAMPLE_COUNTRY" envDefault:"GB"`
//	}
//
//	cfg, err := config.Load[Config]()
func Load[T any](opts ...Option) (T, error) {
	o := options{files: []string{".env"}}
	for _, opt := range opts {
		opt(&o)
	}

	var zero T
	if err := loadEnvFiles(o.files); err != nil {
		return zero, err
	}

	cfg, err := env.ParseAsWithOptions[T](env.Options{Prefix: o.prefix})
	if err != nil {
		return zero, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](opts ...Option) T {
	cfg, err := Load[T](opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}

func loadEnvFiles(files []string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("%w %s: %w", ErrLoadingEnvFile, f, err)
		}
	}
	return nil
}
