// Package config loads typed configuration from the environment.
//
// It reads optional .env files with github.com/joho/godotenv and parses the
// environment into a struct with github.com/caarlos0/env/v11. Domain value
// fields decode through encoding.TextUnmarshaler, so an invalid configured
// value fails Load instead of surfacing later.
package config
