package i18n

import "embed"

//go:embed locales/*.yaml
var locales embed.FS

// Default returns the catalog built from the bundled locales.
func Default(opts ...Option) (*Catalog, error) {
	return LoadFS(locales, "locales/*.yaml", opts...)
}
