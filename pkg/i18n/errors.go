package i18n

import "errors"

var (
	ErrFailedToParseYAML = errors.New("failed to parse YAML translations")
	ErrNoTranslations    = errors.New("no translations loaded")
	ErrInvalidLanguage   = errors.New("invalid language tag")
	ErrInvalidValue      = errors.New("translation value must be a string or a mapping")
)
