package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used when a request expresses no supported preference.
const DefaultLanguage = "en"

// Catalog holds flattened translations per language and matches requested
// languages against the ones it has.
type Catalog struct {
	translations map[string]map[string]string
	defaultLang  string
	langs        []string
	matcher      language.Matcher
	logger       *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithLogger logs missing translation keys at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCatalog parses YAML documents whose top-level keys are language tags and
// whose values are nested mappings of translation keys:
//
//	en:
//	  domain:
//	    ean:
//	      invalid: "%{value} is not a valid EAN"
//
// Later documents override keys of earlier ones.
func NewCatalog(docs [][]byte, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		translations: make(map[string]map[string]string),
		defaultLang:  DefaultLanguage,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, doc := range docs {
		var raw map[string]any
		if err := yaml.Unmarshal(doc, &raw); err != nil {
			return nil, errors.Join(ErrFailedToParseYAML, err)
		}
		for lang, tree := range raw {
			tag, err := language.Parse(lang)
			if err != nil {
				return nil, fmt.Errorf("%w %q: %w", ErrInvalidLanguage, lang, err)
			}
			key := tag.String()
			if c.translations[key] == nil {
				c.translations[key] = make(map[string]string)
			}
			if err := flatten(c.translations[key], "", tree); err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
		}
	}

	if len(c.translations) == 0 {
		return nil, ErrNoTranslations
	}

	// The matcher falls back to its first tag, so the default language leads.
	c.langs = slices.Sorted(maps.Keys(c.translations))
	if i := slices.Index(c.langs, c.defaultLang); i > 0 {
		c.langs = slices.Insert(slices.Delete(c.langs, i, i+1), 0, c.defaultLang)
	}
	tags := make([]language.Tag, len(c.langs))
	for i, l := range c.langs {
		tags[i] = language.Make(l)
	}
	c.matcher = language.NewMatcher(tags)

	return c, nil
}

// LoadFS reads every file matching pattern in fsys into a Catalog.
func LoadFS(fsys fs.FS, pattern string, opts ...Option) (*Catalog, error) {
	names, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}
	slices.Sort(names)

	docs := make([][]byte, 0, len(names))
	for _, name := range names {
		b, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		docs = append(docs, b)
	}
	return NewCatalog(docs, opts...)
}

func flatten(dst map[string]string, prefix string, v any) error {
	switch val := v.(type) {
	case map[string]any:
		for k, child := range val {
			name := k
			if prefix != "" {
				name = prefix + "." + k
			}
			if err := flatten(dst, name, child); err != nil {
				return err
			}
		}
	case string:
		dst[prefix] = val
	case nil:
	default:
		return fmt.Errorf("%w: key %q holds %T", ErrInvalidValue, prefix, v)
	}
	return nil
}

// Languages returns the supported languages, default first.
func (c *Catalog) Languages() []string {
	return slices.Clone(c.langs)
}

// Has reports whether lang has a translation for key.
func (c *Catalog) Has(lang, key string) bool {
	_, ok := c.translations[lang][key]
	return ok
}

// Match returns the supported language that best serves an Accept-Language
// header value or a single language tag.
func (c *Catalog) Match(accept string) string {
	if accept == "" {
		return c.defaultLang
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return c.defaultLang
	}
	_, idx, conf := c.matcher.Match(tags...)
	if conf == language.No {
		return c.defaultLang
	}
	return c.langs[idx]
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// T translates key for lang, substituting %{name} placeholders from values.
// Keys missing in lang fall back to the default language. It returns "" when
// neither has the key. Unknown placeholders are kept as-is.
func (c *Catalog) T(lang, key string, values map[string]any) string {
	tmpl, ok := c.translations[lang][key]
	if !ok {
		tmpl, ok = c.translations[c.defaultLang][key]
	}
	if !ok {
		c.logger.Debug("translation not found", slog.String("lang", lang), slog.String("key", key))
		return ""
	}
	if !strings.Contains(tmpl, "%{") {
		return tmpl
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(m string) string {
		if v, ok := values[m[2:len(m)-1]]; ok {
			return fmt.Sprint(v)
		}
		return m
	})
}
