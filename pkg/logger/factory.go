package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/whatishedoing/domainmodels/pkg/environment"
)

// Format is the log line encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Option configures New.
type Option func(*config)

type config struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
}

// environmentDefaults holds the level and format per deployment. Names that
// are not listed get the development entry.
var environmentDefaults = map[environment.Environment]struct {
	level  slog.Level
	format Format
}{
	environment.Development: {level: slog.LevelDebug, format: FormatText},
	environment.Staging:     {level: slog.LevelInfo, format: FormatJSON},
	environment.Production:  {level: slog.LevelInfo, format: FormatJSON},
}

// WithEnvironment applies the level and format configured for env and tags
// every record with service. Later options override both.
func WithEnvironment(env, service string) Option {
	return func(c *config) {
		d, ok := environmentDefaults[environment.Parse(env)]
		if !ok {
			d = environmentDefaults[environment.Development]
		}
		c.level = d.level
		c.format = d.format
		if service != "" {
			c.attrs = append(c.attrs, slog.String("service", service))
		}
	}
}

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat panics on anything but FormatJSON and FormatText; the CLI and
// the API validate user input before it gets here.
func WithFormat(f Format) Option {
	switch f {
	case FormatJSON, FormatText:
	default:
		panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
	}
	return func(c *config) { c.format = f }
}

func WithTextFormatter() Option {
	return WithFormat(FormatText)
}

// WithOutput ignores a nil writer.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) { c.attrs = append(c.attrs, attrs...) }
}

// WithContextExtractors registers extractors run on each record. Nil entries
// are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// New builds a logger writing JSON at info level to stdout unless opts say
// otherwise.
func New(opts ...Option) *slog.Logger {
	cfg := &config{level: slog.LevelInfo, format: FormatJSON, output: os.Stdout}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}
	var h slog.Handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	if cfg.format == FormatText {
		h = slog.NewTextHandler(cfg.output, handlerOpts)
	}
	if len(cfg.attrs) > 0 {
		h = h.WithAttrs(cfg.attrs)
	}
	if len(cfg.extractors) > 0 {
		h = contextHandler{Handler: h, extractors: cfg.extractors}
	}
	return slog.New(h)
}
