package chat2pdf

import (
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-chat2pdf/internal/flowable"
	"github.com/alnah/go-chat2pdf/internal/markup"
	"github.com/alnah/go-chat2pdf/internal/render"
	"github.com/alnah/go-chat2pdf/internal/style"
)

// MaxInputSize caps the Markdown accepted by Convert (10MB).
const MaxInputSize = 10 * 1024 * 1024

// Input contains the document content and metadata for one conversion.
type Input struct {
	Markdown string // Markdown content (required)
	Title    string // PDF title (optional)
	Author   string // PDF author (optional)
	Subject  string // PDF subject (optional)

	// CreatedAt is written as the PDF creation date and used for the
	// suggested file name. Zero pins the date to a fixed epoch, so output
	// bytes depend only on the input, and names the file after the clock.
	CreatedAt time.Time
}

// ConvertResult holds the output of a successful conversion.
type ConvertResult struct {
	PDF       []byte
	Flowables []flowable.Flowable
	Filename  string // suggested name, chatbot_response_YYYYMMDD_HHMMSS.pdf
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout  time.Duration
	theme    string
	themeDir string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the per-conversion timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("chat2pdf: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithLogger sets the logger for stage progress. Nil is ignored.
func WithLogger(log *zap.Logger) Option {
	return func(c *Converter) {
		if log != nil {
			c.log = log
		}
	}
}

// WithTheme selects the style overrides applied when the Converter is built.
// ref is either a built-in theme name (see ThemeNames) or a path to a YAML
// theme file; references containing a path separator or ending in .yaml or
// .yml are treated as paths. An unknown, unreadable or invalid theme makes
// NewConverter fail with ErrInvalidTheme.
func WithTheme(ref string) Option {
	return func(c *Converter) {
		c.cfg.theme = ref
	}
}

// WithThemeDir adds a directory of named themes, laid out as
// {dir}/themes/{name}.yaml, searched before the built-in themes.
func WithThemeDir(dir string) Option {
	return func(c *Converter) {
		c.cfg.themeDir = dir
	}
}

// Internal options for dependency injection in tests.

func withPreprocessor(p markup.Preprocessor) Option {
	return func(c *Converter) { c.preprocessor = p }
}

func withParser(p markup.Parser) Option {
	return func(c *Converter) { c.parser = p }
}

func withRenderer(r render.Renderer) Option {
	return func(c *Converter) { c.renderer = r }
}

func withStyles(r *style.Registry) Option {
	return func(c *Converter) { c.styles = r }
}

func withGeometry(g render.Geometry) Option {
	return func(c *Converter) { c.geometry = g }
}

func withClock(now func() time.Time) Option {
	return func(c *Converter) { c.now = now }
}
