package chat2pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-chat2pdf/internal/markup"
	"github.com/alnah/go-chat2pdf/internal/pipeline"
	"github.com/alnah/go-chat2pdf/internal/render"
	"github.com/alnah/go-chat2pdf/internal/style"
)

// Compile-time interface implementation checks.
var (
	_ markup.Preprocessor    = (*markup.ChatPreprocessor)(nil)
	_ markup.Parser          = (*markup.GoldmarkParser)(nil)
	_ pipeline.StyleResolver = (*style.Registry)(nil)
	_ render.Renderer        = (*render.PDFRenderer)(nil)
)

// Converter runs the Markdown-to-PDF pipeline. Create with NewConverter;
// a Converter is safe for concurrent use.
type Converter struct {
	cfg          converterConfig
	log          *zap.Logger
	styles       *style.Registry
	geometry     render.Geometry
	now          func() time.Time
	preprocessor markup.Preprocessor
	parser       markup.Parser
	mapper       *pipeline.Mapper
	renderer     render.Renderer
}

// NewConverter creates a Converter with the default palette and US Letter
// pages. Returns ErrInvalidTheme if WithTheme names an unusable theme.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:          converterConfig{timeout: defaultTimeout},
		log:          zap.NewNop(),
		geometry:     render.Letter(),
		now:          time.Now,
		preprocessor: &markup.ChatPreprocessor{},
		parser:       markup.NewGoldmarkParser(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.styles == nil {
		reg, err := loadStyles(c.cfg.theme, c.cfg.themeDir)
		if err != nil {
			return nil, err
		}
		c.styles = reg
	}

	c.mapper = pipeline.NewMapper(c.styles, c.log)

	// Create renderer if not injected (e.g., by tests)
	if c.renderer == nil {
		c.renderer = render.NewPDFRenderer(c.styles, c.log)
	}

	return c, nil
}

// Convert runs validate, preprocess, parse, map and render in order. Any
// failure is returned as a *ConversionError and no PDF bytes are produced.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	size := len(input.Markdown)
	stage := StageValidate

	fail := func(cause error) (*ConvertResult, error) {
		c.log.Error("conversion failed",
			zap.String("stage", string(stage)),
			zap.Int("input_bytes", size),
			zap.Error(cause))
		return nil, &ConversionError{Stage: stage, InputSize: size, Err: cause}
	}

	defer func() {
		if r := recover(); r != nil {
			result, err = fail(fmt.Errorf("%w: %v", ErrInternal, r))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	if err := validateInput(input); err != nil {
		return fail(err)
	}
	c.log.Info("converting markdown", zap.Int("input_bytes", size))

	stage = StagePreprocess
	md := c.preprocessor.Preprocess(ctx, input.Markdown)
	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	stage = StageParse
	nodes, err := c.parser.Parse(ctx, md)
	if err != nil {
		return fail(err)
	}
	c.log.Debug("markdown parsed", zap.Int("blocks", len(nodes)))

	stage = StageMap
	flowables, err := c.mapper.MapAll(ctx, nodes)
	if err != nil {
		return fail(err)
	}
	c.log.Debug("flowables built", zap.Int("flowables", len(flowables)))

	stage = StageRender
	pdf, err := c.renderer.Render(ctx, render.Document{
		Flowables: flowables,
		Geometry:  c.geometry,
		Info: render.Info{
			Title:     input.Title,
			Author:    input.Author,
			Subject:   input.Subject,
			CreatedAt: input.CreatedAt,
		},
	})
	if err != nil {
		return fail(err)
	}
	if len(pdf) == 0 {
		return fail(fmt.Errorf("%w: renderer returned no bytes", ErrRender))
	}

	stamp := input.CreatedAt
	if stamp.IsZero() {
		stamp = c.now()
	}

	c.log.Info("pdf generated",
		zap.Int("pdf_bytes", len(pdf)),
		zap.Int("flowables", len(flowables)))

	return &ConvertResult{
		PDF:       pdf,
		Flowables: flowables,
		Filename:  GenerateFilename(stamp),
	}, nil
}

// validateInput checks required fields.
func validateInput(input Input) error {
	if strings.TrimSpace(input.Markdown) == "" {
		return ErrEmptyMarkdown
	}
	if len(input.Markdown) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrInputTooLarge, len(input.Markdown), MaxInputSize)
	}
	return nil
}

// MarkdownToPDF converts markdown with a default Converter and returns the
// PDF bytes.
func MarkdownToPDF(ctx context.Context, markdown string) ([]byte, error) {
	c, err := NewConverter()
	if err != nil {
		return nil, err
	}
	res, err := c.Convert(ctx, Input{Markdown: markdown})
	if err != nil {
		return nil, err
	}
	return res.PDF, nil
}
