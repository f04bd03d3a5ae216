package chat2pdf

import (
	"errors"
	"fmt"

	"github.com/alnah/go-chat2pdf/internal/assets"
	"github.com/alnah/go-chat2pdf/internal/markup"
	"github.com/alnah/go-chat2pdf/internal/pipeline"
	"github.com/alnah/go-chat2pdf/internal/render"
	"github.com/alnah/go-chat2pdf/internal/style"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrInputTooLarge = errors.New("markdown content too large")
	ErrInternal      = errors.New("internal conversion error")
	ErrPoolClosed    = errors.New("converter pool closed")
)

// Root causes a ConversionError may wrap.
var (
	ErrParse         = markup.ErrParse
	ErrUnknownStyle  = style.ErrUnknownStyle
	ErrInvalidTheme  = style.ErrInvalidTheme
	ErrThemeNotFound = assets.ErrThemeNotFound
	ErrEmptyTable    = pipeline.ErrEmptyTable
	ErrRender        = render.ErrRender
)

// Stage names a step of the conversion pipeline.
type Stage string

// Pipeline stages, in execution order.
const (
	StageValidate   Stage = "validate"
	StagePreprocess Stage = "preprocess"
	StageParse      Stage = "parse"
	StageMap        Stage = "map"
	StageRender     Stage = "render"
)

// ConversionError reports where a conversion stopped. It unwraps to the
// root cause.
type ConversionError struct {
	Stage     Stage
	InputSize int // bytes of Markdown received
	Err       error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion failed at %s stage (%d bytes of input): %v", e.Stage, e.InputSize, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
