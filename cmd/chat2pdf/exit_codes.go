package main

import (
	"context"
	"errors"
	"os"

	chat2pdf "github.com/alnah/go-chat2pdf"
	"github.com/alnah/go-chat2pdf/internal/config"
	"github.com/alnah/go-chat2pdf/internal/dateutil"
	"github.com/alnah/go-chat2pdf/internal/hints"
	"github.com/alnah/go-chat2pdf/internal/logging"
	"github.com/alnah/go-chat2pdf/internal/style"
)

// Exit codes for chat2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or input
	ExitIO      = 3 // File not found, permission denied
	ExitRender  = 4 // PDF layout errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Render errors (exit 4)
	if errors.Is(err, chat2pdf.ErrRender) ||
		errors.Is(err, chat2pdf.ErrInternal) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoMarkdownFiles) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, logging.ErrInvalidLevel) ||
		errors.Is(err, logging.ErrInvalidFormat) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, chat2pdf.ErrEmptyMarkdown) ||
		errors.Is(err, chat2pdf.ErrInputTooLarge) ||
		errors.Is(err, chat2pdf.ErrParse) ||
		errors.Is(err, chat2pdf.ErrInvalidTheme) ||
		errors.Is(err, style.ErrInvalidColor) ||
		errors.Is(err, chat2pdf.ErrUnknownStyle) ||
		errors.Is(err, chat2pdf.ErrEmptyTable) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrOutputNotDir) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "" when none applies.
func hintFor(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, chat2pdf.ErrInputTooLarge):
		return hints.ForInputTooLarge(chat2pdf.MaxInputSize)
	case errors.Is(err, chat2pdf.ErrParse):
		return hints.ForParse()
	case errors.Is(err, chat2pdf.ErrUnknownStyle):
		return hints.ForStyleNotFound(styleNames())
	case errors.Is(err, chat2pdf.ErrThemeNotFound):
		return hints.ForThemeNotFound(chat2pdf.ThemeNames())
	case errors.Is(err, chat2pdf.ErrInvalidTheme), errors.Is(err, style.ErrInvalidColor):
		return hints.ForTheme()
	default:
		return ""
	}
}

func styleNames() []string {
	names := style.Names()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}
