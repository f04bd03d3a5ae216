package markup

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)

	// Chat replies often bullet with "•" instead of "-"
	unicodeBullet = regexp.MustCompile(`(?m)^([ \t]*)[•●▪][ \t]+`)
)

// Preprocessor defines the contract for text cleanup before parsing.
type Preprocessor interface {
	Preprocess(ctx context.Context, content string) string
}

// ChatPreprocessor normalizes text produced by chat assistants.
type ChatPreprocessor struct{}

// Preprocess applies all transformations to prepare Markdown for parsing.
func (p *ChatPreprocessor) Preprocess(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	content = norm.NFC.String(content)
	content = strings.TrimPrefix(content, "\uFEFF")
	content = convertUnicodeBullets(content)
	content = compressBlankLines(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// convertUnicodeBullets rewrites "• item" lines to "- item" so they parse as
// list items.
func convertUnicodeBullets(content string) string {
	return unicodeBullet.ReplaceAllString(content, "$1- ")
}
