// Package dateutil turns token date formats such as "YYYYMMDD_HHmmss" into
// Go layouts. It backs generated file names and the "auto" subject value.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates a format that cannot be converted.
var ErrInvalidDateFormat = errors.New("invalid date format")

// TimestampFormat is a compact, sortable date and time used in file names.
const TimestampFormat = "YYYYMMDD_HHmmss"

const (
	maxFormatLength = 50
	autoFormat      = "YYYY-MM-DD"
	autoKeyword     = "auto"
)

// tokens are tried in order, so a longer token must precede its prefixes.
var tokens = [...]struct{ in, layout string }{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"D", "2"},
}

// presets are named formats accepted after "auto:", case-insensitively.
var presets = map[string]string{
	"iso":   "YYYY-MM-DD",
	"long":  "MMMM D, YYYY",
	"stamp": TimestampFormat,
}

// ParseDateFormat converts a token format into a Go time layout.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, mm, ss. Text inside
// [brackets] is copied verbatim; any other character is kept as a literal.
func ParseDateFormat(format string) (string, error) {
	switch {
	case format == "":
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	case len(format) > maxFormatLength:
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, maxFormatLength)
	}

	var b strings.Builder
	rest := format
	for rest != "" {
		if rest[0] == '[' {
			literal, after, ok := strings.Cut(rest[1:], "]")
			if !ok {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			b.WriteString(literal)
			rest = after
			continue
		}
		rest = writeToken(&b, rest)
	}
	return b.String(), nil
}

// writeToken writes the layout of the token starting s, or its first byte
// when none matches, and returns the remainder.
func writeToken(b *strings.Builder, s string) string {
	for _, t := range tokens {
		if strings.HasPrefix(s, t.in) {
			b.WriteString(t.layout)
			return s[len(t.in):]
		}
	}
	b.WriteByte(s[0])
	return s[1:]
}

// ResolveDate expands "auto" to t as YYYY-MM-DD and "auto:FORMAT" to t in
// FORMAT, where FORMAT may also name a preset (iso, long, stamp). The keyword
// is case-insensitive. Any other value is returned unchanged.
func ResolveDate(value string, t time.Time) (string, error) {
	if len(value) < len(autoKeyword) || !strings.EqualFold(value[:len(autoKeyword)], autoKeyword) {
		return value, nil
	}

	format := autoFormat
	switch rest := value[len(autoKeyword):]; {
	case rest == "":
	case rest[0] != ':':
		return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
	case rest == ":":
		return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
	default:
		format = rest[1:]
		if p, ok := presets[strings.ToLower(format)]; ok {
			format = p
		}
	}

	layout, err := ParseDateFormat(format)
	if err != nil {
		return "", err
	}
	return t.Format(layout), nil
}
