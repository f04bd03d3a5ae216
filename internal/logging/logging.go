// Package logging builds the zap loggers used by the CLI.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Sentinel errors for logger construction.
var (
	ErrInvalidLevel  = errors.New("invalid log level")
	ErrInvalidFormat = errors.New("invalid log format")
	ErrLogDir        = errors.New("failed to create log directory")
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Rotation defaults for the file sink.
const (
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 28
)

// Options configures New. Zero values select info level, console format and
// no file sink.
type Options struct {
	Level  string // debug, info, warn, error
	Format string // console or json, applies to the stream sink
	File   string // rotated JSON log file; empty disables

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New builds a logger writing to w and, when opts.File is set, to a rotated
// JSON file. A nil w disables the stream sink.
func New(opts Options, w io.Writer) (*zap.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	var cores []zapcore.Core

	if w != nil {
		enc, err := encoder(opts.Format)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), level))
	}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o750); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLogDir, err)
		}
		sink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, DefaultMaxSizeMB),
			MaxBackups: orDefault(opts.MaxBackups, DefaultMaxBackups),
			MaxAge:     orDefault(opts.MaxAgeDays, DefaultMaxAgeDays),
			Compress:   opts.Compress,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), sink, level))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// ParseLevel maps a level name to a zap level. Empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return l, fmt.Errorf("%w: %q (use debug, info, warn or error)", ErrInvalidLevel, s)
	}
	return l, nil
}

func encoder(format string) (zapcore.Encoder, error) {
	switch format {
	case "", FormatConsole:
		return zapcore.NewConsoleEncoder(encoderConfig()), nil
	case FormatJSON:
		return zapcore.NewJSONEncoder(encoderConfig()), nil
	default:
		return nil, fmt.Errorf("%w: %q (use %s or %s)", ErrInvalidFormat, format, FormatConsole, FormatJSON)
	}
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
