package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-chat2pdf/internal/fileutil"
	"github.com/alnah/go-chat2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// appDirName is the directory searched under the user config dir.
const appDirName = "go-chat2pdf"

// Field length limits.
const (
	MaxTitleLength   = 200  // PDF title
	MaxAuthorLength  = 100  // Full name (generous)
	MaxSubjectLength = 200  // Free-form or "auto:FORMAT"
	MaxPathLength    = 4096 // PATH_MAX on Linux
)

// MaxWorkers caps convert.workers at the library pool limit.
const MaxWorkers = 16

// Config holds all configuration for the chat2pdf CLI.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Style    StyleConfig    `yaml:"style"`
	Log      LogConfig      `yaml:"log"`
	Convert  ConvertConfig  `yaml:"convert"`
}

// DocumentConfig defines PDF metadata.
type DocumentConfig struct {
	Title   string `yaml:"title"`
	Author  string `yaml:"author"`
	Subject string `yaml:"subject"` // "auto" or "auto:FORMAT" inserts the date
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// StyleConfig selects a theme overriding the default palette.
type StyleConfig struct {
	Theme    string `yaml:"theme"`    // Built-in theme name or path to theme file (empty = built-in palette)
	ThemeDir string `yaml:"themeDir"` // Directory holding themes/{name}.yaml, searched before built-ins
}

// LogConfig defines logging options.
type LogConfig struct {
	Level      string `yaml:"level"`  // debug, info, warn, error (default: warn)
	Format     string `yaml:"format"` // console, json (default: console)
	File       string `yaml:"file"`   // Rotated JSON log file (empty = none)
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	Compress   bool   `yaml:"compress"`
}

// ConvertConfig defines conversion options.
type ConvertConfig struct {
	Workers int    `yaml:"workers"` // 0 = auto (GOMAXPROCS)
	Timeout string `yaml:"timeout"` // Go duration, e.g. "30s" (empty = library default)
}

// TimeoutDuration parses Convert.Timeout. Empty returns zero.
func (c ConvertConfig) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: convert.timeout %q: %v", ErrInvalidValue, c.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: convert.timeout must be positive, got %s", ErrInvalidValue, d)
	}
	return d, nil
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	// Validate document fields
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.author", c.Document.Author, MaxAuthorLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.subject", c.Document.Subject, MaxSubjectLength); err != nil {
		return err
	}

	// Validate paths
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("style.theme", c.Style.Theme, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("style.themeDir", c.Style.ThemeDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("log.file", c.Log.File, MaxPathLength); err != nil {
		return err
	}

	// Validate log fields
	if c.Log.Level != "" {
		switch strings.ToLower(c.Log.Level) {
		case "debug", "info", "warn", "error":
			// valid
		default:
			return fmt.Errorf("%w: log.level %q (must be debug, info, warn, or error)", ErrInvalidValue, c.Log.Level)
		}
	}
	if c.Log.Format != "" {
		switch c.Log.Format {
		case "console", "json":
			// valid
		default:
			return fmt.Errorf("%w: log.format %q (must be console or json)", ErrInvalidValue, c.Log.Format)
		}
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("%w: log rotation values must not be negative", ErrInvalidValue)
	}

	// Validate convert fields
	if c.Convert.Workers < 0 || c.Convert.Workers > MaxWorkers {
		return fmt.Errorf("%w: convert.workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Convert.Workers)
	}
	if _, err := c.Convert.TimeoutDuration(); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: built-in palette, warn
// logging to stderr, automatic worker count.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "warn", Format: "console"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	if !fileutil.FileExists(configPath) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalFile(configPath, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-chat2pdf/
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}

// SearchPaths lists the candidate files for a config name, in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}
	return paths
}
