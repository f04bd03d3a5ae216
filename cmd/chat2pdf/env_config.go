package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-chat2pdf/internal/config"
)

// envPrefix starts every recognized environment variable.
const envPrefix = "CHAT2PDF_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // CHAT2PDF_CONFIG: config file name or path
	Theme      string        // CHAT2PDF_THEME: theme name or file path
	ThemeDir   string        // CHAT2PDF_THEME_DIR: directory of named themes
	Timeout    time.Duration // CHAT2PDF_TIMEOUT: per-file conversion timeout

	InputDir  string // CHAT2PDF_INPUT_DIR: default input directory
	OutputDir string // CHAT2PDF_OUTPUT_DIR: default output directory
	Author    string // CHAT2PDF_AUTHOR: PDF author
	Subject   string // CHAT2PDF_SUBJECT: PDF subject

	LogLevel string // CHAT2PDF_LOG_LEVEL: debug, info, warn, error
	LogFile  string // CHAT2PDF_LOG_FILE: rotated JSON log file
	Workers  int    // CHAT2PDF_WORKERS: parallel workers
}

// knownEnvVars lists valid CHAT2PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CHAT2PDF_CONFIG":     true,
	"CHAT2PDF_THEME":      true,
	"CHAT2PDF_THEME_DIR":  true,
	"CHAT2PDF_TIMEOUT":    true,
	"CHAT2PDF_INPUT_DIR":  true,
	"CHAT2PDF_OUTPUT_DIR": true,
	"CHAT2PDF_AUTHOR":     true,
	"CHAT2PDF_SUBJECT":    true,
	"CHAT2PDF_LOG_LEVEL":  true,
	"CHAT2PDF_LOG_FILE":   true,
	"CHAT2PDF_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed durations and counts are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("CHAT2PDF_CONFIG"),
		Theme:      os.Getenv("CHAT2PDF_THEME"),
		ThemeDir:   os.Getenv("CHAT2PDF_THEME_DIR"),
		InputDir:   os.Getenv("CHAT2PDF_INPUT_DIR"),
		OutputDir:  os.Getenv("CHAT2PDF_OUTPUT_DIR"),
		Author:     os.Getenv("CHAT2PDF_AUTHOR"),
		Subject:    os.Getenv("CHAT2PDF_SUBJECT"),
		LogLevel:   os.Getenv("CHAT2PDF_LOG_LEVEL"),
		LogFile:    os.Getenv("CHAT2PDF_LOG_FILE"),
	}

	// Parse duration for timeout
	if timeout := os.Getenv("CHAT2PDF_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	// Parse int for workers
	if workers := os.Getenv("CHAT2PDF_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized CHAT2PDF_* variables.
// Helps catch typos like CHAT2PDF_AUTHR instead of CHAT2PDF_AUTHOR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Theme != "" && cfg.Style.Theme == "" {
		cfg.Style.Theme = env.Theme
	}
	if env.ThemeDir != "" && cfg.Style.ThemeDir == "" {
		cfg.Style.ThemeDir = env.ThemeDir
	}

	// I/O
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}

	// Document metadata
	if env.Author != "" && cfg.Document.Author == "" {
		cfg.Document.Author = env.Author
	}
	if env.Subject != "" && cfg.Document.Subject == "" {
		cfg.Document.Subject = env.Subject
	}

	// Logging: the built-in default level counts as unset
	if env.LogLevel != "" && (cfg.Log.Level == "" || cfg.Log.Level == config.DefaultConfig().Log.Level) {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFile != "" && cfg.Log.File == "" {
		cfg.Log.File = env.LogFile
	}

	// Conversion
	if env.Workers > 0 && cfg.Convert.Workers == 0 {
		cfg.Convert.Workers = env.Workers
	}
	if env.Timeout > 0 && cfg.Convert.Timeout == "" {
		cfg.Convert.Timeout = env.Timeout.String()
	}
}
