package main

// Notes:
// - These tests use t.Setenv() which modifies process environment,
//   so they cannot use t.Parallel().

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-chat2pdf/internal/config"
)

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("CHAT2PDF_CONFIG", "work")
	t.Setenv("CHAT2PDF_THEME", "blue.yaml")
	t.Setenv("CHAT2PDF_THEME_DIR", "mythemes")
	t.Setenv("CHAT2PDF_TIMEOUT", "90s")
	t.Setenv("CHAT2PDF_OUTPUT_DIR", "pdfs")
	t.Setenv("CHAT2PDF_AUTHOR", "Ann")
	t.Setenv("CHAT2PDF_WORKERS", "4")
	t.Setenv("CHAT2PDF_LOG_LEVEL", "debug")

	env := loadEnvConfig()

	if env.ConfigPath != "work" || env.Theme != "blue.yaml" || env.OutputDir != "pdfs" || env.Author != "Ann" {
		t.Errorf("string fields = %+v", env)
	}
	if env.ThemeDir != "mythemes" {
		t.Errorf("ThemeDir = %q, want mythemes", env.ThemeDir)
	}
	if env.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s", env.Timeout)
	}
	if env.Workers != 4 {
		t.Errorf("Workers = %d, want 4", env.Workers)
	}
	if env.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", env.LogLevel)
	}
}

func TestLoadEnvConfig_IgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("CHAT2PDF_TIMEOUT", "soon")
	t.Setenv("CHAT2PDF_WORKERS", "-2")

	env := loadEnvConfig()

	if env.Timeout != 0 {
		t.Errorf("Timeout = %v, want 0", env.Timeout)
	}
	if env.Workers != 0 {
		t.Errorf("Workers = %d, want 0", env.Workers)
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("CHAT2PDF_AUTHR", "typo")
	t.Setenv("CHAT2PDF_AUTHOR", "ok")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	if !strings.Contains(buf.String(), "CHAT2PDF_AUTHR") {
		t.Errorf("expected warning for CHAT2PDF_AUTHR, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "CHAT2PDF_AUTHOR ") {
		t.Errorf("unexpected warning for known variable: %q", buf.String())
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	env := &envConfig{
		Theme:     "env.yaml",
		ThemeDir:  "env-themes",
		Timeout:   time.Minute,
		InputDir:  "in",
		OutputDir: "out",
		Author:    "Env Author",
		Subject:   "auto",
		LogLevel:  "debug",
		LogFile:   "env.log",
		Workers:   2,
	}

	t.Run("fills empty config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(env, cfg)

		if cfg.Style.Theme != "env.yaml" || cfg.Style.ThemeDir != "env-themes" || cfg.Input.DefaultDir != "in" || cfg.Output.DefaultDir != "out" {
			t.Errorf("paths = %+v %+v %+v", cfg.Style, cfg.Input, cfg.Output)
		}
		if cfg.Document.Author != "Env Author" || cfg.Document.Subject != "auto" {
			t.Errorf("Document = %+v", cfg.Document)
		}
		if cfg.Log.Level != "debug" || cfg.Log.File != "env.log" {
			t.Errorf("Log = %+v", cfg.Log)
		}
		if cfg.Convert.Workers != 2 || cfg.Convert.Timeout != "1m0s" {
			t.Errorf("Convert = %+v", cfg.Convert)
		}
	})

	t.Run("config file values win", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Style.Theme = "file.yaml"
		cfg.Document.Author = "File Author"
		cfg.Log.Level = "error"
		cfg.Convert.Workers = 8
		cfg.Convert.Timeout = "10s"
		applyEnvConfig(env, cfg)

		if cfg.Style.Theme != "file.yaml" || cfg.Document.Author != "File Author" {
			t.Errorf("file values overridden: %+v %+v", cfg.Style, cfg.Document)
		}
		if cfg.Log.Level != "error" {
			t.Errorf("Log.Level = %q, want error", cfg.Log.Level)
		}
		if cfg.Convert.Workers != 8 || cfg.Convert.Timeout != "10s" {
			t.Errorf("Convert = %+v", cfg.Convert)
		}
	})
}
