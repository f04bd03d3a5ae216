package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	chat2pdf "github.com/alnah/go-chat2pdf"
	"github.com/alnah/go-chat2pdf/internal/config"
	"github.com/alnah/go-chat2pdf/internal/dateutil"
	"github.com/alnah/go-chat2pdf/internal/fileutil"
	"github.com/alnah/go-chat2pdf/internal/hints"
	"github.com/alnah/go-chat2pdf/internal/logging"
)

// ErrInvalidTimeout indicates a --timeout value that is not a positive duration.
var ErrInvalidTimeout = errors.New("invalid timeout")

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	// Load configuration: file, then environment, then CLI flags
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return err
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logging.New(logOptions(cfg, flags), env.Stderr)
	if err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}
	defer func() { _ = log.Sync() }()

	timeout, err := resolveTimeout(flags.timeout, cfg)
	if err != nil {
		return err
	}

	// Resolve "auto" subject once for entire batch
	now := env.Now()
	subject, err := dateutil.ResolveDate(cfg.Document.Subject, now)
	if err != nil {
		return fmt.Errorf("invalid subject: %w", err)
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	outputDir := resolveOutputDir(flags.output, cfg)

	var files []FileToConvert
	if inputPath != stdinArg {
		files, err = discoverFiles(inputPath, outputDir)
		if err != nil {
			return fmt.Errorf("discovering files: %w", err)
		}
	}

	size := chat2pdf.ResolvePoolSize(cfg.Convert.Workers)
	if len(files) > 0 && size > len(files) {
		size = len(files)
	}
	cp, err := chat2pdf.NewConverterPool(size, converterOptions(cfg, timeout, log)...)
	if err != nil {
		return fmt.Errorf("creating converters: %w%s", err, hintFor(err))
	}
	defer cp.Close()
	pool := &poolAdapter{pool: cp}

	log.Debug("starting conversion",
		zap.String("input", inputPath),
		zap.Int("files", len(files)),
		zap.Int("workers", size),
		zap.Duration("timeout", timeout))

	params := &conversionParams{
		title:     cfg.Document.Title,
		author:    cfg.Document.Author,
		subject:   subject,
		createdAt: now,
		log:       log,
	}

	var results []ConversionResult
	if inputPath == stdinArg {
		results = []ConversionResult{convertStdin(ctx, pool, env.Stdin, env.Stdout, outputDir, params)}
	} else {
		results = convertBatch(ctx, pool, files, params)
	}

	printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env)
	return failure(results)
}

// loadConfig loads the config named by the flag, else by CHAT2PDF_CONFIG.
// Neither set means defaults.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		var hint string
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			hint = hints.ForConfigNotFound(config.SearchPaths(name))
		}
		return nil, fmt.Errorf("loading config: %w%s", err, hint)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	// Document flags
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.author != "" {
		cfg.Document.Author = flags.document.author
	}
	if flags.document.subject != "" {
		cfg.Document.Subject = flags.document.subject
	}

	// Style flags
	if flags.theme != "" {
		cfg.Style.Theme = flags.theme
	}
	if flags.themeDir != "" {
		cfg.Style.ThemeDir = flags.themeDir
	}

	// Log flags
	if flags.log.level != "" {
		cfg.Log.Level = flags.log.level
	}
	if flags.log.format != "" {
		cfg.Log.Format = flags.log.format
	}
	if flags.log.file != "" {
		cfg.Log.File = flags.log.file
	}

	// Convert flags
	if flags.workers > 0 {
		cfg.Convert.Workers = flags.workers
	}
}

// logOptions builds logger options. Without an explicit --log-level,
// --quiet lowers output to errors and --verbose raises it to info.
func logOptions(cfg *config.Config, flags *convertFlags) logging.Options {
	level := cfg.Log.Level
	if flags.log.level == "" {
		switch {
		case flags.common.quiet:
			level = "error"
		case flags.common.verbose && (level == "" || level == "warn" || level == "error"):
			level = "info"
		}
	}

	return logging.Options{
		Level:      level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	}
}

// resolveTimeout picks the per-file timeout.
// Priority: --timeout flag > convert.timeout (config or CHAT2PDF_TIMEOUT).
// Zero means the library default.
func resolveTimeout(flagValue string, cfg *config.Config) (time.Duration, error) {
	if flagValue != "" {
		d, err := time.ParseDuration(flagValue)
		if err != nil {
			return 0, fmt.Errorf("%w: %q (use a duration such as 30s or 2m)", ErrInvalidTimeout, flagValue)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: %s (must be positive)", ErrInvalidTimeout, d)
		}
		return d, nil
	}
	return cfg.Convert.TimeoutDuration()
}

// converterOptions builds the library options shared by every pooled converter.
func converterOptions(cfg *config.Config, timeout time.Duration, log *zap.Logger) []chat2pdf.Option {
	opts := []chat2pdf.Option{chat2pdf.WithLogger(log)}
	if timeout > 0 {
		opts = append(opts, chat2pdf.WithTimeout(timeout))
	}
	if cfg.Style.Theme != "" {
		opts = append(opts, chat2pdf.WithTheme(cfg.Style.Theme))
	}
	if cfg.Style.ThemeDir != "" {
		opts = append(opts, chat2pdf.WithThemeDir(cfg.Style.ThemeDir))
	}
	return opts
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}
