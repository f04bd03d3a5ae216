package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	chat2pdf "github.com/alnah/go-chat2pdf"
	"github.com/alnah/go-chat2pdf/internal/fileutil"
)

// Sentinel errors for input discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrNoMarkdownFiles    = errors.New("no markdown files found")
	ErrOutputNotDir       = errors.New("output must be a directory when input is a directory")
)

// stdinArg selects standard input as the source, or standard output as the
// destination when given to --output.
const stdinArg = "-"

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all markdown files to convert.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	if isPDFPath(outputDir) {
		return nil, fmt.Errorf("%w: %s", ErrOutputNotDir, outputDir)
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isMarkdownFile(path) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoMarkdownFiles, inputPath)
	}
	return files, nil
}

// resolveOutputPath determines the PDF output path for a markdown file.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	// Extension is a constant, ReplaceExtension cannot fail
	base, _ := fileutil.ReplaceExtension(filepath.Base(inputPath), "pdf")

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}

	if isPDFPath(outputDir) {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, base)
		}
	}

	return filepath.Join(outputDir, base)
}

// isPDFPath reports whether path names a PDF file rather than a directory.
func isPDFPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

// resolveStdinOutputPath determines where a PDF read from stdin goes.
// An empty result means standard output.
func resolveStdinOutputPath(output, generated string) string {
	switch {
	case output == stdinArg:
		return ""
	case output == "":
		return generated
	case isPDFPath(output):
		return output
	default:
		return filepath.Join(output, generated)
	}
}

func isMarkdownFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !isMarkdownFile(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > chat2pdf.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, chat2pdf.MaxPoolSize)
	}
	return nil
}
