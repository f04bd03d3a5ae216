package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	chat2pdf "github.com/alnah/go-chat2pdf"
	"github.com/alnah/go-chat2pdf/internal/fileutil"
	"github.com/alnah/go-chat2pdf/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput      = errors.New("no input specified")
	ErrReadMarkdown = errors.New("failed to read markdown file")
	ErrWritePDF     = errors.New("failed to write PDF file")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input chat2pdf.Input) (*chat2pdf.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*chat2pdf.Converter)(nil)

// Pool abstracts converter pool operations for testability.
type Pool interface {
	Acquire(ctx context.Context) (CLIConverter, error)
	Release(CLIConverter)
	Size() int
}

// poolAdapter exposes a chat2pdf.ConverterPool as a Pool.
type poolAdapter struct {
	pool *chat2pdf.ConverterPool
}

// Compile-time check that poolAdapter implements Pool.
var _ Pool = (*poolAdapter)(nil)

func (a *poolAdapter) Acquire(ctx context.Context) (CLIConverter, error) {
	c, err := a.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Release panics when given a converter the pool did not hand out.
func (a *poolAdapter) Release(c CLIConverter) {
	conv, ok := c.(*chat2pdf.Converter)
	if !ok {
		panic(fmt.Sprintf("poolAdapter.Release: unexpected type %T", c))
	}
	a.pool.Release(conv)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	title     string
	author    string
	subject   string
	createdAt time.Time
	log       *zap.Logger
}

func (p *conversionParams) input(markdown string) chat2pdf.Input {
	return chat2pdf.Input{
		Markdown:  markdown,
		Title:     p.title,
		Author:    p.author,
		Subject:   p.subject,
		CreatedAt: p.createdAt,
	}
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// ResultSummary counts batch outcomes.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// batchError reports failed conversions. It unwraps to the first failure so
// the exit code reflects its cause.
type batchError struct {
	failed int
	total  int
	first  error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d of %d conversion(s) failed", e.failed, e.total)
}

func (e *batchError) Unwrap() error {
	return e.first
}

// convertBatch processes files concurrently using the converter pool.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			svc, err := pool.Acquire(ctx)
			if err != nil {
				// No converter available, mark remaining jobs as failed
				for idx := range jobs {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       err,
					}
				}
				return
			}
			defer pool.Release(svc)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, svc, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, service CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	finish := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		if err != nil {
			params.log.Warn("conversion failed", zap.String("input", f.InputPath), zap.Error(err))
		} else {
			params.log.Info("converted",
				zap.String("input", f.InputPath),
				zap.String("output", f.OutputPath),
				zap.Duration("duration", result.Duration))
		}
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return finish(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	res, err := service.Convert(ctx, params.input(string(content)))
	if err != nil {
		return finish(err)
	}

	return finish(writePDF(f.OutputPath, res.PDF))
}

// convertStdin converts Markdown read from r. The output name is derived
// from the result when output is empty or a directory; "-" writes to stdout.
func convertStdin(ctx context.Context, pool Pool, r io.Reader, stdout io.Writer, output string, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{InputPath: stdinArg}
	finish := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	// Read one byte past the limit so oversize input is rejected, not truncated
	content, err := io.ReadAll(io.LimitReader(r, chat2pdf.MaxInputSize+1))
	if err != nil {
		return finish(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	svc, err := pool.Acquire(ctx)
	if err != nil {
		return finish(err)
	}
	defer pool.Release(svc)

	res, err := svc.Convert(ctx, params.input(string(content)))
	if err != nil {
		return finish(err)
	}

	result.OutputPath = resolveStdinOutputPath(output, res.Filename)
	if result.OutputPath == "" {
		if _, err := stdout.Write(res.PDF); err != nil {
			return finish(fmt.Errorf("%w: %v", ErrWritePDF, err))
		}
		result.OutputPath = stdinArg
		return finish(nil)
	}
	return finish(writePDF(result.OutputPath, res.PDF))
}

// writePDF creates the output directory and writes data atomically.
func writePDF(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory())
	}
	if err := fileutil.WriteFileAtomic(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	return nil
}

// countResults tallies successes and failures.
func countResults(results []ConversionResult) ResultSummary {
	var s ResultSummary
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
		} else {
			s.Succeeded++
		}
	}
	return s
}

// printResultsWithWriter outputs conversion results using the provided writers.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			continue
		}

		// PDF bytes went to stdout; keep it clean
		if quiet || r.OutputPath == stdinArg {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

// failure returns a batchError for results, or nil when all succeeded.
func failure(results []ConversionResult) error {
	var first error
	failed := 0
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		if first == nil {
			first = r.Err
		}
		failed++
	}
	if failed == 0 {
		return nil
	}
	return &batchError{failed: failed, total: len(results), first: first}
}
