package main

// Notes:
// - This file contains mocks and helpers shared across CLI tests.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	chat2pdf "github.com/alnah/go-chat2pdf"
)

// fixedNow is the clock used by CLI tests.
var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

// ---------------------------------------------------------------------------
// Mock Implementations - For unit testing
// ---------------------------------------------------------------------------

// mockConverter records inputs and returns a fixed PDF or error.
type mockConverter struct {
	mu     sync.Mutex
	inputs []chat2pdf.Input
	pdf    []byte
	err    error
}

func (m *mockConverter) Convert(_ context.Context, in chat2pdf.Input) (*chat2pdf.ConvertResult, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, in)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	return &chat2pdf.ConvertResult{PDF: m.pdf, Filename: chat2pdf.GenerateFilename(in.CreatedAt)}, nil
}

func (m *mockConverter) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.inputs)
}

// mockPool hands out the same converter to every worker.
type mockPool struct {
	conv       CLIConverter
	size       int
	acquireErr error
	acquired   atomic.Int32
	released   atomic.Int32
}

func (p *mockPool) Acquire(context.Context) (CLIConverter, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	p.acquired.Add(1)
	return p.conv, nil
}

func (p *mockPool) Release(CLIConverter) {
	p.released.Add(1)
}

func (p *mockPool) Size() int {
	return p.size
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// testEnv returns an Environment with captured output and a fixed clock.
func testEnv(stdin string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdin:  bytes.NewBufferString(stdin),
		Stdout: &stdout,
		Stderr: &stderr,
	}, &stdout, &stderr
}

// writeFile creates dir/name with content, creating parents.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

func testParams() *conversionParams {
	return &conversionParams{
		title:     "Notes",
		author:    "Ann",
		subject:   "2024-03-15",
		createdAt: fixedNow,
		log:       zapNop,
	}
}

var zapNop = zap.NewNop()
