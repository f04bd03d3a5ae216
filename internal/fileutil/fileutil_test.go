package fileutil_test

// Notes:
// - The write and close error branches in WriteFileAtomic are not tested
//   because triggering disk write failures is platform-specific.

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/alnah/go-chat2pdf/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension validation
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{
			name:      "valid extension pdf",
			extension: "pdf",
			wantErr:   nil,
		},
		{
			name:      "empty extension",
			extension: "",
			wantErr:   fileutil.ErrExtensionEmpty,
		},
		{
			name:      "forward slash path traversal",
			extension: "../etc/passwd",
			wantErr:   fileutil.ErrExtensionPathTraversal,
		},
		{
			name:      "backslash path traversal",
			extension: "..\\windows\\system32",
			wantErr:   fileutil.ErrExtensionPathTraversal,
		},
		{
			name:      "null byte injection",
			extension: "pdf\x00exe",
			wantErr:   fileutil.ErrExtensionPathTraversal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestReplaceExtension - Output name derivation
// ---------------------------------------------------------------------------

func TestReplaceExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"md file", "notes.md", "notes.pdf"},
		{"nested markdown file", filepath.Join("dir", "chat.markdown"), filepath.Join("dir", "chat.pdf")},
		{"no extension", "README", "README.pdf"},
		{"dotted name keeps earlier dots", "v1.2.notes.md", "v1.2.notes.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fileutil.ReplaceExtension(tt.path, "pdf")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReplaceExtension(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}

	t.Run("invalid extension", func(t *testing.T) {
		t.Parallel()

		_, err := fileutil.ReplaceExtension("notes.md", "")
		if !errors.Is(err, fileutil.ErrExtensionEmpty) {
			t.Errorf("error = %v, want ErrExtensionEmpty", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Atomic output writes
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes content and permissions", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.pdf")
		if err := fileutil.WriteFileAtomic(path, []byte("%PDF-1.3"), 0o644); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading output: %v", err)
		}
		if string(got) != "%PDF-1.3" {
			t.Errorf("content = %q, want %%PDF-1.3", got)
		}
		if runtime.GOOS != "windows" {
			info, err := os.Stat(path)
			if err != nil {
				t.Fatal(err)
			}
			if info.Mode().Perm() != 0o644 {
				t.Errorf("mode = %v, want 0644", info.Mode().Perm())
			}
		}
	})

	t.Run("overwrites existing file and leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.pdf")
		if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
			t.Fatal(err)
		}
		if err := fileutil.WriteFileAtomic(path, []byte("new"), 0o600); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("content = %q, want new", got)
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if strings.HasSuffix(e.Name(), ".tmp") {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
	})

	t.Run("missing directory returns error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "out.pdf")
		if err := fileutil.WriteFileAtomic(path, []byte("x"), 0o600); err == nil {
			t.Error("expected error for missing directory")
		}
	})
}

// ---------------------------------------------------------------------------
// TestFileExists - File existence check
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "exists.md")
	if err := os.WriteFile(file, []byte("# hi"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", file, true},
		{"directory", dir, false},
		{"missing path", filepath.Join(dir, "nope.md"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - Name vs path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"work", false},
		{"my-config", false},
		{"./work.yaml", true},
		{"../shared/theme.yaml", true},
		{"/absolute/path.yaml", true},
		{"C:\\windows\\path.yaml", true},
		{"sub/dir", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
