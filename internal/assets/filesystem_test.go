package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeTheme creates {base}/themes/{name}.yaml.
func writeTheme(t *testing.T, base, name, content string) {
	t.Helper()

	dir := filepath.Join(base, "themes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create themes dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write theme: %v", err)
	}
}

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}
		if loader == nil {
			t.Fatal("NewFilesystemLoader() returned nil")
		}
	})

	t.Run("empty path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader(\"\") error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("nonexistent directory returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory returns error", func(t *testing.T) {
		t.Parallel()

		filePath := filepath.Join(t.TempDir(), "file.txt")
		if err := os.WriteFile(filePath, []byte("test"), 0o644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		_, err := NewFilesystemLoader(filePath)
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestFilesystemLoader_LoadTheme(t *testing.T) {
	t.Parallel()

	t.Run("loads existing theme", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		content := "table:\n  headerFill: \"#000000\"\n"
		writeTheme(t, base, "mono", content)

		loader, err := NewFilesystemLoader(base)
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}
		got, err := loader.LoadTheme("mono")
		if err != nil {
			t.Fatalf("LoadTheme() error = %v", err)
		}
		if string(got) != content {
			t.Errorf("LoadTheme() = %q, want %q", got, content)
		}
	})

	t.Run("missing theme", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}
		_, err = loader.LoadTheme("mono")
		if !errors.Is(err, ErrThemeNotFound) {
			t.Errorf("LoadTheme() error = %v, want ErrThemeNotFound", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}
		_, err = loader.LoadTheme("../../etc/passwd")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTheme() error = %v, want ErrInvalidAssetName", err)
		}
	})
}

func TestFilesystemLoader_PathContainment(t *testing.T) {
	t.Parallel()

	t.Run("rejects symlink escape attempt", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		themesDir := filepath.Join(base, "themes")
		if err := os.MkdirAll(themesDir, 0o755); err != nil {
			t.Fatalf("failed to create themes dir: %v", err)
		}

		secretFile := filepath.Join(t.TempDir(), "secret.yaml")
		if err := os.WriteFile(secretFile, []byte("styles: {}\n"), 0o644); err != nil {
			t.Fatalf("failed to write secret file: %v", err)
		}
		if err := os.Symlink(secretFile, filepath.Join(themesDir, "evil.yaml")); err != nil {
			t.Skipf("symlink creation not supported: %v", err)
		}

		loader, err := NewFilesystemLoader(base)
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}
		_, err = loader.LoadTheme("evil")
		if !errors.Is(err, ErrPathTraversal) {
			t.Errorf("LoadTheme() with symlink escape error = %v, want ErrPathTraversal", err)
		}
	})
}

func TestFilesystemLoader_ImplementsAssetLoader(t *testing.T) {
	t.Parallel()

	var _ AssetLoader = (*FilesystemLoader)(nil)
}
