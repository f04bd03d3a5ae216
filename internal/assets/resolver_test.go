package assets

import (
	"errors"
	"testing"
)

func TestNewAssetResolver(t *testing.T) {
	t.Parallel()

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver("")
		if err != nil {
			t.Fatalf("NewAssetResolver(\"\") error = %v", err)
		}
		if r.HasCustomLoader() {
			t.Error("HasCustomLoader() = true, want false")
		}
	})

	t.Run("custom directory", func(t *testing.T) {
		t.Parallel()

		r, err := NewAssetResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewAssetResolver() error = %v", err)
		}
		if !r.HasCustomLoader() {
			t.Error("HasCustomLoader() = false, want true")
		}
	})

	t.Run("invalid custom directory", func(t *testing.T) {
		t.Parallel()

		_, err := NewAssetResolver("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewAssetResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestAssetResolver_LoadTheme(t *testing.T) {
	t.Parallel()

	embeddedOcean, err := NewEmbeddedLoader().LoadTheme("ocean")
	if err != nil {
		t.Fatalf("embedded ocean: %v", err)
	}

	tests := []struct {
		name    string
		custom  map[string]string
		load    string
		want    string
		wantErr error
	}{
		{
			name: "embedded only",
			load: "ocean",
			want: string(embeddedOcean),
		},
		{
			name:   "falls back to embedded",
			custom: map[string]string{"mono": "styles: {}\n"},
			load:   "ocean",
			want:   string(embeddedOcean),
		},
		{
			name:   "custom theme",
			custom: map[string]string{"mono": "styles: {}\n"},
			load:   "mono",
			want:   "styles: {}\n",
		},
		{
			name:   "custom overrides embedded",
			custom: map[string]string{"ocean": "table: {}\n"},
			load:   "ocean",
			want:   "table: {}\n",
		},
		{
			name:    "not found anywhere",
			custom:  map[string]string{"mono": "styles: {}\n"},
			load:    "neon",
			wantErr: ErrThemeNotFound,
		},
		{
			name:    "validation errors are not fallen back",
			custom:  map[string]string{"mono": "styles: {}\n"},
			load:    "mono.yaml",
			wantErr: ErrInvalidAssetName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			base := ""
			if tt.custom != nil {
				base = t.TempDir()
				for name, content := range tt.custom {
					writeTheme(t, base, name, content)
				}
			}

			r, err := NewAssetResolver(base)
			if err != nil {
				t.Fatalf("NewAssetResolver() error = %v", err)
			}
			got, err := r.LoadTheme(tt.load)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTheme(%q) error = %v, want %v", tt.load, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTheme(%q) error = %v", tt.load, err)
			}
			if string(got) != tt.want {
				t.Errorf("LoadTheme(%q) = %q, want %q", tt.load, got, tt.want)
			}
		})
	}
}

func TestAssetResolver_ImplementsAssetLoader(t *testing.T) {
	t.Parallel()

	var _ AssetLoader = (*AssetResolver)(nil)
}
