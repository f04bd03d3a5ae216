package chat2pdf

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-chat2pdf/internal/assets"
	"github.com/alnah/go-chat2pdf/internal/fileutil"
	"github.com/alnah/go-chat2pdf/internal/style"
)

// ThemeNames lists the built-in themes accepted by WithTheme.
func ThemeNames() []string {
	return assets.ThemeNames()
}

// isThemePath reports whether ref names a file rather than a theme.
func isThemePath(ref string) bool {
	if fileutil.IsFilePath(ref) {
		return true
	}
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// loadStyles builds the style registry for a theme reference. A path is read
// from disk; a name is looked up in dir first, then among the built-in themes.
// An empty ref with an empty dir yields the built-in palette.
func loadStyles(ref, dir string) (*style.Registry, error) {
	if ref == "" && dir == "" {
		return style.Default(), nil
	}
	if isThemePath(ref) {
		return style.LoadTheme(ref)
	}
	if ref == "" {
		ref = assets.DefaultThemeName
	}

	resolver, err := assets.NewAssetResolver(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTheme, err)
	}
	data, err := resolver.LoadTheme(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTheme, err)
	}
	return style.ParseTheme(data)
}
