package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed themes/*.yaml
var themes embed.FS

// EmbeddedLoader loads themes from the embedded filesystem.
// Implements AssetLoader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTheme loads a theme from embedded assets by name.
// The name should not include the .yaml extension.
func (e *EmbeddedLoader) LoadTheme(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	content, err := themes.ReadFile("themes/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}

	return content, nil
}

// ThemeNames lists the built-in themes in sorted order.
func ThemeNames() []string {
	entries, err := fs.ReadDir(themes, "themes")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
