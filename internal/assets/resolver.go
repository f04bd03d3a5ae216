package assets

import (
	"errors"
)

// AssetResolver combines custom and embedded loaders. With a custom directory
// configured, a theme found there shadows the built-in theme of the same name.
type AssetResolver struct {
	custom   AssetLoader // nil if no custom path configured
	embedded AssetLoader
}

// NewAssetResolver creates an AssetResolver.
// If customBasePath is empty, only embedded themes are used.
// Returns an error if customBasePath is set but invalid.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadTheme loads a theme, trying the custom loader first if available.
// Only ErrThemeNotFound falls through to the embedded themes; validation and
// I/O errors from the custom directory are returned as is.
func (r *AssetResolver) LoadTheme(name string) ([]byte, error) {
	if r.custom == nil {
		return r.embedded.LoadTheme(name)
	}

	content, err := r.custom.LoadTheme(name)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, ErrThemeNotFound) {
		return nil, err
	}

	return r.embedded.LoadTheme(name)
}

// HasCustomLoader returns true if a custom theme directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
