package assets

// DefaultThemeName is the name of the built-in palette.
const DefaultThemeName = "default"

// AssetLoader defines the contract for loading themes.
// Implementations may load from embedded assets, filesystem, S3, database, etc.
type AssetLoader interface {
	// LoadTheme loads a YAML theme by name (without .yaml extension).
	// Returns ErrThemeNotFound if the theme doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTheme(name string) ([]byte, error)
}
