package assets

import (
	"fmt"
	"strings"
)

// maxNameLength bounds theme names; longer names are almost certainly paths.
const maxNameLength = 64

// ValidateAssetName checks that a theme name is safe for use as a filename.
// Names may not be empty, contain path separators or dots, or exceed
// maxNameLength bytes.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name longer than %d bytes", ErrInvalidAssetName, maxNameLength)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
