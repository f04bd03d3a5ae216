// Package yamlutil wraps YAML parsing to isolate the external dependency.
// Config files and style themes both decode through here.
package yamlutil

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

func Marshal(v any) ([]byte, error) {
	result, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("yamlutil: %w", err)
	}
	return result, nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalFile reads path and decodes it strictly into v.
// The size limit is checked against the file size before reading.
func UnmarshalFile(path string, v any) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	if info.Size() > int64(MaxInputSize) {
		return fmt.Errorf("%w: %s is %d bytes (max %d)", ErrInputTooLarge, path, info.Size(), MaxInputSize)
	}
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided
	if err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return UnmarshalStrict(data, v)
}
