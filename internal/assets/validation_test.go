package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "ocean"},
		{name: "dash and underscore", input: "dark_ocean-2"},
		{name: "empty", input: "", wantErr: true},
		{name: "extension", input: "ocean.yaml", wantErr: true},
		{name: "traversal", input: "..", wantErr: true},
		{name: "forward slash", input: "a/b", wantErr: true},
		{name: "backslash", input: `a\b`, wantErr: true},
		{name: "too long", input: strings.Repeat("x", maxNameLength+1), wantErr: true},
		{name: "at limit", input: strings.Repeat("x", maxNameLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAssetName) {
					t.Errorf("ValidateAssetName(%q) error = %v, want ErrInvalidAssetName", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateAssetName(%q) unexpected error: %v", tt.input, err)
			}
		})
	}
}
