// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strconv"
	"strings"
)

// userConfigMarker identifies the per-user search location in a path list.
const userConfigMarker = "go-chat2pdf"

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large documents, use --timeout flag")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-chat2pdf/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, userConfigMarker) {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for unknown style names.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForThemeNotFound returns hints for unknown theme names.
func ForThemeNotFound(available []string) string {
	hints := []string{"pass a .yaml path to load a theme file"}
	if len(available) > 0 {
		hints = append([]string{"built-in themes: " + strings.Join(available, ", ")}, hints...)
	}
	return formatHints(hints)
}

// ForTheme returns hints for theme files that fail to load.
func ForTheme() string {
	return formatHints([]string{
		"colors are #rrggbb",
		"fontStyle is one of \"\", B, I, BI",
		"leading must be at least fontSize",
	})
}

// ForParse returns hints for input that cannot be parsed.
func ForParse() string {
	return format("input must be UTF-8 Markdown text")
}

// ForInputTooLarge returns hints for inputs over the size limit.
func ForInputTooLarge(limitBytes int) string {
	return format("split the conversation into files under " + humanBytes(limitBytes))
}

func humanBytes(n int) string {
	const mb = 1024 * 1024
	if n >= mb && n%mb == 0 {
		return strconv.Itoa(n/mb) + " MB"
	}
	return strconv.Itoa(n) + " bytes"
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
