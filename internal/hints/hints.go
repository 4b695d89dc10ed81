// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strconv"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-notemark/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path (contains .config/go-notemark) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-notemark") {
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

// ForThemeNotFound returns hints for unknown theme errors.
func ForThemeNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForFormat returns hints for unknown output format errors.
func ForFormat(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("use one of: " + strings.Join(available, ", "))
}

// ForWorkers returns a hint for invalid worker counts.
func ForWorkers(maxWorkers int) string {
	return format("use 0 for auto or a value between 1 and " + strconv.Itoa(maxWorkers))
}

// ForNoInput returns hints when no note path was given.
func ForNoInput() string {
	return formatHints([]string{
		"pass a note file or directory",
		"or set input.defaultDir in config",
	})
}

// ForWatch returns a hint for --watch misuse.
func ForWatch() string {
	return format("--watch takes exactly one note file")
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
