package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// chartNameRegex matches chart names usable as file names and URL segments.
var chartNameRegex = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)

// ValidateChartName validates a chart name. Chart names end up in output file
// names and in server URLs, so they are restricted to letters, digits, dot,
// dash and underscore, must start and end with a letter or digit, and may
// not exceed 128 characters.
func ValidateChartName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidChartName, "chart name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidChartName, "chart name too long (max 128 characters)")
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidChartName, "chart name cannot contain %q", "..")
	}

	if !chartNameRegex.MatchString(name) {
		return New(ErrCodeInvalidChartName, "invalid chart name: %q", name)
	}

	return nil
}

// ValidatePath validates a relative output path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
