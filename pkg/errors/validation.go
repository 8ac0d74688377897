package errors

import (
	"slices"
	"strings"
	"unicode"
)

// ValidateFormats checks every entry of formats against the allowed set.
// An empty list is rejected; the caller decides the default.
func ValidateFormats(formats, allowed []string) error {
	if len(formats) == 0 {
		return New(ErrCodeInvalidFormat, "no output format given")
	}
	for _, f := range formats {
		if !slices.Contains(allowed, f) {
			return New(ErrCodeInvalidFormat, "unsupported format %q (want one of: %s)", f, strings.Join(allowed, ", "))
		}
	}
	return nil
}

// ValidateOutputPath validates a user-supplied output path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
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
	return nil
}

// ValidateDimensions checks canvas dimensions used by the bar renderers.
func ValidateDimensions(width, height, gap int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidConfig, "canvas must be positive, got %dx%d", width, height)
	}
	if gap < 0 {
		return New(ErrCodeInvalidConfig, "gap cannot be negative, got %d", gap)
	}
	return nil
}
