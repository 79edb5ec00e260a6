package errors

import (
	"strings"
	"unicode"
)

// ValidateFilePath validates a local file path supplied on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidateFilePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
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

// ValidateFieldName validates a record field name so that it can be
// referenced from a template placeholder.
//
// The rules mirror the placeholder syntax:
//   - No empty names
//   - No braces
//   - No control characters
//   - Maximum length of 256 characters
func ValidateFieldName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "field name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "field name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "field name %q contains control characters", name)
		}
	}

	if strings.ContainsAny(name, "{}") {
		return New(ErrCodeInvalidInput, "field name %q cannot contain braces", name)
	}

	return nil
}
