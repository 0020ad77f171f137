package errors

import (
	"strings"
	"unicode"
)

// ValidateDocumentID validates a document identifier for safety.
// It rejects IDs that could be used for path traversal when stores
// derive file names from them.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 128 characters
func ValidateDocumentID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidDocument, "document id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidDocument, "document id too long (max 128 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidDocument, "document id contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidDocument, "document id contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateFormatID validates a format identifier from user input.
// Format IDs are simple lowercase slugs like "instagram-story".
func ValidateFormatID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidFormat, "format id cannot be empty")
	}

	if len(id) > 64 {
		return New(ErrCodeInvalidFormat, "format id too long (max 64 characters)")
	}

	for _, r := range id {
		if !unicode.IsLower(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return New(ErrCodeInvalidFormat, "format id contains invalid character %q", r)
		}
	}

	return nil
}

// ValidateCanvasSize validates canvas dimensions.
// Dimensions must be positive and within a sane upper bound so that
// a corrupt document cannot drive downstream math to infinities.
func ValidateCanvasSize(width, height float64) error {
	const maxDimension = 65536

	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidDocument, "canvas size must be positive (got %gx%g)", width, height)
	}
	if width > maxDimension || height > maxDimension {
		return New(ErrCodeInvalidDocument, "canvas size exceeds maximum of %d pixels", maxDimension)
	}
	return nil
}
