package errors

import (
	"strings"
	"unicode"
)

// MaxClassLength bounds class strings accepted from untrusted input.
const MaxClassLength = 2048

// ValidateClassString checks a class string received from outside the
// process (query parameters, TUI input). The widget itself accepts anything;
// this only keeps the preview server from echoing oversized or binary input.
//
// Validation rules:
//   - Maximum length of MaxClassLength bytes
//   - No control characters other than whitespace
//   - No markup delimiters (<, >, ", ')
func ValidateClassString(s string) error {
	if len(s) > MaxClassLength {
		return New(ErrCodeInvalidInput, "class string too long (max %d characters)", MaxClassLength)
	}

	for _, r := range s {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "class string contains invalid control characters")
		}
	}

	if i := strings.IndexAny(s, `<>"'`); i >= 0 {
		return New(ErrCodeInvalidInput, "class string contains invalid character: %q", s[i])
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
