package errors

import (
	"strings"
	"unicode"
)

// maxIDLength bounds flow, item and target identifiers.
const maxIDLength = 128

// ValidateID validates a flow, item or target identifier.
//
// Identifiers end up in log lines, DOT output and URL paths of the preview
// server, so the rules are conservative:
//   - No empty ids
//   - No control characters or whitespace
//   - No slashes or quotes
//   - Maximum length of 128 characters
func ValidateID(kind, id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "%s id cannot be empty", kind)
	}

	if len(id) > maxIDLength {
		return New(ErrCodeInvalidInput, "%s id too long (max %d characters)", kind, maxIDLength)
	}

	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "%s id %q contains whitespace or control characters", kind, id)
		}
	}

	if strings.ContainsAny(id, `/\"'`) {
		return New(ErrCodeInvalidInput, "%s id %q contains invalid characters", kind, id)
	}

	return nil
}
