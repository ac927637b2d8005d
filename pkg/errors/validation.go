package errors

import "unicode"

// ValidateSeriesKey validates a series key for safety and correctness.
// Keys end up embedded in SVG markup, JSON exports and file names derived
// from them, so the rules are intentionally conservative:
//   - No empty keys
//   - No control characters (including newlines and null bytes)
//   - Maximum length of 256 characters
func ValidateSeriesKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidSeries, "series key cannot be empty")
	}

	if len(key) > 256 {
		return New(ErrCodeInvalidSeries, "series key too long (max 256 characters)")
	}

	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSeries, "series key contains control characters")
		}
	}

	return nil
}
