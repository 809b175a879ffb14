package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DateLayout is the calendar date format used by the FRED API and by the CLI flags.
const DateLayout = "2006-01-02"

// ParseDate parses a date string (or a unix timestamp) into a time.Time object in UTC.
// Empty strings, nil and zero timestamps produce zero time without an error.
func ParseDate(dateString Datable) (time.Time, error) {
	var timestamp int64
	switch dateString := dateString.(type) {
	case nil:
		return time.Time{}, nil
	case string:
		if dateString == "" {
			return time.Time{}, nil
		}
		// List of potential layouts to try
		layouts := []string{
			time.RFC1123,
			time.RFC1123Z,
			time.RFC3339,
			"2006-01-02T15:04:05",
			DateLayout,
		}

		for _, layout := range layouts {
			parsedTime, err := time.Parse(layout, dateString)
			if err == nil {
				return parsedTime.UTC(), nil
			}
		}

		return time.Time{}, fmt.Errorf("error parsing date: %s", dateString)
	case int:
		timestamp = int64(dateString)
	case int32:
		timestamp = int64(dateString)
	case int64:
		timestamp = dateString

	default:
		return time.Time{}, fmt.Errorf("unknown type: %T of value %v", dateString, dateString)
	}

	if timestamp == 0 {
		return time.Time{}, nil
	}

	// If Unix milliseconds - convert to seconds
	if timestamp > 9999999999 {
		return time.Unix(timestamp/1000, 0).UTC(), nil
	}
	return time.Unix(timestamp, 0).UTC(), nil
}

// Datable is a type that can be parsed into a date (hopefully).
type Datable interface{}

// FormatDate formats t with DateLayout, zero time becomes an empty string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

var unicodeEscape = regexp.MustCompile(`\\u([0-9A-Fa-f]{4})`)

// ReplaceUnicodeSymbols replaces Unicode escape sequences with their corresponding characters.
func ReplaceUnicodeSymbols(s string) string {
	// Replace Unicode escape sequences (e.g., \u0026 with &)
	return unicodeEscape.ReplaceAllStringFunc(s, func(match string) string {
		unicodeCode := match[2:] // Ignore "\u" at the beginning
		num, err := strconv.ParseInt(unicodeCode, 16, 32)
		if err != nil {
			return match // If conversion fails, return the original sequence
		}
		return string(rune(num))
	})
}
