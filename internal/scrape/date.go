package scrape

import (
	"strings"
	"time"
)

// dateFormats are tried in order after RFC 3339 parsing fails.
var dateFormats = []string{
	"January 2, 2006",
	"2 Jan 2006",
	"2006-01-02",
	"2006-01-02T15:04:05",
}

// ParseDate converts assorted listing-page date representations into a
// UTC time. Returns the zero time when nothing parses.
//
// Handles values like "Published: March 3, 2026" by stripping a leading
// label when the value does not itself start with a year, and normalizes
// a trailing "Z" to an explicit offset before ISO parsing.
func ParseDate(value string) time.Time {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return time.Time{}
	}

	if strings.Contains(cleaned, ":") && !strings.HasPrefix(cleaned, "20") {
		parts := strings.SplitN(cleaned, ":", 2)
		if len(parts) > 1 {
			cleaned = strings.TrimSpace(parts[1])
		} else {
			cleaned = strings.TrimSpace(parts[0])
		}
	}

	iso := strings.Replace(cleaned, "Z", "+00:00", 1)
	if t, err := time.Parse("2006-01-02T15:04:05-07:00", iso); err == nil {
		return t.UTC()
	}

	for _, format := range dateFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
