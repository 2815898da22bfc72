package model

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const DefaultExpiry = "24h"

var expiryPattern = regexp.MustCompile(`^(\d+)(h|d|w)$`)

// ValidateExpiry reports whether the given duration specifier is accepted by
// the sharing service. Whatever the unit, the ceiling is 7 days.
func ValidateExpiry(expiry string) bool {
	matches := expiryPattern.FindStringSubmatch(expiry)
	if matches == nil {
		return false
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return false
	}

	switch matches[2] {
	case "h":
		return amount >= 1 && amount <= 168
	case "d":
		return amount >= 1 && amount <= 7
	case "w":
		return amount == 1
	default:
		return false
	}
}

// FormatExpiry renders the time remaining until expiresAt, truncated to the
// coarsest non-zero unit. The result is meant for display only.
func FormatExpiry(expiresAt string, now time.Time) string {
	if expiresAt == "" {
		return "Unknown"
	}

	expiry, ok := parseTimestamp(expiresAt, now.Location())
	if !ok {
		return "Unknown"
	}

	remaining := expiry.Sub(now)
	if remaining <= 0 {
		return "Expired"
	}

	minutes := int64(remaining / time.Minute)
	hours := minutes / 60
	days := hours / 24

	switch {
	case days > 0:
		return pluralize(days, "day")
	case hours > 0:
		return pluralize(hours, "hour")
	default:
		return pluralize(minutes, "minute")
	}
}

// Date-times without a zone are read in the local time of the caller, bare
// dates in UTC.
var localTimestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
}

const dateLayout = "2006-01-02"

func parseTimestamp(raw string, loc *time.Location) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, true
	}

	for _, layout := range localTimestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}

	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t, true
	}

	return time.Time{}, false
}

func pluralize(count int64, unit string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, unit)
	}

	return fmt.Sprintf("%d %ss", count, unit)
}
