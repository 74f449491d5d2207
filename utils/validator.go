// utils/validator.go - Input validation
package utils

import (
	"strings"
	"time"
)

// ParseClock parses an "HH:MM" wall-clock value.
func ParseClock(s string) (time.Time, error) {
	return time.Parse("15:04", strings.TrimSpace(s))
}

// ValidateEventWindow checks a booking's date and time window: dates ordered,
// times parseable, end strictly after start.
func ValidateEventWindow(startDate, endDate time.Time, startTime, endTime string) (bool, string) {
	if endDate.Before(startDate) {
		return false, "End date must not be before start date"
	}

	start, err := ParseClock(startTime)
	if err != nil {
		return false, "Start time must use the HH:MM format"
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return false, "End time must use the HH:MM format"
	}

	if !end.After(start) {
		return false, "End time must be after start time"
	}

	return true, ""
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")
	return input
}
