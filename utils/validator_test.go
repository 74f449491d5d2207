package utils

import (
	"testing"
	"time"
)

func TestValidateEventWindow(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	nextDay := day.AddDate(0, 0, 1)

	cases := []struct {
		name      string
		startDate time.Time
		endDate   time.Time
		startTime string
		endTime   string
		ok        bool
	}{
		{"single day", day, day, "10:00", "12:00", true},
		{"multi day", day, nextDay, "09:00", "17:00", true},
		{"end date before start", nextDay, day, "10:00", "12:00", false},
		{"end time before start", day, day, "12:00", "10:00", false},
		{"zero length window", day, day, "10:00", "10:00", false},
		{"bad start time", day, day, "10am", "12:00", false},
		{"bad end time", day, day, "10:00", "25:61", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, msg := ValidateEventWindow(tc.startDate, tc.endDate, tc.startTime, tc.endTime)
			if ok != tc.ok {
				t.Fatalf("ValidateEventWindow = %v (%q), want %v", ok, msg, tc.ok)
			}
			if !ok && msg == "" {
				t.Fatal("invalid window must carry a message")
			}
		})
	}
}

func TestParseClockAcceptsPadding(t *testing.T) {
	if _, err := ParseClock(" 09:30 "); err != nil {
		t.Fatalf("ParseClock rejected padded input: %v", err)
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  hello\x00world  "); got != "helloworld" {
		t.Fatalf("SanitizeInput = %q", got)
	}
}
