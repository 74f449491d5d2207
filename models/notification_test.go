package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNotificationTimestampFieldMatchesOtherModels(t *testing.T) {
	n := Notification{
		NotificationID: "n1",
		UserID:         "u1",
		CreateAt:       time.Now(),
	}
	raw, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	// User and BookingRequest expose create_at; notifications must match.
	if !strings.Contains(string(raw), `"create_at"`) {
		t.Fatalf("notification timestamp not serialized as create_at: %s", raw)
	}
	if strings.Contains(string(raw), `"created_at"`) {
		t.Fatalf("notification still serializes created_at: %s", raw)
	}
}
