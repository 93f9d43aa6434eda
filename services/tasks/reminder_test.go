package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"lillia/models"
)

func TestNewReminderTask_TypeAndPayload(t *testing.T) {
	fireAt := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	payload := models.ReminderPayload{
		AppointmentID: "APT_abc",
		ProfileID:     "USER_abc",
		FireDate:      fireAt.Format(time.RFC3339),
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		t.Fatalf("NewReminderTask: %v", err)
	}
	if task.Type() != TypeReminderSend {
		t.Errorf("task type = %q, want %q", task.Type(), TypeReminderSend)
	}
	if len(opts) != 1 {
		t.Errorf("got %d delivery options, want 1", len(opts))
	}

	var decoded models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &decoded); err != nil {
		t.Fatalf("payload did not decode: %v", err)
	}
	if decoded != payload {
		t.Errorf("payload round-trip = %+v, want %+v", decoded, payload)
	}
}

func TestReminderFireTime_LeadsAppointment(t *testing.T) {
	at := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	want := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	if got := ReminderFireTime(at); !got.Equal(want) {
		t.Errorf("fire time = %v, want %v", got, want)
	}
}
