package models

import "time"

// Slot is a candidate appointment time offered to the user.
type Slot struct {
	DateTime      time.Time `json:"dateTime"`
	DurationLabel string    `json:"durationLabel"`
}

// Key returns the identity used to match a submitted selection against the
// offered candidates.
func (s Slot) Key() string {
	return s.DateTime.UTC().Format(time.RFC3339)
}

// SlotDay groups a day's candidate slots for the renderer.
type SlotDay struct {
	Date  string `json:"date"` // e.g. "2026-09-01"
	Slots []Slot `json:"slots"`
}

// Appointment is the frozen booking record, taken from the selected slot at
// confirmation time. Immutable once created.
type Appointment struct {
	ID               string       `bson:"id" json:"id"`
	ProfileID        string       `bson:"profileId" json:"profileId"`
	DateTime         time.Time    `bson:"dateTime" json:"dateTime"`
	Nutritionist     Nutritionist `bson:"nutritionist" json:"nutritionist"`
	ConsultationType string       `bson:"consultationType" json:"consultationType"`
	CreatedAt        time.Time    `bson:"createdAt" json:"createdAt"`
}

// ConsultationType is the fixed label attached to every onboarding booking.
const ConsultationType = "Free Consultation (15 minutes)"

// ReminderPayload is the queued reminder task body. The worker resolves the
// appointment and profile at fire time, so the payload carries identifiers
// only.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	ProfileID     string `json:"profileId"`
	FireDate      string `json:"fireDate"`
}
