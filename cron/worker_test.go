package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"lillia/models"
	"lillia/services/tasks"

	"github.com/hibiken/asynq"
)

type memProfiles struct {
	profiles map[string]*models.Profile
}

func (r *memProfiles) Create(p *models.Profile) error {
	r.profiles[p.ID] = p
	return nil
}

func (r *memProfiles) GetByID(id string) (*models.Profile, error) {
	if p, ok := r.profiles[id]; ok {
		return p, nil
	}
	return nil, errors.New("profile not found")
}

func (r *memProfiles) GetByEmail(email string) (*models.Profile, error) {
	for _, p := range r.profiles {
		if p.Details.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProfiles) Delete(id string) error {
	delete(r.profiles, id)
	return nil
}

type memAppointments struct {
	appointments map[string]*models.Appointment
}

func (r *memAppointments) Create(a *models.Appointment) error {
	r.appointments[a.ID] = a
	return nil
}

func (r *memAppointments) GetByID(id string) (*models.Appointment, error) {
	if a, ok := r.appointments[id]; ok {
		return a, nil
	}
	return nil, errors.New("appointment not found")
}

func reminderTask(t *testing.T, appointmentID, profileID string) *asynq.Task {
	t.Helper()
	fireAt := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	task, _, err := tasks.NewReminderTask(models.ReminderPayload{
		AppointmentID: appointmentID,
		ProfileID:     profileID,
		FireDate:      fireAt.Format(time.RFC3339),
	}, fireAt)
	if err != nil {
		t.Fatalf("NewReminderTask: %v", err)
	}
	return task
}

func TestHandleReminderTask_DeliversReminder(t *testing.T) {
	profiles := &memProfiles{profiles: map[string]*models.Profile{
		"USER_1": {ID: "USER_1", Details: models.UserDetails{Email: "asha@example.com"}},
	}}
	appointments := &memAppointments{appointments: map[string]*models.Appointment{
		"APT_1": {
			ID:               "APT_1",
			ProfileID:        "USER_1",
			DateTime:         time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			Nutritionist:     models.Nutritionist{ID: "NUT_001", Name: "Dr. Sarah Johnson"},
			ConsultationType: models.ConsultationType,
		},
	}}

	handler := handleReminderTask(profiles, appointments)
	if err := handler(context.Background(), reminderTask(t, "APT_1", "USER_1")); err != nil {
		t.Fatalf("handler: %v", err)
	}
}

func TestHandleReminderTask_DropsVanishedAppointment(t *testing.T) {
	profiles := &memProfiles{profiles: map[string]*models.Profile{}}
	appointments := &memAppointments{appointments: map[string]*models.Appointment{}}

	handler := handleReminderTask(profiles, appointments)
	// A reset or re-onboarding can remove the records before the reminder
	// fires; the task must not be retried.
	if err := handler(context.Background(), reminderTask(t, "APT_gone", "USER_gone")); err != nil {
		t.Errorf("vanished appointment should drop silently, got %v", err)
	}
}
