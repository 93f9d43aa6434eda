package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"lillia/models"
)

type memAppointments struct {
	created []*models.Appointment
}

func (r *memAppointments) Create(appointment *models.Appointment) error {
	r.created = append(r.created, appointment)
	return nil
}

func (r *memAppointments) GetByID(id string) (*models.Appointment, error) {
	for _, a := range r.created {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, errors.New("appointment not found")
}

type recordingScheduler struct {
	scheduled []*models.Appointment
	err       error
}

func (s *recordingScheduler) ScheduleAppointmentReminder(appointment *models.Appointment) error {
	if s.err != nil {
		return s.err
	}
	s.scheduled = append(s.scheduled, appointment)
	return nil
}

func TestDefaultBackend_BookPersistsAndSchedulesReminder(t *testing.T) {
	repo := &memAppointments{}
	scheduler := &recordingScheduler{}
	backend := NewDefaultBackend(repo, scheduler)

	appointment := &models.Appointment{
		ID:        "APT_1",
		ProfileID: "USER_1",
		DateTime:  time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
	if err := backend.Book(context.Background(), appointment); err != nil {
		t.Fatalf("Book: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("persisted %d appointments, want 1", len(repo.created))
	}
	if len(scheduler.scheduled) != 1 || scheduler.scheduled[0].ID != "APT_1" {
		t.Errorf("scheduled = %+v, want the booked appointment", scheduler.scheduled)
	}
}

func TestDefaultBackend_BookSurvivesSchedulerFailure(t *testing.T) {
	repo := &memAppointments{}
	scheduler := &recordingScheduler{err: errors.New("queue down")}
	backend := NewDefaultBackend(repo, scheduler)

	appointment := &models.Appointment{ID: "APT_2", DateTime: time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)}
	if err := backend.Book(context.Background(), appointment); err != nil {
		t.Fatalf("Book failed on a reminder queue error: %v", err)
	}
	if len(repo.created) != 1 {
		t.Errorf("persisted %d appointments, want 1", len(repo.created))
	}
}
