package scheduling

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	appointmentRepo "lillia/database/repository/appointment"
	"lillia/models"
	"lillia/services/tasks"
	"lillia/utils"

	"go.uber.org/zap"
)

// DefaultBackend is the production booking backend. Availability is a
// prototype placeholder: it thins the candidate set pseudo-randomly until a
// real calendar integration replaces it. Bookings are persisted in Mongo and
// queue a pre-consultation reminder.
type DefaultBackend struct {
	Appointments appointmentRepo.AppointmentRepository
	Reminders    tasks.Scheduler
}

// NewDefaultBackend returns a backend persisting bookings through repo and
// queueing reminders through scheduler.
func NewDefaultBackend(repo appointmentRepo.AppointmentRepository, scheduler tasks.Scheduler) *DefaultBackend {
	return &DefaultBackend{Appointments: repo, Reminders: scheduler}
}

func (b *DefaultBackend) Availability(ctx context.Context, from time.Time, days int) ([]models.SlotDay, error) {
	window := CandidateSlots(from, days)
	for i, day := range window {
		kept := day.Slots[:0]
		for _, slot := range day.Slots {
			if rand.Float64() > 0.3 {
				kept = append(kept, slot)
			}
		}
		window[i].Slots = kept
	}
	return window, nil
}

func (b *DefaultBackend) Book(ctx context.Context, appointment *models.Appointment) error {
	if b.Appointments == nil {
		return fmt.Errorf("appointment repository not configured")
	}
	if err := b.Appointments.Create(appointment); err != nil {
		return fmt.Errorf("failed to book slot: %w", err)
	}
	if b.Reminders != nil {
		// The booking stands even if the reminder cannot be queued.
		if err := b.Reminders.ScheduleAppointmentReminder(appointment); err != nil {
			utils.GetLogger().Warn("Failed to schedule appointment reminder",
				zap.String("appointmentId", appointment.ID), zap.Error(err))
		}
	}
	return nil
}

// SendConfirmationEmail hands the booked appointment off to the mail
// provider. Replace the body with your actual email integration.
func (b *DefaultBackend) SendConfirmationEmail(ctx context.Context, appointmentID string) error {
	utils.GetLogger().Info("Sending confirmation email", zap.String("appointmentId", appointmentID))
	return nil
}

// DefaultAssigner returns the configured default nutritionist. A real
// roster service replaces this during integration.
type DefaultAssigner struct {
	Nutritionist models.Nutritionist
}

func (a *DefaultAssigner) Assigned(ctx context.Context) (models.Nutritionist, error) {
	if a.Nutritionist.ID == "" {
		return models.Nutritionist{}, fmt.Errorf("no nutritionist configured")
	}
	return a.Nutritionist, nil
}
