// Package tasks builds and enqueues the background jobs that run outside a
// request, currently the pre-consultation reminder.
package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"lillia/config"
	"lillia/models"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// ReminderLead is how long before the consultation the reminder fires.
const ReminderLead = time.Hour

// ReminderFireTime returns when the reminder for an appointment should fire.
func ReminderFireTime(appointmentAt time.Time) time.Time {
	return appointmentAt.Add(-ReminderLead)
}

// NewReminderTask builds the queued task and its delivery options.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReminderSend, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Scheduler enqueues a reminder for a booked consultation.
type Scheduler interface {
	ScheduleAppointmentReminder(appointment *models.Appointment) error
}

// AsynqScheduler enqueues reminders on the Redis-backed asynq queue.
type AsynqScheduler struct {
	Client *asynq.Client
}

// NewAsynqScheduler returns a scheduler over the configured reminder queue.
func NewAsynqScheduler() *AsynqScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqScheduler{Client: client}
}

func (s *AsynqScheduler) ScheduleAppointmentReminder(appointment *models.Appointment) error {
	fireAt := ReminderFireTime(appointment.DateTime)
	payload := models.ReminderPayload{
		AppointmentID: appointment.ID,
		ProfileID:     appointment.ProfileID,
		FireDate:      fireAt.Format(time.RFC3339),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}
