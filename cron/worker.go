// Package cron runs the background reminder worker that delivers the
// pre-consultation reminder queued at booking time.
package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lillia/config"
	appointmentRepo "lillia/database/repository/appointment"
	profileRepo "lillia/database/repository/profile"
	"lillia/models"
	"lillia/services/tasks"
	"lillia/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(profiles profileRepo.ProfileRepository, appointments appointmentRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeReminderSend, handleReminderTask(profiles, appointments))

	go func() {
		logger := utils.GetLogger()
		logger.Info("Starting reminder worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("Reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))

				if attempts == maxAttempts {
					logger.Fatal("Reminder worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleReminderTask resolves the appointment and profile at fire time and
// hands the reminder off to the mail provider. A missing appointment or
// profile drops the reminder without retry; the booking may have been
// re-onboarded away since it was queued.
func handleReminderTask(profiles profileRepo.ProfileRepository, appointments appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			return err
		}

		appointment, err := appointments.GetByID(p.AppointmentID)
		if err != nil {
			logger.Warn("Reminder dropped: appointment not found",
				zap.String("appointmentId", p.AppointmentID), zap.Error(err))
			return nil
		}
		profile, err := profiles.GetByID(p.ProfileID)
		if err != nil {
			logger.Warn("Reminder dropped: profile not found",
				zap.String("profileId", p.ProfileID), zap.Error(err))
			return nil
		}

		message := fmt.Sprintf("Reminder: your %s with %s is at %s.",
			appointment.ConsultationType,
			appointment.Nutritionist.Name,
			appointment.DateTime.Format(time.RFC1123))
		if err := utils.SendReminderEmail(profile.Details.Email, message); err != nil {
			logger.Error("Failed to send reminder email",
				zap.String("appointmentId", appointment.ID), zap.Error(err))
			return err
		}

		logger.Info("Reminder sent",
			zap.String("appointmentId", appointment.ID),
			zap.String("profileId", profile.ID))
		return nil
	}
}
