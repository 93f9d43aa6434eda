package wizard

import (
	"context"
	"time"

	profileRepo "lillia/database/repository/profile"
	"lillia/models"
	"lillia/services/deeplink"
	"lillia/services/notification"
	"lillia/services/scheduling"

	"golang.org/x/sync/singleflight"
)

// Service drives the onboarding flow: it validates step payloads, enforces
// the step order, talks to the external collaborators, and persists the
// session on every transition.
type Service interface {
	StartSession(ctx context.Context, programID string) (*models.WizardSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.WizardSession, models.Step, error)
	SubmitDetails(ctx context.Context, sessionID string, in DetailsInput) (*models.WizardSession, error)
	VerifyOTP(ctx context.Context, sessionID, code string) (*models.WizardSession, error)
	ResendOTP(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Slots(ctx context.Context, sessionID string, refresh bool) ([]models.SlotDay, error)
	SelectSlot(ctx context.Context, sessionID, slotKey string) (*models.WizardSession, error)
	ConfirmBooking(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Reset(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Completion(ctx context.Context, sessionID string) (*models.CompletionRecord, error)
	ResendState(sessionID string) (label string, enabled bool)
}

// DefaultWizardService implements Service.
type DefaultWizardService struct {
	Store    SessionStore
	Notifier notification.Service
	Profiles profileRepo.ProfileRepository
	Assigner scheduling.Assigner
	Booking  scheduling.Backend
	Links    deeplink.Generator
	Timers   *TimerRegistry

	// Now is the clock; tests override it.
	Now func() time.Time

	// RunTimers drives countdowns in real time. Tests leave it false and
	// tick the registry's timers directly.
	RunTimers bool

	// group collapses duplicate in-flight submissions per session+action.
	group singleflight.Group
}
