package wizard

import (
	"context"
	"regexp"
	"strings"
	"time"

	"lillia/models"
	"lillia/services/scheduling"
	"lillia/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var otpShape = regexp.MustCompile(`^[0-9]{6}$`)

func (s *DefaultWizardService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultWizardService) cooldown() time.Duration {
	return time.Duration(s.Timers.ticks) * time.Second
}

// startCooldown arms the session's resend countdown. Live deployments tick
// it in real time; tests drive Tick directly.
func (s *DefaultWizardService) startCooldown(sessionID string) {
	t := s.Timers.Get(sessionID)
	if s.RunTimers {
		t.Run(context.Background())
	} else {
		t.Start()
	}
}

// freshOrStale re-reads the session after an async round trip. A bumped
// generation means the session was reset while the call was in flight, so
// the arriving result must be discarded.
func (s *DefaultWizardService) freshOrStale(ctx context.Context, sessionID string, gen uint64) (*models.WizardSession, error) {
	fresh, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		if err == ErrSessionNotFound {
			return nil, ErrStaleResult
		}
		return nil, err
	}
	if fresh.Generation != gen {
		return nil, ErrStaleResult
	}
	return fresh, nil
}

// StartSession creates a session for the chosen program and enters the
// details step. The program is set once here; changing it later requires an
// explicit Reset.
func (s *DefaultWizardService) StartSession(ctx context.Context, programID string) (*models.WizardSession, error) {
	program, ok := models.ProgramByID(programID)
	if !ok {
		return nil, &ValidationError{Fields: map[string]string{"program": "Please select a program first."}}
	}

	session := &models.WizardSession{
		ID:        uuid.New().String(),
		Step:      models.StepDetails,
		Program:   &program,
		CreatedAt: s.now(),
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession returns the session and the step the renderer should show. A
// session deep-linked past its data is redirected to the earliest
// incomplete step without surfacing an error.
func (s *DefaultWizardService) GetSession(ctx context.Context, sessionID string) (*models.WizardSession, models.Step, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}
	show := session.Step
	if earliest := EarliestIncompleteStep(session); earliest.Before(show) {
		show = earliest
	}
	return session, show, nil
}

// SubmitDetails validates the details form, derives BMI, sends the
// verification code, and advances to the verification step. HbA1c is kept
// only on diabetes-track programs.
func (s *DefaultWizardService) SubmitDetails(ctx context.Context, sessionID string, in DetailsInput) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := ensureStep(session, models.StepDetails); err != nil {
		return nil, err
	}

	diabetesTrack := session.Program.IsDiabetesTrack()
	if problems := validateDetails(in, diabetesTrack); len(problems) > 0 {
		return nil, &ValidationError{Fields: problems}
	}
	details := buildDetails(in, diabetesTrack)

	gen := session.Generation
	_, err, _ = s.group.Do(sessionID+":details", func() (interface{}, error) {
		if err := s.Notifier.SendCode(ctx, details.Email); err != nil {
			return nil, &AsyncActionFailed{
				Action:  "send-code",
				Message: "Failed to send verification code. Please try again.",
				Err:     err,
			}
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	fresh, err := s.freshOrStale(ctx, sessionID, gen)
	if err != nil {
		return nil, err
	}
	fresh.Details = details
	fresh.Verification = models.Verification{
		Email:             details.Email,
		ResendAvailableAt: s.now().Add(s.cooldown()),
	}
	fresh.Step = models.StepVerification
	s.startCooldown(sessionID)
	if err := s.Store.Save(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// VerifyOTP checks the submitted code locally (exactly 6 digits), hands it
// to the verification backend, and on acceptance creates the profile, loads
// the assigned nutritionist and slot availability, and advances to
// scheduling. OTPVerified only ever moves false→true.
func (s *DefaultWizardService) VerifyOTP(ctx context.Context, sessionID, code string) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := ensureStep(session, models.StepVerification); err != nil {
		return nil, err
	}

	code = strings.TrimSpace(code)
	if !otpShape.MatchString(code) {
		return nil, &ValidationError{Fields: map[string]string{"otp": "Please enter all 6 digits"}}
	}

	type verified struct {
		profileID    string
		nutritionist models.Nutritionist
		window       []models.SlotDay
	}

	gen := session.Generation
	email := session.Verification.Email
	res, err, _ := s.group.Do(sessionID+":verify", func() (interface{}, error) {
		accepted, err := s.Notifier.VerifyCode(ctx, email, code)
		if err != nil {
			return nil, &AsyncActionFailed{Action: "verify-code", Message: "Failed to verify code. Please try again.", Err: err}
		}
		if !accepted {
			return nil, &AsyncActionFailed{Action: "verify-code", Message: "Invalid code. Please try again."}
		}

		profile := &models.Profile{
			ID:        "USER_" + uuid.New().String(),
			Details:   *session.Details,
			ProgramID: session.Program.ID,
		}
		var (
			nutritionist models.Nutritionist
			window       []models.SlotDay
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			// Re-onboarding with a registered email replaces the stale
			// record; the email carries a unique index.
			existing, err := s.Profiles.GetByEmail(profile.Details.Email)
			if err != nil {
				return err
			}
			if existing != nil {
				if err := s.Profiles.Delete(existing.ID); err != nil {
					return err
				}
			}
			return s.Profiles.Create(profile)
		})
		g.Go(func() error {
			n, err := s.Assigner.Assigned(gctx)
			nutritionist = n
			return err
		})
		g.Go(func() error {
			w, err := s.Booking.Availability(gctx, s.now(), scheduling.WindowDays)
			window = w
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, &AsyncActionFailed{Action: "create-profile", Message: "Failed to set up your profile. Please try again.", Err: err}
		}
		return verified{profileID: profile.ID, nutritionist: nutritionist, window: window}, nil
	})
	if err != nil {
		return nil, err
	}

	fresh, err := s.freshOrStale(ctx, sessionID, gen)
	if err != nil {
		return nil, err
	}
	v := res.(verified)
	fresh.Verification.OTPVerified = true
	fresh.ProfileID = v.profileID
	fresh.Nutritionist = &v.nutritionist
	fresh.OfferedSlots = v.window
	fresh.Step = models.StepScheduling
	s.Timers.Stop(sessionID)
	if err := s.Store.Save(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// ResendOTP re-sends the verification code once the cooldown has expired
// and restarts the countdown.
func (s *DefaultWizardService) ResendOTP(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := ensureStep(session, models.StepVerification); err != nil {
		return nil, err
	}
	if session.Verification.OTPVerified {
		return nil, &TransitionRejected{RedirectTo: EarliestIncompleteStep(session)}
	}

	timer := s.Timers.Get(sessionID)
	if !timer.ResendEnabled() || s.now().Before(session.Verification.ResendAvailableAt) {
		return nil, ErrResendNotAvailable
	}

	gen := session.Generation
	email := session.Verification.Email
	_, err, _ = s.group.Do(sessionID+":resend", func() (interface{}, error) {
		if err := s.Notifier.SendCode(ctx, email); err != nil {
			return nil, &AsyncActionFailed{Action: "send-code", Message: "Failed to resend code. Please try again.", Err: err}
		}
		return nil, nil
	})
	if err != nil {
		return nil, err
	}

	fresh, err := s.freshOrStale(ctx, sessionID, gen)
	if err != nil {
		return nil, err
	}
	fresh.Verification.ResendAvailableAt = s.now().Add(s.cooldown())
	s.startCooldown(sessionID)
	if err := s.Store.Save(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// Slots returns the offered slots, querying the booking backend when the
// session has none yet or a refresh is requested. Regeneration may yield a
// different available subset; a previously selected slot that disappears is
// cleared.
func (s *DefaultWizardService) Slots(ctx context.Context, sessionID string, refresh bool) ([]models.SlotDay, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := ensureStep(session, models.StepScheduling); err != nil {
		return nil, err
	}
	if !refresh && len(session.OfferedSlots) > 0 {
		return session.OfferedSlots, nil
	}

	gen := session.Generation
	res, err, _ := s.group.Do(sessionID+":slots", func() (interface{}, error) {
		window, err := s.Booking.Availability(ctx, s.now(), scheduling.WindowDays)
		if err != nil {
			return nil, &AsyncActionFailed{Action: "load-slots", Message: "Failed to load available time slots. Please refresh the page.", Err: err}
		}
		return window, nil
	})
	if err != nil {
		return nil, err
	}

	fresh, err := s.freshOrStale(ctx, sessionID, gen)
	if err != nil {
		return nil, err
	}
	window := res.([]models.SlotDay)
	fresh.OfferedSlots = window
	if fresh.SelectedSlot != nil {
		if _, ok := scheduling.FindOffered(window, fresh.SelectedSlot.Key()); !ok {
			fresh.SelectedSlot = nil
		}
	}
	if err := s.Store.Save(ctx, fresh); err != nil {
		return nil, err
	}
	return window, nil
}

// SelectSlot records the chosen slot, superseding any previous selection.
// At most one slot is selected at any time.
func (s *DefaultWizardService) SelectSlot(ctx context.Context, sessionID, slotKey string) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := ensureStep(session, models.StepScheduling); err != nil {
		return nil, err
	}

	slot, ok := scheduling.FindOffered(session.OfferedSlots, slotKey)
	if !ok {
		return nil, &ValidationError{Fields: map[string]string{"slot": "Please select one of the offered time slots."}}
	}
	session.SelectedSlot = &slot
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmBooking freezes the selected slot into an immutable appointment,
// books it through the backend, generates the deep link, and advances to
// confirmation. Confirming with no selected slot fails with NoSlotSelected.
func (s *DefaultWizardService) ConfirmBooking(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := ensureStep(session, models.StepScheduling); err != nil {
		return nil, err
	}
	if session.Appointment != nil {
		// Already confirmed; the appointment is immutable.
		return session, nil
	}
	if session.SelectedSlot == nil {
		return nil, &NoSlotSelected{}
	}

	gen := session.Generation
	slot := *session.SelectedSlot
	var nutritionist models.Nutritionist
	if session.Nutritionist != nil {
		nutritionist = *session.Nutritionist
	}
	res, err, _ := s.group.Do(sessionID+":confirm", func() (interface{}, error) {
		appointment := &models.Appointment{
			ID:               "APT_" + uuid.New().String(),
			ProfileID:        session.ProfileID,
			DateTime:         slot.DateTime,
			Nutritionist:     nutritionist,
			ConsultationType: models.ConsultationType,
		}
		if err := s.Booking.Book(ctx, appointment); err != nil {
			return nil, &AsyncActionFailed{Action: "book", Message: "Failed to confirm booking. Please try again.", Err: err}
		}
		if err := s.Booking.SendConfirmationEmail(ctx, appointment.ID); err != nil {
			// The booking stands; the email is best effort.
			utils.GetLogger().Warn("confirmation email failed", zap.String("appointmentId", appointment.ID), zap.Error(err))
		}
		return appointment, nil
	})
	if err != nil {
		return nil, err
	}

	fresh, err := s.freshOrStale(ctx, sessionID, gen)
	if err != nil {
		return nil, err
	}
	fresh.Appointment = res.(*models.Appointment)
	fresh.DeepLink = s.Links.Generate(fresh.ProfileID)
	fresh.Step = models.StepConfirmation
	if err := s.Store.Save(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// Reset is the hard "go back to program selection": always legal, discards
// all downstream state, and bumps the generation so in-flight async results
// are discarded on arrival.
func (s *DefaultWizardService) Reset(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	s.Timers.Stop(sessionID)

	session.Generation++
	session.Step = models.StepProgramSelection
	session.Program = nil
	session.Details = nil
	session.Verification = models.Verification{}
	session.ProfileID = ""
	session.Nutritionist = nil
	session.OfferedSlots = nil
	session.SelectedSlot = nil
	session.Appointment = nil
	session.DeepLink = ""
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Completion exposes the final summary once the flow has confirmed.
func (s *DefaultWizardService) Completion(ctx context.Context, sessionID string) (*models.CompletionRecord, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Appointment == nil {
		return nil, &TransitionRejected{RedirectTo: EarliestIncompleteStep(session)}
	}
	return &models.CompletionRecord{
		ProfileID:   session.ProfileID,
		Email:       session.Details.Email,
		FullName:    session.Details.FullName,
		BMI:         session.Details.BMI,
		HasHbA1c:    session.Details.HbA1c != nil,
		Appointment: session.Appointment,
		DeepLink:    session.DeepLink,
		Source:      s.Links.Source,
		CompletedAt: s.now(),
	}, nil
}

// ResendState reports the countdown label and whether resend is enabled.
func (s *DefaultWizardService) ResendState(sessionID string) (string, bool) {
	timer := s.Timers.Get(sessionID)
	return timer.RemainingLabel(), timer.ResendEnabled()
}
