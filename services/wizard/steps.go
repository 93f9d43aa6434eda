package wizard

import "lillia/models"

// EarliestIncompleteStep walks the flow and returns the first step whose
// required data is missing. A session deep-linked past it gets redirected
// here.
func EarliestIncompleteStep(s *models.WizardSession) models.Step {
	switch {
	case s.Program == nil:
		return models.StepProgramSelection
	case s.Details == nil:
		return models.StepDetails
	case !s.Verification.OTPVerified:
		return models.StepVerification
	case s.Appointment == nil:
		return models.StepScheduling
	default:
		return models.StepConfirmation
	}
}

// ensureStep rejects an operation when the session has not earned the given
// step yet. The rejection carries the redirect target and leaves the
// session untouched.
func ensureStep(s *models.WizardSession, step models.Step) error {
	earliest := EarliestIncompleteStep(s)
	if earliest.Before(step) {
		return &TransitionRejected{RedirectTo: earliest}
	}
	return nil
}
