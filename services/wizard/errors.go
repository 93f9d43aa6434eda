package wizard

import (
	"errors"
	"fmt"

	"lillia/models"
)

// ErrSessionNotFound signals the session is absent or expired.
var ErrSessionNotFound = errors.New("wizard session not found or expired")

// ErrStaleResult signals an async result arrived after the session was
// reset; the result is discarded.
var ErrStaleResult = errors.New("session was reset while the action was in flight")

// ErrResendNotAvailable signals a resend attempt during the cooldown.
var ErrResendNotAvailable = errors.New("resend is not available yet")

// ValidationError carries field-level failures. It is recovered locally and
// never blocks other fields.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// TransitionRejected signals missing prerequisite step data. It is not a
// user-facing error; the caller redirects to the earliest incomplete step.
type TransitionRejected struct {
	RedirectTo models.Step
}

func (e *TransitionRejected) Error() string {
	return fmt.Sprintf("prerequisite data missing; redirect to %s", e.RedirectTo)
}

// AsyncActionFailed signals a collaborator call failed. The step does not
// advance and retry is user-initiated.
type AsyncActionFailed struct {
	Action  string
	Message string
	Err     error
}

func (e *AsyncActionFailed) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Action, e.Message)
}

func (e *AsyncActionFailed) Unwrap() error { return e.Err }

// NoSlotSelected signals a booking confirmation without a selected slot.
type NoSlotSelected struct{}

func (e *NoSlotSelected) Error() string { return "Please select a time slot first." }
