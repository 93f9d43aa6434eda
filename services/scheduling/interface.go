package scheduling

import (
	"context"
	"time"

	"lillia/models"
)

// Assigner is the nutritionist-assignment backend. Assignment logic is an
// external collaborator; the engine only consumes its result.
type Assigner interface {
	Assigned(ctx context.Context) (models.Nutritionist, error)
}

// Backend is the booking backend the engine calls but does not implement:
// it sources slot availability, reserves a confirmed slot, and sends the
// confirmation email.
type Backend interface {
	Availability(ctx context.Context, from time.Time, days int) ([]models.SlotDay, error)
	Book(ctx context.Context, appointment *models.Appointment) error
	SendConfirmationEmail(ctx context.Context, appointmentID string) error
}
