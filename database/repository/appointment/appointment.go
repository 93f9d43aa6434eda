package appointmentRepo

import "lillia/models"

// AppointmentRepository persists finalized consultation bookings.
type AppointmentRepository interface {
	Create(appointment *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
}
