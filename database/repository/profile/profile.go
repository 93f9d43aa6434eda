package profileRepo

import "lillia/models"

// ProfileRepository persists user profiles created during onboarding.
// GetByEmail returns (nil, nil) when no profile carries the email.
type ProfileRepository interface {
	Create(profile *models.Profile) error
	GetByID(id string) (*models.Profile, error)
	GetByEmail(email string) (*models.Profile, error)
	Delete(id string) error
}
