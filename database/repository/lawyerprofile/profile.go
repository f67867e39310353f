package profileRepo

import "lawroute/models"

// ProfileRepository defines methods for lawyer profile data access.
type ProfileRepository interface {
	// Create inserts a new lawyer profile.
	Create(profile *models.LawyerProfile) error
	// GetByAccount retrieves the profile owned by the given account.
	// Returns (nil, nil) when none exists.
	GetByAccount(accountID string) (*models.LawyerProfile, error)
	// Save persists the full profile document after a merge-patch.
	// Profile merges are per-account and last-write-wins.
	Save(profile *models.LawyerProfile) error
	// GetAll retrieves all lawyer profiles, newest first.
	GetAll() ([]models.LawyerProfile, error)
}
