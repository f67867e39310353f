package authorityRepo

import "lawroute/models"

// AuthorityRepository defines methods for authority profile data access.
// The managedCategory field carries a unique index so category routing
// stays deterministic.
type AuthorityRepository interface {
	// Create inserts a new authority profile.
	Create(profile *models.AuthorityProfile) error
	// GetByCategory retrieves the profile managing the given category.
	// Returns (nil, nil) when no profile manages it.
	GetByCategory(category string) (*models.AuthorityProfile, error)
	// GetByAccount retrieves the profile owned by the given account.
	// Returns (nil, nil) when none exists.
	GetByAccount(accountID string) (*models.AuthorityProfile, error)
}
