package directory

import (
	authorityRepo "lawroute/database/repository/authority"
	"lawroute/models"
	"lawroute/utils"

	"github.com/google/uuid"
)

// Directory resolves which authority account is responsible for an issue
// category. Routing is a pure lookup: the same category always yields the
// same authority as long as the backing profile is unchanged.
type Directory interface {
	// Route returns the account ID of the authority managing the category.
	Route(category string) (string, error)
	// Register creates the authority profile for an account, enforcing
	// that at most one authority manages each category.
	Register(accountID, category string) (*models.AuthorityProfile, error)
}

// AuthorityDirectory is the production implementation.
type AuthorityDirectory struct {
	Repo authorityRepo.AuthorityRepository
}

func (d *AuthorityDirectory) Route(category string) (string, error) {
	profile, err := d.Repo.GetByCategory(category)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", utils.NotFound("No responsible authority found for this category.")
	}
	return profile.AccountID, nil
}

func (d *AuthorityDirectory) Register(accountID, category string) (*models.AuthorityProfile, error) {
	if !models.ValidCategory(category) {
		return nil, utils.Validationf("managedCategory must be one of the known categories")
	}

	existing, err := d.Repo.GetByCategory(category)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.Conflict("An authority already manages this category.")
	}

	profile := &models.AuthorityProfile{
		ID:              uuid.NewString(),
		AccountID:       accountID,
		ManagedCategory: category,
	}
	// The unique index on managedCategory backs this check against races.
	if err := d.Repo.Create(profile); err != nil {
		return nil, err
	}
	return profile, nil
}
