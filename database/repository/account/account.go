package accountRepo

import "lawroute/models"

// AccountRepository defines methods for account data access.
type AccountRepository interface {
	// Create inserts a new account record.
	Create(acc *models.Account) error
	// GetByID retrieves an account by its unique ID. Returns (nil, nil)
	// when no account exists.
	GetByID(id string) (*models.Account, error)
	// GetByEmail retrieves an account by its email address. Returns
	// (nil, nil) when no account exists.
	GetByEmail(email string) (*models.Account, error)
	// UpdateTokenHash stores the hash of the account's current session
	// token. An empty hash revokes the session.
	UpdateTokenHash(id, tokenHash string) error
}
