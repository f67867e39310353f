package auth

import (
	"context"

	accountRepo "lawroute/database/repository/account"
	profileRepo "lawroute/database/repository/lawyerprofile"
	"lawroute/models"
	"lawroute/services/directory"
)

// RegisterInput carries the fields accepted at registration. Expertise and
// IsFree only apply to lawyers; ManagedCategory only to authorities.
type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	Role            string `json:"role"`
	Expertise       string `json:"expertise,omitempty"`
	IsFree          bool   `json:"isFree,omitempty"`
	ManagedCategory string `json:"managedCategory,omitempty"`
}

// Session is the result of a successful registration or login.
type Session struct {
	Token   string          `json:"token"`
	Account *models.Account `json:"user"`
}

// AuthService manages account registration, login, and session revocation.
type AuthService interface {
	// Register creates an account with its role-specific profile and
	// returns a fresh session.
	Register(ctx context.Context, in RegisterInput) (*Session, error)
	// Login verifies credentials and returns a fresh session, replacing
	// any previous one for the account.
	Login(ctx context.Context, email, password string) (*Session, error)
	// Revoke invalidates the account's current session.
	Revoke(ctx context.Context, accountID string) error
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Accounts  accountRepo.AccountRepository
	Profiles  profileRepo.ProfileRepository
	Directory directory.Directory
}
