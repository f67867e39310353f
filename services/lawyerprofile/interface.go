package lawyerprofile

import (
	accountRepo "lawroute/database/repository/account"
	profileRepo "lawroute/database/repository/lawyerprofile"
	"lawroute/models"
	"lawroute/services/access"
)

// ProfileService governs lawyer profile updates and the derived
// completeness flag.
type ProfileService interface {
	// Update merge-patches the actor's own profile from the payload and
	// recomputes completeness. The profile is created on first update.
	Update(actor access.Actor, payload map[string]any) (*models.LawyerProfile, error)
	// SetProfilePhoto stores the uploaded photo URL on the actor's
	// profile.
	SetProfilePhoto(actor access.Actor, photoURL string) (*models.LawyerProfile, error)
	// List returns all lawyer profiles with their owner accounts joined.
	List() ([]ProfileView, error)
}

// ProfileView is a profile with its owning account summary joined for
// read-side listings.
type ProfileView struct {
	models.LawyerProfile
	Owner *OwnerSummary `json:"user,omitempty"`
}

// OwnerSummary is the public slice of the owning account.
type OwnerSummary struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  models.Role `json:"role"`
}

// DefaultProfileService is the production implementation.
type DefaultProfileService struct {
	Repo     profileRepo.ProfileRepository
	Accounts accountRepo.AccountRepository
}
