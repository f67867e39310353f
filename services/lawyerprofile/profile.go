package lawyerprofile

import (
	"lawroute/models"
	"lawroute/services/access"
	"lawroute/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Update merge-patches the actor's profile. The payload is tried against
// the ordered adapter list; if no adapter applies any field the update
// fails with a validation error. Completeness is recomputed on every
// successful apply.
func (s *DefaultProfileService) Update(actor access.Actor, payload map[string]any) (*models.LawyerProfile, error) {
	profile, err := s.ownProfile(actor)
	if err != nil {
		return nil, err
	}

	applied := false
	for _, adapter := range adapters {
		if adapter.Apply(profile, payload) {
			utils.GetLogger().Debug("Profile payload applied",
				zap.String("adapter", adapter.Name()),
				zap.String("accountID", actor.ID))
			applied = true
			break
		}
	}
	if !applied {
		return nil, utils.Validationf("no valid fields provided for update")
	}

	profile.ProfileCompleted = computeProfileCompleted(profile)

	if err := s.Repo.Save(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// SetProfilePhoto stores the uploaded photo URL on the actor's profile.
func (s *DefaultProfileService) SetProfilePhoto(actor access.Actor, photoURL string) (*models.LawyerProfile, error) {
	if photoURL == "" {
		return nil, utils.Validationf("photo URL is required")
	}
	profile, err := s.ownProfile(actor)
	if err != nil {
		return nil, err
	}

	profile.BasicInfo["profilePhoto"] = photoURL
	profile.ProfileCompleted = computeProfileCompleted(profile)

	if err := s.Repo.Save(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// ownProfile fetches the actor's profile, creating an empty one on first
// use. Only lawyer accounts own lawyer profiles.
func (s *DefaultProfileService) ownProfile(actor access.Actor) (*models.LawyerProfile, error) {
	if actor.Role != models.RoleLawyer {
		return nil, utils.Forbidden("Only lawyers can update a lawyer profile.")
	}

	profile, err := s.Repo.GetByAccount(actor.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &models.LawyerProfile{
			ID:        uuid.NewString(),
			AccountID: actor.ID,
			Expertise: "general",
		}
		profile.EnsureSections()
		if err := s.Repo.Create(profile); err != nil {
			return nil, err
		}
	}
	profile.EnsureSections()

	if err := access.Decide(actor, profile, access.ActionUpdate); err != nil {
		return nil, err
	}
	return profile, nil
}

// List returns all profiles with owner accounts joined. The join is a
// read-side lookup, not an ownership edge.
func (s *DefaultProfileService) List() ([]ProfileView, error) {
	profiles, err := s.Repo.GetAll()
	if err != nil {
		return nil, err
	}

	views := make([]ProfileView, 0, len(profiles))
	for _, p := range profiles {
		view := ProfileView{LawyerProfile: p}
		owner, err := s.Accounts.GetByID(p.AccountID)
		if err != nil {
			return nil, err
		}
		if owner != nil {
			view.Owner = &OwnerSummary{
				ID:    owner.ID,
				Name:  owner.Name,
				Email: owner.Email,
				Role:  owner.Role,
			}
		}
		views = append(views, view)
	}
	return views, nil
}
