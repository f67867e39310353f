package lawyerprofile

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"lawroute/models"
	"lawroute/services/access"
	"lawroute/utils"
)

// fakeProfileRepo is an in-memory ProfileRepository.
type fakeProfileRepo struct {
	byAccount map[string]*models.LawyerProfile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{byAccount: map[string]*models.LawyerProfile{}}
}

func (f *fakeProfileRepo) Create(p *models.LawyerProfile) error {
	f.byAccount[p.AccountID] = p
	return nil
}

func (f *fakeProfileRepo) GetByAccount(accountID string) (*models.LawyerProfile, error) {
	if p, ok := f.byAccount[accountID]; ok {
		return p, nil
	}
	return nil, nil
}

func (f *fakeProfileRepo) Save(p *models.LawyerProfile) error {
	f.byAccount[p.AccountID] = p
	return nil
}

func (f *fakeProfileRepo) GetAll() ([]models.LawyerProfile, error) {
	var out []models.LawyerProfile
	for _, p := range f.byAccount {
		out = append(out, *p)
	}
	return out, nil
}

type fakeAccountRepo struct {
	accounts map[string]*models.Account
}

func (f *fakeAccountRepo) Create(acc *models.Account) error {
	f.accounts[acc.ID] = acc
	return nil
}

func (f *fakeAccountRepo) GetByID(id string) (*models.Account, error) {
	if a, ok := f.accounts[id]; ok {
		return a, nil
	}
	return nil, nil
}

func (f *fakeAccountRepo) GetByEmail(email string) (*models.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) UpdateTokenHash(id, tokenHash string) error {
	if a, ok := f.accounts[id]; ok {
		a.TokenHash = tokenHash
	}
	return nil
}

type ProfileServiceSuite struct {
	suite.Suite
	repo   *fakeProfileRepo
	svc    *DefaultProfileService
	lawyer access.Actor
}

func (s *ProfileServiceSuite) SetupTest() {
	s.repo = newFakeProfileRepo()
	s.svc = &DefaultProfileService{
		Repo: s.repo,
		Accounts: &fakeAccountRepo{accounts: map[string]*models.Account{
			"lawyer-1": {ID: "lawyer-1", Name: "Asha", Email: "asha@example.com", Role: models.RoleLawyer},
		}},
	}
	s.lawyer = access.Actor{ID: "lawyer-1", Role: models.RoleLawyer}
}

func TestProfileServiceSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceSuite))
}

func (s *ProfileServiceSuite) TestStructuredPayload() {
	s.Run("merge-patches allow-listed section fields", func() {
		profile, err := s.svc.Update(s.lawyer, map[string]any{
			"basicInfo": map[string]any{
				"professionalTitle": "Advocate",
				"bio":               "Ten years in land law.",
			},
			"experience": map[string]any{
				"totalYearsExperience": float64(10),
			},
		})
		s.Require().NoError(err)
		s.Equal("Advocate", profile.BasicInfo["professionalTitle"])
		s.Equal(float64(10), profile.Experience["totalYearsExperience"])
	})

	s.Run("silently ignores fields outside the allow-list", func() {
		profile, err := s.svc.Update(s.lawyer, map[string]any{
			"basicInfo": map[string]any{
				"bio":    "updated",
				"salary": 100000,
			},
		})
		s.Require().NoError(err)
		s.Equal("updated", profile.BasicInfo["bio"])
		s.NotContains(profile.BasicInfo, "salary")
	})

	s.Run("leaves untouched fields in place", func() {
		profile, err := s.svc.Update(s.lawyer, map[string]any{
			"educationQualifications": map[string]any{"barRegistrationNumber": "BR-42"},
		})
		s.Require().NoError(err)
		s.Equal("updated", profile.BasicInfo["bio"])
		s.Equal("BR-42", profile.EducationQualifications["barRegistrationNumber"])
	})

	s.Run("accepts isFree at the root and inside basicInfo", func() {
		profile, err := s.svc.Update(s.lawyer, map[string]any{"isFree": true})
		s.Require().NoError(err)
		s.True(profile.IsFree)

		profile, err = s.svc.Update(s.lawyer, map[string]any{
			"basicInfo": map[string]any{"isFree": false},
		})
		s.Require().NoError(err)
		s.False(profile.IsFree)
	})
}

func (s *ProfileServiceSuite) TestLegacyPayload() {
	s.Run("maps flat fields into nested sections", func() {
		profile, err := s.svc.Update(s.lawyer, map[string]any{
			"phone":         "123",
			"practiceAreas": []any{"tax"},
		})
		s.Require().NoError(err)

		contactInfo, ok := profile.BasicInfo["contactInfo"].(map[string]any)
		s.Require().True(ok)
		s.Equal("123", contactInfo["phone"])

		areas, ok := profile.BasicInfo["practiceAreas"].([]any)
		s.Require().True(ok)
		s.Require().Len(areas, 1)
		s.Equal(map[string]any{"name": "tax", "level": "intermediate"}, areas[0])
	})

	s.Run("contactInfo merge is additive", func() {
		_, err := s.svc.Update(s.lawyer, map[string]any{"phone": "123"})
		s.Require().NoError(err)

		profile, err := s.svc.Update(s.lawyer, map[string]any{"officeAddress": "1 Court Lane"})
		s.Require().NoError(err)

		contactInfo := profile.BasicInfo["contactInfo"].(map[string]any)
		s.Equal("123", contactInfo["phone"])
		s.Equal("1 Court Lane", contactInfo["officeAddress"])
	})

	s.Run("keeps already-structured practice area records as-is", func() {
		profile, err := s.svc.Update(s.lawyer, map[string]any{
			"practiceAreas": []any{map[string]any{"name": "family", "level": "expert"}},
		})
		s.Require().NoError(err)

		areas := profile.BasicInfo["practiceAreas"].([]any)
		s.Equal(map[string]any{"name": "family", "level": "expert"}, areas[0])
	})

	s.Run("yearsOfExperience lands in the experience section", func() {
		profile, err := s.svc.Update(s.lawyer, map[string]any{"yearsOfExperience": float64(7)})
		s.Require().NoError(err)
		s.Equal(float64(7), profile.Experience["totalYearsExperience"])
	})

	s.Run("legacy shape is only consulted when the structured shape applied nothing", func() {
		profile, err := s.svc.Update(s.lawyer, map[string]any{
			"basicInfo": map[string]any{"bio": "structured wins"},
			"phone":     "999",
		})
		s.Require().NoError(err)
		s.Equal("structured wins", profile.BasicInfo["bio"])
		contactInfo := profile.BasicInfo["contactInfo"].(map[string]any)
		s.NotEqual("999", contactInfo["phone"])
	})
}

func (s *ProfileServiceSuite) TestNoValidFields() {
	s.Run("empty payload fails with validation error", func() {
		_, err := s.svc.Update(s.lawyer, map[string]any{})
		s.True(utils.IsKind(err, utils.KindValidation))
	})

	s.Run("payload with only unknown fields fails", func() {
		_, err := s.svc.Update(s.lawyer, map[string]any{"favouriteColour": "blue"})
		s.True(utils.IsKind(err, utils.KindValidation))
	})
}

func (s *ProfileServiceSuite) TestCompleteness() {
	s.Run("flips true once all four conditions hold", func() {
		profile, err := s.svc.Update(s.lawyer, map[string]any{
			"basicInfo": map[string]any{
				"professionalTitle": "Advocate",
				"bio":               "Bio",
				"practiceAreas":     []any{map[string]any{"name": "tax", "level": "expert"}},
			},
			"experience": map[string]any{"totalYearsExperience": float64(3)},
		})
		s.Require().NoError(err)
		s.True(profile.ProfileCompleted)
	})

	s.Run("flips back false when bio is emptied by a later update", func() {
		profile, err := s.svc.Update(s.lawyer, map[string]any{
			"basicInfo": map[string]any{"bio": ""},
		})
		s.Require().NoError(err)
		s.False(profile.ProfileCompleted)
	})

	s.Run("zero years of experience still counts as complete", func() {
		profile, err := s.svc.Update(s.lawyer, map[string]any{
			"basicInfo":  map[string]any{"bio": "restored"},
			"experience": map[string]any{"totalYearsExperience": float64(0)},
		})
		s.Require().NoError(err)
		s.True(profile.ProfileCompleted)
	})

	s.Run("missing years of experience is incomplete", func() {
		other := access.Actor{ID: "lawyer-2", Role: models.RoleLawyer}
		profile, err := s.svc.Update(other, map[string]any{
			"basicInfo": map[string]any{
				"professionalTitle": "Counsel",
				"bio":               "Bio",
				"practiceAreas":     []any{map[string]any{"name": "civil", "level": "junior"}},
			},
		})
		s.Require().NoError(err)
		s.False(profile.ProfileCompleted)
	})
}

func (s *ProfileServiceSuite) TestOnlyLawyersUpdate() {
	citizen := access.Actor{ID: "citizen-1", Role: models.RoleCitizen}
	_, err := s.svc.Update(citizen, map[string]any{"bio": "nope"})
	s.True(utils.IsKind(err, utils.KindForbidden))
}

func (s *ProfileServiceSuite) TestList() {
	_, err := s.svc.Update(s.lawyer, map[string]any{"bio": "listed"})
	s.Require().NoError(err)

	views, err := s.svc.List()
	s.Require().NoError(err)
	s.Require().Len(views, 1)
	s.Require().NotNil(views[0].Owner)
	s.Equal("Asha", views[0].Owner.Name)
}
