package directory

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"lawroute/models"
	"lawroute/utils"
)

// fakeAuthorityRepo is an in-memory AuthorityRepository.
type fakeAuthorityRepo struct {
	byCategory map[string]*models.AuthorityProfile
}

func newFakeAuthorityRepo() *fakeAuthorityRepo {
	return &fakeAuthorityRepo{byCategory: map[string]*models.AuthorityProfile{}}
}

func (f *fakeAuthorityRepo) Create(p *models.AuthorityProfile) error {
	cp := *p
	f.byCategory[p.ManagedCategory] = &cp
	return nil
}

func (f *fakeAuthorityRepo) GetByCategory(category string) (*models.AuthorityProfile, error) {
	if p, ok := f.byCategory[category]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeAuthorityRepo) GetByAccount(accountID string) (*models.AuthorityProfile, error) {
	for _, p := range f.byCategory {
		if p.AccountID == accountID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

type DirectorySuite struct {
	suite.Suite
	repo *fakeAuthorityRepo
	dir  *AuthorityDirectory
}

func (s *DirectorySuite) SetupTest() {
	s.repo = newFakeAuthorityRepo()
	s.dir = &AuthorityDirectory{Repo: s.repo}
}

func TestDirectorySuite(t *testing.T) {
	suite.Run(t, new(DirectorySuite))
}

func (s *DirectorySuite) TestRoute() {
	s.Run("routes a managed category to its authority account", func() {
		_, err := s.dir.Register("authority-1", models.CategoryLand)
		s.Require().NoError(err)

		accountID, err := s.dir.Route(models.CategoryLand)
		s.Require().NoError(err)
		s.Equal("authority-1", accountID)
	})

	s.Run("is deterministic across repeated lookups", func() {
		first, err := s.dir.Route(models.CategoryLand)
		s.Require().NoError(err)
		second, err := s.dir.Route(models.CategoryLand)
		s.Require().NoError(err)
		s.Equal(first, second)
	})

	s.Run("fails with not-found when no authority manages the category", func() {
		_, err := s.dir.Route(models.CategoryPolice)
		s.True(utils.IsKind(err, utils.KindNotFound))
	})
}

func (s *DirectorySuite) TestRegister() {
	s.Run("rejects a second authority for the same category", func() {
		_, err := s.dir.Register("authority-1", models.CategoryHarassment)
		s.Require().NoError(err)

		_, err = s.dir.Register("authority-2", models.CategoryHarassment)
		s.True(utils.IsKind(err, utils.KindConflict))

		// Routing still resolves to the first registrant.
		accountID, err := s.dir.Route(models.CategoryHarassment)
		s.Require().NoError(err)
		s.Equal("authority-1", accountID)
	})

	s.Run("rejects an unknown category", func() {
		_, err := s.dir.Register("authority-1", "weather")
		s.True(utils.IsKind(err, utils.KindValidation))
	})
}
