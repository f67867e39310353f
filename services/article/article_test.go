package article

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"lawroute/models"
	"lawroute/services/access"
	"lawroute/utils"
)

type fakeArticleRepo struct {
	articles map[string]*models.Article
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: map[string]*models.Article{}}
}

func (f *fakeArticleRepo) Create(a *models.Article) error {
	cp := *a
	f.articles[a.ID] = &cp
	return nil
}

func (f *fakeArticleRepo) GetByID(id string) (*models.Article, error) {
	if a, ok := f.articles[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeArticleRepo) ListPublished() ([]models.Article, error) {
	var out []models.Article
	for _, a := range f.articles {
		if a.Status == models.ArticleStatusPublished {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeArticleRepo) ListByAuthor(authorID string) ([]models.Article, error) {
	var out []models.Article
	for _, a := range f.articles {
		if a.AuthorID == authorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeArticleRepo) SetStatus(id, status string) (*models.Article, error) {
	a, ok := f.articles[id]
	if !ok {
		return nil, nil
	}
	a.Status = status
	cp := *a
	return &cp, nil
}

type ArticleServiceSuite struct {
	suite.Suite
	svc *DefaultArticleService

	admin   access.Actor
	lawyer  access.Actor
	citizen access.Actor
}

func (s *ArticleServiceSuite) SetupTest() {
	s.svc = &DefaultArticleService{Repo: newFakeArticleRepo()}
	s.admin = access.Actor{ID: "admin-1", Role: models.RoleAdmin}
	s.lawyer = access.Actor{ID: "lawyer-1", Role: models.RoleLawyer}
	s.citizen = access.Actor{ID: "citizen-1", Role: models.RoleCitizen}
}

func TestArticleServiceSuite(t *testing.T) {
	suite.Run(t, new(ArticleServiceSuite))
}

func (s *ArticleServiceSuite) TestCreate() {
	s.Run("admin articles are published immediately", func() {
		a, err := s.svc.Create(s.admin, "Title", "Content", "civil")
		s.Require().NoError(err)
		s.Equal(models.ArticleStatusPublished, a.Status)
	})

	s.Run("lawyer articles start pending", func() {
		a, err := s.svc.Create(s.lawyer, "Title", "Content", "")
		s.Require().NoError(err)
		s.Equal(models.ArticleStatusPending, a.Status)
	})

	s.Run("citizens may not create articles", func() {
		_, err := s.svc.Create(s.citizen, "Title", "Content", "")
		s.True(utils.IsKind(err, utils.KindForbidden))
	})

	s.Run("title and content are required", func() {
		_, err := s.svc.Create(s.admin, "", "Content", "")
		s.True(utils.IsKind(err, utils.KindValidation))
	})
}

func (s *ArticleServiceSuite) TestModeration() {
	pending, err := s.svc.Create(s.lawyer, "Pending", "Content", "")
	s.Require().NoError(err)

	s.Run("admin moderates an article they do not own", func() {
		updated, err := s.svc.Moderate(s.admin, pending.ID, models.ArticleStatusPublished)
		s.Require().NoError(err)
		s.Equal(models.ArticleStatusPublished, updated.Status)
	})

	s.Run("the author cannot moderate their own article", func() {
		_, err := s.svc.Moderate(s.lawyer, pending.ID, models.ArticleStatusArchived)
		s.True(utils.IsKind(err, utils.KindForbidden))
	})

	s.Run("unknown status is rejected", func() {
		_, err := s.svc.Moderate(s.admin, pending.ID, "hidden")
		s.True(utils.IsKind(err, utils.KindValidation))
	})
}

func (s *ArticleServiceSuite) TestVisibility() {
	pending, err := s.svc.Create(s.lawyer, "Pending", "Content", "")
	s.Require().NoError(err)

	s.Run("author and admin may read a pending article", func() {
		_, err := s.svc.Get(s.lawyer, pending.ID)
		s.NoError(err)
		_, err = s.svc.Get(s.admin, pending.ID)
		s.NoError(err)
	})

	s.Run("others may not read a pending article", func() {
		_, err := s.svc.Get(s.citizen, pending.ID)
		s.True(utils.IsKind(err, utils.KindForbidden))
	})

	s.Run("published articles are public", func() {
		_, err := s.svc.Moderate(s.admin, pending.ID, models.ArticleStatusPublished)
		s.Require().NoError(err)
		_, err = s.svc.Get(access.Actor{}, pending.ID)
		s.NoError(err)
	})
}
