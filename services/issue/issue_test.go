package issue

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"lawroute/models"
	"lawroute/services/access"
	"lawroute/services/directory"
	"lawroute/utils"
)

// fakeIssueRepo is an in-memory IssueRepository mirroring the conditional
// update semantics of the Mongo implementation. beforeUpdate, when set,
// runs just before the conditional write so tests can interleave a
// concurrent mutation.
type fakeIssueRepo struct {
	issues       map[string]*models.CivilIssue
	beforeUpdate func()
}

func newFakeIssueRepo() *fakeIssueRepo {
	return &fakeIssueRepo{issues: map[string]*models.CivilIssue{}}
}

func (f *fakeIssueRepo) Create(issue *models.CivilIssue) error {
	cp := *issue
	f.issues[issue.ID] = &cp
	return nil
}

func (f *fakeIssueRepo) GetByID(id string) (*models.CivilIssue, error) {
	if i, ok := f.issues[id]; ok {
		cp := *i
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeIssueRepo) ListByReporter(reporterID string) ([]models.CivilIssue, error) {
	var out []models.CivilIssue
	for _, i := range f.issues {
		if i.ReporterID == reporterID {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (f *fakeIssueRepo) ListAssigned(authorityID, district string) ([]models.CivilIssue, error) {
	var out []models.CivilIssue
	for _, i := range f.issues {
		if i.AssignedTo == authorityID && (district == "" || i.District == district) {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (f *fakeIssueRepo) UpdateFieldsIfPending(id string, fields map[string]any) (*models.CivilIssue, error) {
	if f.beforeUpdate != nil {
		f.beforeUpdate()
	}
	i, ok := f.issues[id]
	if !ok || i.Status != models.IssueStatusPending {
		return nil, nil
	}
	if d, ok := fields["description"]; ok {
		i.Description = d.(string)
	}
	if d, ok := fields["district"]; ok {
		i.District = d.(string)
	}
	cp := *i
	return &cp, nil
}

func (f *fakeIssueRepo) SetStatus(id, status string) (*models.CivilIssue, error) {
	i, ok := f.issues[id]
	if !ok {
		return nil, nil
	}
	i.Status = status
	cp := *i
	return &cp, nil
}

func (f *fakeIssueRepo) Delete(id string) error {
	delete(f.issues, id)
	return nil
}

// fakeDirectory routes from a fixed category map.
type fakeDirectory struct {
	routes map[string]string
}

func (f *fakeDirectory) Route(category string) (string, error) {
	if id, ok := f.routes[category]; ok {
		return id, nil
	}
	return "", utils.NotFound("No responsible authority found for this category.")
}

func (f *fakeDirectory) Register(accountID, category string) (*models.AuthorityProfile, error) {
	f.routes[category] = accountID
	return &models.AuthorityProfile{AccountID: accountID, ManagedCategory: category}, nil
}

var _ directory.Directory = (*fakeDirectory)(nil)

type IssueServiceSuite struct {
	suite.Suite
	repo *fakeIssueRepo
	svc  *DefaultIssueService

	reporter  access.Actor
	authority access.Actor
}

func (s *IssueServiceSuite) SetupTest() {
	s.repo = newFakeIssueRepo()
	s.svc = &DefaultIssueService{
		Repo:      s.repo,
		Directory: &fakeDirectory{routes: map[string]string{models.CategoryLand: "authority-1"}},
	}
	s.reporter = access.Actor{ID: "citizen-1", Role: models.RoleCitizen}
	s.authority = access.Actor{ID: "authority-1", Role: models.RoleAuthority}
}

func TestIssueServiceSuite(t *testing.T) {
	suite.Run(t, new(IssueServiceSuite))
}

func (s *IssueServiceSuite) submit() *models.CivilIssue {
	issue, err := s.svc.Submit("citizen-1", models.CategoryLand, "X", "Y")
	s.Require().NoError(err)
	return issue
}

func (s *IssueServiceSuite) TestSubmit() {
	s.Run("creates a pending issue assigned to the routed authority", func() {
		issue := s.submit()
		s.Equal(models.IssueStatusPending, issue.Status)
		s.Equal("authority-1", issue.AssignedTo)
		s.Equal("X", issue.District)
		s.Equal("Y", issue.Description)
	})

	s.Run("fails with not-found and creates nothing when no authority manages the category", func() {
		before := len(s.repo.issues)
		_, err := s.svc.Submit("citizen-1", models.CategoryPolice, "X", "Y")
		s.True(utils.IsKind(err, utils.KindNotFound))
		s.Len(s.repo.issues, before)
	})

	s.Run("rejects missing fields", func() {
		_, err := s.svc.Submit("citizen-1", models.CategoryLand, "", "Y")
		s.True(utils.IsKind(err, utils.KindValidation))
	})

	s.Run("rejects an unknown category", func() {
		_, err := s.svc.Submit("citizen-1", "weather", "X", "Y")
		s.True(utils.IsKind(err, utils.KindValidation))
	})

	s.Run("rejects an oversized description", func() {
		_, err := s.svc.Submit("citizen-1", models.CategoryLand, "X", strings.Repeat("a", models.MaxIssueDescriptionLen+1))
		s.True(utils.IsKind(err, utils.KindValidation))
	})
}

func (s *IssueServiceSuite) TestEdit() {
	s.Run("reporter edits description and district while pending", func() {
		issue := s.submit()
		updated, err := s.svc.Edit(s.reporter, issue.ID, "new description", "Z")
		s.Require().NoError(err)
		s.Equal("new description", updated.Description)
		s.Equal("Z", updated.District)
	})

	s.Run("fails with conflict once the issue leaves pending", func() {
		issue := s.submit()
		_, err := s.svc.SetStatus(s.authority, issue.ID, models.IssueStatusInProgress)
		s.Require().NoError(err)

		_, err = s.svc.Edit(s.reporter, issue.ID, "still valid payload", "")
		s.True(utils.IsKind(err, utils.KindConflict))
	})

	s.Run("non-reporter is forbidden", func() {
		issue := s.submit()
		other := access.Actor{ID: "citizen-2", Role: models.RoleCitizen}
		_, err := s.svc.Edit(other, issue.ID, "hijack", "")
		s.True(utils.IsKind(err, utils.KindForbidden))
	})

	s.Run("unknown id is not-found", func() {
		_, err := s.svc.Edit(s.reporter, "missing", "text", "")
		s.True(utils.IsKind(err, utils.KindNotFound))
	})

	s.Run("empty payload is a validation error", func() {
		issue := s.submit()
		_, err := s.svc.Edit(s.reporter, issue.ID, "", "")
		s.True(utils.IsKind(err, utils.KindValidation))
	})

	s.Run("concurrent delete surfaces as not-found, not conflict", func() {
		issue := s.submit()
		s.repo.beforeUpdate = func() {
			delete(s.repo.issues, issue.ID)
		}
		defer func() { s.repo.beforeUpdate = nil }()

		_, err := s.svc.Edit(s.reporter, issue.ID, "late edit", "")
		s.True(utils.IsKind(err, utils.KindNotFound))
	})
}

// TestAdminHasNoIssuePowers pins issue operations to the exact reporter
// and assigned authority: admins get no ownership bypass here.
func (s *IssueServiceSuite) TestAdminHasNoIssuePowers() {
	issue := s.submit()
	admin := access.Actor{ID: "admin-1", Role: models.RoleAdmin}

	_, err := s.svc.Edit(admin, issue.ID, "override", "")
	s.True(utils.IsKind(err, utils.KindForbidden))
	_, err = s.svc.SetStatus(admin, issue.ID, models.IssueStatusResolved)
	s.True(utils.IsKind(err, utils.KindForbidden))
	err = s.svc.Delete(admin, issue.ID)
	s.True(utils.IsKind(err, utils.KindForbidden))

	stored, err := s.repo.GetByID(issue.ID)
	s.Require().NoError(err)
	s.Equal(models.IssueStatusPending, stored.Status)
}

func (s *IssueServiceSuite) TestSetStatus() {
	s.Run("assigned authority may set any enum member, including backwards", func() {
		issue := s.submit()

		updated, err := s.svc.SetStatus(s.authority, issue.ID, models.IssueStatusResolved)
		s.Require().NoError(err)
		s.Equal(models.IssueStatusResolved, updated.Status)

		// Ordering is not validated; resolved can move back to pending.
		updated, err = s.svc.SetStatus(s.authority, issue.ID, models.IssueStatusPending)
		s.Require().NoError(err)
		s.Equal(models.IssueStatusPending, updated.Status)
	})

	s.Run("rejects a status outside the enum", func() {
		issue := s.submit()
		_, err := s.svc.SetStatus(s.authority, issue.ID, "closed")
		s.True(utils.IsKind(err, utils.KindValidation))
	})

	s.Run("non-assigned authority is forbidden", func() {
		issue := s.submit()
		other := access.Actor{ID: "authority-2", Role: models.RoleAuthority}
		_, err := s.svc.SetStatus(other, issue.ID, models.IssueStatusResolved)
		s.True(utils.IsKind(err, utils.KindForbidden))
	})

	s.Run("reporter may not transition status", func() {
		issue := s.submit()
		_, err := s.svc.SetStatus(s.reporter, issue.ID, models.IssueStatusResolved)
		s.True(utils.IsKind(err, utils.KindForbidden))
	})
}

func (s *IssueServiceSuite) TestAssignmentIsFixed() {
	issue := s.submit()

	_, err := s.svc.SetStatus(s.authority, issue.ID, models.IssueStatusInProgress)
	s.Require().NoError(err)
	_, err = s.svc.Edit(s.reporter, issue.ID, "", "")
	s.Error(err)

	stored, err := s.repo.GetByID(issue.ID)
	s.Require().NoError(err)
	s.Equal("authority-1", stored.AssignedTo)
}

func (s *IssueServiceSuite) TestDelete() {
	s.Run("reporter deletes at any status", func() {
		issue := s.submit()
		_, err := s.svc.SetStatus(s.authority, issue.ID, models.IssueStatusResolved)
		s.Require().NoError(err)

		s.Require().NoError(s.svc.Delete(s.reporter, issue.ID))
		got, err := s.repo.GetByID(issue.ID)
		s.Require().NoError(err)
		s.Nil(got)
	})

	s.Run("assigned authority may not delete", func() {
		issue := s.submit()
		err := s.svc.Delete(s.authority, issue.ID)
		s.True(utils.IsKind(err, utils.KindForbidden))
	})
}

func (s *IssueServiceSuite) TestGet() {
	issue := s.submit()

	s.Run("reporter and assigned authority may read", func() {
		_, err := s.svc.Get(s.reporter, issue.ID)
		s.NoError(err)
		_, err = s.svc.Get(s.authority, issue.ID)
		s.NoError(err)
	})

	s.Run("unrelated actor is forbidden, not not-found", func() {
		other := access.Actor{ID: "citizen-2", Role: models.RoleCitizen}
		_, err := s.svc.Get(other, issue.ID)
		s.True(utils.IsKind(err, utils.KindForbidden))
	})

	s.Run("missing id is not-found", func() {
		_, err := s.svc.Get(s.reporter, "missing")
		s.True(utils.IsKind(err, utils.KindNotFound))
	})
}

func (s *IssueServiceSuite) TestListAssignedDistrictFilter() {
	first := s.submit()
	_, err := s.svc.Submit("citizen-1", models.CategoryLand, "Other", "desc")
	s.Require().NoError(err)

	all, err := s.svc.ListAssigned("authority-1", "")
	s.Require().NoError(err)
	s.Len(all, 2)

	filtered, err := s.svc.ListAssigned("authority-1", first.District)
	s.Require().NoError(err)
	s.Len(filtered, 1)
	s.Equal(first.ID, filtered[0].ID)
}
