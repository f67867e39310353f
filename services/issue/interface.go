package issue

import (
	issueRepo "lawroute/database/repository/issue"
	"lawroute/models"
	"lawroute/services/access"
	"lawroute/services/directory"
)

// IssueService governs the civil issue lifecycle.
type IssueService interface {
	// Submit creates a new issue for the reporter, auto-routed to the
	// authority managing its category. The issue starts pending.
	Submit(reporterID, category, district, description string) (*models.CivilIssue, error)
	// Edit updates description and/or district. Reporter only, and only
	// while the issue is still pending.
	Edit(actor access.Actor, issueID, description, district string) (*models.CivilIssue, error)
	// SetStatus transitions the issue status. Assigned authority only;
	// the new status must be a member of the status enum.
	SetStatus(actor access.Actor, issueID, status string) (*models.CivilIssue, error)
	// Delete removes the issue. Reporter only, at any status.
	Delete(actor access.Actor, issueID string) error
	// Get retrieves a single issue for the reporter or assigned authority.
	Get(actor access.Actor, issueID string) (*models.CivilIssue, error)
	// ListByReporter retrieves the reporter's own issues.
	ListByReporter(reporterID string) ([]models.CivilIssue, error)
	// ListAssigned retrieves the issues assigned to an authority, with an
	// optional district filter.
	ListAssigned(authorityID, district string) ([]models.CivilIssue, error)
}

// DefaultIssueService is the production implementation.
type DefaultIssueService struct {
	Repo      issueRepo.IssueRepository
	Directory directory.Directory
}
