package issueRepo

import "lawroute/models"

// IssueRepository defines methods for civil issue data access.
//
// UpdateFieldsIfPending is a single conditional write: the filter matches
// both the issue ID and status == pending, so a reporter edit can never
// land on an issue that has already left pending, even under concurrent
// status transitions.
type IssueRepository interface {
	// Create inserts a new issue record.
	Create(issue *models.CivilIssue) error
	// GetByID retrieves an issue by its unique ID. Returns (nil, nil)
	// when no issue exists.
	GetByID(id string) (*models.CivilIssue, error)
	// ListByReporter retrieves all issues reported by the given account,
	// newest first.
	ListByReporter(reporterID string) ([]models.CivilIssue, error)
	// ListAssigned retrieves all issues assigned to the given authority,
	// optionally filtered by district, newest first.
	ListAssigned(authorityID, district string) ([]models.CivilIssue, error)
	// UpdateFieldsIfPending atomically applies the given field updates if
	// and only if the issue is still pending. Returns (nil, nil) when the
	// issue exists but is no longer pending, or does not exist.
	UpdateFieldsIfPending(id string, fields map[string]any) (*models.CivilIssue, error)
	// SetStatus sets the issue status and returns the updated issue.
	// Returns (nil, nil) when the issue does not exist.
	SetStatus(id, status string) (*models.CivilIssue, error)
	// Delete removes an issue record by its ID.
	Delete(id string) error
}
