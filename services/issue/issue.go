package issue

import (
	"strings"

	"lawroute/models"
	"lawroute/services/access"
	"lawroute/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Submit creates a new issue, auto-routing it to the authority that manages
// its category. Routing failure surfaces as not-found and creates nothing.
func (s *DefaultIssueService) Submit(reporterID, category, district, description string) (*models.CivilIssue, error) {
	district = strings.TrimSpace(district)
	description = strings.TrimSpace(description)

	if category == "" || district == "" || description == "" {
		return nil, utils.Validationf("category, district, and description are required")
	}
	if !models.ValidCategory(category) {
		return nil, utils.Validationf("category must be one of the known categories")
	}
	if len(description) > models.MaxIssueDescriptionLen {
		return nil, utils.Validationf("description must not exceed %d characters", models.MaxIssueDescriptionLen)
	}

	authorityID, err := s.Directory.Route(category)
	if err != nil {
		return nil, err
	}

	issue := &models.CivilIssue{
		ID:          uuid.NewString(),
		ReporterID:  reporterID,
		Category:    category,
		District:    district,
		Description: description,
		AssignedTo:  authorityID,
		Status:      models.IssueStatusPending,
	}
	if err := s.Repo.Create(issue); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Civil issue submitted and routed",
		zap.String("issueID", issue.ID),
		zap.String("category", category),
		zap.String("assignedTo", authorityID))
	return issue, nil
}

// Edit updates the reporter-editable fields while the issue is pending.
// The write is conditional on status == pending so a concurrent status
// transition cannot be overwritten.
func (s *DefaultIssueService) Edit(actor access.Actor, issueID, description, district string) (*models.CivilIssue, error) {
	description = strings.TrimSpace(description)
	district = strings.TrimSpace(district)

	if description == "" && district == "" {
		return nil, utils.Validationf("provide at least one field to update: description or district")
	}
	if len(description) > models.MaxIssueDescriptionLen {
		return nil, utils.Validationf("description must not exceed %d characters", models.MaxIssueDescriptionLen)
	}

	issue, err := s.Repo.GetByID(issueID)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, utils.NotFound("Civil issue not found.")
	}
	if err := access.Decide(actor, issue, access.ActionUpdate); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if description != "" {
		fields["description"] = description
	}
	if district != "" {
		fields["district"] = district
	}

	updated, err := s.Repo.UpdateFieldsIfPending(issueID, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// The conditional write matched nothing: either the issue left
		// pending or it was deleted underneath us. Re-fetch to tell the
		// two apart.
		current, err := s.Repo.GetByID(issueID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, utils.NotFound("Civil issue not found.")
		}
		return nil, utils.Conflict("Issue can only be edited while it is pending.")
	}
	return updated, nil
}

// SetStatus transitions the issue status. Membership in the enum is the
// only validation: an assigned authority may move resolved back to pending.
func (s *DefaultIssueService) SetStatus(actor access.Actor, issueID, status string) (*models.CivilIssue, error) {
	if !models.ValidIssueStatus(status) {
		return nil, utils.Validationf("status must be one of: pending, in_progress, resolved")
	}

	issue, err := s.Repo.GetByID(issueID)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, utils.NotFound("Civil issue not found.")
	}
	if err := access.Decide(actor, issue, access.ActionTransition); err != nil {
		return nil, err
	}

	updated, err := s.Repo.SetStatus(issueID, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, utils.NotFound("Civil issue not found.")
	}

	utils.GetLogger().Info("Civil issue status updated",
		zap.String("issueID", issueID),
		zap.String("status", status))
	return updated, nil
}

// Delete removes an issue. Reporter only; not gated by status.
func (s *DefaultIssueService) Delete(actor access.Actor, issueID string) error {
	issue, err := s.Repo.GetByID(issueID)
	if err != nil {
		return err
	}
	if issue == nil {
		return utils.NotFound("Civil issue not found.")
	}
	if err := access.Decide(actor, issue, access.ActionDelete); err != nil {
		return err
	}
	return s.Repo.Delete(issueID)
}

// Get retrieves a single issue, restricted to the reporter or the assigned
// authority.
func (s *DefaultIssueService) Get(actor access.Actor, issueID string) (*models.CivilIssue, error) {
	issue, err := s.Repo.GetByID(issueID)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, utils.NotFound("Civil issue not found.")
	}
	if err := access.Decide(actor, issue, access.ActionRead); err != nil {
		return nil, err
	}
	return issue, nil
}

// ListByReporter retrieves the reporter's own issues.
func (s *DefaultIssueService) ListByReporter(reporterID string) ([]models.CivilIssue, error) {
	return s.Repo.ListByReporter(reporterID)
}

// ListAssigned retrieves the issues assigned to an authority.
func (s *DefaultIssueService) ListAssigned(authorityID, district string) ([]models.CivilIssue, error) {
	return s.Repo.ListAssigned(authorityID, district)
}
