package request

import (
	"strings"

	"lawroute/models"
	"lawroute/services/access"
	"lawroute/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create files a new pending request addressed to a specific lawyer.
func (s *DefaultRequestService) Create(userID, lawyerID, summary string) (*models.LawyerRequest, error) {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return nil, utils.Validationf("summary is required")
	}
	if len(summary) > models.MaxRequestSummaryLen {
		return nil, utils.Validationf("summary must not exceed %d characters", models.MaxRequestSummaryLen)
	}
	if lawyerID == "" {
		return nil, utils.Validationf("a lawyer must be selected")
	}

	lawyer, err := s.Accounts.GetByID(lawyerID)
	if err != nil {
		return nil, err
	}
	if lawyer == nil || lawyer.Role != models.RoleLawyer {
		return nil, utils.NotFound("Lawyer not found.")
	}

	req := &models.LawyerRequest{
		ID:       uuid.NewString(),
		UserID:   userID,
		LawyerID: lawyerID,
		Summary:  summary,
		Status:   models.RequestStatusPending,
	}
	if err := s.Repo.Create(req); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Lawyer request created",
		zap.String("requestID", req.ID),
		zap.String("lawyerID", lawyerID))
	return req, nil
}

// Accept moves a pending request to accepted.
func (s *DefaultRequestService) Accept(actor access.Actor, requestID string) (*models.LawyerRequest, error) {
	return s.respond(actor, requestID, models.RequestStatusAccepted)
}

// Reject moves a pending request to rejected.
func (s *DefaultRequestService) Reject(actor access.Actor, requestID string) (*models.LawyerRequest, error) {
	return s.respond(actor, requestID, models.RequestStatusRejected)
}

// respond performs the shared accept/reject transition. The status change
// is a compare-and-swap against status == pending at the store, so two
// concurrent responses cannot both succeed.
func (s *DefaultRequestService) respond(actor access.Actor, requestID, status string) (*models.LawyerRequest, error) {
	req, err := s.Repo.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, utils.NotFound("Request not found.")
	}
	if err := access.Decide(actor, req, access.ActionTransition); err != nil {
		return nil, err
	}

	updated, err := s.Repo.RespondIfPending(requestID, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, utils.Conflict("This request has already been responded to.")
	}

	utils.GetLogger().Info("Lawyer request responded",
		zap.String("requestID", requestID),
		zap.String("status", status))
	return updated, nil
}

// Get retrieves a single request, restricted to the citizen or the
// assigned lawyer.
func (s *DefaultRequestService) Get(actor access.Actor, requestID string) (*models.LawyerRequest, error) {
	req, err := s.Repo.GetByID(requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, utils.NotFound("Request not found.")
	}
	if err := access.Decide(actor, req, access.ActionRead); err != nil {
		return nil, err
	}
	return req, nil
}

// ListForUser retrieves the citizen's own requests.
func (s *DefaultRequestService) ListForUser(userID string) ([]models.LawyerRequest, error) {
	return s.Repo.ListByUser(userID)
}

// ListForLawyer retrieves the requests assigned to a lawyer.
func (s *DefaultRequestService) ListForLawyer(lawyerID string) ([]models.LawyerRequest, error) {
	return s.Repo.ListByLawyer(lawyerID)
}
