package request

import (
	accountRepo "lawroute/database/repository/account"
	requestRepo "lawroute/database/repository/request"
	"lawroute/models"
	"lawroute/services/access"
)

// RequestService governs the lawyer request negotiation between a citizen
// and the assigned lawyer.
type RequestService interface {
	// Create files a new request for the citizen against the chosen
	// lawyer. The request starts pending.
	Create(userID, lawyerID, summary string) (*models.LawyerRequest, error)
	// Accept moves a pending request to accepted. Assigned lawyer only;
	// terminal once responded.
	Accept(actor access.Actor, requestID string) (*models.LawyerRequest, error)
	// Reject moves a pending request to rejected. Assigned lawyer only;
	// terminal once responded.
	Reject(actor access.Actor, requestID string) (*models.LawyerRequest, error)
	// Get retrieves a single request for the citizen or assigned lawyer.
	Get(actor access.Actor, requestID string) (*models.LawyerRequest, error)
	// ListForUser retrieves the citizen's own requests.
	ListForUser(userID string) ([]models.LawyerRequest, error)
	// ListForLawyer retrieves the requests assigned to a lawyer.
	ListForLawyer(lawyerID string) ([]models.LawyerRequest, error)
}

// DefaultRequestService is the production implementation.
type DefaultRequestService struct {
	Repo     requestRepo.RequestRepository
	Accounts accountRepo.AccountRepository
}
