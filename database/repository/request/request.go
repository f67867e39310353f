package requestRepo

import "lawroute/models"

// RequestRepository defines methods for lawyer request data access.
//
// RespondIfPending is the compare-and-swap behind accept/reject: the filter
// matches both the request ID and status == pending, so two concurrent
// responses cannot both observe pending and both win.
type RequestRepository interface {
	// Create inserts a new request record.
	Create(req *models.LawyerRequest) error
	// GetByID retrieves a request by its unique ID. Returns (nil, nil)
	// when no request exists.
	GetByID(id string) (*models.LawyerRequest, error)
	// ListByUser retrieves all requests created by the given citizen,
	// newest first.
	ListByUser(userID string) ([]models.LawyerRequest, error)
	// ListByLawyer retrieves all requests assigned to the given lawyer,
	// newest first.
	ListByLawyer(lawyerID string) ([]models.LawyerRequest, error)
	// RespondIfPending atomically moves a pending request to the given
	// terminal status. Returns (nil, nil) when the request is not pending
	// or does not exist.
	RespondIfPending(id, status string) (*models.LawyerRequest, error)
}
