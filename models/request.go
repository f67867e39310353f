package models

import "time"

// Request statuses. A request is terminal once accepted or rejected.
const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"
)

// MaxRequestSummaryLen bounds the case summary on a lawyer request.
const MaxRequestSummaryLen = 2000

// LawyerRequest is a citizen's request for representation, addressed to a
// specific lawyer. Only the assigned lawyer may accept or reject it, and
// the request is never reassigned.
type LawyerRequest struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	LawyerID  string    `bson:"lawyerId" json:"lawyerId"`
	Summary   string    `bson:"summary" json:"summary"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (r *LawyerRequest) Kind() string       { return KindLawyerRequest }
func (r *LawyerRequest) OwnerID() string    { return r.UserID }
func (r *LawyerRequest) AssigneeID() string { return r.LawyerID }
