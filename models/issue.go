package models

import "time"

// Issue categories. Each category is managed by exactly one authority account.
const (
	CategoryLand           = "land"
	CategoryPolice         = "police"
	CategoryHarassment     = "harassment"
	CategoryPublicServices = "public_services"
	CategoryOther          = "other"
)

// Issue statuses.
const (
	IssueStatusPending    = "pending"
	IssueStatusInProgress = "in_progress"
	IssueStatusResolved   = "resolved"
)

// MaxIssueDescriptionLen bounds the free-text description of an issue.
const MaxIssueDescriptionLen = 3000

// ValidCategory reports whether the given category is one of the fixed set.
func ValidCategory(category string) bool {
	switch category {
	case CategoryLand, CategoryPolice, CategoryHarassment, CategoryPublicServices, CategoryOther:
		return true
	}
	return false
}

// ValidIssueStatus reports whether the given status is a member of the
// issue status enum. Ordering is not validated; the assigned authority may
// set any member regardless of the current status.
func ValidIssueStatus(status string) bool {
	switch status {
	case IssueStatusPending, IssueStatusInProgress, IssueStatusResolved:
		return true
	}
	return false
}

// CivilIssue is a citizen-reported issue routed to the authority that
// manages its category. AssignedTo is set once at creation and never
// reassigned.
type CivilIssue struct {
	ID          string    `bson:"id" json:"id"`
	ReporterID  string    `bson:"reporterId" json:"reporterId"`
	Category    string    `bson:"category" json:"category"`
	District    string    `bson:"district" json:"district"`
	Description string    `bson:"description" json:"description"`
	AssignedTo  string    `bson:"assignedTo" json:"assignedTo"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (i *CivilIssue) Kind() string       { return KindCivilIssue }
func (i *CivilIssue) OwnerID() string    { return i.ReporterID }
func (i *CivilIssue) AssigneeID() string { return i.AssignedTo }
