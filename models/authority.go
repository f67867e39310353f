package models

import "time"

// AuthorityProfile links an authority account to the single issue category
// it manages. At most one profile may exist per category so that routing
// stays deterministic; the repository enforces this with a unique index.
type AuthorityProfile struct {
	ID              string    `bson:"id" json:"id"`
	AccountID       string    `bson:"accountId" json:"accountId"`
	ManagedCategory string    `bson:"managedCategory" json:"managedCategory"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
