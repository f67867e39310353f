package models

import "time"

// Role identifies what an account is allowed to do on the platform.
// It is fixed at registration; no role-change operation exists.
type Role string

const (
	RoleCitizen   Role = "citizen"
	RoleLawyer    Role = "lawyer"
	RoleAuthority Role = "authority"
	RoleAdmin     Role = "admin"
)

// ParseRole maps an input string onto the closed role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCitizen, RoleLawyer, RoleAuthority, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// Account represents a platform identity: a citizen, lawyer, authority, or admin.
type Account struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
