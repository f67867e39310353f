package access

import (
	"lawroute/models"
	"lawroute/utils"
)

// Action is a guarded operation on a resource.
type Action string

const (
	ActionRead       Action = "read"
	ActionUpdate     Action = "update"
	ActionDelete     Action = "delete"
	ActionTransition Action = "transition"
)

// Actor identifies the authenticated caller.
type Actor struct {
	ID   string
	Role models.Role
}

// Resource exposes the ownership fields the guard evaluates. Models
// implement this; the guard never touches the store.
type Resource interface {
	Kind() string
	OwnerID() string
	AssigneeID() string
}

// relation is the relationship an actor must hold to a resource for a rule
// to allow the action.
type relation int

const (
	relAnyone relation = iota
	relOwner
	relAssignee
)

type rule struct {
	action Action
	rel    relation
}

// kindPolicy holds the rules for one resource kind. adminBypass widens the
// kind to admins regardless of ownership; it is opt-in per kind, not a
// platform-wide override.
type kindPolicy struct {
	rules       []rule
	adminBypass bool
}

// policy is the per-resource-kind rule table. An action is allowed if any
// rule for the kind matches. Issues and requests bind strictly to the
// exact reporter/assignee, so admins get no bypass there. Article
// moderation has no rule on purpose: only the admin bypass reaches it.
var policy = map[string]kindPolicy{
	models.KindCivilIssue: {rules: []rule{
		{ActionRead, relOwner},
		{ActionRead, relAssignee},
		{ActionUpdate, relOwner},
		{ActionDelete, relOwner},
		{ActionTransition, relAssignee},
	}},
	models.KindLawyerRequest: {rules: []rule{
		{ActionRead, relOwner},
		{ActionRead, relAssignee},
		{ActionTransition, relAssignee},
	}},
	models.KindLawyerProfile: {rules: []rule{
		{ActionRead, relAnyone},
		{ActionUpdate, relOwner},
	}},
	models.KindArticle: {
		rules:       []rule{{ActionRead, relOwner}},
		adminBypass: true,
	},
}

// Decide reports whether the actor may perform the action on the resource.
// It is a pure predicate over (role, actor id, ownership fields, action);
// a nil return means allow, otherwise a forbidden error carrying the reason.
// Callers must resolve the resource first: a missing resource is not-found,
// an existing-but-unrelated one is forbidden.
func Decide(actor Actor, res Resource, action Action) error {
	kp := policy[res.Kind()]
	if actor.Role == models.RoleAdmin && kp.adminBypass {
		return nil
	}
	for _, r := range kp.rules {
		if r.action != action {
			continue
		}
		switch r.rel {
		case relAnyone:
			return nil
		case relOwner:
			if actor.ID != "" && actor.ID == res.OwnerID() {
				return nil
			}
		case relAssignee:
			if actor.ID != "" && actor.ID == res.AssigneeID() {
				return nil
			}
		}
	}
	return utils.Forbidden("Access denied.")
}
