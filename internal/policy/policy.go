// Package policy is the single authorization decision point. Handlers ask
// Allow(actor, action, resource) before any mutation instead of branching on
// roles themselves.
package policy

import "github.com/karzeg/ztp-project-blog/internal/models"

type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Allow reports whether the actor may perform the action on the resource.
// Admins may do everything. Regular users may create comments, edit their
// own comments, and view or edit their own user record. Post, category and
// tag mutations are admin-only; comment deletion is admin-only as well.
func Allow(actor *models.User, action Action, resource interface{}) bool {
	if actor == nil {
		return false
	}
	if actor.IsAdmin() {
		return true
	}

	switch r := resource.(type) {
	case *models.Comment:
		switch action {
		case ActionCreate:
			return true
		case ActionEdit:
			return isOwner(actor, r.AuthorID)
		default:
			return false
		}
	case *models.User:
		switch action {
		case ActionView, ActionEdit:
			return r.ID == actor.ID
		default:
			return false
		}
	default:
		return false
	}
}

func isOwner(actor *models.User, authorID *uint) bool {
	return authorID != nil && *authorID == actor.ID
}
