// Package policy is the single place role and ownership checks live.
// Every operation passes the acting identity in explicitly; nothing here
// reads session or request state.
package policy

import (
	"github.com/cscportal/portal-go/internal/domain/submission"
	"github.com/cscportal/portal-go/internal/domain/user"
)

type Action string

const (
	ActionCreateForm          Action = "create_form"
	ActionViewForm            Action = "view_form"
	ActionEditForm            Action = "edit_form"
	ActionMarkCompleted       Action = "mark_completed"
	ActionCommentForm         Action = "comment_form"
	ActionListOwnForms        Action = "list_own_forms"
	ActionDashboardUser       Action = "dashboard_user"
	ActionDashboardCSC        Action = "dashboard_csc"
	ActionDashboardTechnician Action = "dashboard_technician"
	ActionDownloadDocument    Action = "download_document"
	ActionQueryAuditLog       Action = "query_audit_log"
)

// Allowed decides whether an actor may perform an action against a record
// owned by ownerID. Actions that are not record-scoped ignore ownerID.
// An unauthenticated caller (actorID zero) is never allowed anything.
func Allowed(role user.Role, actorID uint, action Action, ownerID uint) bool {
	if actorID == 0 {
		return false
	}

	switch action {
	case ActionCreateForm:
		return role == user.RoleUser && actorID == ownerID
	case ActionViewForm, ActionDownloadDocument:
		switch role {
		case user.RoleUser:
			return actorID == ownerID
		case user.RoleCSC:
			return true
		}
		return false
	case ActionEditForm, ActionMarkCompleted, ActionCommentForm,
		ActionDashboardCSC, ActionQueryAuditLog:
		return role == user.RoleCSC
	case ActionListOwnForms, ActionDashboardUser:
		return role == user.RoleUser
	case ActionDashboardTechnician:
		return role == user.RoleTechnician
	}
	return false
}

// ExportEligible reports whether a record's status allows document export.
// Eligibility is checked on top of Allowed; both must hold.
func ExportEligible(status submission.Status) bool {
	return status == submission.StatusCompleted
}
