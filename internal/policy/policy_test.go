package policy

import (
	"testing"

	"github.com/cscportal/portal-go/internal/domain/submission"
	"github.com/cscportal/portal-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

func TestAllowed_CreateForm(t *testing.T) {
	assert.True(t, Allowed(user.RoleUser, 1, ActionCreateForm, 1))
	assert.False(t, Allowed(user.RoleUser, 1, ActionCreateForm, 2), "users only create for themselves")
	assert.False(t, Allowed(user.RoleCSC, 1, ActionCreateForm, 1))
	assert.False(t, Allowed(user.RoleTechnician, 1, ActionCreateForm, 1))
}

func TestAllowed_ViewForm(t *testing.T) {
	assert.True(t, Allowed(user.RoleUser, 1, ActionViewForm, 1))
	assert.False(t, Allowed(user.RoleUser, 1, ActionViewForm, 2))
	assert.True(t, Allowed(user.RoleCSC, 5, ActionViewForm, 2), "csc sees any record")
	assert.False(t, Allowed(user.RoleTechnician, 2, ActionViewForm, 2), "technician never views, even own")
}

func TestAllowed_EditAndComplete_CSCOnly(t *testing.T) {
	for _, action := range []Action{ActionEditForm, ActionMarkCompleted, ActionCommentForm} {
		assert.True(t, Allowed(user.RoleCSC, 3, action, 7))
		// Ownership does not help non-staff roles.
		assert.False(t, Allowed(user.RoleUser, 7, action, 7))
		assert.False(t, Allowed(user.RoleTechnician, 7, action, 7))
	}
}

func TestAllowed_Dashboards(t *testing.T) {
	assert.True(t, Allowed(user.RoleUser, 1, ActionDashboardUser, 0))
	assert.False(t, Allowed(user.RoleCSC, 1, ActionDashboardUser, 0))

	assert.True(t, Allowed(user.RoleCSC, 1, ActionDashboardCSC, 0))
	assert.False(t, Allowed(user.RoleUser, 1, ActionDashboardCSC, 0))

	assert.True(t, Allowed(user.RoleTechnician, 1, ActionDashboardTechnician, 0))
	assert.False(t, Allowed(user.RoleUser, 1, ActionDashboardTechnician, 0))

	assert.True(t, Allowed(user.RoleUser, 4, ActionListOwnForms, 0))
	assert.False(t, Allowed(user.RoleTechnician, 4, ActionListOwnForms, 0))
}

func TestAllowed_AuditLog(t *testing.T) {
	assert.True(t, Allowed(user.RoleCSC, 1, ActionQueryAuditLog, 0))
	assert.False(t, Allowed(user.RoleUser, 1, ActionQueryAuditLog, 0))
	assert.False(t, Allowed(user.RoleTechnician, 1, ActionQueryAuditLog, 0))
}

func TestAllowed_Unauthenticated(t *testing.T) {
	for _, action := range []Action{
		ActionCreateForm, ActionViewForm, ActionEditForm, ActionMarkCompleted,
		ActionListOwnForms, ActionDashboardUser, ActionDashboardCSC,
		ActionDashboardTechnician, ActionDownloadDocument, ActionQueryAuditLog,
	} {
		assert.False(t, Allowed(user.RoleCSC, 0, action, 0), "action %s must deny actor 0", action)
	}
}

func TestExportEligible(t *testing.T) {
	assert.True(t, ExportEligible(submission.StatusCompleted))
	for _, s := range []submission.Status{
		submission.StatusSubmitted,
		submission.StatusResubmitted,
		submission.StatusUnderProcess,
		submission.StatusActionNeeded,
	} {
		assert.False(t, ExportEligible(s))
	}
}

func TestStatusVocabulary(t *testing.T) {
	// All five statuses are valid even though only completed is reachable
	// through a dedicated operation.
	for _, s := range []submission.Status{
		submission.StatusSubmitted,
		submission.StatusResubmitted,
		submission.StatusUnderProcess,
		submission.StatusActionNeeded,
		submission.StatusCompleted,
	} {
		assert.True(t, s.Valid())
	}
	assert.False(t, submission.Status("rejected").Valid())
	assert.True(t, submission.StatusCompleted.Terminal())
	assert.False(t, submission.StatusUnderProcess.Terminal())
}
