package application

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cscportal/portal-go/internal/domain/audit"
	"github.com/cscportal/portal-go/internal/domain/submission"
	"github.com/cscportal/portal-go/internal/domain/user"
	"github.com/cscportal/portal-go/internal/repository"
	"github.com/cscportal/portal-go/internal/testutils"
)

func seedUser(t *testing.T, repos *repository.Repos, username string, role user.Role) user.User {
	t.Helper()

	u := user.User{
		Username: username,
		Password: "not-a-real-hash",
		Email:    username + "@example.com",
		Role:     role,
	}
	require.NoError(t, repos.User.CreateUser(&u))
	return u
}

// TestFormLifecycle walks one form through its whole life against a real
// database: creation, staff review, edit, completion, export, and the
// audit trail produced along the way.
func TestFormLifecycle(t *testing.T) {
	gormDB := testutils.SetupPostgres(t)
	repos := repository.NewRepositories(gormDB)
	svc := New(repos)

	owner := seedUser(t, repos, "alice", user.RoleUser)
	other := seedUser(t, repos, "bob", user.RoleUser)
	staff := seedUser(t, repos, "carol", user.RoleCSC)

	sub, err := svc.Submission.Create(owner, submission.CreateSubmissionDTO{
		FullName:    "Alice Example",
		Email:       "alice@example.com",
		PhoneNumber: "0911222333",
		Address:     "1 Main St",
		DateOfBirth: "1990-04-12",
		Occupation:  "Student",
		Purpose:     "Residence certificate",
	}, "")
	require.NoError(t, err)
	require.Equal(t, submission.StatusSubmitted, sub.Status)

	// No staff has touched the form yet.
	actions, err := svc.Audit.QueryActions(staff, repository.AuditQueryParams{SubmissionID: &sub.ID})
	require.NoError(t, err)
	assert.Empty(t, actions)

	// Staff opens the form: a viewed entry appears, status stays put.
	viewed, err := svc.Submission.Get(staff, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, submission.StatusSubmitted, viewed.Status)

	actions, err = svc.Audit.QueryActions(staff, repository.AuditQueryParams{SubmissionID: &sub.ID})
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, audit.ActionViewed, actions[0].Action)
	assert.Equal(t, staff.UID, actions[0].ActorID)

	// Another applicant cannot see the form at all.
	_, err = svc.Submission.Get(other, sub.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	// Staff corrects the occupation field.
	occupation := "Engineer"
	edited, err := svc.Submission.Update(staff, sub.ID, submission.UpdateSubmissionDTO{
		Occupation: &occupation,
	})
	require.NoError(t, err)
	assert.Equal(t, "Engineer", edited.Occupation)
	assert.Equal(t, submission.StatusSubmitted, edited.Status)
	assert.False(t, edited.UpdatedAt.Before(sub.UpdatedAt))

	action := string(audit.ActionEdited)
	actions, err = svc.Audit.QueryActions(staff, repository.AuditQueryParams{
		SubmissionID: &sub.ID,
		Action:       &action,
	})
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Contains(t, string(actions[0].OldData), "Student")
	assert.Contains(t, string(actions[0].NewData), "Engineer")

	// Export is gated until completion.
	_, _, err = svc.Export.Export(owner, sub.ID)
	assert.ErrorIs(t, err, ErrNotEligible)

	completed, err := svc.Submission.Complete(staff, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, submission.StatusCompleted, completed.Status)
	assert.False(t, completed.UpdatedAt.Before(edited.UpdatedAt))

	action = string(audit.ActionSubmitted)
	actions, err = svc.Audit.QueryActions(staff, repository.AuditQueryParams{
		SubmissionID: &sub.ID,
		Action:       &action,
	})
	require.NoError(t, err)
	require.Len(t, actions, 1)

	// Completing twice is rejected and leaves no extra trail.
	_, err = svc.Submission.Complete(staff, sub.ID)
	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	actions, err = svc.Audit.QueryActions(staff, repository.AuditQueryParams{
		SubmissionID: &sub.ID,
		Action:       &action,
	})
	require.NoError(t, err)
	assert.Len(t, actions, 1)

	// The owner downloads the certificate, a stranger still cannot.
	data, filename, err := svc.Export.Export(owner, sub.ID)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
	assert.Contains(t, filename, ".pdf")

	_, _, err = svc.Export.Export(other, sub.ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestCommentTrail_Integration(t *testing.T) {
	gormDB := testutils.SetupPostgres(t)
	repos := repository.NewRepositories(gormDB)
	svc := New(repos)

	owner := seedUser(t, repos, "dave", user.RoleUser)
	staff := seedUser(t, repos, "erin", user.RoleCSC)

	sub, err := svc.Submission.Create(owner, submission.CreateSubmissionDTO{
		FullName:    "Dave Example",
		Email:       "dave@example.com",
		PhoneNumber: "0911444555",
		Address:     "2 Side St",
		DateOfBirth: "1985-09-01",
		Occupation:  "Clerk",
		Purpose:     "Permit renewal",
	}, "")
	require.NoError(t, err)

	first, err := svc.Submission.Comment(staff, sub.ID, "missing address proof")
	require.NoError(t, err)
	require.NotNil(t, first.Comments)
	assert.Equal(t, "missing address proof", *first.Comments)

	second, err := svc.Submission.Comment(staff, sub.ID, "proof received")
	require.NoError(t, err)
	require.NotNil(t, second.Comments)
	assert.Equal(t, "missing address proof\nproof received", *second.Comments)

	action := string(audit.ActionCommented)
	actions, err := svc.Audit.QueryActions(staff, repository.AuditQueryParams{
		SubmissionID: &sub.ID,
		Action:       &action,
	})
	require.NoError(t, err)
	assert.Len(t, actions, 2)
}
