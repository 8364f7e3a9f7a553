package application

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/cscportal/portal-go/internal/domain/audit"
	"github.com/cscportal/portal-go/internal/domain/submission"
	"github.com/cscportal/portal-go/internal/domain/user"
	"github.com/cscportal/portal-go/internal/policy"
	"github.com/cscportal/portal-go/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrPermissionDenied   = errors.New("permission denied")
	ErrSubmissionNotFound = errors.New("form submission not found")
	ErrAlreadyCompleted   = errors.New("form is already completed")
	ErrInvalidStatus      = errors.New("invalid form status")
	ErrInvalidDateOfBirth = errors.New("date of birth must be in YYYY-MM-DD format")
	ErrNoDocument         = errors.New("no document attached to this form")
)

// SubmissionService drives the form lifecycle. Every state-changing
// operation checks the access policy first, then performs the record
// mutation and its audit append inside one transaction.
type SubmissionService struct {
	Repos *repository.Repos
}

func NewSubmissionService(repos *repository.Repos) *SubmissionService {
	return &SubmissionService{
		Repos: repos,
	}
}

const dateLayout = "2006-01-02"

func (s *SubmissionService) Create(actor user.User, input submission.CreateSubmissionDTO, documentKey string) (submission.Submission, error) {
	if !policy.Allowed(actor.Role, actor.UID, policy.ActionCreateForm, actor.UID) {
		return submission.Submission{}, ErrPermissionDenied
	}

	dob, err := time.Parse(dateLayout, input.DateOfBirth)
	if err != nil {
		return submission.Submission{}, ErrInvalidDateOfBirth
	}

	sub := submission.Submission{
		UserID:                actor.UID,
		FullName:              input.FullName,
		Email:                 input.Email,
		PhoneNumber:           input.PhoneNumber,
		Address:               input.Address,
		DateOfBirth:           dob,
		Occupation:            input.Occupation,
		Purpose:               input.Purpose,
		EmergencyContactName:  input.EmergencyContactName,
		EmergencyContactPhone: input.EmergencyContactPhone,
		PreviousApplications:  input.PreviousApplications,
		AdditionalNotes:       input.AdditionalNotes,
		Status:                submission.StatusSubmitted,
	}
	if documentKey != "" {
		sub.DocumentKey = &documentKey
	}

	// The creator is the owner, not staff: no audit entry here.
	return sub, s.Repos.Submission.Create(&sub)
}

// Get returns a submission the actor is allowed to see. A CSC view is a
// qualifying staff interaction and leaves a "viewed" audit entry.
func (s *SubmissionService) Get(actor user.User, id uint) (submission.Submission, error) {
	sub, err := s.Repos.Submission.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return submission.Submission{}, ErrSubmissionNotFound
		}
		return submission.Submission{}, err
	}

	if !policy.Allowed(actor.Role, actor.UID, policy.ActionViewForm, sub.UserID) {
		return submission.Submission{}, ErrPermissionDenied
	}

	if actor.Role == user.RoleCSC {
		entry := &audit.CSCAction{
			SubmissionID: sub.ID,
			ActorID:      actor.UID,
			Action:       audit.ActionViewed,
		}
		if err := s.Repos.Audit.CreateAction(entry); err != nil {
			return submission.Submission{}, err
		}
	}

	return sub, nil
}

func (s *SubmissionService) Update(actor user.User, id uint, input submission.UpdateSubmissionDTO) (submission.Submission, error) {
	if !policy.Allowed(actor.Role, actor.UID, policy.ActionEditForm, 0) {
		return submission.Submission{}, ErrPermissionDenied
	}
	if input.Status != nil && !submission.Status(*input.Status).Valid() {
		return submission.Submission{}, ErrInvalidStatus
	}
	if input.DateOfBirth != nil {
		if _, err := time.Parse(dateLayout, *input.DateOfBirth); err != nil {
			return submission.Submission{}, ErrInvalidDateOfBirth
		}
	}

	var updated submission.Submission
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		sub, err := tx.Submission.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSubmissionNotFound
			}
			return err
		}

		before, err := json.Marshal(sub)
		if err != nil {
			return err
		}

		applyUpdate(&sub, input)

		if err := tx.Submission.Save(&sub); err != nil {
			return err
		}

		after, err := json.Marshal(sub)
		if err != nil {
			return err
		}

		entry := &audit.CSCAction{
			SubmissionID: sub.ID,
			ActorID:      actor.UID,
			Action:       audit.ActionEdited,
			OldData:      before,
			NewData:      after,
			Notes:        "Form updated by " + actor.Username,
		}
		if err := tx.Audit.CreateAction(entry); err != nil {
			return err
		}

		updated = sub
		return nil
	})
	return updated, err
}

// Complete forces the terminal status. Calling it on an already completed
// form is rejected so the audit trail never claims the same transition
// twice.
func (s *SubmissionService) Complete(actor user.User, id uint) (submission.Submission, error) {
	if !policy.Allowed(actor.Role, actor.UID, policy.ActionMarkCompleted, 0) {
		return submission.Submission{}, ErrPermissionDenied
	}

	var completed submission.Submission
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		sub, err := tx.Submission.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSubmissionNotFound
			}
			return err
		}

		if sub.Status == submission.StatusCompleted {
			return ErrAlreadyCompleted
		}

		sub.Status = submission.StatusCompleted
		if err := tx.Submission.Save(&sub); err != nil {
			return err
		}

		entry := &audit.CSCAction{
			SubmissionID: sub.ID,
			ActorID:      actor.UID,
			Action:       audit.ActionSubmitted,
			Notes:        "Form completed by " + actor.Username,
		}
		if err := tx.Audit.CreateAction(entry); err != nil {
			return err
		}

		completed = sub
		return nil
	})
	return completed, err
}

func (s *SubmissionService) Comment(actor user.User, id uint, content string) (submission.Submission, error) {
	if !policy.Allowed(actor.Role, actor.UID, policy.ActionCommentForm, 0) {
		return submission.Submission{}, ErrPermissionDenied
	}

	var commented submission.Submission
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		sub, err := tx.Submission.FindByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSubmissionNotFound
			}
			return err
		}

		if sub.Comments == nil || *sub.Comments == "" {
			sub.Comments = &content
		} else {
			joined := *sub.Comments + "\n" + content
			sub.Comments = &joined
		}
		if err := tx.Submission.Save(&sub); err != nil {
			return err
		}

		entry := &audit.CSCAction{
			SubmissionID: sub.ID,
			ActorID:      actor.UID,
			Action:       audit.ActionCommented,
			Notes:        content,
		}
		if err := tx.Audit.CreateAction(entry); err != nil {
			return err
		}

		commented = sub
		return nil
	})
	return commented, err
}

// DocumentKey resolves the attached file's object key under the same
// visibility rule as viewing. It is not a staff lifecycle interaction, so
// no audit entry is written.
func (s *SubmissionService) DocumentKey(actor user.User, id uint) (string, error) {
	sub, err := s.Repos.Submission.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrSubmissionNotFound
		}
		return "", err
	}

	if !policy.Allowed(actor.Role, actor.UID, policy.ActionViewForm, sub.UserID) {
		return "", ErrPermissionDenied
	}
	if sub.DocumentKey == nil || *sub.DocumentKey == "" {
		return "", ErrNoDocument
	}
	return *sub.DocumentKey, nil
}

func (s *SubmissionService) ListOwn(actor user.User, page, limit int) ([]submission.Submission, error) {
	if !policy.Allowed(actor.Role, actor.UID, policy.ActionListOwnForms, actor.UID) {
		return nil, ErrPermissionDenied
	}
	return s.Repos.Submission.FindByUser(actor.UID, page, limit)
}

func (s *SubmissionService) UserDashboard(actor user.User) (submission.UserDashboard, error) {
	if !policy.Allowed(actor.Role, actor.UID, policy.ActionDashboardUser, actor.UID) {
		return submission.UserDashboard{}, ErrPermissionDenied
	}

	total, err := s.Repos.Submission.CountByUser(actor.UID)
	if err != nil {
		return submission.UserDashboard{}, err
	}
	done, err := s.Repos.Submission.CountByUserAndStatus(actor.UID, submission.StatusCompleted)
	if err != nil {
		return submission.UserDashboard{}, err
	}
	recent, err := s.Repos.Submission.FindByUser(actor.UID, 1, 5)
	if err != nil {
		return submission.UserDashboard{}, err
	}

	return submission.UserDashboard{
		TotalForms:     total,
		CompletedForms: done,
		PendingForms:   total - done,
		RecentForms:    recent,
	}, nil
}

func (s *SubmissionService) CSCDashboard(actor user.User, pendingPage, completedPage, limit int) (submission.CSCDashboard, error) {
	if !policy.Allowed(actor.Role, actor.UID, policy.ActionDashboardCSC, 0) {
		return submission.CSCDashboard{}, ErrPermissionDenied
	}

	pending, err := s.Repos.Submission.ListPending(pendingPage, limit)
	if err != nil {
		return submission.CSCDashboard{}, err
	}
	done, err := s.Repos.Submission.ListCompleted(completedPage, limit)
	if err != nil {
		return submission.CSCDashboard{}, err
	}

	return submission.CSCDashboard{
		PendingForms:   pending,
		CompletedForms: done,
	}, nil
}

func applyUpdate(sub *submission.Submission, input submission.UpdateSubmissionDTO) {
	if input.FullName != nil {
		sub.FullName = *input.FullName
	}
	if input.Email != nil {
		sub.Email = *input.Email
	}
	if input.PhoneNumber != nil {
		sub.PhoneNumber = *input.PhoneNumber
	}
	if input.Address != nil {
		sub.Address = *input.Address
	}
	if input.DateOfBirth != nil {
		dob, _ := time.Parse(dateLayout, *input.DateOfBirth)
		sub.DateOfBirth = dob
	}
	if input.Occupation != nil {
		sub.Occupation = *input.Occupation
	}
	if input.Purpose != nil {
		sub.Purpose = *input.Purpose
	}
	if input.EmergencyContactName != nil {
		sub.EmergencyContactName = input.EmergencyContactName
	}
	if input.EmergencyContactPhone != nil {
		sub.EmergencyContactPhone = input.EmergencyContactPhone
	}
	if input.PreviousApplications != nil {
		sub.PreviousApplications = *input.PreviousApplications
	}
	if input.AdditionalNotes != nil {
		sub.AdditionalNotes = input.AdditionalNotes
	}
	if input.Status != nil {
		sub.Status = submission.Status(*input.Status)
	}
	if input.Comments != nil {
		sub.Comments = input.Comments
	}
}
