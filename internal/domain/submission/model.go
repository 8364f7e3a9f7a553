package submission

import (
	"time"

	"github.com/cscportal/portal-go/internal/domain/audit"
	"github.com/cscportal/portal-go/internal/domain/user"
)

type Status string

const (
	StatusSubmitted    Status = "submitted"
	StatusResubmitted  Status = "re-submitted"
	StatusUnderProcess Status = "underprocess"
	StatusActionNeeded Status = "action-needed"
	StatusCompleted    Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusSubmitted, StatusResubmitted, StatusUnderProcess, StatusActionNeeded, StatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are exposed from s.
func (s Status) Terminal() bool {
	return s == StatusCompleted
}

// Display returns the human-readable form used on dashboards and exports.
func (s Status) Display() string {
	switch s {
	case StatusSubmitted:
		return "Submitted"
	case StatusResubmitted:
		return "Re-submitted"
	case StatusUnderProcess:
		return "Under Process"
	case StatusActionNeeded:
		return "Action Needed"
	case StatusCompleted:
		return "Completed"
	}
	return string(s)
}

// Submission is an applicant's form record. UserID is set at creation and
// never changes afterwards.
type Submission struct {
	ID                    uint              `gorm:"primaryKey" json:"id"`
	UserID                uint              `gorm:"not null;index" json:"user_id"`
	User                  user.User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user"`
	FullName              string            `gorm:"size:100;not null" json:"full_name"`
	Email                 string            `gorm:"size:100;not null" json:"email"`
	PhoneNumber           string            `gorm:"size:15;not null" json:"phone_number"`
	Address               string            `gorm:"type:text;not null" json:"address"`
	DateOfBirth           time.Time         `gorm:"type:date;not null" json:"date_of_birth"`
	Occupation            string            `gorm:"size:100;not null" json:"occupation"`
	Purpose               string            `gorm:"type:text;not null" json:"purpose"`
	EmergencyContactName  *string           `gorm:"size:100" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string           `gorm:"size:15" json:"emergency_contact_phone,omitempty"`
	PreviousApplications  bool              `gorm:"default:false" json:"previous_applications"`
	AdditionalNotes       *string           `gorm:"type:text" json:"additional_notes,omitempty"`
	Status                Status            `gorm:"size:20;default:'submitted';not null" json:"status"`
	Comments              *string           `gorm:"type:text" json:"comments,omitempty"`
	DocumentKey           *string           `gorm:"size:100" json:"document_key,omitempty"`
	Actions               []audit.CSCAction `gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE" json:"actions,omitempty"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
}
