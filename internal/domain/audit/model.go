package audit

import (
	"time"

	"github.com/cscportal/portal-go/internal/domain/user"
	"gorm.io/datatypes"
)

type Action string

const (
	ActionViewed    Action = "viewed"
	ActionEdited    Action = "edited"
	ActionSubmitted Action = "submitted"
	ActionCommented Action = "commented"
)

// CSCAction is an append-only record of a staff interaction with a form
// submission. Entries are never updated or deleted while the submission
// exists; they go away only with the submission itself.
type CSCAction struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	SubmissionID uint           `gorm:"not null;index" json:"submission_id"`
	ActorID      uint           `gorm:"not null;index" json:"actor_id"`
	Actor        user.User      `gorm:"foreignKey:ActorID" json:"actor"`
	Action       Action         `gorm:"size:20;not null" json:"action"`
	OldData      datatypes.JSON `json:"old_data,omitempty"`
	NewData      datatypes.JSON `json:"new_data,omitempty"`
	Notes        string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}
