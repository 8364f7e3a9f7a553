package submission

type CreateSubmissionDTO struct {
	FullName              string  `form:"full_name" json:"full_name" binding:"required,max=100"`
	Email                 string  `form:"email" json:"email" binding:"required,email"`
	PhoneNumber           string  `form:"phone_number" json:"phone_number" binding:"required,max=15"`
	Address               string  `form:"address" json:"address" binding:"required"`
	DateOfBirth           string  `form:"date_of_birth" json:"date_of_birth" binding:"required"`
	Occupation            string  `form:"occupation" json:"occupation" binding:"required,max=100"`
	Purpose               string  `form:"purpose" json:"purpose" binding:"required"`
	EmergencyContactName  *string `form:"emergency_contact_name" json:"emergency_contact_name" binding:"omitempty,max=100"`
	EmergencyContactPhone *string `form:"emergency_contact_phone" json:"emergency_contact_phone" binding:"omitempty,max=15"`
	PreviousApplications  bool    `form:"previous_applications" json:"previous_applications"`
	AdditionalNotes       *string `form:"additional_notes" json:"additional_notes"`
}

type UpdateSubmissionDTO struct {
	FullName              *string `json:"full_name" binding:"omitempty,max=100"`
	Email                 *string `json:"email" binding:"omitempty,email"`
	PhoneNumber           *string `json:"phone_number" binding:"omitempty,max=15"`
	Address               *string `json:"address"`
	DateOfBirth           *string `json:"date_of_birth"`
	Occupation            *string `json:"occupation" binding:"omitempty,max=100"`
	Purpose               *string `json:"purpose"`
	EmergencyContactName  *string `json:"emergency_contact_name" binding:"omitempty,max=100"`
	EmergencyContactPhone *string `json:"emergency_contact_phone" binding:"omitempty,max=15"`
	PreviousApplications  *bool   `json:"previous_applications"`
	AdditionalNotes       *string `json:"additional_notes"`
	Status                *string `json:"status" binding:"omitempty,oneof=submitted re-submitted underprocess action-needed completed"`
	Comments              *string `json:"comments"`
}

type CommentDTO struct {
	Content string `json:"content" binding:"required"`
}

// UserDashboard is the applicant dashboard payload: counters plus the
// latest few submissions.
type UserDashboard struct {
	TotalForms     int64        `json:"total_forms"`
	CompletedForms int64        `json:"completed_forms"`
	PendingForms   int64        `json:"pending_forms"`
	RecentForms    []Submission `json:"recent_forms"`
}

// CSCDashboard splits the queue the way staff work it: everything still in
// flight, then everything already completed.
type CSCDashboard struct {
	PendingForms   []Submission `json:"pending_forms"`
	CompletedForms []Submission `json:"completed_forms"`
}
