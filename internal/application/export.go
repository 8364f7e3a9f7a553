package application

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cscportal/portal-go/internal/domain/submission"
	"github.com/cscportal/portal-go/internal/domain/user"
	"github.com/cscportal/portal-go/internal/policy"
	"github.com/cscportal/portal-go/internal/repository"
	"github.com/go-pdf/fpdf"
	"gorm.io/gorm"
)

var ErrNotEligible = errors.New("document download is only available for completed forms")

// ExportService serializes completed submissions into downloadable PDF
// documents. It reads the record; it never participates in the lifecycle.
type ExportService struct {
	Repos *repository.Repos
}

func NewExportService(repos *repository.Repos) *ExportService {
	return &ExportService{
		Repos: repos,
	}
}

// Export renders the submission as a PDF. Both the visibility rule and
// the completed-status rule must hold.
func (s *ExportService) Export(actor user.User, id uint) ([]byte, string, error) {
	sub, err := s.Repos.Submission.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrSubmissionNotFound
		}
		return nil, "", err
	}

	if !policy.Allowed(actor.Role, actor.UID, policy.ActionDownloadDocument, sub.UserID) {
		return nil, "", ErrPermissionDenied
	}
	if !policy.ExportEligible(sub.Status) {
		return nil, "", ErrNotEligible
	}

	data, err := renderPDF(sub)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("form_%d.pdf", sub.ID), nil
}

func renderPDF(sub submission.Submission) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	// Pin document metadata to the record so identical record state yields
	// identical bytes.
	pdf.SetCreationDate(sub.UpdatedAt)
	pdf.SetModificationDate(sub.UpdatedAt)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Form Submission #%d", sub.ID), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range exportLines(sub) {
		pdf.MultiCell(0, 6, line, "", "L", false)
		pdf.Ln(1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// exportLines is the fixed field set of the export document. Optional
// fields appear only when present.
func exportLines(sub submission.Submission) []string {
	lines := []string{
		"Full Name: " + sub.FullName,
		"Email: " + sub.Email,
		"Phone: " + sub.PhoneNumber,
		"Date of Birth: " + sub.DateOfBirth.Format("2006-01-02"),
		"Occupation: " + sub.Occupation,
		"Address: " + sub.Address,
		"Purpose: " + sub.Purpose,
		"Submission Date: " + sub.CreatedAt.Format("2006-01-02 15:04:05"),
		"Status: " + sub.Status.Display(),
	}

	if sub.EmergencyContactName != nil && *sub.EmergencyContactName != "" {
		ec := "Emergency Contact: " + *sub.EmergencyContactName
		if sub.EmergencyContactPhone != nil && *sub.EmergencyContactPhone != "" {
			ec += " - " + *sub.EmergencyContactPhone
		}
		lines = append(lines, ec)
	}
	if sub.AdditionalNotes != nil && *sub.AdditionalNotes != "" {
		lines = append(lines, "Additional Notes: "+*sub.AdditionalNotes)
	}
	if sub.Comments != nil && *sub.Comments != "" {
		lines = append(lines, "Comments: "+*sub.Comments)
	}

	return lines
}
