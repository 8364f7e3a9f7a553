package application

import (
	"github.com/cscportal/portal-go/internal/repository"
)

type Services struct {
	User       *UserService
	Submission *SubmissionService
	Audit      *AuditService
	Export     *ExportService
}

func New(repos *repository.Repos) *Services {
	return &Services{
		User:       NewUserService(repos),
		Submission: NewSubmissionService(repos),
		Audit:      NewAuditService(repos),
		Export:     NewExportService(repos),
	}
}
