package application

import (
	"github.com/cscportal/portal-go/internal/domain/audit"
	"github.com/cscportal/portal-go/internal/domain/user"
	"github.com/cscportal/portal-go/internal/policy"
	"github.com/cscportal/portal-go/internal/repository"
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

func (s *AuditService) QueryActions(actor user.User, params repository.AuditQueryParams) ([]audit.CSCAction, error) {
	if !policy.Allowed(actor.Role, actor.UID, policy.ActionQueryAuditLog, 0) {
		return nil, ErrPermissionDenied
	}
	return s.Repos.Audit.GetActions(params)
}
