package repository

import (
	"time"

	"github.com/cscportal/portal-go/internal/domain/audit"
	"gorm.io/gorm"
)

type AuditQueryParams struct {
	SubmissionID *uint
	ActorID      *uint
	Action       *string
	StartTime    *time.Time
	EndTime      *time.Time
	Limit        int
	Offset       int
}

// AuditRepo is append-only: entries can be created and queried, never
// mutated or removed.
type AuditRepo interface {
	GetActions(params AuditQueryParams) ([]audit.CSCAction, error)
	CreateAction(entry *audit.CSCAction) error
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{db: db}
}

func (r *DBAuditRepo) GetActions(params AuditQueryParams) ([]audit.CSCAction, error) {
	var actions []audit.CSCAction
	query := r.db.Model(&audit.CSCAction{})

	if params.SubmissionID != nil {
		query = query.Where("submission_id = ?", *params.SubmissionID)
	}
	if params.ActorID != nil {
		query = query.Where("actor_id = ?", *params.ActorID)
	}
	if params.Action != nil {
		query = query.Where("action = ?", *params.Action)
	}
	if params.StartTime != nil {
		query = query.Where("created_at >= ?", *params.StartTime)
	}
	if params.EndTime != nil {
		query = query.Where("created_at <= ?", *params.EndTime)
	}

	query = query.Order("created_at DESC")
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	err := query.Preload("Actor").Find(&actions).Error
	return actions, err
}

func (r *DBAuditRepo) CreateAction(entry *audit.CSCAction) error {
	return r.db.Create(entry).Error
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	if tx == nil {
		return r
	}
	return &DBAuditRepo{db: tx}
}
