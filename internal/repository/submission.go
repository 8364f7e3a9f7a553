package repository

import (
	"github.com/cscportal/portal-go/internal/domain/submission"
	"gorm.io/gorm"
)

type SubmissionRepo interface {
	Create(sub *submission.Submission) error
	FindByID(id uint) (submission.Submission, error)
	FindByUser(userID uint, page, limit int) ([]submission.Submission, error)
	CountByUser(userID uint) (int64, error)
	CountByUserAndStatus(userID uint, status submission.Status) (int64, error)
	ListPending(page, limit int) ([]submission.Submission, error)
	ListCompleted(page, limit int) ([]submission.Submission, error)
	Save(sub *submission.Submission) error
	WithTx(tx *gorm.DB) SubmissionRepo
}

type DBSubmissionRepo struct {
	db *gorm.DB
}

func NewSubmissionRepo(db *gorm.DB) *DBSubmissionRepo {
	return &DBSubmissionRepo{db: db}
}

func paginate(query *gorm.DB, page, limit int) *gorm.DB {
	if limit <= 0 {
		return query
	}
	if page < 1 {
		page = 1
	}
	return query.Offset((page - 1) * limit).Limit(limit)
}

func (r *DBSubmissionRepo) Create(sub *submission.Submission) error {
	return r.db.Create(sub).Error
}

func (r *DBSubmissionRepo) FindByID(id uint) (submission.Submission, error) {
	var sub submission.Submission
	err := r.db.Preload("User").First(&sub, id).Error
	return sub, err
}

func (r *DBSubmissionRepo) FindByUser(userID uint, page, limit int) ([]submission.Submission, error) {
	var subs []submission.Submission
	query := r.db.Where("user_id = ?", userID).Order("created_at desc")
	err := paginate(query, page, limit).Find(&subs).Error
	return subs, err
}

func (r *DBSubmissionRepo) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&submission.Submission{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *DBSubmissionRepo) CountByUserAndStatus(userID uint, status submission.Status) (int64, error) {
	var count int64
	err := r.db.Model(&submission.Submission{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	return count, err
}

func (r *DBSubmissionRepo) ListPending(page, limit int) ([]submission.Submission, error) {
	var subs []submission.Submission
	query := r.db.Preload("User").
		Where("status <> ?", submission.StatusCompleted).
		Order("created_at desc")
	err := paginate(query, page, limit).Find(&subs).Error
	return subs, err
}

func (r *DBSubmissionRepo) ListCompleted(page, limit int) ([]submission.Submission, error) {
	var subs []submission.Submission
	query := r.db.Preload("User").
		Where("status = ?", submission.StatusCompleted).
		Order("created_at desc")
	err := paginate(query, page, limit).Find(&subs).Error
	return subs, err
}

func (r *DBSubmissionRepo) Save(sub *submission.Submission) error {
	return r.db.Save(sub).Error
}

func (r *DBSubmissionRepo) WithTx(tx *gorm.DB) SubmissionRepo {
	if tx == nil {
		return r
	}
	return &DBSubmissionRepo{db: tx}
}
