package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User       UserRepo
	Submission SubmissionRepo
	Audit      AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:       NewUserRepo(db),
		Submission: NewSubmissionRepo(db),
		Audit:      NewAuditRepo(db),
		db:         db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:       r.User.WithTx(tx),
		Submission: r.Submission.WithTx(tx),
		Audit:      r.Audit.WithTx(tx),
		db:         tx,
	}
}

// ExecTx runs fn inside a single database transaction. A Repos built
// without a db (mock-backed tests) runs fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
