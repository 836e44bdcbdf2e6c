package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User      UserRepo
	Category  CategoryRepo
	Request   RequestRepo
	Shortlist ShortlistRepo
	History   HistoryRepo
	Audit     AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:      NewUserRepo(db),
		Category:  NewCategoryRepo(db),
		Request:   NewRequestRepo(db),
		Shortlist: NewShortlistRepo(db),
		History:   NewHistoryRepo(db),
		Audit:     NewAuditRepo(db),
		db:        db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:      r.User.WithTx(tx),
		Category:  r.Category.WithTx(tx),
		Request:   r.Request.WithTx(tx),
		Shortlist: r.Shortlist.WithTx(tx),
		History:   r.History.WithTx(tx),
		Audit:     r.Audit.WithTx(tx),
		db:        tx,
	}
}

// ExecTx runs fn inside one transaction; every state-changing service
// operation goes through here so readers never observe partial updates.
// With no underlying connection (mocked repos) fn runs directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
