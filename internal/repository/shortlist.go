package repository

import (
	"errors"

	"github.com/kaiwenliu/careconnect-go/internal/domain/shortlist"
	"gorm.io/gorm"
)

type ShortlistRepo interface {
	Exists(csrID, requestID uint) (bool, error)
	CreateShortlist(s *shortlist.Shortlist) error
	DeleteShortlist(csrID, requestID uint) (bool, error)
	DeleteByRequestID(requestID uint) error
	ListForCsr(csrID uint) ([]shortlist.Shortlist, error)
	SearchForCsr(csrID uint, text string, categoryID *uint) ([]shortlist.Shortlist, error)
	LatestCsrForRequest(requestID uint) (*uint, error)
	WithTx(tx *gorm.DB) ShortlistRepo
}

type DBShortlistRepo struct {
	db *gorm.DB
}

func NewShortlistRepo(db *gorm.DB) *DBShortlistRepo {
	return &DBShortlistRepo{
		db: db,
	}
}

func (r *DBShortlistRepo) Exists(csrID, requestID uint) (bool, error) {
	var count int64
	err := r.db.Model(&shortlist.Shortlist{}).
		Where("csr_id = ? AND request_id = ?", csrID, requestID).
		Count(&count).Error
	return count > 0, err
}

func (r *DBShortlistRepo) CreateShortlist(s *shortlist.Shortlist) error {
	return r.db.Create(s).Error
}

func (r *DBShortlistRepo) DeleteShortlist(csrID, requestID uint) (bool, error) {
	res := r.db.Where("csr_id = ? AND request_id = ?", csrID, requestID).
		Delete(&shortlist.Shortlist{})
	return res.RowsAffected > 0, res.Error
}

func (r *DBShortlistRepo) DeleteByRequestID(requestID uint) error {
	return r.db.Where("request_id = ?", requestID).Delete(&shortlist.Shortlist{}).Error
}

func (r *DBShortlistRepo) ListForCsr(csrID uint) ([]shortlist.Shortlist, error) {
	var items []shortlist.Shortlist
	err := r.db.Preload("Request").
		Where("csr_id = ?", csrID).
		Order("created_at DESC, id DESC").
		Find(&items).Error
	return items, err
}

func (r *DBShortlistRepo) SearchForCsr(csrID uint, text string, categoryID *uint) ([]shortlist.Shortlist, error) {
	query := r.db.Preload("Request").
		Joins("JOIN requests ON requests.id = shortlists.request_id").
		Where("shortlists.csr_id = ?", csrID)
	if text != "" {
		like := "%" + text + "%"
		query = query.Where("requests.title ILIKE ? OR requests.description ILIKE ?", like, like)
	}
	if categoryID != nil {
		query = query.Where("requests.category_id = ?", *categoryID)
	}

	var items []shortlist.Shortlist
	err := query.Order("shortlists.created_at DESC, shortlists.id DESC").Find(&items).Error
	return items, err
}

// LatestCsrForRequest returns the CSR of the most recent bookmark on the
// request, or nil when nobody shortlisted it.
func (r *DBShortlistRepo) LatestCsrForRequest(requestID uint) (*uint, error) {
	var s shortlist.Shortlist
	err := r.db.Where("request_id = ?", requestID).
		Order("created_at DESC, id DESC").
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	csrID := s.CsrID
	return &csrID, nil
}

func (r *DBShortlistRepo) WithTx(tx *gorm.DB) ShortlistRepo {
	if tx == nil {
		return r
	}
	return &DBShortlistRepo{
		db: tx,
	}
}
