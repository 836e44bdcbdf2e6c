package repository

import (
	"time"

	"github.com/kaiwenliu/careconnect-go/internal/domain/history"
	"gorm.io/gorm"
)

type HistoryRepo interface {
	CreateHistory(h *history.ServiceHistory) error
	CountForRequest(requestID uint) (int64, error)
	ListForPin(pinID uint, f history.Filter) ([]history.ServiceHistory, error)
	ListForCsr(csrID uint, f history.Filter, page, perPage int) ([]history.ServiceHistory, int64, error)
	ListCompletionTimes() ([]time.Time, error)
	WithTx(tx *gorm.DB) HistoryRepo
}

type DBHistoryRepo struct {
	db *gorm.DB
}

func NewHistoryRepo(db *gorm.DB) *DBHistoryRepo {
	return &DBHistoryRepo{
		db: db,
	}
}

func (r *DBHistoryRepo) CreateHistory(h *history.ServiceHistory) error {
	return r.db.Create(h).Error
}

func (r *DBHistoryRepo) CountForRequest(requestID uint) (int64, error) {
	var count int64
	err := r.db.Model(&history.ServiceHistory{}).
		Where("request_id = ?", requestID).
		Count(&count).Error
	return count, err
}

func applyHistoryFilter(query *gorm.DB, f history.Filter) *gorm.DB {
	if f.CategoryID != nil {
		query = query.Where("category_id = ?", *f.CategoryID)
	}
	if f.Start != nil {
		query = query.Where("date_completed >= ?", *f.Start)
	}
	if f.End != nil {
		query = query.Where("date_completed <= ?", *f.End)
	}
	return query
}

func (r *DBHistoryRepo) ListForPin(pinID uint, f history.Filter) ([]history.ServiceHistory, error) {
	query := applyHistoryFilter(r.db.Where("pin_id = ?", pinID), f)

	var items []history.ServiceHistory
	err := query.Order("date_completed DESC, id DESC").Find(&items).Error
	return items, err
}

func (r *DBHistoryRepo) ListForCsr(csrID uint, f history.Filter, page, perPage int) ([]history.ServiceHistory, int64, error) {
	query := applyHistoryFilter(
		r.db.Model(&history.ServiceHistory{}).Where("csr_id = ?", csrID), f)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []history.ServiceHistory
	err := query.
		Order("date_completed DESC, id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&items).Error
	return items, total, err
}

func (r *DBHistoryRepo) ListCompletionTimes() ([]time.Time, error) {
	var times []time.Time
	err := r.db.Model(&history.ServiceHistory{}).Order("date_completed").Pluck("date_completed", &times).Error
	return times, err
}

func (r *DBHistoryRepo) WithTx(tx *gorm.DB) HistoryRepo {
	if tx == nil {
		return r
	}
	return &DBHistoryRepo{
		db: tx,
	}
}
