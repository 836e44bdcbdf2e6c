package repository

import (
	"time"

	"github.com/kaiwenliu/careconnect-go/internal/domain/request"
	"gorm.io/gorm"
)

type RequestRepo interface {
	GetRequestByID(id uint) (request.Request, error)
	GetOpenRequestByID(id uint) (request.Request, error)
	CreateRequest(r *request.Request) error
	UpdateRequestDetails(r *request.Request) error
	DeleteRequest(id uint) error
	IncrementViews(id uint) error
	IncrementShortlist(id uint) error
	DecrementShortlist(id uint) error
	AcceptRequest(id, csrID uint, at time.Time) (bool, error)
	CompleteRequest(id uint, at time.Time) (bool, error)
	SearchOpenRequests(categoryID *uint, text string, page, perPage int) ([]request.Request, int64, error)
	ListRequestsByPin(pinID uint, text string) ([]request.Request, error)
	NullifyCategoryReferences(categoryID uint) error
	ListCreationTimes() ([]time.Time, error)
	WithTx(tx *gorm.DB) RequestRepo
}

type DBRequestRepo struct {
	db *gorm.DB
}

func NewRequestRepo(db *gorm.DB) *DBRequestRepo {
	return &DBRequestRepo{
		db: db,
	}
}

func (r *DBRequestRepo) GetRequestByID(id uint) (request.Request, error) {
	var req request.Request
	err := r.db.First(&req, id).Error
	return req, err
}

func (r *DBRequestRepo) GetOpenRequestByID(id uint) (request.Request, error) {
	var req request.Request
	err := r.db.Where("status = ?", request.StatusOpen).First(&req, id).Error
	return req, err
}

func (r *DBRequestRepo) CreateRequest(req *request.Request) error {
	return r.db.Create(req).Error
}

// UpdateRequestDetails writes only the owner-editable columns. Status,
// acceptance and the counters are written concurrently by other paths
// and must never ride along on an edit.
func (r *DBRequestRepo) UpdateRequestDetails(req *request.Request) error {
	return r.db.Model(req).
		Select("title", "description", "category_id").
		Updates(req).Error
}

func (r *DBRequestRepo) DeleteRequest(id uint) error {
	return r.db.Delete(&request.Request{}, id).Error
}

// IncrementViews bumps the counter in a single UPDATE so concurrent
// viewers never lose increments to read-modify-write races.
func (r *DBRequestRepo) IncrementViews(id uint) error {
	return r.db.Model(&request.Request{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

func (r *DBRequestRepo) IncrementShortlist(id uint) error {
	return r.db.Model(&request.Request{}).
		Where("id = ?", id).
		UpdateColumn("shortlist_count", gorm.Expr("shortlist_count + 1")).Error
}

// DecrementShortlist floors at zero inside the UPDATE predicate.
func (r *DBRequestRepo) DecrementShortlist(id uint) error {
	return r.db.Model(&request.Request{}).
		Where("id = ? AND shortlist_count > 0", id).
		UpdateColumn("shortlist_count", gorm.Expr("shortlist_count - 1")).Error
}

// AcceptRequest is a compare-and-set: it only succeeds while the request
// is still open and unaccepted, so two racing CSRs get exactly one winner.
func (r *DBRequestRepo) AcceptRequest(id, csrID uint, at time.Time) (bool, error) {
	res := r.db.Model(&request.Request{}).
		Where("id = ? AND status = ? AND accepted_by_id IS NULL", id, request.StatusOpen).
		Updates(map[string]interface{}{
			"accepted_by_id": csrID,
			"accepted_at":    at,
		})
	return res.RowsAffected == 1, res.Error
}

// CompleteRequest flips status only when still open. The returned flag
// is the caller's guarantee that at most one completion wins, which is
// what keeps the history log at exactly one row per request.
func (r *DBRequestRepo) CompleteRequest(id uint, at time.Time) (bool, error) {
	res := r.db.Model(&request.Request{}).
		Where("id = ? AND status = ?", id, request.StatusOpen).
		Updates(map[string]interface{}{
			"status":     request.StatusCompleted,
			"updated_at": at,
		})
	return res.RowsAffected == 1, res.Error
}

func (r *DBRequestRepo) SearchOpenRequests(categoryID *uint, text string, page, perPage int) ([]request.Request, int64, error) {
	query := r.db.Model(&request.Request{}).Where("status = ?", request.StatusOpen)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if text != "" {
		like := "%" + text + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []request.Request
	err := query.
		Order("created_at DESC, id DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&items).Error
	return items, total, err
}

func (r *DBRequestRepo) ListRequestsByPin(pinID uint, text string) ([]request.Request, error) {
	query := r.db.Where("pin_id = ?", pinID)
	if text != "" {
		like := "%" + text + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}

	var items []request.Request
	err := query.Order("created_at DESC, id DESC").Find(&items).Error
	return items, err
}

func (r *DBRequestRepo) NullifyCategoryReferences(categoryID uint) error {
	return r.db.Model(&request.Request{}).
		Where("category_id = ?", categoryID).
		UpdateColumn("category_id", nil).Error
}

func (r *DBRequestRepo) ListCreationTimes() ([]time.Time, error) {
	var times []time.Time
	err := r.db.Model(&request.Request{}).Order("created_at").Pluck("created_at", &times).Error
	return times, err
}

func (r *DBRequestRepo) WithTx(tx *gorm.DB) RequestRepo {
	if tx == nil {
		return r
	}
	return &DBRequestRepo{
		db: tx,
	}
}
