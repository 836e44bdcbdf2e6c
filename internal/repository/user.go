package repository

import (
	"github.com/kaiwenliu/careconnect-go/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(id uint) (user.User, error)
	GetUserByUsername(username string) (user.User, error)
	GetUserByRoleAndUsername(role, username string) (user.User, error)
	CreateUser(u *user.User) error
	SaveUser(u *user.User) error
	SaveProfile(p *user.Profile) error
	DeleteUser(id uint) error
	SearchUsers(text string, page, perPage int) ([]user.User, int64, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.Preload("Profile").First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	err := r.db.Where("username = ?", username).First(&u).Error
	return u, err
}

func (r *DBUserRepo) GetUserByRoleAndUsername(role, username string) (user.User, error) {
	var u user.User
	err := r.db.Preload("Profile").
		Where("role = ? AND username = ?", role, username).
		First(&u).Error
	return u, err
}

func (r *DBUserRepo) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) SaveProfile(p *user.Profile) error {
	return r.db.Save(p).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return r.db.Delete(&user.User{}, id).Error
}

func (r *DBUserRepo) SearchUsers(text string, page, perPage int) ([]user.User, int64, error) {
	query := r.db.Model(&user.User{}).Preload("Profile")
	if text != "" {
		like := "%" + text + "%"
		query = query.
			Joins("LEFT JOIN profiles ON profiles.user_id = users.id").
			Where("users.username ILIKE ? OR users.role ILIKE ? OR profiles.full_name ILIKE ? OR profiles.email ILIKE ?",
				like, like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []user.User
	err := query.
		Order("users.id").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&users).Error
	return users, total, err
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
