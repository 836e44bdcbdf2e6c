package repository

import (
	"github.com/kaiwenliu/careconnect-go/internal/domain/category"
	"gorm.io/gorm"
)

type CategoryRepo interface {
	GetCategoryByID(id uint) (category.Category, error)
	GetCategoryByName(name string) (category.Category, error)
	CreateCategory(c *category.Category) error
	SaveCategory(c *category.Category) error
	DeleteCategory(id uint) error
	ListCategories() ([]category.Category, error)
	SearchCategories(text string) ([]category.Category, error)
	WithTx(tx *gorm.DB) CategoryRepo
}

type DBCategoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *DBCategoryRepo {
	return &DBCategoryRepo{
		db: db,
	}
}

func (r *DBCategoryRepo) GetCategoryByID(id uint) (category.Category, error) {
	var cat category.Category
	err := r.db.First(&cat, id).Error
	return cat, err
}

func (r *DBCategoryRepo) GetCategoryByName(name string) (category.Category, error) {
	var cat category.Category
	err := r.db.Where("name = ?", name).First(&cat).Error
	return cat, err
}

func (r *DBCategoryRepo) CreateCategory(c *category.Category) error {
	return r.db.Create(c).Error
}

func (r *DBCategoryRepo) SaveCategory(c *category.Category) error {
	return r.db.Save(c).Error
}

func (r *DBCategoryRepo) DeleteCategory(id uint) error {
	return r.db.Delete(&category.Category{}, id).Error
}

func (r *DBCategoryRepo) ListCategories() ([]category.Category, error) {
	var cats []category.Category
	err := r.db.Order("name").Find(&cats).Error
	return cats, err
}

func (r *DBCategoryRepo) SearchCategories(text string) ([]category.Category, error) {
	query := r.db.Model(&category.Category{})
	if text != "" {
		query = query.Where("name ILIKE ?", "%"+text+"%")
	}

	var cats []category.Category
	err := query.Order("name").Find(&cats).Error
	return cats, err
}

func (r *DBCategoryRepo) WithTx(tx *gorm.DB) CategoryRepo {
	if tx == nil {
		return r
	}
	return &DBCategoryRepo{
		db: tx,
	}
}
