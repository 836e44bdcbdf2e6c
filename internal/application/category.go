package application

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kaiwenliu/careconnect-go/internal/domain/category"
	"github.com/kaiwenliu/careconnect-go/internal/repository"
	"github.com/kaiwenliu/careconnect-go/pkg/utils"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound     = errors.New("category not found")
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrCategoryNameTaken    = errors.New("category name already exists")
)

type CategoryService struct {
	Repos *repository.Repos
}

func NewCategoryService(repos *repository.Repos) *CategoryService {
	return &CategoryService{
		Repos: repos,
	}
}

func (s *CategoryService) List() ([]category.Category, error) {
	return s.Repos.Category.ListCategories()
}

func (s *CategoryService) Search(text string) ([]category.Category, error) {
	return s.Repos.Category.SearchCategories(strings.TrimSpace(text))
}

func (s *CategoryService) Get(id uint) (*category.Category, error) {
	cat, err := s.Repos.Category.GetCategoryByID(id)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	return &cat, nil
}

func (s *CategoryService) checkName(name string, selfID uint) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrCategoryNameRequired
	}
	existing, err := s.Repos.Category.GetCategoryByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return name, nil
		}
		return "", err
	}
	if existing.ID != selfID {
		return "", ErrCategoryNameTaken
	}
	return name, nil
}

func (s *CategoryService) Create(c *gin.Context, input category.CreateCategoryDTO) (*category.Category, error) {
	name, err := s.checkName(input.Name, 0)
	if err != nil {
		return nil, err
	}

	cat := &category.Category{Name: name}
	if err := s.Repos.Category.CreateCategory(cat); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "category", fmt.Sprintf("id=%d", cat.ID), nil, cat, "", s.Repos.Audit)

	return cat, nil
}

func (s *CategoryService) Update(c *gin.Context, id uint, input category.UpdateCategoryDTO) (*category.Category, error) {
	cat, err := s.Repos.Category.GetCategoryByID(id)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	oldCat := cat
	name, err := s.checkName(input.Name, id)
	if err != nil {
		return nil, err
	}
	cat.Name = name

	if err := s.Repos.Category.SaveCategory(&cat); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", "category", fmt.Sprintf("id=%d", cat.ID), oldCat, cat, "", s.Repos.Audit)

	return &cat, nil
}

// Delete removes the category and detaches referencing requests in the
// same transaction. History rows keep their recorded category id.
func (s *CategoryService) Delete(c *gin.Context, id uint) error {
	cat, err := s.Repos.Category.GetCategoryByID(id)
	if err != nil {
		return ErrCategoryNotFound
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Request.NullifyCategoryReferences(id); err != nil {
			return err
		}
		return tx.Category.DeleteCategory(id)
	})
	if err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "category", fmt.Sprintf("id=%d", id), cat, nil, "", s.Repos.Audit)

	return nil
}
