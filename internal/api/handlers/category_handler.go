package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaiwenliu/careconnect-go/internal/application"
	"github.com/kaiwenliu/careconnect-go/internal/domain/category"
	"github.com/kaiwenliu/careconnect-go/pkg/response"
	"github.com/kaiwenliu/careconnect-go/pkg/utils"
)

type CategoryHandler struct {
	svc *application.CategoryService
}

func NewCategoryHandler(svc *application.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// ListCategories godoc
// @Summary List service categories
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Param q query string false "Filter by name"
// @Success 200 {array} category.Category
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var (
		cats []category.Category
		err  error
	)
	if q := c.Query("q"); q != "" {
		cats, err = h.svc.Search(q)
	} else {
		cats, err = h.svc.List()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, cats)
}

// GetCategory godoc
// @Summary Get a category by id
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} category.Category
// @Failure 400 {object} response.ErrorResponse "Invalid category id"
// @Failure 404 {object} response.ErrorResponse "Category not found"
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid category id"})
		return
	}

	cat, err := h.svc.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Category not found"})
		return
	}
	c.JSON(http.StatusOK, cat)
}

// CreateCategory godoc
// @Summary Create a service category
// @Tags categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body category.CreateCategoryDTO true "Category name"
// @Success 201 {object} category.Category
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Category name already exists"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /pm/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input category.CreateCategoryDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	cat, err := h.svc.Create(c, input)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// UpdateCategory godoc
// @Summary Rename a service category
// @Tags categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param input body category.UpdateCategoryDTO true "New name"
// @Success 200 {object} category.Category
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 404 {object} response.ErrorResponse "Category not found"
// @Failure 409 {object} response.ErrorResponse "Category name already exists"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /pm/categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid category id"})
		return
	}

	var input category.UpdateCategoryDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	cat, err := h.svc.Update(c, id, input)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// DeleteCategory godoc
// @Summary Delete a service category
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Param id path int true "Category ID"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse "Invalid category id"
// @Failure 404 {object} response.ErrorResponse "Category not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /pm/categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid category id"})
		return
	}

	if err := h.svc.Delete(c, id); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrCategoryNameRequired):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrCategoryNameTaken):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
