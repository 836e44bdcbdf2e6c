package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaiwenliu/careconnect-go/internal/application"
	"github.com/kaiwenliu/careconnect-go/pkg/response"
	"github.com/kaiwenliu/careconnect-go/pkg/utils"
)

type ShortlistHandler struct {
	svc *application.ShortlistService
}

func NewShortlistHandler(svc *application.ShortlistService) *ShortlistHandler {
	return &ShortlistHandler{svc: svc}
}

// AddShortlist godoc
// @Summary Bookmark a request; repeating is a no-op
// @Tags csr
// @Security BearerAuth
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} response.MessageResponse "Request shortlisted"
// @Failure 400 {object} response.ErrorResponse "Invalid request id"
// @Failure 404 {object} response.ErrorResponse "Request not found"
// @Router /csr/shortlist/{id} [post]
func (h *ShortlistHandler) AddShortlist(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid request id"})
		return
	}

	if err := h.svc.Add(c, uid, id); err != nil {
		if errors.Is(err, application.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Request shortlisted"})
}

// RemoveShortlist godoc
// @Summary Remove a bookmark
// @Tags csr
// @Security BearerAuth
// @Produce json
// @Param id path int true "Request ID"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse "Invalid request id"
// @Failure 404 {object} response.ErrorResponse "Not shortlisted"
// @Router /csr/shortlist/{id} [delete]
func (h *ShortlistHandler) RemoveShortlist(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid request id"})
		return
	}

	removed, err := h.svc.Remove(c, uid, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Not shortlisted"})
		return
	}
	c.Status(http.StatusNoContent)
}

// CheckShortlist godoc
// @Summary Whether the caller has bookmarked the request
// @Tags csr
// @Security BearerAuth
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} response.ErrorResponse "Invalid request id"
// @Router /csr/shortlist/{id} [get]
func (h *ShortlistHandler) CheckShortlist(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid request id"})
		return
	}

	saved, err := h.svc.Exists(uid, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

// ListShortlist godoc
// @Summary List the caller's bookmarked requests
// @Tags csr
// @Security BearerAuth
// @Produce json
// @Param q query string false "Full text filter on the bookmarked request"
// @Param category_id query int false "Filter by category"
// @Success 200 {array} shortlist.Shortlist
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /csr/shortlist [get]
func (h *ShortlistHandler) ListShortlist(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var categoryID *uint
	if catID, err := utils.ParseQueryUintParam(c, "category_id"); err == nil {
		categoryID = &catID
	}

	q := c.Query("q")
	if q == "" && categoryID == nil {
		items, err := h.svc.ListForCsr(uid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
		return
	}

	items, err := h.svc.SearchForCsr(uid, q, categoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}
