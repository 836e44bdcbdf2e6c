package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kaiwenliu/careconnect-go/internal/application"
	"github.com/kaiwenliu/careconnect-go/internal/config"
	"github.com/kaiwenliu/careconnect-go/internal/domain/history"
	"github.com/kaiwenliu/careconnect-go/pkg/response"
	"github.com/kaiwenliu/careconnect-go/pkg/utils"
)

type HistoryHandler struct {
	svc *application.HistoryService
}

func NewHistoryHandler(svc *application.HistoryService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

// parseHistoryFilter reads category_id plus start/end dates (2006-01-02).
// The end date is inclusive, so it extends to the end of that day.
func parseHistoryFilter(c *gin.Context) history.Filter {
	var f history.Filter

	if catID, err := utils.ParseQueryUintParam(c, "category_id"); err == nil {
		f.CategoryID = &catID
	}
	if s := c.Query("start"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			f.Start = &t
		}
	}
	if s := c.Query("end"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			end := t.Add(24*time.Hour - time.Nanosecond)
			f.End = &end
		}
	}
	return f
}

// ListPinHistory godoc
// @Summary List completed services for the caller's own requests
// @Tags pin
// @Security BearerAuth
// @Produce json
// @Param category_id query int false "Filter by recorded category"
// @Param start query string false "Earliest completion date (YYYY-MM-DD)"
// @Param end query string false "Latest completion date (YYYY-MM-DD)"
// @Success 200 {array} history.ServiceHistory
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /pin/history [get]
func (h *HistoryHandler) ListPinHistory(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	items, err := h.svc.ListForPin(uid, parseHistoryFilter(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListCsrHistory godoc
// @Summary List services the caller provided
// @Tags csr
// @Security BearerAuth
// @Produce json
// @Param category_id query int false "Filter by recorded category"
// @Param start query string false "Earliest completion date (YYYY-MM-DD)"
// @Param end query string false "Latest completion date (YYYY-MM-DD)"
// @Param page query int false "Page number (default: 1)"
// @Param per_page query int false "Items per page"
// @Success 200 {object} types.Page[history.ServiceHistory]
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /csr/history [get]
func (h *HistoryHandler) ListCsrHistory(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	page, perPage := utils.ParsePaging(c, config.PageSize)
	result, err := h.svc.ListForCsr(uid, parseHistoryFilter(c), page, perPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
