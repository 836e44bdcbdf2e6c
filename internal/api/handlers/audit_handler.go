package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kaiwenliu/careconnect-go/internal/application"
	"github.com/kaiwenliu/careconnect-go/internal/repository"
	"github.com/kaiwenliu/careconnect-go/pkg/response"
	"github.com/kaiwenliu/careconnect-go/pkg/utils"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs godoc
// @Summary Query the audit trail
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param user_id query int false "Filter by acting user"
// @Param resource_type query string false "Filter by resource type"
// @Param action query string false "Filter by action"
// @Param start query string false "Earliest entry (RFC3339)"
// @Param end query string false "Latest entry (RFC3339)"
// @Param limit query int false "Maximum entries to return"
// @Param offset query int false "Entries to skip"
// @Success 200 {array} audit.AuditLog
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /admin/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	var params repository.AuditQueryParams

	if uid, err := utils.ParseQueryUintParam(c, "user_id"); err == nil {
		params.UserID = &uid
	}
	if v := c.Query("resource_type"); v != "" {
		params.ResourceType = &v
	}
	if v := c.Query("action"); v != "" {
		params.Action = &v
	}
	if v := c.Query("start"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			params.StartTime = &t
		}
	}
	if v := c.Query("end"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			params.EndTime = &t
		}
	}
	params.Limit, params.Offset = parseLimitOffset(c)

	logs, err := h.svc.GetAuditLogs(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func parseLimitOffset(c *gin.Context) (limit, offset int) {
	if v, err := utils.ParseQueryUintParam(c, "limit"); err == nil {
		limit = int(v)
	}
	if v, err := utils.ParseQueryUintParam(c, "offset"); err == nil {
		offset = int(v)
	}
	return limit, offset
}
