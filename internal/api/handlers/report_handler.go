package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaiwenliu/careconnect-go/internal/application"
	"github.com/kaiwenliu/careconnect-go/internal/domain/report"
	"github.com/kaiwenliu/careconnect-go/pkg/response"
)

type ReportHandler struct {
	svc *application.ReportService
}

func NewReportHandler(svc *application.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// GenerateReport godoc
// @Summary Request and completion counts grouped by calendar bucket
// @Tags pm
// @Security BearerAuth
// @Produce json
// @Param scope query string false "daily, weekly or monthly (default: daily)"
// @Success 200 {object} report.Report
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /pm/reports [get]
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	scope := report.Scope(c.DefaultQuery("scope", string(report.ScopeDaily)))

	r, err := h.svc.Generate(scope)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}
