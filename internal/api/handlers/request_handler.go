package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kaiwenliu/careconnect-go/internal/application"
	"github.com/kaiwenliu/careconnect-go/internal/config"
	"github.com/kaiwenliu/careconnect-go/internal/domain/request"
	"github.com/kaiwenliu/careconnect-go/pkg/response"
	"github.com/kaiwenliu/careconnect-go/pkg/utils"
)

type RequestHandler struct {
	svc *application.RequestService
}

func NewRequestHandler(svc *application.RequestService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

// CreateRequest godoc
// @Summary Post a new assistance request
// @Tags pin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body request.CreateRequestDTO true "Request details"
// @Success 201 {object} request.Request
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /pin/requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input request.CreateRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	req, err := h.svc.Create(c, uid, input)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

// ListOwnRequests godoc
// @Summary List the caller's own requests
// @Tags pin
// @Security BearerAuth
// @Produce json
// @Param q query string false "Filter by title"
// @Success 200 {array} request.Request
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /pin/requests [get]
func (h *RequestHandler) ListOwnRequests(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	reqs, err := h.svc.ListByOwner(uid, c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, reqs)
}

// GetOwnRequest godoc
// @Summary Get one of the caller's requests with its counters
// @Tags pin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} request.Request
// @Failure 400 {object} response.ErrorResponse "Invalid request id"
// @Failure 403 {object} response.ErrorResponse "Permission denied"
// @Failure 404 {object} response.ErrorResponse "Request not found"
// @Router /pin/requests/{id} [get]
func (h *RequestHandler) GetOwnRequest(c *gin.Context) {
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

	req, err := h.svc.GetForOwner(id, uid)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// UpdateRequest godoc
// @Summary Edit one of the caller's requests
// @Tags pin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Request ID"
// @Param input body request.UpdateRequestDTO true "Fields to update"
// @Success 200 {object} request.Request
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 403 {object} response.ErrorResponse "Permission denied"
// @Failure 404 {object} response.ErrorResponse "Request not found"
// @Failure 409 {object} response.ErrorResponse "Request already completed"
// @Router /pin/requests/{id} [put]
func (h *RequestHandler) UpdateRequest(c *gin.Context) {
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

	var input request.UpdateRequestDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	req, err := h.svc.Update(c, id, uid, input)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// CompleteRequest godoc
// @Summary Mark one of the caller's requests as completed
// @Tags pin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} request.Request
// @Failure 400 {object} response.ErrorResponse "Invalid request id"
// @Failure 403 {object} response.ErrorResponse "Permission denied"
// @Failure 404 {object} response.ErrorResponse "Request not found"
// @Failure 409 {object} response.ErrorResponse "Request already completed"
// @Router /pin/requests/{id}/complete [post]
func (h *RequestHandler) CompleteRequest(c *gin.Context) {
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

	req, err := h.svc.Complete(c, id, uid)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// DeleteRequest godoc
// @Summary Delete one of the caller's requests
// @Tags pin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Request ID"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse "Invalid request id"
// @Failure 403 {object} response.ErrorResponse "Permission denied"
// @Failure 404 {object} response.ErrorResponse "Request not found"
// @Router /pin/requests/{id} [delete]
func (h *RequestHandler) DeleteRequest(c *gin.Context) {
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

	if err := h.svc.Delete(c, id, uid); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BrowseOpenRequests godoc
// @Summary Browse open requests
// @Tags csr
// @Security BearerAuth
// @Produce json
// @Param q query string false "Full text filter on title and description"
// @Param category_id query int false "Filter by category"
// @Param page query int false "Page number (default: 1)"
// @Param per_page query int false "Items per page"
// @Success 200 {object} types.Page[request.Request]
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /csr/requests [get]
func (h *RequestHandler) BrowseOpenRequests(c *gin.Context) {
	page, perPage := utils.ParsePaging(c, config.PageSize)

	q := request.SearchOpenQuery{
		Text:    c.Query("q"),
		Page:    page,
		PerPage: perPage,
	}
	if catID, err := utils.ParseQueryUintParam(c, "category_id"); err == nil {
		q.CategoryID = &catID
	}

	result, err := h.svc.SearchOpen(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ViewOpenRequest godoc
// @Summary View an open request's details, counting the view once per session
// @Tags csr
// @Security BearerAuth
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} request.Request
// @Failure 400 {object} response.ErrorResponse "Invalid request id"
// @Failure 404 {object} response.ErrorResponse "Request not found"
// @Router /csr/requests/{id} [get]
func (h *RequestHandler) ViewOpenRequest(c *gin.Context) {
	sessionID, err := utils.GetSessionIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid request id"})
		return
	}

	req, err := h.svc.GetOpenForViewer(c.Request.Context(), id, sessionID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// AcceptRequest godoc
// @Summary Accept an open request
// @Tags csr
// @Security BearerAuth
// @Produce json
// @Param id path int true "Request ID"
// @Success 200 {object} response.MessageResponse "Request accepted"
// @Failure 400 {object} response.ErrorResponse "Invalid request id"
// @Failure 404 {object} response.ErrorResponse "Request not found"
// @Failure 409 {object} response.ErrorResponse "Request already accepted"
// @Router /csr/requests/{id}/accept [post]
func (h *RequestHandler) AcceptRequest(c *gin.Context) {
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

	if err := h.svc.Accept(c, id, uid); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Request accepted"})
}

func (h *RequestHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrTitleRequired), errors.Is(err, application.ErrInvalidCategory):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrAlreadyCompleted), errors.Is(err, application.ErrAlreadyAccepted):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}
