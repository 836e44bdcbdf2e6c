package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kaiwenliu/careconnect-go/internal/domain/history"
	"github.com/kaiwenliu/careconnect-go/internal/domain/request"
	"github.com/kaiwenliu/careconnect-go/internal/repository"
	"github.com/kaiwenliu/careconnect-go/internal/viewtrack"
	"github.com/kaiwenliu/careconnect-go/pkg/types"
	"github.com/kaiwenliu/careconnect-go/pkg/utils"
)

var (
	ErrRequestNotFound  = errors.New("request not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrTitleRequired    = errors.New("title is required")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrAlreadyCompleted = errors.New("request already completed")
	ErrAlreadyAccepted  = errors.New("request already accepted")
)

// RequestService owns the request lifecycle: creation and edits by the
// owning PIN, acceptance by CSRs, the open -> completed transition and
// its history snapshot, and the view bookkeeping on the CSR detail page.
type RequestService struct {
	Repos *repository.Repos
	Views viewtrack.Tracker
}

func NewRequestService(repos *repository.Repos, views viewtrack.Tracker) *RequestService {
	return &RequestService{
		Repos: repos,
		Views: views,
	}
}

func (s *RequestService) validateCategory(categoryID *uint) error {
	if categoryID == nil {
		return nil
	}
	if _, err := s.Repos.Category.GetCategoryByID(*categoryID); err != nil {
		return ErrInvalidCategory
	}
	return nil
}

func (s *RequestService) Create(c *gin.Context, ownerID uint, input request.CreateRequestDTO) (*request.Request, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if err := s.validateCategory(input.CategoryID); err != nil {
		return nil, err
	}

	req := &request.Request{
		PinID:       ownerID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		CategoryID:  input.CategoryID,
		Status:      request.StatusOpen,
	}
	if err := s.Repos.Request.CreateRequest(req); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "request", fmt.Sprintf("id=%d", req.ID), nil, req, "", s.Repos.Audit)

	return req, nil
}

// Update applies owner edits. Completing runs the status flip and the
// history snapshot in one transaction; reopening a completed request is
// rejected.
func (s *RequestService) Update(c *gin.Context, id, ownerID uint, input request.UpdateRequestDTO) (*request.Request, error) {
	req, err := s.Repos.Request.GetRequestByID(id)
	if err != nil {
		return nil, ErrRequestNotFound
	}
	if req.PinID != ownerID {
		return nil, ErrPermissionDenied
	}

	oldReq := req

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrTitleRequired
		}
		req.Title = title
	}
	if input.Description != nil {
		req.Description = strings.TrimSpace(*input.Description)
	}
	if input.CategoryID != nil {
		if err := s.validateCategory(input.CategoryID); err != nil {
			return nil, err
		}
		req.CategoryID = input.CategoryID
	}

	completing := false
	if input.Status != nil {
		switch request.Status(*input.Status) {
		case request.StatusOpen:
			if req.Status == request.StatusCompleted {
				return nil, ErrAlreadyCompleted
			}
		case request.StatusCompleted:
			completing = req.Status == request.StatusOpen
		}
	}

	now := time.Now().UTC()
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		// Only the edited columns are written; status, acceptance and
		// the counters may have moved since the read above and belong
		// to their own atomic updates.
		if err := tx.Request.UpdateRequestDetails(&req); err != nil {
			return err
		}
		if !completing {
			return nil
		}
		ok, err := tx.Request.CompleteRequest(req.ID, now)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyCompleted
		}
		return s.recordCompletion(tx, &req, now)
	})
	if err != nil {
		return nil, err
	}
	if completing {
		req.Status = request.StatusCompleted
	}

	utils.LogAuditWithConsole(c, "update", "request", fmt.Sprintf("id=%d", req.ID), oldReq, req, "", s.Repos.Audit)

	return &req, nil
}

// Complete is the dedicated mark-complete action. A second call finds
// the request no longer open and reports the conflict without writing a
// second history row.
func (s *RequestService) Complete(c *gin.Context, id, ownerID uint) (*request.Request, error) {
	req, err := s.Repos.Request.GetRequestByID(id)
	if err != nil {
		return nil, ErrRequestNotFound
	}
	if req.PinID != ownerID {
		return nil, ErrPermissionDenied
	}
	if req.Status == request.StatusCompleted {
		return nil, ErrAlreadyCompleted
	}

	now := time.Now().UTC()
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		ok, err := tx.Request.CompleteRequest(req.ID, now)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAlreadyCompleted
		}
		return s.recordCompletion(tx, &req, now)
	})
	if err != nil {
		return nil, err
	}
	req.Status = request.StatusCompleted

	utils.LogAuditWithConsole(c, "complete", "request", fmt.Sprintf("id=%d", req.ID), nil, req, "", s.Repos.Audit)

	return &req, nil
}

// recordCompletion snapshots the history row inside the completion
// transaction. Attribution is best effort: the accepting CSR wins, then
// the most recent shortlister, else nobody.
func (s *RequestService) recordCompletion(tx *repository.Repos, req *request.Request, at time.Time) error {
	csrID := req.AcceptedByID
	if csrID == nil {
		latest, err := tx.Shortlist.LatestCsrForRequest(req.ID)
		if err != nil {
			return err
		}
		csrID = latest
	}

	return tx.History.CreateHistory(&history.ServiceHistory{
		CsrID:         csrID,
		PinID:         req.PinID,
		RequestID:     req.ID,
		CategoryID:    req.CategoryID,
		DateCompleted: at,
	})
}

// Delete removes the request and its shortlist rows together. History
// rows stay: the completion log is immutable.
func (s *RequestService) Delete(c *gin.Context, id, ownerID uint) error {
	req, err := s.Repos.Request.GetRequestByID(id)
	if err != nil {
		return ErrRequestNotFound
	}
	if req.PinID != ownerID {
		return ErrPermissionDenied
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Shortlist.DeleteByRequestID(id); err != nil {
			return err
		}
		return tx.Request.DeleteRequest(id)
	})
	if err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "request", fmt.Sprintf("id=%d", req.ID), req, nil, "", s.Repos.Audit)

	return nil
}

// GetOpenForViewer returns an open request and counts the view once per
// viewer session. Tracker outages degrade to an uncounted view rather
// than failing the read.
func (s *RequestService) GetOpenForViewer(ctx context.Context, id uint, sessionID string) (*request.Request, error) {
	req, err := s.Repos.Request.GetOpenRequestByID(id)
	if err != nil {
		return nil, ErrRequestNotFound
	}

	first, err := s.Views.MarkViewed(ctx, sessionID, id)
	if err != nil {
		log.Printf("view tracking unavailable for request %d: %v", id, err)
		return &req, nil
	}
	if first {
		if err := s.Repos.Request.IncrementViews(id); err != nil {
			return nil, err
		}
		req.ViewsCount++
	}

	return &req, nil
}

func (s *RequestService) Accept(c *gin.Context, id, csrID uint) error {
	ok, err := s.Repos.Request.AcceptRequest(id, csrID, time.Now().UTC())
	if err != nil {
		return err
	}
	if !ok {
		if _, err := s.Repos.Request.GetRequestByID(id); err != nil {
			return ErrRequestNotFound
		}
		return ErrAlreadyAccepted
	}

	utils.LogAuditWithConsole(c, "accept", "request", fmt.Sprintf("id=%d", id), nil, nil,
		fmt.Sprintf("accepted by csr %d", csrID), s.Repos.Audit)

	return nil
}

// SearchOpen is the CSR browse view: pure read, no counter effects.
func (s *RequestService) SearchOpen(q request.SearchOpenQuery) (types.Page[request.Request], error) {
	items, total, err := s.Repos.Request.SearchOpenRequests(q.CategoryID, q.Text, q.Page, q.PerPage)
	if err != nil {
		return types.Page[request.Request]{}, err
	}
	return types.NewPage(items, total, q.Page, q.PerPage), nil
}

func (s *RequestService) ListByOwner(ownerID uint, text string) ([]request.Request, error) {
	return s.Repos.Request.ListRequestsByPin(ownerID, text)
}

func (s *RequestService) GetForOwner(id, ownerID uint) (*request.Request, error) {
	req, err := s.Repos.Request.GetRequestByID(id)
	if err != nil {
		return nil, ErrRequestNotFound
	}
	if req.PinID != ownerID {
		return nil, ErrPermissionDenied
	}
	return &req, nil
}
