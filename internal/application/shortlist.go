package application

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/kaiwenliu/careconnect-go/internal/domain/shortlist"
	"github.com/kaiwenliu/careconnect-go/internal/repository"
	"github.com/kaiwenliu/careconnect-go/pkg/utils"
)

// ShortlistService maintains a CSR's bookmarks and keeps the
// denormalized shortlist counter on the request in step, one
// transaction per change.
type ShortlistService struct {
	Repos *repository.Repos
}

func NewShortlistService(repos *repository.Repos) *ShortlistService {
	return &ShortlistService{
		Repos: repos,
	}
}

// Add is idempotent: bookmarking a request twice leaves one row and one
// counter increment.
func (s *ShortlistService) Add(c *gin.Context, csrID, requestID uint) error {
	if _, err := s.Repos.Request.GetRequestByID(requestID); err != nil {
		return ErrRequestNotFound
	}

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		exists, err := tx.Shortlist.Exists(csrID, requestID)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		if err := tx.Shortlist.CreateShortlist(&shortlist.Shortlist{
			CsrID:     csrID,
			RequestID: requestID,
		}); err != nil {
			return err
		}
		return tx.Request.IncrementShortlist(requestID)
	})
	if err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "shortlist", "request", fmt.Sprintf("id=%d", requestID), nil, nil,
		fmt.Sprintf("shortlisted by csr %d", csrID), s.Repos.Audit)

	return nil
}

// Remove reports whether a bookmark was actually removed. The counter
// decrement is floored at zero in the repository.
func (s *ShortlistService) Remove(c *gin.Context, csrID, requestID uint) (bool, error) {
	var removed bool
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		var err error
		removed, err = tx.Shortlist.DeleteShortlist(csrID, requestID)
		if err != nil {
			return err
		}
		if !removed {
			return nil
		}
		return tx.Request.DecrementShortlist(requestID)
	})
	if err != nil {
		return false, err
	}

	if removed {
		utils.LogAuditWithConsole(c, "unshortlist", "request", fmt.Sprintf("id=%d", requestID), nil, nil,
			fmt.Sprintf("removed by csr %d", csrID), s.Repos.Audit)
	}

	return removed, nil
}

func (s *ShortlistService) Exists(csrID, requestID uint) (bool, error) {
	return s.Repos.Shortlist.Exists(csrID, requestID)
}

func (s *ShortlistService) ListForCsr(csrID uint) ([]shortlist.Shortlist, error) {
	return s.Repos.Shortlist.ListForCsr(csrID)
}

func (s *ShortlistService) SearchForCsr(csrID uint, text string, categoryID *uint) ([]shortlist.Shortlist, error) {
	return s.Repos.Shortlist.SearchForCsr(csrID, text, categoryID)
}
