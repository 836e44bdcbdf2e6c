package application

import (
	"github.com/kaiwenliu/careconnect-go/internal/domain/history"
	"github.com/kaiwenliu/careconnect-go/internal/repository"
	"github.com/kaiwenliu/careconnect-go/pkg/types"
)

// HistoryService is the read side of the completion log; rows are only
// ever written by RequestService inside the completion transaction.
type HistoryService struct {
	Repos *repository.Repos
}

func NewHistoryService(repos *repository.Repos) *HistoryService {
	return &HistoryService{
		Repos: repos,
	}
}

func (s *HistoryService) ListForPin(pinID uint, f history.Filter) ([]history.ServiceHistory, error) {
	return s.Repos.History.ListForPin(pinID, f)
}

func (s *HistoryService) ListForCsr(csrID uint, f history.Filter, page, perPage int) (types.Page[history.ServiceHistory], error) {
	items, total, err := s.Repos.History.ListForCsr(csrID, f, page, perPage)
	if err != nil {
		return types.Page[history.ServiceHistory]{}, err
	}
	return types.NewPage(items, total, page, perPage), nil
}
