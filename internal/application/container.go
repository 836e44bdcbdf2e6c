package application

import (
	"github.com/kaiwenliu/careconnect-go/internal/repository"
	"github.com/kaiwenliu/careconnect-go/internal/viewtrack"
)

// Services bundles the application layer for handler wiring.
type Services struct {
	User      *UserService
	Category  *CategoryService
	Request   *RequestService
	Shortlist *ShortlistService
	History   *HistoryService
	Report    *ReportService
	Audit     *AuditService
}

func New(repos *repository.Repos, views viewtrack.Tracker) *Services {
	return &Services{
		User:      NewUserService(repos),
		Category:  NewCategoryService(repos),
		Request:   NewRequestService(repos, views),
		Shortlist: NewShortlistService(repos),
		History:   NewHistoryService(repos),
		Report:    NewReportService(repos),
		Audit:     NewAuditService(repos),
	}
}
