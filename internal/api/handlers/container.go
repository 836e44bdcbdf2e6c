package handlers

import (
	"github.com/kaiwenliu/careconnect-go/internal/application"
)

// Handlers bundles the HTTP layer for route registration.
type Handlers struct {
	User      *UserHandler
	Category  *CategoryHandler
	Request   *RequestHandler
	Shortlist *ShortlistHandler
	History   *HistoryHandler
	Report    *ReportHandler
	Audit     *AuditHandler
}

func New(svcs *application.Services) *Handlers {
	return &Handlers{
		User:      NewUserHandler(svcs.User),
		Category:  NewCategoryHandler(svcs.Category),
		Request:   NewRequestHandler(svcs.Request),
		Shortlist: NewShortlistHandler(svcs.Shortlist),
		History:   NewHistoryHandler(svcs.History),
		Report:    NewReportHandler(svcs.Report),
		Audit:     NewAuditHandler(svcs.Audit),
	}
}
