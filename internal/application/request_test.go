package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/kaiwenliu/careconnect-go/internal/domain/category"
	"github.com/kaiwenliu/careconnect-go/internal/domain/history"
	"github.com/kaiwenliu/careconnect-go/internal/domain/request"
	"github.com/kaiwenliu/careconnect-go/internal/repository"
	"github.com/kaiwenliu/careconnect-go/internal/repository/mock"
	"github.com/kaiwenliu/careconnect-go/pkg/utils"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------

// fakeTracker reports "first view" according to a script of answers.
type fakeTracker struct {
	answers []bool
	err     error
	calls   int
}

func (f *fakeTracker) MarkViewed(ctx context.Context, sessionID string, requestID uint) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	first := f.answers[f.calls%len(f.answers)]
	f.calls++
	return first, nil
}

type requestMocks struct {
	request   *mock.MockRequestRepo
	shortlist *mock.MockShortlistRepo
	history   *mock.MockHistoryRepo
	category  *mock.MockCategoryRepo
}

func setupRequestServiceMocks(t *testing.T, tracker *fakeTracker) (*RequestService, requestMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })
	muteAudit(t)

	m := requestMocks{
		request:   mock.NewMockRequestRepo(ctrl),
		shortlist: mock.NewMockShortlistRepo(ctrl),
		history:   mock.NewMockHistoryRepo(ctrl),
		category:  mock.NewMockCategoryRepo(ctrl),
	}
	repos := &repository.Repos{
		Request:   m.request,
		Shortlist: m.shortlist,
		History:   m.history,
		Category:  m.category,
	}
	if tracker == nil {
		tracker = &fakeTracker{answers: []bool{true}}
	}
	return NewRequestService(repos, tracker), m
}

func muteAudit(t *testing.T) {
	old := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(*gin.Context, string, string, string, interface{}, interface{}, string, repository.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = old })
}

func ptrUint(v uint) *uint       { return &v }
func ptrString(v string) *string { return &v }

// --------------------- Create ---------------------

func TestCreateRequest_Success(t *testing.T) {
	svc, m := setupRequestServiceMocks(t, nil)

	m.request.EXPECT().CreateRequest(gomock.Any()).DoAndReturn(func(r *request.Request) error {
		r.ID = 7
		return nil
	})

	req, err := svc.Create(nil, 3, request.CreateRequestDTO{Title: "  Groceries run  "})
	assert.NoError(t, err)
	assert.Equal(t, uint(7), req.ID)
	assert.Equal(t, "Groceries run", req.Title)
	assert.Equal(t, request.StatusOpen, req.Status)
	assert.Equal(t, uint(3), req.PinID)
}

func TestCreateRequest_EmptyTitle(t *testing.T) {
	svc, _ := setupRequestServiceMocks(t, nil)

	_, err := svc.Create(nil, 3, request.CreateRequestDTO{Title: "   "})
	assert.Equal(t, ErrTitleRequired, err)
}

func TestCreateRequest_UnknownCategory(t *testing.T) {
	svc, m := setupRequestServiceMocks(t, nil)

	m.category.EXPECT().GetCategoryByID(uint(99)).Return(category.Category{}, gorm.ErrRecordNotFound)

	_, err := svc.Create(nil, 3, request.CreateRequestDTO{Title: "help", CategoryID: ptrUint(99)})
	assert.Equal(t, ErrInvalidCategory, err)
}

// --------------------- Update ---------------------

func TestUpdateRequest_NotOwner(t *testing.T) {
	svc, m := setupRequestServiceMocks(t, nil)

	m.request.EXPECT().GetRequestByID(uint(5)).Return(request.Request{ID: 5, PinID: 1}, nil)

	_, err := svc.Update(nil, 5, 2, request.UpdateRequestDTO{Title: ptrString("x")})
	assert.Equal(t, ErrPermissionDenied, err)
}

func TestUpdateRequest_ReopenRejected(t *testing.T) {
	svc, m := setupRequestServiceMocks(t, nil)

	m.request.EXPECT().GetRequestByID(uint(5)).
		Return(request.Request{ID: 5, PinID: 1, Status: request.StatusCompleted}, nil)

	open := string(request.StatusOpen)
	_, err := svc.Update(nil, 5, 1, request.UpdateRequestDTO{Status: &open})
	assert.Equal(t, ErrAlreadyCompleted, err)
}

func TestUpdateRequest_EditWritesDetailColumnsOnly(t *testing.T) {
	svc, m := setupRequestServiceMocks(t, nil)

	// The row may gain an acceptance or counter bumps between the read
	// and the write; an edit goes through the details-only update so
	// those columns are never pushed back from the stale read.
	csr := uint(7)
	m.request.EXPECT().GetRequestByID(uint(5)).
		Return(request.Request{ID: 5, PinID: 1, Status: request.StatusOpen, AcceptedByID: &csr, ViewsCount: 3, ShortlistCount: 2}, nil)
	m.request.EXPECT().UpdateRequestDetails(gomock.Any()).DoAndReturn(func(r *request.Request) error {
		assert.Equal(t, "fresh title", r.Title)
		return nil
	})

	req, err := svc.Update(nil, 5, 1, request.UpdateRequestDTO{Title: ptrString("fresh title")})
	assert.NoError(t, err)
	assert.Equal(t, request.StatusOpen, req.Status)
	assert.Equal(t, 3, req.ViewsCount)
}

func TestUpdateRequest_CompleteWritesHistory(t *testing.T) {
	svc, m := setupRequestServiceMocks(t, nil)

	csr := uint(9)
	m.request.EXPECT().GetRequestByID(uint(5)).
		Return(request.Request{ID: 5, PinID: 1, Status: request.StatusOpen, AcceptedByID: &csr, CategoryID: ptrUint(2)}, nil)
	m.request.EXPECT().UpdateRequestDetails(gomock.Any()).Return(nil)
	m.request.EXPECT().CompleteRequest(uint(5), gomock.Any()).Return(true, nil)
	m.history.EXPECT().CreateHistory(gomock.Any()).DoAndReturn(func(h *history.ServiceHistory) error {
		assert.Equal(t, &csr, h.CsrID)
		assert.Equal(t, uint(1), h.PinID)
		assert.Equal(t, uint(5), h.RequestID)
		assert.Equal(t, ptrUint(2), h.CategoryID)
		return nil
	})

	completed := string(request.StatusCompleted)
	req, err := svc.Update(nil, 5, 1, request.UpdateRequestDTO{Status: &completed})
	assert.NoError(t, err)
	assert.Equal(t, request.StatusCompleted, req.Status)
}

// --------------------- Complete ---------------------

func TestCompleteRequest_AttributesLatestShortlister(t *testing.T) {
	svc, m := setupRequestServiceMocks(t, nil)

	m.request.EXPECT().GetRequestByID(uint(4)).
		Return(request.Request{ID: 4, PinID: 1, Status: request.StatusOpen}, nil)
	m.request.EXPECT().CompleteRequest(uint(4), gomock.Any()).Return(true, nil)
	m.shortlist.EXPECT().LatestCsrForRequest(uint(4)).Return(ptrUint(12), nil)
	m.history.EXPECT().CreateHistory(gomock.Any()).DoAndReturn(func(h *history.ServiceHistory) error {
		assert.Equal(t, ptrUint(12), h.CsrID)
		return nil
	})

	_, err := svc.Complete(nil, 4, 1)
	assert.NoError(t, err)
}

func TestCompleteRequest_NoCsrAttribution(t *testing.T) {
	svc, m := setupRequestServiceMocks(t, nil)

	m.request.EXPECT().GetRequestByID(uint(4)).
		Return(request.Request{ID: 4, PinID: 1, Status: request.StatusOpen}, nil)
	m.request.EXPECT().CompleteRequest(uint(4), gomock.Any()).Return(true, nil)
	m.shortlist.EXPECT().LatestCsrForRequest(uint(4)).Return(nil, nil)
	m.history.EXPECT().CreateHistory(gomock.Any()).DoAndReturn(func(h *history.ServiceHistory) error {
		assert.Nil(t, h.CsrID)
		return nil
	})

	_, err := svc.Complete(nil, 4, 1)
	assert.NoError(t, err)
}

func TestCompleteRequest_AlreadyCompleted(t *testing.T) {
	svc, m := setupRequestServiceMocks(t, nil)

	m.request.EXPECT().GetRequestByID(uint(4)).
		Return(request.Request{ID: 4, PinID: 1, Status: request.StatusCompleted}, nil)

	_, err := svc.Complete(nil, 4, 1)
	assert.Equal(t, ErrAlreadyCompleted, err)
}

// A racing completion loses the compare-and-set; no history row is written.
func TestCompleteRequest_LostRace(t *testing.T) {
	svc, m := setupRequestServiceMocks(t, nil)

	m.request.EXPECT().GetRequestByID(uint(4)).
		Return(request.Request{ID: 4, PinID: 1, Status: request.StatusOpen}, nil)
	m.request.EXPECT().CompleteRequest(uint(4), gomock.Any()).Return(false, nil)

	_, err := svc.Complete(nil, 4, 1)
	assert.Equal(t, ErrAlreadyCompleted, err)
}

// --------------------- Views ---------------------

func TestGetOpenForViewer_CountsFirstViewOnly(t *testing.T) {
	tracker := &fakeTracker{answers: []bool{true, false}}
	svc, m := setupRequestServiceMocks(t, tracker)

	m.request.EXPECT().GetOpenRequestByID(uint(6)).
		Return(request.Request{ID: 6, Status: request.StatusOpen, ViewsCount: 10}, nil).Times(2)
	m.request.EXPECT().IncrementViews(uint(6)).Return(nil)

	req, err := svc.GetOpenForViewer(context.Background(), 6, "sess-a")
	assert.NoError(t, err)
	assert.Equal(t, 11, req.ViewsCount)

	req, err = svc.GetOpenForViewer(context.Background(), 6, "sess-a")
	assert.NoError(t, err)
	assert.Equal(t, 10, req.ViewsCount)
}

func TestGetOpenForViewer_TrackerDownStillServes(t *testing.T) {
	tracker := &fakeTracker{err: errors.New("redis down")}
	svc, m := setupRequestServiceMocks(t, tracker)

	m.request.EXPECT().GetOpenRequestByID(uint(6)).
		Return(request.Request{ID: 6, Status: request.StatusOpen, ViewsCount: 3}, nil)

	req, err := svc.GetOpenForViewer(context.Background(), 6, "sess-a")
	assert.NoError(t, err)
	assert.Equal(t, 3, req.ViewsCount)
}

func TestGetOpenForViewer_NotOpen(t *testing.T) {
	svc, m := setupRequestServiceMocks(t, nil)

	m.request.EXPECT().GetOpenRequestByID(uint(6)).
		Return(request.Request{}, gorm.ErrRecordNotFound)

	_, err := svc.GetOpenForViewer(context.Background(), 6, "sess-a")
	assert.Equal(t, ErrRequestNotFound, err)
}

// --------------------- Accept ---------------------

func TestAcceptRequest_Success(t *testing.T) {
	svc, m := setupRequestServiceMocks(t, nil)

	m.request.EXPECT().AcceptRequest(uint(8), uint(2), gomock.Any()).Return(true, nil)

	assert.NoError(t, svc.Accept(nil, 8, 2))
}

func TestAcceptRequest_AlreadyAccepted(t *testing.T) {
	svc, m := setupRequestServiceMocks(t, nil)

	m.request.EXPECT().AcceptRequest(uint(8), uint(2), gomock.Any()).Return(false, nil)
	m.request.EXPECT().GetRequestByID(uint(8)).Return(request.Request{ID: 8}, nil)

	assert.Equal(t, ErrAlreadyAccepted, svc.Accept(nil, 8, 2))
}

func TestAcceptRequest_NotFound(t *testing.T) {
	svc, m := setupRequestServiceMocks(t, nil)

	m.request.EXPECT().AcceptRequest(uint(8), uint(2), gomock.Any()).Return(false, nil)
	m.request.EXPECT().GetRequestByID(uint(8)).Return(request.Request{}, gorm.ErrRecordNotFound)

	assert.Equal(t, ErrRequestNotFound, svc.Accept(nil, 8, 2))
}

// --------------------- Delete ---------------------

func TestDeleteRequest_RemovesShortlists(t *testing.T) {
	svc, m := setupRequestServiceMocks(t, nil)

	m.request.EXPECT().GetRequestByID(uint(5)).Return(request.Request{ID: 5, PinID: 1}, nil)
	m.shortlist.EXPECT().DeleteByRequestID(uint(5)).Return(nil)
	m.request.EXPECT().DeleteRequest(uint(5)).Return(nil)

	assert.NoError(t, svc.Delete(nil, 5, 1))
}

// --------------------- SearchOpen ---------------------

func TestSearchOpen_Paginates(t *testing.T) {
	svc, m := setupRequestServiceMocks(t, nil)

	items := []request.Request{{ID: 2}, {ID: 1}}
	m.request.EXPECT().SearchOpenRequests(nil, "help", 1, 2).Return(items, int64(5), nil)

	page, err := svc.SearchOpen(request.SearchOpenQuery{Text: "help", Page: 1, PerPage: 2})
	assert.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.Len(t, page.Items, 2)
}

// --------------------- Scenario ---------------------

// A request browsed, shortlisted, accepted and completed ends with one
// history row attributed to the accepting CSR.
func TestRequestLifecycle_AcceptThenComplete(t *testing.T) {
	svc, m := setupRequestServiceMocks(t, nil)

	csr := uint(2)
	m.request.EXPECT().AcceptRequest(uint(5), csr, gomock.Any()).Return(true, nil)
	assert.NoError(t, svc.Accept(nil, 5, csr))

	m.request.EXPECT().GetRequestByID(uint(5)).
		Return(request.Request{ID: 5, PinID: 1, Status: request.StatusOpen, AcceptedByID: &csr}, nil)
	m.request.EXPECT().CompleteRequest(uint(5), gomock.Any()).Return(true, nil)

	var rows []history.ServiceHistory
	m.history.EXPECT().CreateHistory(gomock.Any()).DoAndReturn(func(h *history.ServiceHistory) error {
		rows = append(rows, *h)
		return nil
	})

	_, err := svc.Complete(nil, 5, 1)
	assert.NoError(t, err)

	// second completion attempt is rejected before any write
	m.request.EXPECT().GetRequestByID(uint(5)).
		Return(request.Request{ID: 5, PinID: 1, Status: request.StatusCompleted, AcceptedByID: &csr}, nil)
	_, err = svc.Complete(nil, 5, 1)
	assert.Equal(t, ErrAlreadyCompleted, err)

	assert.Len(t, rows, 1)
	assert.Equal(t, &csr, rows[0].CsrID)
	assert.WithinDuration(t, time.Now().UTC(), rows[0].DateCompleted, 5*time.Second)
}
