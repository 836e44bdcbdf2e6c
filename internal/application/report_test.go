package application

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/kaiwenliu/careconnect-go/internal/domain/report"
	"github.com/kaiwenliu/careconnect-go/internal/repository"
	"github.com/kaiwenliu/careconnect-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
)

func setupReportServiceMocks(t *testing.T) (*ReportService, *mock.MockRequestRepo, *mock.MockHistoryRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockRequest := mock.NewMockRequestRepo(ctrl)
	mockHistory := mock.NewMockHistoryRepo(ctrl)
	repos := &repository.Repos{
		Request: mockRequest,
		History: mockHistory,
	}
	return NewReportService(repos), mockRequest, mockHistory
}

func TestBucketKey(t *testing.T) {
	ts := time.Date(2025, 1, 2, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, "2025-01-02", BucketKey(ts, report.ScopeDaily))
	assert.Equal(t, "2025-W01", BucketKey(ts, report.ScopeWeekly))
	assert.Equal(t, "2025-01", BucketKey(ts, report.ScopeMonthly))
}

// Dec 29 2025 .. Jan 4 2026 is ISO week 2026-W01.
func TestBucketKey_ISOWeekYearBoundary(t *testing.T) {
	ts := time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-W01", BucketKey(ts, report.ScopeWeekly))
}

func TestGenerateReport_Daily(t *testing.T) {
	svc, mockRequest, mockHistory := setupReportServiceMocks(t)

	day1 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)

	mockRequest.EXPECT().ListCreationTimes().Return([]time.Time{day1, day1, day2}, nil)
	mockHistory.EXPECT().ListCompletionTimes().Return([]time.Time{day2}, nil)

	r, err := svc.Generate(report.ScopeDaily)
	assert.NoError(t, err)
	assert.Equal(t, report.ScopeDaily, r.Scope)
	assert.Equal(t, []report.Bucket{
		{Key: "2025-03-01", Count: 2},
		{Key: "2025-03-02", Count: 1},
	}, r.Requests)
	assert.Equal(t, []report.Bucket{
		{Key: "2025-03-02", Count: 1},
	}, r.Completed)
}

func TestGenerateReport_UnknownScopeFallsBackToDaily(t *testing.T) {
	svc, mockRequest, mockHistory := setupReportServiceMocks(t)

	mockRequest.EXPECT().ListCreationTimes().Return(nil, nil)
	mockHistory.EXPECT().ListCompletionTimes().Return(nil, nil)

	r, err := svc.Generate(report.Scope("hourly"))
	assert.NoError(t, err)
	assert.Equal(t, report.ScopeDaily, r.Scope)
	assert.Empty(t, r.Requests)
	assert.Empty(t, r.Completed)
}

func TestGenerateReport_Monthly(t *testing.T) {
	svc, mockRequest, mockHistory := setupReportServiceMocks(t)

	jan := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)

	mockRequest.EXPECT().ListCreationTimes().Return([]time.Time{jan, feb, feb}, nil)
	mockHistory.EXPECT().ListCompletionTimes().Return([]time.Time{feb}, nil)

	r, err := svc.Generate(report.ScopeMonthly)
	assert.NoError(t, err)
	assert.Equal(t, []report.Bucket{
		{Key: "2025-01", Count: 1},
		{Key: "2025-02", Count: 2},
	}, r.Requests)
}
