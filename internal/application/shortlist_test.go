package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/kaiwenliu/careconnect-go/internal/domain/request"
	"github.com/kaiwenliu/careconnect-go/internal/domain/shortlist"
	"github.com/kaiwenliu/careconnect-go/internal/repository"
	"github.com/kaiwenliu/careconnect-go/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func setupShortlistServiceMocks(t *testing.T) (*ShortlistService, *mock.MockShortlistRepo, *mock.MockRequestRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })
	muteAudit(t)

	mockShortlist := mock.NewMockShortlistRepo(ctrl)
	mockRequest := mock.NewMockRequestRepo(ctrl)
	repos := &repository.Repos{
		Shortlist: mockShortlist,
		Request:   mockRequest,
	}
	return NewShortlistService(repos), mockShortlist, mockRequest
}

func TestAddShortlist_FirstTime(t *testing.T) {
	svc, mockShortlist, mockRequest := setupShortlistServiceMocks(t)

	mockRequest.EXPECT().GetRequestByID(uint(4)).Return(request.Request{ID: 4}, nil)
	mockShortlist.EXPECT().Exists(uint(2), uint(4)).Return(false, nil)
	mockShortlist.EXPECT().CreateShortlist(gomock.Any()).DoAndReturn(func(s *shortlist.Shortlist) error {
		assert.Equal(t, uint(2), s.CsrID)
		assert.Equal(t, uint(4), s.RequestID)
		return nil
	})
	mockRequest.EXPECT().IncrementShortlist(uint(4)).Return(nil)

	assert.NoError(t, svc.Add(nil, 2, 4))
}

// Adding twice neither duplicates the row nor bumps the counter again.
func TestAddShortlist_Repeat(t *testing.T) {
	svc, mockShortlist, mockRequest := setupShortlistServiceMocks(t)

	mockRequest.EXPECT().GetRequestByID(uint(4)).Return(request.Request{ID: 4}, nil)
	mockShortlist.EXPECT().Exists(uint(2), uint(4)).Return(true, nil)

	assert.NoError(t, svc.Add(nil, 2, 4))
}

func TestAddShortlist_RequestGone(t *testing.T) {
	svc, _, mockRequest := setupShortlistServiceMocks(t)

	mockRequest.EXPECT().GetRequestByID(uint(4)).Return(request.Request{}, gorm.ErrRecordNotFound)

	assert.Equal(t, ErrRequestNotFound, svc.Add(nil, 2, 4))
}

func TestRemoveShortlist_Removed(t *testing.T) {
	svc, mockShortlist, mockRequest := setupShortlistServiceMocks(t)

	mockShortlist.EXPECT().DeleteShortlist(uint(2), uint(4)).Return(true, nil)
	mockRequest.EXPECT().DecrementShortlist(uint(4)).Return(nil)

	removed, err := svc.Remove(nil, 2, 4)
	assert.NoError(t, err)
	assert.True(t, removed)
}

// Removing a bookmark that never existed leaves the counter untouched.
func TestRemoveShortlist_NotPresent(t *testing.T) {
	svc, mockShortlist, _ := setupShortlistServiceMocks(t)

	mockShortlist.EXPECT().DeleteShortlist(uint(2), uint(4)).Return(false, nil)

	removed, err := svc.Remove(nil, 2, 4)
	assert.NoError(t, err)
	assert.False(t, removed)
}

// The saved flag on the CSR detail flow tracks add and remove.
func TestShortlistExists_FlipsWithAddAndRemove(t *testing.T) {
	svc, mockShortlist, mockRequest := setupShortlistServiceMocks(t)

	gomock.InOrder(
		mockShortlist.EXPECT().Exists(uint(2), uint(4)).Return(false, nil),
		mockRequest.EXPECT().GetRequestByID(uint(4)).Return(request.Request{ID: 4}, nil),
		mockShortlist.EXPECT().Exists(uint(2), uint(4)).Return(false, nil),
		mockShortlist.EXPECT().CreateShortlist(gomock.Any()).Return(nil),
		mockRequest.EXPECT().IncrementShortlist(uint(4)).Return(nil),
		mockShortlist.EXPECT().Exists(uint(2), uint(4)).Return(true, nil),
		mockShortlist.EXPECT().DeleteShortlist(uint(2), uint(4)).Return(true, nil),
		mockRequest.EXPECT().DecrementShortlist(uint(4)).Return(nil),
		mockShortlist.EXPECT().Exists(uint(2), uint(4)).Return(false, nil),
	)

	saved, err := svc.Exists(2, 4)
	assert.NoError(t, err)
	assert.False(t, saved)

	assert.NoError(t, svc.Add(nil, 2, 4))
	saved, err = svc.Exists(2, 4)
	assert.NoError(t, err)
	assert.True(t, saved)

	removed, err := svc.Remove(nil, 2, 4)
	assert.NoError(t, err)
	assert.True(t, removed)
	saved, err = svc.Exists(2, 4)
	assert.NoError(t, err)
	assert.False(t, saved)
}

func TestSearchShortlistForCsr(t *testing.T) {
	svc, mockShortlist, _ := setupShortlistServiceMocks(t)

	items := []shortlist.Shortlist{{ID: 1, CsrID: 2, RequestID: 4}}
	mockShortlist.EXPECT().SearchForCsr(uint(2), "tap", ptrUint(3)).Return(items, nil)

	got, err := svc.SearchForCsr(2, "tap", ptrUint(3))
	assert.NoError(t, err)
	assert.Equal(t, items, got)
}
