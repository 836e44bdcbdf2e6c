package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/kaiwenliu/careconnect-go/internal/config/db"
	"github.com/kaiwenliu/careconnect-go/internal/domain/history"
	"github.com/kaiwenliu/careconnect-go/internal/domain/report"
	"github.com/kaiwenliu/careconnect-go/internal/domain/request"
	"github.com/kaiwenliu/careconnect-go/internal/domain/user"
	"github.com/kaiwenliu/careconnect-go/internal/repository"
	"github.com/stretchr/testify/require"
)

// Walks a request end to end: posted by a PIN, browsed, viewed,
// shortlisted and accepted by a CSR, completed by the PIN, then checked
// against both histories and the platform report.
func TestRequestLifecycle(t *testing.T) {
	pmToken := login(t, user.RolePlatformManager, "pm1", "pm12345")
	pinToken := login(t, user.RolePIN, "pin_user1", "pin12345")
	csrToken := login(t, user.RoleCSR, "csr_user1", "csr12345")

	// PM creates the category the request will use
	var cat struct {
		ID uint `json:"id"`
	}
	w := doRequest(t, "POST", "/pm/categories", pmToken,
		map[string]string{"name": "Lifecycle Groceries"}, http.StatusCreated)
	decodeJSON(t, w, &cat)

	// PIN posts a request
	var req request.Request
	w = doRequest(t, "POST", "/pin/requests", pinToken, map[string]interface{}{
		"title":       "Weekly groceries run",
		"description": "Two bags from the corner store",
		"category_id": cat.ID,
	}, http.StatusCreated)
	decodeJSON(t, w, &req)
	require.Equal(t, request.StatusOpen, req.Status)
	require.Zero(t, req.ViewsCount)

	base := fmt.Sprintf("/csr/requests/%d", req.ID)

	// First view in this CSR session counts; the repeat does not
	var viewed request.Request
	w = doRequest(t, "GET", base, csrToken, nil, http.StatusOK)
	decodeJSON(t, w, &viewed)
	require.Equal(t, 1, viewed.ViewsCount)

	w = doRequest(t, "GET", base, csrToken, nil, http.StatusOK)
	decodeJSON(t, w, &viewed)
	require.Equal(t, 1, viewed.ViewsCount)

	// A different CSR session counts once more
	csr2Token := login(t, user.RoleCSR, "csr_user2", "csr12345")
	w = doRequest(t, "GET", base, csr2Token, nil, http.StatusOK)
	decodeJSON(t, w, &viewed)
	require.Equal(t, 2, viewed.ViewsCount)

	// The saved flag follows the bookmark through add and remove
	savedPath := fmt.Sprintf("/csr/shortlist/%d", req.ID)
	var saved struct {
		Saved bool `json:"saved"`
	}
	w = doRequest(t, "GET", savedPath, csrToken, nil, http.StatusOK)
	decodeJSON(t, w, &saved)
	require.False(t, saved.Saved)

	// Shortlisting twice keeps the counter at one
	doRequest(t, "POST", savedPath, csrToken, nil, http.StatusOK)
	doRequest(t, "POST", savedPath, csrToken, nil, http.StatusOK)

	w = doRequest(t, "GET", savedPath, csrToken, nil, http.StatusOK)
	decodeJSON(t, w, &saved)
	require.True(t, saved.Saved)

	doRequest(t, "DELETE", savedPath, csrToken, nil, http.StatusNoContent)
	w = doRequest(t, "GET", savedPath, csrToken, nil, http.StatusOK)
	decodeJSON(t, w, &saved)
	require.False(t, saved.Saved)
	doRequest(t, "POST", savedPath, csrToken, nil, http.StatusOK)

	var mine request.Request
	w = doRequest(t, "GET", fmt.Sprintf("/pin/requests/%d", req.ID), pinToken, nil, http.StatusOK)
	decodeJSON(t, w, &mine)
	require.Equal(t, 1, mine.ShortlistCount)
	require.Equal(t, 2, mine.ViewsCount)

	// First accept wins, second CSR gets a conflict
	doRequest(t, "POST", base+"/accept", csrToken, nil, http.StatusOK)
	doRequest(t, "POST", fmt.Sprintf("/csr/requests/%d/accept", req.ID), csr2Token, nil, http.StatusConflict)

	// PIN completes; a repeat completion is rejected
	var completed request.Request
	w = doRequest(t, "POST", fmt.Sprintf("/pin/requests/%d/complete", req.ID), pinToken, nil, http.StatusOK)
	decodeJSON(t, w, &completed)
	require.Equal(t, request.StatusCompleted, completed.Status)
	doRequest(t, "POST", fmt.Sprintf("/pin/requests/%d/complete", req.ID), pinToken, nil, http.StatusConflict)

	// A completed request disappears from the CSR browse/detail views
	doRequest(t, "GET", base, csrToken, nil, http.StatusNotFound)

	// Exactly one history row, attributed to the accepting CSR
	var pinHistory []history.ServiceHistory
	w = doRequest(t, "GET", "/pin/history", pinToken, nil, http.StatusOK)
	decodeJSON(t, w, &pinHistory)

	matched := 0
	for _, h := range pinHistory {
		if h.RequestID == req.ID {
			matched++
			require.NotNil(t, h.CsrID)
			require.Equal(t, cat.ID, *h.CategoryID)
		}
	}
	require.Equal(t, 1, matched)

	// And exactly one row in the table itself
	count, err := repository.NewHistoryRepo(db.DB).CountForRequest(req.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	// The CSR sees the same completion in their own history
	var csrHistory struct {
		Items []history.ServiceHistory `json:"items"`
		Total int64                    `json:"total"`
	}
	w = doRequest(t, "GET", "/csr/history", csrToken, nil, http.StatusOK)
	decodeJSON(t, w, &csrHistory)
	found := false
	for _, h := range csrHistory.Items {
		if h.RequestID == req.ID {
			found = true
		}
	}
	require.True(t, found)

	// The report counts the creation and the completion
	var rep report.Report
	w = doRequest(t, "GET", "/pm/reports?scope=daily", pmToken, nil, http.StatusOK)
	decodeJSON(t, w, &rep)
	require.Equal(t, report.ScopeDaily, rep.Scope)
	require.NotEmpty(t, rep.Requests)
	require.NotEmpty(t, rep.Completed)
}

func TestRoleGates(t *testing.T) {
	pinToken := login(t, user.RolePIN, "pin_user1", "pin12345")
	csrToken := login(t, user.RoleCSR, "csr_user1", "csr12345")

	// PIN tokens cannot reach CSR or PM surfaces
	doRequest(t, "GET", "/csr/requests", pinToken, nil, http.StatusForbidden)
	doRequest(t, "GET", "/pm/reports", pinToken, nil, http.StatusForbidden)

	// CSR tokens cannot post requests or manage users
	doRequest(t, "POST", "/pin/requests", csrToken, map[string]string{"title": "x"}, http.StatusForbidden)
	doRequest(t, "GET", "/admin/users", csrToken, nil, http.StatusForbidden)

	// No token at all
	doRequest(t, "GET", "/csr/requests", "", nil, http.StatusUnauthorized)
}

func TestAccountSuspension(t *testing.T) {
	admin := login(t, user.RoleUserAdmin, "admin1", "admin123")

	// Admin creates a CSR account, then suspends it
	var created user.User
	w := doRequest(t, "POST", "/admin/users", admin, map[string]interface{}{
		"role":      user.RoleCSR,
		"username":  "csr_suspended",
		"password":  "csr12345",
		"full_name": "Suspended Rep",
	}, http.StatusCreated)
	decodeJSON(t, w, &created)
	require.NotZero(t, created.ID)

	// Works before suspension
	login(t, user.RoleCSR, "csr_suspended", "csr12345")

	doRequest(t, "POST", fmt.Sprintf("/admin/users/%d/suspend", created.ID), admin, nil, http.StatusOK)

	// Suspended accounts cannot log in
	doRequest(t, "POST", "/login", "", map[string]string{
		"role":     user.RoleCSR,
		"username": "csr_suspended",
		"password": "csr12345",
	}, http.StatusUnauthorized)

	// Reactivation restores access
	doRequest(t, "POST", fmt.Sprintf("/admin/users/%d/activate", created.ID), admin, nil, http.StatusOK)
	login(t, user.RoleCSR, "csr_suspended", "csr12345")
}

func TestCategoryDeleteDetachesRequests(t *testing.T) {
	pmToken := login(t, user.RolePlatformManager, "pm1", "pm12345")
	pinToken := login(t, user.RolePIN, "pin_user1", "pin12345")

	var cat struct {
		ID uint `json:"id"`
	}
	w := doRequest(t, "POST", "/pm/categories", pmToken,
		map[string]string{"name": "Doomed Category"}, http.StatusCreated)
	decodeJSON(t, w, &cat)

	var req request.Request
	w = doRequest(t, "POST", "/pin/requests", pinToken, map[string]interface{}{
		"title":       "Request in doomed category",
		"category_id": cat.ID,
	}, http.StatusCreated)
	decodeJSON(t, w, &req)

	doRequest(t, "DELETE", fmt.Sprintf("/pm/categories/%d", cat.ID), pmToken, nil, http.StatusNoContent)

	// The request survives without a category
	var after request.Request
	w = doRequest(t, "GET", fmt.Sprintf("/pin/requests/%d", req.ID), pinToken, nil, http.StatusOK)
	decodeJSON(t, w, &after)
	require.Nil(t, after.CategoryID)
}
