package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"booktracker/internal/http-api/dto"
	"booktracker/internal/http-api/middleware"
	"booktracker/internal/http-api/models"
	"booktracker/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAdminService mocks the AdminService interface
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockAdminService) DeleteUser(ctx context.Context, callerID, userID int64) (*models.User, error) {
	args := m.Called(ctx, callerID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAdminService) ClearBooks(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func setupAdminRouter(sessions *MockSessionService, h *AdminHandler) *gin.Engine {
	r := setupRouter(sessions)
	h.RegisterRoutes(r.Group("/api/admin", middleware.RequireAuth(), middleware.RequireAdmin()))
	return r
}

func TestAdminRoutes_NonAdminForbidden(t *testing.T) {
	mockSvc := new(MockAdminService)
	sessions := authedSessions(&models.User{ID: 7, Username: "plain", IsAdmin: false})
	router := setupAdminRouter(sessions, NewAdminHandler(mockSvc, testLogger()))

	req, _ := http.NewRequest("GET", "/api/admin/users", nil)
	withSessionCookie(req)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockSvc.AssertNotCalled(t, "ListUsers")
}

func TestAdminRoutes_AnonymousUnauthorized(t *testing.T) {
	mockSvc := new(MockAdminService)
	sessions := new(MockSessionService)
	router := setupAdminRouter(sessions, NewAdminHandler(mockSvc, testLogger()))

	req, _ := http.NewRequest("GET", "/api/admin/users", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminListUsers(t *testing.T) {
	mockSvc := new(MockAdminService)
	admin := &models.User{ID: 1, Username: "root", IsAdmin: true}
	router := setupAdminRouter(authedSessions(admin), NewAdminHandler(mockSvc, testLogger()))

	mockSvc.On("ListUsers", mock.Anything).Return([]models.User{
		{ID: 1, Username: "root", IsAdmin: true, Password: "hash-never-shown"},
		{ID: 2, Username: "reader"},
	}, nil)

	req, _ := http.NewRequest("GET", "/api/admin/users", nil)
	withSessionCookie(req)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var items []dto.AdminUserResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 2)
	assert.NotContains(t, w.Body.String(), "hash-never-shown")
}

func TestAdminDeleteUserHandler_Success(t *testing.T) {
	mockSvc := new(MockAdminService)
	admin := &models.User{ID: 1, Username: "root", IsAdmin: true}
	router := setupAdminRouter(authedSessions(admin), NewAdminHandler(mockSvc, testLogger()))

	mockSvc.On("DeleteUser", mock.Anything, int64(1), int64(3)).
		Return(&models.User{ID: 3, Username: "victim"}, nil)

	req, _ := http.NewRequest("DELETE", "/api/admin/delete_user/3", nil)
	withSessionCookie(req)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "User victim deleted")
}

func TestAdminDeleteUserHandler_Self(t *testing.T) {
	mockSvc := new(MockAdminService)
	admin := &models.User{ID: 1, Username: "root", IsAdmin: true}
	router := setupAdminRouter(authedSessions(admin), NewAdminHandler(mockSvc, testLogger()))

	mockSvc.On("DeleteUser", mock.Anything, int64(1), int64(1)).
		Return(nil, service.ErrCannotDeleteSelf)

	req, _ := http.NewRequest("DELETE", "/api/admin/delete_user/1", nil)
	withSessionCookie(req)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "You cannot delete yourself!")
}

func TestAdminClearBooksHandler(t *testing.T) {
	mockSvc := new(MockAdminService)
	admin := &models.User{ID: 1, Username: "root", IsAdmin: true}
	router := setupAdminRouter(authedSessions(admin), NewAdminHandler(mockSvc, testLogger()))

	mockSvc.On("ClearBooks", mock.Anything, int64(3)).Return(nil)

	req, _ := http.NewRequest("POST", "/api/admin/clear_books/3", nil)
	withSessionCookie(req)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}
