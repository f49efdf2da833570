package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"booktracker/internal/http-api/models"
	"booktracker/internal/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSessionRepository mocks the SessionRepository interface
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Save(ctx context.Context, sid string, userID int64, ttl time.Duration) error {
	args := m.Called(ctx, sid, userID, ttl)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, sid string) (int64, error) {
	args := m.Called(ctx, sid)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionRepository) Delete(ctx context.Context, sid string) error {
	args := m.Called(ctx, sid)
	return args.Error(0)
}

func newTestSessionService(sessionRepo *MockSessionRepository, userRepo *MockUserRepository) SessionService {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSessionService(sessionRepo, userRepo, "test-secret-test-secret-test-secret", time.Hour, time.UTC, logger)
}

func TestSession_CreateResolveRoundtrip(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	userRepo := new(MockUserRepository)
	svc := newTestSessionService(sessionRepo, userRepo)

	user := &models.User{ID: 7, Username: "testuser"}

	var storedSID string
	sessionRepo.On("Save", mock.Anything, mock.AnythingOfType("string"), int64(7), time.Hour).
		Run(func(args mock.Arguments) { storedSID = args.String(1) }).
		Return(nil)

	token, err := svc.Create(context.Background(), user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	sessionRepo.On("Get", mock.Anything, storedSID).Return(int64(7), nil)
	userRepo.On("FindByID", mock.Anything, int64(7)).Return(user, nil)

	resolved, err := svc.Resolve(context.Background(), token)
	assert.NoError(t, err)
	assert.Equal(t, "testuser", resolved.Username)
}

func TestSession_ResolveRevoked(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	userRepo := new(MockUserRepository)
	svc := newTestSessionService(sessionRepo, userRepo)

	sessionRepo.On("Save", mock.Anything, mock.Anything, int64(7), time.Hour).Return(nil)
	token, err := svc.Create(context.Background(), &models.User{ID: 7})
	assert.NoError(t, err)

	// logout removed the sid from the store; the signed token alone is not enough
	sessionRepo.On("Get", mock.Anything, mock.Anything).Return(int64(0), repository.ErrSessionNotFound)

	_, err = svc.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSession_ResolveGarbageToken(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	userRepo := new(MockUserRepository)
	svc := newTestSessionService(sessionRepo, userRepo)

	_, err := svc.Resolve(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, ErrInvalidSession)
	sessionRepo.AssertNotCalled(t, "Get")
}

func TestSession_ResolveWrongSecret(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	userRepo := new(MockUserRepository)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	minter := NewSessionService(sessionRepo, userRepo, "other-secret-other-secret-other!", time.Hour, time.UTC, logger)
	sessionRepo.On("Save", mock.Anything, mock.Anything, int64(7), time.Hour).Return(nil)
	token, err := minter.Create(context.Background(), &models.User{ID: 7})
	assert.NoError(t, err)

	verifier := newTestSessionService(sessionRepo, userRepo)
	_, err = verifier.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSession_DestroyDeletesStoreEntry(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	userRepo := new(MockUserRepository)
	svc := newTestSessionService(sessionRepo, userRepo)

	var storedSID string
	sessionRepo.On("Save", mock.Anything, mock.AnythingOfType("string"), int64(7), time.Hour).
		Run(func(args mock.Arguments) { storedSID = args.String(1) }).
		Return(nil)
	token, err := svc.Create(context.Background(), &models.User{ID: 7})
	assert.NoError(t, err)

	sessionRepo.On("Delete", mock.Anything, mock.MatchedBy(func(sid string) bool { return sid == storedSID })).Return(nil)

	err = svc.Destroy(context.Background(), token)
	assert.NoError(t, err)
	sessionRepo.AssertExpectations(t)
}

func TestSession_TouchSwallowsErrors(t *testing.T) {
	sessionRepo := new(MockSessionRepository)
	userRepo := new(MockUserRepository)
	svc := newTestSessionService(sessionRepo, userRepo)

	userRepo.On("TouchLastSeen", mock.Anything, int64(7), mock.AnythingOfType("time.Time")).
		Return(errors.New("db gone"))

	// must not panic or propagate: the touch is best-effort
	svc.Touch(context.Background(), 7)
	userRepo.AssertExpectations(t)
}
