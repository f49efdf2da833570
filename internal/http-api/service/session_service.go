package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"booktracker/internal/http-api/models"
	"booktracker/internal/http-api/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidSession = errors.New("invalid or expired session")
)

// SessionService issues and resolves the session tokens carried in the auth
// cookie. Tokens are HMAC-signed JWTs whose session id must still exist in
// the server-side store, so logout revokes a token before it expires.
type SessionService interface {
	Create(ctx context.Context, user *models.User) (string, error)
	Resolve(ctx context.Context, token string) (*models.User, error)
	Destroy(ctx context.Context, token string) error
	// Touch updates the user's last-seen timestamp in the reference zone.
	// Best-effort: failures are logged and never propagate.
	Touch(ctx context.Context, userID int64)
}

type sessionService struct {
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
	secret      string
	ttl         time.Duration
	loc         *time.Location
	logger      *slog.Logger
}

func NewSessionService(
	sessionRepo repository.SessionRepository,
	userRepo repository.UserRepository,
	secret string,
	ttl time.Duration,
	loc *time.Location,
	logger *slog.Logger,
) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		secret:      secret,
		ttl:         ttl,
		loc:         loc,
		logger:      logger,
	}
}

func (s *sessionService) Create(ctx context.Context, user *models.User) (string, error) {
	sid := uuid.New().String()

	if err := s.sessionRepo.Save(ctx, sid, user.ID, s.ttl); err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sid":     sid,
		"user_id": user.ID,
		"exp":     time.Now().Add(s.ttl).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *sessionService) Resolve(ctx context.Context, tokenString string) (*models.User, error) {
	sid, err := s.parseSessionID(tokenString)
	if err != nil {
		return nil, ErrInvalidSession
	}

	// the store is authoritative: a signed token whose sid was revoked at
	// logout resolves to anonymous
	userID, err := s.sessionRepo.Get(ctx, sid)
	if err != nil {
		return nil, ErrInvalidSession
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrInvalidSession
	}

	return user, nil
}

func (s *sessionService) Destroy(ctx context.Context, tokenString string) error {
	sid, err := s.parseSessionID(tokenString)
	if err != nil {
		return ErrInvalidSession
	}
	return s.sessionRepo.Delete(ctx, sid)
}

func (s *sessionService) Touch(ctx context.Context, userID int64) {
	now := time.Now().In(s.loc)
	if err := s.userRepo.TouchLastSeen(ctx, userID, now); err != nil {
		s.logger.Warn("failed to update last seen", "user_id", userID, "error", err)
	}
}

func (s *sessionService) parseSessionID(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}

	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", errors.New("missing session id claim")
	}
	return sid, nil
}
