package service

import (
	"context"
	"errors"

	"booktracker/internal/http-api/models"
	"booktracker/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrCannotDeleteSelf = errors.New("you cannot delete yourself")
	ErrUserNotFound     = errors.New("user not found")
)

// AdminService covers the admin-only bulk operations. Callers must already
// have passed the admin gate; the only check left here is self-protection.
type AdminService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	// DeleteUser removes the user and all their books in one transaction.
	DeleteUser(ctx context.Context, callerID, userID int64) (*models.User, error)
	// ClearBooks wipes the target's collection. The target not existing (or
	// owning nothing) is still success.
	ClearBooks(ctx context.Context, userID int64) error
}

type adminService struct {
	userRepo repository.UserRepository
	bookRepo repository.BookRepository
}

func NewAdminService(userRepo repository.UserRepository, bookRepo repository.BookRepository) AdminService {
	return &adminService{userRepo: userRepo, bookRepo: bookRepo}
}

func (s *adminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.ListAll(ctx)
}

func (s *adminService) DeleteUser(ctx context.Context, callerID, userID int64) (*models.User, error) {
	// self-protection comes after the admin gate but before any lookup cost
	if callerID == userID {
		return nil, ErrCannotDeleteSelf
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := s.userRepo.DeleteWithBooks(ctx, userID); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *adminService) ClearBooks(ctx context.Context, userID int64) error {
	return s.bookRepo.DeleteByOwner(ctx, userID)
}
