package service

import (
	"context"
	"errors"

	"booktracker/internal/http-api/models"
	"booktracker/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrTitleRequired    = errors.New("title is required")
	ErrBookNotFound     = errors.New("book not found")
	ErrNotOwner         = errors.New("forbidden")
	ErrPageOutOfRange   = errors.New("current_page must not be negative")
	ErrRatingOutOfRange = errors.New("rating must be between 0 and 5")
)

// MaxRating bounds the rating field. The tracker uses a five-star scale with
// 0 meaning unrated.
const MaxRating = 5

// BookUpdate carries a partial update. Nil fields are left untouched.
type BookUpdate struct {
	Status      *string
	ImageURL    *string
	Description *string
	CurrentPage *int
	Rating      *int
}

type BookService interface {
	Create(ctx context.Context, ownerID int64, title, author string) (*models.Book, error)
	List(ctx context.Context, ownerID int64) ([]models.Book, error)
	Get(ctx context.Context, ownerID, bookID int64) (*models.Book, error)
	Update(ctx context.Context, ownerID, bookID int64, update BookUpdate) (*models.Book, error)
	Delete(ctx context.Context, ownerID, bookID int64) error
}

type bookService struct {
	bookRepo repository.BookRepository
}

func NewBookService(bookRepo repository.BookRepository) BookService {
	return &bookService{bookRepo: bookRepo}
}

// Create adds a book with caller-supplied title and author; every other field
// starts at its documented default.
func (s *bookService) Create(ctx context.Context, ownerID int64, title, author string) (*models.Book, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}

	book := &models.Book{
		Title:       title,
		Author:      author,
		Status:      models.StatusPlanned,
		ImageURL:    "",
		Description: "",
		CurrentPage: 0,
		Rating:      0,
		UserID:      ownerID,
	}

	if err := s.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *bookService) List(ctx context.Context, ownerID int64) ([]models.Book, error) {
	return s.bookRepo.ListByOwner(ctx, ownerID)
}

// Get fetches a book by id. Existence is checked before ownership so a caller
// probing someone else's record sees 403, not 404.
func (s *bookService) Get(ctx context.Context, ownerID, bookID int64) (*models.Book, error) {
	return s.getOwned(ctx, ownerID, bookID)
}

func (s *bookService) Update(ctx context.Context, ownerID, bookID int64, update BookUpdate) (*models.Book, error) {
	if update.CurrentPage != nil && *update.CurrentPage < 0 {
		return nil, ErrPageOutOfRange
	}
	if update.Rating != nil && (*update.Rating < 0 || *update.Rating > MaxRating) {
		return nil, ErrRatingOutOfRange
	}

	book, err := s.getOwned(ctx, ownerID, bookID)
	if err != nil {
		return nil, err
	}

	if update.Status != nil {
		book.Status = *update.Status
	}
	if update.ImageURL != nil {
		book.ImageURL = *update.ImageURL
	}
	if update.Description != nil {
		book.Description = *update.Description
	}
	if update.CurrentPage != nil {
		book.CurrentPage = *update.CurrentPage
	}
	if update.Rating != nil {
		book.Rating = *update.Rating
	}

	if err := s.bookRepo.Save(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *bookService) Delete(ctx context.Context, ownerID, bookID int64) error {
	if _, err := s.getOwned(ctx, ownerID, bookID); err != nil {
		return err
	}
	return s.bookRepo.Delete(ctx, bookID)
}

func (s *bookService) getOwned(ctx context.Context, ownerID, bookID int64) (*models.Book, error) {
	book, err := s.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	if book.UserID != ownerID {
		return nil, ErrNotOwner
	}
	return book, nil
}
