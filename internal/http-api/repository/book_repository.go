package repository

import (
	"context"
	"fmt"

	"booktracker/internal/http-api/models"

	"gorm.io/gorm"
)

type BookRepository interface {
	Create(ctx context.Context, book *models.Book) error
	ListByOwner(ctx context.Context, userID int64) ([]models.Book, error)
	// FindByID looks the book up by id alone; ownership is the service's
	// concern so that "not found" and "forbidden" stay distinguishable.
	FindByID(ctx context.Context, id int64) (*models.Book, error)
	Save(ctx context.Context, book *models.Book) error
	Delete(ctx context.Context, id int64) error
	DeleteByOwner(ctx context.Context, userID int64) error
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

func (r *bookRepository) ListByOwner(ctx context.Context, userID int64) ([]models.Book, error) {
	var books []models.Book

	// sorted by id for deterministic listings, callers must not rely on it
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&books).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	return books, nil
}

func (r *bookRepository) FindByID(ctx context.Context, id int64) (*models.Book, error) {
	var book models.Book
	if err := r.db.WithContext(ctx).First(&book, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) Save(ctx context.Context, book *models.Book) error {
	if err := r.db.WithContext(ctx).Save(book).Error; err != nil {
		return fmt.Errorf("save book: %w", err)
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Book{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByOwner removes every book the user owns. Zero rows affected is not
// an error; the admin bulk clear succeeds silently on empty collections.
func (r *bookRepository) DeleteByOwner(ctx context.Context, userID int64) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Book{}).Error; err != nil {
		return fmt.Errorf("clear books: %w", err)
	}
	return nil
}
