package dto

import "booktracker/internal/http-api/models"

// CreateBookRequest: payload for adding a book. Only title and author are
// accepted at creation; everything else starts at its default.
type CreateBookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// UpdateBookRequest: partial update payload. Pointer fields distinguish
// "absent" from zero values so omitted fields stay untouched.
type UpdateBookRequest struct {
	Status      *string `json:"status,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Description *string `json:"description,omitempty"`
	CurrentPage *int    `json:"current_page,omitempty"`
	Rating      *int    `json:"rating,omitempty"`
}

// BookResponse: a single tracker entry as returned to its owner
type BookResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Status      string `json:"status"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	CurrentPage int    `json:"current_page"`
	Rating      int    `json:"rating"`
}

// FromBookModel converts the persisted record to its response shape.
func FromBookModel(b models.Book) BookResponse {
	return BookResponse{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Status:      b.Status,
		ImageURL:    b.ImageURL,
		Description: b.Description,
		CurrentPage: b.CurrentPage,
		Rating:      b.Rating,
	}
}
