package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"booktracker/internal/http-api/dto"
	"booktracker/internal/http-api/middleware"
	"booktracker/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	svc    service.BookService
	logger *slog.Logger
}

func NewBookHandler(svc service.BookService, logger *slog.Logger) *BookHandler {
	return &BookHandler{svc: svc, logger: logger}
}

func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func (h *BookHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	books, err := h.svc.List(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("failed to list books", "user_id", user.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	items := make([]dto.BookResponse, 0, len(books))
	for _, b := range books {
		items = append(items, dto.FromBookModel(b))
	}
	c.JSON(http.StatusOK, items)
}

func (h *BookHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	book, err := h.svc.Create(c.Request.Context(), user.ID, req.Title, req.Author)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
			return
		}
		// never echo the raw error back to the client
		h.logger.Error("failed to create book", "user_id", user.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": book.ID, "message": "Book added!"})
}

func (h *BookHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)

	bookID, ok := h.bookID(c)
	if !ok {
		return
	}

	book, err := h.svc.Get(c.Request.Context(), user.ID, bookID)
	if err != nil {
		h.writeBookError(c, user.ID, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromBookModel(*book))
}

func (h *BookHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	bookID, ok := h.bookID(c)
	if !ok {
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := service.BookUpdate{
		Status:      req.Status,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		CurrentPage: req.CurrentPage,
		Rating:      req.Rating,
	}

	if _, err := h.svc.Update(c.Request.Context(), user.ID, bookID, update); err != nil {
		if errors.Is(err, service.ErrPageOutOfRange) || errors.Is(err, service.ErrRatingOutOfRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.writeBookError(c, user.ID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *BookHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)

	bookID, ok := h.bookID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), user.ID, bookID); err != nil {
		h.writeBookError(c, user.ID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *BookHandler) bookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return 0, false
	}
	return id, true
}

func (h *BookHandler) writeBookError(c *gin.Context, userID int64, err error) {
	switch {
	case errors.Is(err, service.ErrBookNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	default:
		h.logger.Error("book operation failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
