package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"booktracker/internal/http-api/dto"
	"booktracker/internal/http-api/middleware"
	"booktracker/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc    service.AdminService
	logger *slog.Logger
}

func NewAdminHandler(svc service.AdminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, logger: logger}
}

// RegisterRoutes mounts the admin surface. The group is expected to carry
// RequireAuth and RequireAdmin already.
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.ListUsers)
	rg.DELETE("/delete_user/:id", h.DeleteUser)
	rg.POST("/clear_books/:id", h.ClearBooks)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list users", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	items := make([]dto.AdminUserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, dto.FromUserModel(u))
	}
	c.JSON(http.StatusOK, items)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	caller := middleware.CurrentUser(c)

	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.AdminActionResponse{Success: false, Message: "invalid user id"})
		return
	}

	deleted, err := h.svc.DeleteUser(c.Request.Context(), caller.ID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCannotDeleteSelf):
			c.JSON(http.StatusBadRequest, dto.AdminActionResponse{Success: false, Message: "You cannot delete yourself!"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.AdminActionResponse{Success: false, Message: "user not found"})
		default:
			h.logger.Error("failed to delete user", "target_id", userID, "error", err)
			c.JSON(http.StatusInternalServerError, dto.AdminActionResponse{Success: false, Message: "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.AdminActionResponse{
		Success: true,
		Message: fmt.Sprintf("User %s deleted", deleted.Username),
	})
}

func (h *AdminHandler) ClearBooks(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.AdminActionResponse{Success: false, Message: "invalid user id"})
		return
	}

	// no existence check on the target: clearing an empty or unknown
	// collection succeeds with zero deletions
	if err := h.svc.ClearBooks(c.Request.Context(), userID); err != nil {
		h.logger.Error("failed to clear books", "target_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, dto.AdminActionResponse{Success: false, Message: "internal error"})
		return
	}

	c.JSON(http.StatusOK, dto.AdminActionResponse{Success: true})
}
