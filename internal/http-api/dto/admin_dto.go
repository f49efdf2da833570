package dto

import (
	"time"

	"booktracker/internal/http-api/models"
)

// AdminUserResponse: one row of the admin user listing
type AdminUserResponse struct {
	ID       int64      `json:"id"`
	Username string     `json:"username"`
	Email    string     `json:"email"`
	IsAdmin  bool       `json:"is_admin"`
	LastSeen *time.Time `json:"last_seen,omitempty"`
}

// AdminActionResponse: outcome of an admin mutation
type AdminActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// FromUserModel converts a user record to its admin listing shape. The
// password hash never leaves the model.
func FromUserModel(u models.User) AdminUserResponse {
	return AdminUserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
		LastSeen: u.LastSeen,
	}
}
