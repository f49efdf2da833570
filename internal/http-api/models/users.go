package models

import (
	"time"
)

type User struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"` // stored trimmed and lower-cased
	Password string `gorm:"column:password_hash;not null" json:"-"`
	IsAdmin  bool   `gorm:"default:false;not null" json:"is_admin"`
	// LastSeen is refreshed on every authenticated request, in the configured
	// reference time zone.
	LastSeen  *time.Time `json:"last_seen,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
