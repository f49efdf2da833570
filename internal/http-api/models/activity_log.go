package models

import "time"

// ActivityLog is declared for schema parity. Nothing writes to it yet.
type ActivityLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"index" json:"user_id"`
	Action    string    `json:"action"`
	Timestamp time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"timestamp"`
}

func (ActivityLog) TableName() string {
	return "activity_log"
}
