package models

import "time"

// Notification is an in-app notification row (PostgreSQL)
type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type" gorm:"size:30;default:'info'"` // info, success, warning, error
	Read      bool      `json:"read" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// DispatchNotificationRequest defines the request body for the dispatch endpoint
type DispatchNotificationRequest struct {
	UserID  uint   `json:"user_id" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
	Type    string `json:"type" validate:"omitempty,oneof=info success warning error"`
}
