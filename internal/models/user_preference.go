package models

import "time"

// UserPreference stores per-user notification toggles. One row per user,
// created lazily with defaults on first read.
type UserPreference struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	UserID             uint      `json:"user_id" gorm:"uniqueIndex"`
	EmailNotifications bool      `json:"email_notifications" gorm:"default:true"`
	PushNotifications  bool      `json:"push_notifications" gorm:"default:true"`
	MarketingEmails    bool      `json:"marketing_emails" gorm:"default:false"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// UpdatePreferencesRequest defines the request body for updating preferences
type UpdatePreferencesRequest struct {
	EmailNotifications *bool `json:"email_notifications"`
	PushNotifications  *bool `json:"push_notifications"`
	MarketingEmails    *bool `json:"marketing_emails"`
}
