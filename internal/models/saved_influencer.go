package models

import "time"

// SavedInfluencer bookmarks a catalog entry for a user. The composite
// unique index backs the uniqueness invariant; the handler-level duplicate
// guard only exists for the friendlier "already saved" response.
type SavedInfluencer struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"index;uniqueIndex:idx_user_influencer_save"`
	InfluencerID string    `json:"influencer_id" gorm:"index;uniqueIndex:idx_user_influencer_save"`
	SavedAt      time.Time `json:"saved_at" gorm:"autoCreateTime"`
}
