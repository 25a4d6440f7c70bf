package models

import "time"

// InfluencerReview is a user's rating of an influencer, optionally tied to
// a campaign. Rating is 1-5; text is optional.
type InfluencerReview struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"index"`
	InfluencerID string    `json:"influencer_id" gorm:"index"`
	CampaignID   *uint     `json:"campaign_id"`
	Rating       int       `json:"rating" gorm:"check:rating >= 1 AND rating <= 5"`
	Review       string    `json:"review"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateReviewRequest defines the request body for submitting a review.
// A zero rating fails validation before any write is attempted.
type CreateReviewRequest struct {
	InfluencerID string `json:"influencer_id" validate:"required"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	Review       string `json:"review"`
	CampaignID   *uint  `json:"campaign_id"`
}

// UpdateReviewRequest defines the request body for revising a review in place
type UpdateReviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review"`
}
