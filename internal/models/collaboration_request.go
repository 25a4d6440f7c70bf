package models

import "time"

// CollaborationRequest is a user-initiated proposal toward an influencer,
// optionally tied to one of the user's campaigns.
type CollaborationRequest struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"index"`
	InfluencerID string    `json:"influencer_id" gorm:"index"`
	CampaignID   *uint     `json:"campaign_id"`
	Message      string    `json:"message"`
	Status       string    `json:"status" gorm:"type:varchar(20);default:'pending'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateCollaborationRequest defines the request body for sending a proposal
type CreateCollaborationRequest struct {
	InfluencerID string `json:"influencer_id" validate:"required"`
	Message      string `json:"message" validate:"required,min=1"`
	CampaignID   *uint  `json:"campaign_id"`
}

// UpdateCollaborationStatusRequest defines the request body for a status change
type UpdateCollaborationStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
