package models

import "time"

// CampaignInvite ties an influencer to a campaign with a response status.
// Status values are free-form at this layer ("pending", "accepted",
// "declined", ...).
type CampaignInvite struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	CampaignID   uint       `json:"campaign_id" gorm:"index"`
	InfluencerID string     `json:"influencer_id" gorm:"index"`
	Status       string     `json:"status" gorm:"type:varchar(20);default:'pending'"`
	Notes        string     `json:"notes"`
	InvitedAt    time.Time  `json:"invited_at" gorm:"autoCreateTime"`
	RespondedAt  *time.Time `json:"responded_at"`
}

// CreateCampaignInviteRequest defines the request body for a single invite
type CreateCampaignInviteRequest struct {
	CampaignID   uint   `json:"campaign_id" validate:"required"`
	InfluencerID string `json:"influencer_id" validate:"required"`
	Notes        string `json:"notes"`
}

// BulkInviteRequest defines the request body for inviting several
// influencers to one campaign in a single call
type BulkInviteRequest struct {
	CampaignID    uint     `json:"campaign_id" validate:"required"`
	InfluencerIDs []string `json:"influencer_ids" validate:"required,min=1,dive,required"`
	Notes         string   `json:"notes"`
}

// UpdateInviteStatusRequest defines the request body for responding to an invite
type UpdateInviteStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
