package models

import "time"

// Campaign is a user-owned marketing initiative. Platform and post type
// lists are stored as JSON columns.
type Campaign struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index"`
	Name        string    `json:"name"`
	Country     string    `json:"country"`
	Niche       string    `json:"niche"`
	Platforms   []string  `json:"platforms" gorm:"serializer:json"`
	PostTypes   []string  `json:"post_types" gorm:"serializer:json"`
	StartDate   string    `json:"start_date"` // YYYY-MM-DD; start <= end is not enforced
	EndDate     string    `json:"end_date"`
	BudgetRange string    `json:"budget_range"`
	AgeRange    string    `json:"age_range"`
	Gender      string    `json:"gender"`
	StopWords   string    `json:"stop_words"`
	Brief       string    `json:"brief"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CampaignCompact is the subset embedded in association responses.
type CampaignCompact struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (c *Campaign) ToCompact() CampaignCompact {
	return CampaignCompact{ID: c.ID, Name: c.Name}
}

// CreateCampaignRequest defines the request body for creating a campaign
type CreateCampaignRequest struct {
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Country     string   `json:"country"`
	Niche       string   `json:"niche"`
	Platforms   []string `json:"platforms" validate:"omitempty,dive,oneof=Instagram TikTok YouTube Twitter"`
	PostTypes   []string `json:"post_types"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	BudgetRange string   `json:"budget_range"`
	AgeRange    string   `json:"age_range"`
	Gender      string   `json:"gender"`
	StopWords   string   `json:"stop_words"`
	Brief       string   `json:"brief"`
}

// UpdateCampaignRequest defines the request body for updating a campaign
type UpdateCampaignRequest struct {
	Name        string   `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Country     string   `json:"country,omitempty"`
	Niche       string   `json:"niche,omitempty"`
	Platforms   []string `json:"platforms,omitempty" validate:"omitempty,dive,oneof=Instagram TikTok YouTube Twitter"`
	PostTypes   []string `json:"post_types,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	BudgetRange string   `json:"budget_range,omitempty"`
	AgeRange    string   `json:"age_range,omitempty"`
	Gender      string   `json:"gender,omitempty"`
	StopWords   string   `json:"stop_words,omitempty"`
	Brief       string   `json:"brief,omitempty"`
}
