package repositories

import (
	"fmt"

	"github.com/zorepad/influencer-hub/backend/internal/models"
	"gorm.io/gorm"
)

// CampaignRepository defines the interface for campaign data operations
type CampaignRepository interface {
	Create(campaign *models.Campaign) error
	GetByID(id uint) (*models.Campaign, error)
	GetByUser(userID uint) ([]models.Campaign, error)
	Update(campaign *models.Campaign) error
	Delete(userID, campaignID uint) error
}

// PostgresCampaignRepository implements CampaignRepository
type PostgresCampaignRepository struct {
	db *gorm.DB
}

func NewPostgresCampaignRepository(db *gorm.DB) *PostgresCampaignRepository {
	return &PostgresCampaignRepository{db: db}
}

func (r *PostgresCampaignRepository) Create(campaign *models.Campaign) error {
	return r.db.Create(campaign).Error
}

func (r *PostgresCampaignRepository) GetByID(id uint) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := r.db.First(&campaign, id).Error; err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (r *PostgresCampaignRepository) GetByUser(userID uint) ([]models.Campaign, error) {
	var campaigns []models.Campaign
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&campaigns).Error
	return campaigns, err
}

func (r *PostgresCampaignRepository) Update(campaign *models.Campaign) error {
	return r.db.Save(campaign).Error
}

// Delete removes a campaign scoped to its owner. Invites keep their
// campaign id; nothing cascades.
func (r *PostgresCampaignRepository) Delete(userID, campaignID uint) error {
	res := r.db.Where("user_id = ? AND id = ?", userID, campaignID).Delete(&models.Campaign{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("campaign not found")
	}
	return nil
}
