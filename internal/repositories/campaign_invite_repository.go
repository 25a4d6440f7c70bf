package repositories

import (
	"time"

	"github.com/zorepad/influencer-hub/backend/internal/models"
	"gorm.io/gorm"
)

// CampaignInviteRepository defines the interface for invite operations
type CampaignInviteRepository interface {
	Create(invite *models.CampaignInvite) error
	CreateBatch(invites []models.CampaignInvite) error
	GetByID(id uint) (*models.CampaignInvite, error)
	GetByCampaign(campaignID uint) ([]models.CampaignInvite, error)
	GetByCampaigns(campaignIDs []uint) ([]models.CampaignInvite, error)
	UpdateStatus(inviteID uint, status string) error
}

type postgresCampaignInviteRepository struct {
	db *gorm.DB
}

func NewPostgresCampaignInviteRepository(db *gorm.DB) CampaignInviteRepository {
	return &postgresCampaignInviteRepository{db: db}
}

func (r *postgresCampaignInviteRepository) Create(invite *models.CampaignInvite) error {
	return r.db.Create(invite).Error
}

// CreateBatch inserts one invite row per influencer in a single statement.
func (r *postgresCampaignInviteRepository) CreateBatch(invites []models.CampaignInvite) error {
	if len(invites) == 0 {
		return nil
	}
	return r.db.Create(&invites).Error
}

func (r *postgresCampaignInviteRepository) GetByID(id uint) (*models.CampaignInvite, error) {
	var invite models.CampaignInvite
	if err := r.db.First(&invite, id).Error; err != nil {
		return nil, err
	}
	return &invite, nil
}

func (r *postgresCampaignInviteRepository) GetByCampaign(campaignID uint) ([]models.CampaignInvite, error) {
	var invites []models.CampaignInvite
	err := r.db.Where("campaign_id = ?", campaignID).Order("invited_at DESC").Find(&invites).Error
	return invites, err
}

func (r *postgresCampaignInviteRepository) GetByCampaigns(campaignIDs []uint) ([]models.CampaignInvite, error) {
	var invites []models.CampaignInvite
	if len(campaignIDs) == 0 {
		return invites, nil
	}
	err := r.db.Where("campaign_id IN ?", campaignIDs).Order("invited_at DESC").Find(&invites).Error
	return invites, err
}

// UpdateStatus records the response and stamps responded_at.
func (r *postgresCampaignInviteRepository) UpdateStatus(inviteID uint, status string) error {
	now := time.Now()
	return r.db.Model(&models.CampaignInvite{}).Where("id = ?", inviteID).
		Updates(map[string]interface{}{"status": status, "responded_at": &now}).Error
}
