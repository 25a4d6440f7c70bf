package repositories

import (
	"fmt"

	"github.com/zorepad/influencer-hub/backend/internal/models"
	"gorm.io/gorm"
)

// SavedInfluencerRepository defines the interface for saved-list operations.
// Every query is scoped by the owning user id.
type SavedInfluencerRepository interface {
	Save(saved *models.SavedInfluencer) error
	Remove(userID, savedID uint) error
	IsSaved(userID uint, influencerID string) (bool, error)
	GetByUser(userID uint) ([]models.SavedInfluencer, error)
}

// PostgresSavedInfluencerRepository implements SavedInfluencerRepository
type PostgresSavedInfluencerRepository struct {
	db *gorm.DB
}

func NewPostgresSavedInfluencerRepository(db *gorm.DB) *PostgresSavedInfluencerRepository {
	return &PostgresSavedInfluencerRepository{db: db}
}

func (r *PostgresSavedInfluencerRepository) Save(saved *models.SavedInfluencer) error {
	return r.db.Create(saved).Error
}

// Remove deletes a saved entry by its own id, scoped to the owner so one
// user cannot remove another's bookmark.
func (r *PostgresSavedInfluencerRepository) Remove(userID, savedID uint) error {
	res := r.db.Where("user_id = ? AND id = ?", userID, savedID).Delete(&models.SavedInfluencer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("saved influencer not found")
	}
	return nil
}

func (r *PostgresSavedInfluencerRepository) IsSaved(userID uint, influencerID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.SavedInfluencer{}).Where("user_id = ? AND influencer_id = ?", userID, influencerID).Count(&count).Error
	return count > 0, err
}

func (r *PostgresSavedInfluencerRepository) GetByUser(userID uint) ([]models.SavedInfluencer, error) {
	var saved []models.SavedInfluencer
	err := r.db.Where("user_id = ?", userID).Order("saved_at DESC").Find(&saved).Error
	return saved, err
}
