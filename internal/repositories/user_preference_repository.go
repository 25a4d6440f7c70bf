package repositories

import (
	"github.com/zorepad/influencer-hub/backend/internal/models"
	"gorm.io/gorm"
)

// UserPreferenceRepository defines the interface for preference operations
type UserPreferenceRepository interface {
	GetOrCreate(userID uint) (*models.UserPreference, error)
	Update(pref *models.UserPreference) error
}

type postgresUserPreferenceRepository struct {
	db *gorm.DB
}

func NewPostgresUserPreferenceRepository(db *gorm.DB) UserPreferenceRepository {
	return &postgresUserPreferenceRepository{db: db}
}

// GetOrCreate returns the user's preference row, creating it with defaults
// on first access.
func (r *postgresUserPreferenceRepository) GetOrCreate(userID uint) (*models.UserPreference, error) {
	var pref models.UserPreference
	err := r.db.Where("user_id = ?", userID).First(&pref).Error
	if err == gorm.ErrRecordNotFound {
		pref = models.UserPreference{
			UserID:             userID,
			EmailNotifications: true,
			PushNotifications:  true,
			MarketingEmails:    false,
		}
		if err := r.db.Create(&pref).Error; err != nil {
			return nil, err
		}
		return &pref, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *postgresUserPreferenceRepository) Update(pref *models.UserPreference) error {
	return r.db.Save(pref).Error
}
