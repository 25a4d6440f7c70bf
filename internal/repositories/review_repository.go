package repositories

import (
	"github.com/zorepad/influencer-hub/backend/internal/models"
	"gorm.io/gorm"
)

// ReviewRepository defines the interface for influencer review operations
type ReviewRepository interface {
	Create(review *models.InfluencerReview) error
	GetByID(id uint) (*models.InfluencerReview, error)
	GetByUser(userID uint) ([]models.InfluencerReview, error)
	GetByInfluencer(influencerID string) ([]models.InfluencerReview, error)
	Update(userID, reviewID uint, rating int, text string) error
}

type postgresReviewRepository struct {
	db *gorm.DB
}

func NewPostgresReviewRepository(db *gorm.DB) ReviewRepository {
	return &postgresReviewRepository{db: db}
}

func (r *postgresReviewRepository) Create(review *models.InfluencerReview) error {
	return r.db.Create(review).Error
}

func (r *postgresReviewRepository) GetByID(id uint) (*models.InfluencerReview, error) {
	var review models.InfluencerReview
	if err := r.db.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *postgresReviewRepository) GetByUser(userID uint) ([]models.InfluencerReview, error) {
	var reviews []models.InfluencerReview
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

func (r *postgresReviewRepository) GetByInfluencer(influencerID string) ([]models.InfluencerReview, error) {
	var reviews []models.InfluencerReview
	err := r.db.Where("influencer_id = ?", influencerID).Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

// Update revises rating and text in place, scoped to the review's owner.
// created_at is never touched.
func (r *postgresReviewRepository) Update(userID, reviewID uint, rating int, text string) error {
	res := r.db.Model(&models.InfluencerReview{}).
		Where("user_id = ? AND id = ?", userID, reviewID).
		Updates(map[string]interface{}{"rating": rating, "review": text})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
