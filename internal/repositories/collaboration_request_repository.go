package repositories

import (
	"github.com/zorepad/influencer-hub/backend/internal/models"
	"gorm.io/gorm"
)

// CollaborationRequestRepository defines the interface for proposal operations
type CollaborationRequestRepository interface {
	Create(request *models.CollaborationRequest) error
	GetByID(id uint) (*models.CollaborationRequest, error)
	GetByUser(userID uint) ([]models.CollaborationRequest, error)
	UpdateStatus(userID, requestID uint, status string) error
}

type postgresCollaborationRequestRepository struct {
	db *gorm.DB
}

func NewPostgresCollaborationRequestRepository(db *gorm.DB) CollaborationRequestRepository {
	return &postgresCollaborationRequestRepository{db: db}
}

func (r *postgresCollaborationRequestRepository) Create(request *models.CollaborationRequest) error {
	return r.db.Create(request).Error
}

func (r *postgresCollaborationRequestRepository) GetByID(id uint) (*models.CollaborationRequest, error) {
	var request models.CollaborationRequest
	if err := r.db.First(&request, id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *postgresCollaborationRequestRepository) GetByUser(userID uint) ([]models.CollaborationRequest, error) {
	var requests []models.CollaborationRequest
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&requests).Error
	return requests, err
}

// UpdateStatus changes the request status scoped to its owner. GORM stamps
// updated_at on the same write.
func (r *postgresCollaborationRequestRepository) UpdateStatus(userID, requestID uint, status string) error {
	res := r.db.Model(&models.CollaborationRequest{}).
		Where("user_id = ? AND id = ?", userID, requestID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
