package repository

import (
	"time"

	"berkconnect-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadershipRequestRepository handles database operations for leadership requests
type LeadershipRequestRepository struct {
	db *gorm.DB
}

// NewLeadershipRequestRepository creates a new leadership request repository
func NewLeadershipRequestRepository(db *gorm.DB) *LeadershipRequestRepository {
	return &LeadershipRequestRepository{db: db}
}

// GetByID retrieves a leadership request by ID
func (r *LeadershipRequestRepository) GetByID(id uuid.UUID) (*models.LeadershipRequest, error) {
	var request models.LeadershipRequest
	err := r.db.First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// Create inserts a new pending request
func (r *LeadershipRequestRepository) Create(request *models.LeadershipRequest) error {
	return r.db.Create(request).Error
}

// ListPending retrieves all pending requests with club and user details,
// newest first. Coordinators see this view.
func (r *LeadershipRequestRepository) ListPending() ([]models.LeadershipRequest, error) {
	var requests []models.LeadershipRequest
	err := r.db.Preload("Club").Preload("Requester").Preload("Target").
		Where("status = ?", models.RequestStatusPending).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// ListPendingForSponsor retrieves pending requests for the clubs the user
// actively sponsors
func (r *LeadershipRequestRepository) ListPendingForSponsor(sponsorUserID string) ([]models.LeadershipRequest, error) {
	var requests []models.LeadershipRequest
	err := r.db.Preload("Club").Preload("Requester").Preload("Target").
		Joins("JOIN club_sponsors cs ON cs.club_id = leadership_requests.club_id").
		Where("cs.user_id = ? AND cs.status = ? AND leadership_requests.status = ?",
			sponsorUserID, models.SponsorStatusActive, models.RequestStatusPending).
		Order("leadership_requests.created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// MarkApproved flips a request to approved and records the reviewer
func (r *LeadershipRequestRepository) MarkApproved(tx *gorm.DB, id uuid.UUID, reviewerID string) error {
	now := time.Now()
	return tx.Model(&models.LeadershipRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      models.RequestStatusApproved,
			"reviewed_by": reviewerID,
			"reviewed_at": now,
		}).Error
}

// MarkRejected flips a request to rejected with an optional reason
func (r *LeadershipRequestRepository) MarkRejected(tx *gorm.DB, id uuid.UUID, reviewerID string, reason *string) error {
	now := time.Now()
	return tx.Model(&models.LeadershipRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":           models.RequestStatusRejected,
			"reviewed_by":      reviewerID,
			"reviewed_at":      now,
			"rejection_reason": reason,
		}).Error
}
