package repository

import (
	"berkconnect-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClubRepository handles database operations for clubs
type ClubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new club repository
func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

// GetByID retrieves a club by ID
func (r *ClubRepository) GetByID(id uuid.UUID) (*models.Club, error) {
	var club models.Club
	err := r.db.First(&club, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}

// GetWithPresident retrieves a club with its primary president preloaded
func (r *ClubRepository) GetWithPresident(id uuid.UUID) (*models.Club, error) {
	var club models.Club
	err := r.db.Preload("President").First(&club, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}

// List retrieves clubs with pagination
func (r *ClubRepository) List(limit, offset int) ([]models.Club, int64, error) {
	var clubs []models.Club
	var total int64

	if err := r.db.Model(&models.Club{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name").Limit(limit).Offset(offset).Find(&clubs).Error
	if err != nil {
		return nil, 0, err
	}

	return clubs, total, nil
}

// UpdateFields applies a partial update to a club
func (r *ClubRepository) UpdateFields(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Club{}).Where("id = ?", id).Updates(updates).Error
}

// ClaimIfUnclaimed marks the club claimed and sets the president pointer, but
// only if it is still unclaimed. The conditional write makes concurrent claims
// of the same club resolve to exactly one winner: the loser sees zero affected
// rows and reports a conflict.
func (r *ClubRepository) ClaimIfUnclaimed(tx *gorm.DB, clubID uuid.UUID, userID string) (bool, error) {
	res := tx.Model(&models.Club{}).
		Where("id = ? AND is_claimed = ?", clubID, false).
		Updates(map[string]interface{}{
			"is_claimed":   true,
			"president_id": userID,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// SetPresident updates the primary president pointer
func (r *ClubRepository) SetPresident(tx *gorm.DB, clubID uuid.UUID, userID string) error {
	return tx.Model(&models.Club{}).
		Where("id = ?", clubID).
		Update("president_id", userID).Error
}

// SetPresidentIfVacant sets the primary president pointer only when no primary
// president is recorded. Used when a co-president is promoted into an empty
// pointer slot; an existing pointer is never overwritten.
func (r *ClubRepository) SetPresidentIfVacant(tx *gorm.DB, clubID uuid.UUID, userID string) error {
	return tx.Model(&models.Club{}).
		Where("id = ? AND president_id IS NULL", clubID).
		Update("president_id", userID).Error
}

// Unclaim clears the claimed flag and the president pointer
func (r *ClubRepository) Unclaim(tx *gorm.DB, clubID uuid.UUID) error {
	return tx.Model(&models.Club{}).
		Where("id = ?", clubID).
		Updates(map[string]interface{}{
			"is_claimed":   false,
			"president_id": nil,
		}).Error
}
