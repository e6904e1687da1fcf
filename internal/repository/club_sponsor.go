package repository

import (
	"berkconnect-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClubSponsorRepository handles database operations for club sponsorships
type ClubSponsorRepository struct {
	db *gorm.DB
}

// NewClubSponsorRepository creates a new club sponsor repository
func NewClubSponsorRepository(db *gorm.DB) *ClubSponsorRepository {
	return &ClubSponsorRepository{db: db}
}

// GetActive retrieves the active sponsorship for a (club, user) pair
func (r *ClubSponsorRepository) GetActive(clubID uuid.UUID, userID string) (*models.ClubSponsor, error) {
	var sponsor models.ClubSponsor
	err := r.db.First(&sponsor, "club_id = ? AND user_id = ? AND status = ?",
		clubID, userID, models.SponsorStatusActive).Error
	if err != nil {
		return nil, err
	}
	return &sponsor, nil
}

// ActiveClubIDsByUser returns the clubs the user actively sponsors
func (r *ClubSponsorRepository) ActiveClubIDsByUser(userID string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.ClubSponsor{}).
		Where("user_id = ? AND status = ?", userID, models.SponsorStatusActive).
		Pluck("club_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ActiveUserIDsByClub returns the active sponsors of a club
func (r *ClubSponsorRepository) ActiveUserIDsByClub(clubID uuid.UUID) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.ClubSponsor{}).
		Where("club_id = ? AND status = ?", clubID, models.SponsorStatusActive).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Create inserts a sponsorship row
func (r *ClubSponsorRepository) Create(sponsor *models.ClubSponsor) error {
	return r.db.Create(sponsor).Error
}

// MarkRemoved soft-deletes a sponsorship. History stays in the table.
func (r *ClubSponsorRepository) MarkRemoved(clubID uuid.UUID, userID string) error {
	return r.db.Model(&models.ClubSponsor{}).
		Where("club_id = ? AND user_id = ?", clubID, userID).
		Update("status", models.SponsorStatusRemoved).Error
}
