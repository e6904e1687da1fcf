package repository

import (
	"berkconnect-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PresidencyTransferRepository handles the immutable transfer audit rows
type PresidencyTransferRepository struct {
	db *gorm.DB
}

// NewPresidencyTransferRepository creates a new presidency transfer repository
func NewPresidencyTransferRepository(db *gorm.DB) *PresidencyTransferRepository {
	return &PresidencyTransferRepository{db: db}
}

// Create appends a transfer record inside the transfer transaction
func (r *PresidencyTransferRepository) Create(tx *gorm.DB, transfer *models.PresidencyTransfer) error {
	return tx.Create(transfer).Error
}

// ListByClub retrieves a club's transfer history, newest first
func (r *PresidencyTransferRepository) ListByClub(clubID uuid.UUID) ([]models.PresidencyTransfer, error) {
	var transfers []models.PresidencyTransfer
	err := r.db.Where("club_id = ?", clubID).Order("created_at DESC").Find(&transfers).Error
	if err != nil {
		return nil, err
	}
	return transfers, nil
}
