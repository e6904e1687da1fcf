package repository

import (
	"berkconnect-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ClubMemberRepository handles database operations for club memberships
type ClubMemberRepository struct {
	db *gorm.DB
}

// NewClubMemberRepository creates a new club member repository
func NewClubMemberRepository(db *gorm.DB) *ClubMemberRepository {
	return &ClubMemberRepository{db: db}
}

// GetByClubAndUser retrieves a membership row
func (r *ClubMemberRepository) GetByClubAndUser(clubID uuid.UUID, userID string) (*models.ClubMember, error) {
	var member models.ClubMember
	err := r.db.First(&member, "club_id = ? AND user_id = ?", clubID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListByClub retrieves all members of a club with user details
func (r *ClubMemberRepository) ListByClub(clubID uuid.UUID) ([]models.ClubMember, error) {
	var members []models.ClubMember
	err := r.db.Preload("User").Where("club_id = ?", clubID).Order("joined_at").Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// ListPresidents retrieves every member holding the president role in a club
func (r *ClubMemberRepository) ListPresidents(clubID uuid.UUID) ([]models.ClubMember, error) {
	var members []models.ClubMember
	err := r.db.Where("club_id = ? AND role = ?", clubID, models.ClubRolePresident).Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// CountByClub counts a club's members
func (r *ClubMemberRepository) CountByClub(clubID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.ClubMember{}).Where("club_id = ?", clubID).Count(&count).Error
	return count, err
}

// ClubIDsByUserAndRole returns the clubs where the user holds exactly the given role
func (r *ClubMemberRepository) ClubIDsByUserAndRole(userID string, role models.ClubRole) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.ClubMember{}).
		Where("user_id = ? AND role = ?", userID, role).
		Pluck("club_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// HasRoleInAnyClub reports whether the user holds any of the roles in any club
func (r *ClubMemberRepository) HasRoleInAnyClub(userID string, roles []models.ClubRole) (bool, error) {
	var count int64
	err := r.db.Model(&models.ClubMember{}).
		Where("user_id = ? AND role IN ?", userID, roles).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpsertRole inserts a membership with the given role, or updates the role if
// the user is already a member
func (r *ClubMemberRepository) UpsertRole(tx *gorm.DB, clubID uuid.UUID, userID string, role models.ClubRole) error {
	member := models.ClubMember{
		ClubID: clubID,
		UserID: userID,
		Role:   role,
	}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "club_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"role": role}),
	}).Create(&member).Error
}

// UpdateRole sets the role on an existing membership row
func (r *ClubMemberRepository) UpdateRole(tx *gorm.DB, clubID uuid.UUID, userID string, role models.ClubRole) error {
	return tx.Model(&models.ClubMember{}).
		Where("club_id = ? AND user_id = ?", clubID, userID).
		Update("role", role).Error
}

// Delete removes a membership row
func (r *ClubMemberRepository) Delete(tx *gorm.DB, clubID uuid.UUID, userID string) error {
	return tx.Delete(&models.ClubMember{}, "club_id = ? AND user_id = ?", clubID, userID).Error
}

// DeletePresidents removes every president row for a club. Administrative
// removal is a hard reset of leadership, so co-presidents go too.
func (r *ClubMemberRepository) DeletePresidents(tx *gorm.DB, clubID uuid.UUID) error {
	return tx.Delete(&models.ClubMember{}, "club_id = ? AND role = ?", clubID, models.ClubRolePresident).Error
}
