package repository

import (
	"berkconnect-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRoleRepository handles database operations for school-wide roles
type UserRoleRepository struct {
	db *gorm.DB
}

// NewUserRoleRepository creates a new user role repository
func NewUserRoleRepository(db *gorm.DB) *UserRoleRepository {
	return &UserRoleRepository{db: db}
}

// HasRole reports whether the user holds the school-wide role
func (r *UserRoleRepository) HasRole(userID string, role models.SchoolRole) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserRole{}).
		Where("user_id = ? AND role = ?", userID, role).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Grant gives the user a school-wide role, idempotently
func (r *UserRoleRepository) Grant(userID string, role models.SchoolRole) error {
	row := models.UserRole{UserID: userID, Role: role}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "role"}},
		DoNothing: true,
	}).Create(&row).Error
}
