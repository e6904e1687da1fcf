package repository

import (
	"berkconnect-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TxManager runs a function inside a database transaction. Mutation methods
// on the repositories accept the transaction handle so multi-statement
// transitions commit or roll back as a unit.
type TxManager interface {
	Do(fn func(tx *gorm.DB) error) error
}

// ClubRepositoryInterface defines the interface for club repository operations
type ClubRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.Club, error)
	GetWithPresident(id uuid.UUID) (*models.Club, error)
	List(limit, offset int) ([]models.Club, int64, error)
	UpdateFields(id uuid.UUID, updates map[string]interface{}) error
	ClaimIfUnclaimed(tx *gorm.DB, clubID uuid.UUID, userID string) (bool, error)
	SetPresident(tx *gorm.DB, clubID uuid.UUID, userID string) error
	SetPresidentIfVacant(tx *gorm.DB, clubID uuid.UUID, userID string) error
	Unclaim(tx *gorm.DB, clubID uuid.UUID) error
}

// ClubMemberRepositoryInterface defines the interface for club membership operations
type ClubMemberRepositoryInterface interface {
	GetByClubAndUser(clubID uuid.UUID, userID string) (*models.ClubMember, error)
	ListByClub(clubID uuid.UUID) ([]models.ClubMember, error)
	ListPresidents(clubID uuid.UUID) ([]models.ClubMember, error)
	CountByClub(clubID uuid.UUID) (int64, error)
	ClubIDsByUserAndRole(userID string, role models.ClubRole) ([]uuid.UUID, error)
	HasRoleInAnyClub(userID string, roles []models.ClubRole) (bool, error)
	UpsertRole(tx *gorm.DB, clubID uuid.UUID, userID string, role models.ClubRole) error
	UpdateRole(tx *gorm.DB, clubID uuid.UUID, userID string, role models.ClubRole) error
	Delete(tx *gorm.DB, clubID uuid.UUID, userID string) error
	DeletePresidents(tx *gorm.DB, clubID uuid.UUID) error
}

// ClubSponsorRepositoryInterface defines the interface for sponsorship operations
type ClubSponsorRepositoryInterface interface {
	GetActive(clubID uuid.UUID, userID string) (*models.ClubSponsor, error)
	ActiveClubIDsByUser(userID string) ([]uuid.UUID, error)
	ActiveUserIDsByClub(clubID uuid.UUID) ([]string, error)
	Create(sponsor *models.ClubSponsor) error
	MarkRemoved(clubID uuid.UUID, userID string) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Upsert(tx *gorm.DB, user *models.User) error
}

// UserRoleRepositoryInterface defines the interface for school-wide role lookups
type UserRoleRepositoryInterface interface {
	HasRole(userID string, role models.SchoolRole) (bool, error)
	Grant(userID string, role models.SchoolRole) error
}

// LeadershipRequestRepositoryInterface defines the interface for leadership request operations
type LeadershipRequestRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.LeadershipRequest, error)
	Create(request *models.LeadershipRequest) error
	ListPending() ([]models.LeadershipRequest, error)
	ListPendingForSponsor(sponsorUserID string) ([]models.LeadershipRequest, error)
	MarkApproved(tx *gorm.DB, id uuid.UUID, reviewerID string) error
	MarkRejected(tx *gorm.DB, id uuid.UUID, reviewerID string, reason *string) error
}

// PresidencyTransferRepositoryInterface defines the interface for transfer audit rows
type PresidencyTransferRepositoryInterface interface {
	Create(tx *gorm.DB, transfer *models.PresidencyTransfer) error
	ListByClub(clubID uuid.UUID) ([]models.PresidencyTransfer, error)
}

// AuditLogRepositoryInterface defines the interface for the audit log
type AuditLogRepositoryInterface interface {
	Create(entry *models.AuditLog) error
}
