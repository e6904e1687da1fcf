package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClubMember links a user to a club with a role. Membership is unique per
// (club, user); the role is mutated in place by leadership transitions and the
// row is deleted when the user leaves or is kicked.
type ClubMember struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ClubID   uuid.UUID `json:"club_id" gorm:"type:uuid;not null;uniqueIndex:idx_club_members_club_user"`
	UserID   string    `json:"user_id" gorm:"size:64;not null;uniqueIndex:idx_club_members_club_user;index"`
	Role     ClubRole  `json:"role" gorm:"type:varchar(50);not null;default:'member';index"`
	JoinedAt time.Time `json:"joined_at"`

	// Relationships
	Club Club `json:"club,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ClubMember
func (ClubMember) TableName() string {
	return "club_members"
}

// BeforeCreate sets the UUID and join time if not already set
func (m *ClubMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.JoinedAt.IsZero() {
		m.JoinedAt = time.Now()
	}
	return nil
}
