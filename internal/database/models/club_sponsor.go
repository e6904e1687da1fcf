package models

import (
	"github.com/google/uuid"
)

// ClubSponsor links a verified teacher to a club for oversight. Sponsorships
// are never hard-deleted: leaving flips the status to removed so history is
// preserved. At most one active row per (club, user) is expected, enforced at
// the application level.
type ClubSponsor struct {
	BaseModel
	ClubID uuid.UUID     `json:"club_id" gorm:"type:uuid;not null;index"`
	UserID string        `json:"user_id" gorm:"size:64;not null;index"`
	Status SponsorStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`

	// Relationships
	Club Club `json:"club,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ClubSponsor
func (ClubSponsor) TableName() string {
	return "club_sponsors"
}
