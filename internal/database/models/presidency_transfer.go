package models

import (
	"time"

	"github.com/google/uuid"
)

// PresidencyTransfer is an immutable audit record of a completed direct
// presidency transfer (the president-initiated path, not the sponsor-approval
// workflow).
type PresidencyTransfer struct {
	BaseModel
	ClubID      uuid.UUID  `json:"club_id" gorm:"type:uuid;not null;index"`
	FromUserID  string     `json:"from_user_id" gorm:"size:64;not null"`
	ToUserID    string     `json:"to_user_id" gorm:"size:64;not null"`
	Status      string     `json:"status" gorm:"type:varchar(20);not null;default:'completed'"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// TableName returns the table name for PresidencyTransfer
func (PresidencyTransfer) TableName() string {
	return "presidency_transfers"
}
