package models

import (
	"time"

	"github.com/google/uuid"
)

// LeadershipRequest is a proposed leadership change awaiting sponsor or
// coordinator review. Requests are terminal once approved or rejected.
type LeadershipRequest struct {
	BaseModel
	ClubID          uuid.UUID     `json:"club_id" gorm:"type:uuid;not null;index"`
	RequestedBy     string        `json:"requested_by" gorm:"size:64;not null"`
	TargetUserID    string        `json:"target_user_id" gorm:"size:64;not null"`
	ActionType      RequestAction `json:"action_type" gorm:"type:varchar(50);not null"`
	NewRole         ClubRole      `json:"new_role,omitempty" gorm:"type:varchar(50)"`
	Status          RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	ReviewedBy      *string       `json:"reviewed_by,omitempty" gorm:"size:64"`
	ReviewedAt      *time.Time    `json:"reviewed_at,omitempty"`
	RejectionReason *string       `json:"rejection_reason,omitempty" gorm:"size:500"`

	// Relationships
	Club      Club `json:"club,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
	Requester User `json:"requester,omitempty" gorm:"foreignKey:RequestedBy"`
	Target    User `json:"target,omitempty" gorm:"foreignKey:TargetUserID"`
}

// TableName returns the table name for LeadershipRequest
func (LeadershipRequest) TableName() string {
	return "leadership_requests"
}
