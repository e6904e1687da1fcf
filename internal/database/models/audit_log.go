package models

import "encoding/json"

// AuditLog is a best-effort append-only record of administrative actions.
// Writes happen after the primary transaction commits and never affect it.
type AuditLog struct {
	BaseModel
	UserID     string          `json:"user_id" gorm:"size:64;not null;index"`
	Action     string          `json:"action" gorm:"size:100;not null"`
	TargetType string          `json:"target_type" gorm:"size:50;not null"`
	TargetID   string          `json:"target_id" gorm:"size:64;not null;index"`
	Details    json.RawMessage `json:"details,omitempty" gorm:"type:jsonb"`
}

// TableName returns the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_log"
}
