package service

import (
	"encoding/json"

	"berkconnect-backend/internal/database/models"
	"berkconnect-backend/internal/logger"
	"berkconnect-backend/internal/repository"
)

// AuditRecorder appends best-effort audit entries. It is called after the
// primary transaction commits; any failure here is logged and swallowed so
// audit problems can never fail or roll back a completed transition.
type AuditRecorder struct {
	repo repository.AuditLogRepositoryInterface
	log  *logger.Logger
}

// NewAuditRecorder creates a new audit recorder
func NewAuditRecorder(repo repository.AuditLogRepositoryInterface) *AuditRecorder {
	return &AuditRecorder{
		repo: repo,
		log:  logger.New(),
	}
}

// Record appends one audit entry
func (a *AuditRecorder) Record(actorID, action, targetType, targetID string, details map[string]interface{}) {
	var detailsJSON json.RawMessage
	if len(details) > 0 {
		data, err := json.Marshal(details)
		if err != nil {
			a.log.WithField("action", action).Warnf("failed to marshal audit details: %v", err)
		} else {
			detailsJSON = data
		}
	}

	entry := &models.AuditLog{
		UserID:     actorID,
		Action:     action,
		TargetType: targetType,
		TargetID:   targetID,
		Details:    detailsJSON,
	}

	if err := a.repo.Create(entry); err != nil {
		a.log.WithFields(map[string]interface{}{
			"action":    action,
			"target_id": targetID,
		}).Warnf("could not write audit log entry: %v", err)
	}
}
