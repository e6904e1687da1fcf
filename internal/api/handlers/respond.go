package handlers

import (
	"errors"
	"net/http"

	"berkconnect-backend/internal/auth"
	apperrors "berkconnect-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// MessageResponse is the envelope for operations that return a human-readable
// outcome
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Presidency transferred successfully"`
}

// ErrorResponse is the envelope for failed operations
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"club is already claimed"`
}

// actingUserID resolves who is performing the operation. An explicit userId
// in the request body wins; otherwise the bearer-token identity is used. The
// caller gets false when neither names a user.
func actingUserID(c *gin.Context, bodyUserID string) (string, bool) {
	if bodyUserID != "" {
		return bodyUserID, true
	}
	return auth.GetUserID(c)
}

func respondMissingUserID(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "User ID is required"})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: message})
}

func respondData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

var businessErrors = []error{
	apperrors.ErrTargetNotMember,
	apperrors.ErrTargetNotPresident,
	apperrors.ErrTargetIsPresident,
	apperrors.ErrTransferToSelf,
	apperrors.ErrInvalidRole,
	apperrors.ErrInvalidRequestAction,
	apperrors.ErrInvalidReviewDecision,
	apperrors.ErrSuccessorNotMember,
}

// respondError maps service errors onto HTTP statuses. Precondition and
// validation failures are 400, authorization failures 403, missing entities
// 404, state conflicts 409. Anything unrecognized is a 500 carrying the
// generic fallback so internals never leak to clients.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case isBusinessError(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

func isBusinessError(err error) bool {
	for _, candidate := range businessErrors {
		if errors.Is(err, candidate) {
			return true
		}
	}
	return false
}
