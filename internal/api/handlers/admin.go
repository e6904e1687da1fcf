package handlers

import (
	"net/http"

	"berkconnect-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles coordinator-only moderation endpoints
type AdminHandler struct {
	leadershipService service.LeadershipServiceInterface
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(leadershipService service.LeadershipServiceInterface) *AdminHandler {
	return &AdminHandler{
		leadershipService: leadershipService,
	}
}

// AdminActionRequest names the acting coordinator and the target member.
// userId may be omitted when a bearer token identifies the actor.
type AdminActionRequest struct {
	UserID       string `json:"userId"`
	TargetUserID string `json:"targetUserId" binding:"required"`
}

// RemovePresident removes a club's presidents and unclaims the club
// @Summary Remove president
// @Description Remove all presidents from a club and return it to the unclaimed pool. Coordinator only.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Param body body AdminActionRequest true "Acting coordinator and target president"
// @Success 200 {object} MessageResponse "President removed"
// @Failure 400 {object} ErrorResponse "Target is not a president"
// @Failure 403 {object} ErrorResponse "Not a coordinator"
// @Security BearerAuth
// @Router /admin/clubs/{id}/remove-president [post]
func (h *AdminHandler) RemovePresident(c *gin.Context) {
	id, ok := parseClubID(c)
	if !ok {
		return
	}

	var req AdminActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "targetUserId is required"})
		return
	}

	actorID, ok := actingUserID(c, req.UserID)
	if !ok {
		respondMissingUserID(c)
		return
	}

	message, err := h.leadershipService.RemovePresident(id, actorID, req.TargetUserID)
	if err != nil {
		respondError(c, err, "Failed to remove president")
		return
	}

	respondMessage(c, message)
}

// KickMember removes a non-president member from a club
// @Summary Kick member
// @Description Remove a member from a club. Presidents cannot be kicked through this endpoint. Coordinator only.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Param body body AdminActionRequest true "Acting coordinator and target member"
// @Success 200 {object} MessageResponse "Member removed"
// @Failure 400 {object} ErrorResponse "Target is a president or not a member"
// @Failure 403 {object} ErrorResponse "Not a coordinator"
// @Security BearerAuth
// @Router /admin/clubs/{id}/kick-member [post]
func (h *AdminHandler) KickMember(c *gin.Context) {
	id, ok := parseClubID(c)
	if !ok {
		return
	}

	var req AdminActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "targetUserId is required"})
		return
	}

	actorID, ok := actingUserID(c, req.UserID)
	if !ok {
		respondMissingUserID(c)
		return
	}

	message, err := h.leadershipService.KickMember(id, actorID, req.TargetUserID)
	if err != nil {
		respondError(c, err, "Failed to kick member")
		return
	}

	respondMessage(c, message)
}
