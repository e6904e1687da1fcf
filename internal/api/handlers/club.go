package handlers

import (
	"net/http"
	"strconv"

	"berkconnect-backend/internal/auth"
	"berkconnect-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ClubHandler handles HTTP requests for clubs and leadership transitions
type ClubHandler struct {
	clubService       service.ClubServiceInterface
	leadershipService service.LeadershipServiceInterface
}

// NewClubHandler creates a new club handler
func NewClubHandler(clubService service.ClubServiceInterface, leadershipService service.LeadershipServiceInterface) *ClubHandler {
	return &ClubHandler{
		clubService:       clubService,
		leadershipService: leadershipService,
	}
}

func parseClubID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid club ID"})
		return uuid.Nil, false
	}
	return id, true
}

// ListClubs retrieves one page of clubs
// @Summary List clubs
// @Description Get all clubs with pagination
// @Tags clubs
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} map[string]interface{} "Successfully retrieved clubs"
// @Router /clubs [get]
func (h *ClubHandler) ListClubs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	clubs, err := h.clubService.ListClubs(page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to fetch clubs")
		return
	}

	respondData(c, clubs)
}

// GetClub retrieves a club by ID
// @Summary Get club by ID
// @Description Get a club with its members. When authenticated, the response includes whether the viewer presides over or sponsors the club.
// @Tags clubs
// @Accept json
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully retrieved club"
// @Failure 400 {object} ErrorResponse "Invalid club ID"
// @Failure 404 {object} ErrorResponse "Club not found"
// @Router /clubs/{id} [get]
func (h *ClubHandler) GetClub(c *gin.Context) {
	id, ok := parseClubID(c)
	if !ok {
		return
	}

	viewerID, _ := auth.GetUserID(c)

	club, err := h.clubService.GetClub(id, viewerID)
	if err != nil {
		respondError(c, err, "Failed to fetch club")
		return
	}

	respondData(c, club)
}

// UpdateClub updates a club's profile
// @Summary Update club
// @Description Update club profile fields. Only a president of the club may edit it.
// @Tags clubs
// @Accept json
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Param club body service.UpdateClubRequest true "Fields to update"
// @Success 200 {object} MessageResponse "Club updated"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not a club president"
// @Failure 404 {object} ErrorResponse "Club not found"
// @Security BearerAuth
// @Router /clubs/{id} [put]
func (h *ClubHandler) UpdateClub(c *gin.Context) {
	id, ok := parseClubID(c)
	if !ok {
		return
	}

	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req service.UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	message, err := h.clubService.UpdateClub(id, userID, &req)
	if err != nil {
		respondError(c, err, "Failed to update club")
		return
	}

	respondMessage(c, message)
}

// ClaimClubRequest identifies the claimant. All fields are optional when a
// bearer token carries the identity.
type ClaimClubRequest struct {
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	UserEmail  string `json:"userEmail"`
	UserAvatar string `json:"userAvatar"`
}

// ClaimClub claims an unclaimed club
// @Summary Claim a club
// @Description Become the first president of an unclaimed club. The claimant is named by the request body's userId, or by the bearer token when the body omits it. Exactly one of two concurrent claimants wins; the other receives a conflict.
// @Tags clubs
// @Accept json
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Param body body ClaimClubRequest false "Claimant identity"
// @Success 200 {object} MessageResponse "Club claimed"
// @Failure 400 {object} ErrorResponse "Invalid club ID or missing user ID"
// @Failure 404 {object} ErrorResponse "Club not found"
// @Failure 409 {object} ErrorResponse "Club already claimed"
// @Security BearerAuth
// @Router /clubs/{id}/claim [post]
func (h *ClubHandler) ClaimClub(c *gin.Context) {
	id, ok := parseClubID(c)
	if !ok {
		return
	}

	var req ClaimClubRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}
	}

	actor := service.Actor{
		ID:        req.UserID,
		Name:      req.UserName,
		Email:     req.UserEmail,
		AvatarURL: req.UserAvatar,
	}
	if claims, ok := auth.GetAuthClaims(c); ok {
		if actor.ID == "" {
			actor.ID = claims.UserID
		}
		if actor.Name == "" {
			actor.Name = claims.Name
		}
		if actor.Email == "" {
			actor.Email = claims.Email
		}
		if actor.AvatarURL == "" {
			actor.AvatarURL = claims.AvatarURL
		}
	}
	if actor.ID == "" {
		respondMissingUserID(c)
		return
	}

	message, err := h.leadershipService.Claim(id, actor)
	if err != nil {
		respondError(c, err, "Failed to claim club")
		return
	}

	respondMessage(c, message)
}

// TransferPresidencyRequest names the outgoing and incoming presidents.
// fromUserId may be omitted when a bearer token identifies the actor.
type TransferPresidencyRequest struct {
	FromUserID string `json:"fromUserId"`
	ToUserID   string `json:"toUserId" binding:"required"`
}

// TransferPresidency transfers the presidency to another member
// @Summary Transfer presidency
// @Description Transfer the primary presidency to another club member. Only the president of record may do this.
// @Tags clubs
// @Accept json
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Param transfer body TransferPresidencyRequest true "Transfer parties"
// @Success 200 {object} MessageResponse "Presidency transferred"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not the president of record"
// @Failure 404 {object} ErrorResponse "Club not found"
// @Security BearerAuth
// @Router /clubs/{id}/transfer [post]
func (h *ClubHandler) TransferPresidency(c *gin.Context) {
	id, ok := parseClubID(c)
	if !ok {
		return
	}

	var req TransferPresidencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "toUserId is required"})
		return
	}

	fromUserID, ok := actingUserID(c, req.FromUserID)
	if !ok {
		respondMissingUserID(c)
		return
	}

	message, err := h.leadershipService.TransferPresidency(id, fromUserID, req.ToUserID)
	if err != nil {
		respondError(c, err, "Failed to transfer presidency")
		return
	}

	respondMessage(c, message)
}

// LeavePresidencyRequest names the outgoing president and optionally a
// successor
type LeavePresidencyRequest struct {
	UserID         string  `json:"userId"`
	NewPresidentID *string `json:"newPresidentId"`
}

// LeavePresidency steps down as president
// @Summary Leave presidency
// @Description Step down as president. With a successor the presidency transfers; without one the club becomes unclaimed and the president leaves the club.
// @Tags clubs
// @Accept json
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Param body body LeavePresidencyRequest false "Optional successor"
// @Success 200 {object} MessageResponse "Presidency vacated or transferred"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not the president of record"
// @Failure 404 {object} ErrorResponse "Club not found"
// @Security BearerAuth
// @Router /clubs/{id}/leave-presidency [post]
func (h *ClubHandler) LeavePresidency(c *gin.Context) {
	id, ok := parseClubID(c)
	if !ok {
		return
	}

	var req LeavePresidencyRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}
	}

	userID, ok := actingUserID(c, req.UserID)
	if !ok {
		respondMissingUserID(c)
		return
	}

	message, err := h.leadershipService.LeavePresidency(id, userID, req.NewPresidentID)
	if err != nil {
		respondError(c, err, "Failed to leave presidency")
		return
	}

	respondMessage(c, message)
}

// UpdateMemberRoleRequest carries the new role for a member. updatedBy may be
// omitted when a bearer token identifies the actor.
type UpdateMemberRoleRequest struct {
	Role      string `json:"role" binding:"required"`
	UpdatedBy string `json:"updatedBy"`
}

// UpdateMemberRole changes a member's role within the club
// @Summary Update member role
// @Description Set a club member's role. Any president of the club may do this. Promoting to president makes the target a co-president; the primary pointer is only filled when vacant.
// @Tags clubs
// @Accept json
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Param memberId path string true "Member user ID"
// @Param body body UpdateMemberRoleRequest true "New role"
// @Success 200 {object} MessageResponse "Role updated"
// @Failure 400 {object} ErrorResponse "Invalid role or target not a member"
// @Failure 403 {object} ErrorResponse "Not a club president"
// @Security BearerAuth
// @Router /clubs/{id}/members/{memberId}/role [put]
func (h *ClubHandler) UpdateMemberRole(c *gin.Context) {
	id, ok := parseClubID(c)
	if !ok {
		return
	}

	targetID := c.Param("memberId")

	var req UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "role is required"})
		return
	}

	userID, ok := actingUserID(c, req.UpdatedBy)
	if !ok {
		respondMissingUserID(c)
		return
	}

	message, err := h.leadershipService.UpdateMemberRole(id, userID, targetID, req.Role)
	if err != nil {
		respondError(c, err, "Failed to update member role")
		return
	}

	respondMessage(c, message)
}
