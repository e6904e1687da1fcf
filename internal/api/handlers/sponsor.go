package handlers

import (
	"net/http"

	"berkconnect-backend/internal/auth"
	"berkconnect-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SponsorHandler handles sponsorship and leadership-request endpoints
type SponsorHandler struct {
	leadershipService service.LeadershipServiceInterface
}

// NewSponsorHandler creates a new sponsor handler
func NewSponsorHandler(leadershipService service.LeadershipServiceInterface) *SponsorHandler {
	return &SponsorHandler{
		leadershipService: leadershipService,
	}
}

// ClaimSponsorRequest identifies the sponsoring teacher. userId may be
// omitted when a bearer token carries the identity.
type ClaimSponsorRequest struct {
	UserID    string `json:"userId"`
	Confirmed bool   `json:"confirmed"`
}

// ClaimSponsor registers the acting user as a club sponsor
// @Summary Claim sponsorship
// @Description Become a sponsor of a club. Only verified teachers may sponsor.
// @Tags sponsors
// @Accept json
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Param body body ClaimSponsorRequest false "Sponsoring teacher"
// @Success 200 {object} MessageResponse "Sponsorship created"
// @Failure 400 {object} ErrorResponse "Missing user ID"
// @Failure 403 {object} ErrorResponse "Not a verified teacher"
// @Failure 404 {object} ErrorResponse "Club or user not found"
// @Failure 409 {object} ErrorResponse "Already a sponsor"
// @Security BearerAuth
// @Router /clubs/{id}/claim-sponsor [post]
func (h *SponsorHandler) ClaimSponsor(c *gin.Context) {
	id, ok := parseClubID(c)
	if !ok {
		return
	}

	var req ClaimSponsorRequest
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

	message, err := h.leadershipService.ClaimSponsor(id, userID)
	if err != nil {
		respondError(c, err, "Failed to claim sponsorship")
		return
	}

	respondMessage(c, message)
}

// CheckSponsor reports whether the acting user sponsors the club
// @Summary Check sponsorship
// @Description Check whether the authenticated user actively sponsors the club
// @Tags sponsors
// @Accept json
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Success 200 {object} map[string]interface{} "Sponsorship status"
// @Security BearerAuth
// @Router /clubs/{id}/check-sponsor [get]
func (h *SponsorHandler) CheckSponsor(c *gin.Context) {
	id, ok := parseClubID(c)
	if !ok {
		return
	}

	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	isSponsor, err := h.leadershipService.CheckSponsor(id, userID)
	if err != nil {
		respondError(c, err, "Failed to check sponsorship")
		return
	}

	respondData(c, gin.H{"is_sponsor": isSponsor})
}

// LeaveSponsor ends the acting user's sponsorship of the club
// @Summary Leave sponsorship
// @Description Stop sponsoring a club. The sponsorship row is retained with a removed status.
// @Tags sponsors
// @Accept json
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Success 200 {object} MessageResponse "Sponsorship ended"
// @Failure 404 {object} ErrorResponse "Not a sponsor of this club"
// @Security BearerAuth
// @Router /clubs/{id}/leave-sponsor [post]
func (h *SponsorHandler) LeaveSponsor(c *gin.Context) {
	id, ok := parseClubID(c)
	if !ok {
		return
	}

	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	message, err := h.leadershipService.LeaveSponsor(id, userID)
	if err != nil {
		respondError(c, err, "Failed to leave sponsorship")
		return
	}

	respondMessage(c, message)
}

// SubmitRequest files a leadership change request
// @Summary Submit leadership request
// @Description File a pending request to add or remove a president or officer. The requester's standing is validated at review time.
// @Tags leadership-requests
// @Accept json
// @Produce json
// @Param id path string true "Club ID (UUID)"
// @Param request body service.SubmitLeadershipRequest true "Request details"
// @Success 201 {object} map[string]interface{} "Request created"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Club not found"
// @Security BearerAuth
// @Router /clubs/{id}/leadership-requests [post]
func (h *SponsorHandler) SubmitRequest(c *gin.Context) {
	id, ok := parseClubID(c)
	if !ok {
		return
	}

	var req service.SubmitLeadershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}
	req.ClubID = id

	requestedBy, ok := actingUserID(c, req.RequestedBy)
	if !ok {
		respondMissingUserID(c)
		return
	}
	req.RequestedBy = requestedBy

	request, err := h.leadershipService.SubmitRequest(&req)
	if err != nil {
		respondError(c, err, "Failed to submit leadership request")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": request})
}

// ListRequests lists the pending requests the acting user may review
// @Summary List reviewable requests
// @Description List pending leadership requests. Coordinators see all pending requests; sponsors see requests for their clubs.
// @Tags leadership-requests
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Pending requests"
// @Security BearerAuth
// @Router /sponsor/requests [get]
func (h *SponsorHandler) ListRequests(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	requests, err := h.leadershipService.ListRequests(userID)
	if err != nil {
		respondError(c, err, "Failed to fetch leadership requests")
		return
	}

	respondData(c, requests)
}

// ReviewRequestBody carries the review decision. userId may be omitted when
// a bearer token identifies the reviewer.
type ReviewRequestBody struct {
	UserID          string  `json:"userId"`
	Action          string  `json:"action" binding:"required"`
	RejectionReason *string `json:"rejectionReason"`
}

// ReviewRequest approves or rejects a pending leadership request
// @Summary Review leadership request
// @Description Approve or reject a pending request. Approval applies the requested membership change atomically with the status flip.
// @Tags leadership-requests
// @Accept json
// @Produce json
// @Param requestId path string true "Request ID (UUID)"
// @Param decision body ReviewRequestBody true "Review decision"
// @Success 200 {object} MessageResponse "Request reviewed"
// @Failure 400 {object} ErrorResponse "Invalid decision or missing user ID"
// @Failure 403 {object} ErrorResponse "Not a reviewer for this club"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Request already processed"
// @Security BearerAuth
// @Router /sponsor/requests/{requestId} [post]
func (h *SponsorHandler) ReviewRequest(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("requestId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request ID"})
		return
	}

	var body ReviewRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "action is required"})
		return
	}

	userID, ok := actingUserID(c, body.UserID)
	if !ok {
		respondMissingUserID(c)
		return
	}

	message, err := h.leadershipService.ReviewRequest(requestID, userID, body.Action, body.RejectionReason)
	if err != nil {
		respondError(c, err, "Failed to review leadership request")
		return
	}

	respondMessage(c, message)
}
