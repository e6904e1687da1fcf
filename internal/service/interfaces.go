package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RoleServiceInterface defines the interface for role queries
type RoleServiceInterface interface {
	GetUserRoles(userID string) *RoleSnapshot
	IsCoordinator(userID string) bool
	IsSponsorOfClub(userID string, clubID uuid.UUID) bool
	IsPresidentOfClub(userID string, clubID uuid.UUID) bool
	CanModerateClub(userID string, clubID uuid.UUID) bool
	CanManageLeadership(userID string, clubID uuid.UUID) bool
	ClubPresidents(clubID uuid.UUID) []string
	ClubSponsors(clubID uuid.UUID) []string
}

// LeadershipServiceInterface defines the interface for leadership transitions
type LeadershipServiceInterface interface {
	Claim(clubID uuid.UUID, actor Actor) (string, error)
	ClaimSponsor(clubID uuid.UUID, userID string) (string, error)
	CheckSponsor(clubID uuid.UUID, userID string) (bool, error)
	LeaveSponsor(clubID uuid.UUID, userID string) (string, error)
	TransferPresidency(clubID uuid.UUID, fromUserID, toUserID string) (string, error)
	LeavePresidency(clubID uuid.UUID, userID string, newPresidentID *string) (string, error)
	RemovePresident(clubID uuid.UUID, actorID, targetUserID string) (string, error)
	KickMember(clubID uuid.UUID, actorID, targetUserID string) (string, error)
	UpdateMemberRole(clubID uuid.UUID, actorID, targetUserID, newRole string) (string, error)
	SubmitRequest(req *SubmitLeadershipRequest) (*LeadershipRequestResponse, error)
	ReviewRequest(requestID uuid.UUID, reviewerID, decision string, rejectionReason *string) (string, error)
	ListRequests(userID string) ([]LeadershipRequestResponse, error)
}

// ClubServiceInterface defines the interface for club reads and updates
type ClubServiceInterface interface {
	GetClub(id uuid.UUID, viewerID string) (*ClubDetailResponse, error)
	ListClubs(page, pageSize int) (*ClubListResponse, error)
	UpdateClub(id uuid.UUID, userID string, req *UpdateClubRequest) (string, error)
}

// AuditRecorderInterface is the fire-and-forget audit side channel. Record
// returns nothing: audit failures are observability losses, never operation
// failures.
type AuditRecorderInterface interface {
	Record(actorID, action, targetType, targetID string, details map[string]interface{})
}
