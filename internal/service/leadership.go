package service

import (
	"errors"
	"fmt"
	"time"

	"berkconnect-backend/internal/database/models"
	apperrors "berkconnect-backend/internal/errors"
	"berkconnect-backend/internal/logger"
	"berkconnect-backend/internal/repository"
	"berkconnect-backend/internal/teachercheck"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Actor identifies the user performing an operation, with the profile
// attributes needed to create a users row on first contact.
type Actor struct {
	ID        string `json:"user_id" validate:"required"`
	Name      string `json:"user_name"`
	Email     string `json:"user_email"`
	AvatarURL string `json:"user_avatar"`
}

// SubmitLeadershipRequest represents a proposed leadership change
type SubmitLeadershipRequest struct {
	ClubID       uuid.UUID `json:"club_id" validate:"required"`
	RequestedBy  string    `json:"requested_by" validate:"required"`
	TargetUserID string    `json:"target_user_id" validate:"required"`
	ActionType   string    `json:"action_type" validate:"required"`
	NewRole      string    `json:"new_role"`
}

// LeadershipRequestResponse represents a leadership request with club and
// user details for review screens
type LeadershipRequestResponse struct {
	ID              uuid.UUID            `json:"id"`
	ClubID          uuid.UUID            `json:"club_id"`
	ClubName        string               `json:"club_name"`
	ClubImage       string               `json:"club_image,omitempty"`
	RequestedBy     string               `json:"requested_by"`
	RequesterName   string               `json:"requester_name,omitempty"`
	RequesterEmail  string               `json:"requester_email,omitempty"`
	TargetUserID    string               `json:"target_user_id"`
	TargetName      string               `json:"target_name,omitempty"`
	TargetEmail     string               `json:"target_email,omitempty"`
	ActionType      models.RequestAction `json:"action_type"`
	NewRole         models.ClubRole      `json:"new_role,omitempty"`
	Status          models.RequestStatus `json:"status"`
	RejectionReason *string              `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
}

// LeadershipService implements the guarded transitions that create, transfer,
// demote, or vacate club leadership, plus the sponsor-approval workflow.
// Preconditions are checked before any mutation; multi-statement effects run
// inside one transaction; audit entries are recorded only after commit.
type LeadershipService struct {
	txm          repository.TxManager
	clubRepo     repository.ClubRepositoryInterface
	memberRepo   repository.ClubMemberRepositoryInterface
	sponsorRepo  repository.ClubSponsorRepositoryInterface
	userRepo     repository.UserRepositoryInterface
	requestRepo  repository.LeadershipRequestRepositoryInterface
	transferRepo repository.PresidencyTransferRepositoryInterface
	roles        RoleServiceInterface
	teachers     *teachercheck.Verifier
	audit        AuditRecorderInterface
	validator    *validator.Validate
	log          *logger.Logger
}

// NewLeadershipService creates a new leadership service
func NewLeadershipService(
	txm repository.TxManager,
	clubRepo repository.ClubRepositoryInterface,
	memberRepo repository.ClubMemberRepositoryInterface,
	sponsorRepo repository.ClubSponsorRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	requestRepo repository.LeadershipRequestRepositoryInterface,
	transferRepo repository.PresidencyTransferRepositoryInterface,
	roles RoleServiceInterface,
	teachers *teachercheck.Verifier,
	audit AuditRecorderInterface,
	validator *validator.Validate,
) *LeadershipService {
	return &LeadershipService{
		txm:          txm,
		clubRepo:     clubRepo,
		memberRepo:   memberRepo,
		sponsorRepo:  sponsorRepo,
		userRepo:     userRepo,
		requestRepo:  requestRepo,
		transferRepo: transferRepo,
		roles:        roles,
		teachers:     teachers,
		audit:        audit,
		validator:    validator,
		log:          logger.New(),
	}
}

// Claim makes the acting user the first president of an unclaimed club.
// The claimed flag is flipped with a conditional update inside the
// transaction, so two concurrent claims resolve to one winner and one
// conflict.
func (s *LeadershipService) Claim(clubID uuid.UUID, actor Actor) (string, error) {
	if err := s.validator.Struct(&actor); err != nil {
		return "", apperrors.NewValidationError("user_id", "user ID required")
	}

	club, err := s.clubRepo.GetByID(clubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrClubNotFound
		}
		return "", fmt.Errorf("failed to load club: %w", err)
	}
	if club.IsClaimed {
		return "", apperrors.ErrClubAlreadyClaimed
	}

	name := actor.Name
	if name == "" {
		name = "Club President"
	}

	err = s.txm.Do(func(tx *gorm.DB) error {
		user := &models.User{
			ID:        actor.ID,
			Name:      name,
			Email:     actor.Email,
			AvatarURL: actor.AvatarURL,
		}
		if err := s.userRepo.Upsert(tx, user); err != nil {
			return fmt.Errorf("failed to ensure user: %w", err)
		}

		claimed, err := s.clubRepo.ClaimIfUnclaimed(tx, clubID, actor.ID)
		if err != nil {
			return fmt.Errorf("failed to claim club: %w", err)
		}
		if !claimed {
			// Somebody won the race between our read and this write.
			return apperrors.ErrClubAlreadyClaimed
		}

		return s.memberRepo.UpsertRole(tx, clubID, actor.ID, models.ClubRolePresident)
	})
	if err != nil {
		return "", err
	}

	s.audit.Record(actor.ID, "claim_club", "club", clubID.String(), map[string]interface{}{
		"club_name": club.Name,
	})

	return fmt.Sprintf("You are now the president of %s!", club.Name), nil
}

// ClaimSponsor adds the acting user as an active sponsor of the club.
// Eligibility comes from the curated teacher allow-list, not a database flag.
func (s *LeadershipService) ClaimSponsor(clubID uuid.UUID, userID string) (string, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrUserNotFound
		}
		return "", fmt.Errorf("failed to load user: %w", err)
	}
	if !s.teachers.IsTeacherEmail(user.Email) {
		return "", apperrors.ErrNotVerifiedTeacher
	}

	if _, err := s.sponsorRepo.GetActive(clubID, userID); err == nil {
		return "", apperrors.ErrAlreadySponsor
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("failed to check sponsorship: %w", err)
	}

	club, err := s.clubRepo.GetByID(clubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrClubNotFound
		}
		return "", fmt.Errorf("failed to load club: %w", err)
	}

	sponsor := &models.ClubSponsor{
		ClubID: clubID,
		UserID: userID,
		Status: models.SponsorStatusActive,
	}
	if err := s.sponsorRepo.Create(sponsor); err != nil {
		return "", fmt.Errorf("failed to create sponsorship: %w", err)
	}

	s.audit.Record(userID, "claim_sponsor", "club", clubID.String(), map[string]interface{}{
		"club_name": club.Name,
	})

	return fmt.Sprintf("You are now a sponsor of %s", club.Name), nil
}

// CheckSponsor reports whether the user actively sponsors the club
func (s *LeadershipService) CheckSponsor(clubID uuid.UUID, userID string) (bool, error) {
	_, err := s.sponsorRepo.GetActive(clubID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check sponsorship: %w", err)
	}
	return true, nil
}

// LeaveSponsor soft-deletes the user's sponsorship of the club
func (s *LeadershipService) LeaveSponsor(clubID uuid.UUID, userID string) (string, error) {
	if _, err := s.sponsorRepo.GetActive(clubID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrSponsorNotFound
		}
		return "", fmt.Errorf("failed to check sponsorship: %w", err)
	}

	clubName := "unknown club"
	if club, err := s.clubRepo.GetByID(clubID); err == nil {
		clubName = club.Name
	}

	if err := s.sponsorRepo.MarkRemoved(clubID, userID); err != nil {
		return "", fmt.Errorf("failed to leave sponsorship: %w", err)
	}

	s.audit.Record(userID, "leave_sponsor", "club", clubID.String(), map[string]interface{}{
		"club_name": clubName,
	})

	return "You have left the sponsorship of this club", nil
}

// TransferPresidency moves the primary presidency from the president of
// record to another member. Only the user named by the club's president
// pointer may use this path; co-presidents manage roles through
// UpdateMemberRole instead.
func (s *LeadershipService) TransferPresidency(clubID uuid.UUID, fromUserID, toUserID string) (string, error) {
	if fromUserID == toUserID {
		return "", apperrors.ErrTransferToSelf
	}

	club, err := s.clubRepo.GetByID(clubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrClubNotFound
		}
		return "", fmt.Errorf("failed to load club: %w", err)
	}
	if club.PresidentID == nil || *club.PresidentID != fromUserID {
		return "", apperrors.ErrNotPrimaryPresident
	}

	if _, err := s.memberRepo.GetByClubAndUser(clubID, toUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrTargetNotMember
		}
		return "", fmt.Errorf("failed to check membership: %w", err)
	}

	err = s.txm.Do(func(tx *gorm.DB) error {
		if err := s.clubRepo.SetPresident(tx, clubID, toUserID); err != nil {
			return err
		}
		if err := s.memberRepo.UpdateRole(tx, clubID, fromUserID, models.ClubRoleMember); err != nil {
			return err
		}
		if err := s.memberRepo.UpdateRole(tx, clubID, toUserID, models.ClubRolePresident); err != nil {
			return err
		}
		now := time.Now()
		return s.transferRepo.Create(tx, &models.PresidencyTransfer{
			ClubID:      clubID,
			FromUserID:  fromUserID,
			ToUserID:    toUserID,
			Status:      "completed",
			CompletedAt: &now,
		})
	})
	if err != nil {
		return "", fmt.Errorf("failed to transfer presidency: %w", err)
	}

	s.audit.Record(fromUserID, "transfer_presidency", "club", clubID.String(), map[string]interface{}{
		"to_user_id": toUserID,
	})

	return "Presidency transferred successfully", nil
}

// LeavePresidency lets the president of record step down. With a successor
// the effect matches a direct transfer; without one the club is unclaimed and
// the departing president's membership row is deleted outright.
func (s *LeadershipService) LeavePresidency(clubID uuid.UUID, userID string, newPresidentID *string) (string, error) {
	club, err := s.clubRepo.GetByID(clubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrClubNotFound
		}
		return "", fmt.Errorf("failed to load club: %w", err)
	}
	if club.PresidentID == nil || *club.PresidentID != userID {
		return "", apperrors.ErrNotPrimaryPresident
	}

	if newPresidentID != nil && *newPresidentID != "" {
		successor := *newPresidentID
		if successor == userID {
			return "", apperrors.ErrTransferToSelf
		}
		if _, err := s.memberRepo.GetByClubAndUser(clubID, successor); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", apperrors.ErrSuccessorNotMember
			}
			return "", fmt.Errorf("failed to check membership: %w", err)
		}

		err = s.txm.Do(func(tx *gorm.DB) error {
			if err := s.clubRepo.SetPresident(tx, clubID, successor); err != nil {
				return err
			}
			if err := s.memberRepo.UpdateRole(tx, clubID, userID, models.ClubRoleMember); err != nil {
				return err
			}
			return s.memberRepo.UpdateRole(tx, clubID, successor, models.ClubRolePresident)
		})
		if err != nil {
			return "", fmt.Errorf("failed to transfer presidency: %w", err)
		}

		s.audit.Record(userID, "leave_presidency", "club", clubID.String(), map[string]interface{}{
			"new_president_id": successor,
		})

		return "Presidency transferred successfully", nil
	}

	// No successor: the vacating president leaves the club entirely.
	err = s.txm.Do(func(tx *gorm.DB) error {
		if err := s.clubRepo.Unclaim(tx, clubID); err != nil {
			return err
		}
		return s.memberRepo.Delete(tx, clubID, userID)
	})
	if err != nil {
		return "", fmt.Errorf("failed to leave presidency: %w", err)
	}

	s.audit.Record(userID, "leave_presidency", "club", clubID.String(), nil)

	return "Club unclaimed and you have left the club", nil
}

// RemovePresident is the coordinator's hard reset of a club's leadership:
// every president row goes, not just the named target, and the club returns
// to unclaimed.
func (s *LeadershipService) RemovePresident(clubID uuid.UUID, actorID, targetUserID string) (string, error) {
	if !s.roles.IsCoordinator(actorID) {
		return "", apperrors.ErrNotCoordinator
	}

	member, err := s.memberRepo.GetByClubAndUser(clubID, targetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrTargetNotPresident
		}
		return "", fmt.Errorf("failed to check membership: %w", err)
	}
	if member.Role != models.ClubRolePresident {
		return "", apperrors.ErrTargetNotPresident
	}

	err = s.txm.Do(func(tx *gorm.DB) error {
		if err := s.memberRepo.DeletePresidents(tx, clubID); err != nil {
			return err
		}
		return s.clubRepo.Unclaim(tx, clubID)
	})
	if err != nil {
		return "", fmt.Errorf("failed to remove president: %w", err)
	}

	s.audit.Record(actorID, "remove_president", "club", clubID.String(), map[string]interface{}{
		"removed_user_id": targetUserID,
	})

	return "President removed and club is now unclaimed", nil
}

// KickMember removes a non-president member from a club. Presidents must go
// through RemovePresident.
func (s *LeadershipService) KickMember(clubID uuid.UUID, actorID, targetUserID string) (string, error) {
	if !s.roles.IsCoordinator(actorID) {
		return "", apperrors.ErrNotCoordinator
	}

	member, err := s.memberRepo.GetByClubAndUser(clubID, targetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrTargetNotMember
		}
		return "", fmt.Errorf("failed to check membership: %w", err)
	}
	if member.Role == models.ClubRolePresident {
		return "", apperrors.ErrTargetIsPresident
	}

	err = s.txm.Do(func(tx *gorm.DB) error {
		return s.memberRepo.Delete(tx, clubID, targetUserID)
	})
	if err != nil {
		return "", fmt.Errorf("failed to kick member: %w", err)
	}

	s.audit.Record(actorID, "kick_member", "club", clubID.String(), map[string]interface{}{
		"removed_user_id": targetUserID,
		"previous_role":   string(member.Role),
	})

	return "Member removed from club", nil
}

// UpdateMemberRole sets a member's role. Any co-president may do this, unlike
// the direct transfer path. Promoting to president fills the primary pointer
// only when it is vacant.
func (s *LeadershipService) UpdateMemberRole(clubID uuid.UUID, actorID, targetUserID, newRole string) (string, error) {
	role := models.ClubRole(newRole)
	if !role.IsValid() {
		return "", apperrors.ErrInvalidRole
	}

	actor, err := s.memberRepo.GetByClubAndUser(clubID, actorID)
	if err != nil || actor.Role != models.ClubRolePresident {
		return "", apperrors.ErrNotClubPresident
	}

	if _, err := s.memberRepo.GetByClubAndUser(clubID, targetUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrTargetNotMember
		}
		return "", fmt.Errorf("failed to check membership: %w", err)
	}

	err = s.txm.Do(func(tx *gorm.DB) error {
		if err := s.memberRepo.UpdateRole(tx, clubID, targetUserID, role); err != nil {
			return err
		}
		if role == models.ClubRolePresident {
			return s.clubRepo.SetPresidentIfVacant(tx, clubID, targetUserID)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to update member role: %w", err)
	}

	s.audit.Record(actorID, "update_member_role", "club", clubID.String(), map[string]interface{}{
		"target_user_id": targetUserID,
		"new_role":       newRole,
	})

	return "Member role updated successfully", nil
}

// SubmitRequest files a pending leadership request. Submission is cheap:
// the requester's standing is validated at review time, not here.
func (s *LeadershipService) SubmitRequest(req *SubmitLeadershipRequest) (*LeadershipRequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	action := models.RequestAction(req.ActionType)
	if !action.IsValid() {
		return nil, apperrors.ErrInvalidRequestAction
	}

	newRole := models.ClubRole(req.NewRole)
	if action.IsAdd() {
		if newRole == "" {
			switch action {
			case models.RequestActionAddPresident:
				newRole = models.ClubRolePresident
			case models.RequestActionAddOfficer:
				newRole = models.ClubRoleOfficer
			}
		}
		if !newRole.IsValid() {
			return nil, apperrors.ErrInvalidRole
		}
	} else {
		newRole = ""
	}

	club, err := s.clubRepo.GetByID(req.ClubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to load club: %w", err)
	}

	request := &models.LeadershipRequest{
		ClubID:       req.ClubID,
		RequestedBy:  req.RequestedBy,
		TargetUserID: req.TargetUserID,
		ActionType:   action,
		NewRole:      newRole,
		Status:       models.RequestStatusPending,
	}
	if err := s.requestRepo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create leadership request: %w", err)
	}

	return &LeadershipRequestResponse{
		ID:           request.ID,
		ClubID:       request.ClubID,
		ClubName:     club.Name,
		RequestedBy:  request.RequestedBy,
		TargetUserID: request.TargetUserID,
		ActionType:   request.ActionType,
		NewRole:      request.NewRole,
		Status:       request.Status,
		CreatedAt:    request.CreatedAt,
	}, nil
}

// ReviewRequest approves or rejects a pending request. Approval applies the
// requested change in the same transaction as the status flip: a request can
// never end up approved without its effect, or vice versa.
func (s *LeadershipService) ReviewRequest(requestID uuid.UUID, reviewerID, decision string, rejectionReason *string) (string, error) {
	if decision != "approve" && decision != "reject" {
		return "", apperrors.ErrInvalidReviewDecision
	}

	request, err := s.requestRepo.GetByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrRequestNotFound
		}
		return "", fmt.Errorf("failed to load request: %w", err)
	}
	if request.Status != models.RequestStatusPending {
		return "", apperrors.ErrRequestAlreadyProcessed
	}

	if !s.roles.IsSponsorOfClub(reviewerID, request.ClubID) && !s.roles.IsCoordinator(reviewerID) {
		return "", apperrors.ErrNotReviewer
	}

	if decision == "reject" {
		err = s.txm.Do(func(tx *gorm.DB) error {
			return s.requestRepo.MarkRejected(tx, requestID, reviewerID, rejectionReason)
		})
		if err != nil {
			return "", fmt.Errorf("failed to reject request: %w", err)
		}

		reason := "No reason provided"
		if rejectionReason != nil && *rejectionReason != "" {
			reason = *rejectionReason
		}
		s.audit.Record(reviewerID, "reject_leadership_request", "leadership_request", requestID.String(), map[string]interface{}{
			"reason": reason,
		})

		return "Leadership request rejected", nil
	}

	err = s.txm.Do(func(tx *gorm.DB) error {
		if err := s.requestRepo.MarkApproved(tx, requestID, reviewerID); err != nil {
			return err
		}

		switch request.ActionType {
		case models.RequestActionAddPresident, models.RequestActionAddOfficer:
			return s.memberRepo.UpsertRole(tx, request.ClubID, request.TargetUserID, request.NewRole)
		case models.RequestActionRemovePresident, models.RequestActionRemoveOfficer:
			return s.memberRepo.UpdateRole(tx, request.ClubID, request.TargetUserID, models.ClubRoleMember)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to approve request: %w", err)
	}

	s.audit.Record(reviewerID, "approve_leadership_request", "leadership_request", requestID.String(), map[string]interface{}{
		"action_type":    string(request.ActionType),
		"target_user_id": request.TargetUserID,
	})

	return "Leadership request approved and applied successfully", nil
}

/// ListRequests returns the pending requests the user may review:
// coordinators see everything, sponsors only their clubs
func (s *LeadershipService) ListRequests(userID string) ([]LeadershipRequestResponse, error) {
	snapshot := s.roles.GetUserRoles(userID)

	var requests []models.LeadershipRequest
	var err error
	if snapshot.IsCoordinator {
		requests, err = s.requestRepo.ListPending()
	} else {
		requests, err = s.requestRepo.ListPendingForSponsor(userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list leadership requests: %w", err)
	}

	responses := make([]LeadershipRequestResponse, len(requests))
	for i, r := range requests {
		responses[i] = LeadershipRequestResponse{
			ID:              r.ID,
			ClubID:          r.ClubID,
			ClubName:        r.Club.Name,
			ClubImage:       r.Club.ImageURL,
			RequestedBy:     r.RequestedBy,
			RequesterName:   r.Requester.Name,
			RequesterEmail:  r.Requester.Email,
			TargetUserID:    r.TargetUserID,
			TargetName:      r.Target.Name,
			TargetEmail:     r.Target.Email,
			ActionType:      r.ActionType,
			NewRole:         r.NewRole,
			Status:          r.Status,
			RejectionReason: r.RejectionReason,
			CreatedAt:       r.CreatedAt,
		}
	}
	return responses, nil
}
