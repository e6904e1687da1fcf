package service

import (
	"berkconnect-backend/internal/database/models"
	"berkconnect-backend/internal/logger"
	"berkconnect-backend/internal/repository"

	"github.com/google/uuid"
)

// RoleSnapshot summarizes every role a user holds. Club-scoped roles carry
// the club ids; the officer flag is global across clubs.
type RoleSnapshot struct {
	IsCoordinator    bool        `json:"is_coordinator"`
	IsSponsor        bool        `json:"is_sponsor"`
	SponsoredClubIDs []uuid.UUID `json:"sponsored_club_ids"`
	IsPresident      bool        `json:"is_president"`
	PresidentClubIDs []uuid.UUID `json:"president_club_ids"`
	IsOfficer        bool        `json:"is_officer"`
}

// RoleService computes role snapshots and authorization predicates. Every
// query failure degrades to "no roles": privileges are never escalated on a
// failed lookup.
type RoleService struct {
	userRoleRepo repository.UserRoleRepositoryInterface
	sponsorRepo  repository.ClubSponsorRepositoryInterface
	memberRepo   repository.ClubMemberRepositoryInterface
	userRepo     repository.UserRepositoryInterface

	// Second coordinator tier: emails granted coordinator rights by
	// configuration, independent of user_roles rows.
	coordinatorEmails map[string]struct{}

	log *logger.Logger
}

// NewRoleService creates a new role service
func NewRoleService(
	userRoleRepo repository.UserRoleRepositoryInterface,
	sponsorRepo repository.ClubSponsorRepositoryInterface,
	memberRepo repository.ClubMemberRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	coordinatorEmails []string,
) *RoleService {
	set := make(map[string]struct{}, len(coordinatorEmails))
	for _, e := range coordinatorEmails {
		set[e] = struct{}{}
	}
	return &RoleService{
		userRoleRepo:      userRoleRepo,
		sponsorRepo:       sponsorRepo,
		memberRepo:        memberRepo,
		userRepo:          userRepo,
		coordinatorEmails: set,
		log:               logger.New(),
	}
}

// GetUserRoles returns the full role snapshot for a user
func (s *RoleService) GetUserRoles(userID string) *RoleSnapshot {
	snapshot := &RoleSnapshot{
		SponsoredClubIDs: []uuid.UUID{},
		PresidentClubIDs: []uuid.UUID{},
	}

	snapshot.IsCoordinator = s.IsCoordinator(userID)

	sponsored, err := s.sponsorRepo.ActiveClubIDsByUser(userID)
	if err != nil {
		s.log.WithField("user_id", userID).Warnf("role query failed, returning empty snapshot: %v", err)
		return &RoleSnapshot{SponsoredClubIDs: []uuid.UUID{}, PresidentClubIDs: []uuid.UUID{}}
	}
	snapshot.SponsoredClubIDs = sponsored
	snapshot.IsSponsor = len(sponsored) > 0

	presiding, err := s.memberRepo.ClubIDsByUserAndRole(userID, models.ClubRolePresident)
	if err != nil {
		s.log.WithField("user_id", userID).Warnf("role query failed, returning empty snapshot: %v", err)
		return &RoleSnapshot{SponsoredClubIDs: []uuid.UUID{}, PresidentClubIDs: []uuid.UUID{}}
	}
	snapshot.PresidentClubIDs = presiding
	snapshot.IsPresident = len(presiding) > 0

	isOfficer, err := s.memberRepo.HasRoleInAnyClub(userID, []models.ClubRole{models.ClubRoleOfficer, models.ClubRoleLeader})
	if err != nil {
		s.log.WithField("user_id", userID).Warnf("role query failed, returning empty snapshot: %v", err)
		return &RoleSnapshot{SponsoredClubIDs: []uuid.UUID{}, PresidentClubIDs: []uuid.UUID{}}
	}
	snapshot.IsOfficer = isOfficer

	return snapshot
}

// IsCoordinator checks both coordinator tiers: a user_roles row or a
// configured coordinator email. Either is sufficient.
func (s *RoleService) IsCoordinator(userID string) bool {
	hasRole, err := s.userRoleRepo.HasRole(userID, models.SchoolRoleCoordinator)
	if err != nil {
		s.log.WithField("user_id", userID).Warnf("coordinator lookup failed: %v", err)
		return false
	}
	if hasRole {
		return true
	}

	if len(s.coordinatorEmails) == 0 {
		return false
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return false
	}
	_, ok := s.coordinatorEmails[normalizeEmail(user.Email)]
	return ok
}

// IsSponsorOfClub checks if the user actively sponsors the club
func (s *RoleService) IsSponsorOfClub(userID string, clubID uuid.UUID) bool {
	_, err := s.sponsorRepo.GetActive(clubID, userID)
	return err == nil
}

// IsPresidentOfClub checks if the user holds the president role in the club.
// Any co-president qualifies.
func (s *RoleService) IsPresidentOfClub(userID string, clubID uuid.UUID) bool {
	member, err := s.memberRepo.GetByClubAndUser(clubID, userID)
	if err != nil {
		return false
	}
	return member.Role == models.ClubRolePresident
}

// CanModerateClub checks if the user may moderate the club (coordinator or sponsor)
func (s *RoleService) CanModerateClub(userID string, clubID uuid.UUID) bool {
	roles := s.GetUserRoles(userID)
	if roles.IsCoordinator {
		return true
	}
	return containsID(roles.SponsoredClubIDs, clubID)
}

// CanManageLeadership checks if the user may manage leadership in the club
// (coordinator, sponsor, or president)
func (s *RoleService) CanManageLeadership(userID string, clubID uuid.UUID) bool {
	roles := s.GetUserRoles(userID)
	if roles.IsCoordinator {
		return true
	}
	return containsID(roles.SponsoredClubIDs, clubID) || containsID(roles.PresidentClubIDs, clubID)
}

// ClubPresidents returns the user ids of every president of a club
func (s *RoleService) ClubPresidents(clubID uuid.UUID) []string {
	members, err := s.memberRepo.ListPresidents(clubID)
	if err != nil {
		s.log.WithField("club_id", clubID).Warnf("president lookup failed: %v", err)
		return []string{}
	}
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.UserID
	}
	return ids
}

// ClubSponsors returns the user ids of every active sponsor of a club
func (s *RoleService) ClubSponsors(clubID uuid.UUID) []string {
	ids, err := s.sponsorRepo.ActiveUserIDsByClub(clubID)
	if err != nil {
		s.log.WithField("club_id", clubID).Warnf("sponsor lookup failed: %v", err)
		return []string{}
	}
	return ids
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
