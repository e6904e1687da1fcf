package testutils

import (
	"time"

	"berkconnect-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all factories for convenient access in suites
type FactorySet struct {
	Club              *ClubFactory
	User              *UserFactory
	ClubMember        *ClubMemberFactory
	ClubSponsor       *ClubSponsorFactory
	LeadershipRequest *LeadershipRequestFactory
	UserRole          *UserRoleFactory
}

// NewFactorySet creates a FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Club:              NewClubFactory(),
		User:              NewUserFactory(),
		ClubMember:        NewClubMemberFactory(),
		ClubSponsor:       NewClubSponsorFactory(),
		LeadershipRequest: NewLeadershipRequestFactory(),
		UserRole:          NewUserRoleFactory(),
	}
}

// ClubFactory provides methods to create test Club data
type ClubFactory struct{}

// NewClubFactory creates a new ClubFactory
func NewClubFactory() *ClubFactory {
	return &ClubFactory{}
}

// Create creates a test Club with default values
func (f *ClubFactory) Create() *models.Club {
	return &models.Club{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Robotics Club",
		Description: "Build and battle robots",
		Category:    "STEM",
		MeetingTime: "Thursdays 3:30pm",
		Location:    "Room 204",
		IsClaimed:   false,
		PresidentID: nil,
	}
}

// WithName sets a custom name for the club
func (f *ClubFactory) WithName(name string) *models.Club {
	club := f.Create()
	club.Name = name
	return club
}

// WithPresident marks the club claimed by the given user
func (f *ClubFactory) WithPresident(userID string) *models.Club {
	club := f.Create()
	club.IsClaimed = true
	club.PresidentID = &userID
	return club
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	// Unique account id so rows never collide across tests
	id := "acct-" + uuid.New().String()[:8]

	return &models.User{
		ID:        id,
		Name:      "Jordan Lee",
		Email:     id + "@student.example",
		AvatarURL: "https://avatars.example/" + id,
		UserType:  "student",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// WithID sets a custom account id for the user
func (f *UserFactory) WithID(id string) *models.User {
	user := f.Create()
	user.ID = id
	user.Email = id + "@student.example"
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// ClubMemberFactory provides methods to create test ClubMember data
type ClubMemberFactory struct{}

// NewClubMemberFactory creates a new ClubMemberFactory
func NewClubMemberFactory() *ClubMemberFactory {
	return &ClubMemberFactory{}
}

// Create creates a test ClubMember with default values
func (f *ClubMemberFactory) Create() *models.ClubMember {
	return &models.ClubMember{
		ID:       uuid.New(),
		ClubID:   uuid.New(),
		UserID:   "acct-" + uuid.New().String()[:8],
		Role:     models.ClubRoleMember,
		JoinedAt: time.Now(),
	}
}

// ForClub sets the club and user for the membership
func (f *ClubMemberFactory) ForClub(clubID uuid.UUID, userID string) *models.ClubMember {
	m := f.Create()
	m.ClubID = clubID
	m.UserID = userID
	return m
}

// WithRole sets a custom role for the membership
func (f *ClubMemberFactory) WithRole(clubID uuid.UUID, userID string, role models.ClubRole) *models.ClubMember {
	m := f.ForClub(clubID, userID)
	m.Role = role
	return m
}

// ClubSponsorFactory provides methods to create test ClubSponsor data
type ClubSponsorFactory struct{}

// NewClubSponsorFactory creates a new ClubSponsorFactory
func NewClubSponsorFactory() *ClubSponsorFactory {
	return &ClubSponsorFactory{}
}

// Create creates a test ClubSponsor with default values
func (f *ClubSponsorFactory) Create() *models.ClubSponsor {
	return &models.ClubSponsor{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClubID: uuid.New(),
		UserID: "acct-" + uuid.New().String()[:8],
		Status: models.SponsorStatusActive,
	}
}

// ForClub sets the club and teacher for the sponsorship
func (f *ClubSponsorFactory) ForClub(clubID uuid.UUID, userID string) *models.ClubSponsor {
	s := f.Create()
	s.ClubID = clubID
	s.UserID = userID
	return s
}

// Removed creates a sponsorship that has already been left
func (f *ClubSponsorFactory) Removed(clubID uuid.UUID, userID string) *models.ClubSponsor {
	s := f.ForClub(clubID, userID)
	s.Status = models.SponsorStatusRemoved
	return s
}

// LeadershipRequestFactory provides methods to create test LeadershipRequest data
type LeadershipRequestFactory struct{}

// NewLeadershipRequestFactory creates a new LeadershipRequestFactory
func NewLeadershipRequestFactory() *LeadershipRequestFactory {
	return &LeadershipRequestFactory{}
}

// Create creates a pending test LeadershipRequest with default values
func (f *LeadershipRequestFactory) Create() *models.LeadershipRequest {
	return &models.LeadershipRequest{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ClubID:       uuid.New(),
		RequestedBy:  "acct-" + uuid.New().String()[:8],
		TargetUserID: "acct-" + uuid.New().String()[:8],
		ActionType:   models.RequestActionAddOfficer,
		NewRole:      models.ClubRoleOfficer,
		Status:       models.RequestStatusPending,
	}
}

// ForClub sets the club for the request
func (f *LeadershipRequestFactory) ForClub(clubID uuid.UUID) *models.LeadershipRequest {
	r := f.Create()
	r.ClubID = clubID
	return r
}

// WithAction sets the proposed action and matching role for the request
func (f *LeadershipRequestFactory) WithAction(clubID uuid.UUID, action models.RequestAction) *models.LeadershipRequest {
	r := f.ForClub(clubID)
	r.ActionType = action
	switch action {
	case models.RequestActionAddPresident:
		r.NewRole = models.ClubRolePresident
	case models.RequestActionAddOfficer:
		r.NewRole = models.ClubRoleOfficer
	default:
		r.NewRole = ""
	}
	return r
}

// UserRoleFactory provides methods to create test UserRole data
type UserRoleFactory struct{}

// NewUserRoleFactory creates a new UserRoleFactory
func NewUserRoleFactory() *UserRoleFactory {
	return &UserRoleFactory{}
}

// Coordinator grants the coordinator role to the given user
func (f *UserRoleFactory) Coordinator(userID string) *models.UserRole {
	return &models.UserRole{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID: userID,
		Role:   models.SchoolRoleCoordinator,
	}
}
