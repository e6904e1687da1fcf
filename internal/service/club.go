package service

import (
	"errors"
	"fmt"
	"time"

	"berkconnect-backend/internal/database/models"
	apperrors "berkconnect-backend/internal/errors"
	"berkconnect-backend/internal/logger"
	"berkconnect-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateClubRequest carries the editable club profile fields. Nil pointers
// leave the column untouched.
type UpdateClubRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Category    *string `json:"category" validate:"omitempty,max=100"`
	MeetingTime *string `json:"meeting_time" validate:"omitempty,max=200"`
	Location    *string `json:"location" validate:"omitempty,max=200"`
	ImageURL    *string `json:"image_url" validate:"omitempty,max=500"`
}

// ClubMemberResponse represents one member of a club
type ClubMemberResponse struct {
	UserID    string          `json:"user_id"`
	Name      string          `json:"name,omitempty"`
	Email     string          `json:"email,omitempty"`
	AvatarURL string          `json:"avatar_url,omitempty"`
	Role      models.ClubRole `json:"role"`
	JoinedAt  time.Time       `json:"joined_at"`
}

// ClubDetailResponse represents a club with membership and viewer context
type ClubDetailResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description,omitempty"`
	Category    string               `json:"category,omitempty"`
	MeetingTime string               `json:"meeting_time,omitempty"`
	Location    string               `json:"location,omitempty"`
	ImageURL    string               `json:"image_url,omitempty"`
	IsClaimed   bool                 `json:"is_claimed"`
	PresidentID *string              `json:"president_id,omitempty"`
	MemberCount int64                `json:"member_count"`
	Members     []ClubMemberResponse `json:"members"`
	IsPresident bool                 `json:"is_president"`
	IsSponsor   bool                 `json:"is_sponsor"`
	CreatedAt   time.Time            `json:"created_at"`
}

// ClubSummary represents one club in a listing
type ClubSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsClaimed   bool      `json:"is_claimed"`
}

// ClubListResponse represents a paginated club listing
type ClubListResponse struct {
	Clubs    []ClubSummary `json:"clubs"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// ClubService handles club reads and profile updates
type ClubService struct {
	clubRepo   repository.ClubRepositoryInterface
	memberRepo repository.ClubMemberRepositoryInterface
	roles      RoleServiceInterface
	validator  *validator.Validate
	log        *logger.Logger
}

// NewClubService creates a new club service
func NewClubService(
	clubRepo repository.ClubRepositoryInterface,
	memberRepo repository.ClubMemberRepositoryInterface,
	roles RoleServiceInterface,
	validator *validator.Validate,
) *ClubService {
	return &ClubService{
		clubRepo:   clubRepo,
		memberRepo: memberRepo,
		roles:      roles,
		validator:  validator,
		log:        logger.New(),
	}
}

// GetClub returns the club with its members. When a viewer is known, the
// response also says whether the viewer presides over or sponsors the club.
func (s *ClubService) GetClub(id uuid.UUID, viewerID string) (*ClubDetailResponse, error) {
	club, err := s.clubRepo.GetWithPresident(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, fmt.Errorf("failed to load club: %w", err)
	}

	members, err := s.memberRepo.ListByClub(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load club members: %w", err)
	}

	response := &ClubDetailResponse{
		ID:          club.ID,
		Name:        club.Name,
		Description: club.Description,
		Category:    club.Category,
		MeetingTime: club.MeetingTime,
		Location:    club.Location,
		ImageURL:    club.ImageURL,
		IsClaimed:   club.IsClaimed,
		PresidentID: club.PresidentID,
		MemberCount: int64(len(members)),
		Members:     make([]ClubMemberResponse, len(members)),
		CreatedAt:   club.CreatedAt,
	}

	for i, m := range members {
		response.Members[i] = ClubMemberResponse{
			UserID:    m.UserID,
			Name:      m.User.Name,
			Email:     m.User.Email,
			AvatarURL: m.User.AvatarURL,
			Role:      m.Role,
			JoinedAt:  m.JoinedAt,
		}
	}

	if viewerID != "" {
		response.IsPresident = s.roles.IsPresidentOfClub(viewerID, id)
		response.IsSponsor = s.roles.IsSponsorOfClub(viewerID, id)
	}

	return response, nil
}

// ListClubs returns one page of clubs
func (s *ClubService) ListClubs(page, pageSize int) (*ClubListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	clubs, total, err := s.clubRepo.List(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list clubs: %w", err)
	}

	summaries := make([]ClubSummary, len(clubs))
	for i, c := range clubs {
		summaries[i] = ClubSummary{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Category:    c.Category,
			ImageURL:    c.ImageURL,
			IsClaimed:   c.IsClaimed,
		}
	}

	return &ClubListResponse{
		Clubs:    summaries,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateClub applies profile edits. Only a president of the club may edit it.
func (s *ClubService) UpdateClub(id uuid.UUID, userID string, req *UpdateClubRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.clubRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrClubNotFound
		}
		return "", fmt.Errorf("failed to load club: %w", err)
	}

	if !s.roles.IsPresidentOfClub(userID, id) {
		return "", apperrors.ErrNotClubPresident
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.MeetingTime != nil {
		updates["meeting_time"] = *req.MeetingTime
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if len(updates) == 0 {
		return "Club updated successfully", nil
	}

	if err := s.clubRepo.UpdateFields(id, updates); err != nil {
		return "", fmt.Errorf("failed to update club: %w", err)
	}

	return "Club updated successfully", nil
}
