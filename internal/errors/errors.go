package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a state conflict, such as claiming an already
// claimed club or reviewing an already processed request
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Message == t.Message
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthorizationError represents authorization-related errors. The message
// names the required role class and nothing else.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrClubNotFound    = &NotFoundError{Entity: "club"}
	ErrUserNotFound    = &NotFoundError{Entity: "user"}
	ErrMemberNotFound  = &NotFoundError{Entity: "member"}
	ErrSponsorNotFound = &NotFoundError{Entity: "sponsor"}
	ErrRequestNotFound = &NotFoundError{Entity: "leadership request"}
)

// State Conflict Errors
var (
	ErrClubAlreadyClaimed      = &ConflictError{Message: "club is already claimed"}
	ErrAlreadySponsor          = &ConflictError{Message: "you are already a sponsor of this club"}
	ErrRequestAlreadyProcessed = &ConflictError{Message: "request has already been processed"}
)

// Business Logic Errors
var (
	ErrTargetNotMember       = errors.New("target user must be a member of the club")
	ErrTargetNotPresident    = errors.New("target user is not a president of this club")
	ErrTargetIsPresident     = errors.New("use remove-president to remove presidents")
	ErrTransferToSelf        = errors.New("cannot transfer to yourself")
	ErrInvalidRole           = errors.New("invalid role")
	ErrInvalidRequestAction  = errors.New("invalid action type")
	ErrInvalidReviewDecision = errors.New("invalid action, must be 'approve' or 'reject'")
	ErrSuccessorNotMember    = errors.New("new president must be a club member")
)

// Authorization Errors
var (
	ErrNotPrimaryPresident = &AuthorizationError{Message: "only the president can transfer ownership"}
	ErrNotClubPresident    = &AuthorizationError{Message: "only club presidents can update member roles"}
	ErrNotCoordinator      = &AuthorizationError{Message: "only coordinators can perform this action"}
	ErrNotReviewer         = &AuthorizationError{Message: "only sponsors or coordinators can review requests"}
	ErrNotVerifiedTeacher  = &AuthorizationError{Message: "only verified teachers can sponsor clubs"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
