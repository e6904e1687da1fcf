package models

// ClubRole represents a member's role within a club
type ClubRole string

const (
	ClubRoleMember        ClubRole = "member"
	ClubRoleOfficer       ClubRole = "officer"
	ClubRoleVicePresident ClubRole = "vice_president"
	ClubRolePresident     ClubRole = "president"

	// ClubRoleLeader is a legacy alias for officer still present in old rows
	ClubRoleLeader ClubRole = "leader"
)

// IsValid checks if the ClubRole is one of the assignable roles.
// The legacy "leader" alias is readable but no longer assignable.
func (r ClubRole) IsValid() bool {
	switch r {
	case ClubRoleMember, ClubRoleOfficer, ClubRoleVicePresident, ClubRolePresident:
		return true
	}
	return false
}

// SponsorStatus represents the state of a club sponsorship
type SponsorStatus string

const (
	SponsorStatusActive  SponsorStatus = "active"
	SponsorStatusRemoved SponsorStatus = "removed"
)

// RequestStatus represents the state of a leadership request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// RequestAction represents the leadership change a request proposes
type RequestAction string

const (
	RequestActionAddPresident    RequestAction = "add_president"
	RequestActionRemovePresident RequestAction = "remove_president"
	RequestActionAddOfficer      RequestAction = "add_officer"
	RequestActionRemoveOfficer   RequestAction = "remove_officer"
)

// IsValid checks if the RequestAction is valid
func (a RequestAction) IsValid() bool {
	switch a {
	case RequestActionAddPresident, RequestActionRemovePresident,
		RequestActionAddOfficer, RequestActionRemoveOfficer:
		return true
	}
	return false
}

// IsAdd reports whether the action grants a role rather than revoking one
func (a RequestAction) IsAdd() bool {
	return a == RequestActionAddPresident || a == RequestActionAddOfficer
}

// SchoolRole represents a school-wide role independent of any club
type SchoolRole string

const (
	SchoolRoleCoordinator SchoolRole = "coordinator"
)
