package service_test

import (
	"errors"
	"testing"

	"berkconnect-backend/internal/database/models"
	apperrors "berkconnect-backend/internal/errors"
	"berkconnect-backend/internal/mocks"
	"berkconnect-backend/internal/service"
	"berkconnect-backend/internal/teachercheck"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// LeadershipServiceTestSuite defines the test suite for LeadershipService
type LeadershipServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockTxm          *mocks.MockTxManager
	mockClubRepo     *mocks.MockClubRepositoryInterface
	mockMemberRepo   *mocks.MockClubMemberRepositoryInterface
	mockSponsorRepo  *mocks.MockClubSponsorRepositoryInterface
	mockUserRepo     *mocks.MockUserRepositoryInterface
	mockRequestRepo  *mocks.MockLeadershipRequestRepositoryInterface
	mockTransferRepo *mocks.MockPresidencyTransferRepositoryInterface
	mockRoles        *mocks.MockRoleServiceInterface
	mockAudit        *mocks.MockAuditRecorderInterface
	teachers         *teachercheck.Verifier
	svc              *service.LeadershipService
}

// SetupTest sets up the test suite
func (suite *LeadershipServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTxm = mocks.NewMockTxManager(suite.ctrl)
	suite.mockClubRepo = mocks.NewMockClubRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockClubMemberRepositoryInterface(suite.ctrl)
	suite.mockSponsorRepo = mocks.NewMockClubSponsorRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockRequestRepo = mocks.NewMockLeadershipRequestRepositoryInterface(suite.ctrl)
	suite.mockTransferRepo = mocks.NewMockPresidencyTransferRepositoryInterface(suite.ctrl)
	suite.mockRoles = mocks.NewMockRoleServiceInterface(suite.ctrl)
	suite.mockAudit = mocks.NewMockAuditRecorderInterface(suite.ctrl)
	suite.teachers = teachercheck.NewVerifier([]string{"ms.rivera@berkeley.k12.us"})

	suite.svc = service.NewLeadershipService(
		suite.mockTxm,
		suite.mockClubRepo,
		suite.mockMemberRepo,
		suite.mockSponsorRepo,
		suite.mockUserRepo,
		suite.mockRequestRepo,
		suite.mockTransferRepo,
		suite.mockRoles,
		suite.teachers,
		suite.mockAudit,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *LeadershipServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// expectTx makes the transaction manager run the supplied function against a
// nil handle, mirroring a committed transaction
func (suite *LeadershipServiceTestSuite) expectTx() {
	suite.mockTxm.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(fn func(*gorm.DB) error) error {
			return fn(nil)
		}).
		Times(1)
}

func unclaimedClub(id uuid.UUID) *models.Club {
	club := &models.Club{Name: "Robotics Club", IsClaimed: false}
	club.ID = id
	return club
}

func claimedClub(id uuid.UUID, presidentID string) *models.Club {
	club := &models.Club{Name: "Robotics Club", IsClaimed: true, PresidentID: &presidentID}
	club.ID = id
	return club
}

// TestClaimSuccess tests claiming an unclaimed club
func (suite *LeadershipServiceTestSuite) TestClaimSuccess() {
	clubID := uuid.New()
	actor := service.Actor{ID: "user-1", Name: "Ada", Email: "ada@student.example"}

	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(unclaimedClub(clubID), nil)
	suite.expectTx()
	suite.mockUserRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockClubRepo.EXPECT().ClaimIfUnclaimed(gomock.Any(), clubID, "user-1").Return(true, nil)
	suite.mockMemberRepo.EXPECT().UpsertRole(gomock.Any(), clubID, "user-1", models.ClubRolePresident).Return(nil)
	suite.mockAudit.EXPECT().Record("user-1", "claim_club", "club", clubID.String(), gomock.Any())

	message, err := suite.svc.Claim(clubID, actor)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "You are now the president of Robotics Club!", message)
}

// TestClaimAlreadyClaimed tests claiming a club that already has a president
func (suite *LeadershipServiceTestSuite) TestClaimAlreadyClaimed() {
	clubID := uuid.New()

	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(claimedClub(clubID, "other"), nil)

	_, err := suite.svc.Claim(clubID, service.Actor{ID: "user-1"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrClubAlreadyClaimed)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

// TestClaimLosesRace tests the second of two concurrent claimants
func (suite *LeadershipServiceTestSuite) TestClaimLosesRace() {
	clubID := uuid.New()

	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(unclaimedClub(clubID), nil)
	suite.expectTx()
	suite.mockUserRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockClubRepo.EXPECT().ClaimIfUnclaimed(gomock.Any(), clubID, "user-2").Return(false, nil)

	_, err := suite.svc.Claim(clubID, service.Actor{ID: "user-2", Name: "Grace"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrClubAlreadyClaimed)
}

// TestClaimClubNotFound tests claiming a nonexistent club
func (suite *LeadershipServiceTestSuite) TestClaimClubNotFound() {
	clubID := uuid.New()

	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.Claim(clubID, service.Actor{ID: "user-1"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrClubNotFound)
}

// TestClaimMissingActor tests claiming without a user ID
func (suite *LeadershipServiceTestSuite) TestClaimMissingActor() {
	_, err := suite.svc.Claim(uuid.New(), service.Actor{})

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestClaimSponsorSuccess tests a verified teacher sponsoring a club
func (suite *LeadershipServiceTestSuite) TestClaimSponsorSuccess() {
	clubID := uuid.New()

	suite.mockUserRepo.EXPECT().GetByID("teacher-1").Return(&models.User{ID: "teacher-1", Email: "ms.rivera@berkeley.k12.us"}, nil)
	suite.mockSponsorRepo.EXPECT().GetActive(clubID, "teacher-1").Return(nil, gorm.ErrRecordNotFound)
	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(unclaimedClub(clubID), nil)
	suite.mockSponsorRepo.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockAudit.EXPECT().Record("teacher-1", "claim_sponsor", "club", clubID.String(), gomock.Any())

	message, err := suite.svc.ClaimSponsor(clubID, "teacher-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "You are now a sponsor of Robotics Club", message)
}

// TestClaimSponsorNotTeacher tests sponsorship by a user not on the allow-list
func (suite *LeadershipServiceTestSuite) TestClaimSponsorNotTeacher() {
	clubID := uuid.New()

	suite.mockUserRepo.EXPECT().GetByID("student-1").Return(&models.User{ID: "student-1", Email: "kid@student.example"}, nil)

	_, err := suite.svc.ClaimSponsor(clubID, "student-1")

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotVerifiedTeacher)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestClaimSponsorAlreadySponsor tests double sponsorship of the same club
func (suite *LeadershipServiceTestSuite) TestClaimSponsorAlreadySponsor() {
	clubID := uuid.New()

	suite.mockUserRepo.EXPECT().GetByID("teacher-1").Return(&models.User{ID: "teacher-1", Email: "ms.rivera@berkeley.k12.us"}, nil)
	suite.mockSponsorRepo.EXPECT().GetActive(clubID, "teacher-1").Return(&models.ClubSponsor{}, nil)

	_, err := suite.svc.ClaimSponsor(clubID, "teacher-1")

	assert.ErrorIs(suite.T(), err, apperrors.ErrAlreadySponsor)
}

// TestCheckSponsor tests the sponsorship predicate both ways
func (suite *LeadershipServiceTestSuite) TestCheckSponsor() {
	clubID := uuid.New()

	suite.mockSponsorRepo.EXPECT().GetActive(clubID, "teacher-1").Return(&models.ClubSponsor{}, nil)
	isSponsor, err := suite.svc.CheckSponsor(clubID, "teacher-1")
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), isSponsor)

	suite.mockSponsorRepo.EXPECT().GetActive(clubID, "teacher-2").Return(nil, gorm.ErrRecordNotFound)
	isSponsor, err = suite.svc.CheckSponsor(clubID, "teacher-2")
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), isSponsor)
}

// TestLeaveSponsorNotSponsor tests leaving a sponsorship that does not exist
func (suite *LeadershipServiceTestSuite) TestLeaveSponsorNotSponsor() {
	clubID := uuid.New()

	suite.mockSponsorRepo.EXPECT().GetActive(clubID, "teacher-1").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.LeaveSponsor(clubID, "teacher-1")

	assert.ErrorIs(suite.T(), err, apperrors.ErrSponsorNotFound)
}

// TestLeaveSponsorSuccess tests ending a sponsorship
func (suite *LeadershipServiceTestSuite) TestLeaveSponsorSuccess() {
	clubID := uuid.New()

	suite.mockSponsorRepo.EXPECT().GetActive(clubID, "teacher-1").Return(&models.ClubSponsor{}, nil)
	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(unclaimedClub(clubID), nil)
	suite.mockSponsorRepo.EXPECT().MarkRemoved(clubID, "teacher-1").Return(nil)
	suite.mockAudit.EXPECT().Record("teacher-1", "leave_sponsor", "club", clubID.String(), gomock.Any())

	message, err := suite.svc.LeaveSponsor(clubID, "teacher-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "You have left the sponsorship of this club", message)
}

// TestTransferPresidencySuccess tests a direct presidency transfer
func (suite *LeadershipServiceTestSuite) TestTransferPresidencySuccess() {
	clubID := uuid.New()

	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(claimedClub(clubID, "pres-1"), nil)
	suite.mockMemberRepo.EXPECT().GetByClubAndUser(clubID, "member-2").Return(&models.ClubMember{UserID: "member-2", Role: models.ClubRoleMember}, nil)
	suite.expectTx()
	suite.mockClubRepo.EXPECT().SetPresident(gomock.Any(), clubID, "member-2").Return(nil)
	suite.mockMemberRepo.EXPECT().UpdateRole(gomock.Any(), clubID, "pres-1", models.ClubRoleMember).Return(nil)
	suite.mockMemberRepo.EXPECT().UpdateRole(gomock.Any(), clubID, "member-2", models.ClubRolePresident).Return(nil)
	suite.mockTransferRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockAudit.EXPECT().Record("pres-1", "transfer_presidency", "club", clubID.String(), gomock.Any())

	message, err := suite.svc.TransferPresidency(clubID, "pres-1", "member-2")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Presidency transferred successfully", message)
}

// TestTransferPresidencyNotPrimary tests that a co-president cannot use the
// direct transfer path
func (suite *LeadershipServiceTestSuite) TestTransferPresidencyNotPrimary() {
	clubID := uuid.New()

	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(claimedClub(clubID, "pres-1"), nil)

	_, err := suite.svc.TransferPresidency(clubID, "co-pres", "member-2")

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotPrimaryPresident)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestTransferPresidencyToSelf tests transferring to yourself
func (suite *LeadershipServiceTestSuite) TestTransferPresidencyToSelf() {
	_, err := suite.svc.TransferPresidency(uuid.New(), "pres-1", "pres-1")

	assert.ErrorIs(suite.T(), err, apperrors.ErrTransferToSelf)
}

// TestTransferPresidencyToNonMember tests transferring to someone outside the club
func (suite *LeadershipServiceTestSuite) TestTransferPresidencyToNonMember() {
	clubID := uuid.New()

	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(claimedClub(clubID, "pres-1"), nil)
	suite.mockMemberRepo.EXPECT().GetByClubAndUser(clubID, "outsider").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.TransferPresidency(clubID, "pres-1", "outsider")

	assert.ErrorIs(suite.T(), err, apperrors.ErrTargetNotMember)
}

// TestLeavePresidencyWithSuccessor tests stepping down with a named successor.
// The effect matches a direct transfer but no transfer record is created.
func (suite *LeadershipServiceTestSuite) TestLeavePresidencyWithSuccessor() {
	clubID := uuid.New()
	successor := "member-2"

	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(claimedClub(clubID, "pres-1"), nil)
	suite.mockMemberRepo.EXPECT().GetByClubAndUser(clubID, successor).Return(&models.ClubMember{UserID: successor}, nil)
	suite.expectTx()
	suite.mockClubRepo.EXPECT().SetPresident(gomock.Any(), clubID, successor).Return(nil)
	suite.mockMemberRepo.EXPECT().UpdateRole(gomock.Any(), clubID, "pres-1", models.ClubRoleMember).Return(nil)
	suite.mockMemberRepo.EXPECT().UpdateRole(gomock.Any(), clubID, successor, models.ClubRolePresident).Return(nil)
	suite.mockAudit.EXPECT().Record("pres-1", "leave_presidency", "club", clubID.String(), gomock.Any())

	message, err := suite.svc.LeavePresidency(clubID, "pres-1", &successor)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Presidency transferred successfully", message)
}

// TestLeavePresidencyWithoutSuccessor tests vacating: the club is unclaimed
// and the departing president's membership is deleted
func (suite *LeadershipServiceTestSuite) TestLeavePresidencyWithoutSuccessor() {
	clubID := uuid.New()

	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(claimedClub(clubID, "pres-1"), nil)
	suite.expectTx()
	suite.mockClubRepo.EXPECT().Unclaim(gomock.Any(), clubID).Return(nil)
	suite.mockMemberRepo.EXPECT().Delete(gomock.Any(), clubID, "pres-1").Return(nil)
	suite.mockAudit.EXPECT().Record("pres-1", "leave_presidency", "club", clubID.String(), gomock.Nil())

	message, err := suite.svc.LeavePresidency(clubID, "pres-1", nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Club unclaimed and you have left the club", message)
}

// TestLeavePresidencySuccessorNotMember tests naming an outsider as successor
func (suite *LeadershipServiceTestSuite) TestLeavePresidencySuccessorNotMember() {
	clubID := uuid.New()
	successor := "outsider"

	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(claimedClub(clubID, "pres-1"), nil)
	suite.mockMemberRepo.EXPECT().GetByClubAndUser(clubID, successor).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.svc.LeavePresidency(clubID, "pres-1", &successor)

	assert.ErrorIs(suite.T(), err, apperrors.ErrSuccessorNotMember)
}

// TestRemovePresidentSuccess tests the coordinator leadership reset. All
// president rows are removed, not just the named target.
func (suite *LeadershipServiceTestSuite) TestRemovePresidentSuccess() {
	clubID := uuid.New()

	suite.mockRoles.EXPECT().IsCoordinator("coord-1").Return(true)
	suite.mockMemberRepo.EXPECT().GetByClubAndUser(clubID, "pres-1").Return(&models.ClubMember{UserID: "pres-1", Role: models.ClubRolePresident}, nil)
	suite.expectTx()
	suite.mockMemberRepo.EXPECT().DeletePresidents(gomock.Any(), clubID).Return(nil)
	suite.mockClubRepo.EXPECT().Unclaim(gomock.Any(), clubID).Return(nil)
	suite.mockAudit.EXPECT().Record("coord-1", "remove_president", "club", clubID.String(), gomock.Any())

	message, err := suite.svc.RemovePresident(clubID, "coord-1", "pres-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "President removed and club is now unclaimed", message)
}

// TestRemovePresidentNotCoordinator tests the permission check
func (suite *LeadershipServiceTestSuite) TestRemovePresidentNotCoordinator() {
	suite.mockRoles.EXPECT().IsCoordinator("rando").Return(false)

	_, err := suite.svc.RemovePresident(uuid.New(), "rando", "pres-1")

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotCoordinator)
}

// TestRemovePresidentTargetNotPresident tests removing a non-president
func (suite *LeadershipServiceTestSuite) TestRemovePresidentTargetNotPresident() {
	clubID := uuid.New()

	suite.mockRoles.EXPECT().IsCoordinator("coord-1").Return(true)
	suite.mockMemberRepo.EXPECT().GetByClubAndUser(clubID, "member-1").Return(&models.ClubMember{UserID: "member-1", Role: models.ClubRoleMember}, nil)

	_, err := suite.svc.RemovePresident(clubID, "coord-1", "member-1")

	assert.ErrorIs(suite.T(), err, apperrors.ErrTargetNotPresident)
}

// TestKickMemberSuccess tests removing an ordinary member
func (suite *LeadershipServiceTestSuite) TestKickMemberSuccess() {
	clubID := uuid.New()

	suite.mockRoles.EXPECT().IsCoordinator("coord-1").Return(true)
	suite.mockMemberRepo.EXPECT().GetByClubAndUser(clubID, "member-1").Return(&models.ClubMember{UserID: "member-1", Role: models.ClubRoleOfficer}, nil)
	suite.expectTx()
	suite.mockMemberRepo.EXPECT().Delete(gomock.Any(), clubID, "member-1").Return(nil)
	suite.mockAudit.EXPECT().
		Record("coord-1", "kick_member", "club", clubID.String(), gomock.Any()).
		Do(func(_, _, _, _ string, details map[string]interface{}) {
			assert.Equal(suite.T(), "officer", details["previous_role"])
		})

	message, err := suite.svc.KickMember(clubID, "coord-1", "member-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Member removed from club", message)
}

// TestKickMemberTargetIsPresident tests that presidents cannot be kicked
func (suite *LeadershipServiceTestSuite) TestKickMemberTargetIsPresident() {
	clubID := uuid.New()

	suite.mockRoles.EXPECT().IsCoordinator("coord-1").Return(true)
	suite.mockMemberRepo.EXPECT().GetByClubAndUser(clubID, "pres-1").Return(&models.ClubMember{UserID: "pres-1", Role: models.ClubRolePresident}, nil)

	_, err := suite.svc.KickMember(clubID, "coord-1", "pres-1")

	assert.ErrorIs(suite.T(), err, apperrors.ErrTargetIsPresident)
}

// TestUpdateMemberRoleInvalidRole tests rejecting an unknown role
func (suite *LeadershipServiceTestSuite) TestUpdateMemberRoleInvalidRole() {
	_, err := suite.svc.UpdateMemberRole(uuid.New(), "pres-1", "member-1", "emperor")

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRole)
}

// TestUpdateMemberRoleNotPresident tests that only presidents may change roles
func (suite *LeadershipServiceTestSuite) TestUpdateMemberRoleNotPresident() {
	clubID := uuid.New()

	suite.mockMemberRepo.EXPECT().GetByClubAndUser(clubID, "member-1").Return(&models.ClubMember{UserID: "member-1", Role: models.ClubRoleMember}, nil)

	_, err := suite.svc.UpdateMemberRole(clubID, "member-1", "member-2", "officer")

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotClubPresident)
}

// TestUpdateMemberRolePromoteToPresident tests promotion to co-president. The
// primary pointer is only set when vacant.
func (suite *LeadershipServiceTestSuite) TestUpdateMemberRolePromoteToPresident() {
	clubID := uuid.New()

	suite.mockMemberRepo.EXPECT().GetByClubAndUser(clubID, "pres-1").Return(&models.ClubMember{UserID: "pres-1", Role: models.ClubRolePresident}, nil)
	suite.mockMemberRepo.EXPECT().GetByClubAndUser(clubID, "member-2").Return(&models.ClubMember{UserID: "member-2", Role: models.ClubRoleMember}, nil)
	suite.expectTx()
	suite.mockMemberRepo.EXPECT().UpdateRole(gomock.Any(), clubID, "member-2", models.ClubRolePresident).Return(nil)
	suite.mockClubRepo.EXPECT().SetPresidentIfVacant(gomock.Any(), clubID, "member-2").Return(nil)
	suite.mockAudit.EXPECT().Record("pres-1", "update_member_role", "club", clubID.String(), gomock.Any())

	message, err := suite.svc.UpdateMemberRole(clubID, "pres-1", "member-2", "president")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Member role updated successfully", message)
}

// TestUpdateMemberRoleDemote tests a role change that does not touch the
// primary president pointer
func (suite *LeadershipServiceTestSuite) TestUpdateMemberRoleDemote() {
	clubID := uuid.New()

	suite.mockMemberRepo.EXPECT().GetByClubAndUser(clubID, "pres-1").Return(&models.ClubMember{UserID: "pres-1", Role: models.ClubRolePresident}, nil)
	suite.mockMemberRepo.EXPECT().GetByClubAndUser(clubID, "officer-1").Return(&models.ClubMember{UserID: "officer-1", Role: models.ClubRoleOfficer}, nil)
	suite.expectTx()
	suite.mockMemberRepo.EXPECT().UpdateRole(gomock.Any(), clubID, "officer-1", models.ClubRoleMember).Return(nil)
	suite.mockAudit.EXPECT().Record("pres-1", "update_member_role", "club", clubID.String(), gomock.Any())

	message, err := suite.svc.UpdateMemberRole(clubID, "pres-1", "officer-1", "member")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Member role updated successfully", message)
}

// TestSubmitRequestSuccess tests filing a pending request
func (suite *LeadershipServiceTestSuite) TestSubmitRequestSuccess() {
	clubID := uuid.New()
	req := &service.SubmitLeadershipRequest{
		ClubID:       clubID,
		RequestedBy:  "pres-1",
		TargetUserID: "member-2",
		ActionType:   "add_officer",
	}

	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(unclaimedClub(clubID), nil)
	suite.mockRequestRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.LeadershipRequest) error {
		assert.Equal(suite.T(), models.RequestStatusPending, r.Status)
		assert.Equal(suite.T(), models.ClubRoleOfficer, r.NewRole)
		return nil
	})

	response, err := suite.svc.SubmitRequest(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.RequestStatusPending, response.Status)
	assert.Equal(suite.T(), "Robotics Club", response.ClubName)
}

// TestSubmitRequestInvalidAction tests an unknown action type
func (suite *LeadershipServiceTestSuite) TestSubmitRequestInvalidAction() {
	req := &service.SubmitLeadershipRequest{
		ClubID:       uuid.New(),
		RequestedBy:  "pres-1",
		TargetUserID: "member-2",
		ActionType:   "coronate",
	}

	_, err := suite.svc.SubmitRequest(req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRequestAction)
}

func pendingRequest(id, clubID uuid.UUID, action models.RequestAction, newRole models.ClubRole) *models.LeadershipRequest {
	request := &models.LeadershipRequest{
		ClubID:       clubID,
		RequestedBy:  "pres-1",
		TargetUserID: "member-2",
		ActionType:   action,
		NewRole:      newRole,
		Status:       models.RequestStatusPending,
	}
	request.ID = id
	return request
}

// TestReviewRequestApprove tests that approval flips the status and applies
// the membership change in the same transaction
func (suite *LeadershipServiceTestSuite) TestReviewRequestApprove() {
	requestID := uuid.New()
	clubID := uuid.New()

	suite.mockRequestRepo.EXPECT().GetByID(requestID).
		Return(pendingRequest(requestID, clubID, models.RequestActionAddOfficer, models.ClubRoleOfficer), nil)
	suite.mockRoles.EXPECT().IsSponsorOfClub("teacher-1", clubID).Return(true)
	suite.expectTx()
	suite.mockRequestRepo.EXPECT().MarkApproved(gomock.Any(), requestID, "teacher-1").Return(nil)
	suite.mockMemberRepo.EXPECT().UpsertRole(gomock.Any(), clubID, "member-2", models.ClubRoleOfficer).Return(nil)
	suite.mockAudit.EXPECT().Record("teacher-1", "approve_leadership_request", "leadership_request", requestID.String(), gomock.Any())

	message, err := suite.svc.ReviewRequest(requestID, "teacher-1", "approve", nil)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Leadership request approved and applied successfully", message)
}

// TestReviewRequestApproveRemoval tests that a removal action demotes instead
// of deleting
func (suite *LeadershipServiceTestSuite) TestReviewRequestApproveRemoval() {
	requestID := uuid.New()
	clubID := uuid.New()

	suite.mockRequestRepo.EXPECT().GetByID(requestID).
		Return(pendingRequest(requestID, clubID, models.RequestActionRemoveOfficer, ""), nil)
	suite.mockRoles.EXPECT().IsSponsorOfClub("teacher-1", clubID).Return(true)
	suite.expectTx()
	suite.mockRequestRepo.EXPECT().MarkApproved(gomock.Any(), requestID, "teacher-1").Return(nil)
	suite.mockMemberRepo.EXPECT().UpdateRole(gomock.Any(), clubID, "member-2", models.ClubRoleMember).Return(nil)
	suite.mockAudit.EXPECT().Record("teacher-1", "approve_leadership_request", "leadership_request", requestID.String(), gomock.Any())

	_, err := suite.svc.ReviewRequest(requestID, "teacher-1", "approve", nil)

	assert.NoError(suite.T(), err)
}

// TestReviewRequestApproveEffectFails tests that a failed membership change
// aborts the approval. The status flip rides the same transaction, and no
// audit entry is written.
func (suite *LeadershipServiceTestSuite) TestReviewRequestApproveEffectFails() {
	requestID := uuid.New()
	clubID := uuid.New()
	boom := errors.New("pq: deadlock detected")

	suite.mockRequestRepo.EXPECT().GetByID(requestID).
		Return(pendingRequest(requestID, clubID, models.RequestActionAddOfficer, models.ClubRoleOfficer), nil)
	suite.mockRoles.EXPECT().IsSponsorOfClub("teacher-1", clubID).Return(true)
	suite.expectTx()
	suite.mockRequestRepo.EXPECT().MarkApproved(gomock.Any(), requestID, "teacher-1").Return(nil)
	suite.mockMemberRepo.EXPECT().UpsertRole(gomock.Any(), clubID, "member-2", models.ClubRoleOfficer).Return(boom)

	_, err := suite.svc.ReviewRequest(requestID, "teacher-1", "approve", nil)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, boom)
}

// TestReviewRequestReject tests rejection with a reason
func (suite *LeadershipServiceTestSuite) TestReviewRequestReject() {
	requestID := uuid.New()
	clubID := uuid.New()
	reason := "needs a sponsor signature first"

	suite.mockRequestRepo.EXPECT().GetByID(requestID).
		Return(pendingRequest(requestID, clubID, models.RequestActionAddOfficer, models.ClubRoleOfficer), nil)
	suite.mockRoles.EXPECT().IsSponsorOfClub("teacher-1", clubID).Return(true)
	suite.expectTx()
	suite.mockRequestRepo.EXPECT().MarkRejected(gomock.Any(), requestID, "teacher-1", &reason).Return(nil)
	suite.mockAudit.EXPECT().Record("teacher-1", "reject_leadership_request", "leadership_request", requestID.String(), gomock.Any())

	message, err := suite.svc.ReviewRequest(requestID, "teacher-1", "reject", &reason)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Leadership request rejected", message)
}

// TestReviewRequestAlreadyProcessed tests double review
func (suite *LeadershipServiceTestSuite) TestReviewRequestAlreadyProcessed() {
	requestID := uuid.New()
	request := pendingRequest(requestID, uuid.New(), models.RequestActionAddOfficer, models.ClubRoleOfficer)
	request.Status = models.RequestStatusApproved

	suite.mockRequestRepo.EXPECT().GetByID(requestID).Return(request, nil)

	_, err := suite.svc.ReviewRequest(requestID, "teacher-1", "approve", nil)

	assert.ErrorIs(suite.T(), err, apperrors.ErrRequestAlreadyProcessed)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

// TestReviewRequestNotReviewer tests review by someone with no standing
func (suite *LeadershipServiceTestSuite) TestReviewRequestNotReviewer() {
	requestID := uuid.New()
	clubID := uuid.New()

	suite.mockRequestRepo.EXPECT().GetByID(requestID).
		Return(pendingRequest(requestID, clubID, models.RequestActionAddOfficer, models.ClubRoleOfficer), nil)
	suite.mockRoles.EXPECT().IsSponsorOfClub("rando", clubID).Return(false)
	suite.mockRoles.EXPECT().IsCoordinator("rando").Return(false)

	_, err := suite.svc.ReviewRequest(requestID, "rando", "approve", nil)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotReviewer)
}

// TestReviewRequestInvalidDecision tests an unknown decision verb
func (suite *LeadershipServiceTestSuite) TestReviewRequestInvalidDecision() {
	_, err := suite.svc.ReviewRequest(uuid.New(), "teacher-1", "maybe", nil)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidReviewDecision)
}

// TestListRequestsAsCoordinator tests that coordinators see all pending requests
func (suite *LeadershipServiceTestSuite) TestListRequestsAsCoordinator() {
	suite.mockRoles.EXPECT().GetUserRoles("coord-1").Return(&service.RoleSnapshot{IsCoordinator: true})
	suite.mockRequestRepo.EXPECT().ListPending().Return([]models.LeadershipRequest{}, nil)

	requests, err := suite.svc.ListRequests("coord-1")

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), requests)
}

// TestListRequestsAsSponsor tests that sponsors only see their clubs' requests
func (suite *LeadershipServiceTestSuite) TestListRequestsAsSponsor() {
	request := pendingRequest(uuid.New(), uuid.New(), models.RequestActionAddPresident, models.ClubRolePresident)
	request.Club = models.Club{Name: "Chess Club"}

	suite.mockRoles.EXPECT().GetUserRoles("teacher-1").Return(&service.RoleSnapshot{IsSponsor: true})
	suite.mockRequestRepo.EXPECT().ListPendingForSponsor("teacher-1").Return([]models.LeadershipRequest{*request}, nil)

	requests, err := suite.svc.ListRequests("teacher-1")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), requests, 1)
	assert.Equal(suite.T(), "Chess Club", requests[0].ClubName)
}

// TestTransactionErrorPropagates tests that a failing transaction aborts the
// operation with no audit entry
func (suite *LeadershipServiceTestSuite) TestTransactionErrorPropagates() {
	clubID := uuid.New()
	boom := errors.New("deadlock detected")

	suite.mockClubRepo.EXPECT().GetByID(clubID).Return(claimedClub(clubID, "pres-1"), nil)
	suite.mockMemberRepo.EXPECT().GetByClubAndUser(clubID, "member-2").Return(&models.ClubMember{UserID: "member-2"}, nil)
	suite.mockTxm.EXPECT().Do(gomock.Any()).Return(boom)

	_, err := suite.svc.TransferPresidency(clubID, "pres-1", "member-2")

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, boom)
}

// TestLeadershipServiceTestSuite runs the test suite
func TestLeadershipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeadershipServiceTestSuite))
}
