//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"

	"berkconnect-backend/internal/database/models"
	"berkconnect-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// LeadershipRequestRepositoryTestSuite tests the LeadershipRequestRepository
type LeadershipRequestRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LeadershipRequestRepository
	sponsorRepo   *ClubSponsorRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *LeadershipRequestRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewLeadershipRequestRepository(suite.baseTestSuite.DB)
	suite.sponsorRepo = NewClubSponsorRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *LeadershipRequestRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LeadershipRequestRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *LeadershipRequestRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *LeadershipRequestRepositoryTestSuite) mustCreateClub() uuid.UUID {
	club := suite.factories.Club.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(club).Error)
	return club.ID
}

func (suite *LeadershipRequestRepositoryTestSuite) mustCreateUser() string {
	user := suite.factories.User.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(user).Error)
	return user.ID
}

func (suite *LeadershipRequestRepositoryTestSuite) mustCreateRequest(clubID uuid.UUID) *models.LeadershipRequest {
	request := suite.factories.LeadershipRequest.ForClub(clubID)
	request.RequestedBy = suite.mustCreateUser()
	request.TargetUserID = suite.mustCreateUser()
	suite.NoError(suite.repo.Create(request))
	return request
}

// TestCreateAndGet tests the round trip of a pending request
func (suite *LeadershipRequestRepositoryTestSuite) TestCreateAndGet() {
	clubID := suite.mustCreateClub()
	request := suite.mustCreateRequest(clubID)

	found, err := suite.repo.GetByID(request.ID)
	suite.NoError(err)
	suite.Equal(models.RequestStatusPending, found.Status)
	suite.Equal(models.RequestActionAddOfficer, found.ActionType)
	suite.Nil(found.ReviewedBy)
}

// TestMarkApproved tests the approval transition
func (suite *LeadershipRequestRepositoryTestSuite) TestMarkApproved() {
	clubID := suite.mustCreateClub()
	request := suite.mustCreateRequest(clubID)
	reviewer := suite.mustCreateUser()

	err := suite.repo.MarkApproved(suite.baseTestSuite.DB, request.ID, reviewer)
	suite.NoError(err)

	found, err := suite.repo.GetByID(request.ID)
	suite.NoError(err)
	suite.Equal(models.RequestStatusApproved, found.Status)
	suite.NotNil(found.ReviewedBy)
	suite.Equal(reviewer, *found.ReviewedBy)
	suite.NotNil(found.ReviewedAt)
}

// TestMarkRejected tests the rejection transition with a reason
func (suite *LeadershipRequestRepositoryTestSuite) TestMarkRejected() {
	clubID := suite.mustCreateClub()
	request := suite.mustCreateRequest(clubID)
	reviewer := suite.mustCreateUser()
	reason := "Target has not attended a meeting this semester"

	err := suite.repo.MarkRejected(suite.baseTestSuite.DB, request.ID, reviewer, &reason)
	suite.NoError(err)

	found, err := suite.repo.GetByID(request.ID)
	suite.NoError(err)
	suite.Equal(models.RequestStatusRejected, found.Status)
	suite.NotNil(found.RejectionReason)
	suite.Equal(reason, *found.RejectionReason)
}

// TestMarkApprovedRollsBack tests that a failure later in the same
// transaction undoes the status flip
func (suite *LeadershipRequestRepositoryTestSuite) TestMarkApprovedRollsBack() {
	clubID := suite.mustCreateClub()
	request := suite.mustCreateRequest(clubID)
	reviewer := suite.mustCreateUser()
	boom := errors.New("membership change failed")

	txm := NewGormTxManager(suite.baseTestSuite.DB)
	err := txm.Do(func(tx *gorm.DB) error {
		if err := suite.repo.MarkApproved(tx, request.ID, reviewer); err != nil {
			return err
		}
		return boom
	})
	suite.ErrorIs(err, boom)

	found, err := suite.repo.GetByID(request.ID)
	suite.NoError(err)
	suite.Equal(models.RequestStatusPending, found.Status)
	suite.Nil(found.ReviewedBy)
}

// TestListPendingForSponsor tests that sponsors only see their own clubs'
// requests and never the reviewed ones
func (suite *LeadershipRequestRepositoryTestSuite) TestListPendingForSponsor() {
	sponsoredClub := suite.mustCreateClub()
	otherClub := suite.mustCreateClub()
	teacher := suite.mustCreateUser()

	suite.NoError(suite.sponsorRepo.Create(suite.factories.ClubSponsor.ForClub(sponsoredClub, teacher)))

	visible := suite.mustCreateRequest(sponsoredClub)
	suite.mustCreateRequest(otherClub)

	reviewed := suite.mustCreateRequest(sponsoredClub)
	suite.NoError(suite.repo.MarkApproved(suite.baseTestSuite.DB, reviewed.ID, teacher))

	requests, err := suite.repo.ListPendingForSponsor(teacher)
	suite.NoError(err)
	suite.Len(requests, 1)
	suite.Equal(visible.ID, requests[0].ID)
	suite.NotEmpty(requests[0].Club.Name)
}

// TestListPendingForRemovedSponsor tests that a removed sponsorship hides
// the club's queue
func (suite *LeadershipRequestRepositoryTestSuite) TestListPendingForRemovedSponsor() {
	clubID := suite.mustCreateClub()
	teacher := suite.mustCreateUser()

	suite.NoError(suite.sponsorRepo.Create(suite.factories.ClubSponsor.ForClub(clubID, teacher)))
	suite.mustCreateRequest(clubID)

	suite.NoError(suite.sponsorRepo.MarkRemoved(clubID, teacher))

	requests, err := suite.repo.ListPendingForSponsor(teacher)
	suite.NoError(err)
	suite.Empty(requests)
}

// TestListPending tests the coordinator view of the queue
func (suite *LeadershipRequestRepositoryTestSuite) TestListPending() {
	clubA := suite.mustCreateClub()
	clubB := suite.mustCreateClub()

	suite.mustCreateRequest(clubA)
	suite.mustCreateRequest(clubB)

	requests, err := suite.repo.ListPending()
	suite.NoError(err)
	suite.Len(requests, 2)
}

// TestLeadershipRequestRepositoryTestSuite runs the test suite
func TestLeadershipRequestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LeadershipRequestRepositoryTestSuite))
}
