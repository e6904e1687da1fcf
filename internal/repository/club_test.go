//go:build integration
// +build integration

package repository

import (
	"testing"

	"berkconnect-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ClubRepositoryTestSuite tests the ClubRepository
type ClubRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ClubRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ClubRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewClubRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ClubRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ClubRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ClubRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ClubRepositoryTestSuite) mustCreateUser() string {
	user := suite.factories.User.Create()
	err := suite.baseTestSuite.DB.Create(user).Error
	suite.NoError(err)
	return user.ID
}

// TestGetByID tests retrieving a club by ID
func (suite *ClubRepositoryTestSuite) TestGetByID() {
	club := suite.factories.Club.WithName("Debate Club")
	err := suite.baseTestSuite.DB.Create(club).Error
	suite.NoError(err)

	found, err := suite.repo.GetByID(club.ID)
	suite.NoError(err)
	suite.Equal("Debate Club", found.Name)
	suite.False(found.IsClaimed)
	suite.Nil(found.PresidentID)
}

// TestGetByIDNotFound tests retrieving a missing club
func (suite *ClubRepositoryTestSuite) TestGetByIDNotFound() {
	club := suite.factories.Club.Create()

	_, err := suite.repo.GetByID(club.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestList tests pagination and ordering
func (suite *ClubRepositoryTestSuite) TestList() {
	for _, name := range []string{"Chess Club", "Anime Club", "Debate Club"} {
		err := suite.baseTestSuite.DB.Create(suite.factories.Club.WithName(name)).Error
		suite.NoError(err)
	}

	clubs, total, err := suite.repo.List(2, 0)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(clubs, 2)
	suite.Equal("Anime Club", clubs[0].Name)
	suite.Equal("Chess Club", clubs[1].Name)

	clubs, total, err = suite.repo.List(2, 2)
	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(clubs, 1)
	suite.Equal("Debate Club", clubs[0].Name)
}

// TestClaimIfUnclaimed tests the winner path of a claim
func (suite *ClubRepositoryTestSuite) TestClaimIfUnclaimed() {
	userID := suite.mustCreateUser()
	club := suite.factories.Club.Create()
	err := suite.baseTestSuite.DB.Create(club).Error
	suite.NoError(err)

	claimed, err := suite.repo.ClaimIfUnclaimed(suite.baseTestSuite.DB, club.ID, userID)
	suite.NoError(err)
	suite.True(claimed)

	found, err := suite.repo.GetByID(club.ID)
	suite.NoError(err)
	suite.True(found.IsClaimed)
	suite.NotNil(found.PresidentID)
	suite.Equal(userID, *found.PresidentID)
}

// TestClaimIfUnclaimedLoser tests that a second claim of the same club is
// rejected and leaves the first claim intact
func (suite *ClubRepositoryTestSuite) TestClaimIfUnclaimedLoser() {
	winner := suite.mustCreateUser()
	loser := suite.mustCreateUser()
	club := suite.factories.Club.Create()
	err := suite.baseTestSuite.DB.Create(club).Error
	suite.NoError(err)

	claimed, err := suite.repo.ClaimIfUnclaimed(suite.baseTestSuite.DB, club.ID, winner)
	suite.NoError(err)
	suite.True(claimed)

	claimed, err = suite.repo.ClaimIfUnclaimed(suite.baseTestSuite.DB, club.ID, loser)
	suite.NoError(err)
	suite.False(claimed)

	found, err := suite.repo.GetByID(club.ID)
	suite.NoError(err)
	suite.Equal(winner, *found.PresidentID)
}

// TestUnclaim tests clearing the claim and president pointer
func (suite *ClubRepositoryTestSuite) TestUnclaim() {
	userID := suite.mustCreateUser()
	club := suite.factories.Club.WithPresident(userID)
	err := suite.baseTestSuite.DB.Create(club).Error
	suite.NoError(err)

	err = suite.repo.Unclaim(suite.baseTestSuite.DB, club.ID)
	suite.NoError(err)

	found, err := suite.repo.GetByID(club.ID)
	suite.NoError(err)
	suite.False(found.IsClaimed)
	suite.Nil(found.PresidentID)
}

// TestSetPresidentIfVacant tests that an existing pointer is never overwritten
func (suite *ClubRepositoryTestSuite) TestSetPresidentIfVacant() {
	incumbent := suite.mustCreateUser()
	challenger := suite.mustCreateUser()
	club := suite.factories.Club.WithPresident(incumbent)
	err := suite.baseTestSuite.DB.Create(club).Error
	suite.NoError(err)

	err = suite.repo.SetPresidentIfVacant(suite.baseTestSuite.DB, club.ID, challenger)
	suite.NoError(err)

	found, err := suite.repo.GetByID(club.ID)
	suite.NoError(err)
	suite.Equal(incumbent, *found.PresidentID)

	// Vacate the pointer, then the promotion lands
	err = suite.repo.UpdateFields(club.ID, map[string]interface{}{"president_id": nil})
	suite.NoError(err)

	err = suite.repo.SetPresidentIfVacant(suite.baseTestSuite.DB, club.ID, challenger)
	suite.NoError(err)

	found, err = suite.repo.GetByID(club.ID)
	suite.NoError(err)
	suite.Equal(challenger, *found.PresidentID)
}

// TestUpdateFields tests partial profile updates
func (suite *ClubRepositoryTestSuite) TestUpdateFields() {
	club := suite.factories.Club.Create()
	err := suite.baseTestSuite.DB.Create(club).Error
	suite.NoError(err)

	err = suite.repo.UpdateFields(club.ID, map[string]interface{}{
		"description": "Now with lasers",
		"location":    "Room 117",
	})
	suite.NoError(err)

	found, err := suite.repo.GetByID(club.ID)
	suite.NoError(err)
	suite.Equal("Now with lasers", found.Description)
	suite.Equal("Room 117", found.Location)
	suite.Equal(club.Name, found.Name)
}

// TestGetWithPresident tests the preload of the primary president
func (suite *ClubRepositoryTestSuite) TestGetWithPresident() {
	user := suite.factories.User.Create()
	err := suite.baseTestSuite.DB.Create(user).Error
	suite.NoError(err)

	club := suite.factories.Club.WithPresident(user.ID)
	err = suite.baseTestSuite.DB.Create(club).Error
	suite.NoError(err)

	found, err := suite.repo.GetWithPresident(club.ID)
	suite.NoError(err)
	suite.NotNil(found.President)
	suite.Equal(user.Name, found.President.Name)
}

// TestClubRepositoryTestSuite runs the test suite
func TestClubRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ClubRepositoryTestSuite))
}
