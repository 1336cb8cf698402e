package repositories_test

import (
	"testing"
	"time"

	"finu/internal/database"
	"finu/internal/models"
	"finu/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type GoalRepositoryTestSuite struct {
	suite.Suite
	db   *database.DB
	repo repositories.GoalRepositoryInterface
	user *models.User
}

func TestGoalRepositorySuite(t *testing.T) {
	suite.Run(t, new(GoalRepositoryTestSuite))
}

func (s *GoalRepositoryTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = repositories.NewGoalRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, gofakeit.Email())
}

func (s *GoalRepositoryTestSuite) createGoal(name string, target int64) *models.Goal {
	goal := &models.Goal{
		UserID:       s.user.ID,
		Name:         name,
		TargetAmount: decimal.NewFromInt(target),
		Deadline:     time.Now().AddDate(0, 6, 0),
		Icon:         "laptop",
		Color:        models.GoalColorChart1,
	}
	s.Require().NoError(s.repo.Create(goal))
	return goal
}

func (s *GoalRepositoryTestSuite) TestCreateAndGet() {
	goal := s.createGoal("New Laptop", 45000)

	found, err := s.repo.GetByID(goal.ID)
	s.Require().NoError(err)
	s.Equal("New Laptop", found.Name)
	s.True(found.SavedAmount.IsZero())
	s.Nil(found.LastFundedDate)
}

func (s *GoalRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.ErrorIs(err, repositories.ErrGoalNotFound)
}

func (s *GoalRepositoryTestSuite) TestListByUser_OrderedByDeadline() {
	later := &models.Goal{
		UserID:       s.user.ID,
		Name:         "Goa Trip",
		TargetAmount: decimal.NewFromInt(8000),
		Deadline:     time.Now().AddDate(1, 0, 0),
	}
	s.Require().NoError(s.repo.Create(later))

	sooner := &models.Goal{
		UserID:       s.user.ID,
		Name:         "Exam Fees",
		TargetAmount: decimal.NewFromInt(2000),
		Deadline:     time.Now().AddDate(0, 1, 0),
	}
	s.Require().NoError(s.repo.Create(sooner))

	goals, err := s.repo.ListByUser(s.user.ID)
	s.Require().NoError(err)
	s.Require().Len(goals, 2)
	s.Equal("Exam Fees", goals[0].Name)
	s.Equal("Goa Trip", goals[1].Name)
}

func (s *GoalRepositoryTestSuite) TestListByUser_ScopedToOwner() {
	s.createGoal("New Laptop", 45000)
	stranger := database.CreateTestUser(s.T(), s.db, gofakeit.Email())

	goals, err := s.repo.ListByUser(stranger.ID)
	s.Require().NoError(err)
	s.Empty(goals)
}

func (s *GoalRepositoryTestSuite) TestAddFunds_AccumulatesInDatabase() {
	goal := s.createGoal("New Laptop", 45000)
	fundedAt := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	err := s.repo.AddFunds(goal.ID, s.user.ID, decimal.NewFromInt(100), fundedAt)
	s.Require().NoError(err)

	err = s.repo.AddFunds(goal.ID, s.user.ID, decimal.NewFromInt(200), fundedAt.Add(24*time.Hour))
	s.Require().NoError(err)

	found, err := s.repo.GetByID(goal.ID)
	s.Require().NoError(err)
	s.True(found.SavedAmount.Equal(decimal.NewFromInt(300)),
		"expected 300, got %s", found.SavedAmount)
	s.Require().NotNil(found.LastFundedDate)
	s.WithinDuration(fundedAt.Add(24*time.Hour), *found.LastFundedDate, time.Second)
}

func (s *GoalRepositoryTestSuite) TestAddFunds_UnknownGoal() {
	err := s.repo.AddFunds(uuid.New(), s.user.ID, decimal.NewFromInt(50), time.Now())
	s.ErrorIs(err, repositories.ErrGoalNotFound)
}

func (s *GoalRepositoryTestSuite) TestAddFunds_WrongOwner() {
	goal := s.createGoal("New Laptop", 45000)
	stranger := database.CreateTestUser(s.T(), s.db, gofakeit.Email())

	err := s.repo.AddFunds(goal.ID, stranger.ID, decimal.NewFromInt(50), time.Now())
	s.ErrorIs(err, repositories.ErrGoalNotFound)

	found, err := s.repo.GetByID(goal.ID)
	s.Require().NoError(err)
	s.True(found.SavedAmount.IsZero())
}

func (s *GoalRepositoryTestSuite) TestDelete() {
	goal := s.createGoal("New Laptop", 45000)

	s.Require().NoError(s.repo.Delete(goal.ID, s.user.ID))

	_, err := s.repo.GetByID(goal.ID)
	s.ErrorIs(err, repositories.ErrGoalNotFound)
}

func (s *GoalRepositoryTestSuite) TestDelete_WrongOwner() {
	goal := s.createGoal("New Laptop", 45000)
	stranger := database.CreateTestUser(s.T(), s.db, gofakeit.Email())

	err := s.repo.Delete(goal.ID, stranger.ID)
	s.ErrorIs(err, repositories.ErrGoalNotFound)
}
