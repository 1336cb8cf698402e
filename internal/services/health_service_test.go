package services

import (
	"testing"
	"time"

	"finu/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type HealthServiceTestSuite struct {
	suite.Suite
	service HealthServiceInterface
	now     time.Time
}

func TestHealthServiceSuite(t *testing.T) {
	suite.Run(t, new(HealthServiceTestSuite))
}

func (s *HealthServiceTestSuite) SetupTest() {
	s.service = NewHealthService()
	s.now = time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)
}

func (s *HealthServiceTestSuite) goalFundedDaysAgo(saved float64, daysAgo int) models.Goal {
	funded := s.now.AddDate(0, 0, -daysAgo)
	return models.Goal{
		Name:           "Laptop",
		TargetAmount:   decimal.NewFromInt(50000),
		SavedAmount:    decimal.NewFromFloat(saved),
		Deadline:       s.now.AddDate(1, 0, 0),
		LastFundedDate: &funded,
	}
}

func (s *HealthServiceTestSuite) TestScore_ZeroIncome() {
	score := s.service.Score(decimal.Zero, decimal.NewFromInt(100), nil, s.now)
	s.Equal(0, score)
}

func (s *HealthServiceTestSuite) TestScore_NegativeIncome() {
	score := s.service.Score(decimal.NewFromInt(-100), decimal.Zero, nil, s.now)
	s.Equal(0, score)
}

func (s *HealthServiceTestSuite) TestScore_SpendingComponentBoundaries() {
	income := decimal.NewFromInt(10000)

	testCases := []struct {
		name     string
		spent    decimal.Decimal
		expected int
	}{
		// ratio <= 0.8 awards the full 50
		{"spending well under budget", decimal.NewFromInt(4000), 50},
		{"spending exactly 80 percent", decimal.NewFromInt(8000), 50},
		// linear decay between 80% and 100%
		{"spending 90 percent", decimal.NewFromInt(9000), 25},
		{"spending exactly income", decimal.NewFromInt(10000), 0},
		// over budget scores nothing
		{"spending above income", decimal.NewFromInt(12000), 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			score := s.service.Score(income, tc.spent, nil, s.now)
			s.Equal(tc.expected, score)
		})
	}
}

func (s *HealthServiceTestSuite) TestScore_SavingsRateCapsAt30() {
	income := decimal.NewFromInt(10000)
	spent := decimal.Zero

	// 15% of income saved maxes the component
	goals := []models.Goal{s.goalFundedDaysAgo(1500, 60)}
	score := s.service.Score(income, spent, goals, s.now)
	s.Equal(50+30, score)

	// Saving more than 15% does not push past the cap
	goals = []models.Goal{s.goalFundedDaysAgo(9000, 60)}
	score = s.service.Score(income, spent, goals, s.now)
	s.Equal(50+30, score)
}

func (s *HealthServiceTestSuite) TestScore_SavingsRatePartial() {
	income := decimal.NewFromInt(10000)

	// 7.5% saved is half the component: 15 points
	goals := []models.Goal{s.goalFundedDaysAgo(750, 60)}
	score := s.service.Score(income, decimal.Zero, goals, s.now)
	s.Equal(50+15, score)
}

func (s *HealthServiceTestSuite) TestScore_ConsistencyBoundaries() {
	income := decimal.NewFromInt(10000)
	spent := decimal.Zero

	testCases := []struct {
		name     string
		daysAgo  int
		expected int
	}{
		{"funded today", 0, 20},
		{"funded 7 days ago", 7, 20},
		{"funded 8 days ago", 8, 10},
		{"funded 30 days ago", 30, 10},
		{"funded 31 days ago", 31, 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// Tiny saved amount keeps the savings component negligible
			goals := []models.Goal{s.goalFundedDaysAgo(0.01, tc.daysAgo)}
			score := s.service.Score(income, spent, goals, s.now)
			s.Equal(50+tc.expected, score)
		})
	}
}

func (s *HealthServiceTestSuite) TestScore_NoGoals() {
	income := decimal.NewFromInt(10000)
	score := s.service.Score(income, decimal.NewFromInt(1000), nil, s.now)
	s.Equal(50, score)
}

func (s *HealthServiceTestSuite) TestScore_NeverFundedGoalScoresNoConsistency() {
	income := decimal.NewFromInt(10000)
	goals := []models.Goal{{
		Name:         "Trip",
		TargetAmount: decimal.NewFromInt(20000),
		SavedAmount:  decimal.Zero,
		Deadline:     s.now.AddDate(0, 6, 0),
	}}

	score := s.service.Score(income, decimal.Zero, goals, s.now)
	s.Equal(50, score)
}

func (s *HealthServiceTestSuite) TestScore_MostRecentFundingWins() {
	income := decimal.NewFromInt(10000)
	goals := []models.Goal{
		s.goalFundedDaysAgo(0.01, 90),
		s.goalFundedDaysAgo(0.01, 3),
	}

	score := s.service.Score(income, decimal.Zero, goals, s.now)
	s.Equal(50+20, score)
}
