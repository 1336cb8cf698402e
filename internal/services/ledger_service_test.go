package services

import (
	"testing"
	"time"

	"finu/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	service LedgerServiceInterface
}

func TestLedgerServiceSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.service = NewLedgerService()
}

func expense(category string, amount float64, date time.Time) models.Expense {
	return models.Expense{
		Description: category + " purchase",
		Amount:      decimal.NewFromFloat(amount),
		Category:    category,
		Date:        date,
	}
}

func (s *LedgerServiceTestSuite) TestAggregate_SpentPerCategory() {
	now := time.Now()
	budget := &models.Budget{
		Total: decimal.NewFromInt(1000),
		CategoryBudgets: []models.CategoryBudget{
			{Category: models.CategoryFood, Total: decimal.NewFromInt(300)},
			{Category: models.CategoryTransport, Total: decimal.NewFromInt(100)},
		},
	}
	expenses := []models.Expense{
		expense(models.CategoryFood, 100, now),
		expense(models.CategoryFood, 50, now),
		expense(models.CategoryTransport, 30, now),
	}

	result := s.service.Aggregate(budget, expenses)

	s.True(result.Spent.Equal(decimal.NewFromInt(180)), "total spent should be 180, got %s", result.Spent)
	s.True(result.CategoryBudgets[0].Spent.Equal(decimal.NewFromInt(150)))
	s.True(result.CategoryBudgets[1].Spent.Equal(decimal.NewFromInt(30)))
}

func (s *LedgerServiceTestSuite) TestAggregate_UnallocatedCategoryCountsInTotal() {
	now := time.Now()
	budget := &models.Budget{
		Total: decimal.NewFromInt(1000),
		CategoryBudgets: []models.CategoryBudget{
			{Category: models.CategoryFood, Total: decimal.NewFromInt(300)},
		},
	}
	// Entertainment has no allocation row; it still counts toward the
	// overall spent figure
	expenses := []models.Expense{
		expense(models.CategoryFood, 100, now),
		expense(models.CategoryEntertainment, 75, now),
	}

	result := s.service.Aggregate(budget, expenses)

	s.True(result.Spent.Equal(decimal.NewFromInt(175)))
	s.Len(result.CategoryBudgets, 1)
	s.True(result.CategoryBudgets[0].Spent.Equal(decimal.NewFromInt(100)))
}

func (s *LedgerServiceTestSuite) TestAggregate_NoExpenses() {
	budget := &models.Budget{
		Total: decimal.NewFromInt(500),
		CategoryBudgets: []models.CategoryBudget{
			{Category: models.CategoryFood, Total: decimal.NewFromInt(200)},
		},
	}

	result := s.service.Aggregate(budget, nil)

	s.True(result.Spent.IsZero())
	s.True(result.CategoryBudgets[0].Spent.IsZero())
}

func (s *LedgerServiceTestSuite) TestWeeklySpend_OnlyCurrentWeek() {
	// Wednesday
	now := time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)
	expenses := []models.Expense{
		expense(models.CategoryFood, 40, time.Date(2024, 7, 8, 9, 0, 0, 0, time.UTC)),   // Monday this week
		expense(models.CategoryFood, 60, time.Date(2024, 7, 7, 9, 0, 0, 0, time.UTC)),   // Sunday, week start
		expense(models.CategoryFood, 100, time.Date(2024, 7, 5, 9, 0, 0, 0, time.UTC)),  // previous week
		expense(models.CategoryFood, 999, time.Date(2024, 7, 11, 9, 0, 0, 0, time.UTC)), // future
	}

	weekly := s.service.WeeklySpend(expenses, now)

	s.True(weekly.Equal(decimal.NewFromInt(100)), "expected 100, got %s", weekly)
}

func (s *LedgerServiceTestSuite) TestAvgDailySpend_DistinctDays() {
	expenses := []models.Expense{
		expense(models.CategoryFood, 100, time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)),
		expense(models.CategoryFood, 50, time.Date(2024, 7, 1, 18, 0, 0, 0, time.UTC)),
		expense(models.CategoryTravel, 30, time.Date(2024, 7, 3, 9, 0, 0, 0, time.UTC)),
	}

	// 180 over 2 distinct days
	avg := s.service.AvgDailySpend(expenses)
	s.True(avg.Equal(decimal.NewFromInt(90)), "expected 90, got %s", avg)
}

func (s *LedgerServiceTestSuite) TestAvgDailySpend_Empty() {
	s.True(s.service.AvgDailySpend(nil).IsZero())
}

func (s *LedgerServiceTestSuite) TestMostSpentCategory() {
	now := time.Now()
	expenses := []models.Expense{
		expense(models.CategoryFood, 100, now),
		expense(models.CategoryTravel, 150, now),
		expense(models.CategoryFood, 40, now),
	}

	s.Equal(models.CategoryTravel, s.service.MostSpentCategory(expenses))
}

func (s *LedgerServiceTestSuite) TestMostSpentCategory_Empty() {
	s.Equal("N/A", s.service.MostSpentCategory(nil))
}

func (s *LedgerServiceTestSuite) TestHighestSpendingDay_OrdinalFormat() {
	expenses := []models.Expense{
		expense(models.CategoryFood, 500, time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)),
		expense(models.CategoryFood, 10, time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)),
	}

	s.Equal("January 2nd", s.service.HighestSpendingDay(expenses))
}

func (s *LedgerServiceTestSuite) TestHighestSpendingDay_TeenOrdinals() {
	testCases := []struct {
		day      int
		expected string
	}{
		{1, "March 1st"},
		{11, "March 11th"},
		{12, "March 12th"},
		{13, "March 13th"},
		{21, "March 21st"},
		{22, "March 22nd"},
		{23, "March 23rd"},
		{30, "March 30th"},
	}

	for _, tc := range testCases {
		expenses := []models.Expense{
			expense(models.CategoryFood, 100, time.Date(2024, 3, tc.day, 10, 0, 0, 0, time.UTC)),
		}
		s.Equal(tc.expected, s.service.HighestSpendingDay(expenses))
	}
}

func (s *LedgerServiceTestSuite) TestHighestSpendingDay_Empty() {
	s.Equal("N/A", s.service.HighestSpendingDay(nil))
}
