package services

import (
	"errors"
	"time"

	"finu/internal/dto"
	"finu/internal/repositories"

	"github.com/google/uuid"
)

// AnalyticsServiceInterface builds the dashboard summary
type AnalyticsServiceInterface interface {
	Summary(userID uuid.UUID) (*dto.AnalyticsSummaryResponse, error)
}

// AnalyticsService combines the expense log, budget and goals into the
// derived dashboard figures
type AnalyticsService struct {
	expenses repositories.ExpenseRepositoryInterface
	budgets  repositories.BudgetRepositoryInterface
	goals    repositories.GoalRepositoryInterface
	ledger   LedgerServiceInterface
	health   HealthServiceInterface
	now      func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	expenses repositories.ExpenseRepositoryInterface,
	budgets repositories.BudgetRepositoryInterface,
	goals repositories.GoalRepositoryInterface,
	ledger LedgerServiceInterface,
	health HealthServiceInterface,
) AnalyticsServiceInterface {
	return &AnalyticsService{
		expenses: expenses,
		budgets:  budgets,
		goals:    goals,
		ledger:   ledger,
		health:   health,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Summary computes the analytics figures for a user's dashboard
func (s *AnalyticsService) Summary(userID uuid.UUID) (*dto.AnalyticsSummaryResponse, error) {
	expenses, err := s.expenses.ListByUser(userID, 0, 0)
	if err != nil {
		return nil, err
	}

	goals, err := s.goals.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	summary := &dto.AnalyticsSummaryResponse{
		MostSpentCategory:  s.ledger.MostSpentCategory(expenses),
		HighestSpendingDay: s.ledger.HighestSpendingDay(expenses),
		ActiveGoals:        len(goals),
	}
	summary.WeeklySpend, _ = s.ledger.WeeklySpend(expenses, now).Float64()
	summary.AvgDailySpend, _ = s.ledger.AvgDailySpend(expenses).Float64()

	// A user without a budget scores 0; the starter budget only exists
	// once the dashboard has been loaded
	budget, err := s.budgets.GetByUserID(userID)
	if err == nil {
		summary.HealthScore = s.health.Score(budget.Total, s.ledger.TotalSpent(expenses), goals, now)
	} else if !errors.Is(err, repositories.ErrBudgetNotFound) {
		return nil, err
	}

	return summary, nil
}
