package services

import (
	"fmt"
	"time"

	"finu/internal/models"

	"github.com/shopspring/decimal"
)

// LedgerServiceInterface derives spending figures from the raw expense log.
// All methods are pure computations over data the caller already loaded.
type LedgerServiceInterface interface {
	Aggregate(budget *models.Budget, expenses []models.Expense) *models.Budget
	TotalSpent(expenses []models.Expense) decimal.Decimal
	WeeklySpend(expenses []models.Expense, now time.Time) decimal.Decimal
	AvgDailySpend(expenses []models.Expense) decimal.Decimal
	MostSpentCategory(expenses []models.Expense) string
	HighestSpendingDay(expenses []models.Expense) string
}

// LedgerService computes spent totals from expenses. Spent figures are
// never stored; they are recomputed on every read so the expense log
// stays the single source of truth.
type LedgerService struct{}

// NewLedgerService creates a new ledger service
func NewLedgerService() LedgerServiceInterface {
	return &LedgerService{}
}

// Aggregate fills in the budget's Spent fields from the expense log.
// The overall Spent covers every expense, including categories with no
// allocation; each category row only sums its own category.
func (s *LedgerService) Aggregate(budget *models.Budget, expenses []models.Expense) *models.Budget {
	if budget == nil {
		return nil
	}

	byCategory := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
	}

	budget.Spent = total
	for i := range budget.CategoryBudgets {
		budget.CategoryBudgets[i].Spent = byCategory[budget.CategoryBudgets[i].Category]
	}

	return budget
}

// TotalSpent sums all expense amounts
func (s *LedgerService) TotalSpent(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// WeeklySpend sums expenses dated from the start of the current week
// (Sunday) up to now
func (s *LedgerService) WeeklySpend(expenses []models.Expense, now time.Time) decimal.Decimal {
	weekStart := startOfWeek(now)

	total := decimal.Zero
	for _, e := range expenses {
		if !e.Date.Before(weekStart) && !e.Date.After(now) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// AvgDailySpend divides the total spend by the number of distinct days
// with at least one expense
func (s *LedgerService) AvgDailySpend(expenses []models.Expense) decimal.Decimal {
	if len(expenses) == 0 {
		return decimal.Zero
	}

	days := make(map[string]struct{})
	total := decimal.Zero
	for _, e := range expenses {
		days[e.Date.Format("2006-01-02")] = struct{}{}
		total = total.Add(e.Amount)
	}

	return total.Div(decimal.NewFromInt(int64(len(days)))).Round(2)
}

// MostSpentCategory returns the category with the largest summed spend,
// or "N/A" when there are no expenses
func (s *LedgerService) MostSpentCategory(expenses []models.Expense) string {
	if len(expenses) == 0 {
		return "N/A"
	}

	byCategory := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
	}

	best := ""
	bestAmount := decimal.Zero
	for category, amount := range byCategory {
		if best == "" || amount.GreaterThan(bestAmount) {
			best = category
			bestAmount = amount
		}
	}
	return best
}

// HighestSpendingDay returns the calendar day with the largest total
// spend, formatted like "January 2nd", or "N/A" when there are no
// expenses
func (s *LedgerService) HighestSpendingDay(expenses []models.Expense) string {
	if len(expenses) == 0 {
		return "N/A"
	}

	byDay := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		byDay[e.Date.Format("2006-01-02")] = byDay[e.Date.Format("2006-01-02")].Add(e.Amount)
	}

	best := ""
	bestAmount := decimal.Zero
	for day, amount := range byDay {
		if best == "" || amount.GreaterThan(bestAmount) {
			best = day
			bestAmount = amount
		}
	}

	t, err := time.Parse("2006-01-02", best)
	if err != nil {
		return "N/A"
	}
	return fmt.Sprintf("%s %s", t.Month().String(), ordinal(t.Day()))
}

func startOfWeek(t time.Time) time.Time {
	daysBack := int(t.Weekday())
	day := t.AddDate(0, 0, -daysBack)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}

func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
