package services

import (
	"math"
	"time"

	"finu/internal/models"

	"github.com/shopspring/decimal"
)

// HealthServiceInterface computes the financial health score
type HealthServiceInterface interface {
	Score(income, spent decimal.Decimal, goals []models.Goal, now time.Time) int
}

// HealthService scores a student's finances from 0 to 100:
// up to 50 points for spending discipline, 30 for savings rate and 20
// for recent goal funding.
type HealthService struct{}

// NewHealthService creates a new health service
func NewHealthService() HealthServiceInterface {
	return &HealthService{}
}

// Score computes the health score. Income is the budget total; a zero
// or negative income scores 0 outright since the ratios below lose
// meaning.
func (s *HealthService) Score(income, spent decimal.Decimal, goals []models.Goal, now time.Time) int {
	if !income.IsPositive() {
		return 0
	}

	incomeF, _ := income.Float64()
	spentF, _ := spent.Float64()

	score := spendingScore(spentF/incomeF) +
		savingsScore(totalSaved(goals), incomeF) +
		consistencyScore(goals, now)

	return int(math.Round(score))
}

// spendingScore awards the full 50 points while spending stays within
// 80% of income, decays linearly to 0 between 80% and 100%, and is 0
// once spending exceeds income.
func spendingScore(ratio float64) float64 {
	switch {
	case ratio <= 0.8:
		return 50
	case ratio <= 1.0:
		return (1 - (ratio-0.8)/0.2) * 50
	default:
		return 0
	}
}

// savingsScore awards up to 30 points, maxing out when total saved
// reaches 15% of income.
func savingsScore(saved, income float64) float64 {
	rate := saved / income
	return math.Min(rate/0.15*30, 30)
}

// consistencyScore awards 20 points when any goal was funded within the
// last 7 days, 10 within 30 days, otherwise 0.
func consistencyScore(goals []models.Goal, now time.Time) float64 {
	var lastFunded *time.Time
	for i := range goals {
		if goals[i].LastFundedDate == nil {
			continue
		}
		if lastFunded == nil || goals[i].LastFundedDate.After(*lastFunded) {
			lastFunded = goals[i].LastFundedDate
		}
	}

	if lastFunded == nil {
		return 0
	}

	days := now.Sub(*lastFunded).Hours() / 24
	switch {
	case days <= 7:
		return 20
	case days <= 30:
		return 10
	default:
		return 0
	}
}

func totalSaved(goals []models.Goal) float64 {
	total := decimal.Zero
	for i := range goals {
		total = total.Add(goals[i].SavedAmount)
	}
	f, _ := total.Float64()
	return f
}
