package services

import (
	"errors"
	"fmt"
	"log/slog"

	"finu/internal/dto"
	"finu/internal/models"
	"finu/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidCategory = errors.New("invalid expense category")

// BudgetServiceInterface defines budget operations
type BudgetServiceInterface interface {
	GetBudget(userID uuid.UUID) (*models.Budget, error)
	UpdateBudget(userID uuid.UUID, req dto.UpdateBudgetRequest) (*models.Budget, error)
}

// BudgetService manages the monthly budget and its derived spent figures
type BudgetService struct {
	budgets  repositories.BudgetRepositoryInterface
	expenses repositories.ExpenseRepositoryInterface
	ledger   LedgerServiceInterface
	logger   *slog.Logger
}

// NewBudgetService creates a new budget service
func NewBudgetService(
	budgets repositories.BudgetRepositoryInterface,
	expenses repositories.ExpenseRepositoryInterface,
	ledger LedgerServiceInterface,
	logger *slog.Logger,
) BudgetServiceInterface {
	return &BudgetService{
		budgets:  budgets,
		expenses: expenses,
		ledger:   ledger,
		logger:   logger,
	}
}

// GetBudget loads the user's budget with spent figures recomputed from
// the expense log. A user without a budget gets the starter allocation
// created on first read.
func (s *BudgetService) GetBudget(userID uuid.UUID) (*models.Budget, error) {
	budget, err := s.budgets.GetByUserID(userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrBudgetNotFound) {
			return nil, err
		}

		starter := models.DefaultBudget()
		starter.UserID = userID
		if err := s.budgets.Create(&starter); err != nil {
			return nil, fmt.Errorf("failed to create starter budget: %w", err)
		}
		s.logger.Info("starter budget created", "user_id", userID)
		budget = &starter
	}

	expenses, err := s.expenses.ListByUser(userID, 0, 0)
	if err != nil {
		return nil, err
	}

	return s.ledger.Aggregate(budget, expenses), nil
}

// UpdateBudget replaces the total and category allocations, then
// returns the budget with fresh spent figures
func (s *BudgetService) UpdateBudget(userID uuid.UUID, req dto.UpdateBudgetRequest) (*models.Budget, error) {
	replacement := &models.Budget{
		Total: decimal.NewFromFloat(req.Total),
	}
	for _, alloc := range req.CategoryBudgets {
		if !models.IsValidCategory(alloc.Category) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, alloc.Category)
		}
		replacement.CategoryBudgets = append(replacement.CategoryBudgets, models.CategoryBudget{
			Category: alloc.Category,
			Total:    decimal.NewFromFloat(alloc.Total),
		})
	}

	if err := s.budgets.Replace(userID, replacement); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			// First write for a user who never loaded the dashboard
			replacement.UserID = userID
			if createErr := s.budgets.Create(replacement); createErr != nil {
				return nil, createErr
			}
		} else {
			return nil, err
		}
	}

	s.logger.Info("budget updated", "user_id", userID, "total", req.Total)
	return s.GetBudget(userID)
}
