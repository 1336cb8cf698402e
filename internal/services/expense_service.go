package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finu/internal/dto"
	"finu/internal/models"
	"finu/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseServiceInterface defines expense log operations
type ExpenseServiceInterface interface {
	LogExpense(userID uuid.UUID, req dto.CreateExpenseRequest) (*models.Expense, error)
	ListExpenses(userID uuid.UUID, limit, offset int) ([]models.Expense, int64, error)
}

// ExpenseService manages the append-only expense log
type ExpenseService struct {
	expenses repositories.ExpenseRepositoryInterface
	logger   *slog.Logger
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenses repositories.ExpenseRepositoryInterface, logger *slog.Logger) ExpenseServiceInterface {
	return &ExpenseService{
		expenses: expenses,
		logger:   logger,
	}
}

// LogExpense appends a new expense stamped with the current time
func (s *ExpenseService) LogExpense(userID uuid.UUID, req dto.CreateExpenseRequest) (*models.Expense, error) {
	expense := &models.Expense{
		UserID:      userID,
		Description: strings.TrimSpace(req.Description),
		Amount:      decimal.NewFromFloat(req.Amount),
		Category:    req.Category,
		Date:        time.Now().UTC(),
	}

	if err := s.expenses.Create(expense); err != nil {
		return nil, fmt.Errorf("failed to log expense: %w", err)
	}

	expensesCreatedTotal.Inc()
	s.logger.Info("expense logged",
		"user_id", userID,
		"category", expense.Category,
		"amount", expense.Amount)

	return expense, nil
}

// ListExpenses returns a page of the user's expenses, most recent
// first, together with the total count
func (s *ExpenseService) ListExpenses(userID uuid.UUID, limit, offset int) ([]models.Expense, int64, error) {
	expenses, err := s.expenses.ListByUser(userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.expenses.CountByUser(userID)
	if err != nil {
		return nil, 0, err
	}

	return expenses, total, nil
}
