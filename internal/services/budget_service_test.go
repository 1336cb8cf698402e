package services

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"finu/internal/database"
	"finu/internal/dto"
	"finu/internal/models"
	"finu/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	db       *database.DB
	expenses repositories.ExpenseRepositoryInterface
	budgets  repositories.BudgetRepositoryInterface
	service  BudgetServiceInterface
	user     *models.User
}

func TestBudgetServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}

func (s *BudgetServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.expenses = repositories.NewExpenseRepository(s.db.DB)
	s.budgets = repositories.NewBudgetRepository(s.db.DB)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service = NewBudgetService(s.budgets, s.expenses, NewLedgerService(), logger)

	s.user = database.CreateTestUser(s.T(), s.db, "rohit@college.edu")
}

func (s *BudgetServiceTestSuite) logExpense(category string, amount int64) {
	expense := &models.Expense{
		UserID:      s.user.ID,
		Description: "test spend",
		Amount:      decimal.NewFromInt(amount),
		Category:    category,
		Date:        time.Now().UTC(),
	}
	s.Require().NoError(s.expenses.Create(expense))
}

func (s *BudgetServiceTestSuite) TestGetBudget_CreatesStarterOnFirstRead() {
	budget, err := s.service.GetBudget(s.user.ID)

	s.Require().NoError(err)
	s.Equal("15000", budget.Total.String())
	s.Len(budget.CategoryBudgets, 10)
	s.True(budget.Spent.IsZero())

	// Second read returns the persisted budget, not another starter
	again, err := s.service.GetBudget(s.user.ID)
	s.Require().NoError(err)
	s.Equal(budget.ID, again.ID)
}

func (s *BudgetServiceTestSuite) TestGetBudget_FillsSpentFigures() {
	s.logExpense(models.CategoryMess, 1200)
	s.logExpense(models.CategoryMess, 300)
	s.logExpense(models.CategoryTravel, 250)

	budget, err := s.service.GetBudget(s.user.ID)

	s.Require().NoError(err)
	s.Equal("1750", budget.Spent.String())

	byCategory := map[string]decimal.Decimal{}
	for _, cb := range budget.CategoryBudgets {
		byCategory[cb.Category] = cb.Spent
	}
	s.True(byCategory[models.CategoryMess].Equal(decimal.NewFromInt(1500)))
	s.True(byCategory[models.CategoryTravel].Equal(decimal.NewFromInt(250)))
	s.True(byCategory[models.CategoryCanteen].IsZero())
}

func (s *BudgetServiceTestSuite) TestUpdateBudget_ReplacesAllocations() {
	_, err := s.service.GetBudget(s.user.ID)
	s.Require().NoError(err)

	updated, err := s.service.UpdateBudget(s.user.ID, dto.UpdateBudgetRequest{
		Total: 12000,
		CategoryBudgets: []dto.CategoryAllocation{
			{Category: models.CategoryMess, Total: 3500},
			{Category: models.CategoryRecharge, Total: 400},
		},
	})

	s.Require().NoError(err)
	s.Equal("12000", updated.Total.String())
	s.Len(updated.CategoryBudgets, 2)
}

func (s *BudgetServiceTestSuite) TestUpdateBudget_WithoutPriorBudget() {
	updated, err := s.service.UpdateBudget(s.user.ID, dto.UpdateBudgetRequest{
		Total: 9000,
		CategoryBudgets: []dto.CategoryAllocation{
			{Category: models.CategoryMess, Total: 4000},
		},
	})

	s.Require().NoError(err)
	s.Equal("9000", updated.Total.String())
	s.Len(updated.CategoryBudgets, 1)
}

func (s *BudgetServiceTestSuite) TestUpdateBudget_RejectsUnknownCategory() {
	_, err := s.service.UpdateBudget(s.user.ID, dto.UpdateBudgetRequest{
		Total: 9000,
		CategoryBudgets: []dto.CategoryAllocation{
			{Category: "Gambling", Total: 4000},
		},
	})

	s.ErrorIs(err, ErrInvalidCategory)
}
