package repositories

import (
	"errors"
	"fmt"

	"finu/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrBudgetNotFound = errors.New("budget not found")

// BudgetRepositoryInterface defines database operations for budgets
type BudgetRepositoryInterface interface {
	Create(budget *models.Budget) error
	GetByUserID(userID uuid.UUID) (*models.Budget, error)
	Replace(userID uuid.UUID, budget *models.Budget) error
}

// BudgetRepository handles database operations for budgets and their
// category allocations
type BudgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &BudgetRepository{
		db: db,
	}
}

// Create creates a budget with its category allocations
func (r *BudgetRepository) Create(budget *models.Budget) error {
	if budget == nil {
		return errors.New("budget cannot be nil")
	}

	if err := r.db.Create(budget).Error; err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("budget already exists for user: %w", err)
		}
		return fmt.Errorf("failed to create budget: %w", err)
	}

	return nil
}

// GetByUserID retrieves a user's budget with its category allocations
func (r *BudgetRepository) GetByUserID(userID uuid.UUID) (*models.Budget, error) {
	var budget models.Budget

	if err := r.db.Preload("CategoryBudgets").
		Where("user_id = ?", userID).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	return &budget, nil
}

// Replace updates a user's budget total and swaps its category
// allocations for the provided set in a single transaction.
func (r *BudgetRepository) Replace(userID uuid.UUID, budget *models.Budget) error {
	if budget == nil {
		return errors.New("budget cannot be nil")
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Budget
		if err := tx.Where("user_id = ?", userID).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBudgetNotFound
			}
			return fmt.Errorf("failed to load budget: %w", err)
		}

		if err := tx.Model(&existing).Update("total", budget.Total).Error; err != nil {
			return fmt.Errorf("failed to update budget total: %w", err)
		}

		if err := tx.Where("budget_id = ?", existing.ID).
			Delete(&models.CategoryBudget{}).Error; err != nil {
			return fmt.Errorf("failed to clear category budgets: %w", err)
		}

		for i := range budget.CategoryBudgets {
			budget.CategoryBudgets[i].ID = uuid.Nil
			budget.CategoryBudgets[i].BudgetID = existing.ID
		}
		if len(budget.CategoryBudgets) > 0 {
			if err := tx.Create(&budget.CategoryBudgets).Error; err != nil {
				return fmt.Errorf("failed to create category budgets: %w", err)
			}
		}

		return nil
	})
}
