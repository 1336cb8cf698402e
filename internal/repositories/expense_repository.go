package repositories

import (
	"errors"
	"fmt"
	"time"

	"finu/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrExpenseNotFound = errors.New("expense not found")

// ExpenseRepositoryInterface defines database operations for expenses
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	GetByID(id uuid.UUID) (*models.Expense, error)
	ListByUser(userID uuid.UUID, limit, offset int) ([]models.Expense, error)
	ListByUserSince(userID uuid.UUID, since time.Time) ([]models.Expense, error)
	CountByUser(userID uuid.UUID) (int64, error)
}

// ExpenseRepository handles database operations for expenses
type ExpenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &ExpenseRepository{
		db: db,
	}
}

// Create appends a new expense to the user's log. Expenses are never
// updated after creation.
func (r *ExpenseRepository) Create(expense *models.Expense) error {
	if expense == nil {
		return errors.New("expense cannot be nil")
	}

	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

// GetByID retrieves an expense by its ID
func (r *ExpenseRepository) GetByID(id uuid.UUID) (*models.Expense, error) {
	var expense models.Expense

	if err := r.db.Where("id = ?", id).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return &expense, nil
}

// ListByUser retrieves a user's expenses ordered most recent first
func (r *ExpenseRepository) ListByUser(userID uuid.UUID, limit, offset int) ([]models.Expense, error) {
	var expenses []models.Expense

	query := r.db.Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return expenses, nil
}

// ListByUserSince retrieves a user's expenses dated on or after the given time
func (r *ExpenseRepository) ListByUserSince(userID uuid.UUID, since time.Time) ([]models.Expense, error) {
	var expenses []models.Expense

	if err := r.db.Where("user_id = ? AND date >= ?", userID, since).
		Order("created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to list expenses since %s: %w", since.Format(time.RFC3339), err)
	}

	return expenses, nil
}

// CountByUser returns the total number of expenses logged by a user
func (r *ExpenseRepository) CountByUser(userID uuid.UUID) (int64, error) {
	var count int64

	if err := r.db.Model(&models.Expense{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	return count, nil
}
