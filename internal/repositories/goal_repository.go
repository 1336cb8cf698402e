package repositories

import (
	"errors"
	"fmt"
	"time"

	"finu/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGoalNotFound = errors.New("goal not found")

// GoalRepositoryInterface defines database operations for savings goals
type GoalRepositoryInterface interface {
	Create(goal *models.Goal) error
	GetByID(id uuid.UUID) (*models.Goal, error)
	ListByUser(userID uuid.UUID) ([]models.Goal, error)
	AddFunds(goalID, userID uuid.UUID, amount decimal.Decimal, fundedAt time.Time) error
	Delete(id, userID uuid.UUID) error
}

// GoalRepository handles database operations for savings goals
type GoalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *gorm.DB) GoalRepositoryInterface {
	return &GoalRepository{
		db: db,
	}
}

// Create creates a new savings goal
func (r *GoalRepository) Create(goal *models.Goal) error {
	if goal == nil {
		return errors.New("goal cannot be nil")
	}

	if err := r.db.Create(goal).Error; err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}

	return nil
}

// GetByID retrieves a goal by its ID
func (r *GoalRepository) GetByID(id uuid.UUID) (*models.Goal, error) {
	var goal models.Goal

	if err := r.db.Where("id = ?", id).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}

	return &goal, nil
}

// ListByUser retrieves a user's goals ordered by nearest deadline first
func (r *GoalRepository) ListByUser(userID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal

	if err := r.db.Where("user_id = ?", userID).
		Order("deadline ASC").
		Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	return goals, nil
}

// AddFunds atomically increments a goal's saved amount and stamps the
// funding time. The increment happens in the database so concurrent
// contributions to the same goal never lose updates.
func (r *GoalRepository) AddFunds(goalID, userID uuid.UUID, amount decimal.Decimal, fundedAt time.Time) error {
	result := r.db.Model(&models.Goal{}).
		Where("id = ? AND user_id = ?", goalID, userID).
		Updates(map[string]interface{}{
			"saved_amount":     gorm.Expr("saved_amount + ?", amount),
			"last_funded_date": fundedAt,
			"updated_at":       time.Now().UTC(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to add funds to goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// Delete removes a goal owned by the given user
func (r *GoalRepository) Delete(id, userID uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Goal{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}
