package services

import (
	"errors"
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

var ErrGoalNotOwned = errors.New("goal does not belong to user")

// GoalServiceInterface defines savings goal operations
type GoalServiceInterface interface {
	CreateGoal(userID uuid.UUID, req dto.CreateGoalRequest) (*models.Goal, error)
	ListGoals(userID uuid.UUID) ([]models.Goal, error)
	AddFunds(userID, goalID uuid.UUID, req dto.AddFundsRequest) (*models.Goal, error)
	DeleteGoal(userID, goalID uuid.UUID) error
}

// GoalService manages savings goals and their funding
type GoalService struct {
	goals  repositories.GoalRepositoryInterface
	logger *slog.Logger
}

// NewGoalService creates a new goal service
func NewGoalService(goals repositories.GoalRepositoryInterface, logger *slog.Logger) GoalServiceInterface {
	return &GoalService{
		goals:  goals,
		logger: logger,
	}
}

// CreateGoal creates a new savings goal
func (s *GoalService) CreateGoal(userID uuid.UUID, req dto.CreateGoalRequest) (*models.Goal, error) {
	goal := &models.Goal{
		UserID:       userID,
		Name:         strings.TrimSpace(req.Name),
		TargetAmount: decimal.NewFromFloat(req.TargetAmount),
		SavedAmount:  decimal.NewFromFloat(req.SavedAmount),
		Deadline:     req.Deadline,
		Icon:         req.Icon,
		Color:        req.Color,
	}
	if goal.Color == "" {
		goal.Color = models.GoalColorChart1
	}

	if err := s.goals.Create(goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	s.logger.Info("goal created", "user_id", userID, "goal_id", goal.ID, "name", goal.Name)
	return goal, nil
}

// ListGoals returns the user's goals ordered by nearest deadline
func (s *GoalService) ListGoals(userID uuid.UUID) ([]models.Goal, error) {
	return s.goals.ListByUser(userID)
}

// AddFunds increments a goal's saved amount atomically and stamps the
// funding time, then returns the updated goal
func (s *GoalService) AddFunds(userID, goalID uuid.UUID, req dto.AddFundsRequest) (*models.Goal, error) {
	amount := decimal.NewFromFloat(req.Amount)

	if err := s.goals.AddFunds(goalID, userID, amount, time.Now().UTC()); err != nil {
		return nil, err
	}

	goal, err := s.goals.GetByID(goalID)
	if err != nil {
		return nil, err
	}

	goalFundingTotal.Inc()
	s.logger.Info("goal funded",
		"user_id", userID,
		"goal_id", goalID,
		"amount", amount,
		"saved_amount", goal.SavedAmount)

	return goal, nil
}

// DeleteGoal removes a goal owned by the user
func (s *GoalService) DeleteGoal(userID, goalID uuid.UUID) error {
	if err := s.goals.Delete(goalID, userID); err != nil {
		return err
	}

	s.logger.Info("goal deleted", "user_id", userID, "goal_id", goalID)
	return nil
}
