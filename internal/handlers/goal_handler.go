package handlers

import (
	stderrors "errors"
	"net/http"

	"finu/internal/dto"
	"finu/internal/errors"
	"finu/internal/models"
	"finu/internal/repositories"
	"finu/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GoalHandler handles savings goal endpoints
type GoalHandler struct {
	goalService services.GoalServiceInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService services.GoalServiceInterface) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// CreateGoal creates a new savings goal
// @Summary Create a savings goal
// @Tags Goals
// @Accept json
// @Produce json
// @Param request body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001 or GOAL_002"
// @Failure 401 {object} errors.ErrorResponse "Missing or invalid token - AUTH_002"
// @Security BearerAuth
// @Router /goals [post]
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	goal, err := h.goalService.CreateGoal(userID, req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, toGoalResponse(goal))
}

// ListGoals returns the user's goals, nearest deadline first
// @Summary List savings goals
// @Tags Goals
// @Produce json
// @Success 200 {object} dto.ListGoalsResponse
// @Failure 401 {object} errors.ErrorResponse "Missing or invalid token - AUTH_002"
// @Security BearerAuth
// @Router /goals [get]
func (h *GoalHandler) ListGoals(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goals, err := h.goalService.ListGoals(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	resp := dto.ListGoalsResponse{
		Goals: make([]dto.GoalResponse, 0, len(goals)),
	}
	for i := range goals {
		resp.Goals = append(resp.Goals, toGoalResponse(&goals[i]))
	}

	return c.JSON(http.StatusOK, resp)
}

// AddFunds contributes money to a goal
// @Summary Add funds to a goal
// @Description Atomically increment the goal's saved amount and stamp the funding date
// @Tags Goals
// @Accept json
// @Produce json
// @Param goalId path string true "Goal ID"
// @Param request body dto.AddFundsRequest true "Amount to add"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001 or GOAL_004"
// @Failure 401 {object} errors.ErrorResponse "Missing or invalid token - AUTH_002"
// @Failure 404 {object} errors.ErrorResponse "Goal not found - GOAL_001"
// @Security BearerAuth
// @Router /goals/{goalId}/funds [post]
func (h *GoalHandler) AddFunds(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := uuid.Parse(c.Param("goalId"))
	if err != nil {
		return SendError(c, errors.GoalInvalidID)
	}

	var req dto.AddFundsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	goal, err := h.goalService.AddFunds(userID, goalID, req)
	if err != nil {
		if stderrors.Is(err, repositories.ErrGoalNotFound) {
			return SendError(c, errors.GoalNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toGoalResponse(goal))
}

// DeleteGoal removes a goal
// @Summary Delete a savings goal
// @Tags Goals
// @Param goalId path string true "Goal ID"
// @Success 204 "Deleted"
// @Failure 401 {object} errors.ErrorResponse "Missing or invalid token - AUTH_002"
// @Failure 404 {object} errors.ErrorResponse "Goal not found - GOAL_001"
// @Security BearerAuth
// @Router /goals/{goalId} [delete]
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := uuid.Parse(c.Param("goalId"))
	if err != nil {
		return SendError(c, errors.GoalInvalidID)
	}

	if err := h.goalService.DeleteGoal(userID, goalID); err != nil {
		if stderrors.Is(err, repositories.ErrGoalNotFound) {
			return SendError(c, errors.GoalNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toGoalResponse(goal *models.Goal) dto.GoalResponse {
	target, _ := goal.TargetAmount.Float64()
	saved, _ := goal.SavedAmount.Float64()

	return dto.GoalResponse{
		ID:             goal.ID.String(),
		Name:           goal.Name,
		TargetAmount:   target,
		SavedAmount:    saved,
		Deadline:       goal.Deadline,
		Icon:           goal.Icon,
		Color:          goal.Color,
		LastFundedDate: goal.LastFundedDate,
	}
}
