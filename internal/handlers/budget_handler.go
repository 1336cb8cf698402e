package handlers

import (
	stderrors "errors"
	"net/http"

	"finu/internal/dto"
	"finu/internal/errors"
	"finu/internal/models"
	"finu/internal/services"

	"github.com/labstack/echo/v4"
)

// BudgetHandler handles budget endpoints
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
	}
}

// GetBudget returns the user's budget with derived spent figures
// @Summary Get budget
// @Description Budget totals plus per-category spend recomputed from the expense log
// @Tags Budget
// @Produce json
// @Success 200 {object} dto.BudgetResponse
// @Failure 401 {object} errors.ErrorResponse "Missing or invalid token - AUTH_002"
// @Security BearerAuth
// @Router /budget [get]
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budget, err := h.budgetService.GetBudget(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toBudgetResponse(budget))
}

// UpdateBudget replaces the budget total and category allocations
// @Summary Update budget
// @Tags Budget
// @Accept json
// @Produce json
// @Param request body dto.UpdateBudgetRequest true "New allocation"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001 or BUDGET_003"
// @Failure 401 {object} errors.ErrorResponse "Missing or invalid token - AUTH_002"
// @Security BearerAuth
// @Router /budget [put]
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	budget, err := h.budgetService.UpdateBudget(userID, req)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidCategory) {
			return SendError(c, errors.BudgetInvalidCategory)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toBudgetResponse(budget))
}

func toBudgetResponse(budget *models.Budget) dto.BudgetResponse {
	total, _ := budget.Total.Float64()
	spent, _ := budget.Spent.Float64()

	resp := dto.BudgetResponse{
		Total:           total,
		Spent:           spent,
		CategoryBudgets: make([]dto.CategoryBudgetResponse, 0, len(budget.CategoryBudgets)),
	}
	for _, cb := range budget.CategoryBudgets {
		cbTotal, _ := cb.Total.Float64()
		cbSpent, _ := cb.Spent.Float64()
		resp.CategoryBudgets = append(resp.CategoryBudgets, dto.CategoryBudgetResponse{
			Category: cb.Category,
			Total:    cbTotal,
			Spent:    cbSpent,
		})
	}

	return resp
}
