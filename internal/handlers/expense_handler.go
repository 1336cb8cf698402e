package handlers

import (
	"net/http"

	"finu/internal/dto"
	"finu/internal/errors"
	"finu/internal/models"
	"finu/internal/services"

	"github.com/labstack/echo/v4"
)

// ExpenseHandler handles expense log endpoints
type ExpenseHandler struct {
	expenseService services.ExpenseServiceInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService services.ExpenseServiceInterface) *ExpenseHandler {
	return &ExpenseHandler{
		expenseService: expenseService,
	}
}

// CreateExpense logs a new expense
// @Summary Log an expense
// @Description Append a spending record; the server stamps the date
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001 or EXPENSE_003"
// @Failure 401 {object} errors.ErrorResponse "Missing or invalid token - AUTH_002"
// @Security BearerAuth
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if !models.IsValidCategory(req.Category) {
		return SendError(c, errors.ExpenseInvalidCategory, errors.WithDetails(req.Category))
	}

	expense, err := h.expenseService.LogExpense(userID, req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, toExpenseResponse(expense))
}

// ListExpenses returns the user's expense log, most recent first
// @Summary List expenses
// @Tags Expenses
// @Produce json
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset"
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 401 {object} errors.ErrorResponse "Missing or invalid token - AUTH_002"
// @Security BearerAuth
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	limit := getIntParam(c, "limit", 50)
	offset := getIntParam(c, "offset", 0)

	expenses, total, err := h.expenseService.ListExpenses(userID, limit, offset)
	if err != nil {
		return SendSystemError(c, err)
	}

	resp := dto.ListExpensesResponse{
		Expenses: make([]dto.ExpenseResponse, 0, len(expenses)),
		Total:    total,
	}
	for i := range expenses {
		resp.Expenses = append(resp.Expenses, toExpenseResponse(&expenses[i]))
	}

	return c.JSON(http.StatusOK, resp)
}

func toExpenseResponse(expense *models.Expense) dto.ExpenseResponse {
	amount, _ := expense.Amount.Float64()
	return dto.ExpenseResponse{
		ID:          expense.ID.String(),
		Description: expense.Description,
		Amount:      amount,
		Category:    expense.Category,
		Date:        expense.Date,
	}
}
