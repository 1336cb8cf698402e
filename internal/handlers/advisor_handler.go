package handlers

import (
	stderrors "errors"
	"net/http"

	"finu/internal/dto"
	"finu/internal/services"

	"github.com/labstack/echo/v4"
)

// AdvisorHandler handles the two AI endpoints. Their wire shapes are
// fixed by the web client: a bare {response} or {suggestions} object on
// success and {error} with status 500 on generation failure.
type AdvisorHandler struct {
	advisorService    services.AdvisorServiceInterface
	suggestionService services.SuggestionServiceInterface
}

// NewAdvisorHandler creates a new advisor handler
func NewAdvisorHandler(
	advisorService services.AdvisorServiceInterface,
	suggestionService services.SuggestionServiceInterface,
) *AdvisorHandler {
	return &AdvisorHandler{
		advisorService:    advisorService,
		suggestionService: suggestionService,
	}
}

// GetFinancialAdvice forwards a student's question and financial
// context to the hosted model
// @Summary Ask the financial advisor
// @Description Send a question with financial context and receive a free-text answer
// @Tags Advisor
// @Accept json
// @Produce json
// @Param request body dto.FinancialAdviceRequest true "Question and financial context"
// @Success 200 {object} dto.FinancialAdviceResponse
// @Failure 400 {object} dto.AIErrorResponse "Empty question"
// @Failure 500 {object} dto.AIErrorResponse "Generation failed or advisor unconfigured"
// @Security BearerAuth
// @Router /financial-advice [post]
func (h *AdvisorHandler) GetFinancialAdvice(c echo.Context) error {
	var req dto.FinancialAdviceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.AIErrorResponse{Error: "Invalid request body"})
	}

	resp, err := h.advisorService.GetAdvice(c.Request().Context(), req)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrEmptyQuestion):
			return c.JSON(http.StatusBadRequest, dto.AIErrorResponse{Error: "Question must not be empty"})
		case stderrors.Is(err, services.ErrAdvisorUnavailable):
			return c.JSON(http.StatusInternalServerError, dto.AIErrorResponse{Error: "Server configuration error: GOOGLE_API_KEY is missing"})
		default:
			return c.JSON(http.StatusInternalServerError, dto.AIErrorResponse{Error: "Failed to generate financial advice."})
		}
	}

	return c.JSON(http.StatusOK, resp)
}

// GetSavingsSuggestions asks the model for 2-3 data-driven savings tips
// @Summary Generate savings suggestions
// @Description Analyze the posted spending data and return 2-3 suggestions with savings estimates
// @Tags Advisor
// @Accept json
// @Produce json
// @Param request body dto.SavingsSuggestionsRequest true "Spending data and known tips"
// @Success 200 {object} dto.SavingsSuggestionsResponse
// @Failure 400 {object} dto.AIErrorResponse "Empty spending data"
// @Failure 500 {object} dto.AIErrorResponse "Generation failed or generator unconfigured"
// @Security BearerAuth
// @Router /savings-suggestions [post]
func (h *AdvisorHandler) GetSavingsSuggestions(c echo.Context) error {
	var req dto.SavingsSuggestionsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.AIErrorResponse{Error: "Invalid request body"})
	}

	resp, err := h.suggestionService.GetSuggestions(c.Request().Context(), req)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrNoSpendingData):
			return c.JSON(http.StatusBadRequest, dto.AIErrorResponse{Error: "Add some expenses before requesting suggestions"})
		case stderrors.Is(err, services.ErrSuggestionUnavailable):
			return c.JSON(http.StatusInternalServerError, dto.AIErrorResponse{Error: "Server configuration error: GOOGLE_API_KEY is missing"})
		default:
			return c.JSON(http.StatusInternalServerError, dto.AIErrorResponse{Error: "Failed to generate savings suggestions."})
		}
	}

	return c.JSON(http.StatusOK, resp)
}
