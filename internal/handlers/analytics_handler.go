package handlers

import (
	"net/http"

	"finu/internal/errors"
	"finu/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler serves the dashboard summary
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService services.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetSummary returns the derived spending figures and the health score
// @Summary Analytics summary
// @Description Weekly spend, daily average, top category, top day, active goals and health score
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.AnalyticsSummaryResponse
// @Failure 401 {object} errors.ErrorResponse "Missing or invalid token - AUTH_002"
// @Security BearerAuth
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) GetSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	summary, err := h.analyticsService.Summary(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}
