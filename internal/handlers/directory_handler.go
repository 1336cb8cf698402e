package handlers

import (
	"net/http"

	"finu/internal/dto"
	"finu/internal/models"
	"finu/internal/repositories"
	"finu/internal/services"

	"github.com/labstack/echo/v4"
)

// DirectoryHandler serves the scholarship directory and the stock tips
type DirectoryHandler struct {
	directoryService services.DirectoryServiceInterface
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(directoryService services.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{
		directoryService: directoryService,
	}
}

// ListScholarships returns scholarships matching the query filters
// @Summary List scholarships
// @Description Search the directory by name/provider text, state and category
// @Tags Scholarships
// @Produce json
// @Param q query string false "Name or provider substring"
// @Param state query string false "State name; All India entries always match"
// @Param category query string false "Eligibility category"
// @Success 200 {object} dto.ListScholarshipsResponse
// @Router /scholarships [get]
func (h *DirectoryHandler) ListScholarships(c echo.Context) error {
	filter := repositories.ScholarshipFilter{
		Query:    c.QueryParam("q"),
		State:    c.QueryParam("state"),
		Category: c.QueryParam("category"),
	}

	scholarships, err := h.directoryService.ListScholarships(filter)
	if err != nil {
		return SendSystemError(c, err)
	}

	resp := dto.ListScholarshipsResponse{
		Scholarships: make([]dto.ScholarshipResponse, 0, len(scholarships)),
	}
	for i := range scholarships {
		resp.Scholarships = append(resp.Scholarships, toScholarshipResponse(&scholarships[i]))
	}

	return c.JSON(http.StatusOK, resp)
}

// ListTips returns the stock savings tips
// @Summary List savings tips
// @Tags Scholarships
// @Produce json
// @Success 200 {object} map[string][]models.Tip
// @Router /tips [get]
func (h *DirectoryHandler) ListTips(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"tips": h.directoryService.ListTips(),
	})
}

func toScholarshipResponse(s *models.Scholarship) dto.ScholarshipResponse {
	return dto.ScholarshipResponse{
		ID:         s.ID.String(),
		Name:       s.Name,
		Provider:   s.Provider,
		Amount:     s.Amount,
		Deadline:   s.Deadline.Format("2006-01-02"),
		States:     s.States,
		Categories: s.Categories,
		Income:     s.Income,
		Link:       s.Link,
	}
}
