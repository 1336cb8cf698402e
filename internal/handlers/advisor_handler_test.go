package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"finu/internal/dto"
	"finu/internal/services"
	"finu/internal/services/service_mocks"
	"finu/internal/validation"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// AdvisorHandlerSuite defines the test suite for AdvisorHandler
type AdvisorHandlerSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockAdvisor     *service_mocks.MockAdvisorServiceInterface
	mockSuggestions *service_mocks.MockSuggestionServiceInterface
	handler         *AdvisorHandler
	echo            *echo.Echo
}

func (s *AdvisorHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAdvisor = service_mocks.NewMockAdvisorServiceInterface(s.ctrl)
	s.mockSuggestions = service_mocks.NewMockSuggestionServiceInterface(s.ctrl)
	s.handler = NewAdvisorHandler(s.mockAdvisor, s.mockSuggestions)

	s.echo = echo.New()
	s.echo.Validator = &CustomValidator{validator: validation.NewValidator().GetValidate()}
}

func (s *AdvisorHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAdvisorHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdvisorHandlerSuite))
}

func (s *AdvisorHandlerSuite) postJSON(path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(jsonBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *AdvisorHandlerSuite) TestGetFinancialAdvice_Success() {
	reqBody := dto.FinancialAdviceRequest{
		Question:        "How can I save more from my allowance?",
		MonthlyIncome:   15000,
		MonthlyExpenses: 9000,
	}

	s.mockAdvisor.EXPECT().
		GetAdvice(gomock.Any(), gomock.Any()).
		Return(&dto.FinancialAdviceResponse{Response: "Start a weekly mess budget."}, nil)

	c, rec := s.postJSON("/api/financial-advice", reqBody)
	s.Require().NoError(s.handler.GetFinancialAdvice(c))

	s.Equal(http.StatusOK, rec.Code)

	var resp map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Start a weekly mess budget.", resp["response"])
}

func (s *AdvisorHandlerSuite) TestGetFinancialAdvice_EmptyQuestion() {
	s.mockAdvisor.EXPECT().
		GetAdvice(gomock.Any(), gomock.Any()).
		Return(nil, services.ErrEmptyQuestion)

	c, rec := s.postJSON("/api/financial-advice", dto.FinancialAdviceRequest{Question: "   "})
	s.Require().NoError(s.handler.GetFinancialAdvice(c))

	s.Equal(http.StatusBadRequest, rec.Code)

	var resp map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Question must not be empty", resp["error"])
}

func (s *AdvisorHandlerSuite) TestGetFinancialAdvice_GenerationFailure() {
	s.mockAdvisor.EXPECT().
		GetAdvice(gomock.Any(), gomock.Any()).
		Return(nil, services.ErrAdviceGeneration)

	c, rec := s.postJSON("/api/financial-advice", dto.FinancialAdviceRequest{Question: "Help"})
	s.Require().NoError(s.handler.GetFinancialAdvice(c))

	s.Equal(http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Failed to generate financial advice.", resp["error"])
}

func (s *AdvisorHandlerSuite) TestGetFinancialAdvice_AdvisorUnconfigured() {
	s.mockAdvisor.EXPECT().
		GetAdvice(gomock.Any(), gomock.Any()).
		Return(nil, services.ErrAdvisorUnavailable)

	c, rec := s.postJSON("/api/financial-advice", dto.FinancialAdviceRequest{Question: "Help"})
	s.Require().NoError(s.handler.GetFinancialAdvice(c))

	s.Equal(http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Server configuration error: GOOGLE_API_KEY is missing", resp["error"])
}

func (s *AdvisorHandlerSuite) TestGetSavingsSuggestions_Success() {
	savings := 500.0
	reqBody := dto.SavingsSuggestionsRequest{
		SpendingData: []dto.SpendingRecord{
			{Description: "Late night canteen", Amount: 120, Category: "Canteen", Date: "2026-03-01"},
		},
	}

	s.mockSuggestions.EXPECT().
		GetSuggestions(gomock.Any(), gomock.Any()).
		Return(&dto.SavingsSuggestionsResponse{
			Suggestions: []dto.Suggestion{
				{Insight: "Canteen runs add up", Suggestion: "Set a snack cap", PotentialMonthlySavings: &savings},
				{Insight: "Weekend spikes", Suggestion: "Plan weekend meals", PotentialMonthlySavings: &savings},
			},
		}, nil)

	c, rec := s.postJSON("/api/savings-suggestions", reqBody)
	s.Require().NoError(s.handler.GetSavingsSuggestions(c))

	s.Equal(http.StatusOK, rec.Code)

	var resp dto.SavingsSuggestionsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Suggestions, 2)
	s.Equal("Canteen runs add up", resp.Suggestions[0].Insight)
	s.Require().NotNil(resp.Suggestions[0].PotentialMonthlySavings)
	s.Equal(500.0, *resp.Suggestions[0].PotentialMonthlySavings)
}

func (s *AdvisorHandlerSuite) TestGetSavingsSuggestions_NoSpendingData() {
	s.mockSuggestions.EXPECT().
		GetSuggestions(gomock.Any(), gomock.Any()).
		Return(nil, services.ErrNoSpendingData)

	c, rec := s.postJSON("/api/savings-suggestions", dto.SavingsSuggestionsRequest{})
	s.Require().NoError(s.handler.GetSavingsSuggestions(c))

	s.Equal(http.StatusBadRequest, rec.Code)

	var resp map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Add some expenses before requesting suggestions", resp["error"])
}

func (s *AdvisorHandlerSuite) TestGetSavingsSuggestions_GenerationFailure() {
	s.mockSuggestions.EXPECT().
		GetSuggestions(gomock.Any(), gomock.Any()).
		Return(nil, services.ErrSuggestionGeneration)

	c, rec := s.postJSON("/api/savings-suggestions", dto.SavingsSuggestionsRequest{
		SpendingData: []dto.SpendingRecord{{Description: "Mess", Amount: 100, Category: "Mess", Date: "2026-03-01"}},
	})
	s.Require().NoError(s.handler.GetSavingsSuggestions(c))

	s.Equal(http.StatusInternalServerError, rec.Code)

	var resp map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Failed to generate savings suggestions.", resp["error"])
}
