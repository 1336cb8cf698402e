package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finu/internal/dto"
	"finu/internal/models"
	"finu/internal/services/service_mocks"
	"finu/internal/validation"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ExpenseHandlerSuite defines the test suite for ExpenseHandler
type ExpenseHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockExpenseServiceInterface
	handler     *ExpenseHandler
	echo        *echo.Echo
	testUserID  uuid.UUID
}

func (s *ExpenseHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockExpenseServiceInterface(s.ctrl)
	s.handler = NewExpenseHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = &CustomValidator{validator: validation.NewValidator().GetValidate()}

	s.testUserID = uuid.New()
}

func (s *ExpenseHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestExpenseHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerSuite))
}

func (s *ExpenseHandlerSuite) createContextWithAuth(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.testUserID)

	return c, rec
}

func (s *ExpenseHandlerSuite) decodeErrorCode(rec *httptest.ResponseRecorder) string {
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (s *ExpenseHandlerSuite) TestCreateExpense_Success() {
	reqBody := dto.CreateExpenseRequest{
		Description: "Mess bill",
		Amount:      1450,
		Category:    models.CategoryMess,
	}

	created := &models.Expense{
		ID:          uuid.New(),
		UserID:      s.testUserID,
		Description: "Mess bill",
		Amount:      decimal.NewFromInt(1450),
		Category:    models.CategoryMess,
		Date:        time.Now().UTC(),
	}

	s.mockService.EXPECT().
		LogExpense(s.testUserID, reqBody).
		Return(created, nil)

	c, rec := s.createContextWithAuth(http.MethodPost, "/api/expenses", reqBody)
	s.Require().NoError(s.handler.CreateExpense(c))

	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.ExpenseResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Mess bill", resp.Description)
	s.Equal(1450.0, resp.Amount)
	s.Equal(models.CategoryMess, resp.Category)
}

func (s *ExpenseHandlerSuite) TestCreateExpense_UnknownCategory() {
	reqBody := dto.CreateExpenseRequest{
		Description: "Mystery purchase",
		Amount:      200,
		Category:    "Gambling",
	}

	c, rec := s.createContextWithAuth(http.MethodPost, "/api/expenses", reqBody)
	s.Require().NoError(s.handler.CreateExpense(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("EXPENSE_003", s.decodeErrorCode(rec))
}

func (s *ExpenseHandlerSuite) TestCreateExpense_Unauthenticated() {
	reqBody := dto.CreateExpenseRequest{
		Description: "Mess bill",
		Amount:      1450,
		Category:    models.CategoryMess,
	}

	jsonBody, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/expenses", bytes.NewBuffer(jsonBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(s.handler.CreateExpense(c))

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_002", s.decodeErrorCode(rec))
}

func (s *ExpenseHandlerSuite) TestListExpenses_DefaultPaging() {
	expenses := []models.Expense{
		{
			ID:          uuid.New(),
			UserID:      s.testUserID,
			Description: "Auto to campus",
			Amount:      decimal.NewFromInt(60),
			Category:    models.CategoryTravel,
			Date:        time.Now().UTC(),
		},
	}

	s.mockService.EXPECT().
		ListExpenses(s.testUserID, 50, 0).
		Return(expenses, int64(1), nil)

	c, rec := s.createContextWithAuth(http.MethodGet, "/api/expenses", nil)
	s.Require().NoError(s.handler.ListExpenses(c))

	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListExpensesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(1), resp.Total)
	s.Require().Len(resp.Expenses, 1)
	s.Equal("Auto to campus", resp.Expenses[0].Description)
}

func (s *ExpenseHandlerSuite) TestListExpenses_ExplicitPaging() {
	s.mockService.EXPECT().
		ListExpenses(s.testUserID, 10, 20).
		Return([]models.Expense{}, int64(35), nil)

	c, rec := s.createContextWithAuth(http.MethodGet, "/api/expenses?limit=10&offset=20", nil)
	s.Require().NoError(s.handler.ListExpenses(c))

	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListExpensesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(35), resp.Total)
	s.Empty(resp.Expenses)
}
