package dto

import "time"

// CreateExpenseRequest contains a new expense record. The server stamps the
// date; clients cannot backdate entries.
type CreateExpenseRequest struct {
	Description string  `json:"description" validate:"required,min=1,max=255"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
}

// ExpenseResponse is a single expense in API responses
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
}

// ListExpensesResponse wraps an expense listing
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    int64             `json:"total"`
}
