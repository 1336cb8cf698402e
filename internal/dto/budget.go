package dto

// CategoryAllocation is one category row in a budget update
type CategoryAllocation struct {
	Category string  `json:"category" validate:"required"`
	Total    float64 `json:"total" validate:"gte=0"`
}

// UpdateBudgetRequest replaces the user's monthly budget allocation
type UpdateBudgetRequest struct {
	Total           float64              `json:"total" validate:"gte=0"`
	CategoryBudgets []CategoryAllocation `json:"categoryBudgets" validate:"required,dive"`
}

// CategoryBudgetResponse is a category allocation with its derived spend
type CategoryBudgetResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Spent    float64 `json:"spent"`
}

// BudgetResponse is the user's budget with all spent figures filled in from
// the current expense set
type BudgetResponse struct {
	Total           float64                  `json:"total"`
	Spent           float64                  `json:"spent"`
	CategoryBudgets []CategoryBudgetResponse `json:"categoryBudgets"`
}
