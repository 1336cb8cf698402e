package dto

import "encoding/json"

// FinancialAdviceRequest is the input to the chat advisor. The goal and
// transaction context arrive pre-serialized by the client; the server embeds
// them in the prompt verbatim (transactions capped at the 10 most recent).
type FinancialAdviceRequest struct {
	Question               string          `json:"question" validate:"required"`
	MonthlyIncome          float64         `json:"monthlyIncome"`
	MonthlyExpenses        float64         `json:"monthlyExpenses"`
	SavingsGoalsJSON       json.RawMessage `json:"savingsGoalsJSON"`
	RecentTransactionsJSON json.RawMessage `json:"recentTransactionsJSON"`
}

// FinancialAdviceResponse carries the advisor's free-text reply
type FinancialAdviceResponse struct {
	Response string `json:"response"`
}

// SpendingRecord is one expense as the suggestion generator sees it
type SpendingRecord struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
}

// SavingsSuggestionsRequest is the input to the suggestion generator
type SavingsSuggestionsRequest struct {
	SpendingData []SpendingRecord `json:"spendingData" validate:"required,min=1"`
	KnownTips    []string         `json:"knownTips"`
}

// Suggestion is a single insight/suggestion/savings triple. The savings figure
// is a model estimate, not a guarantee.
type Suggestion struct {
	Insight                 string   `json:"insight"`
	Suggestion              string   `json:"suggestion"`
	PotentialMonthlySavings *float64 `json:"potentialMonthlySavings"`
}

// SavingsSuggestionsResponse wraps the 2-3 generated suggestions
type SavingsSuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// AIErrorResponse is the wire shape for advisor endpoint failures
type AIErrorResponse struct {
	Error string `json:"error"`
}
