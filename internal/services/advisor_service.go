package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finu/internal/dto"
	"finu/internal/llm"
)

var (
	ErrEmptyQuestion      = errors.New("question must not be empty")
	ErrAdviceGeneration   = errors.New("failed to generate financial advice")
	ErrAdvisorUnavailable = errors.New("advisor is not configured")
)

// maxPromptTransactions caps how many recent transactions get embedded
// in the advice prompt
const maxPromptTransactions = 10

const advicePromptTemplate = `You are a friendly and encouraging financial advisor for college students in India. Your name is 'FinBot'.
You are chatting with a student who has asked for financial advice. Use the provided financial context to give a personalized, actionable, and easy-to-understand response.

Keep your answers concise and to the point. If you provide a list, use markdown bullet points.

**Student's Financial Context:**
- Monthly Income/Allowance: ₹%s
- Total Monthly Expenses: ₹%s
- Savings Goals: %s
- Recent Transactions: %s

**Student's Question:**
"%s"

Based on this, provide a helpful and supportive answer. Address the student directly.`

// AdvisorServiceInterface defines the chat advisor operation
type AdvisorServiceInterface interface {
	GetAdvice(ctx context.Context, req dto.FinancialAdviceRequest) (*dto.FinancialAdviceResponse, error)
}

// AdvisorService forwards a student's question and financial context to
// the hosted model and returns its free-text reply
type AdvisorService struct {
	client  llm.Client
	timeout time.Duration
	logger  *slog.Logger
}

// NewAdvisorService creates a new advisor service. A nil client means
// the hosted model is unconfigured; requests then fail without a
// network call.
func NewAdvisorService(client llm.Client, timeout time.Duration, logger *slog.Logger) AdvisorServiceInterface {
	return &AdvisorService{
		client:  client,
		timeout: timeout,
		logger:  logger,
	}
}

// GetAdvice validates the question, builds the prompt and asks the
// model. The question is checked before any network traffic happens.
func (s *AdvisorService) GetAdvice(ctx context.Context, req dto.FinancialAdviceRequest) (*dto.FinancialAdviceResponse, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	if s.client == nil {
		adviceRequestsTotal.WithLabelValues("unconfigured").Inc()
		return nil, ErrAdvisorUnavailable
	}

	prompt := fmt.Sprintf(advicePromptTemplate,
		formatAmount(req.MonthlyIncome),
		formatAmount(req.MonthlyExpenses),
		rawJSONOrEmptyArray(req.SavingsGoalsJSON),
		truncateTransactions(req.RecentTransactionsJSON),
		question,
	)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	reply, err := s.client.Complete(ctx, prompt)
	aiRequestDuration.WithLabelValues("advice").Observe(time.Since(start).Seconds())

	if err != nil {
		adviceRequestsTotal.WithLabelValues("error").Inc()
		s.logger.Error("advice generation failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrAdviceGeneration, err)
	}

	adviceRequestsTotal.WithLabelValues("success").Inc()
	return &dto.FinancialAdviceResponse{Response: reply}, nil
}

// truncateTransactions keeps only the first maxPromptTransactions
// entries of the client-supplied transaction array. Anything that is
// not a JSON array is passed through untouched.
func truncateTransactions(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "[]"
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return string(raw)
	}

	if len(items) > maxPromptTransactions {
		items = items[:maxPromptTransactions]
	}

	out, err := json.Marshal(items)
	if err != nil {
		return string(raw)
	}
	return string(out)
}

func rawJSONOrEmptyArray(raw json.RawMessage) string {
	if len(raw) == 0 {
		return "[]"
	}
	return string(raw)
}

// formatAmount renders a rupee figure the way the prompt expects:
// whole numbers without decimals, fractions with two places
func formatAmount(amount float64) string {
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("%d", int64(amount))
	}
	return fmt.Sprintf("%.2f", amount)
}
