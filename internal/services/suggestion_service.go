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
	"finu/internal/models"
)

var (
	ErrNoSpendingData        = errors.New("spending data must not be empty")
	ErrSuggestionGeneration  = errors.New("failed to generate savings suggestions")
	ErrSuggestionUnavailable = errors.New("suggestion generator is not configured")
)

const suggestionPromptTemplate = `You are a financial advisor for college students in India. Your goal is to provide actionable, personalized savings tips.

Analyze the student's spending habits provided in the JSON spending data.
Based on the data, identify 2-3 specific patterns or areas for potential savings.

Spending Data: %s

Known Tips and Tricks: %s

For each area, provide:
1.  **insight**: A brief, data-driven observation (e.g., "Your spending on Canteen food is frequent.").
2.  **suggestion**: A practical, actionable tip to reduce that spending (e.g., "Packing lunch from the mess twice a week could cut costs.").
3.  **potentialMonthlySavings**: A realistic, calculated estimate of how much money (in ₹) the student could save per month if they follow the tip.

Generate a JSON object containing an array of 2-3 suggestion objects.`

// SuggestionServiceInterface defines the savings suggestion operation
type SuggestionServiceInterface interface {
	GetSuggestions(ctx context.Context, req dto.SavingsSuggestionsRequest) (*dto.SavingsSuggestionsResponse, error)
}

// SuggestionService asks the hosted model to mine the student's
// spending data for 2-3 concrete savings suggestions
type SuggestionService struct {
	client  llm.Client
	timeout time.Duration
	logger  *slog.Logger
}

// NewSuggestionService creates a new suggestion service. A nil client
// means the hosted model is unconfigured; requests then fail without a
// network call.
func NewSuggestionService(client llm.Client, timeout time.Duration, logger *slog.Logger) SuggestionServiceInterface {
	return &SuggestionService{
		client:  client,
		timeout: timeout,
		logger:  logger,
	}
}

// GetSuggestions builds the analysis prompt, calls the model in JSON
// mode and validates the reply against the expected shape. Spending
// data is checked before any network traffic happens.
func (s *SuggestionService) GetSuggestions(ctx context.Context, req dto.SavingsSuggestionsRequest) (*dto.SavingsSuggestionsResponse, error) {
	if len(req.SpendingData) == 0 {
		return nil, ErrNoSpendingData
	}

	if s.client == nil {
		suggestionRequestsTotal.WithLabelValues("unconfigured").Inc()
		return nil, ErrSuggestionUnavailable
	}

	spendingJSON, err := json.Marshal(req.SpendingData)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize spending data: %w", err)
	}

	tips := req.KnownTips
	if len(tips) == 0 {
		tips = models.TipTexts()
	}
	tipsJSON, err := json.Marshal(tips)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize known tips: %w", err)
	}

	prompt := fmt.Sprintf(suggestionPromptTemplate, spendingJSON, tipsJSON)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	reply, err := s.client.CompleteJSON(ctx, prompt)
	aiRequestDuration.WithLabelValues("suggestions").Observe(time.Since(start).Seconds())

	if err != nil {
		suggestionRequestsTotal.WithLabelValues("error").Inc()
		s.logger.Error("suggestion generation failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrSuggestionGeneration, err)
	}

	resp, err := parseSuggestions(reply)
	if err != nil {
		suggestionRequestsTotal.WithLabelValues("invalid").Inc()
		s.logger.Error("model returned malformed suggestions", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrSuggestionGeneration, err)
	}

	suggestionRequestsTotal.WithLabelValues("success").Inc()
	return resp, nil
}

// parseSuggestions decodes and validates the model reply. The contract
// is strict: 2-3 suggestions, each with non-empty text fields and a
// non-negative savings estimate.
func parseSuggestions(reply string) (*dto.SavingsSuggestionsResponse, error) {
	cleaned := stripCodeFence(reply)

	var resp dto.SavingsSuggestionsResponse
	if err := json.Unmarshal([]byte(cleaned), &resp); err != nil {
		return nil, fmt.Errorf("reply is not valid JSON: %w", err)
	}

	if len(resp.Suggestions) < 2 || len(resp.Suggestions) > 3 {
		return nil, fmt.Errorf("expected 2-3 suggestions, got %d", len(resp.Suggestions))
	}

	for i, sg := range resp.Suggestions {
		if strings.TrimSpace(sg.Insight) == "" {
			return nil, fmt.Errorf("suggestion %d is missing an insight", i)
		}
		if strings.TrimSpace(sg.Suggestion) == "" {
			return nil, fmt.Errorf("suggestion %d is missing a suggestion", i)
		}
		if sg.PotentialMonthlySavings == nil {
			return nil, fmt.Errorf("suggestion %d is missing potentialMonthlySavings", i)
		}
		if *sg.PotentialMonthlySavings < 0 {
			return nil, fmt.Errorf("suggestion %d has a negative savings estimate", i)
		}
	}

	return &resp, nil
}

// stripCodeFence removes a leading ```json / trailing ``` wrapper some
// models emit even in JSON mode
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
