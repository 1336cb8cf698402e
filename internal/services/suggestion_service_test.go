package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"finu/internal/dto"
	"finu/internal/llm"

	"github.com/stretchr/testify/suite"
)

type SuggestionServiceTestSuite struct {
	suite.Suite
	client  *llm.FakeClient
	service SuggestionServiceInterface
}

func TestSuggestionServiceSuite(t *testing.T) {
	suite.Run(t, new(SuggestionServiceTestSuite))
}

const validSuggestionsJSON = `{
	"suggestions": [
		{"insight": "Frequent canteen spending.", "suggestion": "Eat at the mess twice a week.", "potentialMonthlySavings": 400},
		{"insight": "Several small recharges.", "suggestion": "Switch to a quarterly plan.", "potentialMonthlySavings": 120}
	]
}`

func (s *SuggestionServiceTestSuite) SetupTest() {
	s.client = &llm.FakeClient{JSONReply: validSuggestionsJSON}
	s.service = NewSuggestionService(s.client, 5*time.Second, slog.Default())
}

func (s *SuggestionServiceTestSuite) spendingData() []dto.SpendingRecord {
	return []dto.SpendingRecord{
		{Description: "Canteen lunch", Amount: 80, Category: "Canteen", Date: "2024-07-01"},
		{Description: "Mobile recharge", Amount: 239, Category: "Recharge/Subscriptions", Date: "2024-07-02"},
	}
}

func (s *SuggestionServiceTestSuite) TestGetSuggestions_Success() {
	req := dto.SavingsSuggestionsRequest{
		SpendingData: s.spendingData(),
		KnownTips:    []string{"Use the mess."},
	}

	resp, err := s.service.GetSuggestions(context.Background(), req)

	s.Require().NoError(err)
	s.Len(resp.Suggestions, 2)
	s.Equal("Frequent canteen spending.", resp.Suggestions[0].Insight)
	s.Equal(400.0, *resp.Suggestions[0].PotentialMonthlySavings)

	s.Require().Len(s.client.JSONPrompts, 1)
	prompt := s.client.JSONPrompts[0]
	s.Contains(prompt, "Canteen lunch")
	s.Contains(prompt, "Use the mess.")
	s.Contains(prompt, "identify 2-3 specific patterns")
}

func (s *SuggestionServiceTestSuite) TestGetSuggestions_EmptySpendingDataFailsBeforeNetwork() {
	req := dto.SavingsSuggestionsRequest{SpendingData: nil}

	_, err := s.service.GetSuggestions(context.Background(), req)

	s.ErrorIs(err, ErrNoSpendingData)
	s.Empty(s.client.JSONPrompts, "model must not be called without spending data")
}

func (s *SuggestionServiceTestSuite) TestGetSuggestions_StripsCodeFence() {
	s.client.JSONReply = "```json\n" + validSuggestionsJSON + "\n```"

	resp, err := s.service.GetSuggestions(context.Background(), dto.SavingsSuggestionsRequest{
		SpendingData: s.spendingData(),
	})

	s.Require().NoError(err)
	s.Len(resp.Suggestions, 2)
}

func (s *SuggestionServiceTestSuite) TestGetSuggestions_RejectsMalformedReplies() {
	testCases := []struct {
		name  string
		reply string
	}{
		{"not JSON", "sorry, I cannot do that"},
		{"empty object", `{}`},
		{"single suggestion", `{"suggestions":[{"insight":"a","suggestion":"b","potentialMonthlySavings":10}]}`},
		{"four suggestions", `{"suggestions":[
			{"insight":"a","suggestion":"b","potentialMonthlySavings":1},
			{"insight":"c","suggestion":"d","potentialMonthlySavings":2},
			{"insight":"e","suggestion":"f","potentialMonthlySavings":3},
			{"insight":"g","suggestion":"h","potentialMonthlySavings":4}]}`},
		{"missing insight", `{"suggestions":[
			{"insight":"","suggestion":"b","potentialMonthlySavings":1},
			{"insight":"c","suggestion":"d","potentialMonthlySavings":2}]}`},
		{"missing savings estimate", `{"suggestions":[
			{"insight":"a","suggestion":"b"},
			{"insight":"c","suggestion":"d","potentialMonthlySavings":2}]}`},
		{"negative savings estimate", `{"suggestions":[
			{"insight":"a","suggestion":"b","potentialMonthlySavings":-5},
			{"insight":"c","suggestion":"d","potentialMonthlySavings":2}]}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.client.JSONReply = tc.reply

			_, err := s.service.GetSuggestions(context.Background(), dto.SavingsSuggestionsRequest{
				SpendingData: s.spendingData(),
			})

			s.ErrorIs(err, ErrSuggestionGeneration)
		})
	}
}

func (s *SuggestionServiceTestSuite) TestGetSuggestions_ZeroSavingsEstimateAllowed() {
	s.client.JSONReply = `{"suggestions":[
		{"insight":"a","suggestion":"b","potentialMonthlySavings":0},
		{"insight":"c","suggestion":"d","potentialMonthlySavings":2}]}`

	resp, err := s.service.GetSuggestions(context.Background(), dto.SavingsSuggestionsRequest{
		SpendingData: s.spendingData(),
	})

	s.Require().NoError(err)
	s.Equal(0.0, *resp.Suggestions[0].PotentialMonthlySavings)
}

func (s *SuggestionServiceTestSuite) TestGetSuggestions_ModelFailure() {
	s.client.Err = errors.New("timeout")

	_, err := s.service.GetSuggestions(context.Background(), dto.SavingsSuggestionsRequest{
		SpendingData: s.spendingData(),
	})

	s.ErrorIs(err, ErrSuggestionGeneration)
}

func (s *SuggestionServiceTestSuite) TestGetSuggestions_NilClient() {
	service := NewSuggestionService(nil, time.Second, slog.Default())

	_, err := service.GetSuggestions(context.Background(), dto.SavingsSuggestionsRequest{
		SpendingData: s.spendingData(),
	})
	s.ErrorIs(err, ErrSuggestionUnavailable)
}
