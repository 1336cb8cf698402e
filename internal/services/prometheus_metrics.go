package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	expensesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finu_expenses_created_total",
		Help: "Total number of expenses logged",
	})

	goalFundingTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finu_goal_funding_total",
		Help: "Total number of goal funding operations",
	})

	adviceRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finu_advice_requests_total",
		Help: "Financial advice requests by outcome",
	}, []string{"status"})

	suggestionRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "finu_suggestion_requests_total",
		Help: "Savings suggestion requests by outcome",
	}, []string{"status"})

	aiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "finu_ai_request_duration_seconds",
		Help:    "Latency of hosted model calls",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
)
