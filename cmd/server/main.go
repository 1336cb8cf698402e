package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finu/internal/config"
	"finu/internal/database"
	"finu/internal/handlers"
	"finu/internal/llm"
	appmiddleware "finu/internal/middleware"
	"finu/internal/models"
	"finu/internal/repositories"
	"finu/internal/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @title Finu API
// @version 1.0
// @description Personal finance backend for college students: expense log, budgets, savings goals, scholarships and an AI advisor.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	expenseRepo := repositories.NewExpenseRepository(db)
	budgetRepo := repositories.NewBudgetRepository(db)
	goalRepo := repositories.NewGoalRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	blacklistRepo := repositories.NewBlacklistedTokenRepository(db)
	scholarshipRepo := repositories.NewScholarshipRepository(db)

	if err := scholarshipRepo.Seed(defaultScholarships()); err != nil {
		logger.Warn("Scholarship seeding failed", "error", err)
	}

	// Hosted model client; nil when unconfigured so advisor endpoints
	// fail fast with a configuration error
	var modelClient llm.Client
	if client, err := llm.NewGoogleAIClient(context.Background(), cfg.AI); err != nil {
		logger.Warn("AI advisor disabled", "error", err)
	} else {
		modelClient = client
	}

	// Services
	passwordService := services.NewPasswordService(cfg.Security)
	tokenService := services.NewTokenService(cfg.JWT)
	authService := services.NewAuthService(userRepo, budgetRepo, refreshTokenRepo, blacklistRepo, passwordService, tokenService, logger)
	expenseService := services.NewExpenseService(expenseRepo, logger)
	ledgerService := services.NewLedgerService()
	healthService := services.NewHealthService()
	budgetService := services.NewBudgetService(budgetRepo, expenseRepo, ledgerService, logger)
	goalService := services.NewGoalService(goalRepo, logger)
	analyticsService := services.NewAnalyticsService(expenseRepo, budgetRepo, goalRepo, ledgerService, healthService)
	advisorService := services.NewAdvisorService(modelClient, cfg.AI.RequestTimeout, logger)
	suggestionService := services.NewSuggestionService(modelClient, cfg.AI.RequestTimeout, logger)
	directoryService := services.NewDirectoryService(scholarshipRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	goalHandler := handlers.NewGoalHandler(goalService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	advisorHandler := handlers.NewAdvisorHandler(advisorService, suggestionService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = appmiddleware.CustomHTTPErrorHandler

	e.Use(appmiddleware.RequestID())
	e.Use(appmiddleware.PanicRecovery())
	e.Use(appmiddleware.SecurityHeaders())
	e.Use(appmiddleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	requireAuth := appmiddleware.RequireAuth(tokenService, blacklistRepo)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.RefreshToken)
	api.GET("/scholarships", directoryHandler.ListScholarships)
	api.GET("/tips", directoryHandler.ListTips)

	// Authenticated routes
	api.POST("/auth/logout", authHandler.Logout, requireAuth)
	api.GET("/auth/me", authHandler.GetProfile, requireAuth)
	api.PUT("/profile", authHandler.UpdateProfile, requireAuth)

	api.GET("/expenses", expenseHandler.ListExpenses, requireAuth)
	api.POST("/expenses", expenseHandler.CreateExpense, requireAuth)

	api.GET("/budget", budgetHandler.GetBudget, requireAuth)
	api.PUT("/budget", budgetHandler.UpdateBudget, requireAuth)

	api.GET("/goals", goalHandler.ListGoals, requireAuth)
	api.POST("/goals", goalHandler.CreateGoal, requireAuth)
	api.POST("/goals/:goalId/funds", goalHandler.AddFunds, requireAuth)
	api.DELETE("/goals/:goalId", goalHandler.DeleteGoal, requireAuth)

	api.GET("/analytics/summary", analyticsHandler.GetSummary, requireAuth)

	api.POST("/financial-advice", advisorHandler.GetFinancialAdvice, requireAuth)
	api.POST("/savings-suggestions", advisorHandler.GetSavingsSuggestions, requireAuth)

	// Periodic cleanup of expired tokens
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if _, err := refreshTokenRepo.DeleteExpired(); err != nil {
				logger.Warn("Refresh token cleanup failed", "error", err)
			}
			if _, err := blacklistRepo.DeleteExpired(); err != nil {
				logger.Warn("Blacklist cleanup failed", "error", err)
			}
		}
	}()

	// Graceful shutdown handling
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Info("Starting server", "addr", addr, "environment", cfg.Server.Environment)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Error("Server stopped unexpectedly", "error", err)
		os.Exit(1)
	}

	logger.Info("Server stopped")
}

// defaultScholarships seeds the directory on first boot. These mirror
// well-known Indian student scholarships the web client ships with.
func defaultScholarships() []models.Scholarship {
	date := func(value string) time.Time {
		t, _ := time.Parse("2006-01-02", value)
		return t
	}

	return []models.Scholarship{
		{
			Name:       "Post Matric Scholarship for SC Students",
			Provider:   "Govt. of India",
			Amount:     "Upto ₹13,500 p.a.",
			Deadline:   date("2024-10-31"),
			States:     models.StringList{"All India"},
			Categories: models.StringList{"SC"},
			Income:     "Below ₹2.5 Lakh p.a.",
			Link:       "https://scholarships.gov.in/",
		},
		{
			Name:       "Merit Cum Means Scholarship For Professional and Technical Courses",
			Provider:   "Govt. of India",
			Amount:     "Upto ₹20,000 p.a.",
			Deadline:   date("2024-10-31"),
			States:     models.StringList{"All India"},
			Categories: models.StringList{"Minority"},
			Income:     "Below ₹2.5 Lakh p.a.",
			Link:       "https://scholarships.gov.in/",
		},
		{
			Name:       "Mukhyamantri Medhavi Vidyarthi Yojana (MMVY)",
			Provider:   "Govt. of Madhya Pradesh",
			Amount:     "Full Course Fee",
			Deadline:   date("2024-09-30"),
			States:     models.StringList{"Madhya Pradesh"},
			Categories: models.StringList{"General", "OBC", "SC", "ST"},
			Income:     "Below ₹6 Lakh p.a.",
			Link:       "http://scholarshipportal.mp.nic.in/",
		},
		{
			Name:       "Pragati Scholarship for Girls",
			Provider:   "AICTE",
			Amount:     "₹50,000 p.a.",
			Deadline:   date("2024-11-30"),
			States:     models.StringList{"All India"},
			Categories: models.StringList{"General", "OBC", "SC", "ST"},
			Income:     "Below ₹8 Lakh p.a.",
			Link:       "https://www.aicte-india.org/schemes/students-development-schemes/Pragati",
		},
		{
			Name:       "Chief Minister's Scholarship Scheme",
			Provider:   "Govt. of Haryana",
			Amount:     "₹12,000 p.a.",
			Deadline:   date("2024-12-15"),
			States:     models.StringList{"Haryana"},
			Categories: models.StringList{"General", "OBC"},
			Income:     "Below ₹4 Lakh p.a.",
			Link:       "https://harchhatravratti.highereduhry.ac.in/",
		},
	}
}
