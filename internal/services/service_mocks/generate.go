package service_mocks

//go:generate mockgen -destination=service_mocks.go -package=service_mocks finu/internal/services AuthServiceInterface,TokenServiceInterface,ExpenseServiceInterface,BudgetServiceInterface,GoalServiceInterface,AnalyticsServiceInterface,AdvisorServiceInterface,SuggestionServiceInterface,DirectoryServiceInterface
