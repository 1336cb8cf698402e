package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
)

// User error codes (USER_*)
const (
	UserNotFound      ErrorCode = "USER_001"
	UserAlreadyExists ErrorCode = "USER_002"
	UserInvalidID     ErrorCode = "USER_003"
)

// Expense error codes (EXPENSE_*)
const (
	ExpenseNotFound        ErrorCode = "EXPENSE_001"
	ExpenseInvalidAmount   ErrorCode = "EXPENSE_002"
	ExpenseInvalidCategory ErrorCode = "EXPENSE_003"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound        ErrorCode = "BUDGET_001"
	BudgetInvalidTotal    ErrorCode = "BUDGET_002"
	BudgetInvalidCategory ErrorCode = "BUDGET_003"
)

// Goal error codes (GOAL_*)
const (
	GoalNotFound          ErrorCode = "GOAL_001"
	GoalInvalidTarget     ErrorCode = "GOAL_002"
	GoalInvalidFundAmount ErrorCode = "GOAL_003"
	GoalInvalidID         ErrorCode = "GOAL_004"
)

// AI advisor error codes (ADVISOR_*)
const (
	AdviceGenerationFailed     ErrorCode = "ADVISOR_001"
	SuggestionGenerationFailed ErrorCode = "ADVISOR_002"
	AdvisorEmptyQuestion       ErrorCode = "ADVISOR_003"
	AdvisorNoSpendingData      ErrorCode = "ADVISOR_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials:     "Invalid email or password",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidDate:   "Invalid date format or range",

	// User errors
	UserNotFound:      "User not found",
	UserAlreadyExists: "An account with this email already exists",
	UserInvalidID:     "Invalid user ID format",

	// Expense errors
	ExpenseNotFound:        "Expense not found",
	ExpenseInvalidAmount:   "Expense amount must be greater than zero",
	ExpenseInvalidCategory: "Unknown expense category",

	// Budget errors
	BudgetNotFound:        "Budget not found",
	BudgetInvalidTotal:    "Budget total must not be negative",
	BudgetInvalidCategory: "Unknown budget category",

	// Goal errors
	GoalNotFound:          "Savings goal not found",
	GoalInvalidTarget:     "Goal target amount must be greater than zero",
	GoalInvalidFundAmount: "Fund amount must be greater than zero",
	GoalInvalidID:         "Invalid goal ID format",

	// AI advisor errors
	AdviceGenerationFailed:     "Failed to generate financial advice.",
	SuggestionGenerationFailed: "Failed to generate savings suggestions.",
	AdvisorEmptyQuestion:       "Question must not be empty",
	AdvisorNoSpendingData:      "Add some expenses before requesting suggestions",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
