package handlers

import (
	"net/http"
	"time"

	"finu/internal/dto"
	"finu/internal/errors"
	"finu/internal/models"
	"finu/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication and profile endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles user registration
// @Summary Register a new student account
// @Description Create an account with email and password; a starter budget is assigned automatically
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} SuccessResponse{data=dto.TokenResponse} "Account created"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 409 {object} errors.ErrorResponse "Email already registered - USER_002"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001 or SYSTEM_002"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, tokens, err := h.authService.Register(req)
	if err != nil {
		if err == services.ErrEmailAlreadyExists {
			return SendError(c, errors.UserAlreadyExists)
		}
		if err == services.ErrPasswordTooShort {
			return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("Password is too short"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: map[string]interface{}{
			"user":   toProfileResponse(user),
			"tokens": tokens,
		},
		Message: "Account created successfully",
	})
}

// Login handles user authentication
// @Summary Login
// @Description Authenticate with email and password, receive JWT access and refresh tokens
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.TokenResponse "Login successful with JWT tokens"
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "Invalid credentials - AUTH_001"
// @Failure 500 {object} errors.ErrorResponse "System error - SYSTEM_001 or SYSTEM_002"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	_, tokens, err := h.authService.Login(req)
	if err != nil {
		if err == services.ErrInvalidCredentials {
			return SendError(c, errors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// RefreshToken handles token refresh
// @Summary Refresh access token
// @Description Rotate a refresh token for a new access/refresh pair
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse "New token pair"
// @Failure 401 {object} errors.ErrorResponse "Invalid or revoked refresh token - AUTH_003 or AUTH_004"
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req dto.RefreshTokenRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	tokens, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		if err == services.ErrRefreshTokenInvalid || err == services.ErrRefreshTokenRevoked {
			return SendError(c, errors.AuthExpiredToken)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// Logout invalidates the current access token and revokes the refresh token
// @Summary Logout
// @Description Blacklist the presented access token and revoke the refresh token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest false "Refresh token to revoke"
// @Success 200 {object} SuccessResponse "Logged out"
// @Failure 401 {object} errors.ErrorResponse "Missing or invalid token - AUTH_002"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	jti, _ := c.Get("token_jti").(string)
	expiresAt, _ := c.Get("token_expires_at").(time.Time)

	// Body is optional; logout still blacklists the access token without it
	var req dto.RefreshTokenRequest
	_ = c.Bind(&req)

	if err := h.authService.Logout(userID, jti, expiresAt, req.RefreshToken); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Logged out successfully",
	})
}

// GetProfile returns the authenticated user's profile
// @Summary Get current user profile
// @Tags Profile
// @Produce json
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} errors.ErrorResponse "Missing or invalid token - AUTH_002"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) GetProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	user, err := h.authService.GetProfile(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toProfileResponse(user))
}

// UpdateProfile writes the editable profile fields
// @Summary Update profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.UserProfileResponse
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "Missing or invalid token - AUTH_002"
// @Security BearerAuth
// @Router /profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.authService.UpdateProfile(userID, req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, toProfileResponse(user))
}

func toProfileResponse(user *models.User) dto.UserProfileResponse {
	return dto.UserProfileResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		DisplayName: user.DisplayName,
		College:     user.College,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
