package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finu/internal/dto"
	"finu/internal/models"
	"finu/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailAlreadyExists  = errors.New("email is already registered")
	ErrRefreshTokenInvalid = errors.New("refresh token is invalid or expired")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
)

// AuthServiceInterface defines authentication operations
type AuthServiceInterface interface {
	Register(req dto.RegisterRequest) (*models.User, *dto.TokenResponse, error)
	Login(req dto.LoginRequest) (*models.User, *dto.TokenResponse, error)
	Refresh(rawRefreshToken string) (*dto.TokenResponse, error)
	Logout(userID uuid.UUID, accessJTI string, accessExpiry time.Time, rawRefreshToken string) error
	GetProfile(userID uuid.UUID) (*models.User, error)
	UpdateProfile(userID uuid.UUID, req dto.UpdateProfileRequest) (*models.User, error)
}

// AuthService implements registration, login and token lifecycle
type AuthService struct {
	users         repositories.UserRepositoryInterface
	budgets       repositories.BudgetRepositoryInterface
	refreshTokens repositories.RefreshTokenRepositoryInterface
	blacklist     repositories.BlacklistedTokenRepositoryInterface
	passwords     PasswordServiceInterface
	tokens        TokenServiceInterface
	logger        *slog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	users repositories.UserRepositoryInterface,
	budgets repositories.BudgetRepositoryInterface,
	refreshTokens repositories.RefreshTokenRepositoryInterface,
	blacklist repositories.BlacklistedTokenRepositoryInterface,
	passwords PasswordServiceInterface,
	tokens TokenServiceInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		users:         users,
		budgets:       budgets,
		refreshTokens: refreshTokens,
		blacklist:     blacklist,
		passwords:     passwords,
		tokens:        tokens,
		logger:        logger,
	}
}

// Register creates a user with a hashed password and assigns the
// starter budget, then issues a token pair
func (s *AuthService) Register(req dto.RegisterRequest) (*models.User, *dto.TokenResponse, error) {
	email := normalizeEmail(req.Email)

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		DisplayName:  strings.TrimSpace(req.DisplayName),
		College:      strings.TrimSpace(req.College),
	}

	if err := s.users.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, nil, ErrEmailAlreadyExists
		}
		return nil, nil, fmt.Errorf("failed to register user: %w", err)
	}

	budget := models.DefaultBudget()
	budget.UserID = user.ID
	if err := s.budgets.Create(&budget); err != nil {
		// The account is usable without it; a budget gets created on first load
		s.logger.Error("failed to create starter budget",
			"user_id", user.ID,
			"error", err)
	}

	tokenResp, err := s.issueTokenPair(user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, tokenResp, nil
}

// Login verifies credentials and issues a token pair
func (s *AuthService) Login(req dto.LoginRequest) (*models.User, *dto.TokenResponse, error) {
	user, err := s.users.GetByEmail(normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.passwords.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.users.UpdateFields(user.ID, map[string]interface{}{"last_login_at": now}); err != nil {
		s.logger.Warn("failed to record last login", "user_id", user.ID, "error", err)
	}
	user.LastLoginAt = &now

	tokenResp, err := s.issueTokenPair(user)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return user, tokenResp, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a
// fresh pair is issued
func (s *AuthService) Refresh(rawRefreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.tokens.ValidateToken(rawRefreshToken, TokenTypeRefresh)
	if err != nil {
		return nil, ErrRefreshTokenInvalid
	}

	stored, err := s.refreshTokens.GetByTokenHash(s.tokens.HashToken(rawRefreshToken))
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, ErrRefreshTokenInvalid
		}
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if !stored.IsValid() {
		return nil, ErrRefreshTokenRevoked
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrRefreshTokenInvalid
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, ErrRefreshTokenInvalid
	}

	if err := s.refreshTokens.Revoke(stored.TokenHash); err != nil {
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return s.issueTokenPair(user)
}

// Logout blacklists the presented access token and revokes the refresh
// token if one was supplied
func (s *AuthService) Logout(userID uuid.UUID, accessJTI string, accessExpiry time.Time, rawRefreshToken string) error {
	if accessJTI != "" {
		entry := &models.BlacklistedToken{
			UserID:    userID,
			JTI:       accessJTI,
			ExpiresAt: accessExpiry,
		}
		if err := s.blacklist.Create(entry); err != nil {
			return fmt.Errorf("failed to blacklist access token: %w", err)
		}
	}

	if rawRefreshToken != "" {
		if err := s.refreshTokens.Revoke(s.tokens.HashToken(rawRefreshToken)); err != nil &&
			!errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
	}

	s.logger.Info("user logged out", "user_id", userID)
	return nil
}

// GetProfile loads the authenticated user's profile
func (s *AuthService) GetProfile(userID uuid.UUID) (*models.User, error) {
	return s.users.GetByID(userID)
}

// UpdateProfile writes the editable profile fields
func (s *AuthService) UpdateProfile(userID uuid.UUID, req dto.UpdateProfileRequest) (*models.User, error) {
	fields := map[string]interface{}{
		"display_name": strings.TrimSpace(req.DisplayName),
		"college":      strings.TrimSpace(req.College),
		"updated_at":   time.Now().UTC(),
	}

	if err := s.users.UpdateFields(userID, fields); err != nil {
		return nil, err
	}

	return s.users.GetByID(userID)
}

func (s *AuthService) issueTokenPair(user *models.User) (*dto.TokenResponse, error) {
	accessToken, accessExpiry, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExpiry, err := s.tokens.GenerateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	stored := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: s.tokens.HashToken(refreshToken),
		ExpiresAt: refreshExpiry,
	}
	if err := s.refreshTokens.Create(stored); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    accessExpiry,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
