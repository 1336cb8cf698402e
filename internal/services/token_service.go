package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"finu/internal/config"
	"finu/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token has expired")
	ErrWrongTokenType    = errors.New("wrong token type")
	ErrMissingAuthHeader = errors.New("missing authorization header")
)

// TokenServiceInterface defines JWT issuing and validation operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(user *models.User) (string, time.Time, error)
	ValidateToken(tokenString, expectedType string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	HashToken(token string) string
}

// TokenService issues and validates RS256-signed JWTs
type TokenService struct {
	cfg config.JWTConfig
}

// NewTokenService creates a new token service
func NewTokenService(cfg config.JWTConfig) TokenServiceInterface {
	return &TokenService{cfg: cfg}
}

// GenerateAccessToken issues a short-lived access token for a user
func (s *TokenService) GenerateAccessToken(user *models.User) (string, time.Time, error) {
	return s.generateToken(user, TokenTypeAccess, s.cfg.AccessTokenDuration)
}

// GenerateRefreshToken issues a long-lived refresh token for a user
func (s *TokenService) GenerateRefreshToken(user *models.User) (string, time.Time, error) {
	return s.generateToken(user, TokenTypeRefresh, s.cfg.RefreshTokenDuration)
}

func (s *TokenService) generateToken(user *models.User, tokenType string, duration time.Duration) (string, time.Time, error) {
	if user == nil {
		return "", time.Time{}, errors.New("user cannot be nil")
	}

	now := time.Now().UTC()
	expiresAt := now.Add(duration)

	claims := models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:    user.ID.String(),
		Email:     user.Email,
		TokenType: tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(s.cfg.PrivateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}

	return signed, expiresAt, nil
}

// ValidateToken parses and verifies a token, checking signature, expiry,
// issuer and token type
func (s *TokenService) ValidateToken(tokenString, expectedType string) (*models.CustomClaims, error) {
	claims := &models.CustomClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.cfg.PublicKey, nil
	}, jwt.WithIssuer(s.cfg.Issuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != expectedType {
		return nil, ErrWrongTokenType
	}

	return claims, nil
}

// ExtractTokenFromHeader pulls the bearer token out of an Authorization header
func (s *TokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrMissingAuthHeader
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}

// HashToken returns the hex SHA-256 digest of a token, used to store
// refresh tokens without keeping the raw value
func (s *TokenService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
