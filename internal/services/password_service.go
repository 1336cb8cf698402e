package services

import (
	"errors"
	"fmt"

	"finu/internal/config"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPasswordMismatch = errors.New("password does not match")
)

// PasswordServiceInterface defines password hashing operations
type PasswordServiceInterface interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hash, password string) error
	ValidatePasswordStrength(password string) error
}

// PasswordService handles password hashing and verification with bcrypt
type PasswordService struct {
	cost      int
	minLength int
}

// NewPasswordService creates a new password service
func NewPasswordService(cfg config.SecurityConfig) PasswordServiceInterface {
	return &PasswordService{
		cost:      cfg.BCryptCost,
		minLength: cfg.PasswordMinLength,
	}
}

// HashPassword hashes a password after checking its strength
func (s *PasswordService) HashPassword(password string) (string, error) {
	if err := s.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword compares a bcrypt hash against a candidate password
func (s *PasswordService) VerifyPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

// ValidatePasswordStrength checks the configured minimum length
func (s *PasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < s.minLength {
		return ErrPasswordTooShort
	}
	return nil
}
