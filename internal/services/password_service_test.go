package services

import (
	"testing"

	"finu/internal/config"

	"github.com/stretchr/testify/suite"
)

type PasswordServiceTestSuite struct {
	suite.Suite
	service PasswordServiceInterface
}

func TestPasswordServiceSuite(t *testing.T) {
	suite.Run(t, new(PasswordServiceTestSuite))
}

func (s *PasswordServiceTestSuite) SetupTest() {
	// Minimum bcrypt cost keeps the suite fast
	s.service = NewPasswordService(config.SecurityConfig{
		BCryptCost:        4,
		PasswordMinLength: 8,
	})
}

func (s *PasswordServiceTestSuite) TestHashAndVerify() {
	hash, err := s.service.HashPassword("correct horse battery")
	s.Require().NoError(err)
	s.NotEqual("correct horse battery", hash)

	s.NoError(s.service.VerifyPassword(hash, "correct horse battery"))
	s.ErrorIs(s.service.VerifyPassword(hash, "wrong password"), ErrPasswordMismatch)
}

func (s *PasswordServiceTestSuite) TestHashPassword_TooShort() {
	_, err := s.service.HashPassword("short")
	s.ErrorIs(err, ErrPasswordTooShort)
}

func (s *PasswordServiceTestSuite) TestHashPassword_ExactMinimumLength() {
	_, err := s.service.HashPassword("12345678")
	s.NoError(err)
}

func (s *PasswordServiceTestSuite) TestHashPassword_UniqueSalts() {
	h1, err := s.service.HashPassword("same password")
	s.Require().NoError(err)
	h2, err := s.service.HashPassword("same password")
	s.Require().NoError(err)

	s.NotEqual(h1, h2, "bcrypt salts must differ")
}
