package services

import (
	"testing"
	"time"

	"finu/internal/config"
	"finu/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TokenServiceTestSuite struct {
	suite.Suite
	service TokenServiceInterface
	user    *models.User
}

func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) SetupTest() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.service = NewTokenService(config.JWTConfig{
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 7 * 24 * time.Hour,
		PrivateKey:           privateKey,
		PublicKey:            publicKey,
		Issuer:               "finu-api",
	})

	s.user = &models.User{
		ID:    uuid.New(),
		Email: "student@example.edu",
	}
}

func (s *TokenServiceTestSuite) TestGenerateAndValidateAccessToken() {
	token, expiresAt, err := s.service.GenerateAccessToken(s.user)

	s.Require().NoError(err)
	s.NotEmpty(token)
	s.True(expiresAt.After(time.Now()))

	claims, err := s.service.ValidateToken(token, TokenTypeAccess)
	s.Require().NoError(err)
	s.Equal(s.user.ID.String(), claims.UserID)
	s.Equal(s.user.Email, claims.Email)
	s.Equal(TokenTypeAccess, claims.TokenType)
	s.NotEmpty(claims.ID, "token must carry a JTI")
}

func (s *TokenServiceTestSuite) TestValidateToken_WrongType() {
	refreshToken, _, err := s.service.GenerateRefreshToken(s.user)
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(refreshToken, TokenTypeAccess)
	s.ErrorIs(err, ErrWrongTokenType)
}

func (s *TokenServiceTestSuite) TestValidateToken_Garbage() {
	_, err := s.service.ValidateToken("not.a.token", TokenTypeAccess)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestValidateToken_Expired() {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	expired := NewTokenService(config.JWTConfig{
		AccessTokenDuration: -time.Minute,
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "finu-api",
	})

	token, _, err := expired.GenerateAccessToken(s.user)
	s.Require().NoError(err)

	_, err = expired.ValidateToken(token, TokenTypeAccess)
	s.ErrorIs(err, ErrExpiredToken)
}

func (s *TokenServiceTestSuite) TestValidateToken_SignedByDifferentKey() {
	otherPrivate, otherPublic, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	other := NewTokenService(config.JWTConfig{
		AccessTokenDuration: time.Hour,
		PrivateKey:          otherPrivate,
		PublicKey:           otherPublic,
		Issuer:              "finu-api",
	})

	token, _, err := other.GenerateAccessToken(s.user)
	s.Require().NoError(err)

	_, err = s.service.ValidateToken(token, TokenTypeAccess)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	testCases := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"lowercase scheme", "bearer abc.def.ghi", "abc.def.ghi", nil},
		{"missing header", "", "", ErrMissingAuthHeader},
		{"wrong scheme", "Basic dXNlcjpwYXNz", "", ErrInvalidToken},
		{"no token", "Bearer ", "", ErrInvalidToken},
		{"scheme only", "Bearer", "", ErrInvalidToken},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			token, err := s.service.ExtractTokenFromHeader(tc.header)
			if tc.wantErr != nil {
				s.ErrorIs(err, tc.wantErr)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.want, token)
		})
	}
}

func (s *TokenServiceTestSuite) TestHashToken_Deterministic() {
	h1 := s.service.HashToken("some-token")
	h2 := s.service.HashToken("some-token")
	h3 := s.service.HashToken("other-token")

	s.Equal(h1, h2)
	s.NotEqual(h1, h3)
	s.Len(h1, 64, "hex SHA-256 digest")
}
