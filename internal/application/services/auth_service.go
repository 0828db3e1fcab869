package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/facilitydesk/core/internal/domain/entities"
	"github.com/facilitydesk/core/internal/infrastructure/config"
	"github.com/facilitydesk/core/internal/infrastructure/logger"
	"github.com/facilitydesk/core/internal/ports"
)

// TokenTypeBearer is the token_type reported with every issued token
const TokenTypeBearer = "bearer"

// AuthService handles authentication operations
type AuthService struct {
	accountRepo ports.AccountRepository
	method      jwt.SigningMethod
	secret      []byte
	logger      *logger.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

// NewAuthService creates a new auth service
func NewAuthService(accountRepo ports.AccountRepository, jwtConfig config.JWTConfig, logger *logger.Logger) (*AuthService, error) {
	method, ok := jwt.GetSigningMethod(jwtConfig.Algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q", entities.ErrUnsupportedAlgorithm, jwtConfig.Algorithm)
	}

	return &AuthService{
		accountRepo: accountRepo,
		method:      method,
		secret:      []byte(jwtConfig.Secret),
		logger:      logger.WithComponent("auth"),
	}, nil
}

// Login checks the credentials against the configured account and returns
// an access token whose subject is the email
func (s *AuthService) Login(ctx context.Context, creds entities.Credentials) (*ports.TokenResponse, error) {
	account, err := s.accountRepo.GetByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, entities.ErrAccountNotFound) {
			s.logger.Warnw("Login attempt with unknown email", "email", creds.Email)
			return nil, entities.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	if !s.passwordMatches(account, creds.Password) {
		s.logger.Warnw("Login attempt with invalid password", "email", creds.Email)
		return nil, entities.ErrInvalidCredentials
	}

	accessToken, err := s.IssueToken(map[string]interface{}{"sub": account.Email})
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.logger.Infow("User logged in successfully", "email", account.Email)

	return &ports.TokenResponse{
		AccessToken: accessToken,
		TokenType:   TokenTypeBearer,
	}, nil
}

// IssueToken signs the claims as a compact JWS. No iat, exp or jti is added,
// so the same claims and secret always yield the same token.
func (s *AuthService) IssueToken(claims map[string]interface{}) (string, error) {
	token := jwt.NewWithClaims(s.method, jwt.MapClaims(claims))
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entities.ErrTokenEncoding, err)
	}

	return tokenString, nil
}

// ValidateToken verifies the signature and returns the token's claims
func (s *AuthService) ValidateToken(tokenString string) (*ports.Claims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{s.method.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, entities.ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrInvalidToken, err)
	}

	return &ports.Claims{
		Subject: subject,
		Raw:     claims,
	}, nil
}

// HashPassword returns a bcrypt hash suitable for AUTH_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

func (s *AuthService) passwordMatches(account *entities.Account, password string) bool {
	if account.HasPasswordHash() {
		return bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) == nil
	}

	return subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) == 1
}
