package ports

import (
	"context"

	"github.com/facilitydesk/core/internal/domain/entities"
)

// AuthService interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, creds entities.Credentials) (*TokenResponse, error)
	IssueToken(claims map[string]interface{}) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// CatalogService interface for the read-only collections
type CatalogService interface {
	ListServices(ctx context.Context) ([]entities.Service, error)
	ListChecklists(ctx context.Context) ([]entities.Checklist, error)
	ListTasks(ctx context.Context) ([]entities.Task, error)
}

// LoginRequest is the login body. Fields are pointers so that a missing
// field fails validation while an empty string reaches the credential check.
type LoginRequest struct {
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// Credentials converts a validated request into domain credentials
func (r LoginRequest) Credentials() entities.Credentials {
	var creds entities.Credentials
	if r.Email != nil {
		creds.Email = *r.Email
	}
	if r.Password != nil {
		creds.Password = *r.Password
	}
	return creds
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Claims holds the verified contents of an access token
type Claims struct {
	Subject string
	Raw     map[string]interface{}
}
