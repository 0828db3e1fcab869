package repository

import (
	"context"

	"github.com/facilitydesk/core/internal/domain/entities"
	"github.com/facilitydesk/core/internal/infrastructure/config"
	"github.com/facilitydesk/core/internal/ports"
)

// AccountRepositoryImpl serves the single configured login account
type AccountRepositoryImpl struct {
	account entities.Account
}

// NewAccountRepository creates an account repository from auth configuration
func NewAccountRepository(cfg config.AuthConfig) ports.AccountRepository {
	return &AccountRepositoryImpl{
		account: entities.Account{
			Email:        cfg.Email,
			Password:     cfg.Password,
			PasswordHash: cfg.PasswordHash,
		},
	}
}

// GetByEmail matches the email exactly; no case folding or trimming
func (r *AccountRepositoryImpl) GetByEmail(ctx context.Context, email string) (*entities.Account, error) {
	if email != r.account.Email {
		return nil, entities.ErrAccountNotFound
	}

	account := r.account
	return &account, nil
}
