package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clubsync/events-backend/internal/model"
	"github.com/clubsync/events-backend/internal/password"
	"github.com/clubsync/events-backend/internal/repository"
)

// AccountStore is the credential persistence the service depends on.
// Satisfied by repository.AccountRepository; tests substitute an in-memory
// implementation instead of resetting a shared database.
type AccountStore interface {
	GetByUsername(ctx context.Context, role model.Role, username string) (*model.Account, error)
	Create(ctx context.Context, a *model.Account) error
}

// AccountService implements the registration and login pipeline shared by
// both role namespaces.
type AccountService struct {
	accounts AccountStore
	auth     *AuthService
	log      zerolog.Logger
}

// NewAccountService creates a new AccountService.
func NewAccountService(accounts AccountStore, auth *AuthService, log zerolog.Logger) *AccountService {
	return &AccountService{
		accounts: accounts,
		auth:     auth,
		log:      log.With().Str("component", "account_service").Logger(),
	}
}

// Register validates and creates an account in the given role namespace.
// The pipeline is: required fields → password policy → hash → insert.
// Policy violations surface as *password.PolicyError; a duplicate username
// surfaces as ErrUsernameTaken, including when a concurrent registration
// wins the race (the unique index decides, not the application).
func (s *AccountService) Register(ctx context.Context, role model.Role, username, plaintext string) (*model.Account, error) {
	if username == "" || plaintext == "" {
		return nil, ErrMissingCredentials
	}

	if err := password.Validate(plaintext); err != nil {
		return nil, err
	}

	hash, err := s.auth.HashPassword(plaintext)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &model.Account{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	s.log.Info().Str("username", username).Str("role", string(role)).Msg("Account registered")
	return account, nil
}

// Authenticate verifies credentials within a role namespace and returns the
// account for token issuance. Unknown usernames and wrong passwords both
// yield ErrInvalidCredentials so the response never reveals which field
// was wrong.
func (s *AccountService) Authenticate(ctx context.Context, role model.Role, username, plaintext string) (*model.Account, error) {
	if username == "" || plaintext == "" {
		return nil, ErrMissingCredentials
	}

	account, err := s.accounts.GetByUsername(ctx, role, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.auth.CheckPassword(account.PasswordHash, plaintext); err != nil {
		return nil, ErrInvalidCredentials
	}

	return account, nil
}
