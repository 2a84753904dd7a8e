package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/clubsync/events-backend/internal/model"
)

// AccountRepository handles credential data access for both role
// namespaces. Admins and users live in separate tables, each with its own
// unique index on username.
type AccountRepository struct {
	db DB
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(db DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// tableFor resolves the role namespace to its backing table.
func tableFor(role model.Role) string {
	if role == model.RoleAdmin {
		return "admins"
	}
	return "users"
}

// GetByUsername retrieves an account by username within a role namespace.
// Returns ErrNotFound if no such account exists.
func (r *AccountRepository) GetByUsername(ctx context.Context, role model.Role, username string) (*model.Account, error) {
	a := &model.Account{Role: role}
	err := r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT id, username, password_hash, created_at FROM %s WHERE username = $1`, tableFor(role)),
		username,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

// Create inserts a new account into its role namespace. The uniqueness
// check and insert are atomic: a concurrent duplicate loses the race at
// the unique index and observes ErrDuplicateUsername.
func (r *AccountRepository) Create(ctx context.Context, a *model.Account) error {
	err := r.db.QueryRow(ctx,
		fmt.Sprintf(`INSERT INTO %s (username, password_hash) VALUES ($1, $2) RETURNING id, created_at`, tableFor(a.Role)),
		a.Username, a.PasswordHash,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}
