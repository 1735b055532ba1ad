package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"records-service/internal/domain/account"
	"records-service/internal/rbac"
	apperrors "records-service/pkg/errors"
)

type AccountRepository struct {
	db *DB
}

func NewAccountRepository(db *DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, input account.CreateAccountInput) (*account.Account, error) {
	query := `
		INSERT INTO accounts (first_name, last_name, username, email, password_hash, role, permission_level)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, first_name, last_name, username, email, password_hash, role, permission_level, created_at, updated_at
	`

	a := &account.Account{}
	err := r.db.Pool.QueryRow(ctx, query,
		input.FirstName,
		input.LastName,
		input.Username,
		input.Email,
		input.PasswordHash,
		input.Role,
		input.PermissionLevel,
	).Scan(
		&a.ID,
		&a.FirstName,
		&a.LastName,
		&a.Username,
		&a.Email,
		&a.PasswordHash,
		&a.Role,
		&a.PermissionLevel,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict(errAccountExists)
		}
		return nil, errFailedCreateAccount(err)
	}

	return a, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*account.Account, error) {
	query := `
		SELECT id, first_name, last_name, username, email, password_hash, role, permission_level, created_at, updated_at
		FROM accounts
		WHERE id = $1
	`

	return r.queryOne(ctx, query, id)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	query := `
		SELECT id, first_name, last_name, username, email, password_hash, role, permission_level, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`

	return r.queryOne(ctx, query, email)
}

// UpdatePermissionLevel overwrites the stored level unconditionally;
// concurrent changes are last-writer-wins at the row level.
func (r *AccountRepository) UpdatePermissionLevel(ctx context.Context, id int64, level rbac.Level) (*account.Account, error) {
	query := `
		UPDATE accounts
		SET permission_level = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, first_name, last_name, username, email, password_hash, role, permission_level, created_at, updated_at
	`

	return r.queryOne(ctx, query, id, level)
}

func (r *AccountRepository) queryOne(ctx context.Context, query string, args ...any) (*account.Account, error) {
	a := &account.Account{}
	err := r.db.Pool.QueryRow(ctx, query, args...).Scan(
		&a.ID,
		&a.FirstName,
		&a.LastName,
		&a.Username,
		&a.Email,
		&a.PasswordHash,
		&a.Role,
		&a.PermissionLevel,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errAccountNotFound)
		}
		return nil, errFailedGetAccount(err)
	}

	return a, nil
}
