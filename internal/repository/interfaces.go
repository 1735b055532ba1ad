package repository

import (
	"context"

	"records-service/internal/domain/account"
	"records-service/internal/domain/record"
	"records-service/internal/rbac"
)

// Repository interfaces consumed by the handlers and middleware.
// Concrete implementations live in the postgres subpackage.

type AccountRepository interface {
	Create(ctx context.Context, input account.CreateAccountInput) (*account.Account, error)
	GetByID(ctx context.Context, id int64) (*account.Account, error)
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
	UpdatePermissionLevel(ctx context.Context, id int64, level rbac.Level) (*account.Account, error)
}

type RecordRepository interface {
	List(ctx context.Context) ([]*record.Record, error)
	Create(ctx context.Context, input record.CreateRecordInput) (*record.Record, error)
	Update(ctx context.Context, id int64, input record.UpdateRecordInput) (*record.Record, error)
	Delete(ctx context.Context, id int64) error
}
