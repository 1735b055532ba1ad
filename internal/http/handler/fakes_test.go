package handler

import (
	"context"
	"time"

	"records-service/internal/domain/account"
	"records-service/internal/domain/record"
	"records-service/internal/rbac"
	apperrors "records-service/pkg/errors"
)

type fakeAccountRepo struct {
	nextID   int64
	accounts map[int64]*account.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[int64]*account.Account)}
}

func (r *fakeAccountRepo) Create(_ context.Context, input account.CreateAccountInput) (*account.Account, error) {
	for _, a := range r.accounts {
		if a.Email == input.Email || a.Username == input.Username {
			return nil, apperrors.Conflict(msgEmailAlreadyExists)
		}
	}

	r.nextID++
	now := time.Now()
	a := &account.Account{
		ID:              r.nextID,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Username:        input.Username,
		Email:           input.Email,
		PasswordHash:    input.PasswordHash,
		Role:            input.Role,
		PermissionLevel: input.PermissionLevel,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	r.accounts[a.ID] = a

	clone := *a
	return &clone, nil
}

func (r *fakeAccountRepo) GetByID(_ context.Context, id int64) (*account.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, apperrors.NotFound(msgAccountNotFound)
	}
	clone := *a
	return &clone, nil
}

func (r *fakeAccountRepo) GetByEmail(_ context.Context, email string) (*account.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			clone := *a
			return &clone, nil
		}
	}
	return nil, apperrors.NotFound(msgAccountNotFound)
}

func (r *fakeAccountRepo) UpdatePermissionLevel(_ context.Context, id int64, level rbac.Level) (*account.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, apperrors.NotFound(msgAccountNotFound)
	}
	a.PermissionLevel = level
	a.UpdatedAt = time.Now()

	clone := *a
	return &clone, nil
}

type fakeRecordRepo struct {
	nextID  int64
	records map[int64]*record.Record
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[int64]*record.Record)}
}

func (r *fakeRecordRepo) List(_ context.Context) ([]*record.Record, error) {
	out := []*record.Record{}
	for id := int64(1); id <= r.nextID; id++ {
		if rec, ok := r.records[id]; ok {
			clone := *rec
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeRecordRepo) Create(_ context.Context, input record.CreateRecordInput) (*record.Record, error) {
	for _, rec := range r.records {
		if rec.Email == input.Email {
			return nil, apperrors.Conflict(msgRecordEmailExists)
		}
	}

	r.nextID++
	now := time.Now()
	rec := &record.Record{
		ID:        r.nextID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.records[rec.ID] = rec

	clone := *rec
	return &clone, nil
}

func (r *fakeRecordRepo) Update(_ context.Context, id int64, input record.UpdateRecordInput) (*record.Record, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, apperrors.NotFound(msgRecordNotFound)
	}

	for otherID, other := range r.records {
		if otherID != id && other.Email == input.Email {
			return nil, apperrors.Conflict(msgRecordEmailExists)
		}
	}

	rec.FirstName = input.FirstName
	rec.LastName = input.LastName
	rec.Email = input.Email
	rec.UpdatedAt = time.Now()

	clone := *rec
	return &clone, nil
}

func (r *fakeRecordRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.records[id]; !ok {
		return apperrors.NotFound(msgRecordNotFound)
	}
	delete(r.records, id)
	return nil
}
