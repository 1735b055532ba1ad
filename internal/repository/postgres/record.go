package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"records-service/internal/domain/record"
	apperrors "records-service/pkg/errors"
)

type RecordRepository struct {
	db *DB
}

func NewRecordRepository(db *DB) *RecordRepository {
	return &RecordRepository{db: db}
}

func (r *RecordRepository) List(ctx context.Context) ([]*record.Record, error) {
	query := `
		SELECT id, first_name, last_name, email, created_at, updated_at
		FROM records
		ORDER BY id
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, errFailedListRecords(err)
	}
	defer rows.Close()

	records := []*record.Record{}
	for rows.Next() {
		rec := &record.Record{}
		if err := rows.Scan(
			&rec.ID,
			&rec.FirstName,
			&rec.LastName,
			&rec.Email,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		); err != nil {
			return nil, errFailedScanRecord(err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, errIterateRecords(err)
	}

	return records, nil
}

func (r *RecordRepository) Create(ctx context.Context, input record.CreateRecordInput) (*record.Record, error) {
	query := `
		INSERT INTO records (first_name, last_name, email)
		VALUES ($1, $2, $3)
		RETURNING id, first_name, last_name, email, created_at, updated_at
	`

	rec := &record.Record{}
	err := r.db.Pool.QueryRow(ctx, query, input.FirstName, input.LastName, input.Email).Scan(
		&rec.ID,
		&rec.FirstName,
		&rec.LastName,
		&rec.Email,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict(errRecordExists)
		}
		return nil, errFailedCreateRecord(err)
	}

	return rec, nil
}

func (r *RecordRepository) Update(ctx context.Context, id int64, input record.UpdateRecordInput) (*record.Record, error) {
	query := `
		UPDATE records
		SET first_name = $2, last_name = $3, email = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, first_name, last_name, email, created_at, updated_at
	`

	rec := &record.Record{}
	err := r.db.Pool.QueryRow(ctx, query, id, input.FirstName, input.LastName, input.Email).Scan(
		&rec.ID,
		&rec.FirstName,
		&rec.LastName,
		&rec.Email,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NotFound(errRecordNotFound)
		}
		if isUniqueViolation(err) {
			return nil, apperrors.Conflict(errRecordExists)
		}
		return nil, errFailedUpdateRecord(err)
	}

	return rec, nil
}

func (r *RecordRepository) Delete(ctx context.Context, id int64) error {
	query := "DELETE FROM records WHERE id = $1"

	result, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return errFailedDeleteRecord(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errRecordNotFound)
	}

	return nil
}
