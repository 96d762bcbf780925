package record

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"user-records-api/internal/domain/record"
	"user-records-api/internal/infrastructure/db/postgres"
)

var ErrEmailAlreadyExists = errors.New("email already exists")

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) record.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchRecords(ctx context.Context) (record.UserRecords, error) {
	rows, err := r.db.Query(ctx, SelectRecords)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Records
	for rows.Next() {
		u := new(Record)

		if err = rows.Scan(
			&u.ID,
			&u.FirstName,
			&u.LastName,
			&u.Email,
			&u.Phone,
			&u.Address,
			&u.Image,
			&u.GovtID,

			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, err
		}

		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&us), nil
}

func (r *Repository) FetchRecordByID(ctx context.Context, id record.ID) (*record.UserRecord, error) {
	u := new(Record)
	err := r.db.QueryRow(ctx, SelectRecordByID, uint64(id)).Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Phone,
		&u.Address,
		&u.Image,
		&u.GovtID,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) CreateRecord(ctx context.Context, req record.UserRecord) (*record.UserRecord, error) {
	u := new(Record)

	err := r.db.QueryRow(
		ctx,
		InsertRecord,
		req.FirstName, req.LastName, req.Email, req.Phone, req.Address, req.Image, req.GovtID,
	).Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Phone,
		&u.Address,
		&u.Image,
		&u.GovtID,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) UpdateRecord(ctx context.Context, id record.ID, patch record.Patch) (*record.UserRecord, error) {
	u := new(Record)

	err := r.db.QueryRow(ctx, UpdateRecordByID,
		patch.FirstName, patch.LastName, patch.Email, patch.Phone, patch.Address, patch.Image, patch.GovtID, uint64(id),
	).Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Phone,
		&u.Address,
		&u.Image,
		&u.GovtID,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) DeleteRecord(ctx context.Context, id record.ID) (*record.UserRecord, error) {
	u := new(Record)
	err := r.db.QueryRow(ctx, DeleteRecordByID, uint64(id)).Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Phone,
		&u.Address,
		&u.Image,
		&u.GovtID,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}
