package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrNotFound = errors.New("not found")
var ErrConflict = errors.New("already exists")

// ErrVehicleNotFound reports a booking write that referenced a vehicle id the
// catalog does not contain. Referential integrity is enforced by the store,
// not by the handler.
var ErrVehicleNotFound = errors.New("vehicle does not exist")

type DBConnection interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, optionsAndArgs ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, optionsAndArgs ...any) pgx.Row
}

type Repository struct {
	DBConnection
}

func NewRepository(conn DBConnection) Repository {
	return Repository{conn}
}

func (repo Repository) WithinTransaction(ctx context.Context, op func(pgx.Tx) error) (err error) {
	tx, err := repo.DBConnection.Begin(ctx)
	if err != nil {
		return
	}
	defer tx.Rollback(ctx)
	err = op(tx)
	if err != nil {
		return
	}
	err = tx.Commit(ctx)
	if err != nil {
		return
	}
	return
}
