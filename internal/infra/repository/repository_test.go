//go:build unit

package repository_test

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}

var (
	errUniqueViolation = &pgconn.PgError{Code: "23505", ConstraintName: "coupons_code_key", Message: "duplicate key value violates unique constraint"}
	errFKViolation     = &pgconn.PgError{Code: "23503", ConstraintName: "bookings_property_id_fkey", Message: "violates foreign key constraint"}
)
