// Maintained by hand in the shape sqlc emits; keep in step with queries/payments.sql.

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createPayment = `-- name: CreatePayment :exec
INSERT INTO payments (id, booking_id, amount, method, reference, paid_at, recorded_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

type CreatePaymentParams struct {
	ID         uuid.UUID          `json:"id"`
	BookingID  uuid.UUID          `json:"booking_id"`
	Amount     pgtype.Numeric     `json:"amount"`
	Method     string             `json:"method"`
	Reference  pgtype.Text        `json:"reference"`
	PaidAt     pgtype.Timestamptz `json:"paid_at"`
	RecordedBy uuid.UUID          `json:"recorded_by"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreatePayment(ctx context.Context, db DBTX, arg CreatePaymentParams) error {
	_, err := db.Exec(ctx, createPayment,
		arg.ID,
		arg.BookingID,
		arg.Amount,
		arg.Method,
		arg.Reference,
		arg.PaidAt,
		arg.RecordedBy,
		arg.CreatedAt,
	)
	return err
}

const listPaymentsByBooking = `-- name: ListPaymentsByBooking :many
SELECT id, booking_id, amount, method, reference, paid_at, recorded_by, created_at
FROM payments
WHERE booking_id = $1
ORDER BY paid_at, id
`

func (q *Queries) ListPaymentsByBooking(ctx context.Context, db DBTX, bookingID uuid.UUID) ([]Payments, error) {
	rows, err := db.Query(ctx, listPaymentsByBooking, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Payments
	for rows.Next() {
		var i Payments
		if err := rows.Scan(
			&i.ID,
			&i.BookingID,
			&i.Amount,
			&i.Method,
			&i.Reference,
			&i.PaidAt,
			&i.RecordedBy,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const sumPaymentsByBooking = `-- name: SumPaymentsByBooking :one
SELECT COALESCE(SUM(amount), 0)::numeric AS paid
FROM payments
WHERE booking_id = $1
`

func (q *Queries) SumPaymentsByBooking(ctx context.Context, db DBTX, bookingID uuid.UUID) (pgtype.Numeric, error) {
	row := db.QueryRow(ctx, sumPaymentsByBooking, bookingID)
	var paid pgtype.Numeric
	err := row.Scan(&paid)
	return paid, err
}
