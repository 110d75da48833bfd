// Maintained by hand in the shape sqlc emits; keep in step with queries/cancellations.sql.

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createCancellation = `-- name: CreateCancellation :exec
INSERT INTO cancellations (id, booking_id, reason, refund_amount, cancelled_by, cancelled_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type CreateCancellationParams struct {
	ID           uuid.UUID          `json:"id"`
	BookingID    uuid.UUID          `json:"booking_id"`
	Reason       string             `json:"reason"`
	RefundAmount pgtype.Numeric     `json:"refund_amount"`
	CancelledBy  uuid.UUID          `json:"cancelled_by"`
	CancelledAt  pgtype.Timestamptz `json:"cancelled_at"`
}

func (q *Queries) CreateCancellation(ctx context.Context, db DBTX, arg CreateCancellationParams) error {
	_, err := db.Exec(ctx, createCancellation,
		arg.ID,
		arg.BookingID,
		arg.Reason,
		arg.RefundAmount,
		arg.CancelledBy,
		arg.CancelledAt,
	)
	return err
}

const listCancellations = `-- name: ListCancellations :many
SELECT cn.id, cn.booking_id, b.property_id, p.name AS property_name, cn.reason, cn.refund_amount,
       cn.cancelled_by, cn.cancelled_at
FROM cancellations cn
JOIN bookings b ON b.id = cn.booking_id
JOIN properties p ON p.id = b.property_id
WHERE ($1::uuid IS NULL OR b.property_id = $1::uuid)
  AND ($2::timestamptz IS NULL
       OR (cn.cancelled_at, cn.id) < ($2::timestamptz, $3::uuid))
ORDER BY cn.cancelled_at DESC, cn.id DESC
LIMIT $4
`

type ListCancellationsParams struct {
	PropertyID      pgtype.UUID        `json:"property_id"`
	CursorCreatedAt pgtype.Timestamptz `json:"cursor_created_at"`
	CursorID        pgtype.UUID        `json:"cursor_id"`
	Limit           int32              `json:"limit"`
}

type ListCancellationsRow struct {
	ID           uuid.UUID          `json:"id"`
	BookingID    uuid.UUID          `json:"booking_id"`
	PropertyID   uuid.UUID          `json:"property_id"`
	PropertyName string             `json:"property_name"`
	Reason       string             `json:"reason"`
	RefundAmount pgtype.Numeric     `json:"refund_amount"`
	CancelledBy  uuid.UUID          `json:"cancelled_by"`
	CancelledAt  pgtype.Timestamptz `json:"cancelled_at"`
}

func (q *Queries) ListCancellations(ctx context.Context, db DBTX, arg ListCancellationsParams) ([]ListCancellationsRow, error) {
	rows, err := db.Query(ctx, listCancellations,
		arg.PropertyID,
		arg.CursorCreatedAt,
		arg.CursorID,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListCancellationsRow
	for rows.Next() {
		var i ListCancellationsRow
		if err := rows.Scan(
			&i.ID,
			&i.BookingID,
			&i.PropertyID,
			&i.PropertyName,
			&i.Reason,
			&i.RefundAmount,
			&i.CancelledBy,
			&i.CancelledAt,
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
