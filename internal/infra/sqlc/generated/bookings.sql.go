// Maintained by hand in the shape sqlc emits; keep in step with queries/bookings.sql.

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createBooking = `-- name: CreateBooking :exec
INSERT INTO bookings (id, property_id, customer_id, coupon_id, checkin_date, checkout_date, adult_count,
                      children_count, infant_count, rental_charge, extra_guest_charge, discount_amount,
                      total_amount, status, notes, created_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
`

type CreateBookingParams struct {
	ID               uuid.UUID          `json:"id"`
	PropertyID       uuid.UUID          `json:"property_id"`
	CustomerID       uuid.UUID          `json:"customer_id"`
	CouponID         pgtype.UUID        `json:"coupon_id"`
	CheckinDate      pgtype.Date        `json:"checkin_date"`
	CheckoutDate     pgtype.Date        `json:"checkout_date"`
	AdultCount       int32              `json:"adult_count"`
	ChildrenCount    int32              `json:"children_count"`
	InfantCount      int32              `json:"infant_count"`
	RentalCharge     pgtype.Numeric     `json:"rental_charge"`
	ExtraGuestCharge pgtype.Numeric     `json:"extra_guest_charge"`
	DiscountAmount   pgtype.Numeric     `json:"discount_amount"`
	TotalAmount      pgtype.Numeric     `json:"total_amount"`
	Status           string             `json:"status"`
	Notes            pgtype.Text        `json:"notes"`
	CreatedBy        uuid.UUID          `json:"created_by"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID,
		arg.PropertyID,
		arg.CustomerID,
		arg.CouponID,
		arg.CheckinDate,
		arg.CheckoutDate,
		arg.AdultCount,
		arg.ChildrenCount,
		arg.InfantCount,
		arg.RentalCharge,
		arg.ExtraGuestCharge,
		arg.DiscountAmount,
		arg.TotalAmount,
		arg.Status,
		arg.Notes,
		arg.CreatedBy,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const getBookingForUpdate = `-- name: GetBookingForUpdate :one
SELECT id, property_id, customer_id, coupon_id, checkin_date, checkout_date, adult_count, children_count,
       infant_count, rental_charge, extra_guest_charge, discount_amount, total_amount, status, notes,
       created_by, created_at, updated_at
FROM bookings
WHERE id = $1
FOR UPDATE
`

func (q *Queries) GetBookingForUpdate(ctx context.Context, db DBTX, id uuid.UUID) (Bookings, error) {
	row := db.QueryRow(ctx, getBookingForUpdate, id)
	var i Bookings
	err := row.Scan(
		&i.ID,
		&i.PropertyID,
		&i.CustomerID,
		&i.CouponID,
		&i.CheckinDate,
		&i.CheckoutDate,
		&i.AdultCount,
		&i.ChildrenCount,
		&i.InfantCount,
		&i.RentalCharge,
		&i.ExtraGuestCharge,
		&i.DiscountAmount,
		&i.TotalAmount,
		&i.Status,
		&i.Notes,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getBookingViewByID = `-- name: GetBookingViewByID :one
SELECT b.id, b.property_id, p.name AS property_name, b.customer_id, c.name AS customer_name,
       c.email AS customer_email, b.coupon_id, cp.code AS coupon_code, b.checkin_date, b.checkout_date,
       b.adult_count, b.children_count, b.infant_count, b.rental_charge, b.extra_guest_charge,
       b.discount_amount, b.total_amount, b.status, b.notes, b.created_by, b.created_at, b.updated_at,
       COALESCE((SELECT SUM(pm.amount) FROM payments pm WHERE pm.booking_id = b.id), 0)::numeric AS paid_amount
FROM bookings b
JOIN properties p ON p.id = b.property_id
JOIN customers c ON c.id = b.customer_id
LEFT JOIN coupons cp ON cp.id = b.coupon_id
WHERE b.id = $1
`

type GetBookingViewByIDRow struct {
	ID               uuid.UUID          `json:"id"`
	PropertyID       uuid.UUID          `json:"property_id"`
	PropertyName     string             `json:"property_name"`
	CustomerID       uuid.UUID          `json:"customer_id"`
	CustomerName     string             `json:"customer_name"`
	CustomerEmail    string             `json:"customer_email"`
	CouponID         pgtype.UUID        `json:"coupon_id"`
	CouponCode       pgtype.Text        `json:"coupon_code"`
	CheckinDate      pgtype.Date        `json:"checkin_date"`
	CheckoutDate     pgtype.Date        `json:"checkout_date"`
	AdultCount       int32              `json:"adult_count"`
	ChildrenCount    int32              `json:"children_count"`
	InfantCount      int32              `json:"infant_count"`
	RentalCharge     pgtype.Numeric     `json:"rental_charge"`
	ExtraGuestCharge pgtype.Numeric     `json:"extra_guest_charge"`
	DiscountAmount   pgtype.Numeric     `json:"discount_amount"`
	TotalAmount      pgtype.Numeric     `json:"total_amount"`
	Status           string             `json:"status"`
	Notes            pgtype.Text        `json:"notes"`
	CreatedBy        uuid.UUID          `json:"created_by"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
	PaidAmount       pgtype.Numeric     `json:"paid_amount"`
}

func (q *Queries) GetBookingViewByID(ctx context.Context, db DBTX, id uuid.UUID) (GetBookingViewByIDRow, error) {
	row := db.QueryRow(ctx, getBookingViewByID, id)
	var i GetBookingViewByIDRow
	err := row.Scan(
		&i.ID,
		&i.PropertyID,
		&i.PropertyName,
		&i.CustomerID,
		&i.CustomerName,
		&i.CustomerEmail,
		&i.CouponID,
		&i.CouponCode,
		&i.CheckinDate,
		&i.CheckoutDate,
		&i.AdultCount,
		&i.ChildrenCount,
		&i.InfantCount,
		&i.RentalCharge,
		&i.ExtraGuestCharge,
		&i.DiscountAmount,
		&i.TotalAmount,
		&i.Status,
		&i.Notes,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.PaidAmount,
	)
	return i, err
}

const listBookings = `-- name: ListBookings :many
SELECT b.id, b.property_id, p.name AS property_name, b.customer_id, c.name AS customer_name,
       b.checkin_date, b.checkout_date, b.total_amount, b.status, b.created_at
FROM bookings b
JOIN properties p ON p.id = b.property_id
JOIN customers c ON c.id = b.customer_id
WHERE ($1::uuid IS NULL OR b.property_id = $1::uuid)
  AND ($2::uuid IS NULL OR b.customer_id = $2::uuid)
  AND ($3::text IS NULL OR b.status = $3::text)
  AND ($4::date IS NULL OR b.checkin_date >= $4::date)
  AND ($5::date IS NULL OR b.checkin_date < $5::date)
  AND ($6::timestamptz IS NULL
       OR (b.created_at, b.id) < ($6::timestamptz, $7::uuid))
ORDER BY b.created_at DESC, b.id DESC
LIMIT $8
`

type ListBookingsParams struct {
	PropertyID      pgtype.UUID        `json:"property_id"`
	CustomerID      pgtype.UUID        `json:"customer_id"`
	Status          pgtype.Text        `json:"status"`
	CheckinFrom     pgtype.Date        `json:"checkin_from"`
	CheckinTo       pgtype.Date        `json:"checkin_to"`
	CursorCreatedAt pgtype.Timestamptz `json:"cursor_created_at"`
	CursorID        pgtype.UUID        `json:"cursor_id"`
	Limit           int32              `json:"limit"`
}

type ListBookingsRow struct {
	ID           uuid.UUID          `json:"id"`
	PropertyID   uuid.UUID          `json:"property_id"`
	PropertyName string             `json:"property_name"`
	CustomerID   uuid.UUID          `json:"customer_id"`
	CustomerName string             `json:"customer_name"`
	CheckinDate  pgtype.Date        `json:"checkin_date"`
	CheckoutDate pgtype.Date        `json:"checkout_date"`
	TotalAmount  pgtype.Numeric     `json:"total_amount"`
	Status       string             `json:"status"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) ListBookings(ctx context.Context, db DBTX, arg ListBookingsParams) ([]ListBookingsRow, error) {
	rows, err := db.Query(ctx, listBookings,
		arg.PropertyID,
		arg.CustomerID,
		arg.Status,
		arg.CheckinFrom,
		arg.CheckinTo,
		arg.CursorCreatedAt,
		arg.CursorID,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListBookingsRow
	for rows.Next() {
		var i ListBookingsRow
		if err := rows.Scan(
			&i.ID,
			&i.PropertyID,
			&i.PropertyName,
			&i.CustomerID,
			&i.CustomerName,
			&i.CheckinDate,
			&i.CheckoutDate,
			&i.TotalAmount,
			&i.Status,
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

const updateBookingStatus = `-- name: UpdateBookingStatus :execrows
UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1
`

type UpdateBookingStatusParams struct {
	ID        uuid.UUID          `json:"id"`
	Status    string             `json:"status"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, arg UpdateBookingStatusParams) (int64, error) {
	result, err := db.Exec(ctx, updateBookingStatus, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
