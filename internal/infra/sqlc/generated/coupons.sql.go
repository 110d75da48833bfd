// Maintained by hand in the shape sqlc emits; keep in step with queries/coupons.sql.

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createCoupon = `-- name: CreateCoupon :exec
INSERT INTO coupons (id, name, code, valid_from, valid_to, discount_type, discount_value, max_discount_value,
                     monday, tuesday, wednesday, thursday, friday, saturday, sunday, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
`

type CreateCouponParams struct {
	ID               uuid.UUID          `json:"id"`
	Name             string             `json:"name"`
	Code             string             `json:"code"`
	ValidFrom        pgtype.Date        `json:"valid_from"`
	ValidTo          pgtype.Date        `json:"valid_to"`
	DiscountType     string             `json:"discount_type"`
	DiscountValue    pgtype.Numeric     `json:"discount_value"`
	MaxDiscountValue pgtype.Numeric     `json:"max_discount_value"`
	Monday           bool               `json:"monday"`
	Tuesday          bool               `json:"tuesday"`
	Wednesday        bool               `json:"wednesday"`
	Thursday         bool               `json:"thursday"`
	Friday           bool               `json:"friday"`
	Saturday         bool               `json:"saturday"`
	Sunday           bool               `json:"sunday"`
	IsActive         bool               `json:"is_active"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateCoupon(ctx context.Context, db DBTX, arg CreateCouponParams) error {
	_, err := db.Exec(ctx, createCoupon,
		arg.ID,
		arg.Name,
		arg.Code,
		arg.ValidFrom,
		arg.ValidTo,
		arg.DiscountType,
		arg.DiscountValue,
		arg.MaxDiscountValue,
		arg.Monday,
		arg.Tuesday,
		arg.Wednesday,
		arg.Thursday,
		arg.Friday,
		arg.Saturday,
		arg.Sunday,
		arg.IsActive,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const deleteCoupon = `-- name: DeleteCoupon :execrows
DELETE FROM coupons WHERE id = $1
`

func (q *Queries) DeleteCoupon(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteCoupon, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteCouponProperties = `-- name: DeleteCouponProperties :exec
DELETE FROM coupon_properties WHERE coupon_id = $1
`

func (q *Queries) DeleteCouponProperties(ctx context.Context, db DBTX, couponID uuid.UUID) error {
	_, err := db.Exec(ctx, deleteCouponProperties, couponID)
	return err
}

const getCouponByCode = `-- name: GetCouponByCode :one
SELECT id, name, code, valid_from, valid_to, discount_type, discount_value, max_discount_value,
       monday, tuesday, wednesday, thursday, friday, saturday, sunday, is_active, created_at, updated_at
FROM coupons
WHERE code = $1
`

func (q *Queries) GetCouponByCode(ctx context.Context, db DBTX, code string) (Coupons, error) {
	row := db.QueryRow(ctx, getCouponByCode, code)
	var i Coupons
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Code,
		&i.ValidFrom,
		&i.ValidTo,
		&i.DiscountType,
		&i.DiscountValue,
		&i.MaxDiscountValue,
		&i.Monday,
		&i.Tuesday,
		&i.Wednesday,
		&i.Thursday,
		&i.Friday,
		&i.Saturday,
		&i.Sunday,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getCouponByID = `-- name: GetCouponByID :one
SELECT id, name, code, valid_from, valid_to, discount_type, discount_value, max_discount_value,
       monday, tuesday, wednesday, thursday, friday, saturday, sunday, is_active, created_at, updated_at
FROM coupons
WHERE id = $1
`

func (q *Queries) GetCouponByID(ctx context.Context, db DBTX, id uuid.UUID) (Coupons, error) {
	row := db.QueryRow(ctx, getCouponByID, id)
	var i Coupons
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Code,
		&i.ValidFrom,
		&i.ValidTo,
		&i.DiscountType,
		&i.DiscountValue,
		&i.MaxDiscountValue,
		&i.Monday,
		&i.Tuesday,
		&i.Wednesday,
		&i.Thursday,
		&i.Friday,
		&i.Saturday,
		&i.Sunday,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const insertCouponProperty = `-- name: InsertCouponProperty :exec
INSERT INTO coupon_properties (coupon_id, property_id) VALUES ($1, $2)
`

type InsertCouponPropertyParams struct {
	CouponID   uuid.UUID `json:"coupon_id"`
	PropertyID uuid.UUID `json:"property_id"`
}

func (q *Queries) InsertCouponProperty(ctx context.Context, db DBTX, arg InsertCouponPropertyParams) error {
	_, err := db.Exec(ctx, insertCouponProperty, arg.CouponID, arg.PropertyID)
	return err
}

const listCouponPropertyIDs = `-- name: ListCouponPropertyIDs :many
SELECT property_id FROM coupon_properties WHERE coupon_id = $1 ORDER BY property_id
`

func (q *Queries) ListCouponPropertyIDs(ctx context.Context, db DBTX, couponID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := db.Query(ctx, listCouponPropertyIDs, couponID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []uuid.UUID
	for rows.Next() {
		var property_id uuid.UUID
		if err := rows.Scan(&property_id); err != nil {
			return nil, err
		}
		items = append(items, property_id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listCoupons = `-- name: ListCoupons :many
SELECT id, name, code, valid_from, valid_to, discount_type, discount_value, max_discount_value,
       monday, tuesday, wednesday, thursday, friday, saturday, sunday, is_active, created_at, updated_at
FROM coupons
WHERE ($1::boolean IS NULL OR is_active = $1::boolean)
  AND ($2::timestamptz IS NULL
       OR (created_at, id) < ($2::timestamptz, $3::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $4
`

type ListCouponsParams struct {
	IsActive        pgtype.Bool        `json:"is_active"`
	CursorCreatedAt pgtype.Timestamptz `json:"cursor_created_at"`
	CursorID        pgtype.UUID        `json:"cursor_id"`
	Limit           int32              `json:"limit"`
}

func (q *Queries) ListCoupons(ctx context.Context, db DBTX, arg ListCouponsParams) ([]Coupons, error) {
	rows, err := db.Query(ctx, listCoupons,
		arg.IsActive,
		arg.CursorCreatedAt,
		arg.CursorID,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Coupons
	for rows.Next() {
		var i Coupons
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Code,
			&i.ValidFrom,
			&i.ValidTo,
			&i.DiscountType,
			&i.DiscountValue,
			&i.MaxDiscountValue,
			&i.Monday,
			&i.Tuesday,
			&i.Wednesday,
			&i.Thursday,
			&i.Friday,
			&i.Saturday,
			&i.Sunday,
			&i.IsActive,
			&i.CreatedAt,
			&i.UpdatedAt,
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

const updateCoupon = `-- name: UpdateCoupon :execrows
UPDATE coupons
SET name = $2, code = $3, valid_from = $4, valid_to = $5, discount_type = $6, discount_value = $7,
    max_discount_value = $8, monday = $9, tuesday = $10, wednesday = $11, thursday = $12, friday = $13,
    saturday = $14, sunday = $15, is_active = $16, updated_at = $17
WHERE id = $1
`

type UpdateCouponParams struct {
	ID               uuid.UUID          `json:"id"`
	Name             string             `json:"name"`
	Code             string             `json:"code"`
	ValidFrom        pgtype.Date        `json:"valid_from"`
	ValidTo          pgtype.Date        `json:"valid_to"`
	DiscountType     string             `json:"discount_type"`
	DiscountValue    pgtype.Numeric     `json:"discount_value"`
	MaxDiscountValue pgtype.Numeric     `json:"max_discount_value"`
	Monday           bool               `json:"monday"`
	Tuesday          bool               `json:"tuesday"`
	Wednesday        bool               `json:"wednesday"`
	Thursday         bool               `json:"thursday"`
	Friday           bool               `json:"friday"`
	Saturday         bool               `json:"saturday"`
	Sunday           bool               `json:"sunday"`
	IsActive         bool               `json:"is_active"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateCoupon(ctx context.Context, db DBTX, arg UpdateCouponParams) (int64, error) {
	result, err := db.Exec(ctx, updateCoupon,
		arg.ID,
		arg.Name,
		arg.Code,
		arg.ValidFrom,
		arg.ValidTo,
		arg.DiscountType,
		arg.DiscountValue,
		arg.MaxDiscountValue,
		arg.Monday,
		arg.Tuesday,
		arg.Wednesday,
		arg.Thursday,
		arg.Friday,
		arg.Saturday,
		arg.Sunday,
		arg.IsActive,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
