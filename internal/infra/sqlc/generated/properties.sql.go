// Maintained by hand in the shape sqlc emits; keep in step with queries/properties.sql.

package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createProperty = `-- name: CreateProperty :exec
INSERT INTO properties (id, name, address, city, max_guests, daywise_price, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

type CreatePropertyParams struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Address      string             `json:"address"`
	City         string             `json:"city"`
	MaxGuests    int32              `json:"max_guests"`
	DaywisePrice bool               `json:"daywise_price"`
	IsActive     bool               `json:"is_active"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) CreateProperty(ctx context.Context, db DBTX, arg CreatePropertyParams) error {
	_, err := db.Exec(ctx, createProperty,
		arg.ID,
		arg.Name,
		arg.Address,
		arg.City,
		arg.MaxGuests,
		arg.DaywisePrice,
		arg.IsActive,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const deleteProperty = `-- name: DeleteProperty :execrows
DELETE FROM properties WHERE id = $1
`

func (q *Queries) DeleteProperty(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	result, err := db.Exec(ctx, deleteProperty, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deletePropertyRates = `-- name: DeletePropertyRates :exec
DELETE FROM property_rates WHERE property_id = $1
`

func (q *Queries) DeletePropertyRates(ctx context.Context, db DBTX, propertyID uuid.UUID) error {
	_, err := db.Exec(ctx, deletePropertyRates, propertyID)
	return err
}

const deleteSpecialDatePrices = `-- name: DeleteSpecialDatePrices :exec
DELETE FROM special_date_prices WHERE property_id = $1
`

func (q *Queries) DeleteSpecialDatePrices(ctx context.Context, db DBTX, propertyID uuid.UUID) error {
	_, err := db.Exec(ctx, deleteSpecialDatePrices, propertyID)
	return err
}

const getPropertyByID = `-- name: GetPropertyByID :one
SELECT id, name, address, city, max_guests, daywise_price, is_active, created_at, updated_at
FROM properties
WHERE id = $1
`

func (q *Queries) GetPropertyByID(ctx context.Context, db DBTX, id uuid.UUID) (Properties, error) {
	row := db.QueryRow(ctx, getPropertyByID, id)
	var i Properties
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Address,
		&i.City,
		&i.MaxGuests,
		&i.DaywisePrice,
		&i.IsActive,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const insertPropertyRate = `-- name: InsertPropertyRate :exec
INSERT INTO property_rates (property_id, bucket, price, adult_extra_guest_charge, child_extra_guest_charge,
                            infant_extra_guest_charge, base_guest_count, discount)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

type InsertPropertyRateParams struct {
	PropertyID             uuid.UUID      `json:"property_id"`
	Bucket                 string         `json:"bucket"`
	Price                  pgtype.Numeric `json:"price"`
	AdultExtraGuestCharge  pgtype.Numeric `json:"adult_extra_guest_charge"`
	ChildExtraGuestCharge  pgtype.Numeric `json:"child_extra_guest_charge"`
	InfantExtraGuestCharge pgtype.Numeric `json:"infant_extra_guest_charge"`
	BaseGuestCount         pgtype.Int4    `json:"base_guest_count"`
	Discount               pgtype.Numeric `json:"discount"`
}

func (q *Queries) InsertPropertyRate(ctx context.Context, db DBTX, arg InsertPropertyRateParams) error {
	_, err := db.Exec(ctx, insertPropertyRate,
		arg.PropertyID,
		arg.Bucket,
		arg.Price,
		arg.AdultExtraGuestCharge,
		arg.ChildExtraGuestCharge,
		arg.InfantExtraGuestCharge,
		arg.BaseGuestCount,
		arg.Discount,
	)
	return err
}

const insertSpecialDatePrice = `-- name: InsertSpecialDatePrice :exec
INSERT INTO special_date_prices (property_id, date, price, adult_extra_guest_charge, child_extra_guest_charge,
                                 infant_extra_guest_charge, base_guest_count, discount)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

type InsertSpecialDatePriceParams struct {
	PropertyID             uuid.UUID      `json:"property_id"`
	Date                   pgtype.Date    `json:"date"`
	Price                  pgtype.Numeric `json:"price"`
	AdultExtraGuestCharge  pgtype.Numeric `json:"adult_extra_guest_charge"`
	ChildExtraGuestCharge  pgtype.Numeric `json:"child_extra_guest_charge"`
	InfantExtraGuestCharge pgtype.Numeric `json:"infant_extra_guest_charge"`
	BaseGuestCount         pgtype.Int4    `json:"base_guest_count"`
	Discount               pgtype.Numeric `json:"discount"`
}

func (q *Queries) InsertSpecialDatePrice(ctx context.Context, db DBTX, arg InsertSpecialDatePriceParams) error {
	_, err := db.Exec(ctx, insertSpecialDatePrice,
		arg.PropertyID,
		arg.Date,
		arg.Price,
		arg.AdultExtraGuestCharge,
		arg.ChildExtraGuestCharge,
		arg.InfantExtraGuestCharge,
		arg.BaseGuestCount,
		arg.Discount,
	)
	return err
}

const listProperties = `-- name: ListProperties :many
SELECT id, name, address, city, max_guests, daywise_price, is_active, created_at, updated_at
FROM properties
WHERE ($1::text IS NULL OR city ILIKE $1::text)
  AND ($2::boolean IS NULL OR is_active = $2::boolean)
  AND ($3::timestamptz IS NULL
       OR (created_at, id) < ($3::timestamptz, $4::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $5
`

type ListPropertiesParams struct {
	City            pgtype.Text        `json:"city"`
	IsActive        pgtype.Bool        `json:"is_active"`
	CursorCreatedAt pgtype.Timestamptz `json:"cursor_created_at"`
	CursorID        pgtype.UUID        `json:"cursor_id"`
	Limit           int32              `json:"limit"`
}

func (q *Queries) ListProperties(ctx context.Context, db DBTX, arg ListPropertiesParams) ([]Properties, error) {
	rows, err := db.Query(ctx, listProperties,
		arg.City,
		arg.IsActive,
		arg.CursorCreatedAt,
		arg.CursorID,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Properties
	for rows.Next() {
		var i Properties
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Address,
			&i.City,
			&i.MaxGuests,
			&i.DaywisePrice,
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

const listPropertyRates = `-- name: ListPropertyRates :many
SELECT property_id, bucket, price, adult_extra_guest_charge, child_extra_guest_charge,
       infant_extra_guest_charge, base_guest_count, discount
FROM property_rates
WHERE property_id = $1
`

func (q *Queries) ListPropertyRates(ctx context.Context, db DBTX, propertyID uuid.UUID) ([]PropertyRates, error) {
	rows, err := db.Query(ctx, listPropertyRates, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PropertyRates
	for rows.Next() {
		var i PropertyRates
		if err := rows.Scan(
			&i.PropertyID,
			&i.Bucket,
			&i.Price,
			&i.AdultExtraGuestCharge,
			&i.ChildExtraGuestCharge,
			&i.InfantExtraGuestCharge,
			&i.BaseGuestCount,
			&i.Discount,
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

const listSpecialDatePrices = `-- name: ListSpecialDatePrices :many
SELECT id, property_id, date, price, adult_extra_guest_charge, child_extra_guest_charge,
       infant_extra_guest_charge, base_guest_count, discount
FROM special_date_prices
WHERE property_id = $1
ORDER BY date
`

func (q *Queries) ListSpecialDatePrices(ctx context.Context, db DBTX, propertyID uuid.UUID) ([]SpecialDatePrices, error) {
	rows, err := db.Query(ctx, listSpecialDatePrices, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SpecialDatePrices
	for rows.Next() {
		var i SpecialDatePrices
		if err := rows.Scan(
			&i.ID,
			&i.PropertyID,
			&i.Date,
			&i.Price,
			&i.AdultExtraGuestCharge,
			&i.ChildExtraGuestCharge,
			&i.InfantExtraGuestCharge,
			&i.BaseGuestCount,
			&i.Discount,
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

const updateProperty = `-- name: UpdateProperty :execrows
UPDATE properties
SET name = $2, address = $3, city = $4, max_guests = $5, daywise_price = $6, is_active = $7, updated_at = $8
WHERE id = $1
`

type UpdatePropertyParams struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Address      string             `json:"address"`
	City         string             `json:"city"`
	MaxGuests    int32              `json:"max_guests"`
	DaywisePrice bool               `json:"daywise_price"`
	IsActive     bool               `json:"is_active"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateProperty(ctx context.Context, db DBTX, arg UpdatePropertyParams) (int64, error) {
	result, err := db.Exec(ctx, updateProperty,
		arg.ID,
		arg.Name,
		arg.Address,
		arg.City,
		arg.MaxGuests,
		arg.DaywisePrice,
		arg.IsActive,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
