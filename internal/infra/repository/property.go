package repository

import (
	"context"

	"rental-admin/internal/domain/property"
	"rental-admin/internal/infra"
	"rental-admin/internal/infra/converter"
	sqlc "rental-admin/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PropertyWriteQueries interface {
	CreateProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePropertyParams) error
	UpdateProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePropertyParams) (int64, error)
	DeleteProperty(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	InsertPropertyRate(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPropertyRateParams) error
	DeletePropertyRates(ctx context.Context, db sqlc.DBTX, propertyID uuid.UUID) error
	InsertSpecialDatePrice(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSpecialDatePriceParams) error
	DeleteSpecialDatePrices(ctx context.Context, db sqlc.DBTX, propertyID uuid.UUID) error
}

type PropertyRepository struct {
	queries PropertyWriteQueries
	db      sqlc.DBTX
}

func NewPropertyRepository(queries PropertyWriteQueries, db sqlc.DBTX) *PropertyRepository {
	return &PropertyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PropertyRepository) Create(ctx context.Context, tx sqlc.DBTX, p *property.Property) error {
	if err := r.queries.CreateProperty(ctx, tx, converter.PropertyToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create property", err)
	}
	return r.insertChildren(ctx, tx, p)
}

// Update replaces the whole rate profile and override set. tx must be a
// transaction so a failure part-way leaves the previous rows in place.
func (r *PropertyRepository) Update(ctx context.Context, tx sqlc.DBTX, p *property.Property) error {
	n, err := r.queries.UpdateProperty(ctx, tx, converter.PropertyToUpdateParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update property", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
	}

	if err := r.queries.DeletePropertyRates(ctx, tx, p.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear property rates", err)
	}
	if err := r.queries.DeleteSpecialDatePrices(ctx, tx, p.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear special date prices", err)
	}
	return r.insertChildren(ctx, tx, p)
}

// Delete relies on ON DELETE CASCADE for rates and overrides. Bookings
// referencing the property surface as FOREIGN_KEY_VIOLATED.
func (r *PropertyRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteProperty(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete property", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("property not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PropertyRepository) insertChildren(ctx context.Context, tx sqlc.DBTX, p *property.Property) error {
	for _, row := range converter.ProfileRows(p) {
		if err := r.queries.InsertPropertyRate(ctx, tx, row); err != nil {
			return infra.WrapRepoErr("failed to insert property rate", err)
		}
	}
	for _, row := range converter.OverrideRows(p) {
		if err := r.queries.InsertSpecialDatePrice(ctx, tx, row); err != nil {
			return infra.WrapRepoErr("failed to insert special date price", err)
		}
	}
	return nil
}
