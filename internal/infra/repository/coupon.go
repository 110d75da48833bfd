package repository

import (
	"context"

	"rental-admin/internal/domain/coupon"
	"rental-admin/internal/infra"
	"rental-admin/internal/infra/converter"
	sqlc "rental-admin/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type CouponWriteQueries interface {
	CreateCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCouponParams) error
	UpdateCoupon(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCouponParams) (int64, error)
	DeleteCoupon(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	InsertCouponProperty(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCouponPropertyParams) error
	DeleteCouponProperties(ctx context.Context, db sqlc.DBTX, couponID uuid.UUID) error
}

type CouponRepository struct {
	queries CouponWriteQueries
	db      sqlc.DBTX
}

func NewCouponRepository(queries CouponWriteQueries, db sqlc.DBTX) *CouponRepository {
	return &CouponRepository{
		queries: queries,
		db:      db,
	}
}

// Create maps a taken code to DUPLICATE_KEY and an unknown property to FOREIGN_KEY_VIOLATED.
func (r *CouponRepository) Create(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error {
	if err := r.queries.CreateCoupon(ctx, tx, converter.CouponToCreateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return r.insertLinks(ctx, tx, c)
}

func (r *CouponRepository) Update(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error {
	n, err := r.queries.UpdateCoupon(ctx, tx, converter.CouponToUpdateParams(c))
	if err != nil {
		return infra.WrapRepoErr("failed to update coupon", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	if err := r.queries.DeleteCouponProperties(ctx, tx, c.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear coupon properties", err)
	}
	return r.insertLinks(ctx, tx, c)
}

func (r *CouponRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteCoupon(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete coupon", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) insertLinks(ctx context.Context, tx sqlc.DBTX, c *coupon.Coupon) error {
	for _, link := range converter.CouponLinkParams(c.ID(), c.PropertyIDs()) {
		if err := r.queries.InsertCouponProperty(ctx, tx, link); err != nil {
			return infra.WrapRepoErr("failed to link coupon property", err)
		}
	}
	return nil
}
