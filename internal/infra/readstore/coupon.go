package readstore

import (
	"context"

	"rental-admin/internal/infra"
	"rental-admin/internal/infra/converter"
	sqlc "rental-admin/internal/infra/sqlc/generated"
	"rental-admin/internal/pkg/pgconv"
	"rental-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponViewQueries interface {
	GetCouponByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Coupons, error)
	GetCouponByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Coupons, error)
	ListCoupons(ctx context.Context, db sqlc.DBTX, arg sqlc.ListCouponsParams) ([]sqlc.Coupons, error)
	ListCouponPropertyIDs(ctx context.Context, db sqlc.DBTX, couponID uuid.UUID) ([]uuid.UUID, error)
}

type CouponReadStore struct {
	queries CouponViewQueries
	db      sqlc.DBTX
}

func NewCouponReadStore(queries CouponViewQueries, db sqlc.DBTX) *CouponReadStore {
	return &CouponReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CouponReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	row, err := r.queries.GetCouponByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get coupon by id", err)
	}
	return r.withLinks(ctx, row)
}

// FindByCode expects an already normalised code.
func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*queries.CouponView, error) {
	row, err := r.queries.GetCouponByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get coupon by code", err)
	}
	return r.withLinks(ctx, row)
}

func (r *CouponReadStore) List(ctx context.Context, filter queries.CouponFilter, after *queries.Keyset, limit int32) ([]*queries.CouponView, error) {
	cursorAt, cursorID := keysetArgs(after)
	rows, err := r.queries.ListCoupons(ctx, r.db, sqlc.ListCouponsParams{
		IsActive:        pgconv.BoolPtrToPgtype(filter.IsActive),
		CursorCreatedAt: cursorAt,
		CursorID:        cursorID,
		Limit:           limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}

	out := make([]*queries.CouponView, 0, len(rows))
	for _, row := range rows {
		view, err := r.withLinks(ctx, row)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

func (r *CouponReadStore) withLinks(ctx context.Context, row sqlc.Coupons) (*queries.CouponView, error) {
	ids, err := r.queries.ListCouponPropertyIDs(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupon properties", err)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return &queries.CouponView{
		ID:               row.ID,
		Name:             row.Name,
		Code:             row.Code,
		ValidFrom:        pgconv.DateFromPgtype(row.ValidFrom),
		ValidTo:          pgconv.DateFromPgtype(row.ValidTo),
		DiscountType:     row.DiscountType,
		DiscountValue:    pgconv.DecimalFromNumeric(row.DiscountValue),
		MaxDiscountValue: pgconv.DecimalPtrFromNumeric(row.MaxDiscountValue),
		Weekdays:         converter.WeekdaysFromRow(row),
		PropertyIDs:      ids,
		IsActive:         row.IsActive,
		CreatedAt:        pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:        pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
