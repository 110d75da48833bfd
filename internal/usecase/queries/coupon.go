package queries

import (
	"context"
	"time"

	"rental-admin/internal/domain/coupon"
	"rental-admin/internal/infra"
	"rental-admin/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrCouponNotFound = errs.NotFound("coupon not found")

type CouponFilter struct {
	IsActive *bool
}

type CouponReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	FindByCode(ctx context.Context, code string) (*CouponView, error)
	List(ctx context.Context, filter CouponFilter, after *Keyset, limit int32) ([]*CouponView, error)
}

type CheckCouponRequest struct {
	Code       string
	PropertyID uuid.UUID
	Date       time.Time
	Charge     decimal.Decimal
}

// CouponCheck reports eligibility for one night. Discount is zero when not applicable.
type CouponCheck struct {
	CouponID   uuid.UUID
	Code       string
	Applicable bool
	Reason     coupon.Reason
	Discount   decimal.Decimal
}

type CouponQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*CouponView, error)
	List(ctx context.Context, filter CouponFilter, cursor *Cursor, limit int) ([]*CouponView, *Cursor, error)
	Check(ctx context.Context, req CheckCouponRequest) (*CouponCheck, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
}

func NewCouponQueries(readStore CouponReadStore) CouponQueries {
	return &couponQueriesImpl{readStore: readStore}
}

func (q *couponQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*CouponView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *couponQueriesImpl) List(ctx context.Context, filter CouponFilter, cursor *Cursor, limit int) ([]*CouponView, *Cursor, error) {
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	rows, err := q.readStore.List(ctx, filter, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, func(c *CouponView) (time.Time, uuid.UUID) { return c.CreatedAt, c.ID })
	return page, next, nil
}

func (q *couponQueriesImpl) Check(ctx context.Context, req CheckCouponRequest) (*CouponCheck, error) {
	if req.Charge.IsNegative() {
		return nil, errs.Invalid("charge", coupon.ErrNonPositiveValue)
	}

	view, err := findCouponByCode(ctx, q.readStore, req.Code)
	if err != nil {
		return nil, err
	}
	c, err := view.Aggregate()
	if err != nil {
		return nil, err
	}

	result := &CouponCheck{
		CouponID: c.ID(),
		Code:     c.Code().String(),
		Reason:   c.Check(req.PropertyID, req.Date),
		Discount: decimal.Zero,
	}
	if result.Reason == coupon.ReasonNone {
		result.Applicable = true
		result.Discount = c.ComputeDiscount(req.Charge)
	}
	return result, nil
}

func findCouponByCode(ctx context.Context, store CouponReadStore, raw string) (*CouponView, error) {
	code, err := coupon.NewCouponCode(raw)
	if err != nil {
		return nil, err
	}
	view, err := store.FindByCode(ctx, code.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return view, nil
}
