package queries

import (
	"context"
	"time"

	"rental-admin/internal/domain/booking"
	"rental-admin/internal/domain/pricing"
	"rental-admin/internal/infra"
	"rental-admin/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrPropertyNotFound = errs.NotFound("property not found")

type PropertyFilter struct {
	City     *string
	IsActive *bool
}

type PropertyReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
	List(ctx context.Context, filter PropertyFilter, after *Keyset, limit int32) ([]*PropertyListItem, error)
}

type QuoteRequest struct {
	Checkin    time.Time
	Checkout   time.Time
	Guests     pricing.Guests
	CouponCode string
}

// Quote is a priced stay; Coupon is set only when a code was supplied.
type Quote struct {
	PropertyID uuid.UUID
	Stay       pricing.StayCharge
	Coupon     *CouponQuote
	Discount   decimal.Decimal
	Total      decimal.Decimal
}

type CouponQuote struct {
	CouponID         uuid.UUID
	Code             string
	ApplicableNights []time.Time
	EligibleAmount   decimal.Decimal
	Discount         decimal.Decimal
}

type PropertyQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*PropertyView, error)
	List(ctx context.Context, filter PropertyFilter, cursor *Cursor, limit int) ([]*PropertyListItem, *Cursor, error)
	QuoteStay(ctx context.Context, propertyID uuid.UUID, req QuoteRequest) (*Quote, error)
}

type propertyQueriesImpl struct {
	properties PropertyReadStore
	coupons    CouponReadStore
	resolver   pricing.Resolver
}

func NewPropertyQueries(properties PropertyReadStore, coupons CouponReadStore, resolver pricing.Resolver) PropertyQueries {
	return &propertyQueriesImpl{
		properties: properties,
		coupons:    coupons,
		resolver:   resolver,
	}
}

func (q *propertyQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*PropertyView, error) {
	view, err := q.properties.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *propertyQueriesImpl) List(ctx context.Context, filter PropertyFilter, cursor *Cursor, limit int) ([]*PropertyListItem, *Cursor, error) {
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	rows, err := q.properties.List(ctx, filter, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	page, next := paginate(rows, limit, func(p *PropertyListItem) (time.Time, uuid.UUID) { return p.CreatedAt, p.ID })
	return page, next, nil
}

// QuoteStay prices a prospective stay without persisting anything.
func (q *propertyQueriesImpl) QuoteStay(ctx context.Context, propertyID uuid.UUID, req QuoteRequest) (*Quote, error) {
	stay, err := pricing.NewStay(req.Checkin, req.Checkout, req.Guests)
	if err != nil {
		return nil, err
	}

	view, err := q.Get(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	prop, err := view.Aggregate()
	if err != nil {
		return nil, err
	}
	if err := prop.Accommodates(stay.Guests()); err != nil {
		return nil, err
	}

	charge := prop.Quote(q.resolver, stay)
	quote := &Quote{
		PropertyID: propertyID,
		Stay:       charge,
		Discount:   decimal.Zero,
		Total:      charge.Total,
	}

	if req.CouponCode == "" {
		return quote, nil
	}

	cv, err := findCouponByCode(ctx, q.coupons, req.CouponCode)
	if err != nil {
		return nil, err
	}
	c, err := cv.Aggregate()
	if err != nil {
		return nil, err
	}
	app, err := booking.ApplyCouponToStay(c, propertyID, charge)
	if err != nil {
		return nil, err
	}

	quote.Coupon = &CouponQuote{
		CouponID:         app.CouponID,
		Code:             c.Code().String(),
		ApplicableNights: app.ApplicableNights,
		EligibleAmount:   app.EligibleAmount,
		Discount:         app.Discount,
	}
	quote.Discount = app.Discount
	quote.Total = charge.Total.Sub(app.Discount)
	return quote, nil
}
