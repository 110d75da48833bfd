package commands

import (
	"context"
	"log/slog"
	"time"

	"rental-admin/internal/domain/auth"
	"rental-admin/internal/domain/booking"
	"rental-admin/internal/domain/coupon"
	"rental-admin/internal/domain/pricing"
	"rental-admin/internal/domain/user"
	"rental-admin/internal/infra"
	"rental-admin/internal/pkg/clock"
	"rental-admin/internal/pkg/patch"
	"rental-admin/internal/usecase/queries"
	"rental-admin/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingMetrics counts booking lifecycle events.
type BookingMetrics interface {
	BookingCreated(couponApplied bool)
	PaymentRecorded(method string)
	BookingCancelled()
}

// CreateBookingRequest carries operator-entered charges. A nil charge is
// filled from the resolver; a nil discount falls back to the coupon discount.
type CreateBookingRequest struct {
	PropertyID       uuid.UUID
	CustomerID       uuid.UUID
	Checkin          time.Time
	Checkout         time.Time
	Guests           pricing.Guests
	RentalCharge     *decimal.Decimal
	ExtraGuestCharge *decimal.Decimal
	DiscountAmount   *decimal.Decimal
	CouponCode       string
	Notes            string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, actor auth.Principal, req CreateBookingRequest) (uuid.UUID, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	resolver pricing.Resolver
	metrics  BookingMetrics
	clock    clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, resolver pricing.Resolver, metrics BookingMetrics, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, resolver: resolver, metrics: metrics, clock: clk}
}

func (uc *bookingCommandsImpl) CreateBooking(ctx context.Context, actor auth.Principal, req CreateBookingRequest) (uuid.UUID, error) {
	if err := actor.Require(user.RoleOperator); err != nil {
		return uuid.Nil, err
	}
	stay, err := pricing.NewStay(req.Checkin, req.Checkout, req.Guests)
	if err != nil {
		return uuid.Nil, err
	}
	var code coupon.Code
	if req.CouponCode != "" {
		if code, err = coupon.NewCouponCode(req.CouponCode); err != nil {
			return uuid.Nil, err
		}
	}

	var created *booking.Booking
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		prop, err := tx.Reads().PropertyByID(ctx, req.PropertyID)
		if err != nil {
			return translate(err, queries.ErrPropertyNotFound, nil)
		}
		if err := prop.Accommodates(stay.Guests()); err != nil {
			return err
		}
		if _, err := tx.Reads().CustomerByID(ctx, req.CustomerID); err != nil {
			return translate(err, queries.ErrCustomerNotFound, nil)
		}

		quote := prop.Quote(uc.resolver, stay)
		charges := booking.Charges{
			Rental:     patch.Coalesce(req.RentalCharge, quote.RentalCharge),
			ExtraGuest: patch.Coalesce(req.ExtraGuestCharge, quote.ExtraGuestCharge),
			Discount:   patch.Coalesce(req.DiscountAmount, decimal.Zero),
		}

		var couponID *uuid.UUID
		if code != "" {
			c, err := tx.Reads().CouponByCode(ctx, code.String())
			if err != nil {
				return translate(err, queries.ErrCouponNotFound, nil)
			}
			app, err := booking.ApplyCouponToStay(c, prop.ID(), quote)
			if err != nil {
				return err
			}
			couponID = &app.CouponID
			if req.DiscountAmount == nil {
				charges.Discount = app.Discount
			}
		}

		b, err := booking.NewBooking(booking.Params{
			PropertyID: prop.ID(),
			CustomerID: req.CustomerID,
			CouponID:   couponID,
			Stay:       stay,
			Charges:    charges,
			Notes:      req.Notes,
			CreatedBy:  actor.UserID,
		}, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, tx.DB(), b); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrBookingReferenced
			}
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.metrics.BookingCreated(created.CouponID() != nil)
	slog.Info("booking created",
		"booking_id", created.ID(),
		"property_id", created.PropertyID(),
		"nights", stay.NightCount(),
		"total", created.Total().StringFixed(2),
	)
	return created.ID(), nil
}
