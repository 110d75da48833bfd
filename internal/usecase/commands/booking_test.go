//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"rental-admin/internal/domain/booking"
	"rental-admin/internal/domain/coupon"
	"rental-admin/internal/domain/customer"
	"rental-admin/internal/domain/pricing"
	"rental-admin/internal/domain/property"
	"rental-admin/internal/domain/user"
	"rental-admin/internal/infra"
	"rental-admin/internal/usecase/commands"
	"rental-admin/internal/usecase/queries"
	"rental-admin/tests/common/builder"
	commandsmock "rental-admin/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type bookingFixture struct {
	h        *txHarness
	metrics  *commandsmock.MockBookingMetrics
	uc       commands.BookingCommands
	property *property.Property
	customer *customer.Customer
	coupon   *coupon.Coupon
}

func setupBooking(t *testing.T) *bookingFixture {
	t.Helper()
	h := newHarness(t)
	metrics := commandsmock.NewMockBookingMetrics(h.ctrl)

	p, err := builder.NewPropertyBuilder().BuildDomain()
	require.NoError(t, err)
	c, err := builder.NewCustomerBuilder().BuildDomain()
	require.NoError(t, err)
	cp, err := builder.NewCouponBuilder().WithProperties(p.ID()).BuildDomain()
	require.NoError(t, err)

	return &bookingFixture{
		h:        h,
		metrics:  metrics,
		uc:       commands.NewBookingCommands(h.uow, pricing.NewDefaultResolver(), metrics, h.clock),
		property: p,
		customer: c,
		coupon:   cp,
	}
}

func (f *bookingFixture) expectLookups() {
	f.h.reads.EXPECT().PropertyByID(gomock.Any(), f.property.ID()).Return(f.property, nil)
	f.h.reads.EXPECT().CustomerByID(gomock.Any(), f.customer.ID()).Return(f.customer, nil)
}

// Thursday 5 June to Sunday 8 June 2025: weekday 1000, weekend 1500, Saturday 2000.
func (f *bookingFixture) request() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		PropertyID: f.property.ID(),
		CustomerID: f.customer.ID(),
		Checkin:    builder.Date(2025, time.June, 5),
		Checkout:   builder.Date(2025, time.June, 8),
		Guests:     pricing.Guests{Adults: 2},
	}
}

func TestBookingCommands_CreateBooking(t *testing.T) {
	ctx := context.Background()
	operator := principal(user.RoleOperator)

	t.Run("omitted charges come from the resolver", func(t *testing.T) {
		f := setupBooking(t)
		f.expectLookups()
		f.h.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
				assert.True(t, builder.Dec("4500").Equal(b.Charges().Rental))
				assert.True(t, b.Charges().ExtraGuest.IsZero())
				assert.True(t, builder.Dec("4500").Equal(b.Total()))
				assert.Equal(t, operator.UserID, b.CreatedBy())
				assert.Nil(t, b.CouponID())
				return nil
			})
		f.metrics.EXPECT().BookingCreated(false)

		_, err := f.uc.CreateBooking(ctx, operator, f.request())
		require.NoError(t, err)
	})

	t.Run("operator charges win over the quote", func(t *testing.T) {
		f := setupBooking(t)
		f.expectLookups()
		req := f.request()
		req.RentalCharge = builder.DecPtr("4000")
		req.DiscountAmount = builder.DecPtr("250")

		f.h.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
				assert.True(t, builder.Dec("3750").Equal(b.Total()), b.Total().String())
				return nil
			})
		f.metrics.EXPECT().BookingCreated(false)

		_, err := f.uc.CreateBooking(ctx, operator, req)
		require.NoError(t, err)
	})

	t.Run("coupon discounts only its nights", func(t *testing.T) {
		f := setupBooking(t)
		f.expectLookups()
		req := f.request()
		req.CouponCode = "summer25"

		f.h.reads.EXPECT().CouponByCode(gomock.Any(), "SUMMER25").Return(f.coupon, nil)
		f.h.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) error {
				// 20% of Friday 1500 + Saturday 2000
				assert.True(t, builder.Dec("700").Equal(b.Charges().Discount), b.Charges().Discount.String())
				assert.True(t, builder.Dec("3800").Equal(b.Total()))
				require.NotNil(t, b.CouponID())
				assert.Equal(t, f.coupon.ID(), *b.CouponID())
				return nil
			})
		f.metrics.EXPECT().BookingCreated(true)

		_, err := f.uc.CreateBooking(ctx, operator, req)
		require.NoError(t, err)
	})

	t.Run("coupon that applies to no night is rejected", func(t *testing.T) {
		f := setupBooking(t)
		f.expectLookups()
		req := f.request()
		req.Checkin = builder.Date(2025, time.June, 2)
		req.Checkout = builder.Date(2025, time.June, 5)
		req.CouponCode = "SUMMER25"
		f.h.reads.EXPECT().CouponByCode(gomock.Any(), "SUMMER25").Return(f.coupon, nil)

		_, err := f.uc.CreateBooking(ctx, operator, req)
		assert.ErrorIs(t, err, booking.ErrCouponNotApplicable)
	})

	t.Run("unknown coupon code", func(t *testing.T) {
		f := setupBooking(t)
		f.expectLookups()
		req := f.request()
		req.CouponCode = "NOPE123"
		f.h.reads.EXPECT().CouponByCode(gomock.Any(), "NOPE123").
			Return(nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound))

		_, err := f.uc.CreateBooking(ctx, operator, req)
		assert.ErrorIs(t, err, queries.ErrCouponNotFound)
	})

	t.Run("party larger than capacity", func(t *testing.T) {
		f := setupBooking(t)
		f.h.reads.EXPECT().PropertyByID(gomock.Any(), f.property.ID()).Return(f.property, nil)
		req := f.request()
		req.Guests = pricing.Guests{Adults: 5, Children: 2}

		_, err := f.uc.CreateBooking(ctx, operator, req)
		assert.ErrorIs(t, err, property.ErrTooManyGuests)
	})

	t.Run("missing customer", func(t *testing.T) {
		f := setupBooking(t)
		f.h.reads.EXPECT().PropertyByID(gomock.Any(), f.property.ID()).Return(f.property, nil)
		f.h.reads.EXPECT().CustomerByID(gomock.Any(), f.customer.ID()).
			Return(nil, infra.WrapRepoErr("customer not found", nil, infra.KindNotFound))

		_, err := f.uc.CreateBooking(ctx, operator, f.request())
		assert.ErrorIs(t, err, queries.ErrCustomerNotFound)
	})

	t.Run("reversed stay fails before the transaction", func(t *testing.T) {
		f := setupBooking(t)
		req := f.request()
		req.Checkin, req.Checkout = req.Checkout, req.Checkin

		_, err := f.uc.CreateBooking(ctx, operator, req)
		assert.ErrorIs(t, err, pricing.ErrInvalidStayRange)
	})
}
