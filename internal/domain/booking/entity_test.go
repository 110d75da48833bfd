//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"rental-admin/internal/domain/booking"
	"rental-admin/internal/domain/pricing"
	"rental-admin/internal/pkg/errs"
	"rental-admin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ExtraGuest = builder.Dec("600")
			b.Discount = builder.Dec("100.005")
		}).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, 3, b.Stay().NightCount())
		assert.Equal(t, "100.01", b.Charges().Discount.StringFixed(2))
		assert.Equal(t, "3999.99", b.Total().StringFixed(2))
	})

	runCases(t, []testCase{
		{
			name:   "missing property",
			mutate: func(b *builder.BookingBuilder) { b.PropertyID = uuid.Nil },
			errIs:  booking.ErrMissingProperty,
		},
		{
			name:   "missing customer",
			mutate: func(b *builder.BookingBuilder) { b.CustomerID = uuid.Nil },
			errIs:  booking.ErrMissingCustomer,
		},
		{
			name:   "negative rental",
			mutate: func(b *builder.BookingBuilder) { b.Rental = builder.Dec("-1") },
			errIs:  booking.ErrNegativeCharge,
		},
		{
			name:   "discount above subtotal",
			mutate: func(b *builder.BookingBuilder) { b.Discount = builder.Dec("3500.01") },
			errIs:  booking.ErrDiscountTooLarge,
		},
		{
			name:   "discount equal to subtotal",
			mutate: func(b *builder.BookingBuilder) { b.Discount = builder.Dec("3500") },
		},
		{
			name:   "notes too long",
			mutate: func(b *builder.BookingBuilder) { b.Notes = strings.Repeat("x", 1001) },
			errIs:  booking.ErrNoteTooLong,
		},
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				return
			}
			require.Nil(t, actual)
			require.ErrorIs(t, err, c.errIs)
			assert.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}

func TestBooking_Cancel(t *testing.T) {
	b, err := builder.NewBookingBuilder().BuildDomain()
	require.NoError(t, err)

	now := time.Date(2024, time.December, 21, 0, 0, 0, 0, time.UTC)
	require.NoError(t, b.Cancel(now))
	assert.Equal(t, booking.StatusCancelled, b.Status())
	assert.Equal(t, now, b.UpdatedAt())

	err = b.Cancel(now)
	assert.ErrorIs(t, err, booking.ErrBookingNotActive)
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestParseStatus(t *testing.T) {
	s, err := booking.ParseStatus("CANCELLED")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusCancelled, s)

	_, err = booking.ParseStatus("cancelled")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)
}

func TestApplyCouponToStay(t *testing.T) {
	propertyID := uuid.New()
	profile, err := builder.NewPricingBuilder().BuildDomain()
	require.NoError(t, err)

	// Thu 5, Fri 6, Sat 7 June 2025 at 1000, 1500 and 2000.
	stay, err := pricing.NewStay(builder.Date(2025, time.June, 5), builder.Date(2025, time.June, 8), pricing.Guests{Adults: 2})
	require.NoError(t, err)
	charge := pricing.ResolveStay(profile, pricing.Overrides{}, stay)

	t.Run("only applicable nights count", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithProperties(propertyID).BuildDomain()
		require.NoError(t, err)

		app, err := booking.ApplyCouponToStay(c, propertyID, charge)
		require.NoError(t, err)
		assert.Equal(t, []time.Time{builder.Date(2025, time.June, 6), builder.Date(2025, time.June, 7)}, app.ApplicableNights)
		assert.True(t, app.EligibleAmount.Equal(builder.Dec("3500")))
		assert.True(t, app.Discount.Equal(builder.Dec("700")))
	})

	t.Run("cap binds once per stay", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithProperties(propertyID).
			With(func(b *builder.CouponBuilder) { b.MaxDiscountValue = builder.DecPtr("500") }).
			BuildDomain()
		require.NoError(t, err)

		app, err := booking.ApplyCouponToStay(c, propertyID, charge)
		require.NoError(t, err)
		assert.True(t, app.Discount.Equal(builder.Dec("500")))
	})

	t.Run("no applicable night", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithProperties(uuid.New()).BuildDomain()
		require.NoError(t, err)

		_, err = booking.ApplyCouponToStay(c, propertyID, charge)
		assert.ErrorIs(t, err, booking.ErrCouponNotApplicable)
	})

	t.Run("inactive coupon", func(t *testing.T) {
		c, err := builder.NewCouponBuilder().WithProperties(propertyID).
			With(func(b *builder.CouponBuilder) { b.IsActive = false }).
			BuildDomain()
		require.NoError(t, err)

		_, err = booking.ApplyCouponToStay(c, propertyID, charge)
		assert.ErrorIs(t, err, booking.ErrCouponInactive)
	})
}
