//go:build unit

package pricing_test

import (
	"testing"

	"rental-admin/internal/domain/pricing"
	"rental-admin/internal/pkg/errs"
	"rental-admin/internal/pkg/ptr"
	"rental-admin/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile(t *testing.T) {
	t.Run("aggregate set is accepted", func(t *testing.T) {
		p, err := builder.NewPricingBuilder().BuildDomain()
		require.NoError(t, err)
		assert.False(t, p.Daywise())

		r, ok := p.Default(pricing.BucketWeekend)
		require.True(t, ok)
		assert.True(t, r.Price.Equal(decimal.NewFromInt(1500)))

		_, ok = p.Default(pricing.BucketMonday)
		assert.False(t, ok, "inactive buckets are never resolved")
	})

	t.Run("daywise with missing monday price is rejected", func(t *testing.T) {
		_, err := builder.NewPricingBuilder().
			WithDaywise().
			WithRate(pricing.BucketMonday, func(r *pricing.Rates) { r.Price = nil }).
			BuildDomain()

		require.Error(t, err)
		assert.ErrorIs(t, err, pricing.ErrMissingRate)
		assert.ErrorIs(t, err, errs.ErrValidation)

		var verr *errs.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "monday.price", verr.Field)
	})

	t.Run("inactive set may stay incomplete", func(t *testing.T) {
		_, err := builder.NewPricingBuilder().
			WithRate(pricing.BucketMonday, func(r *pricing.Rates) { r.Price = builder.DecPtr("900") }).
			BuildDomain()
		require.NoError(t, err)
	})

	cases := []struct {
		name   string
		mutate func(*pricing.Rates)
		field  string
		errIs  error
	}{
		{
			name:   "missing base guest count",
			mutate: func(r *pricing.Rates) { r.BaseGuestCount = nil },
			field:  "weekendSaturday.baseGuestCount",
			errIs:  pricing.ErrMissingRate,
		},
		{
			name:   "negative price",
			mutate: func(r *pricing.Rates) { r.Price = builder.DecPtr("-1") },
			field:  "weekendSaturday.price",
			errIs:  pricing.ErrNegativeAmount,
		},
		{
			name:   "discount above 100",
			mutate: func(r *pricing.Rates) { r.Discount = builder.DecPtr("100.5") },
			field:  "weekendSaturday.discount",
			errIs:  pricing.ErrDiscountOutOfRange,
		},
		{
			name:   "negative base guest count",
			mutate: func(r *pricing.Rates) { r.BaseGuestCount = ptr.To(-1) },
			field:  "weekendSaturday.baseGuestCount",
			errIs:  pricing.ErrNegativeBaseGuestCount,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.NewPricingBuilder().
				WithRate(pricing.BucketWeekendSaturday, tc.mutate).
				BuildDomain()
			require.ErrorIs(t, err, tc.errIs)

			var verr *errs.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestBucketFor(t *testing.T) {
	// 2025-01-06 is a Monday.
	want := map[int]pricing.DayBucket{
		6:  pricing.BucketWeekday,
		7:  pricing.BucketWeekday,
		8:  pricing.BucketWeekday,
		9:  pricing.BucketWeekday,
		10: pricing.BucketWeekend,
		11: pricing.BucketWeekendSaturday,
		12: pricing.BucketWeekend,
	}
	for day, bucket := range want {
		d := builder.Date(2025, 1, day)
		assert.Equal(t, bucket, pricing.BucketFor(d.Weekday(), false), d.Weekday().String())
	}

	assert.Equal(t, pricing.BucketWednesday, pricing.BucketFor(builder.Date(2025, 1, 8).Weekday(), true))
	assert.Equal(t, pricing.BucketSaturday, pricing.BucketFor(builder.Date(2025, 1, 11).Weekday(), true))
}

func TestParseDayBucket(t *testing.T) {
	b, err := pricing.ParseDayBucket(" weekend_saturday ")
	require.NoError(t, err)
	assert.Equal(t, pricing.BucketWeekendSaturday, b)

	_, err = pricing.ParseDayBucket("HOLIDAY")
	assert.ErrorIs(t, err, pricing.ErrUnknownBucket)
}
