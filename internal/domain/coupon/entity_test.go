//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"rental-admin/internal/domain/coupon"
	"rental-admin/internal/pkg/errs"
	"rental-admin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.CouponBuilder)
	errIs  error
}

func TestNewCoupon(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewCouponBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, coupon.Code("SUMMER25"), actual.Code())
		assert.Equal(t, coupon.DiscountPercentage, actual.Discount().Type())
		assert.Equal(t, []time.Weekday{time.Friday, time.Saturday}, actual.Weekdays().Days())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	runCases(t, []testCase{
		{
			name:   "lowercase code is normalised",
			mutate: func(b *builder.CouponBuilder) { b.Code = " summer-25 " },
		},
		{
			name:   "code too short",
			mutate: func(b *builder.CouponBuilder) { b.Code = "AB" },
			errIs:  coupon.ErrInvalidCouponCode,
		},
		{
			name:   "empty name",
			mutate: func(b *builder.CouponBuilder) { b.Name = "  " },
			errIs:  coupon.ErrEmptyName,
		},
		{
			name:   "validFrom equals validTo",
			mutate: func(b *builder.CouponBuilder) { b.ValidTo = b.ValidFrom },
			errIs:  coupon.ErrSameValidityDates,
		},
		{
			name:   "validFrom after validTo",
			mutate: func(b *builder.CouponBuilder) { b.ValidFrom, b.ValidTo = b.ValidTo, b.ValidFrom },
			errIs:  coupon.ErrValidityReversed,
		},
		{
			name:   "no weekdays",
			mutate: func(b *builder.CouponBuilder) { b.Weekdays = nil },
			errIs:  coupon.ErrNoWeekdays,
		},
		{
			name:   "weekday past Saturday",
			mutate: func(b *builder.CouponBuilder) { b.Weekdays = []time.Weekday{time.Friday, time.Weekday(7)} },
			errIs:  coupon.ErrInvalidWeekday,
		},
		{
			name:   "negative weekday",
			mutate: func(b *builder.CouponBuilder) { b.Weekdays = []time.Weekday{time.Weekday(-1)} },
			errIs:  coupon.ErrInvalidWeekday,
		},
		{
			name:   "no linked properties",
			mutate: func(b *builder.CouponBuilder) { b.PropertyIDs = []uuid.UUID{uuid.Nil} },
			errIs:  coupon.ErrNoLinkedProperties,
		},
		{
			name:   "zero value",
			mutate: func(b *builder.CouponBuilder) { b.DiscountValue = builder.Dec("0") },
			errIs:  coupon.ErrNonPositiveValue,
		},
		{
			name:   "percentage without cap",
			mutate: func(b *builder.CouponBuilder) { b.MaxDiscountValue = nil },
			errIs:  coupon.ErrMissingMaxDiscount,
		},
		{
			name:   "percentage with zero cap",
			mutate: func(b *builder.CouponBuilder) { b.MaxDiscountValue = builder.DecPtr("0") },
			errIs:  coupon.ErrMissingMaxDiscount,
		},
		{
			name:   "percentage above 100",
			mutate: func(b *builder.CouponBuilder) { b.DiscountValue = builder.Dec("120") },
			errIs:  coupon.ErrPercentageTooHigh,
		},
		{
			name:   "flat without cap",
			mutate: func(b *builder.CouponBuilder) { b.WithFlat("500") },
		},
		{
			name:   "unknown discount type",
			mutate: func(b *builder.CouponBuilder) { b.DiscountType = "BOGO" },
			errIs:  coupon.ErrUnknownDiscountType,
		},
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewCouponBuilder().With(c.mutate).BuildDomain()

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

func TestCoupon_IsApplicable(t *testing.T) {
	p1, p2 := uuid.New(), uuid.New()
	c, err := builder.NewCouponBuilder().WithProperties(p1).BuildDomain()
	require.NoError(t, err)

	assert.True(t, c.IsApplicable(p1, builder.Date(2025, time.June, 6)), "friday in window")
	assert.False(t, c.IsApplicable(p1, builder.Date(2025, time.June, 5)), "thursday is masked out")
	assert.False(t, c.IsApplicable(p2, builder.Date(2025, time.June, 6)), "property not linked")

	t.Run("window is inclusive", func(t *testing.T) {
		// 2025-06-01 is a Sunday, 2025-06-28 a Saturday.
		sundayStart, err := builder.NewCouponBuilder().
			WithProperties(p1).
			With(func(b *builder.CouponBuilder) {
				b.Weekdays = []time.Weekday{time.Sunday, time.Monday}
				b.ValidTo = builder.Date(2025, time.June, 30)
			}).
			BuildDomain()
		require.NoError(t, err)
		assert.True(t, sundayStart.IsApplicable(p1, builder.Date(2025, time.June, 1)))
		assert.True(t, sundayStart.IsApplicable(p1, builder.Date(2025, time.June, 30)))
		assert.False(t, sundayStart.IsApplicable(p1, builder.Date(2025, time.July, 6)))
		assert.False(t, sundayStart.IsApplicable(p1, builder.Date(2025, time.May, 26)))
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		late := time.Date(2025, time.June, 30, 23, 30, 0, 0, time.UTC)
		assert.False(t, c.IsApplicable(p1, late), "monday")
		assert.True(t, c.IsApplicable(p1, time.Date(2025, time.June, 28, 23, 59, 0, 0, time.UTC)))
	})

	t.Run("check reports the reason", func(t *testing.T) {
		assert.Equal(t, coupon.ReasonNone, c.Check(p1, builder.Date(2025, time.June, 6)))
		assert.Equal(t, coupon.ReasonWeekdayExcluded, c.Check(p1, builder.Date(2025, time.June, 5)))
		assert.Equal(t, coupon.ReasonPropertyNotLinked, c.Check(p2, builder.Date(2025, time.June, 6)))
		assert.Equal(t, coupon.ReasonOutsideValidity, c.Check(p1, builder.Date(2025, time.July, 4)))

		inactive, err := builder.NewCouponBuilder().
			WithProperties(p1).
			With(func(b *builder.CouponBuilder) { b.IsActive = false }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, coupon.ReasonInactive, inactive.Check(p1, builder.Date(2025, time.June, 6)))
		assert.True(t, inactive.IsApplicable(p1, builder.Date(2025, time.June, 6)))
	})
}

func TestCoupon_ComputeDiscount(t *testing.T) {
	cases := []struct {
		name   string
		build  *builder.CouponBuilder
		charge string
		want   string
	}{
		{"flat clamps to the charge", builder.NewCouponBuilder().WithFlat("500"), "300", "300"},
		{"flat under the charge", builder.NewCouponBuilder().WithFlat("500"), "1200", "500"},
		{"percentage hits the cap", builder.NewCouponBuilder(), "10000", "1000"},
		{"percentage below the cap", builder.NewCouponBuilder(), "2500", "500"},
		{"zero charge", builder.NewCouponBuilder(), "0", "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := tc.build.BuildDomain()
			require.NoError(t, err)
			got := c.ComputeDiscount(builder.Dec(tc.charge))
			assert.True(t, got.Equal(builder.Dec(tc.want)), "got %s", got)
		})
	}
}

func TestCoupon_Revise(t *testing.T) {
	c, err := builder.NewCouponBuilder().BuildDomain()
	require.NoError(t, err)
	before := c.Code()

	bad := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.Weekdays = nil })
	err = c.Revise(bad.Params(), time.Now())
	require.ErrorIs(t, err, coupon.ErrNoWeekdays)
	assert.Equal(t, before, c.Code(), "failed revise leaves the coupon untouched")

	later := time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC)
	good := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) { b.Code = "AUTUMN" })
	require.NoError(t, c.Revise(good.Params(), later))
	assert.Equal(t, coupon.Code("AUTUMN"), c.Code())
	assert.Equal(t, later, c.UpdatedAt())
}
