//go:build unit

package property_test

import (
	"testing"
	"time"

	"rental-admin/internal/domain/pricing"
	"rental-admin/internal/domain/property"
	"rental-admin/internal/pkg/errs"
	"rental-admin/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PropertyBuilder)
	errIs  error
}

func TestNewProperty(t *testing.T) {
	runCases(t, []testCase{
		{name: "aggregate pricing", mutate: func(b *builder.PropertyBuilder) {}},
		{name: "daywise pricing", mutate: func(b *builder.PropertyBuilder) { b.Pricing.WithDaywise() }},
		{
			name:   "empty name",
			mutate: func(b *builder.PropertyBuilder) { b.Name = "" },
			errIs:  property.ErrEmptyName,
		},
		{
			name:   "zero capacity",
			mutate: func(b *builder.PropertyBuilder) { b.MaxGuests = 0 },
			errIs:  property.ErrInvalidCapacity,
		},
		{
			name: "daywise with missing monday price",
			mutate: func(b *builder.PropertyBuilder) {
				b.Pricing.WithDaywise().WithRate(pricing.BucketMonday, func(r *pricing.Rates) { r.Price = nil })
			},
			errIs: pricing.ErrMissingRate,
		},
		{
			name: "duplicate override date",
			mutate: func(b *builder.PropertyBuilder) {
				d := builder.Date(2025, time.December, 31)
				b.Pricing.WithOverride(d, pricing.Rates{Price: builder.DecPtr("9000")}).
					WithOverride(d, pricing.Rates{Price: builder.DecPtr("8000")})
			},
			errIs: pricing.ErrDuplicateOverrideDate,
		},
		{
			name: "override with negative surcharge",
			mutate: func(b *builder.PropertyBuilder) {
				b.Pricing.WithOverride(builder.Date(2025, time.December, 31), pricing.Rates{AdultExtraGuestCharge: builder.DecPtr("-5")})
			},
			errIs: pricing.ErrNegativeAmount,
		},
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewPropertyBuilder().With(c.mutate).BuildDomain()
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

func TestProperty_Revise(t *testing.T) {
	p, err := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
		b.Pricing.WithOverride(builder.Date(2025, time.December, 31), pricing.Rates{Price: builder.DecPtr("9000")})
	}).BuildDomain()
	require.NoError(t, err)
	require.Equal(t, 1, p.Overrides().Len())

	t.Run("invalid revision keeps the previous state", func(t *testing.T) {
		bad := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
			b.Name = "Renamed"
			b.Pricing.WithRate(pricing.BucketWeekend, func(r *pricing.Rates) { r.Discount = nil })
		})
		require.ErrorIs(t, p.Revise(bad.Params(), time.Now()), pricing.ErrMissingRate)
		assert.Equal(t, "Lakeview Cottage", p.Name())
		assert.Equal(t, 1, p.Overrides().Len())
	})

	t.Run("valid revision replaces the override set", func(t *testing.T) {
		good := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) {
			b.Name = "Renamed"
			b.Pricing.WithOverride(builder.Date(2026, time.January, 1), pricing.Rates{Price: builder.DecPtr("7000")}).
				WithOverride(builder.Date(2026, time.January, 2), pricing.Rates{Discount: builder.DecPtr("5")})
		})
		require.NoError(t, p.Revise(good.Params(), time.Now()))
		assert.Equal(t, "Renamed", p.Name())
		assert.Equal(t, 2, p.Overrides().Len())
		_, ok := p.Overrides().Lookup(builder.Date(2025, time.December, 31))
		assert.False(t, ok)
	})
}

func TestProperty_AccommodatesAndQuote(t *testing.T) {
	p, err := builder.NewPropertyBuilder().BuildDomain()
	require.NoError(t, err)

	assert.NoError(t, p.Accommodates(pricing.Guests{Adults: 4, Children: 2}))
	assert.ErrorIs(t, p.Accommodates(pricing.Guests{Adults: 5, Children: 2}), property.ErrTooManyGuests)

	stay, err := pricing.NewStay(builder.Date(2025, time.January, 1), builder.Date(2025, time.January, 4), pricing.Guests{Adults: 2})
	require.NoError(t, err)
	quote := p.Quote(pricing.NewDefaultResolver(), stay)
	assert.True(t, quote.Total.Equal(builder.Dec("3500")))

	inactive, err := builder.NewPropertyBuilder().With(func(b *builder.PropertyBuilder) { b.IsActive = false }).BuildDomain()
	require.NoError(t, err)
	assert.ErrorIs(t, inactive.Accommodates(pricing.Guests{Adults: 1}), property.ErrInactive)
}
