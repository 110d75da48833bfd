//go:build unit || e2e

package builder

import (
	"time"

	"rental-admin/internal/domain/pricing"
	"rental-admin/internal/pkg/ptr"

	"github.com/shopspring/decimal"
)

// Dec parses a decimal literal for fixtures.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func DecPtr(s string) *decimal.Decimal {
	return ptr.To(Dec(s))
}

// Date builds a UTC calendar date.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type OverrideFixture struct {
	Date  time.Time
	Rates pricing.Rates
}

type PricingBuilder struct {
	Daywise   bool
	Rates     map[pricing.DayBucket]pricing.Rates
	Overrides []OverrideFixture
}

// NewPricingBuilder starts with a complete aggregate bucket set.
func NewPricingBuilder() *PricingBuilder {
	return &PricingBuilder{
		Rates: map[pricing.DayBucket]pricing.Rates{
			pricing.BucketWeekday:         FullRates("1000"),
			pricing.BucketWeekend:         FullRates("1500"),
			pricing.BucketWeekendSaturday: FullRates("2000"),
		},
	}
}

// FullRates fills every field: surcharges 300/200/100, two base guests, no discount.
func FullRates(price string) pricing.Rates {
	return pricing.Rates{
		Price:                  DecPtr(price),
		AdultExtraGuestCharge:  DecPtr("300"),
		ChildExtraGuestCharge:  DecPtr("200"),
		InfantExtraGuestCharge: DecPtr("100"),
		BaseGuestCount:         ptr.To(2),
		Discount:               DecPtr("0"),
	}
}

// WithDaywise switches to the per-weekday set, priced 1100 on Monday up to 1700 on Sunday.
func (b *PricingBuilder) WithDaywise() *PricingBuilder {
	b.Daywise = true
	prices := []string{"1100", "1200", "1300", "1400", "1500", "1600", "1700"}
	for i, bucket := range pricing.DaywiseBuckets() {
		b.Rates[bucket] = FullRates(prices[i])
	}
	return b
}

func (b *PricingBuilder) WithRate(bucket pricing.DayBucket, mutate func(*pricing.Rates)) *PricingBuilder {
	r := b.Rates[bucket]
	mutate(&r)
	b.Rates[bucket] = r
	return b
}

func (b *PricingBuilder) WithOverride(date time.Time, rates pricing.Rates) *PricingBuilder {
	b.Overrides = append(b.Overrides, OverrideFixture{Date: date, Rates: rates})
	return b
}

func (b *PricingBuilder) With(mutate func(*PricingBuilder)) *PricingBuilder {
	mutate(b)
	return b
}

func (b *PricingBuilder) BuildDomain() (*pricing.Profile, error) {
	return pricing.NewProfile(b.Daywise, b.Rates)
}

func (b *PricingBuilder) BuildOverrides() (pricing.Overrides, error) {
	list := make([]pricing.Override, 0, len(b.Overrides))
	for _, f := range b.Overrides {
		o, err := pricing.NewOverride(f.Date, f.Rates)
		if err != nil {
			return pricing.Overrides{}, err
		}
		list = append(list, o)
	}
	return pricing.NewOverrides(list)
}
