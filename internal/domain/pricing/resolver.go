package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// NightlyCharge is the resolved price of one night.
type NightlyCharge struct {
	Date       time.Time
	Bucket     DayBucket
	Overridden bool
	Rate       Rate

	ExtraAdults   int
	ExtraChildren int
	ExtraInfants  int

	// BaseAmount is the price after the bucket discount.
	BaseAmount       decimal.Decimal
	ExtraGuestCharge decimal.Decimal
	Total            decimal.Decimal
}

type StayCharge struct {
	Nights           []NightlyCharge
	RentalCharge     decimal.Decimal
	ExtraGuestCharge decimal.Decimal
	Total            decimal.Decimal
}

// Resolver is the pricing lookup used by booking and quote flows.
type Resolver interface {
	ResolveNight(profile *Profile, overrides Overrides, date time.Time, guests Guests) NightlyCharge
	ResolveStay(profile *Profile, overrides Overrides, stay Stay) StayCharge
}

type DefaultResolver struct{}

func NewDefaultResolver() *DefaultResolver {
	return &DefaultResolver{}
}

func (DefaultResolver) ResolveNight(profile *Profile, overrides Overrides, date time.Time, guests Guests) NightlyCharge {
	return ResolveNight(profile, overrides, date, guests)
}

func (DefaultResolver) ResolveStay(profile *Profile, overrides Overrides, stay Stay) StayCharge {
	return ResolveStay(profile, overrides, stay)
}

// ResolveNight applies the override for date field by field over the default bucket.
func ResolveNight(profile *Profile, overrides Overrides, date time.Time, guests Guests) NightlyCharge {
	date = DateOf(date)
	bucket := BucketFor(date.Weekday(), profile.Daywise())
	rate, _ := profile.Default(bucket)

	override, overridden := overrides.Lookup(date)
	if overridden {
		rate = override.Rates().Over(rate)
	}

	extraAdults, extraChildren, extraInfants := extraGuests(rate.BaseGuestCount, guests)
	surcharge := rate.AdultExtraGuestCharge.Mul(decimal.NewFromInt(int64(extraAdults))).
		Add(rate.ChildExtraGuestCharge.Mul(decimal.NewFromInt(int64(extraChildren)))).
		Add(rate.InfantExtraGuestCharge.Mul(decimal.NewFromInt(int64(extraInfants))))

	base := rate.Price.Sub(rate.Price.Mul(rate.Discount).Div(hundred))

	return NightlyCharge{
		Date:             date,
		Bucket:           bucket,
		Overridden:       overridden,
		Rate:             rate,
		ExtraAdults:      extraAdults,
		ExtraChildren:    extraChildren,
		ExtraInfants:     extraInfants,
		BaseAmount:       base.Round(2),
		ExtraGuestCharge: surcharge.Round(2),
		Total:            base.Round(2).Add(surcharge.Round(2)),
	}
}

// ResolveStay sums ResolveNight over [checkin, checkout).
func ResolveStay(profile *Profile, overrides Overrides, stay Stay) StayCharge {
	charge := StayCharge{
		Nights:           make([]NightlyCharge, 0, stay.NightCount()),
		RentalCharge:     decimal.Zero,
		ExtraGuestCharge: decimal.Zero,
		Total:            decimal.Zero,
	}
	for _, d := range stay.Nights() {
		n := ResolveNight(profile, overrides, d, stay.Guests())
		charge.Nights = append(charge.Nights, n)
		charge.RentalCharge = charge.RentalCharge.Add(n.BaseAmount)
		charge.ExtraGuestCharge = charge.ExtraGuestCharge.Add(n.ExtraGuestCharge)
		charge.Total = charge.Total.Add(n.Total)
	}
	return charge
}

// extraGuests charges adults beyond the base count; leftover allowance absorbs children, then infants.
func extraGuests(base int, g Guests) (adults, children, infants int) {
	if base < 0 {
		base = 0
	}
	adults = max(0, g.Adults-base)
	allowance := max(0, base-g.Adults)

	children = max(0, g.Children-allowance)
	allowance = max(0, allowance-g.Children)

	infants = max(0, g.Infants-allowance)
	return adults, children, infants
}
