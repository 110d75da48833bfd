package pricing

import (
	"time"

	"rental-admin/internal/pkg/errs"
)

// MaxStayNights bounds a single stay.
const MaxStayNights = 366

type Guests struct {
	Adults   int
	Children int
	Infants  int
}

func (g Guests) validate() error {
	if g.Adults < 1 {
		return errs.Invalid("adultCount", ErrNoAdults)
	}
	if g.Children < 0 {
		return errs.Invalid("childrenCount", ErrNegativeGuestCount)
	}
	if g.Infants < 0 {
		return errs.Invalid("infantCount", ErrNegativeGuestCount)
	}
	return nil
}

func (g Guests) Total() int { return g.Adults + g.Children + g.Infants }

// Stay covers the nights [checkin, checkout).
type Stay struct {
	checkin  time.Time
	checkout time.Time
	guests   Guests
}

func NewStay(checkin, checkout time.Time, guests Guests) (Stay, error) {
	in, out := DateOf(checkin), DateOf(checkout)
	if !out.After(in) {
		return Stay{}, errs.Invalid("checkoutDate", ErrInvalidStayRange)
	}
	if nights(in, out) > MaxStayNights {
		return Stay{}, errs.Invalid("checkoutDate", ErrStayTooLong)
	}
	if err := guests.validate(); err != nil {
		return Stay{}, err
	}
	return Stay{checkin: in, checkout: out, guests: guests}, nil
}

func (s Stay) Checkin() time.Time  { return s.checkin }
func (s Stay) Checkout() time.Time { return s.checkout }
func (s Stay) Guests() Guests      { return s.guests }
func (s Stay) NightCount() int     { return nights(s.checkin, s.checkout) }

// Nights lists every charged date; the checkout date is excluded.
func (s Stay) Nights() []time.Time {
	out := make([]time.Time, 0, s.NightCount())
	for d := s.checkin; d.Before(s.checkout); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

func nights(in, out time.Time) int {
	return int(out.Sub(in).Hours() / 24)
}
