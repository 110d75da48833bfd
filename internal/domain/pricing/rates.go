package pricing

import (
	"rental-admin/internal/pkg/errs"
	"rental-admin/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Rates is the nullable shape shared by a bucket row and a special-date override.
type Rates struct {
	Price                  *decimal.Decimal
	AdultExtraGuestCharge  *decimal.Decimal
	ChildExtraGuestCharge  *decimal.Decimal
	InfantExtraGuestCharge *decimal.Decimal
	BaseGuestCount         *int
	Discount               *decimal.Decimal
}

// Rate is a fully resolved bucket.
type Rate struct {
	Price                  decimal.Decimal
	AdultExtraGuestCharge  decimal.Decimal
	ChildExtraGuestCharge  decimal.Decimal
	InfantExtraGuestCharge decimal.Decimal
	BaseGuestCount         int
	Discount               decimal.Decimal
}

// Over resolves r field by field on top of fallback.
func (r Rates) Over(fallback Rate) Rate {
	return Rate{
		Price:                  patch.Coalesce(r.Price, fallback.Price),
		AdultExtraGuestCharge:  patch.Coalesce(r.AdultExtraGuestCharge, fallback.AdultExtraGuestCharge),
		ChildExtraGuestCharge:  patch.Coalesce(r.ChildExtraGuestCharge, fallback.ChildExtraGuestCharge),
		InfantExtraGuestCharge: patch.Coalesce(r.InfantExtraGuestCharge, fallback.InfantExtraGuestCharge),
		BaseGuestCount:         patch.Coalesce(r.BaseGuestCount, fallback.BaseGuestCount),
		Discount:               patch.Coalesce(r.Discount, fallback.Discount),
	}
}

// requireComplete reports the first null field, prefixed with the bucket name.
func (r Rates) requireComplete(prefix string) error {
	checks := []struct {
		name    string
		missing bool
	}{
		{"price", r.Price == nil},
		{"adultExtraGuestCharge", r.AdultExtraGuestCharge == nil},
		{"childExtraGuestCharge", r.ChildExtraGuestCharge == nil},
		{"infantExtraGuestCharge", r.InfantExtraGuestCharge == nil},
		{"baseGuestCount", r.BaseGuestCount == nil},
		{"discount", r.Discount == nil},
	}
	for _, c := range checks {
		if c.missing {
			return errs.Invalid(prefix+"."+c.name, ErrMissingRate)
		}
	}
	return nil
}

// validateValues checks the fields that are present.
func (r Rates) validateValues(prefix string) error {
	amounts := []struct {
		name  string
		value *decimal.Decimal
	}{
		{"price", r.Price},
		{"adultExtraGuestCharge", r.AdultExtraGuestCharge},
		{"childExtraGuestCharge", r.ChildExtraGuestCharge},
		{"infantExtraGuestCharge", r.InfantExtraGuestCharge},
	}
	for _, a := range amounts {
		if a.value != nil && a.value.IsNegative() {
			return errs.Invalid(prefix+"."+a.name, ErrNegativeAmount)
		}
	}
	if r.BaseGuestCount != nil && *r.BaseGuestCount < 0 {
		return errs.Invalid(prefix+".baseGuestCount", ErrNegativeBaseGuestCount)
	}
	if r.Discount != nil && (r.Discount.IsNegative() || r.Discount.GreaterThan(hundred)) {
		return errs.Invalid(prefix+".discount", ErrDiscountOutOfRange)
	}
	return nil
}

// orZero resolves null fields to zero; used for rows that were not validated as active.
func (r Rates) orZero() Rate {
	return r.Over(Rate{})
}
