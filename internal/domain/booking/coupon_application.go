package booking

import (
	"time"

	"rental-admin/internal/domain/coupon"
	"rental-admin/internal/domain/pricing"
	"rental-admin/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCouponInactive      = errs.Validation("coupon is not active")
	ErrCouponNotApplicable = errs.Validation("coupon does not apply to any night of the stay")
)

// CouponApplication is the outcome of applying one coupon across a stay.
type CouponApplication struct {
	CouponID         uuid.UUID
	ApplicableNights []time.Time
	EligibleAmount   decimal.Decimal
	Discount         decimal.Decimal
}

// ApplyCouponToStay sums the nightly totals the coupon applies to and computes the
// discount once on that sum, so a cap binds per booking rather than per night.
func ApplyCouponToStay(c *coupon.Coupon, propertyID uuid.UUID, charge pricing.StayCharge) (CouponApplication, error) {
	if !c.IsActive() {
		return CouponApplication{}, errs.Invalid("couponCode", ErrCouponInactive)
	}

	app := CouponApplication{CouponID: c.ID(), EligibleAmount: decimal.Zero}
	for _, n := range charge.Nights {
		if !c.IsApplicable(propertyID, n.Date) {
			continue
		}
		app.ApplicableNights = append(app.ApplicableNights, n.Date)
		app.EligibleAmount = app.EligibleAmount.Add(n.Total)
	}
	if len(app.ApplicableNights) == 0 {
		return CouponApplication{}, errs.Invalid("couponCode", ErrCouponNotApplicable)
	}

	app.Discount = c.ComputeDiscount(app.EligibleAmount)
	return app, nil
}
