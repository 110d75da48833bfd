package commands

import (
	"rental-admin/internal/infra"
	"rental-admin/internal/pkg/errs"
)

var (
	ErrEmailTaken        = errs.Conflict("email is already registered")
	ErrCouponCodeTaken   = errs.Conflict("coupon code already exists")
	ErrPropertyInUse     = errs.Conflict("property has bookings and cannot be deleted")
	ErrCustomerInUse     = errs.Conflict("customer has bookings and cannot be deleted")
	ErrBookingReferenced = errs.Validation("booking references a property, customer or coupon that does not exist")
)

// translate swaps repository kinds for the caller's sentinels. Errors of any
// other kind pass through untouched.
func translate(err error, notFound, duplicate error) error {
	switch {
	case err == nil:
		return nil
	case notFound != nil && infra.IsKind(err, infra.KindNotFound):
		return notFound
	case duplicate != nil && infra.IsKind(err, infra.KindDuplicateKey):
		return duplicate
	}
	return err
}
