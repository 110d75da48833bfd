package queries

import (
	"rental-admin/internal/domain/coupon"
	"rental-admin/internal/domain/customer"
	"rental-admin/internal/domain/pricing"
	"rental-admin/internal/domain/property"
	"rental-admin/internal/domain/user"
	"rental-admin/internal/pkg/errs"
)

// Aggregate rehydrates the write model from a stored row set. Stored rows were validated on save,
// so only the override set is rebuilt through its constructor.
func (v *PropertyView) Aggregate() (*property.Property, error) {
	profile := pricing.ReconstructProfile(v.Daywise, v.Rates)

	list := make([]pricing.Override, 0, len(v.Overrides))
	for _, o := range v.Overrides {
		ov, err := pricing.NewOverride(o.Date, o.Rates)
		if err != nil {
			return nil, errs.Wrap(err, "rehydrate property override")
		}
		list = append(list, ov)
	}
	overrides, err := pricing.NewOverrides(list)
	if err != nil {
		return nil, errs.Wrap(err, "rehydrate property overrides")
	}

	return property.ReconstructProperty(
		v.ID, v.Name, v.Address, v.City, int(v.MaxGuests), v.IsActive,
		profile, overrides, v.CreatedAt, v.UpdatedAt,
	), nil
}

func (v *CouponView) Aggregate() (*coupon.Coupon, error) {
	kind, err := coupon.ParseDiscountType(v.DiscountType)
	if err != nil {
		return nil, errs.Wrap(err, "rehydrate coupon")
	}
	discount, err := coupon.NewDiscount(kind, v.DiscountValue, v.MaxDiscountValue)
	if err != nil {
		return nil, errs.Wrap(err, "rehydrate coupon")
	}
	mask, err := coupon.NewWeekdayMask(v.Weekdays...)
	if err != nil {
		return nil, errs.Wrap(err, "rehydrate coupon")
	}

	return coupon.ReconstructCoupon(
		v.ID, v.Name, coupon.Code(v.Code), v.ValidFrom, v.ValidTo,
		discount, mask, v.PropertyIDs, v.IsActive, v.CreatedAt, v.UpdatedAt,
	), nil
}

func (v *CustomerView) Aggregate() (*customer.Customer, error) {
	email, err := user.NewEmail(v.Email)
	if err != nil {
		return nil, errs.Wrap(err, "rehydrate customer")
	}
	return customer.ReconstructCustomer(v.ID, v.Name, email, v.Phone, v.Notes, v.CreatedAt, v.UpdatedAt), nil
}

// UserAggregate needs the hash, which views never carry.
func UserAggregate(v *UserView, passwordHash string) (*user.User, error) {
	email, err := user.NewEmail(v.Email)
	if err != nil {
		return nil, errs.Wrap(err, "rehydrate user")
	}
	role, err := user.NewRole(v.Role)
	if err != nil {
		return nil, errs.Wrap(err, "rehydrate user")
	}
	return user.ReconstructUser(v.ID, email, passwordHash, role, v.LastLogin, v.IsActive, v.CreatedAt, v.UpdatedAt), nil
}
