package converter

import (
	"time"

	"rental-admin/internal/domain/booking"
	"rental-admin/internal/domain/cancellation"
	"rental-admin/internal/domain/coupon"
	"rental-admin/internal/domain/customer"
	"rental-admin/internal/domain/payment"
	"rental-admin/internal/domain/pricing"
	"rental-admin/internal/domain/property"
	"rental-admin/internal/domain/user"
	sqlc "rental-admin/internal/infra/sqlc/generated"
	"rental-admin/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	}
}

func PropertyToCreateParams(p *property.Property) sqlc.CreatePropertyParams {
	return sqlc.CreatePropertyParams{
		ID:           p.ID(),
		Name:         p.Name(),
		Address:      p.Address(),
		City:         p.City(),
		MaxGuests:    int32(p.MaxGuests()),
		DaywisePrice: p.Profile().Daywise(),
		IsActive:     p.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:    pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PropertyToUpdateParams(p *property.Property) sqlc.UpdatePropertyParams {
	return sqlc.UpdatePropertyParams{
		ID:           p.ID(),
		Name:         p.Name(),
		Address:      p.Address(),
		City:         p.City(),
		MaxGuests:    int32(p.MaxGuests()),
		DaywisePrice: p.Profile().Daywise(),
		IsActive:     p.IsActive(),
		UpdatedAt:    pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

// ProfileRows emits one row per stored bucket, inactive set included.
func ProfileRows(p *property.Property) []sqlc.InsertPropertyRateParams {
	profile := p.Profile()
	buckets := profile.Buckets()
	out := make([]sqlc.InsertPropertyRateParams, 0, len(buckets))
	for _, b := range buckets {
		r, _ := profile.Rates(b)
		out = append(out, PropertyRateToParams(p.ID(), b, r))
	}
	return out
}

func OverrideRows(p *property.Property) []sqlc.InsertSpecialDatePriceParams {
	list := p.Overrides().List()
	out := make([]sqlc.InsertSpecialDatePriceParams, 0, len(list))
	for _, o := range list {
		out = append(out, OverrideToParams(p.ID(), o))
	}
	return out
}

type weekdayColumns struct {
	Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday bool
}

func toWeekdayColumns(m coupon.WeekdayMask) weekdayColumns {
	return weekdayColumns{
		Monday:    m.Has(time.Monday),
		Tuesday:   m.Has(time.Tuesday),
		Wednesday: m.Has(time.Wednesday),
		Thursday:  m.Has(time.Thursday),
		Friday:    m.Has(time.Friday),
		Saturday:  m.Has(time.Saturday),
		Sunday:    m.Has(time.Sunday),
	}
}

// WeekdaysFromRow lists the enabled weekday columns, Monday first.
func WeekdaysFromRow(row sqlc.Coupons) []time.Weekday {
	flags := []struct {
		on  bool
		day time.Weekday
	}{
		{row.Monday, time.Monday},
		{row.Tuesday, time.Tuesday},
		{row.Wednesday, time.Wednesday},
		{row.Thursday, time.Thursday},
		{row.Friday, time.Friday},
		{row.Saturday, time.Saturday},
		{row.Sunday, time.Sunday},
	}
	out := make([]time.Weekday, 0, 7)
	for _, f := range flags {
		if f.on {
			out = append(out, f.day)
		}
	}
	return out
}

func CouponToCreateParams(c *coupon.Coupon) sqlc.CreateCouponParams {
	w := toWeekdayColumns(c.Weekdays())
	return sqlc.CreateCouponParams{
		ID:               c.ID(),
		Name:             c.Name(),
		Code:             c.Code().String(),
		ValidFrom:        pgconv.DateToPgtype(c.ValidFrom()),
		ValidTo:          pgconv.DateToPgtype(c.ValidTo()),
		DiscountType:     c.Discount().Type().String(),
		DiscountValue:    pgconv.DecimalToNumeric(c.Discount().Value()),
		MaxDiscountValue: pgconv.DecimalPtrToNumeric(c.Discount().MaxDiscountValue()),
		Monday:           w.Monday,
		Tuesday:          w.Tuesday,
		Wednesday:        w.Wednesday,
		Thursday:         w.Thursday,
		Friday:           w.Friday,
		Saturday:         w.Saturday,
		Sunday:           w.Sunday,
		IsActive:         c.IsActive(),
		CreatedAt:        pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func CouponToUpdateParams(c *coupon.Coupon) sqlc.UpdateCouponParams {
	w := toWeekdayColumns(c.Weekdays())
	return sqlc.UpdateCouponParams{
		ID:               c.ID(),
		Name:             c.Name(),
		Code:             c.Code().String(),
		ValidFrom:        pgconv.DateToPgtype(c.ValidFrom()),
		ValidTo:          pgconv.DateToPgtype(c.ValidTo()),
		DiscountType:     c.Discount().Type().String(),
		DiscountValue:    pgconv.DecimalToNumeric(c.Discount().Value()),
		MaxDiscountValue: pgconv.DecimalPtrToNumeric(c.Discount().MaxDiscountValue()),
		Monday:           w.Monday,
		Tuesday:          w.Tuesday,
		Wednesday:        w.Wednesday,
		Thursday:         w.Thursday,
		Friday:           w.Friday,
		Saturday:         w.Saturday,
		Sunday:           w.Sunday,
		IsActive:         c.IsActive(),
		UpdatedAt:        pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func CustomerToCreateParams(c *customer.Customer) sqlc.CreateCustomerParams {
	return sqlc.CreateCustomerParams{
		ID:        c.ID(),
		Name:      c.Name(),
		Email:     c.Email().Value(),
		Phone:     pgconv.TextOrNull(c.Phone()),
		Notes:     pgconv.TextOrNull(c.Notes()),
		CreatedAt: pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func CustomerToUpdateParams(c *customer.Customer) sqlc.UpdateCustomerParams {
	return sqlc.UpdateCustomerParams{
		ID:        c.ID(),
		Name:      c.Name(),
		Email:     c.Email().Value(),
		Phone:     pgconv.TextOrNull(c.Phone()),
		Notes:     pgconv.TextOrNull(c.Notes()),
		UpdatedAt: pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	stay := b.Stay()
	guests := stay.Guests()
	charges := b.Charges()
	return sqlc.CreateBookingParams{
		ID:               b.ID(),
		PropertyID:       b.PropertyID(),
		CustomerID:       b.CustomerID(),
		CouponID:         pgconv.UUIDPtrToPgtype(b.CouponID()),
		CheckinDate:      pgconv.DateToPgtype(stay.Checkin()),
		CheckoutDate:     pgconv.DateToPgtype(stay.Checkout()),
		AdultCount:       int32(guests.Adults),
		ChildrenCount:    int32(guests.Children),
		InfantCount:      int32(guests.Infants),
		RentalCharge:     pgconv.DecimalToNumeric(charges.Rental),
		ExtraGuestCharge: pgconv.DecimalToNumeric(charges.ExtraGuest),
		DiscountAmount:   pgconv.DecimalToNumeric(charges.Discount),
		TotalAmount:      pgconv.DecimalToNumeric(charges.Total()),
		Status:           b.Status().String(),
		Notes:            pgconv.TextOrNull(b.Notes()),
		CreatedBy:        b.CreatedBy(),
		CreatedAt:        pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

// BookingFromRow trusts the stored stay; checkout > checkin is a table constraint.
func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	stay, err := pricing.NewStay(
		pgconv.DateFromPgtype(row.CheckinDate),
		pgconv.DateFromPgtype(row.CheckoutDate),
		pricing.Guests{
			Adults:   int(row.AdultCount),
			Children: int(row.ChildrenCount),
			Infants:  int(row.InfantCount),
		},
	)
	if err != nil {
		return nil, err
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	charges := booking.Charges{
		Rental:     pgconv.DecimalFromNumeric(row.RentalCharge),
		ExtraGuest: pgconv.DecimalFromNumeric(row.ExtraGuestCharge),
		Discount:   pgconv.DecimalFromNumeric(row.DiscountAmount),
	}
	return booking.ReconstructBooking(
		row.ID, row.PropertyID, row.CustomerID,
		pgconv.UUIDPtrFromPgtype(row.CouponID),
		stay, charges, status,
		pgconv.StringFromPgtype(row.Notes),
		row.CreatedBy,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func PaymentToCreateParams(p *payment.Payment) sqlc.CreatePaymentParams {
	return sqlc.CreatePaymentParams{
		ID:         p.ID(),
		BookingID:  p.BookingID(),
		Amount:     pgconv.DecimalToNumeric(p.Amount()),
		Method:     p.Method().String(),
		Reference:  pgconv.TextOrNull(p.Reference()),
		PaidAt:     pgconv.TimeToPgtype(p.PaidAt()),
		RecordedBy: p.RecordedBy(),
		CreatedAt:  pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func CancellationToCreateParams(c *cancellation.Cancellation) sqlc.CreateCancellationParams {
	return sqlc.CreateCancellationParams{
		ID:           c.ID(),
		BookingID:    c.BookingID(),
		Reason:       c.Reason(),
		RefundAmount: pgconv.DecimalToNumeric(c.RefundAmount()),
		CancelledBy:  c.CancelledBy(),
		CancelledAt:  pgconv.TimeToPgtype(c.CancelledAt()),
	}
}

func CouponLinkParams(couponID uuid.UUID, propertyIDs []uuid.UUID) []sqlc.InsertCouponPropertyParams {
	out := make([]sqlc.InsertCouponPropertyParams, 0, len(propertyIDs))
	for _, pid := range propertyIDs {
		out = append(out, sqlc.InsertCouponPropertyParams{CouponID: couponID, PropertyID: pid})
	}
	return out
}
