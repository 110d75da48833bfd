//go:build unit || e2e

package builder

import (
	"time"

	"rental-admin/internal/domain/booking"
	"rental-admin/internal/domain/pricing"
	reqdto "rental-admin/internal/handler/dto/request"
	"rental-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	PropertyID uuid.UUID
	CustomerID uuid.UUID
	CouponID   *uuid.UUID
	Checkin    time.Time
	Checkout   time.Time
	Guests     pricing.Guests
	Rental     decimal.Decimal
	ExtraGuest decimal.Decimal
	Discount   decimal.Decimal
	Notes      string
	CreatedBy  uuid.UUID
	Now        time.Time
}

// NewBookingBuilder is a three-night stay for two adults totalling 3500.
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		PropertyID: uuid.New(),
		CustomerID: uuid.New(),
		Checkin:    Date(2025, time.January, 1),
		Checkout:   Date(2025, time.January, 4),
		Guests:     pricing.Guests{Adults: 2},
		Rental:     Dec("3500"),
		ExtraGuest: Dec("0"),
		Discount:   Dec("0"),
		CreatedBy:  uuid.New(),
		Now:        time.Date(2024, time.December, 20, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) Stay() (pricing.Stay, error) {
	return pricing.NewStay(b.Checkin, b.Checkout, b.Guests)
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	stay, err := b.Stay()
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(booking.Params{
		PropertyID: b.PropertyID,
		CustomerID: b.CustomerID,
		CouponID:   b.CouponID,
		Stay:       stay,
		Charges: booking.Charges{
			Rental:     b.Rental,
			ExtraGuest: b.ExtraGuest,
			Discount:   b.Discount,
		},
		Notes:     b.Notes,
		CreatedBy: b.CreatedBy,
	}, b.Now)
}

func (b *BookingBuilder) BuildView(id uuid.UUID) *queries.BookingView {
	return &queries.BookingView{
		ID:               id,
		PropertyID:       b.PropertyID,
		PropertyName:     "Lakeside Villa",
		CustomerID:       b.CustomerID,
		CustomerName:     "Asha Rao",
		CustomerEmail:    "asha@example.com",
		CouponID:         b.CouponID,
		CheckinDate:      b.Checkin,
		CheckoutDate:     b.Checkout,
		AdultCount:       int32(b.Guests.Adults),
		ChildrenCount:    int32(b.Guests.Children),
		InfantCount:      int32(b.Guests.Infants),
		RentalCharge:     b.Rental,
		ExtraGuestCharge: b.ExtraGuest,
		DiscountAmount:   b.Discount,
		TotalAmount:      b.Rental.Add(b.ExtraGuest).Sub(b.Discount),
		PaidAmount:       decimal.Zero,
		Status:           booking.StatusConfirmed.String(),
		Notes:            b.Notes,
		CreatedBy:        b.CreatedBy,
		CreatedAt:        b.Now,
		UpdatedAt:        b.Now,
	}
}

// BuildRequestDTO leaves every charge null so the server prices the stay.
func (b *BookingBuilder) BuildRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		PropertyID: b.PropertyID,
		CustomerID: b.CustomerID,
		Checkin:    b.Checkin.Format(time.DateOnly),
		Checkout:   b.Checkout.Format(time.DateOnly),
		Adults:     b.Guests.Adults,
		Children:   b.Guests.Children,
		Infants:    b.Guests.Infants,
		Notes:      b.Notes,
	}
}
