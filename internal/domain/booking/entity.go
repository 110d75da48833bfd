package booking

import (
	"strings"
	"time"

	"rental-admin/internal/domain/pricing"
	"rental-admin/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingProperty  = errs.Validation("property is required")
	ErrMissingCustomer  = errs.Validation("customer is required")
	ErrNegativeCharge   = errs.Validation("charges cannot be negative")
	ErrDiscountTooLarge = errs.Validation("discount cannot exceed rental plus extra guest charge")
	ErrNoteTooLong      = errs.Validation("notes cannot exceed 1000 characters")
	ErrBookingNotActive = errs.Conflict("booking is already cancelled")
)

const maxNoteLength = 1000

type Charges struct {
	Rental     decimal.Decimal
	ExtraGuest decimal.Decimal
	Discount   decimal.Decimal
}

func (c Charges) Subtotal() decimal.Decimal {
	return c.Rental.Add(c.ExtraGuest)
}

func (c Charges) Total() decimal.Decimal {
	return c.Subtotal().Sub(c.Discount)
}

func (c Charges) validate() error {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"rentalCharge", c.Rental},
		{"extraGuestCharge", c.ExtraGuest},
		{"discountAmount", c.Discount},
	}
	for _, f := range fields {
		if f.value.IsNegative() {
			return errs.Invalid(f.name, ErrNegativeCharge)
		}
	}
	if c.Discount.GreaterThan(c.Subtotal()) {
		return errs.Invalid("discountAmount", ErrDiscountTooLarge)
	}
	return nil
}

type Params struct {
	PropertyID uuid.UUID
	CustomerID uuid.UUID
	CouponID   *uuid.UUID
	Stay       pricing.Stay
	Charges    Charges
	Notes      string
	CreatedBy  uuid.UUID
}

type Booking struct {
	id         uuid.UUID
	propertyID uuid.UUID
	customerID uuid.UUID
	couponID   *uuid.UUID
	stay       pricing.Stay
	charges    Charges
	status     Status
	notes      string
	createdBy  uuid.UUID
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBooking(p Params, now time.Time) (*Booking, error) {
	if p.PropertyID == uuid.Nil {
		return nil, errs.Invalid("propertyId", ErrMissingProperty)
	}
	if p.CustomerID == uuid.Nil {
		return nil, errs.Invalid("customerId", ErrMissingCustomer)
	}
	if p.Stay.NightCount() == 0 {
		return nil, errs.Invalid("checkoutDate", pricing.ErrInvalidStayRange)
	}
	if err := p.Charges.validate(); err != nil {
		return nil, err
	}
	notes := strings.TrimSpace(p.Notes)
	if len(notes) > maxNoteLength {
		return nil, errs.Invalid("notes", ErrNoteTooLong)
	}

	return &Booking{
		id:         uuid.New(),
		propertyID: p.PropertyID,
		customerID: p.CustomerID,
		couponID:   p.CouponID,
		stay:       p.Stay,
		charges:    roundCharges(p.Charges),
		status:     StatusConfirmed,
		notes:      notes,
		createdBy:  p.CreatedBy,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructBooking(
	id, propertyID, customerID uuid.UUID,
	couponID *uuid.UUID,
	stay pricing.Stay,
	charges Charges,
	status Status,
	notes string,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		propertyID: propertyID,
		customerID: customerID,
		couponID:   couponID,
		stay:       stay,
		charges:    charges,
		status:     status,
		notes:      notes,
		createdBy:  createdBy,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Cancel moves CONFIRMED to CANCELLED; it happens at most once.
func (b *Booking) Cancel(now time.Time) error {
	if b.status != StatusConfirmed {
		return ErrBookingNotActive
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return nil
}

func (b *Booking) IsConfirmed() bool { return b.status == StatusConfirmed }

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) PropertyID() uuid.UUID  { return b.propertyID }
func (b *Booking) CustomerID() uuid.UUID  { return b.customerID }
func (b *Booking) CouponID() *uuid.UUID   { return b.couponID }
func (b *Booking) Stay() pricing.Stay     { return b.stay }
func (b *Booking) Charges() Charges       { return b.charges }
func (b *Booking) Total() decimal.Decimal { return b.charges.Total() }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) Notes() string          { return b.notes }
func (b *Booking) CreatedBy() uuid.UUID   { return b.createdBy }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }

func roundCharges(c Charges) Charges {
	return Charges{
		Rental:     c.Rental.Round(2),
		ExtraGuest: c.ExtraGuest.Round(2),
		Discount:   c.Discount.Round(2),
	}
}
