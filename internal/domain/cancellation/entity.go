package cancellation

import (
	"strings"
	"time"

	"rental-admin/internal/domain/booking"
	"rental-admin/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyReason       = errs.Validation("cancellation reason cannot be empty")
	ErrNegativeRefund    = errs.Validation("refund amount cannot be negative")
	ErrRefundExceedsPaid = errs.Validation("refund cannot exceed the amount paid")
	ErrAlreadyCancelled  = errs.Conflict("booking already has a cancellation")
)

type Params struct {
	Reason       string
	RefundAmount decimal.Decimal
	CancelledBy  uuid.UUID
}

type Cancellation struct {
	id           uuid.UUID
	bookingID    uuid.UUID
	reason       string
	refundAmount decimal.Decimal
	cancelledBy  uuid.UUID
	cancelledAt  time.Time
}

// Cancel records the cancellation and flips the booking to CANCELLED.
// paid is the sum of payments already recorded against b.
func Cancel(b *booking.Booking, paid decimal.Decimal, p Params, now time.Time) (*Cancellation, error) {
	if !b.IsConfirmed() {
		return nil, ErrAlreadyCancelled
	}
	reason := strings.TrimSpace(p.Reason)
	if reason == "" {
		return nil, errs.Invalid("reason", ErrEmptyReason)
	}
	if p.RefundAmount.IsNegative() {
		return nil, errs.Invalid("refundAmount", ErrNegativeRefund)
	}
	refund := p.RefundAmount.Round(2)
	if refund.GreaterThan(paid) {
		return nil, errs.Invalid("refundAmount", ErrRefundExceedsPaid)
	}
	if err := b.Cancel(now); err != nil {
		return nil, err
	}

	return &Cancellation{
		id:           uuid.New(),
		bookingID:    b.ID(),
		reason:       reason,
		refundAmount: refund,
		cancelledBy:  p.CancelledBy,
		cancelledAt:  now,
	}, nil
}

func (c *Cancellation) ID() uuid.UUID                 { return c.id }
func (c *Cancellation) BookingID() uuid.UUID          { return c.bookingID }
func (c *Cancellation) Reason() string                { return c.reason }
func (c *Cancellation) RefundAmount() decimal.Decimal { return c.refundAmount }
func (c *Cancellation) CancelledBy() uuid.UUID        { return c.cancelledBy }
func (c *Cancellation) CancelledAt() time.Time        { return c.cancelledAt }
