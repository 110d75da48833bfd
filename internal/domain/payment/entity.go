package payment

import (
	"strings"
	"time"

	"rental-admin/internal/domain/booking"
	"rental-admin/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidMethod      = errs.Validation("payment method must be CASH, CARD, BANK_TRANSFER or UPI")
	ErrNonPositiveAmount  = errs.Validation("payment amount must be greater than zero")
	ErrExceedsOutstanding = errs.Validation("payment exceeds the outstanding booking balance")
	ErrBookingCancelled   = errs.Conflict("payments cannot be recorded on a cancelled booking")
)

type Method string

const (
	MethodCash         Method = "CASH"
	MethodCard         Method = "CARD"
	MethodBankTransfer Method = "BANK_TRANSFER"
	MethodUPI          Method = "UPI"
)

func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(strings.TrimSpace(s)))
	switch m {
	case MethodCash, MethodCard, MethodBankTransfer, MethodUPI:
		return m, nil
	default:
		return "", errs.Invalid("method", ErrInvalidMethod)
	}
}

func (m Method) String() string { return string(m) }

// Ledger is the booking state a new payment is checked against.
type Ledger struct {
	BookingID uuid.UUID
	Status    booking.Status
	Total     decimal.Decimal
	Paid      decimal.Decimal
}

func (l Ledger) Outstanding() decimal.Decimal {
	return l.Total.Sub(l.Paid)
}

type Params struct {
	Amount     decimal.Decimal
	Method     string
	Reference  string
	PaidAt     time.Time
	RecordedBy uuid.UUID
}

type Payment struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	amount     decimal.Decimal
	method     Method
	reference  string
	paidAt     time.Time
	recordedBy uuid.UUID
	createdAt  time.Time
}

// NewPayment keeps the running total of payments at or below the booking total.
func NewPayment(ledger Ledger, p Params, now time.Time) (*Payment, error) {
	if ledger.Status != booking.StatusConfirmed {
		return nil, ErrBookingCancelled
	}
	if !p.Amount.IsPositive() {
		return nil, errs.Invalid("amount", ErrNonPositiveAmount)
	}
	amount := p.Amount.Round(2)
	if amount.GreaterThan(ledger.Outstanding()) {
		return nil, errs.Invalid("amount", ErrExceedsOutstanding)
	}
	method, err := ParseMethod(p.Method)
	if err != nil {
		return nil, err
	}
	paidAt := p.PaidAt
	if paidAt.IsZero() {
		paidAt = now
	}

	return &Payment{
		id:         uuid.New(),
		bookingID:  ledger.BookingID,
		amount:     amount,
		method:     method,
		reference:  strings.TrimSpace(p.Reference),
		paidAt:     paidAt,
		recordedBy: p.RecordedBy,
		createdAt:  now,
	}, nil
}

func (p *Payment) ID() uuid.UUID           { return p.id }
func (p *Payment) BookingID() uuid.UUID    { return p.bookingID }
func (p *Payment) Amount() decimal.Decimal { return p.amount }
func (p *Payment) Method() Method          { return p.method }
func (p *Payment) Reference() string       { return p.reference }
func (p *Payment) PaidAt() time.Time       { return p.paidAt }
func (p *Payment) RecordedBy() uuid.UUID   { return p.recordedBy }
func (p *Payment) CreatedAt() time.Time    { return p.createdAt }
