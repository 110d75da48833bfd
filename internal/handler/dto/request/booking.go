package request

import (
	"time"

	"rental-admin/internal/domain/pricing"
	"rental-admin/internal/handler/validation"
	"rental-admin/internal/pkg/errs"
	"rental-admin/internal/pkg/patch"
	"rental-admin/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateBookingRequest leaves charges null to have them priced from the property profile.
type CreateBookingRequest struct {
	PropertyID       uuid.UUID        `json:"property_id" binding:"required"`
	CustomerID       uuid.UUID        `json:"customer_id" binding:"required"`
	Checkin          string           `json:"checkin" binding:"required,isodate"`
	Checkout         string           `json:"checkout" binding:"required,isodate"`
	Adults           int              `json:"adults" binding:"min=0"`
	Children         int              `json:"children" binding:"min=0"`
	Infants          int              `json:"infants" binding:"min=0"`
	RentalCharge     *decimal.Decimal `json:"rental_charge"`
	ExtraGuestCharge *decimal.Decimal `json:"extra_guest_charge"`
	DiscountAmount   *decimal.Decimal `json:"discount_amount"`
	CouponCode       string           `json:"coupon_code" binding:"max=32"`
	Notes            string           `json:"notes" binding:"max=1000"`
}

func (r *CreateBookingRequest) ToCommand() (commands.CreateBookingRequest, error) {
	checkin, err := validation.ParseDate(r.Checkin)
	if err != nil {
		return commands.CreateBookingRequest{}, errs.Invalid("checkin", pricing.ErrInvalidStayRange)
	}
	checkout, err := validation.ParseDate(r.Checkout)
	if err != nil {
		return commands.CreateBookingRequest{}, errs.Invalid("checkout", pricing.ErrInvalidStayRange)
	}
	return commands.CreateBookingRequest{
		PropertyID:       r.PropertyID,
		CustomerID:       r.CustomerID,
		Checkin:          checkin,
		Checkout:         checkout,
		Guests:           pricing.Guests{Adults: r.Adults, Children: r.Children, Infants: r.Infants},
		RentalCharge:     r.RentalCharge,
		ExtraGuestCharge: r.ExtraGuestCharge,
		DiscountAmount:   r.DiscountAmount,
		CouponCode:       r.CouponCode,
		Notes:            r.Notes,
	}, nil
}

type RecordPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method" binding:"required,paymentmethod"`
	Reference string          `json:"reference" binding:"max=255"`
	PaidAt    *time.Time      `json:"paid_at"`
}

func (r *RecordPaymentRequest) ToCommand() commands.RecordPaymentRequest {
	return commands.RecordPaymentRequest{
		Amount:    r.Amount,
		Method:    r.Method,
		Reference: r.Reference,
		PaidAt:    patch.Coalesce(r.PaidAt, time.Time{}),
	}
}

type CancelBookingRequest struct {
	Reason       string          `json:"reason" binding:"required,max=1000"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
}

func (r *CancelBookingRequest) ToCommand() commands.CancelBookingRequest {
	return commands.CancelBookingRequest{Reason: r.Reason, RefundAmount: r.RefundAmount}
}
