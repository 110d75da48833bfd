package response

import (
	"rental-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID               string          `json:"id"`
	PropertyID       string          `json:"property_id"`
	PropertyName     string          `json:"property_name"`
	CustomerID       string          `json:"customer_id"`
	CustomerName     string          `json:"customer_name"`
	CustomerEmail    string          `json:"customer_email"`
	CouponID         *uuid.UUID      `json:"coupon_id,omitempty"`
	CouponCode       *string         `json:"coupon_code,omitempty"`
	CheckinDate      string          `json:"checkin_date"`
	CheckoutDate     string          `json:"checkout_date"`
	AdultCount       int32           `json:"adult_count"`
	ChildrenCount    int32           `json:"children_count"`
	InfantCount      int32           `json:"infant_count"`
	RentalCharge     decimal.Decimal `json:"rental_charge"`
	ExtraGuestCharge decimal.Decimal `json:"extra_guest_charge"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	PaidAmount       decimal.Decimal `json:"paid_amount"`
	Outstanding      decimal.Decimal `json:"outstanding"`
	Status           string          `json:"status"`
	Notes            string          `json:"notes,omitempty"`
	CreatedBy        string          `json:"created_by"`
	CreatedAt        int64           `json:"created_at"`
	UpdatedAt        int64           `json:"updated_at"`
}

func NewBooking(v *queries.BookingView) (*BookingResponse, error) {
	res, err := copyView[BookingResponse](v)
	if err != nil {
		return nil, err
	}
	res.Outstanding = v.Outstanding()
	return &res, nil
}

type BookingListItemResponse struct {
	ID           string          `json:"id"`
	PropertyID   string          `json:"property_id"`
	PropertyName string          `json:"property_name"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	CheckinDate  string          `json:"checkin_date"`
	CheckoutDate string          `json:"checkout_date"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"`
	CreatedAt    int64           `json:"created_at"`
}

func NewBookingPage(items []*queries.BookingListItem, next *queries.Cursor) (*Page[BookingListItemResponse], error) {
	return newPage[*queries.BookingListItem, BookingListItemResponse](items, next)
}

type PaymentResponse struct {
	ID         string          `json:"id"`
	BookingID  string          `json:"booking_id"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	Reference  string          `json:"reference,omitempty"`
	PaidAt     int64           `json:"paid_at"`
	RecordedBy string          `json:"recorded_by"`
	CreatedAt  int64           `json:"created_at"`
}

func NewPayments(items []*queries.PaymentView) ([]PaymentResponse, error) {
	out := make([]PaymentResponse, 0, len(items))
	for _, p := range items {
		dto, err := copyView[PaymentResponse](p)
		if err != nil {
			return nil, err
		}
		out = append(out, dto)
	}
	return out, nil
}

type CancellationResponse struct {
	ID           string          `json:"id"`
	BookingID    string          `json:"booking_id"`
	PropertyID   string          `json:"property_id"`
	PropertyName string          `json:"property_name"`
	Reason       string          `json:"reason"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
	CancelledBy  string          `json:"cancelled_by"`
	CancelledAt  int64           `json:"cancelled_at"`
}

func NewCancellationPage(items []*queries.CancellationListItem, next *queries.Cursor) (*Page[CancellationResponse], error) {
	return newPage[*queries.CancellationListItem, CancellationResponse](items, next)
}
