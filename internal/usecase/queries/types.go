package queries

import (
	"time"

	"rental-admin/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserView represents read-optimized user data with authorization info
type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type OverrideView struct {
	Date  time.Time     `json:"date"`
	Rates pricing.Rates `json:"rates"`
}

// PropertyView carries the raw bucket rows, including buckets inactive under the current mode.
type PropertyView struct {
	ID        uuid.UUID                           `json:"id"`
	Name      string                              `json:"name"`
	Address   string                              `json:"address"`
	City      string                              `json:"city"`
	MaxGuests int32                               `json:"max_guests"`
	Daywise   bool                                `json:"daywise"`
	IsActive  bool                                `json:"is_active"`
	Rates     map[pricing.DayBucket]pricing.Rates `json:"rates"`
	Overrides []OverrideView                      `json:"overrides"`
	CreatedAt time.Time                           `json:"created_at"`
	UpdatedAt time.Time                           `json:"updated_at"`
}

type PropertyListItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	MaxGuests int32     `json:"max_guests"`
	Daywise   bool      `json:"daywise"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type CouponView struct {
	ID               uuid.UUID        `json:"id"`
	Name             string           `json:"name"`
	Code             string           `json:"code"`
	ValidFrom        time.Time        `json:"valid_from"`
	ValidTo          time.Time        `json:"valid_to"`
	DiscountType     string           `json:"discount_type"`
	DiscountValue    decimal.Decimal  `json:"discount_value"`
	MaxDiscountValue *decimal.Decimal `json:"max_discount_value,omitempty"`
	Weekdays         []time.Weekday   `json:"weekdays"`
	PropertyIDs      []uuid.UUID      `json:"property_ids"`
	IsActive         bool             `json:"is_active"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type CustomerView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BookingView struct {
	ID               uuid.UUID       `json:"id"`
	PropertyID       uuid.UUID       `json:"property_id"`
	PropertyName     string          `json:"property_name"`
	CustomerID       uuid.UUID       `json:"customer_id"`
	CustomerName     string          `json:"customer_name"`
	CustomerEmail    string          `json:"customer_email"`
	CouponID         *uuid.UUID      `json:"coupon_id,omitempty"`
	CouponCode       *string         `json:"coupon_code,omitempty"`
	CheckinDate      time.Time       `json:"checkin_date"`
	CheckoutDate     time.Time       `json:"checkout_date"`
	AdultCount       int32           `json:"adult_count"`
	ChildrenCount    int32           `json:"children_count"`
	InfantCount      int32           `json:"infant_count"`
	RentalCharge     decimal.Decimal `json:"rental_charge"`
	ExtraGuestCharge decimal.Decimal `json:"extra_guest_charge"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	PaidAmount       decimal.Decimal `json:"paid_amount"`
	Status           string          `json:"status"`
	Notes            string          `json:"notes"`
	CreatedBy        uuid.UUID       `json:"created_by"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Outstanding is what is still owed; it is never negative.
func (b *BookingView) Outstanding() decimal.Decimal {
	out := b.TotalAmount.Sub(b.PaidAmount)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

type BookingListItem struct {
	ID           uuid.UUID       `json:"id"`
	PropertyID   uuid.UUID       `json:"property_id"`
	PropertyName string          `json:"property_name"`
	CustomerID   uuid.UUID       `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	CheckinDate  time.Time       `json:"checkin_date"`
	CheckoutDate time.Time       `json:"checkout_date"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

type PaymentView struct {
	ID         uuid.UUID       `json:"id"`
	BookingID  uuid.UUID       `json:"booking_id"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	Reference  string          `json:"reference"`
	PaidAt     time.Time       `json:"paid_at"`
	RecordedBy uuid.UUID       `json:"recorded_by"`
	CreatedAt  time.Time       `json:"created_at"`
}

type CancellationListItem struct {
	ID           uuid.UUID       `json:"id"`
	BookingID    uuid.UUID       `json:"booking_id"`
	PropertyID   uuid.UUID       `json:"property_id"`
	PropertyName string          `json:"property_name"`
	Reason       string          `json:"reason"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
	CancelledBy  uuid.UUID       `json:"cancelled_by"`
	CancelledAt  time.Time       `json:"cancelled_at"`
}
