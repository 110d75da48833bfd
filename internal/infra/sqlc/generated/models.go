// Maintained by hand in the shape sqlc emits; keep in step with queries/ and sqlc.yaml.

package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Bookings struct {
	ID               uuid.UUID          `json:"id"`
	PropertyID       uuid.UUID          `json:"property_id"`
	CustomerID       uuid.UUID          `json:"customer_id"`
	CouponID         pgtype.UUID        `json:"coupon_id"`
	CheckinDate      pgtype.Date        `json:"checkin_date"`
	CheckoutDate     pgtype.Date        `json:"checkout_date"`
	AdultCount       int32              `json:"adult_count"`
	ChildrenCount    int32              `json:"children_count"`
	InfantCount      int32              `json:"infant_count"`
	RentalCharge     pgtype.Numeric     `json:"rental_charge"`
	ExtraGuestCharge pgtype.Numeric     `json:"extra_guest_charge"`
	DiscountAmount   pgtype.Numeric     `json:"discount_amount"`
	TotalAmount      pgtype.Numeric     `json:"total_amount"`
	Status           string             `json:"status"`
	Notes            pgtype.Text        `json:"notes"`
	CreatedBy        uuid.UUID          `json:"created_by"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

type Cancellations struct {
	ID           uuid.UUID          `json:"id"`
	BookingID    uuid.UUID          `json:"booking_id"`
	Reason       string             `json:"reason"`
	RefundAmount pgtype.Numeric     `json:"refund_amount"`
	CancelledBy  uuid.UUID          `json:"cancelled_by"`
	CancelledAt  pgtype.Timestamptz `json:"cancelled_at"`
}

type CouponProperties struct {
	CouponID   uuid.UUID `json:"coupon_id"`
	PropertyID uuid.UUID `json:"property_id"`
}

type Coupons struct {
	ID               uuid.UUID          `json:"id"`
	Name             string             `json:"name"`
	Code             string             `json:"code"`
	ValidFrom        pgtype.Date        `json:"valid_from"`
	ValidTo          pgtype.Date        `json:"valid_to"`
	DiscountType     string             `json:"discount_type"`
	DiscountValue    pgtype.Numeric     `json:"discount_value"`
	MaxDiscountValue pgtype.Numeric     `json:"max_discount_value"`
	Monday           bool               `json:"monday"`
	Tuesday          bool               `json:"tuesday"`
	Wednesday        bool               `json:"wednesday"`
	Thursday         bool               `json:"thursday"`
	Friday           bool               `json:"friday"`
	Saturday         bool               `json:"saturday"`
	Sunday           bool               `json:"sunday"`
	IsActive         bool               `json:"is_active"`
	CreatedAt        pgtype.Timestamptz `json:"created_at"`
	UpdatedAt        pgtype.Timestamptz `json:"updated_at"`
}

type Customers struct {
	ID        uuid.UUID          `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Phone     pgtype.Text        `json:"phone"`
	Notes     pgtype.Text        `json:"notes"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

type Payments struct {
	ID         uuid.UUID          `json:"id"`
	BookingID  uuid.UUID          `json:"booking_id"`
	Amount     pgtype.Numeric     `json:"amount"`
	Method     string             `json:"method"`
	Reference  pgtype.Text        `json:"reference"`
	PaidAt     pgtype.Timestamptz `json:"paid_at"`
	RecordedBy uuid.UUID          `json:"recorded_by"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}

type Properties struct {
	ID           uuid.UUID          `json:"id"`
	Name         string             `json:"name"`
	Address      string             `json:"address"`
	City         string             `json:"city"`
	MaxGuests    int32              `json:"max_guests"`
	DaywisePrice bool               `json:"daywise_price"`
	IsActive     bool               `json:"is_active"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type PropertyRates struct {
	PropertyID             uuid.UUID      `json:"property_id"`
	Bucket                 string         `json:"bucket"`
	Price                  pgtype.Numeric `json:"price"`
	AdultExtraGuestCharge  pgtype.Numeric `json:"adult_extra_guest_charge"`
	ChildExtraGuestCharge  pgtype.Numeric `json:"child_extra_guest_charge"`
	InfantExtraGuestCharge pgtype.Numeric `json:"infant_extra_guest_charge"`
	BaseGuestCount         pgtype.Int4    `json:"base_guest_count"`
	Discount               pgtype.Numeric `json:"discount"`
}

type SpecialDatePrices struct {
	ID                     uuid.UUID      `json:"id"`
	PropertyID             uuid.UUID      `json:"property_id"`
	Date                   pgtype.Date    `json:"date"`
	Price                  pgtype.Numeric `json:"price"`
	AdultExtraGuestCharge  pgtype.Numeric `json:"adult_extra_guest_charge"`
	ChildExtraGuestCharge  pgtype.Numeric `json:"child_extra_guest_charge"`
	InfantExtraGuestCharge pgtype.Numeric `json:"infant_extra_guest_charge"`
	BaseGuestCount         pgtype.Int4    `json:"base_guest_count"`
	Discount               pgtype.Numeric `json:"discount"`
}

type Users struct {
	ID           uuid.UUID          `json:"id"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"password_hash"`
	Role         string             `json:"role"`
	LastLogin    pgtype.Timestamptz `json:"last_login"`
	IsActive     bool               `json:"is_active"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}
