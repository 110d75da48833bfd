package response

import (
	"rental-admin/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type CouponResponse struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Code             string           `json:"code"`
	ValidFrom        string           `json:"valid_from"`
	ValidTo          string           `json:"valid_to"`
	DiscountType     string           `json:"discount_type"`
	DiscountValue    decimal.Decimal  `json:"discount_value"`
	MaxDiscountValue *decimal.Decimal `json:"max_discount_value,omitempty"`
	Weekdays         []string         `json:"weekdays"`
	PropertyIDs      []string         `json:"property_ids"`
	IsActive         bool             `json:"is_active"`
	CreatedAt        int64            `json:"created_at"`
	UpdatedAt        int64            `json:"updated_at"`
}

func NewCoupon(v *queries.CouponView) (*CouponResponse, error) {
	res, err := copyView[CouponResponse](v)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func NewCouponPage(items []*queries.CouponView, next *queries.Cursor) (*Page[CouponResponse], error) {
	return newPage[*queries.CouponView, CouponResponse](items, next)
}

type CouponCheckResponse struct {
	CouponID   string          `json:"coupon_id"`
	Code       string          `json:"code"`
	Applicable bool            `json:"applicable"`
	Reason     string          `json:"reason,omitempty"`
	Discount   decimal.Decimal `json:"discount"`
}

func NewCouponCheck(c *queries.CouponCheck) *CouponCheckResponse {
	return &CouponCheckResponse{
		CouponID:   c.CouponID.String(),
		Code:       c.Code,
		Applicable: c.Applicable,
		Reason:     string(c.Reason),
		Discount:   c.Discount,
	}
}
