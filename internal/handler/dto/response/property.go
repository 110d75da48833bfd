package response

import (
	"rental-admin/internal/domain/pricing"
	"rental-admin/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type RatesResponse struct {
	Price                  *decimal.Decimal `json:"price"`
	AdultExtraGuestCharge  *decimal.Decimal `json:"adult_extra_guest_charge"`
	ChildExtraGuestCharge  *decimal.Decimal `json:"child_extra_guest_charge"`
	InfantExtraGuestCharge *decimal.Decimal `json:"infant_extra_guest_charge"`
	BaseGuestCount         *int             `json:"base_guest_count"`
	Discount               *decimal.Decimal `json:"discount"`
}

type OverrideResponse struct {
	Date string `json:"date"`
	RatesResponse
}

type PropertyResponse struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	Address   string                   `json:"address"`
	City      string                   `json:"city"`
	MaxGuests int32                    `json:"max_guests"`
	Daywise   bool                     `json:"daywise"`
	IsActive  bool                     `json:"is_active"`
	Rates     map[string]RatesResponse `json:"rates"`
	Overrides []OverrideResponse       `json:"overrides"`
	CreatedAt int64                    `json:"created_at"`
	UpdatedAt int64                    `json:"updated_at"`
}

func newRates(r pricing.Rates) RatesResponse {
	return RatesResponse{
		Price:                  r.Price,
		AdultExtraGuestCharge:  r.AdultExtraGuestCharge,
		ChildExtraGuestCharge:  r.ChildExtraGuestCharge,
		InfantExtraGuestCharge: r.InfantExtraGuestCharge,
		BaseGuestCount:         r.BaseGuestCount,
		Discount:               r.Discount,
	}
}

// NewProperty keeps every stored bucket, including those inactive under the current mode.
func NewProperty(v *queries.PropertyView) *PropertyResponse {
	rates := make(map[string]RatesResponse, len(v.Rates))
	for bucket, r := range v.Rates {
		rates[bucket.String()] = newRates(r)
	}
	overrides := make([]OverrideResponse, 0, len(v.Overrides))
	for _, o := range v.Overrides {
		overrides = append(overrides, OverrideResponse{Date: date(o.Date), RatesResponse: newRates(o.Rates)})
	}
	return &PropertyResponse{
		ID:        v.ID.String(),
		Name:      v.Name,
		Address:   v.Address,
		City:      v.City,
		MaxGuests: v.MaxGuests,
		Daywise:   v.Daywise,
		IsActive:  v.IsActive,
		Rates:     rates,
		Overrides: overrides,
		CreatedAt: v.CreatedAt.Unix(),
		UpdatedAt: v.UpdatedAt.Unix(),
	}
}

type PropertyListItemResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	City      string `json:"city"`
	MaxGuests int32  `json:"max_guests"`
	Daywise   bool   `json:"daywise"`
	IsActive  bool   `json:"is_active"`
	CreatedAt int64  `json:"created_at"`
}

func NewPropertyPage(items []*queries.PropertyListItem, next *queries.Cursor) (*Page[PropertyListItemResponse], error) {
	return newPage[*queries.PropertyListItem, PropertyListItemResponse](items, next)
}

type NightResponse struct {
	Date             string          `json:"date"`
	Bucket           string          `json:"bucket"`
	Overridden       bool            `json:"overridden"`
	Price            decimal.Decimal `json:"price"`
	Discount         decimal.Decimal `json:"discount"`
	BaseAmount       decimal.Decimal `json:"base_amount"`
	ExtraAdults      int             `json:"extra_adults"`
	ExtraChildren    int             `json:"extra_children"`
	ExtraInfants     int             `json:"extra_infants"`
	ExtraGuestCharge decimal.Decimal `json:"extra_guest_charge"`
	Total            decimal.Decimal `json:"total"`
}

type CouponQuoteResponse struct {
	CouponID         string          `json:"coupon_id"`
	Code             string          `json:"code"`
	ApplicableNights []string        `json:"applicable_nights"`
	EligibleAmount   decimal.Decimal `json:"eligible_amount"`
	Discount         decimal.Decimal `json:"discount"`
}

type QuoteResponse struct {
	PropertyID       string               `json:"property_id"`
	Nights           []NightResponse      `json:"nights"`
	RentalCharge     decimal.Decimal      `json:"rental_charge"`
	ExtraGuestCharge decimal.Decimal      `json:"extra_guest_charge"`
	Subtotal         decimal.Decimal      `json:"subtotal"`
	Coupon           *CouponQuoteResponse `json:"coupon,omitempty"`
	Discount         decimal.Decimal      `json:"discount"`
	Total            decimal.Decimal      `json:"total"`
}

func NewQuote(q *queries.Quote) *QuoteResponse {
	nights := make([]NightResponse, 0, len(q.Stay.Nights))
	for _, n := range q.Stay.Nights {
		nights = append(nights, NightResponse{
			Date:             date(n.Date),
			Bucket:           n.Bucket.String(),
			Overridden:       n.Overridden,
			Price:            n.Rate.Price,
			Discount:         n.Rate.Discount,
			BaseAmount:       n.BaseAmount,
			ExtraAdults:      n.ExtraAdults,
			ExtraChildren:    n.ExtraChildren,
			ExtraInfants:     n.ExtraInfants,
			ExtraGuestCharge: n.ExtraGuestCharge,
			Total:            n.Total,
		})
	}

	res := &QuoteResponse{
		PropertyID:       q.PropertyID.String(),
		Nights:           nights,
		RentalCharge:     q.Stay.RentalCharge,
		ExtraGuestCharge: q.Stay.ExtraGuestCharge,
		Subtotal:         q.Stay.Total,
		Discount:         q.Discount,
		Total:            q.Total,
	}
	if q.Coupon != nil {
		applicable := make([]string, 0, len(q.Coupon.ApplicableNights))
		for _, d := range q.Coupon.ApplicableNights {
			applicable = append(applicable, date(d))
		}
		res.Coupon = &CouponQuoteResponse{
			CouponID:         q.Coupon.CouponID.String(),
			Code:             q.Coupon.Code,
			ApplicableNights: applicable,
			EligibleAmount:   q.Coupon.EligibleAmount,
			Discount:         q.Coupon.Discount,
		}
	}
	return res
}
