package request

import (
	"rental-admin/internal/domain/pricing"
	"rental-admin/internal/domain/property"
	"rental-admin/internal/handler/validation"
	"rental-admin/internal/pkg/errs"
	"rental-admin/internal/pkg/patch"
	"rental-admin/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

// RatesRequest leaves a field null to signal "inherit" on overrides.
type RatesRequest struct {
	Price                  *decimal.Decimal `json:"price"`
	AdultExtraGuestCharge  *decimal.Decimal `json:"adult_extra_guest_charge"`
	ChildExtraGuestCharge  *decimal.Decimal `json:"child_extra_guest_charge"`
	InfantExtraGuestCharge *decimal.Decimal `json:"infant_extra_guest_charge"`
	BaseGuestCount         *int             `json:"base_guest_count" binding:"omitempty,min=0"`
	Discount               *decimal.Decimal `json:"discount"`
}

func (r RatesRequest) toDomain() pricing.Rates {
	return pricing.Rates{
		Price:                  r.Price,
		AdultExtraGuestCharge:  r.AdultExtraGuestCharge,
		ChildExtraGuestCharge:  r.ChildExtraGuestCharge,
		InfantExtraGuestCharge: r.InfantExtraGuestCharge,
		BaseGuestCount:         r.BaseGuestCount,
		Discount:               r.Discount,
	}
}

type OverrideRequest struct {
	Date string `json:"date" binding:"required,isodate"`
	RatesRequest
}

// PropertyRequest is a full replacement: the rate profile and overrides sent here replace the stored ones.
type PropertyRequest struct {
	Name      string                  `json:"name" binding:"required,max=255"`
	Address   string                  `json:"address" binding:"max=500"`
	City      string                  `json:"city" binding:"max=120"`
	MaxGuests int                     `json:"max_guests" binding:"required,min=1"`
	IsActive  *bool                   `json:"is_active"`
	Daywise   bool                    `json:"daywise"`
	Rates     map[string]RatesRequest `json:"rates" binding:"required,dive"`
	Overrides []OverrideRequest       `json:"overrides" binding:"dive"`
}

func (r *PropertyRequest) ToParams() (property.Params, error) {
	rates := make(map[pricing.DayBucket]pricing.Rates, len(r.Rates))
	for key, v := range r.Rates {
		bucket, err := pricing.ParseDayBucket(key)
		if err != nil {
			return property.Params{}, errs.Invalid("rates", err)
		}
		rates[bucket] = v.toDomain()
	}

	overrides := make([]property.OverrideInput, 0, len(r.Overrides))
	for _, o := range r.Overrides {
		date, err := validation.ParseDate(o.Date)
		if err != nil {
			return property.Params{}, errs.Invalid("overrides.date", pricing.ErrMissingOverrideDate)
		}
		overrides = append(overrides, property.OverrideInput{Date: date, Rates: o.toDomain()})
	}

	return property.Params{
		Name:      r.Name,
		Address:   r.Address,
		City:      r.City,
		MaxGuests: r.MaxGuests,
		IsActive:  patch.Coalesce(r.IsActive, true),
		Daywise:   r.Daywise,
		Rates:     rates,
		Overrides: overrides,
	}, nil
}

type QuoteRequest struct {
	Checkin    string `json:"checkin" binding:"required,isodate"`
	Checkout   string `json:"checkout" binding:"required,isodate"`
	Adults     int    `json:"adults" binding:"min=0"`
	Children   int    `json:"children" binding:"min=0"`
	Infants    int    `json:"infants" binding:"min=0"`
	CouponCode string `json:"coupon_code" binding:"max=32"`
}

func (r *QuoteRequest) ToQuery() (queries.QuoteRequest, error) {
	checkin, err := validation.ParseDate(r.Checkin)
	if err != nil {
		return queries.QuoteRequest{}, errs.Invalid("checkin", pricing.ErrInvalidStayRange)
	}
	checkout, err := validation.ParseDate(r.Checkout)
	if err != nil {
		return queries.QuoteRequest{}, errs.Invalid("checkout", pricing.ErrInvalidStayRange)
	}
	return queries.QuoteRequest{
		Checkin:    checkin,
		Checkout:   checkout,
		Guests:     pricing.Guests{Adults: r.Adults, Children: r.Children, Infants: r.Infants},
		CouponCode: r.CouponCode,
	}, nil
}
