//go:build unit || e2e

package builder

import (
	"time"

	"rental-admin/internal/domain/pricing"
	"rental-admin/internal/domain/property"
	reqdto "rental-admin/internal/handler/dto/request"
	"rental-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type PropertyBuilder struct {
	Name      string
	Address   string
	City      string
	MaxGuests int
	IsActive  bool
	Pricing   *PricingBuilder
	Now       time.Time
}

func NewPropertyBuilder() *PropertyBuilder {
	return &PropertyBuilder{
		Name:      "Lakeview Cottage",
		Address:   "12 Shore Road",
		City:      "Udaipur",
		MaxGuests: 6,
		IsActive:  true,
		Pricing:   NewPricingBuilder(),
		Now:       time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *PropertyBuilder) With(mutate func(*PropertyBuilder)) *PropertyBuilder {
	mutate(b)
	return b
}

func (b *PropertyBuilder) Params() property.Params {
	overrides := make([]property.OverrideInput, 0, len(b.Pricing.Overrides))
	for _, o := range b.Pricing.Overrides {
		overrides = append(overrides, property.OverrideInput{Date: o.Date, Rates: o.Rates})
	}
	rates := make(map[pricing.DayBucket]pricing.Rates, len(b.Pricing.Rates))
	for k, v := range b.Pricing.Rates {
		rates[k] = v
	}
	return property.Params{
		Name:      b.Name,
		Address:   b.Address,
		City:      b.City,
		MaxGuests: b.MaxGuests,
		IsActive:  b.IsActive,
		Daywise:   b.Pricing.Daywise,
		Rates:     rates,
		Overrides: overrides,
	}
}

func (b *PropertyBuilder) BuildDomain() (*property.Property, error) {
	return property.NewProperty(b.Params(), b.Now)
}

func (b *PropertyBuilder) BuildView(id uuid.UUID) *queries.PropertyView {
	p := b.Params()
	overrides := make([]queries.OverrideView, 0, len(p.Overrides))
	for _, o := range p.Overrides {
		overrides = append(overrides, queries.OverrideView{Date: o.Date, Rates: o.Rates})
	}
	return &queries.PropertyView{
		ID:        id,
		Name:      b.Name,
		Address:   b.Address,
		City:      b.City,
		MaxGuests: int32(b.MaxGuests),
		Daywise:   b.Pricing.Daywise,
		IsActive:  b.IsActive,
		Rates:     p.Rates,
		Overrides: overrides,
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}

func ratesDTO(r pricing.Rates) reqdto.RatesRequest {
	return reqdto.RatesRequest{
		Price:                  r.Price,
		AdultExtraGuestCharge:  r.AdultExtraGuestCharge,
		ChildExtraGuestCharge:  r.ChildExtraGuestCharge,
		InfantExtraGuestCharge: r.InfantExtraGuestCharge,
		BaseGuestCount:         r.BaseGuestCount,
		Discount:               r.Discount,
	}
}

func (b *PropertyBuilder) BuildRequestDTO() reqdto.PropertyRequest {
	rates := make(map[string]reqdto.RatesRequest, len(b.Pricing.Rates))
	for bucket, r := range b.Pricing.Rates {
		rates[bucket.String()] = ratesDTO(r)
	}
	overrides := make([]reqdto.OverrideRequest, 0, len(b.Pricing.Overrides))
	for _, o := range b.Pricing.Overrides {
		overrides = append(overrides, reqdto.OverrideRequest{Date: o.Date.Format(time.DateOnly), RatesRequest: ratesDTO(o.Rates)})
	}
	active := b.IsActive
	return reqdto.PropertyRequest{
		Name:      b.Name,
		Address:   b.Address,
		City:      b.City,
		MaxGuests: b.MaxGuests,
		IsActive:  &active,
		Daywise:   b.Pricing.Daywise,
		Rates:     rates,
		Overrides: overrides,
	}
}
