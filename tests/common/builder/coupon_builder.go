//go:build unit || e2e

package builder

import (
	"time"

	"rental-admin/internal/domain/coupon"
	reqdto "rental-admin/internal/handler/dto/request"
	"rental-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponBuilder struct {
	Name             string
	Code             string
	ValidFrom        time.Time
	ValidTo          time.Time
	DiscountType     string
	DiscountValue    decimal.Decimal
	MaxDiscountValue *decimal.Decimal
	Weekdays         []time.Weekday
	PropertyIDs      []uuid.UUID
	IsActive         bool
	Now              time.Time
}

// NewCouponBuilder yields a June 2025 Fri+Sat percentage coupon linked to one property.
func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		Name:             "Summer weekends",
		Code:             "SUMMER25",
		ValidFrom:        Date(2025, time.June, 1),
		ValidTo:          Date(2025, time.June, 30),
		DiscountType:     "PERCENTAGE",
		DiscountValue:    Dec("20"),
		MaxDiscountValue: DecPtr("1000"),
		Weekdays:         []time.Weekday{time.Friday, time.Saturday},
		PropertyIDs:      []uuid.UUID{uuid.New()},
		IsActive:         true,
		Now:              time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) WithFlat(value string) *CouponBuilder {
	b.DiscountType = "FLAT"
	b.DiscountValue = Dec(value)
	b.MaxDiscountValue = nil
	return b
}

func (b *CouponBuilder) WithProperties(ids ...uuid.UUID) *CouponBuilder {
	b.PropertyIDs = ids
	return b
}

func (b *CouponBuilder) Params() coupon.Params {
	return coupon.Params{
		Name:             b.Name,
		Code:             b.Code,
		ValidFrom:        b.ValidFrom,
		ValidTo:          b.ValidTo,
		DiscountType:     b.DiscountType,
		DiscountValue:    b.DiscountValue,
		MaxDiscountValue: b.MaxDiscountValue,
		Weekdays:         b.Weekdays,
		PropertyIDs:      b.PropertyIDs,
		IsActive:         b.IsActive,
	}
}

func (b *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	return coupon.NewCoupon(b.Params(), b.Now)
}

func (b *CouponBuilder) BuildView(id uuid.UUID) *queries.CouponView {
	return &queries.CouponView{
		ID:               id,
		Name:             b.Name,
		Code:             b.Code,
		ValidFrom:        b.ValidFrom,
		ValidTo:          b.ValidTo,
		DiscountType:     b.DiscountType,
		DiscountValue:    b.DiscountValue,
		MaxDiscountValue: b.MaxDiscountValue,
		Weekdays:         b.Weekdays,
		PropertyIDs:      b.PropertyIDs,
		IsActive:         b.IsActive,
		CreatedAt:        b.Now,
		UpdatedAt:        b.Now,
	}
}

var weekdayWire = map[time.Weekday]string{
	time.Monday: "MONDAY", time.Tuesday: "TUESDAY", time.Wednesday: "WEDNESDAY",
	time.Thursday: "THURSDAY", time.Friday: "FRIDAY", time.Saturday: "SATURDAY", time.Sunday: "SUNDAY",
}

func (b *CouponBuilder) BuildRequestDTO() reqdto.CouponRequest {
	days := make([]string, 0, len(b.Weekdays))
	for _, d := range b.Weekdays {
		days = append(days, weekdayWire[d])
	}
	active := b.IsActive
	return reqdto.CouponRequest{
		Name:             b.Name,
		Code:             b.Code,
		ValidFrom:        b.ValidFrom.Format(time.DateOnly),
		ValidTo:          b.ValidTo.Format(time.DateOnly),
		DiscountType:     b.DiscountType,
		DiscountValue:    b.DiscountValue,
		MaxDiscountValue: b.MaxDiscountValue,
		Weekdays:         days,
		PropertyIDs:      b.PropertyIDs,
		IsActive:         &active,
	}
}
