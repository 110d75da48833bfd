package request

import (
	"time"

	"rental-admin/internal/domain/coupon"
	"rental-admin/internal/handler/validation"
	"rental-admin/internal/pkg/errs"
	"rental-admin/internal/pkg/patch"
	"rental-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var weekdayNames = map[string]time.Weekday{
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
	"SUNDAY":    time.Sunday,
}

type CouponRequest struct {
	Name             string           `json:"name" binding:"required,max=255"`
	Code             string           `json:"code" binding:"required,min=3,max=32"`
	ValidFrom        string           `json:"valid_from" binding:"required,isodate"`
	ValidTo          string           `json:"valid_to" binding:"required,isodate"`
	DiscountType     string           `json:"discount_type" binding:"required,discounttype"`
	DiscountValue    decimal.Decimal  `json:"discount_value"`
	MaxDiscountValue *decimal.Decimal `json:"max_discount_value"`
	Weekdays         []string         `json:"weekdays" binding:"required,min=1,dive,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	PropertyIDs      []uuid.UUID      `json:"property_ids" binding:"required,min=1"`
	IsActive         *bool            `json:"is_active"`
}

func (r *CouponRequest) ToParams() (coupon.Params, error) {
	from, err := validation.ParseDate(r.ValidFrom)
	if err != nil {
		return coupon.Params{}, errs.Invalid("validFrom", coupon.ErrMissingValidity)
	}
	to, err := validation.ParseDate(r.ValidTo)
	if err != nil {
		return coupon.Params{}, errs.Invalid("validTo", coupon.ErrMissingValidity)
	}

	days := make([]time.Weekday, 0, len(r.Weekdays))
	for _, name := range r.Weekdays {
		day, ok := weekdayNames[name]
		if !ok {
			return coupon.Params{}, errs.Invalid("weekdays", coupon.ErrNoWeekdays)
		}
		days = append(days, day)
	}

	return coupon.Params{
		Name:             r.Name,
		Code:             r.Code,
		ValidFrom:        from,
		ValidTo:          to,
		DiscountType:     r.DiscountType,
		DiscountValue:    r.DiscountValue,
		MaxDiscountValue: r.MaxDiscountValue,
		Weekdays:         days,
		PropertyIDs:      r.PropertyIDs,
		IsActive:         patch.Coalesce(r.IsActive, true),
	}, nil
}

type CheckCouponRequest struct {
	Code       string          `json:"code" binding:"required,max=32"`
	PropertyID uuid.UUID       `json:"property_id" binding:"required"`
	Date       string          `json:"date" binding:"required,isodate"`
	Charge     decimal.Decimal `json:"charge"`
}

func (r *CheckCouponRequest) ToQuery() (queries.CheckCouponRequest, error) {
	date, err := validation.ParseDate(r.Date)
	if err != nil {
		return queries.CheckCouponRequest{}, errs.Invalid("date", coupon.ErrMissingValidity)
	}
	return queries.CheckCouponRequest{
		Code:       r.Code,
		PropertyID: r.PropertyID,
		Date:       date,
		Charge:     r.Charge,
	}, nil
}
