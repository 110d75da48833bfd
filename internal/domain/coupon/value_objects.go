package coupon

import (
	"regexp"
	"strings"
	"time"

	"rental-admin/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCouponCode   = errs.Validation("coupon code must be 3-32 characters of A-Z, 0-9, '-' or '_'")
	ErrUnknownDiscountType = errs.Validation("discount type must be FLAT or PERCENTAGE")
	ErrNonPositiveValue    = errs.Validation("discount value must be greater than zero")
	ErrPercentageTooHigh   = errs.Validation("percentage discount cannot exceed 100")
	ErrMissingMaxDiscount  = errs.Validation("percentage coupons require a max discount value greater than zero")
	ErrNoWeekdays          = errs.Validation("at least one weekday must be selected")
	ErrInvalidWeekday      = errs.Validation("weekday must be between Sunday and Saturday")
)

var (
	couponCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)
	hundred         = decimal.NewFromInt(100)
)

type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), errs.Invalid("code", ErrInvalidCouponCode)
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountFlat       DiscountType = "FLAT"
	DiscountPercentage DiscountType = "PERCENTAGE"
)

func ParseDiscountType(s string) (DiscountType, error) {
	t := DiscountType(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case DiscountFlat, DiscountPercentage:
		return t, nil
	default:
		return "", errs.Invalid("discountType", ErrUnknownDiscountType)
	}
}

func (t DiscountType) String() string { return string(t) }

type Discount struct {
	kind        DiscountType
	value       decimal.Decimal
	maxDiscount *decimal.Decimal
}

// NewDiscount validates value and cap. A cap passed with a FLAT discount is kept but never consulted.
func NewDiscount(kind DiscountType, value decimal.Decimal, maxDiscount *decimal.Decimal) (Discount, error) {
	if !value.IsPositive() {
		return Discount{}, errs.Invalid("discountValue", ErrNonPositiveValue)
	}
	switch kind {
	case DiscountFlat:
	case DiscountPercentage:
		if value.GreaterThan(hundred) {
			return Discount{}, errs.Invalid("discountValue", ErrPercentageTooHigh)
		}
		if maxDiscount == nil || !maxDiscount.IsPositive() {
			return Discount{}, errs.Invalid("maxDiscountValue", ErrMissingMaxDiscount)
		}
	default:
		return Discount{}, errs.Invalid("discountType", ErrUnknownDiscountType)
	}
	return Discount{kind: kind, value: value, maxDiscount: maxDiscount}, nil
}

func (d Discount) Type() DiscountType                 { return d.kind }
func (d Discount) Value() decimal.Decimal             { return d.value }
func (d Discount) MaxDiscountValue() *decimal.Decimal { return d.maxDiscount }

// Compute never returns more than charge.
func (d Discount) Compute(charge decimal.Decimal) decimal.Decimal {
	if !charge.IsPositive() {
		return decimal.Zero
	}
	var amount decimal.Decimal
	switch d.kind {
	case DiscountPercentage:
		amount = charge.Mul(d.value).Div(hundred)
		if d.maxDiscount != nil {
			amount = decimal.Min(amount, *d.maxDiscount)
		}
	default:
		amount = d.value
	}
	return decimal.Min(amount, charge).Round(2)
}

// WeekdayMask holds one bit per time.Weekday.
type WeekdayMask uint8

func NewWeekdayMask(days ...time.Weekday) (WeekdayMask, error) {
	var m WeekdayMask
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday {
			return 0, errs.Invalid("weekdays", ErrInvalidWeekday)
		}
		m |= 1 << uint(d)
	}
	if m == 0 {
		return 0, errs.Invalid("weekdays", ErrNoWeekdays)
	}
	return m, nil
}

func (m WeekdayMask) Has(d time.Weekday) bool {
	return m&(1<<uint(d)) != 0
}

// Days lists the set weekdays, Monday first.
func (m WeekdayMask) Days() []time.Weekday {
	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	out := make([]time.Weekday, 0, 7)
	for _, d := range order {
		if m.Has(d) {
			out = append(out, d)
		}
	}
	return out
}
