package coupon

import (
	"strings"
	"time"

	"rental-admin/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName          = errs.Validation("coupon name cannot be empty")
	ErrMissingValidity    = errs.Validation("validFrom and validTo are required")
	ErrSameValidityDates  = errs.Validation("validFrom and validTo must differ")
	ErrValidityReversed   = errs.Validation("validFrom must not be after validTo")
	ErrNoLinkedProperties = errs.Validation("at least one property must be linked")
)

// Reason explains why a coupon does not apply to a night.
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonInactive          Reason = "COUPON_INACTIVE"
	ReasonOutsideValidity   Reason = "OUTSIDE_VALIDITY"
	ReasonPropertyNotLinked Reason = "PROPERTY_NOT_LINKED"
	ReasonWeekdayExcluded   Reason = "WEEKDAY_EXCLUDED"
)

type Params struct {
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
}

type Coupon struct {
	id          uuid.UUID
	name        string
	code        Code
	validFrom   time.Time
	validTo     time.Time
	discount    Discount
	weekdays    WeekdayMask
	propertyIDs []uuid.UUID
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewCoupon(p Params, now time.Time) (*Coupon, error) {
	c := &Coupon{id: uuid.New(), createdAt: now}
	if err := c.apply(p, now); err != nil {
		return nil, err
	}
	return c, nil
}

// Revise replaces every editable field, running the same checks as NewCoupon.
func (c *Coupon) Revise(p Params, now time.Time) error {
	next := *c
	if err := next.apply(p, now); err != nil {
		return err
	}
	*c = next
	return nil
}

func (c *Coupon) apply(p Params, now time.Time) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return errs.Invalid("name", ErrEmptyName)
	}
	code, err := NewCouponCode(p.Code)
	if err != nil {
		return err
	}
	if p.ValidFrom.IsZero() || p.ValidTo.IsZero() {
		return errs.Invalid("validFrom", ErrMissingValidity)
	}
	from, to := dateOf(p.ValidFrom), dateOf(p.ValidTo)
	if from.Equal(to) {
		return errs.Invalid("validTo", ErrSameValidityDates)
	}
	if from.After(to) {
		return errs.Invalid("validTo", ErrValidityReversed)
	}
	days, err := NewWeekdayMask(p.Weekdays...)
	if err != nil {
		return err
	}
	props := dedupe(p.PropertyIDs)
	if len(props) == 0 {
		return errs.Invalid("propertyIds", ErrNoLinkedProperties)
	}
	kind, err := ParseDiscountType(p.DiscountType)
	if err != nil {
		return err
	}
	discount, err := NewDiscount(kind, p.DiscountValue, p.MaxDiscountValue)
	if err != nil {
		return err
	}

	c.name = name
	c.code = code
	c.validFrom = from
	c.validTo = to
	c.discount = discount
	c.weekdays = days
	c.propertyIDs = props
	c.isActive = p.IsActive
	c.updatedAt = now
	return nil
}

func ReconstructCoupon(
	id uuid.UUID,
	name string,
	code Code,
	validFrom, validTo time.Time,
	discount Discount,
	weekdays WeekdayMask,
	propertyIDs []uuid.UUID,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:          id,
		name:        name,
		code:        code,
		validFrom:   dateOf(validFrom),
		validTo:     dateOf(validTo),
		discount:    discount,
		weekdays:    weekdays,
		propertyIDs: propertyIDs,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// IsApplicable checks the validity window (inclusive), the property link and the weekday bit.
func (c *Coupon) IsApplicable(propertyID uuid.UUID, date time.Time) bool {
	return c.ineligibility(propertyID, date) == ReasonNone
}

// Check is IsApplicable plus the active flag, reporting the first failing rule.
func (c *Coupon) Check(propertyID uuid.UUID, date time.Time) Reason {
	if !c.isActive {
		return ReasonInactive
	}
	return c.ineligibility(propertyID, date)
}

func (c *Coupon) ineligibility(propertyID uuid.UUID, date time.Time) Reason {
	d := dateOf(date)
	if d.Before(c.validFrom) || d.After(c.validTo) {
		return ReasonOutsideValidity
	}
	if !c.LinksProperty(propertyID) {
		return ReasonPropertyNotLinked
	}
	if !c.weekdays.Has(d.Weekday()) {
		return ReasonWeekdayExcluded
	}
	return ReasonNone
}

func (c *Coupon) LinksProperty(propertyID uuid.UUID) bool {
	for _, id := range c.propertyIDs {
		if id == propertyID {
			return true
		}
	}
	return false
}

func (c *Coupon) ComputeDiscount(charge decimal.Decimal) decimal.Decimal {
	return c.discount.Compute(charge)
}

func (c *Coupon) ID() uuid.UUID            { return c.id }
func (c *Coupon) Name() string             { return c.name }
func (c *Coupon) Code() Code               { return c.code }
func (c *Coupon) ValidFrom() time.Time     { return c.validFrom }
func (c *Coupon) ValidTo() time.Time       { return c.validTo }
func (c *Coupon) Discount() Discount       { return c.discount }
func (c *Coupon) Weekdays() WeekdayMask    { return c.weekdays }
func (c *Coupon) PropertyIDs() []uuid.UUID { return c.propertyIDs }
func (c *Coupon) IsActive() bool           { return c.isActive }
func (c *Coupon) CreatedAt() time.Time     { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time     { return c.updatedAt }

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
