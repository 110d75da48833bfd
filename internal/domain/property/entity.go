package property

import (
	"strings"
	"time"

	"rental-admin/internal/domain/pricing"
	"rental-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errs.Validation("property name cannot be empty")
	ErrInvalidCapacity = errs.Validation("max guests must be at least 1")
	ErrTooManyGuests   = errs.Validation("guest count exceeds the property capacity")
	ErrInactive        = errs.Conflict("property is not active")
)

type OverrideInput struct {
	Date  time.Time
	Rates pricing.Rates
}

type Params struct {
	Name      string
	Address   string
	City      string
	MaxGuests int
	IsActive  bool
	Daywise   bool
	Rates     map[pricing.DayBucket]pricing.Rates
	Overrides []OverrideInput
}

// Property owns its pricing profile and the full special-date override set.
type Property struct {
	id        uuid.UUID
	name      string
	address   string
	city      string
	maxGuests int
	isActive  bool
	profile   *pricing.Profile
	overrides pricing.Overrides
	createdAt time.Time
	updatedAt time.Time
}

func NewProperty(p Params, now time.Time) (*Property, error) {
	prop := &Property{id: uuid.New(), createdAt: now}
	if err := prop.apply(p, now); err != nil {
		return nil, err
	}
	return prop, nil
}

// Revise replaces attributes, profile and overrides together; nothing changes on error.
func (p *Property) Revise(params Params, now time.Time) error {
	next := *p
	if err := next.apply(params, now); err != nil {
		return err
	}
	*p = next
	return nil
}

func (p *Property) apply(params Params, now time.Time) error {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return errs.Invalid("name", ErrEmptyName)
	}
	if params.MaxGuests < 1 {
		return errs.Invalid("maxGuests", ErrInvalidCapacity)
	}

	profile, err := pricing.NewProfile(params.Daywise, params.Rates)
	if err != nil {
		return err
	}

	list := make([]pricing.Override, 0, len(params.Overrides))
	for _, in := range params.Overrides {
		o, err := pricing.NewOverride(in.Date, in.Rates)
		if err != nil {
			return err
		}
		list = append(list, o)
	}
	overrides, err := pricing.NewOverrides(list)
	if err != nil {
		return err
	}

	p.name = name
	p.address = strings.TrimSpace(params.Address)
	p.city = strings.TrimSpace(params.City)
	p.maxGuests = params.MaxGuests
	p.isActive = params.IsActive
	p.profile = profile
	p.overrides = overrides
	p.updatedAt = now
	return nil
}

func ReconstructProperty(
	id uuid.UUID,
	name, address, city string,
	maxGuests int,
	isActive bool,
	profile *pricing.Profile,
	overrides pricing.Overrides,
	createdAt, updatedAt time.Time,
) *Property {
	return &Property{
		id:        id,
		name:      name,
		address:   address,
		city:      city,
		maxGuests: maxGuests,
		isActive:  isActive,
		profile:   profile,
		overrides: overrides,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Accommodates checks the party against capacity and the active flag.
func (p *Property) Accommodates(g pricing.Guests) error {
	if !p.isActive {
		return ErrInactive
	}
	if g.Total() > p.maxGuests {
		return errs.Invalid("guests", ErrTooManyGuests)
	}
	return nil
}

func (p *Property) Quote(resolver pricing.Resolver, stay pricing.Stay) pricing.StayCharge {
	return resolver.ResolveStay(p.profile, p.overrides, stay)
}

func (p *Property) ID() uuid.UUID                { return p.id }
func (p *Property) Name() string                 { return p.name }
func (p *Property) Address() string              { return p.address }
func (p *Property) City() string                 { return p.city }
func (p *Property) MaxGuests() int               { return p.maxGuests }
func (p *Property) IsActive() bool               { return p.isActive }
func (p *Property) Profile() *pricing.Profile    { return p.profile }
func (p *Property) Overrides() pricing.Overrides { return p.overrides }
func (p *Property) CreatedAt() time.Time         { return p.createdAt }
func (p *Property) UpdatedAt() time.Time         { return p.updatedAt }
