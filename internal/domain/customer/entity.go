package customer

import (
	"regexp"
	"strings"
	"time"

	"rental-admin/internal/domain/user"
	"rental-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errs.Validation("customer name cannot be empty")
	ErrInvalidPhone = errs.Validation("phone must be 7-20 digits, optionally prefixed with +")
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,18}[0-9]$`)

type Params struct {
	Name  string
	Email string
	Phone string
	Notes string
}

type Customer struct {
	id        uuid.UUID
	name      string
	email     user.Email
	phone     string
	notes     string
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(p Params, now time.Time) (*Customer, error) {
	c := &Customer{id: uuid.New(), createdAt: now}
	if err := c.apply(p, now); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Customer) Revise(p Params, now time.Time) error {
	next := *c
	if err := next.apply(p, now); err != nil {
		return err
	}
	*c = next
	return nil
}

func (c *Customer) apply(p Params, now time.Time) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return errs.Invalid("name", ErrEmptyName)
	}
	email, err := user.NewEmail(p.Email)
	if err != nil {
		return errs.Invalid("email", err)
	}
	phone := strings.TrimSpace(p.Phone)
	if phone != "" && !phoneRegex.MatchString(phone) {
		return errs.Invalid("phone", ErrInvalidPhone)
	}

	c.name = name
	c.email = email
	c.phone = phone
	c.notes = strings.TrimSpace(p.Notes)
	c.updatedAt = now
	return nil
}

func ReconstructCustomer(
	id uuid.UUID,
	name string,
	email user.Email,
	phone, notes string,
	createdAt, updatedAt time.Time,
) *Customer {
	return &Customer{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() user.Email    { return c.email }
func (c *Customer) Phone() string        { return c.phone }
func (c *Customer) Notes() string        { return c.notes }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }
