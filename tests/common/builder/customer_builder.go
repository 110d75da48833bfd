//go:build unit || e2e

package builder

import (
	"time"

	"rental-admin/internal/domain/customer"
	reqdto "rental-admin/internal/handler/dto/request"
	sqlc "rental-admin/internal/infra/sqlc/generated"
	"rental-admin/internal/pkg/pgconv"
	"rental-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerBuilder struct {
	Name  string
	Email string
	Phone string
	Notes string
	Now   time.Time
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		Name:  "Asha Rao",
		Email: "asha@example.com",
		Phone: "+91 98450 12345",
		Now:   time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

func (b *CustomerBuilder) Params() customer.Params {
	return customer.Params{Name: b.Name, Email: b.Email, Phone: b.Phone, Notes: b.Notes}
}

func (b *CustomerBuilder) BuildDomain() (*customer.Customer, error) {
	return customer.NewCustomer(b.Params(), b.Now)
}

func (b *CustomerBuilder) BuildInfra(id uuid.UUID) sqlc.Customers {
	return sqlc.Customers{
		ID:        id,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     pgconv.TextOrNull(b.Phone),
		Notes:     pgconv.TextOrNull(b.Notes),
		CreatedAt: pgconv.TimeToPgtype(b.Now),
		UpdatedAt: pgconv.TimeToPgtype(b.Now),
	}
}

func (b *CustomerBuilder) BuildView(id uuid.UUID) *queries.CustomerView {
	return &queries.CustomerView{
		ID:        id,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Notes:     b.Notes,
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}

func (b *CustomerBuilder) BuildRequestDTO() reqdto.CustomerRequest {
	return reqdto.CustomerRequest{Name: b.Name, Email: b.Email, Phone: b.Phone, Notes: b.Notes}
}
