package repository

import (
	"context"

	"rental-admin/internal/domain/customer"
	"rental-admin/internal/infra"
	"rental-admin/internal/infra/converter"
	sqlc "rental-admin/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type CustomerWriteQueries interface {
	CreateCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCustomerParams) error
	UpdateCustomer(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateCustomerParams) (int64, error)
	DeleteCustomer(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type CustomerRepository struct {
	queries CustomerWriteQueries
	db      sqlc.DBTX
}

func NewCustomerRepository(queries CustomerWriteQueries, db sqlc.DBTX) *CustomerRepository {
	return &CustomerRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) error {
	if err := r.queries.CreateCustomer(ctx, tx, converter.CustomerToCreateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to create customer", err)
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, tx sqlc.DBTX, c *customer.Customer) error {
	n, err := r.queries.UpdateCustomer(ctx, tx, converter.CustomerToUpdateParams(c))
	if err != nil {
		return infra.WrapRepoErr("failed to update customer", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeleteCustomer(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete customer", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}
