package commands

import (
	"context"

	"rental-admin/internal/domain/auth"
	"rental-admin/internal/domain/customer"
	"rental-admin/internal/domain/user"
	"rental-admin/internal/infra"
	"rental-admin/internal/pkg/clock"
	"rental-admin/internal/usecase/queries"
	"rental-admin/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerCommands interface {
	CreateCustomer(ctx context.Context, actor auth.Principal, params customer.Params) (uuid.UUID, error)
	UpdateCustomer(ctx context.Context, actor auth.Principal, id uuid.UUID, params customer.Params) error
	DeleteCustomer(ctx context.Context, actor auth.Principal, id uuid.UUID) error
}

type customerCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCustomerCommands(uow shared.UnitOfWork, clk clock.Clock) CustomerCommands {
	return &customerCommandsImpl{uow: uow, clock: clk}
}

func (uc *customerCommandsImpl) CreateCustomer(ctx context.Context, actor auth.Principal, params customer.Params) (uuid.UUID, error) {
	if err := actor.Require(user.RoleOperator); err != nil {
		return uuid.Nil, err
	}
	c, err := customer.NewCustomer(params, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translate(tx.Customers().Create(ctx, tx.DB(), c), nil, ErrEmailTaken)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return c.ID(), nil
}

func (uc *customerCommandsImpl) UpdateCustomer(ctx context.Context, actor auth.Principal, id uuid.UUID, params customer.Params) error {
	if err := actor.Require(user.RoleOperator); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Reads().CustomerByID(ctx, id)
		if err != nil {
			return translate(err, queries.ErrCustomerNotFound, nil)
		}
		if err := c.Revise(params, uc.clock.Now()); err != nil {
			return err
		}
		return translate(tx.Customers().Update(ctx, tx.DB(), c), queries.ErrCustomerNotFound, ErrEmailTaken)
	})
}

func (uc *customerCommandsImpl) DeleteCustomer(ctx context.Context, actor auth.Principal, id uuid.UUID) error {
	if err := actor.Require(user.RoleOperator); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Customers().Delete(ctx, tx.DB(), id)
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrCustomerInUse
		}
		return translate(err, queries.ErrCustomerNotFound, nil)
	})
}
